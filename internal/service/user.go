package service

import (
	"errors"
	"fmt"

	"vacation-manager-backend/internal/database"
	"vacation-manager-backend/internal/database/models"
	apperrors "vacation-manager-backend/internal/errors"
	"vacation-manager-backend/internal/identity"
	"vacation-manager-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EmployeeService manages the employee roster. Employees enter the
// organization unassigned; every structural change to their graph position
// flows through TeamService, which keeps the derived roles in step.
type EmployeeService struct {
	repo      repository.UserRepositoryInterface
	teamRepo  repository.TeamRepositoryInterface
	roles     identity.RoleStoreInterface
	roleSync  RoleSynchronizerInterface
	txRunner  database.TxRunner
	validator *validator.Validate
}

// NewEmployeeService creates a new employee service
func NewEmployeeService(repo repository.UserRepositoryInterface, teamRepo repository.TeamRepositoryInterface, roles identity.RoleStoreInterface, roleSync RoleSynchronizerInterface, txRunner database.TxRunner, validator *validator.Validate) *EmployeeService {
	return &EmployeeService{
		repo:      repo,
		teamRepo:  teamRepo,
		roles:     roles,
		roleSync:  roleSync,
		txRunner:  txRunner,
		validator: validator,
	}
}

// CreateEmployeeRequest represents the request to register an employee
type CreateEmployeeRequest struct {
	FirstName string `json:"first_name" validate:"required,max=70"`
	LastName  string `json:"last_name" validate:"required,max=70"`
	Email     string `json:"email" validate:"required,email,max=255"`
	Phone     string `json:"phone" validate:"omitempty,max=20"`
}

// UpdateEmployeeRequest represents the request to update an employee's profile
type UpdateEmployeeRequest struct {
	FirstName string `json:"first_name" validate:"required,max=70"`
	LastName  string `json:"last_name" validate:"required,max=70"`
	Phone     string `json:"phone" validate:"omitempty,max=20"`
}

// EmployeeResponse represents the response for employee operations
type EmployeeResponse struct {
	ID        uuid.UUID  `json:"id"`
	FirstName string     `json:"first_name"`
	LastName  string     `json:"last_name"`
	Email     string     `json:"email"`
	Phone     string     `json:"phone,omitempty"`
	TeamID    *uuid.UUID `json:"team_id,omitempty"`
	TeamLedID *uuid.UUID `json:"team_led_id,omitempty"`
	CreatedAt string     `json:"created_at"`
	UpdatedAt string     `json:"updated_at"`
}

// RoleResponse represents a role tag with its display label
type RoleResponse struct {
	Name  string `json:"name"`
	Label string `json:"label"`
}

// EmployeeDetailsResponse represents an employee with their roles and teams
type EmployeeDetailsResponse struct {
	Employee EmployeeResponse `json:"employee"`
	Roles    []RoleResponse   `json:"roles"`
	Team     *TeamResponse    `json:"team,omitempty"`
	LedTeam  *TeamResponse    `json:"led_team,omitempty"`
}

// EmployeeListItem represents an employee row with their role labels
type EmployeeListItem struct {
	EmployeeResponse
	Roles []RoleResponse `json:"roles"`
}

// EmployeeListResponse represents a paginated list of employees
type EmployeeListResponse struct {
	Employees []EmployeeListItem `json:"employees"`
	Total     int64              `json:"total"`
	Page      int                `json:"page"`
	PageSize  int                `json:"page_size"`
}

// Create registers a new employee. They start with no team and no led team,
// so synchronization grants exactly the unassigned role.
func (s *EmployeeService) Create(req *CreateEmployeeRequest) (*EmployeeResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	existing, err := s.repo.GetByEmail(req.Email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing user by email: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrUserExists
	}

	user := &models.User{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
	}

	err = s.txRunner.InTx(func(tx *gorm.DB) error {
		if err := s.repo.WithTx(tx).Create(user); err != nil {
			return fmt.Errorf("failed to create user: %w", err)
		}
		return s.roleSync.WithTx(tx).Synchronize(user.ID)
	})
	if err != nil {
		return nil, err
	}

	return toEmployeeResponse(user), nil
}

// GetByID retrieves an employee with their role labels and both team
// relationships resolved.
func (s *EmployeeService) GetByID(id uuid.UUID) (*EmployeeDetailsResponse, error) {
	user, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	roles, err := s.roleResponses(id)
	if err != nil {
		return nil, err
	}

	details := &EmployeeDetailsResponse{
		Employee: *toEmployeeResponse(user),
		Roles:    roles,
	}

	if user.TeamID != nil {
		team, err := s.teamRepo.GetByID(*user.TeamID)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to load team: %w", err)
		}
		if team != nil {
			details.Team = toTeamResponse(team)
		}
	}
	if user.TeamLedID != nil {
		team, err := s.teamRepo.GetByID(*user.TeamLedID)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to load led team: %w", err)
		}
		if team != nil {
			details.LedTeam = toTeamResponse(team)
		}
	}

	return details, nil
}

// GetByEmail retrieves an employee by their email address
func (s *EmployeeService) GetByEmail(email string) (*EmployeeResponse, error) {
	user, err := s.repo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	return toEmployeeResponse(user), nil
}

// List retrieves employees with pagination, each row annotated with the role
// labels currently granted in the identity store.
func (s *EmployeeService) List(page, pageSize int) (*EmployeeListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	offset := (page - 1) * pageSize
	users, total, err := s.repo.GetAll(pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get users: %w", err)
	}

	items := make([]EmployeeListItem, len(users))
	for i := range users {
		roles, err := s.roleResponses(users[i].ID)
		if err != nil {
			return nil, err
		}
		items[i] = EmployeeListItem{
			EmployeeResponse: *toEmployeeResponse(&users[i]),
			Roles:            roles,
		}
	}

	return &EmployeeListResponse{
		Employees: items,
		Total:     total,
		Page:      page,
		PageSize:  pageSize,
	}, nil
}

// ListUnassigned retrieves employees who are neither members nor leaders of
// any team.
func (s *EmployeeService) ListUnassigned() ([]EmployeeResponse, error) {
	users, err := s.repo.GetWithoutTeam()
	if err != nil {
		return nil, fmt.Errorf("failed to get unassigned users: %w", err)
	}
	responses := make([]EmployeeResponse, len(users))
	for i := range users {
		responses[i] = *toEmployeeResponse(&users[i])
	}
	return responses, nil
}

// Update edits an employee's profile fields. Team membership and leadership
// are not profile data and can only change through the team operations.
func (s *EmployeeService) Update(id uuid.UUID, req *UpdateEmployeeRequest) (*EmployeeResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	user, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	user.FirstName = req.FirstName
	user.LastName = req.LastName
	user.Phone = req.Phone

	if err := s.repo.Update(user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return toEmployeeResponse(user), nil
}

// Delete removes an employee from the organization. A current team leader
// cannot be deleted; their team must first be reassigned or deleted, so a team
// never exists without a leader. Role grants are revoked in the same
// transaction and the employee's holiday requests go with them.
func (s *EmployeeService) Delete(id uuid.UUID) error {
	user, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrUserNotFound
		}
		return fmt.Errorf("failed to get user: %w", err)
	}
	if user.IsLeader() {
		return apperrors.ErrStillLeadsTeam
	}

	return s.txRunner.InTx(func(tx *gorm.DB) error {
		if err := s.roles.WithTx(tx).RevokeAll(id); err != nil {
			return err
		}
		if err := s.repo.WithTx(tx).Delete(id); err != nil {
			return fmt.Errorf("failed to delete user: %w", err)
		}
		return nil
	})
}

func (s *EmployeeService) roleResponses(userID uuid.UUID) ([]RoleResponse, error) {
	roles, err := s.roles.RolesOf(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load roles: %w", err)
	}
	responses := make([]RoleResponse, len(roles))
	for i, role := range roles {
		responses[i] = RoleResponse{Name: string(role), Label: role.Label()}
	}
	return responses, nil
}

// toEmployeeResponse converts a user model to response
func toEmployeeResponse(user *models.User) *EmployeeResponse {
	return &EmployeeResponse{
		ID:        user.ID,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
		Phone:     user.Phone,
		TeamID:    user.TeamID,
		TeamLedID: user.TeamLedID,
		CreatedAt: user.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt: user.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
