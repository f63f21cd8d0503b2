package service

import (
	"errors"
	"fmt"

	"vacation-manager-backend/internal/database"
	"vacation-manager-backend/internal/database/models"
	apperrors "vacation-manager-backend/internal/errors"
	"vacation-manager-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TeamService orchestrates structural team changes. Anything with cascading
// effects beyond a single field (leader reassignment, team deletion) runs in
// one transaction together with the role synchronization it triggers: partial
// leadership states are never observable.
type TeamService struct {
	repo      repository.TeamRepositoryInterface
	userRepo  repository.UserRepositoryInterface
	roleSync  RoleSynchronizerInterface
	txRunner  database.TxRunner
	validator *validator.Validate
}

// NewTeamService creates a new team service
func NewTeamService(repo repository.TeamRepositoryInterface, userRepo repository.UserRepositoryInterface, roleSync RoleSynchronizerInterface, txRunner database.TxRunner, validator *validator.Validate) *TeamService {
	return &TeamService{
		repo:      repo,
		userRepo:  userRepo,
		roleSync:  roleSync,
		txRunner:  txRunner,
		validator: validator,
	}
}

// CreateTeamRequest represents the request to create a team
type CreateTeamRequest struct {
	Name     string    `json:"name" validate:"required,min=1,max=50"`
	LeaderID uuid.UUID `json:"leader_id" validate:"required"`
}

// ChangeLeaderRequest represents the request to reassign a team's leader
type ChangeLeaderRequest struct {
	NewLeaderID uuid.UUID `json:"new_leader_id" validate:"required"`
}

// TeamResponse represents the response for team operations
type TeamResponse struct {
	ID        uuid.UUID  `json:"id"`
	Name      string     `json:"name"`
	LeaderID  uuid.UUID  `json:"leader_id"`
	ProjectID *uuid.UUID `json:"project_id,omitempty"`
	Version   int        `json:"version"`
	CreatedAt string     `json:"created_at"`
	UpdatedAt string     `json:"updated_at"`
}

// TeamDetailsResponse represents a team with its leader and members
type TeamDetailsResponse struct {
	Team    TeamResponse       `json:"team"`
	Leader  *EmployeeResponse  `json:"leader,omitempty"`
	Members []EmployeeResponse `json:"members"`
}

// TeamListResponse represents a paginated list of teams
type TeamListResponse struct {
	Teams    []TeamResponse `json:"teams"`
	Total    int64          `json:"total"`
	Page     int            `json:"page"`
	PageSize int            `json:"page_size"`
}

// Create creates a team with its designated leader. The leader must not
// already lead another team; on success their team_led_id is set and the
// team_lead role granted in the same transaction.
func (s *TeamService) Create(req *CreateTeamRequest) (*TeamResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	existing, err := s.repo.GetByName(req.Name)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing team by name: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrTeamExists
	}

	leader, err := s.userRepo.GetByID(req.LeaderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrLeaderNotFound
		}
		return nil, fmt.Errorf("failed to load leader: %w", err)
	}
	if leader.IsLeader() {
		return nil, apperrors.ErrAlreadyLeadsTeam
	}

	team := &models.Team{
		Name:     req.Name,
		LeaderID: leader.ID,
		Version:  1,
	}

	err = s.txRunner.InTx(func(tx *gorm.DB) error {
		if err := s.repo.WithTx(tx).Create(team); err != nil {
			return fmt.Errorf("failed to create team: %w", err)
		}
		// Conditional claim: a concurrent create naming the same leader must
		// not leave them leading two teams.
		if err := s.userRepo.WithTx(tx).ClaimTeamLed(leader.ID, team.ID); err != nil {
			return err
		}
		return s.roleSync.WithTx(tx).Synchronize(leader.ID)
	})
	if err != nil {
		return nil, err
	}

	return toTeamResponse(team), nil
}

// GetByID retrieves a team with its leader and members
func (s *TeamService) GetByID(id uuid.UUID) (*TeamDetailsResponse, error) {
	team, err := s.repo.GetWithMembers(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}

	details := &TeamDetailsResponse{
		Team:    *toTeamResponse(team),
		Members: make([]EmployeeResponse, len(team.Members)),
	}
	for i, member := range team.Members {
		details.Members[i] = *toEmployeeResponse(&member)
	}

	leader, err := s.userRepo.GetByID(team.LeaderID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to load leader: %w", err)
	}
	if leader != nil {
		details.Leader = toEmployeeResponse(leader)
	}

	return details, nil
}

// List retrieves teams with pagination
func (s *TeamService) List(page, pageSize int) (*TeamListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	offset := (page - 1) * pageSize
	teams, total, err := s.repo.GetAll(pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get teams: %w", err)
	}

	responses := make([]TeamResponse, len(teams))
	for i, team := range teams {
		responses[i] = *toTeamResponse(&team)
	}

	return &TeamListResponse{
		Teams:    responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// ChangeLeader reassigns the team's leader. The whole cascade is
// all-or-nothing: the new leader's team_led_id is set, the old leader's is
// cleared, the team row is updated under optimistic locking, and both users'
// role sets are resynchronized. A concurrent leader change on the same team
// loses with a concurrency error instead of silently overwriting.
func (s *TeamService) ChangeLeader(teamID uuid.UUID, req *ChangeLeaderRequest) (*TeamResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	team, err := s.repo.GetByID(teamID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}

	if team.LeaderID == req.NewLeaderID {
		return toTeamResponse(team), nil
	}

	newLeader, err := s.userRepo.GetByID(req.NewLeaderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrLeaderNotFound
		}
		return nil, fmt.Errorf("failed to load new leader: %w", err)
	}
	if newLeader.IsLeader() {
		return nil, apperrors.ErrAlreadyLeadsTeam
	}

	oldLeader, err := s.userRepo.GetByID(team.LeaderID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to load old leader: %w", err)
	}

	err = s.txRunner.InTx(func(tx *gorm.DB) error {
		userRepo := s.userRepo.WithTx(tx)
		roleSync := s.roleSync.WithTx(tx)

		// A leader is never a member of the team they lead.
		if newLeader.IsMemberOf(teamID) {
			if err := userRepo.SetTeamMembership(newLeader.ID, nil); err != nil {
				return fmt.Errorf("failed to clear new leader membership: %w", err)
			}
		}
		if err := userRepo.ClaimTeamLed(newLeader.ID, teamID); err != nil {
			return err
		}
		if oldLeader != nil {
			if err := userRepo.SetTeamLed(oldLeader.ID, nil); err != nil {
				return fmt.Errorf("failed to clear old leader: %w", err)
			}
		}
		if err := s.repo.WithTx(tx).SetLeader(teamID, newLeader.ID, team.Version); err != nil {
			return err
		}
		if err := roleSync.Synchronize(newLeader.ID); err != nil {
			return err
		}
		if oldLeader != nil {
			if err := roleSync.Synchronize(oldLeader.ID); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	team.LeaderID = newLeader.ID
	team.Version++
	return toTeamResponse(team), nil
}

// AddMember assigns a user to the team. An existing membership in another
// team is overwritten, last writer wins. The team's leader cannot also be a
// member of it.
func (s *TeamService) AddMember(teamID, userID uuid.UUID) error {
	if _, err := s.repo.GetByID(teamID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrTeamNotFound
		}
		return fmt.Errorf("failed to get team: %w", err)
	}

	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrUserNotFound
		}
		return fmt.Errorf("failed to get user: %w", err)
	}
	if user.LeadsTeam(teamID) {
		return apperrors.ErrLeaderCannotBeMember
	}

	return s.txRunner.InTx(func(tx *gorm.DB) error {
		if err := s.userRepo.WithTx(tx).SetTeamMembership(userID, &teamID); err != nil {
			return fmt.Errorf("failed to set team membership: %w", err)
		}
		return s.roleSync.WithTx(tx).Synchronize(userID)
	})
}

// RemoveMember clears the user's membership of the team; their role set is
// resynchronized (they become unassigned unless they lead a team).
func (s *TeamService) RemoveMember(teamID, userID uuid.UUID) error {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrUserNotFound
		}
		return fmt.Errorf("failed to get user: %w", err)
	}
	if !user.IsMemberOf(teamID) {
		return apperrors.NewNotFoundError("team member")
	}

	return s.txRunner.InTx(func(tx *gorm.DB) error {
		if err := s.userRepo.WithTx(tx).SetTeamMembership(userID, nil); err != nil {
			return fmt.Errorf("failed to clear team membership: %w", err)
		}
		return s.roleSync.WithTx(tx).Synchronize(userID)
	})
}

// Delete removes a team without leaving dangling references: every member's
// team_id and the leader's team_led_id are cleared in the same transaction,
// and role sets are resynchronized for everyone affected.
func (s *TeamService) Delete(id uuid.UUID) error {
	team, err := s.repo.GetWithMembers(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrTeamNotFound
		}
		return fmt.Errorf("failed to get team: %w", err)
	}

	return s.txRunner.InTx(func(tx *gorm.DB) error {
		userRepo := s.userRepo.WithTx(tx)
		roleSync := s.roleSync.WithTx(tx)

		for _, member := range team.Members {
			if err := userRepo.SetTeamMembership(member.ID, nil); err != nil {
				return fmt.Errorf("failed to clear membership: %w", err)
			}
		}
		if err := userRepo.SetTeamLed(team.LeaderID, nil); err != nil {
			return fmt.Errorf("failed to clear leadership: %w", err)
		}
		if err := s.repo.WithTx(tx).Delete(id); err != nil {
			return fmt.Errorf("failed to delete team: %w", err)
		}

		if err := roleSync.Synchronize(team.LeaderID); err != nil {
			return err
		}
		for _, member := range team.Members {
			if err := roleSync.Synchronize(member.ID); err != nil {
				return err
			}
		}
		return nil
	})
}

// toTeamResponse converts a team model to response
func toTeamResponse(team *models.Team) *TeamResponse {
	return &TeamResponse{
		ID:        team.ID,
		Name:      team.Name,
		LeaderID:  team.LeaderID,
		ProjectID: team.ProjectID,
		Version:   team.Version,
		CreatedAt: team.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt: team.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
