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

// ProjectService manages projects and their team assignments. A team works on
// at most one project; assignment is last-writer-wins and deleting a project
// releases its teams rather than deleting them.
type ProjectService struct {
	repo      repository.ProjectRepositoryInterface
	teamRepo  repository.TeamRepositoryInterface
	txRunner  database.TxRunner
	validator *validator.Validate
}

// NewProjectService creates a new project service
func NewProjectService(repo repository.ProjectRepositoryInterface, teamRepo repository.TeamRepositoryInterface, txRunner database.TxRunner, validator *validator.Validate) *ProjectService {
	return &ProjectService{
		repo:      repo,
		teamRepo:  teamRepo,
		txRunner:  txRunner,
		validator: validator,
	}
}

// CreateProjectRequest represents the request to create a project
type CreateProjectRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=100"`
	Description string `json:"description" validate:"omitempty,max=1000"`
}

// UpdateProjectRequest represents the request to update a project
type UpdateProjectRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=100"`
	Description string `json:"description" validate:"omitempty,max=1000"`
}

// ProjectResponse represents the response for project operations
type ProjectResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   string    `json:"created_at"`
	UpdatedAt   string    `json:"updated_at"`
}

// ProjectDetailsResponse represents a project with its assigned teams
type ProjectDetailsResponse struct {
	Project ProjectResponse `json:"project"`
	Teams   []TeamResponse  `json:"teams"`
}

// ProjectListResponse represents a paginated list of projects
type ProjectListResponse struct {
	Projects []ProjectResponse `json:"projects"`
	Total    int64             `json:"total"`
	Page     int               `json:"page"`
	PageSize int               `json:"page_size"`
}

// Create creates a new project
func (s *ProjectService) Create(req *CreateProjectRequest) (*ProjectResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	existing, err := s.repo.GetByName(req.Name)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing project by name: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrProjectExists
	}

	project := &models.Project{
		Name:        req.Name,
		Description: req.Description,
	}

	if err := s.repo.Create(project); err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	return toProjectResponse(project), nil
}

// GetByID retrieves a project with the teams assigned to it
func (s *ProjectService) GetByID(id uuid.UUID) (*ProjectDetailsResponse, error) {
	project, err := s.repo.GetWithTeams(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	details := &ProjectDetailsResponse{
		Project: *toProjectResponse(project),
		Teams:   make([]TeamResponse, len(project.Teams)),
	}
	for i := range project.Teams {
		details.Teams[i] = *toTeamResponse(&project.Teams[i])
	}

	return details, nil
}

// List retrieves projects with pagination
func (s *ProjectService) List(page, pageSize int) (*ProjectListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	offset := (page - 1) * pageSize
	projects, total, err := s.repo.GetAll(pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get projects: %w", err)
	}

	responses := make([]ProjectResponse, len(projects))
	for i := range projects {
		responses[i] = *toProjectResponse(&projects[i])
	}

	return &ProjectListResponse{
		Projects: responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// Update edits a project's name and description
func (s *ProjectService) Update(id uuid.UUID, req *UpdateProjectRequest) (*ProjectResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	project, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	if project.Name != req.Name {
		existing, err := s.repo.GetByName(req.Name)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to check existing project by name: %w", err)
		}
		if existing != nil {
			return nil, apperrors.ErrProjectExists
		}
	}

	project.Name = req.Name
	project.Description = req.Description

	if err := s.repo.Update(project); err != nil {
		return nil, fmt.Errorf("failed to update project: %w", err)
	}

	return toProjectResponse(project), nil
}

// AssignTeam puts a team on the project. A team already assigned elsewhere is
// simply reassigned.
func (s *ProjectService) AssignTeam(projectID, teamID uuid.UUID) error {
	if _, err := s.repo.GetByID(projectID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrProjectNotFound
		}
		return fmt.Errorf("failed to get project: %w", err)
	}
	if _, err := s.teamRepo.GetByID(teamID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrTeamNotFound
		}
		return fmt.Errorf("failed to get team: %w", err)
	}

	if err := s.teamRepo.SetProject(teamID, &projectID); err != nil {
		return fmt.Errorf("failed to assign team to project: %w", err)
	}
	return nil
}

// UnassignTeam takes a team off the project it is assigned to.
func (s *ProjectService) UnassignTeam(projectID, teamID uuid.UUID) error {
	team, err := s.teamRepo.GetByID(teamID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrTeamNotFound
		}
		return fmt.Errorf("failed to get team: %w", err)
	}
	if team.ProjectID == nil || *team.ProjectID != projectID {
		return apperrors.NewNotFoundError("project assignment")
	}

	if err := s.teamRepo.SetProject(teamID, nil); err != nil {
		return fmt.Errorf("failed to unassign team from project: %w", err)
	}
	return nil
}

// Delete removes a project. Teams assigned to it are released, not deleted;
// the release and the delete commit together.
func (s *ProjectService) Delete(id uuid.UUID) error {
	project, err := s.repo.GetWithTeams(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrProjectNotFound
		}
		return fmt.Errorf("failed to get project: %w", err)
	}

	return s.txRunner.InTx(func(tx *gorm.DB) error {
		teamRepo := s.teamRepo.WithTx(tx)
		for _, team := range project.Teams {
			if err := teamRepo.SetProject(team.ID, nil); err != nil {
				return fmt.Errorf("failed to release team: %w", err)
			}
		}
		if err := s.repo.WithTx(tx).Delete(id); err != nil {
			return fmt.Errorf("failed to delete project: %w", err)
		}
		return nil
	})
}

// toProjectResponse converts a project model to response
func toProjectResponse(project *models.Project) *ProjectResponse {
	return &ProjectResponse{
		ID:          project.ID,
		Name:        project.Name,
		Description: project.Description,
		CreatedAt:   project.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:   project.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
