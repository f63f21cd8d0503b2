package repository

import (
	"vacation-manager-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// UserRepositoryInterface defines the interface for user repository operations
type UserRepositoryInterface interface {
	WithTx(tx *gorm.DB) UserRepositoryInterface
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetAll(limit, offset int) ([]models.User, int64, error)
	GetByTeamID(teamID uuid.UUID) ([]models.User, error)
	GetWithoutTeam() ([]models.User, error)
	Update(user *models.User) error
	SetTeamMembership(userID uuid.UUID, teamID *uuid.UUID) error
	SetTeamLed(userID uuid.UUID, teamLedID *uuid.UUID) error
	ClaimTeamLed(userID uuid.UUID, teamLedID uuid.UUID) error
	Delete(id uuid.UUID) error
}

// TeamRepositoryInterface defines the interface for team repository operations
type TeamRepositoryInterface interface {
	WithTx(tx *gorm.DB) TeamRepositoryInterface
	Create(team *models.Team) error
	GetByID(id uuid.UUID) (*models.Team, error)
	GetByName(name string) (*models.Team, error)
	GetAll(limit, offset int) ([]models.Team, int64, error)
	GetWithMembers(id uuid.UUID) (*models.Team, error)
	GetByProjectID(projectID uuid.UUID) ([]models.Team, error)
	GetWithoutProject() ([]models.Team, error)
	SetLeader(teamID uuid.UUID, leaderID uuid.UUID, version int) error
	SetProject(teamID uuid.UUID, projectID *uuid.UUID) error
	Delete(id uuid.UUID) error
}

// ProjectRepositoryInterface defines the interface for project repository operations
type ProjectRepositoryInterface interface {
	WithTx(tx *gorm.DB) ProjectRepositoryInterface
	Create(project *models.Project) error
	GetByID(id uuid.UUID) (*models.Project, error)
	GetByName(name string) (*models.Project, error)
	GetAll(limit, offset int) ([]models.Project, int64, error)
	GetWithTeams(id uuid.UUID) (*models.Project, error)
	Update(project *models.Project) error
	Delete(id uuid.UUID) error
}

// HolidayRepositoryInterface defines the interface for holiday repository operations
type HolidayRepositoryInterface interface {
	Create(holiday *models.Holiday) error
	GetByID(id uuid.UUID) (*models.Holiday, error)
	GetWithRequester(id uuid.UUID) (*models.Holiday, error)
	GetByRequesterID(requesterID uuid.UUID) ([]models.Holiday, error)
	GetPendingByTeam(teamID uuid.UUID) ([]models.Holiday, error)
	GetAllPending() ([]models.Holiday, error)
	Update(holiday *models.Holiday) error
	Approve(id uuid.UUID, version int) error
	Delete(id uuid.UUID, version int) error
}
