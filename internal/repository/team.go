package repository

import (
	"vacation-manager-backend/internal/database/models"
	apperrors "vacation-manager-backend/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TeamRepository handles database operations for teams
type TeamRepository struct {
	db *gorm.DB
}

// NewTeamRepository creates a new team repository
func NewTeamRepository(db *gorm.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

// WithTx returns a repository bound to the given transaction.
func (r *TeamRepository) WithTx(tx *gorm.DB) TeamRepositoryInterface {
	if tx == nil {
		return r
	}
	return &TeamRepository{db: tx}
}

// Create creates a new team
func (r *TeamRepository) Create(team *models.Team) error {
	return r.db.Create(team).Error
}

// GetByID retrieves a team by ID
func (r *TeamRepository) GetByID(id uuid.UUID) (*models.Team, error) {
	var team models.Team
	err := r.db.First(&team, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// GetByName retrieves a team by name
func (r *TeamRepository) GetByName(name string) (*models.Team, error) {
	var team models.Team
	err := r.db.First(&team, "name = ?", name).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// GetAll retrieves all teams with pagination
func (r *TeamRepository) GetAll(limit, offset int) ([]models.Team, int64, error) {
	var teams []models.Team
	var total int64

	if err := r.db.Model(&models.Team{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Preload("Project").Order("name").Limit(limit).Offset(offset).Find(&teams).Error
	if err != nil {
		return nil, 0, err
	}

	return teams, total, nil
}

// GetWithMembers retrieves a team with all its members
func (r *TeamRepository) GetWithMembers(id uuid.UUID) (*models.Team, error) {
	var team models.Team
	err := r.db.Preload("Members").First(&team, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// GetByProjectID retrieves all teams assigned to a project
func (r *TeamRepository) GetByProjectID(projectID uuid.UUID) ([]models.Team, error) {
	var teams []models.Team
	err := r.db.Where("project_id = ?", projectID).Order("name").Find(&teams).Error
	return teams, err
}

// GetWithoutProject retrieves teams not assigned to any project
func (r *TeamRepository) GetWithoutProject() ([]models.Team, error) {
	var teams []models.Team
	err := r.db.Where("project_id IS NULL").Order("name").Find(&teams).Error
	return teams, err
}

// SetLeader updates the team's leader under optimistic locking. A version
// mismatch means another writer won the race; the caller must retry against
// fresh state.
func (r *TeamRepository) SetLeader(teamID uuid.UUID, leaderID uuid.UUID, version int) error {
	result := r.db.Model(&models.Team{}).
		Where("id = ? AND version = ?", teamID, version).
		Updates(map[string]interface{}{
			"leader_id": leaderID,
			"version":   version + 1,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrTeamModified
	}
	return nil
}

// SetProject sets or clears the project the team works on
func (r *TeamRepository) SetProject(teamID uuid.UUID, projectID *uuid.UUID) error {
	return r.db.Model(&models.Team{}).Where("id = ?", teamID).Update("project_id", projectID).Error
}

// Delete deletes a team
func (r *TeamRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Team{}, "id = ?", id).Error
}
