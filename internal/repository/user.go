package repository

import (
	"vacation-manager-backend/internal/database/models"
	apperrors "vacation-manager-backend/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserRepository handles database operations for users
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// WithTx returns a repository bound to the given transaction.
func (r *UserRepository) WithTx(tx *gorm.DB) UserRepositoryInterface {
	if tx == nil {
		return r
	}
	return &UserRepository{db: tx}
}

// Create creates a new user
func (r *UserRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(id uuid.UUID) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByEmail retrieves a user by email
func (r *UserRepository) GetByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "email = ?", email).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetAll retrieves all users with pagination
func (r *UserRepository) GetAll(limit, offset int) ([]models.User, int64, error) {
	var users []models.User
	var total int64

	if err := r.db.Model(&models.User{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Order("last_name, first_name").Limit(limit).Offset(offset).Find(&users).Error
	if err != nil {
		return nil, 0, err
	}

	return users, total, nil
}

// GetByTeamID retrieves all members of a team (the leader is not a member)
func (r *UserRepository) GetByTeamID(teamID uuid.UUID) ([]models.User, error) {
	var users []models.User
	err := r.db.Where("team_id = ?", teamID).Order("last_name, first_name").Find(&users).Error
	return users, err
}

// GetWithoutTeam retrieves users that belong to no team
func (r *UserRepository) GetWithoutTeam() ([]models.User, error) {
	var users []models.User
	err := r.db.Where("team_id IS NULL").Order("last_name, first_name").Find(&users).Error
	return users, err
}

// Update updates a user
func (r *UserRepository) Update(user *models.User) error {
	return r.db.Save(user).Error
}

// SetTeamMembership sets or clears the team the user is a member of
func (r *UserRepository) SetTeamMembership(userID uuid.UUID, teamID *uuid.UUID) error {
	return r.db.Model(&models.User{}).Where("id = ?", userID).Update("team_id", teamID).Error
}

// SetTeamLed sets or clears the team the user leads
func (r *UserRepository) SetTeamLed(userID uuid.UUID, teamLedID *uuid.UUID) error {
	return r.db.Model(&models.User{}).Where("id = ?", userID).Update("team_led_id", teamLedID).Error
}

// ClaimTeamLed marks the user as leader of the team only if they lead nothing
// yet. Zero rows means a concurrent writer made the user a leader first; the
// row predicate is what keeps one user from ending up leading two teams.
func (r *UserRepository) ClaimTeamLed(userID uuid.UUID, teamLedID uuid.UUID) error {
	result := r.db.Model(&models.User{}).
		Where("id = ? AND team_led_id IS NULL", userID).
		Update("team_led_id", teamLedID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrAlreadyLeadsTeam
	}
	return nil
}

// Delete deletes a user
func (r *UserRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.User{}, "id = ?", id).Error
}
