package repository

import (
	"vacation-manager-backend/internal/database/models"
	apperrors "vacation-manager-backend/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// HolidayRepository handles database operations for holiday requests
type HolidayRepository struct {
	db *gorm.DB
}

// NewHolidayRepository creates a new holiday repository
func NewHolidayRepository(db *gorm.DB) *HolidayRepository {
	return &HolidayRepository{db: db}
}

// Create creates a new holiday request
func (r *HolidayRepository) Create(holiday *models.Holiday) error {
	return r.db.Create(holiday).Error
}

// GetByID retrieves a holiday request by ID
func (r *HolidayRepository) GetByID(id uuid.UUID) (*models.Holiday, error) {
	var holiday models.Holiday
	err := r.db.First(&holiday, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &holiday, nil
}

// GetWithRequester retrieves a holiday request with its requester eagerly loaded
func (r *HolidayRepository) GetWithRequester(id uuid.UUID) (*models.Holiday, error) {
	var holiday models.Holiday
	err := r.db.Preload("Requester").First(&holiday, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &holiday, nil
}

// GetByRequesterID retrieves all requests filed by a user, newest first
func (r *HolidayRepository) GetByRequesterID(requesterID uuid.UUID) ([]models.Holiday, error) {
	var holidays []models.Holiday
	err := r.db.Where("requester_id = ?", requesterID).
		Order("date_of_request DESC, start_date").
		Find(&holidays).Error
	return holidays, err
}

// GetPendingByTeam retrieves pending requests from ordinary members of the
// given team. Requesters who lead a team themselves are excluded: their
// requests escalate past peer leads to the CEO tier.
func (r *HolidayRepository) GetPendingByTeam(teamID uuid.UUID) ([]models.Holiday, error) {
	var holidays []models.Holiday
	err := r.db.Preload("Requester").
		Joins("JOIN users ON users.id = holidays.requester_id").
		Where("holidays.is_approved = false").
		Where("users.team_id = ?", teamID).
		Where("users.team_led_id IS NULL").
		Order("holidays.date_of_request").
		Find(&holidays).Error
	return holidays, err
}

// GetAllPending retrieves every pending request across the organization
func (r *HolidayRepository) GetAllPending() ([]models.Holiday, error) {
	var holidays []models.Holiday
	err := r.db.Preload("Requester").
		Where("is_approved = false").
		Order("date_of_request").
		Find(&holidays).Error
	return holidays, err
}

// Update rewrites the mutable fields of a pending request under optimistic
// locking.
func (r *HolidayRepository) Update(holiday *models.Holiday) error {
	result := r.db.Model(&models.Holiday{}).
		Where("id = ? AND version = ?", holiday.ID, holiday.Version).
		Updates(map[string]interface{}{
			"start_date":  holiday.StartDate,
			"end_date":    holiday.EndDate,
			"is_half_day": holiday.IsHalfDay,
			"version":     holiday.Version + 1,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrHolidayModified
	}
	holiday.Version++
	return nil
}

// Approve marks the request approved under optimistic locking. The version
// predicate also guards against approving a request that was concurrently
// edited or already decided.
func (r *HolidayRepository) Approve(id uuid.UUID, version int) error {
	result := r.db.Model(&models.Holiday{}).
		Where("id = ? AND version = ? AND is_approved = false", id, version).
		Updates(map[string]interface{}{
			"is_approved": true,
			"version":     version + 1,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrHolidayModified
	}
	return nil
}

// Delete removes a pending request under optimistic locking. The predicate
// keeps a delete racing an approve from removing an already decided absence.
func (r *HolidayRepository) Delete(id uuid.UUID, version int) error {
	result := r.db.
		Where("id = ? AND version = ? AND is_approved = false", id, version).
		Delete(&models.Holiday{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrHolidayModified
	}
	return nil
}
