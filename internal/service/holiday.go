package service

import (
	"errors"
	"fmt"
	"time"

	"vacation-manager-backend/internal/database/models"
	apperrors "vacation-manager-backend/internal/errors"
	"vacation-manager-backend/internal/identity"
	"vacation-manager-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

// HolidayService governs the lifecycle of leave requests: created pending,
// editable by the requester while pending, approved exactly once, deletable
// only while pending by an actor the access policy allows.
type HolidayService struct {
	repo      repository.HolidayRepositoryInterface
	userRepo  repository.UserRepositoryInterface
	roles     identity.RoleStoreInterface
	policy    *HolidayAccessPolicy
	validator *validator.Validate
}

// NewHolidayService creates a new holiday service
func NewHolidayService(repo repository.HolidayRepositoryInterface, userRepo repository.UserRepositoryInterface, roles identity.RoleStoreInterface, policy *HolidayAccessPolicy, validator *validator.Validate) *HolidayService {
	return &HolidayService{
		repo:      repo,
		userRepo:  userRepo,
		roles:     roles,
		policy:    policy,
		validator: validator,
	}
}

// CreateHolidayRequest represents the request to file a leave request
type CreateHolidayRequest struct {
	StartDate string `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate   string `json:"end_date" validate:"required,datetime=2006-01-02"`
	IsHalfDay bool   `json:"is_half_day"`
}

// UpdateHolidayRequest represents the request to edit a pending leave request
type UpdateHolidayRequest struct {
	StartDate string `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate   string `json:"end_date" validate:"required,datetime=2006-01-02"`
	IsHalfDay bool   `json:"is_half_day"`
}

// HolidayResponse represents the response for holiday operations
type HolidayResponse struct {
	ID            uuid.UUID `json:"id"`
	RequesterID   uuid.UUID `json:"requester_id"`
	RequesterName string    `json:"requester_name,omitempty"`
	StartDate     string    `json:"start_date"`
	EndDate       string    `json:"end_date"`
	DateOfRequest string    `json:"date_of_request"`
	IsHalfDay     bool      `json:"is_half_day"`
	IsApproved    bool      `json:"is_approved"`
	Version       int       `json:"version"`
}

// Create files a leave request for the acting user themselves. It starts
// pending and date_of_request is stamped with today's date, immutable from
// then on.
func (s *HolidayService) Create(actorID uuid.UUID, req *CreateHolidayRequest) (*HolidayResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	startDate, endDate, err := parseDateRange(req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}

	if _, err := s.userRepo.GetByID(actorID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to load requester: %w", err)
	}

	holiday := &models.Holiday{
		RequesterID:   actorID,
		StartDate:     startDate,
		EndDate:       endDate,
		DateOfRequest: today(),
		IsHalfDay:     req.IsHalfDay,
		IsApproved:    false,
		Version:       1,
	}

	if err := s.repo.Create(holiday); err != nil {
		return nil, fmt.Errorf("failed to create holiday request: %w", err)
	}

	return toHolidayResponse(holiday), nil
}

// GetByID retrieves a single leave request with its requester
func (s *HolidayService) GetByID(id uuid.UUID) (*HolidayResponse, error) {
	holiday, err := s.repo.GetWithRequester(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrHolidayNotFound
		}
		return nil, fmt.Errorf("failed to get holiday request: %w", err)
	}
	return toHolidayResponse(holiday), nil
}

// ListByRequester retrieves the acting user's own requests
func (s *HolidayService) ListByRequester(requesterID uuid.UUID) ([]HolidayResponse, error) {
	holidays, err := s.repo.GetByRequesterID(requesterID)
	if err != nil {
		return nil, fmt.Errorf("failed to list holiday requests: %w", err)
	}
	return toHolidayResponses(holidays), nil
}

// ListPending retrieves the pending queue visible to the actor. The CEO sees
// every pending request; a team lead sees only pending requests from ordinary
// members of the team they lead (never from fellow leads, never their own);
// everyone else is denied.
func (s *HolidayService) ListPending(actorID uuid.UUID) ([]HolidayResponse, error) {
	actor, err := s.userRepo.GetByID(actorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to load actor: %w", err)
	}

	actorRoles, err := s.actorRoles(actorID)
	if err != nil {
		return nil, err
	}

	switch {
	case actorRoles.Has(models.RoleCEO):
		holidays, err := s.repo.GetAllPending()
		if err != nil {
			return nil, fmt.Errorf("failed to list pending requests: %w", err)
		}
		return toHolidayResponses(holidays), nil
	case actorRoles.Has(models.RoleTeamLead) && actor.TeamLedID != nil:
		holidays, err := s.repo.GetPendingByTeam(*actor.TeamLedID)
		if err != nil {
			return nil, fmt.Errorf("failed to list pending requests: %w", err)
		}
		return toHolidayResponses(holidays), nil
	default:
		return nil, apperrors.ErrPendingQueueDenied
	}
}

// Update edits the dates of a pending request. Only the requester may edit,
// and only while the request is pending.
func (s *HolidayService) Update(id, actorID uuid.UUID, req *UpdateHolidayRequest) (*HolidayResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	startDate, endDate, err := parseDateRange(req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}

	holiday, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrHolidayNotFound
		}
		return nil, fmt.Errorf("failed to get holiday request: %w", err)
	}

	if holiday.IsApproved {
		return nil, apperrors.ErrHolidayAlreadyApproved
	}
	if holiday.RequesterID != actorID {
		return nil, apperrors.ErrNotRequester
	}

	holiday.StartDate = startDate
	holiday.EndDate = endDate
	holiday.IsHalfDay = req.IsHalfDay

	if err := s.repo.Update(holiday); err != nil {
		return nil, err
	}

	return toHolidayResponse(holiday), nil
}

// Approve marks a pending request approved. Approval is irreversible; any
// later approve or delete attempt fails regardless of actor.
func (s *HolidayService) Approve(id, actorID uuid.UUID) error {
	holiday, requester, err := s.loadWithRequester(id)
	if err != nil {
		return err
	}
	if holiday.IsApproved {
		return apperrors.ErrHolidayAlreadyApproved
	}

	actor, actorRoles, err := s.loadActor(actorID)
	if err != nil {
		return err
	}

	if !s.policy.CanApprove(actor, actorRoles, holiday, requester) {
		return apperrors.ErrApprovalDenied
	}

	return s.repo.Approve(holiday.ID, holiday.Version)
}

// Delete removes a pending request. Approved requests can never be deleted
// through this transition; approval represents a committed, calendar-visible
// absence.
func (s *HolidayService) Delete(id, actorID uuid.UUID) error {
	holiday, requester, err := s.loadWithRequester(id)
	if err != nil {
		return err
	}
	if holiday.IsApproved {
		return apperrors.ErrHolidayAlreadyApproved
	}

	actor, actorRoles, err := s.loadActor(actorID)
	if err != nil {
		return err
	}

	if !s.policy.CanDelete(actor, actorRoles, holiday, requester) {
		return apperrors.ErrDeletionDenied
	}

	return s.repo.Delete(holiday.ID, holiday.Version)
}

func (s *HolidayService) loadWithRequester(id uuid.UUID) (*models.Holiday, *models.User, error) {
	holiday, err := s.repo.GetWithRequester(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, apperrors.ErrHolidayNotFound
		}
		return nil, nil, fmt.Errorf("failed to get holiday request: %w", err)
	}
	requester := holiday.Requester
	if requester == nil {
		loaded, err := s.userRepo.GetByID(holiday.RequesterID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, nil, apperrors.ErrUserNotFound
			}
			return nil, nil, fmt.Errorf("failed to load requester: %w", err)
		}
		requester = loaded
	}
	return holiday, requester, nil
}

func (s *HolidayService) loadActor(actorID uuid.UUID) (*models.User, RoleSet, error) {
	actor, err := s.userRepo.GetByID(actorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, apperrors.ErrUserNotFound
		}
		return nil, nil, fmt.Errorf("failed to load actor: %w", err)
	}
	actorRoles, err := s.actorRoles(actorID)
	if err != nil {
		return nil, nil, err
	}
	return actor, actorRoles, nil
}

func (s *HolidayService) actorRoles(actorID uuid.UUID) (RoleSet, error) {
	roles, err := s.roles.RolesOf(actorID)
	if err != nil {
		return nil, fmt.Errorf("failed to load actor roles: %w", err)
	}
	return NewRoleSet(roles), nil
}

// parseDateRange parses and orders the request dates. An end date before the
// start date is rejected; the original system never enforced this, treated
// here as an omission rather than policy.
func parseDateRange(start, end string) (time.Time, time.Time, error) {
	startDate, err := time.Parse(dateLayout, start)
	if err != nil {
		return time.Time{}, time.Time{}, apperrors.NewValidationError("start_date", "must be a date in format 2006-01-02")
	}
	endDate, err := time.Parse(dateLayout, end)
	if err != nil {
		return time.Time{}, time.Time{}, apperrors.NewValidationError("end_date", "must be a date in format 2006-01-02")
	}
	if endDate.Before(startDate) {
		return time.Time{}, time.Time{}, apperrors.ErrInvalidDateRange
	}
	return startDate, endDate, nil
}

// today returns the current date truncated to midnight UTC.
func today() time.Time {
	return time.Now().UTC().Truncate(24 * time.Hour)
}

func toHolidayResponse(holiday *models.Holiday) *HolidayResponse {
	resp := &HolidayResponse{
		ID:            holiday.ID,
		RequesterID:   holiday.RequesterID,
		StartDate:     holiday.StartDate.Format(dateLayout),
		EndDate:       holiday.EndDate.Format(dateLayout),
		DateOfRequest: holiday.DateOfRequest.Format(dateLayout),
		IsHalfDay:     holiday.IsHalfDay,
		IsApproved:    holiday.IsApproved,
		Version:       holiday.Version,
	}
	if holiday.Requester != nil {
		resp.RequesterName = holiday.Requester.FirstName + " " + holiday.Requester.LastName
	}
	return resp
}

func toHolidayResponses(holidays []models.Holiday) []HolidayResponse {
	responses := make([]HolidayResponse, len(holidays))
	for i := range holidays {
		responses[i] = *toHolidayResponse(&holidays[i])
	}
	return responses
}
