package service

import (
	"errors"
	"fmt"

	"vacation-manager-backend/internal/database/models"
	apperrors "vacation-manager-backend/internal/errors"
	"vacation-manager-backend/internal/identity"
	"vacation-manager-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// derivedFacetRoles are the role tags computed from graph position. CEO is
// deliberately absent: it is granted once out-of-band and never touched by
// synchronization.
var derivedFacetRoles = []models.Role{
	models.RoleTeamLead,
	models.RoleDeveloper,
	models.RoleUnassigned,
}

// RoleSyncService keeps the identity store's role grants equal to the pure
// function of each user's position in the organization graph: leading a team
// grants team_lead, ordinary membership grants developer, neither grants
// unassigned. Every structural mutation runs Synchronize for the affected
// users inside the same transaction, so role state is never observed stale.
type RoleSyncService struct {
	userRepo repository.UserRepositoryInterface
	roles    identity.RoleStoreInterface
}

// NewRoleSyncService creates a new role synchronization service
func NewRoleSyncService(userRepo repository.UserRepositoryInterface, roles identity.RoleStoreInterface) *RoleSyncService {
	return &RoleSyncService{
		userRepo: userRepo,
		roles:    roles,
	}
}

// WithTx returns a synchronizer bound to the given transaction.
func (s *RoleSyncService) WithTx(tx *gorm.DB) RoleSynchronizerInterface {
	return &RoleSyncService{
		userRepo: s.userRepo.WithTx(tx),
		roles:    s.roles.WithTx(tx),
	}
}

// Synchronize recomputes the derived role set for one user and applies the
// delta to the identity store. It is idempotent: with no intervening graph
// change a second run produces no grants and no revocations. A failure
// surfaces as DependencyUnavailable and aborts the enclosing transaction, so
// the graph mutation that triggered the sync is rolled back rather than
// leaving roles stale.
func (s *RoleSyncService) Synchronize(userID uuid.UUID) error {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrUserNotFound
		}
		return fmt.Errorf("load user for role sync: %w", err)
	}

	desired := desiredRoles(user)
	current, err := s.roles.RolesOf(userID)
	if err != nil {
		return fmt.Errorf("synchronize roles: %w", err)
	}
	currentSet := NewRoleSet(current)

	for _, role := range derivedFacetRoles {
		switch {
		case desired.Has(role) && !currentSet.Has(role):
			if err := s.roles.Grant(userID, role); err != nil {
				return fmt.Errorf("synchronize roles: %w", err)
			}
		case !desired.Has(role) && currentSet.Has(role):
			if err := s.roles.Revoke(userID, role); err != nil {
				return fmt.Errorf("synchronize roles: %w", err)
			}
		}
	}

	return nil
}

// desiredRoles computes the facet roles a user should hold from their graph
// position alone.
func desiredRoles(user *models.User) RoleSet {
	desired := make(RoleSet, 2)
	if user.IsLeader() {
		desired[models.RoleTeamLead] = true
	}
	if user.TeamID != nil {
		desired[models.RoleDeveloper] = true
	}
	if user.TeamID == nil && !user.IsLeader() {
		desired[models.RoleUnassigned] = true
	}
	return desired
}
