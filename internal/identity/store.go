// Package identity wraps the role store the rest of the system treats as an
// external collaborator. Services only see RoleStoreInterface; the backing
// table lives in the same Postgres instance today, but nothing outside this
// package may assume that.
package identity

import (
	"errors"
	"fmt"

	"vacation-manager-backend/internal/database/models"
	apperrors "vacation-manager-backend/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RoleStoreInterface exposes grant/revoke/query of discrete role tags.
// Implementations must be safe to call inside an enclosing transaction via
// WithTx so role mutations commit or roll back together with the graph
// mutation that triggered them.
type RoleStoreInterface interface {
	WithTx(tx *gorm.DB) RoleStoreInterface
	Grant(userID uuid.UUID, role models.Role) error
	Revoke(userID uuid.UUID, role models.Role) error
	RevokeAll(userID uuid.UUID) error
	Has(userID uuid.UUID, role models.Role) (bool, error)
	RolesOf(userID uuid.UUID) ([]models.Role, error)
}

// RoleStore is the gorm-backed role store.
type RoleStore struct {
	db *gorm.DB
}

// NewRoleStore creates a new role store
func NewRoleStore(db *gorm.DB) *RoleStore {
	return &RoleStore{db: db}
}

// WithTx returns a store bound to the given transaction.
func (s *RoleStore) WithTx(tx *gorm.DB) RoleStoreInterface {
	if tx == nil {
		return s
	}
	return &RoleStore{db: tx}
}

// Grant adds a role tag to a user. Granting an already-held role is a no-op.
func (s *RoleStore) Grant(userID uuid.UUID, role models.Role) error {
	held, err := s.Has(userID, role)
	if err != nil {
		return err
	}
	if held {
		return nil
	}
	if err := s.db.Create(&models.UserRole{UserID: userID, Role: role}).Error; err != nil {
		return fmt.Errorf("grant role %s: %w", role, apperrors.ErrIdentityUnavailable)
	}
	return nil
}

// Revoke removes a role tag from a user. Revoking an absent role is a no-op.
func (s *RoleStore) Revoke(userID uuid.UUID, role models.Role) error {
	err := s.db.Delete(&models.UserRole{}, "user_id = ? AND role = ?", userID, role).Error
	if err != nil {
		return fmt.Errorf("revoke role %s: %w", role, apperrors.ErrIdentityUnavailable)
	}
	return nil
}

// RevokeAll removes every role tag held by the user. Used when a user leaves
// the organization.
func (s *RoleStore) RevokeAll(userID uuid.UUID) error {
	err := s.db.Delete(&models.UserRole{}, "user_id = ?", userID).Error
	if err != nil {
		return fmt.Errorf("revoke all roles: %w", apperrors.ErrIdentityUnavailable)
	}
	return nil
}

// Has reports whether the user currently holds the role.
func (s *RoleStore) Has(userID uuid.UUID, role models.Role) (bool, error) {
	var userRole models.UserRole
	err := s.db.First(&userRole, "user_id = ? AND role = ?", userID, role).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("query role %s: %w", role, apperrors.ErrIdentityUnavailable)
	}
	return true, nil
}

// RolesOf returns every role tag currently granted to the user.
func (s *RoleStore) RolesOf(userID uuid.UUID) ([]models.Role, error) {
	var grants []models.UserRole
	if err := s.db.Where("user_id = ?", userID).Find(&grants).Error; err != nil {
		return nil, fmt.Errorf("list roles: %w", apperrors.ErrIdentityUnavailable)
	}
	roles := make([]models.Role, len(grants))
	for i, grant := range grants {
		roles[i] = grant.Role
	}
	return roles, nil
}
