package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "with this email"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// ForbiddenError represents an authorization failure: the acting user lacks
// the authority for the requested action. A policy "deny" is surfaced to
// callers through this type as well.
type ForbiddenError struct {
	Message string
}

func (e *ForbiddenError) Error() string {
	return e.Message
}

// Is enables errors.Is() comparison for ForbiddenError
func (e *ForbiddenError) Is(target error) bool {
	t, ok := target.(*ForbiddenError)
	if !ok {
		return false
	}
	return e.Message == t.Message
}

// InvalidStateError represents a transition attempted on a terminal or locked
// entity, e.g. approving an already-approved holiday request.
type InvalidStateError struct {
	Message string
}

func (e *InvalidStateError) Error() string {
	return e.Message
}

// Is enables errors.Is() comparison for InvalidStateError
func (e *InvalidStateError) Is(target error) bool {
	t, ok := target.(*InvalidStateError)
	if !ok {
		return false
	}
	return e.Message == t.Message
}

// ConflictError represents a graph mutation that would violate a structural
// invariant, e.g. assigning a leader who already leads another team.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

// Is enables errors.Is() comparison for ConflictError
func (e *ConflictError) Is(target error) bool {
	t, ok := target.(*ConflictError)
	if !ok {
		return false
	}
	return e.Message == t.Message
}

// ConcurrencyError represents an optimistic-lock version mismatch under
// concurrent writers. The losing writer should retry against fresh state.
type ConcurrencyError struct {
	Entity string
}

func (e *ConcurrencyError) Error() string {
	return fmt.Sprintf("%s was modified concurrently, retry with fresh state", e.Entity)
}

// Is enables errors.Is() comparison for ConcurrencyError
func (e *ConcurrencyError) Is(target error) bool {
	t, ok := target.(*ConcurrencyError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// DependencyError represents an unreachable external collaborator (identity
// store, storage). Operations that triggered it are rolled back whole.
type DependencyError struct {
	Dependency string
}

func (e *DependencyError) Error() string {
	return fmt.Sprintf("%s unavailable", e.Dependency)
}

// Is enables errors.Is() comparison for DependencyError
func (e *DependencyError) Is(target error) bool {
	t, ok := target.(*DependencyError)
	if !ok {
		return false
	}
	return e.Dependency == t.Dependency
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrUserNotFound    = &NotFoundError{Entity: "user"}
	ErrTeamNotFound    = &NotFoundError{Entity: "team"}
	ErrProjectNotFound = &NotFoundError{Entity: "project"}
	ErrHolidayNotFound = &NotFoundError{Entity: "holiday request"}
	ErrLeaderNotFound  = &NotFoundError{Entity: "leader"}
)

// Already Exists Errors
var (
	ErrUserExists    = &AlreadyExistsError{Entity: "user", Context: "with this email"}
	ErrTeamExists    = &AlreadyExistsError{Entity: "team", Context: "with this name"}
	ErrProjectExists = &AlreadyExistsError{Entity: "project", Context: "with this name"}
)

// Authorization Errors
var (
	ErrNotRequester       = &ForbiddenError{Message: "only the requester may edit this holiday request"}
	ErrApprovalDenied     = &ForbiddenError{Message: "not authorized to approve this holiday request"}
	ErrDeletionDenied     = &ForbiddenError{Message: "not authorized to delete this holiday request"}
	ErrCEORoleRequired    = &ForbiddenError{Message: "this action requires the CEO role"}
	ErrPendingQueueDenied = &ForbiddenError{Message: "not authorized to view the pending queue"}
)

// State Errors
var (
	ErrHolidayAlreadyApproved = &InvalidStateError{Message: "holiday request is already approved"}
)

// Structural Conflict Errors
var (
	ErrAlreadyLeadsTeam     = &ConflictError{Message: "user already leads another team"}
	ErrLeaderCannotBeMember = &ConflictError{Message: "a team leader cannot be a member of the team they lead"}
	ErrStillLeadsTeam       = &ConflictError{Message: "user leads a team and cannot be removed until the team has a new leader"}
)

// Concurrency Errors
var (
	ErrTeamModified    = &ConcurrencyError{Entity: "team"}
	ErrHolidayModified = &ConcurrencyError{Entity: "holiday request"}
)

// Dependency Errors
var (
	ErrIdentityUnavailable = &DependencyError{Dependency: "identity store"}
)

// Validation Errors
var (
	ErrInvalidDateRange = &ValidationError{Field: "end_date", Message: "must not be before start_date"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsForbidden checks if an error is a ForbiddenError
func IsForbidden(err error) bool {
	var forbiddenErr *ForbiddenError
	return errors.As(err, &forbiddenErr)
}

// IsInvalidState checks if an error is an InvalidStateError
func IsInvalidState(err error) bool {
	var stateErr *InvalidStateError
	return errors.As(err, &stateErr)
}

// IsConflict checks if an error is a ConflictError
func IsConflict(err error) bool {
	var conflictErr *ConflictError
	return errors.As(err, &conflictErr)
}

// IsConcurrency checks if an error is a ConcurrencyError
func IsConcurrency(err error) bool {
	var concurrencyErr *ConcurrencyError
	return errors.As(err, &concurrencyErr)
}

// IsDependencyUnavailable checks if an error is a DependencyError
func IsDependencyUnavailable(err error) bool {
	var depErr *DependencyError
	return errors.As(err, &depErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewForbiddenError creates a new ForbiddenError
func NewForbiddenError(message string) error {
	return &ForbiddenError{Message: message}
}

// NewAuthenticationError creates a new AuthenticationError
func NewAuthenticationError(message string) error {
	return &AuthenticationError{Message: message}
}
