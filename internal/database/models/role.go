package models

import (
	"github.com/google/uuid"
)

// Role is a discrete role tag granted to a user in the identity store.
type Role string

const (
	// RoleCEO is the top-level authority, granted once out-of-band by the
	// seed script and never derived from graph position.
	RoleCEO Role = "ceo"
	// RoleTeamLead is held by users leading exactly one team.
	RoleTeamLead Role = "team_lead"
	// RoleDeveloper is held by ordinary team members.
	RoleDeveloper Role = "developer"
	// RoleUnassigned is held by users who neither lead nor belong to a team.
	RoleUnassigned Role = "unassigned"
)

// Label returns the human-readable role name shown in the employee directory.
func (r Role) Label() string {
	switch r {
	case RoleCEO:
		return "Chief Executive Officer"
	case RoleTeamLead:
		return "Leader of a team"
	case RoleDeveloper:
		return "Developer in a team"
	case RoleUnassigned:
		return "Unassigned"
	default:
		return string(r)
	}
}

// UserRole is a row in the identity store's grant table. One row per
// (user, role) pair.
type UserRole struct {
	BaseModel
	UserID uuid.UUID `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_user_roles_user_role"`
	Role   Role      `json:"role" gorm:"type:varchar(50);not null;uniqueIndex:idx_user_roles_user_role"`
}

// TableName returns the table name for UserRole
func (UserRole) TableName() string {
	return "user_roles"
}
