package models

import (
	"github.com/google/uuid"
)

// User represents an employee of the organization. Team membership and team
// leadership are stored as id references resolved through the repositories,
// never as embedded ownership; the user's role set in the identity store is
// derived from these two fields plus the out-of-band CEO grant.
type User struct {
	BaseModel
	TeamID    *uuid.UUID `json:"team_id,omitempty" gorm:"type:uuid;index"`
	TeamLedID *uuid.UUID `json:"team_led_id,omitempty" gorm:"type:uuid;uniqueIndex"`
	FirstName string     `json:"first_name" gorm:"not null;size:70" validate:"required,max=70"`
	LastName  string     `json:"last_name" gorm:"not null;size:70" validate:"required,max=70"`
	Email     string     `json:"email" gorm:"uniqueIndex;not null;size:255" validate:"required,email,max=255"`
	Phone     string     `json:"phone" gorm:"size:20"`

	// Relationships
	Team     *Team     `json:"team,omitempty" gorm:"foreignKey:TeamID;constraint:OnDelete:SET NULL"`
	Holidays []Holiday `json:"holidays,omitempty" gorm:"foreignKey:RequesterID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}

// IsMemberOf reports whether the user is an ordinary member of the given team.
func (u *User) IsMemberOf(teamID uuid.UUID) bool {
	return u.TeamID != nil && *u.TeamID == teamID
}

// LeadsTeam reports whether the user leads the given team.
func (u *User) LeadsTeam(teamID uuid.UUID) bool {
	return u.TeamLedID != nil && *u.TeamLedID == teamID
}

// IsLeader reports whether the user leads any team.
func (u *User) IsLeader() bool {
	return u.TeamLedID != nil
}
