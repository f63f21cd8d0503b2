package models

import (
	"time"

	"github.com/google/uuid"
)

// Holiday represents a leave request. DateOfRequest is stamped at creation
// and never changes. An approved request is frozen: it can no longer be
// edited, re-approved or deleted through the ordinary workflow. Version backs
// optimistic locking for concurrent approve/edit attempts.
type Holiday struct {
	BaseModel
	RequesterID   uuid.UUID `json:"requester_id" gorm:"type:uuid;not null;index" validate:"required"`
	StartDate     time.Time `json:"start_date" gorm:"type:date;not null" validate:"required"`
	EndDate       time.Time `json:"end_date" gorm:"type:date;not null" validate:"required"`
	DateOfRequest time.Time `json:"date_of_request" gorm:"type:date;not null"`
	IsHalfDay     bool      `json:"is_half_day" gorm:"not null;default:false"`
	IsApproved    bool      `json:"is_approved" gorm:"not null;default:false"`
	Version       int       `json:"version" gorm:"not null;default:1"`

	// Relationships
	Requester *User `json:"requester,omitempty" gorm:"foreignKey:RequesterID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Holiday
func (Holiday) TableName() string {
	return "holidays"
}

// IsPending reports whether the request is still awaiting a decision.
func (h *Holiday) IsPending() bool {
	return !h.IsApproved
}
