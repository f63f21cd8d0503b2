package models

import (
	"github.com/google/uuid"
)

// Team represents a team with exactly one leader and an optional project
// assignment. Version backs optimistic locking: concurrent leader changes on
// the same team must not silently overwrite each other.
type Team struct {
	BaseModel
	Name      string     `json:"name" gorm:"uniqueIndex;not null;size:50" validate:"required,min=1,max=50"`
	LeaderID  uuid.UUID  `json:"leader_id" gorm:"type:uuid;not null;index" validate:"required"`
	ProjectID *uuid.UUID `json:"project_id,omitempty" gorm:"type:uuid;index"`
	Version   int        `json:"version" gorm:"not null;default:1"`

	// Relationships
	Members []User   `json:"members,omitempty" gorm:"foreignKey:TeamID"`
	Project *Project `json:"project,omitempty" gorm:"foreignKey:ProjectID;constraint:OnDelete:SET NULL"`
}

// TableName returns the table name for Team
func (Team) TableName() string {
	return "teams"
}
