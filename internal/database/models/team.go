package models

import (
	"github.com/google/uuid"
)

// Team represents a team of members. LeadID is nullable on purpose: a team
// without a lead carries NULL, never a sentinel value.
type Team struct {
	BaseModel
	Name        string     `json:"name" gorm:"not null;size:100" validate:"required,max=100"`
	Description string     `json:"description" gorm:"size:500" validate:"max=500"`
	Color       string     `json:"color" gorm:"size:7"`
	LeadID      *uuid.UUID `json:"lead_id,omitempty" gorm:"type:uuid;index"`

	// Relationships
	Members     []Member     `json:"members,omitempty" gorm:"foreignKey:TeamID"`
	Allocations []Allocation `json:"allocations,omitempty" gorm:"foreignKey:TeamID"`
}

// TableName returns the table name for Team
func (Team) TableName() string {
	return "teams"
}
