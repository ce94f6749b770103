package models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Member represents a team member with a weekly hour capacity
type Member struct {
	BaseModel
	TeamID      *uuid.UUID                  `json:"team_id,omitempty" gorm:"type:uuid;index"`
	Name        string                      `json:"name" gorm:"not null;size:200" validate:"required,max=200"`
	Email       string                      `json:"email" gorm:"uniqueIndex;not null;size:255" validate:"required,email,max=255"`
	Role        string                      `json:"role" gorm:"size:100" validate:"max=100"`
	Department  string                      `json:"department" gorm:"size:100" validate:"max=100"`
	Capacity    float64                     `json:"capacity" gorm:"not null" validate:"required,gt=0"` // hours per week
	Skills      datatypes.JSONSlice[string] `json:"skills" gorm:"type:jsonb"`
	AvatarColor string                      `json:"avatar_color" gorm:"size:7"`
	IsTeamLead  bool                        `json:"is_team_lead" gorm:"default:false"`

	// Relationships
	Team        *Team        `json:"team,omitempty" gorm:"foreignKey:TeamID;constraint:OnDelete:SET NULL"`
	Allocations []Allocation `json:"allocations,omitempty" gorm:"foreignKey:AssigneeID"`
	TimeEntries []TimeEntry  `json:"time_entries,omitempty" gorm:"foreignKey:MemberID"`
}

// TableName returns the table name for Member
func (Member) TableName() string {
	return "members"
}
