package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Allocation represents a unit of work assigned to one member, optionally
// scoped to a team. It generalizes the legacy "assignment" (single due date)
// and "project allocation" (start/end range, project code, budget) records
// into one schema with optional fields.
type Allocation struct {
	BaseModel
	Title          string                      `json:"title" gorm:"not null;size:200" validate:"required,max=200"`
	Description    string                      `json:"description" gorm:"size:1000" validate:"max=1000"`
	AssigneeID     uuid.UUID                   `json:"assignee_id" gorm:"type:uuid;not null;index" validate:"required"`
	TeamID         *uuid.UUID                  `json:"team_id,omitempty" gorm:"type:uuid;index"`
	Priority       AllocationPriority          `json:"priority" gorm:"type:varchar(20);not null;default:'medium'"`
	Status         AllocationStatus            `json:"status" gorm:"type:varchar(20);not null;default:'todo'"`
	EstimatedHours float64                     `json:"estimated_hours" validate:"gte=0"`
	ActualHours    float64                     `json:"actual_hours" validate:"gte=0"`
	DueDate        *time.Time                  `json:"due_date,omitempty"`
	StartDate      *time.Time                  `json:"start_date,omitempty"`
	EndDate        *time.Time                  `json:"end_date,omitempty"`
	Tags           datatypes.JSONSlice[string] `json:"tags" gorm:"type:jsonb"`
	ProjectCode    string                      `json:"project_code" gorm:"size:50" validate:"max=50"`
	Budget         float64                     `json:"budget" validate:"gte=0"`

	// Relationships
	Assignee    *Member     `json:"assignee,omitempty" gorm:"foreignKey:AssigneeID"`
	Team        *Team       `json:"team,omitempty" gorm:"foreignKey:TeamID;constraint:OnDelete:SET NULL"`
	TimeEntries []TimeEntry `json:"time_entries,omitempty" gorm:"foreignKey:AllocationID"`
}

// TableName returns the table name for Allocation
func (Allocation) TableName() string {
	return "allocations"
}
