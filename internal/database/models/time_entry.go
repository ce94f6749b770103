package models

import (
	"time"

	"github.com/google/uuid"
)

// TimeEntry represents hours logged by a member against an allocation on a
// given date. Entries feed the current-week utilization query.
type TimeEntry struct {
	BaseModel
	AllocationID uuid.UUID `json:"allocation_id" gorm:"type:uuid;not null;index" validate:"required"`
	MemberID     uuid.UUID `json:"member_id" gorm:"type:uuid;not null;index" validate:"required"`
	Hours        float64   `json:"hours" gorm:"not null" validate:"required,gt=0"`
	Date         time.Time `json:"date" gorm:"not null;index" validate:"required"`
	Description  string    `json:"description" gorm:"size:500" validate:"max=500"`

	// Relationships
	Allocation *Allocation `json:"allocation,omitempty" gorm:"foreignKey:AllocationID"`
	Member     *Member     `json:"member,omitempty" gorm:"foreignKey:MemberID"`
}

// TableName returns the table name for TimeEntry
func (TimeEntry) TableName() string {
	return "time_entries"
}
