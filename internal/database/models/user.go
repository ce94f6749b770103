package models

import (
	"time"
)

// User represents an account that can sign in to the planner
type User struct {
	BaseModel
	Email        string     `json:"email" gorm:"uniqueIndex;not null;size:255" validate:"required,email,max=255"`
	PasswordHash string     `json:"-" gorm:"not null;size:100"`
	IsInvited    bool       `json:"is_invited" gorm:"default:true"`
	IsAdmin      bool       `json:"is_admin" gorm:"default:false"`
	InvitedAt    *time.Time `json:"invited_at,omitempty"`
	LastLogin    *time.Time `json:"last_login,omitempty"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}
