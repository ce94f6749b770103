package models

// Invitation represents a pending invitation: an email address that may
// self-register but has no account yet. Accepting registration consumes
// the row.
type Invitation struct {
	BaseModel
	Email string `json:"email" gorm:"uniqueIndex;not null;size:255" validate:"required,email,max=255"`
}

// TableName returns the table name for Invitation
func (Invitation) TableName() string {
	return "invitations"
}
