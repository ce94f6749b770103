package repository

import (
	"resource-planner-backend/internal/database/models"

	"gorm.io/gorm"
)

// InvitationRepository handles database operations for pending invitations
type InvitationRepository struct {
	db *gorm.DB
}

// NewInvitationRepository creates a new invitation repository
func NewInvitationRepository(db *gorm.DB) *InvitationRepository {
	return &InvitationRepository{db: db}
}

// Create creates a new pending invitation
func (r *InvitationRepository) Create(invitation *models.Invitation) error {
	return r.db.Create(invitation).Error
}

// GetByEmail retrieves a pending invitation by email
func (r *InvitationRepository) GetByEmail(email string) (*models.Invitation, error) {
	var invitation models.Invitation
	err := r.db.First(&invitation, "email = ?", email).Error
	if err != nil {
		return nil, err
	}
	return &invitation, nil
}

// GetAll retrieves all pending invitations
func (r *InvitationRepository) GetAll() ([]models.Invitation, error) {
	var invitations []models.Invitation
	err := r.db.Order("created_at").Find(&invitations).Error
	if err != nil {
		return nil, err
	}
	return invitations, nil
}

// DeleteByEmail removes a pending invitation. Registration consumes the row
// through this call.
func (r *InvitationRepository) DeleteByEmail(email string) error {
	return r.db.Delete(&models.Invitation{}, "email = ?", email).Error
}
