package repository

import (
	"resource-planner-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MemberRepository handles database operations for members
type MemberRepository struct {
	db *gorm.DB
}

// NewMemberRepository creates a new member repository
func NewMemberRepository(db *gorm.DB) *MemberRepository {
	return &MemberRepository{db: db}
}

// Create creates a new member
func (r *MemberRepository) Create(member *models.Member) error {
	return r.db.Create(member).Error
}

// GetByID retrieves a member by ID
func (r *MemberRepository) GetByID(id uuid.UUID) (*models.Member, error) {
	var member models.Member
	err := r.db.First(&member, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

// GetByEmail retrieves a member by email
func (r *MemberRepository) GetByEmail(email string) (*models.Member, error) {
	var member models.Member
	err := r.db.First(&member, "email = ?", email).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

// GetAll retrieves all members with pagination
func (r *MemberRepository) GetAll(limit, offset int) ([]models.Member, int64, error) {
	var members []models.Member
	var total int64

	if err := r.db.Model(&models.Member{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Order("created_at").Limit(limit).Offset(offset).Find(&members).Error
	if err != nil {
		return nil, 0, err
	}

	return members, total, nil
}

// GetByTeamID retrieves all members of a team
func (r *MemberRepository) GetByTeamID(teamID uuid.UUID) ([]models.Member, error) {
	var members []models.Member
	err := r.db.Where("team_id = ?", teamID).Order("created_at").Find(&members).Error
	if err != nil {
		return nil, err
	}
	return members, nil
}

// Update updates a member
func (r *MemberRepository) Update(member *models.Member) error {
	return r.db.Save(member).Error
}

// Delete deletes a member and cascades to dependent records in one
// transaction: the member's allocations (with their time entries), the
// member's own time entries, and any team lead reference pointing at them.
func (r *MemberRepository) Delete(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		allocationIDs := tx.Model(&models.Allocation{}).Select("id").Where("assignee_id = ?", id)
		if err := tx.Where("allocation_id IN (?)", allocationIDs).Delete(&models.TimeEntry{}).Error; err != nil {
			return err
		}
		if err := tx.Where("member_id = ?", id).Delete(&models.TimeEntry{}).Error; err != nil {
			return err
		}
		if err := tx.Where("assignee_id = ?", id).Delete(&models.Allocation{}).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Team{}).Where("lead_id = ?", id).Update("lead_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Member{}, "id = ?", id).Error
	})
}
