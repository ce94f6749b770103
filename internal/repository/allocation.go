package repository

import (
	"resource-planner-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AllocationRepository handles database operations for allocations
type AllocationRepository struct {
	db *gorm.DB
}

// NewAllocationRepository creates a new allocation repository
func NewAllocationRepository(db *gorm.DB) *AllocationRepository {
	return &AllocationRepository{db: db}
}

// Create creates a new allocation
func (r *AllocationRepository) Create(allocation *models.Allocation) error {
	return r.db.Create(allocation).Error
}

// GetByID retrieves an allocation by ID
func (r *AllocationRepository) GetByID(id uuid.UUID) (*models.Allocation, error) {
	var allocation models.Allocation
	err := r.db.First(&allocation, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &allocation, nil
}

// GetAll retrieves all allocations with pagination
func (r *AllocationRepository) GetAll(limit, offset int) ([]models.Allocation, int64, error) {
	var allocations []models.Allocation
	var total int64

	if err := r.db.Model(&models.Allocation{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Order("created_at").Limit(limit).Offset(offset).Find(&allocations).Error
	if err != nil {
		return nil, 0, err
	}

	return allocations, total, nil
}

// GetByAssigneeID retrieves all allocations assigned to a member
func (r *AllocationRepository) GetByAssigneeID(assigneeID uuid.UUID) ([]models.Allocation, error) {
	var allocations []models.Allocation
	err := r.db.Where("assignee_id = ?", assigneeID).Order("created_at").Find(&allocations).Error
	if err != nil {
		return nil, err
	}
	return allocations, nil
}

// GetByTeamID retrieves all allocations scoped to a team
func (r *AllocationRepository) GetByTeamID(teamID uuid.UUID) ([]models.Allocation, error) {
	var allocations []models.Allocation
	err := r.db.Where("team_id = ?", teamID).Order("created_at").Find(&allocations).Error
	if err != nil {
		return nil, err
	}
	return allocations, nil
}

// Update updates an allocation
func (r *AllocationRepository) Update(allocation *models.Allocation) error {
	return r.db.Save(allocation).Error
}

// Delete deletes an allocation and its time entries in one transaction
func (r *AllocationRepository) Delete(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("allocation_id = ?", id).Delete(&models.TimeEntry{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Allocation{}, "id = ?", id).Error
	})
}
