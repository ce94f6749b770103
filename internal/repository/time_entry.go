package repository

import (
	"time"

	"resource-planner-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TimeEntryRepository handles database operations for time entries
type TimeEntryRepository struct {
	db *gorm.DB
}

// NewTimeEntryRepository creates a new time entry repository
func NewTimeEntryRepository(db *gorm.DB) *TimeEntryRepository {
	return &TimeEntryRepository{db: db}
}

// Create creates a new time entry
func (r *TimeEntryRepository) Create(entry *models.TimeEntry) error {
	return r.db.Create(entry).Error
}

// GetByID retrieves a time entry by ID
func (r *TimeEntryRepository) GetByID(id uuid.UUID) (*models.TimeEntry, error) {
	var entry models.TimeEntry
	err := r.db.First(&entry, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// GetAll retrieves all time entries with pagination
func (r *TimeEntryRepository) GetAll(limit, offset int) ([]models.TimeEntry, int64, error) {
	var entries []models.TimeEntry
	var total int64

	if err := r.db.Model(&models.TimeEntry{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Order("date").Limit(limit).Offset(offset).Find(&entries).Error
	if err != nil {
		return nil, 0, err
	}

	return entries, total, nil
}

// GetByMemberInRange retrieves a member's time entries with date in [from, to),
// ordered by date then insertion order. The utilization query relies on the
// half-open interval.
func (r *TimeEntryRepository) GetByMemberInRange(memberID uuid.UUID, from, to time.Time) ([]models.TimeEntry, error) {
	var entries []models.TimeEntry
	err := r.db.Where("member_id = ? AND date >= ? AND date < ?", memberID, from, to).
		Order("date").Order("created_at").Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// Delete deletes a time entry
func (r *TimeEntryRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.TimeEntry{}, "id = ?", id).Error
}
