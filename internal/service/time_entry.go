package service

import (
	"fmt"
	"time"

	"resource-planner-backend/internal/database/models"
	apperrors "resource-planner-backend/internal/errors"
	"resource-planner-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// TimeEntryService handles business logic for time entries
type TimeEntryService struct {
	repo           repository.TimeEntryRepositoryInterface
	allocationRepo repository.AllocationRepositoryInterface
	memberRepo     repository.MemberRepositoryInterface
	validator      *validator.Validate
}

// NewTimeEntryService creates a new time entry service
func NewTimeEntryService(repo repository.TimeEntryRepositoryInterface, allocationRepo repository.AllocationRepositoryInterface, memberRepo repository.MemberRepositoryInterface, validator *validator.Validate) *TimeEntryService {
	return &TimeEntryService{
		repo:           repo,
		allocationRepo: allocationRepo,
		memberRepo:     memberRepo,
		validator:      validator,
	}
}

// CreateTimeEntryRequest represents the data needed to log time
type CreateTimeEntryRequest struct {
	AllocationID uuid.UUID `json:"allocation_id" validate:"required"`
	MemberID     uuid.UUID `json:"member_id" validate:"required"`
	Hours        float64   `json:"hours" validate:"required,gt=0"`
	Date         time.Time `json:"date" validate:"required"`
	Description  string    `json:"description" validate:"max=500"`
}

// TimeEntryResponse represents the response data for a time entry
type TimeEntryResponse struct {
	ID           uuid.UUID `json:"id"`
	AllocationID uuid.UUID `json:"allocation_id"`
	MemberID     uuid.UUID `json:"member_id"`
	Hours        float64   `json:"hours"`
	Date         time.Time `json:"date"`
	Description  string    `json:"description"`
	CreatedAt    string    `json:"created_at"`
}

// CreateTimeEntry logs hours for a member against an allocation
func (s *TimeEntryService) CreateTimeEntry(req *CreateTimeEntryRequest) (*TimeEntryResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if _, err := s.allocationRepo.GetByID(req.AllocationID); err != nil {
		return nil, apperrors.ErrAllocationNotFound
	}
	if _, err := s.memberRepo.GetByID(req.MemberID); err != nil {
		return nil, apperrors.ErrMemberNotFound
	}

	entry := &models.TimeEntry{
		AllocationID: req.AllocationID,
		MemberID:     req.MemberID,
		Hours:        req.Hours,
		Date:         req.Date,
		Description:  req.Description,
	}

	if err := s.repo.Create(entry); err != nil {
		return nil, fmt.Errorf("failed to create time entry: %w", err)
	}

	return s.convertToResponse(entry), nil
}

// ListTimeEntries retrieves time entries with pagination
func (s *TimeEntryService) ListTimeEntries(limit, offset int) ([]TimeEntryResponse, int64, error) {
	entries, total, err := s.repo.GetAll(limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get time entries: %w", err)
	}

	responses := make([]TimeEntryResponse, len(entries))
	for i, entry := range entries {
		responses[i] = *s.convertToResponse(&entry)
	}

	return responses, total, nil
}

// DeleteTimeEntry deletes a time entry
func (s *TimeEntryService) DeleteTimeEntry(id uuid.UUID) error {
	_, err := s.repo.GetByID(id)
	if err != nil {
		return apperrors.ErrTimeEntryNotFound
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete time entry: %w", err)
	}

	return nil
}

// convertToResponse converts a time entry model to response
func (s *TimeEntryService) convertToResponse(entry *models.TimeEntry) *TimeEntryResponse {
	return &TimeEntryResponse{
		ID:           entry.ID,
		AllocationID: entry.AllocationID,
		MemberID:     entry.MemberID,
		Hours:        entry.Hours,
		Date:         entry.Date,
		Description:  entry.Description,
		CreatedAt:    entry.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
