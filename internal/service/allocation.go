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

// AllocationService handles business logic for allocations
type AllocationService struct {
	repo       repository.AllocationRepositoryInterface
	memberRepo repository.MemberRepositoryInterface
	teamRepo   repository.TeamRepositoryInterface
	validator  *validator.Validate
}

// NewAllocationService creates a new allocation service
func NewAllocationService(repo repository.AllocationRepositoryInterface, memberRepo repository.MemberRepositoryInterface, teamRepo repository.TeamRepositoryInterface, validator *validator.Validate) *AllocationService {
	return &AllocationService{
		repo:       repo,
		memberRepo: memberRepo,
		teamRepo:   teamRepo,
		validator:  validator,
	}
}

// CreateAllocationRequest represents the data needed to create an allocation
type CreateAllocationRequest struct {
	Title          string     `json:"title" validate:"required,max=200"`
	Description    string     `json:"description" validate:"max=1000"`
	AssigneeID     uuid.UUID  `json:"assignee_id" validate:"required"`
	TeamID         *uuid.UUID `json:"team_id"`
	Priority       *string    `json:"priority" example:"medium"` // Optional: defaults to "medium". Valid values: low, medium, high, urgent
	Status         *string    `json:"status" example:"todo"`     // Optional: defaults to "todo". Valid values: planning, todo, in-progress, review, on-hold, completed
	EstimatedHours float64    `json:"estimated_hours" validate:"gte=0"`
	ActualHours    float64    `json:"actual_hours" validate:"gte=0"`
	DueDate        *time.Time `json:"due_date"`
	StartDate      *time.Time `json:"start_date"`
	EndDate        *time.Time `json:"end_date"`
	Tags           []string   `json:"tags"`
	ProjectCode    string     `json:"project_code" validate:"max=50"`
	Budget         float64    `json:"budget" validate:"gte=0"`
}

// UpdateAllocationRequest represents the data needed to update an allocation
type UpdateAllocationRequest struct {
	Title          *string    `json:"title" validate:"omitempty,max=200"`
	Description    *string    `json:"description" validate:"omitempty,max=1000"`
	AssigneeID     *uuid.UUID `json:"assignee_id"`
	TeamID         *uuid.UUID `json:"team_id"`
	Priority       *string    `json:"priority"`
	Status         *string    `json:"status"`
	EstimatedHours *float64   `json:"estimated_hours" validate:"omitempty,gte=0"`
	ActualHours    *float64   `json:"actual_hours" validate:"omitempty,gte=0"`
	DueDate        *time.Time `json:"due_date"`
	StartDate      *time.Time `json:"start_date"`
	EndDate        *time.Time `json:"end_date"`
	Tags           []string   `json:"tags"`
	ProjectCode    *string    `json:"project_code" validate:"omitempty,max=50"`
	Budget         *float64   `json:"budget" validate:"omitempty,gte=0"`
}

// AllocationResponse represents the response data for an allocation
type AllocationResponse struct {
	ID             uuid.UUID  `json:"id"`
	Title          string     `json:"title"`
	Description    string     `json:"description"`
	AssigneeID     uuid.UUID  `json:"assignee_id"`
	TeamID         *uuid.UUID `json:"team_id,omitempty"`
	Priority       string     `json:"priority"`
	Status         string     `json:"status"`
	EstimatedHours float64    `json:"estimated_hours"`
	ActualHours    float64    `json:"actual_hours"`
	DueDate        *time.Time `json:"due_date,omitempty"`
	StartDate      *time.Time `json:"start_date,omitempty"`
	EndDate        *time.Time `json:"end_date,omitempty"`
	Tags           []string   `json:"tags"`
	ProjectCode    string     `json:"project_code,omitempty"`
	Budget         float64    `json:"budget,omitempty"`
	CreatedAt      string     `json:"created_at"`
	UpdatedAt      string     `json:"updated_at"`
}

// CreateAllocation creates a new allocation
func (s *AllocationService) CreateAllocation(req *CreateAllocationRequest) (*AllocationResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if _, err := s.memberRepo.GetByID(req.AssigneeID); err != nil {
		return nil, apperrors.ErrAssigneeNotFound
	}
	if req.TeamID != nil {
		if _, err := s.teamRepo.GetByID(*req.TeamID); err != nil {
			return nil, apperrors.ErrTeamNotFound
		}
	}

	priority := models.PriorityMedium
	if req.Priority != nil {
		priority = models.AllocationPriority(*req.Priority)
		if !priority.IsValid() {
			return nil, apperrors.NewValidationError("priority", fmt.Sprintf("must be one of %v", models.ValidPriorities()))
		}
	}

	status := models.StatusTodo
	if req.Status != nil {
		status = models.AllocationStatus(*req.Status)
		if !status.IsValid() {
			return nil, apperrors.NewValidationError("status", fmt.Sprintf("must be one of %v", models.ValidStatuses()))
		}
	}

	if req.StartDate != nil && req.EndDate != nil && req.StartDate.After(*req.EndDate) {
		return nil, apperrors.ErrInvalidDateRange
	}

	allocation := &models.Allocation{
		Title:          req.Title,
		Description:    req.Description,
		AssigneeID:     req.AssigneeID,
		TeamID:         req.TeamID,
		Priority:       priority,
		Status:         status,
		EstimatedHours: req.EstimatedHours,
		ActualHours:    req.ActualHours,
		DueDate:        req.DueDate,
		StartDate:      req.StartDate,
		EndDate:        req.EndDate,
		Tags:           req.Tags,
		ProjectCode:    req.ProjectCode,
		Budget:         req.Budget,
	}

	if err := s.repo.Create(allocation); err != nil {
		return nil, fmt.Errorf("failed to create allocation: %w", err)
	}

	return s.convertToResponse(allocation), nil
}

// GetAllocationByID retrieves an allocation by ID
func (s *AllocationService) GetAllocationByID(id uuid.UUID) (*AllocationResponse, error) {
	allocation, err := s.repo.GetByID(id)
	if err != nil {
		return nil, apperrors.ErrAllocationNotFound
	}

	return s.convertToResponse(allocation), nil
}

// ListAllocations retrieves allocations with pagination
func (s *AllocationService) ListAllocations(limit, offset int) ([]AllocationResponse, int64, error) {
	allocations, total, err := s.repo.GetAll(limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get allocations: %w", err)
	}

	responses := make([]AllocationResponse, len(allocations))
	for i, allocation := range allocations {
		responses[i] = *s.convertToResponse(&allocation)
	}

	return responses, total, nil
}

// GetMemberAllocations retrieves all allocations assigned to a member
func (s *AllocationService) GetMemberAllocations(memberID uuid.UUID) ([]AllocationResponse, error) {
	if _, err := s.memberRepo.GetByID(memberID); err != nil {
		return nil, apperrors.ErrMemberNotFound
	}

	allocations, err := s.repo.GetByAssigneeID(memberID)
	if err != nil {
		return nil, fmt.Errorf("failed to get member allocations: %w", err)
	}

	responses := make([]AllocationResponse, len(allocations))
	for i, allocation := range allocations {
		responses[i] = *s.convertToResponse(&allocation)
	}

	return responses, nil
}

// UpdateAllocation updates an existing allocation
func (s *AllocationService) UpdateAllocation(id uuid.UUID, req *UpdateAllocationRequest) (*AllocationResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	allocation, err := s.repo.GetByID(id)
	if err != nil {
		return nil, apperrors.ErrAllocationNotFound
	}

	if req.AssigneeID != nil && *req.AssigneeID != allocation.AssigneeID {
		if _, err := s.memberRepo.GetByID(*req.AssigneeID); err != nil {
			return nil, apperrors.ErrAssigneeNotFound
		}
		allocation.AssigneeID = *req.AssigneeID
	}
	if req.TeamID != nil {
		if _, err := s.teamRepo.GetByID(*req.TeamID); err != nil {
			return nil, apperrors.ErrTeamNotFound
		}
		allocation.TeamID = req.TeamID
	}
	if req.Title != nil {
		allocation.Title = *req.Title
	}
	if req.Description != nil {
		allocation.Description = *req.Description
	}
	if req.Priority != nil {
		priority := models.AllocationPriority(*req.Priority)
		if !priority.IsValid() {
			return nil, apperrors.NewValidationError("priority", fmt.Sprintf("must be one of %v", models.ValidPriorities()))
		}
		allocation.Priority = priority
	}
	if req.Status != nil {
		status := models.AllocationStatus(*req.Status)
		if !status.IsValid() {
			return nil, apperrors.NewValidationError("status", fmt.Sprintf("must be one of %v", models.ValidStatuses()))
		}
		allocation.Status = status
	}
	if req.EstimatedHours != nil {
		allocation.EstimatedHours = *req.EstimatedHours
	}
	if req.ActualHours != nil {
		allocation.ActualHours = *req.ActualHours
	}
	if req.DueDate != nil {
		allocation.DueDate = req.DueDate
	}
	if req.StartDate != nil {
		allocation.StartDate = req.StartDate
	}
	if req.EndDate != nil {
		allocation.EndDate = req.EndDate
	}
	if allocation.StartDate != nil && allocation.EndDate != nil && allocation.StartDate.After(*allocation.EndDate) {
		return nil, apperrors.ErrInvalidDateRange
	}
	if req.Tags != nil {
		allocation.Tags = req.Tags
	}
	if req.ProjectCode != nil {
		allocation.ProjectCode = *req.ProjectCode
	}
	if req.Budget != nil {
		allocation.Budget = *req.Budget
	}

	if err := s.repo.Update(allocation); err != nil {
		return nil, fmt.Errorf("failed to update allocation: %w", err)
	}

	return s.convertToResponse(allocation), nil
}

// DeleteAllocation deletes an allocation; its time entries go with it
func (s *AllocationService) DeleteAllocation(id uuid.UUID) error {
	_, err := s.repo.GetByID(id)
	if err != nil {
		return apperrors.ErrAllocationNotFound
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete allocation: %w", err)
	}

	return nil
}

// convertToResponse converts an allocation model to response
func (s *AllocationService) convertToResponse(allocation *models.Allocation) *AllocationResponse {
	return &AllocationResponse{
		ID:             allocation.ID,
		Title:          allocation.Title,
		Description:    allocation.Description,
		AssigneeID:     allocation.AssigneeID,
		TeamID:         allocation.TeamID,
		Priority:       string(allocation.Priority),
		Status:         string(allocation.Status),
		EstimatedHours: allocation.EstimatedHours,
		ActualHours:    allocation.ActualHours,
		DueDate:        allocation.DueDate,
		StartDate:      allocation.StartDate,
		EndDate:        allocation.EndDate,
		Tags:           allocation.Tags,
		ProjectCode:    allocation.ProjectCode,
		Budget:         allocation.Budget,
		CreatedAt:      allocation.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:      allocation.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
