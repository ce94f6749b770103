package service

import (
	"fmt"
	"math"
	"time"

	"resource-planner-backend/internal/database/models"
	apperrors "resource-planner-backend/internal/errors"
	"resource-planner-backend/internal/repository"

	"github.com/google/uuid"
)

// UtilizationService computes the current-week utilization view. The view is
// derived and never stored: every call re-scans the week's time entries.
type UtilizationService struct {
	memberRepo    repository.MemberRepositoryInterface
	timeEntryRepo repository.TimeEntryRepositoryInterface
	now           func() time.Time
}

// NewUtilizationService creates a new utilization service
func NewUtilizationService(memberRepo repository.MemberRepositoryInterface, timeEntryRepo repository.TimeEntryRepositoryInterface) *UtilizationService {
	return &UtilizationService{
		memberRepo:    memberRepo,
		timeEntryRepo: timeEntryRepo,
		now:           time.Now,
	}
}

// AllocationHours is the per-allocation share of a member's weekly hours
type AllocationHours struct {
	AllocationID uuid.UUID `json:"allocation_id"`
	Hours        float64   `json:"hours"`
}

// UtilizationResponse represents one member's utilization for the current week
type UtilizationResponse struct {
	MemberID              uuid.UUID         `json:"member_id"`
	WeekStart             time.Time         `json:"week_start"`
	TotalHours            float64           `json:"total_hours"`
	CapacityHours         float64           `json:"capacity_hours"`
	UtilizationPercentage int               `json:"utilization_percentage"`
	Allocations           []AllocationHours `json:"allocations"`
}

// StartOfWeek returns midnight of the Sunday on or before t, in t's location
func StartOfWeek(t time.Time) time.Time {
	year, month, day := t.Date()
	midnight := time.Date(year, month, day, 0, 0, 0, 0, t.Location())
	return midnight.AddDate(0, 0, -int(midnight.Weekday()))
}

// GetUtilization produces one record per member for the current calendar
// week, or a single record when memberID is given. Entries dated within
// [weekStart, weekStart+7d) count; the percentage is rounded and carries no
// upper clamp, so overbooked members exceed 100.
func (s *UtilizationService) GetUtilization(memberID *uuid.UUID) ([]UtilizationResponse, error) {
	var members []models.Member
	if memberID != nil {
		member, err := s.memberRepo.GetByID(*memberID)
		if err != nil {
			return nil, apperrors.ErrMemberNotFound
		}
		members = []models.Member{*member}
	} else {
		all, _, err := s.memberRepo.GetAll(-1, 0)
		if err != nil {
			return nil, fmt.Errorf("failed to get members: %w", err)
		}
		members = all
	}

	weekStart := StartOfWeek(s.now())
	weekEnd := weekStart.AddDate(0, 0, 7)

	responses := make([]UtilizationResponse, 0, len(members))
	for _, member := range members {
		entries, err := s.timeEntryRepo.GetByMemberInRange(member.ID, weekStart, weekEnd)
		if err != nil {
			return nil, fmt.Errorf("failed to get time entries: %w", err)
		}

		var totalHours float64
		breakdown := make([]AllocationHours, 0)
		index := make(map[uuid.UUID]int)
		for _, entry := range entries {
			totalHours += entry.Hours
			if i, ok := index[entry.AllocationID]; ok {
				breakdown[i].Hours += entry.Hours
			} else {
				index[entry.AllocationID] = len(breakdown)
				breakdown = append(breakdown, AllocationHours{AllocationID: entry.AllocationID, Hours: entry.Hours})
			}
		}

		responses = append(responses, UtilizationResponse{
			MemberID:              member.ID,
			WeekStart:             weekStart,
			TotalHours:            totalHours,
			CapacityHours:         member.Capacity,
			UtilizationPercentage: int(math.Round(totalHours / member.Capacity * 100)),
			Allocations:           breakdown,
		})
	}

	return responses, nil
}
