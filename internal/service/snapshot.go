package service

import (
	"encoding/json"
	"fmt"
	"time"

	"resource-planner-backend/internal/database/models"
	apperrors "resource-planner-backend/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SnapshotService exports and imports the full planning dataset as a single
// JSON document. The document shape matches the blobs the original dashboard
// kept in browser storage, so exports from it restore cleanly.
type SnapshotService struct {
	db *gorm.DB
}

// NewSnapshotService creates a new snapshot service
func NewSnapshotService(db *gorm.DB) *SnapshotService {
	return &SnapshotService{db: db}
}

// Snapshot is the import/export document. Allocations are accepted under
// either the "projectAllocations" or the older "assignments" key.
type Snapshot struct {
	TeamMembers        []SnapshotMember     `json:"teamMembers"`
	Teams              []SnapshotTeam       `json:"teams"`
	ProjectAllocations []SnapshotAllocation `json:"projectAllocations"`
	Assignments        []SnapshotAllocation `json:"assignments,omitempty"`
	TimeEntries        []SnapshotTimeEntry  `json:"timeEntries"`
}

// SnapshotMember mirrors the browser-storage member record
type SnapshotMember struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Email       string   `json:"email"`
	Role        string   `json:"role,omitempty"`
	Department  string   `json:"department,omitempty"`
	Capacity    float64  `json:"capacity"`
	Skills      []string `json:"skills,omitempty"`
	AvatarColor string   `json:"avatarColor,omitempty"`
	TeamID      string   `json:"teamId,omitempty"`
	IsTeamLead  bool     `json:"isTeamLead,omitempty"`
}

// SnapshotTeam mirrors the browser-storage team record
type SnapshotTeam struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Color       string `json:"color,omitempty"`
	LeadID      string `json:"leadId,omitempty"`
}

// SnapshotAllocation mirrors the browser-storage allocation record
type SnapshotAllocation struct {
	ID             string   `json:"id"`
	Title          string   `json:"title"`
	Description    string   `json:"description,omitempty"`
	AssigneeID     string   `json:"assigneeId"`
	TeamID         string   `json:"teamId,omitempty"`
	Priority       string   `json:"priority,omitempty"`
	Status         string   `json:"status,omitempty"`
	EstimatedHours float64  `json:"estimatedHours,omitempty"`
	ActualHours    float64  `json:"actualHours,omitempty"`
	DueDate        string   `json:"dueDate,omitempty"`
	StartDate      string   `json:"startDate,omitempty"`
	EndDate        string   `json:"endDate,omitempty"`
	Tags           []string `json:"tags,omitempty"`
	ProjectCode    string   `json:"projectCode,omitempty"`
	Budget         float64  `json:"budget,omitempty"`
}

// SnapshotTimeEntry mirrors the browser-storage time entry record. Older
// exports used "assignmentId" for the allocation reference.
type SnapshotTimeEntry struct {
	ID           string  `json:"id"`
	AllocationID string  `json:"allocationId,omitempty"`
	AssignmentID string  `json:"assignmentId,omitempty"`
	MemberID     string  `json:"memberId"`
	Hours        float64 `json:"hours"`
	Date         string  `json:"date"`
	Description  string  `json:"description,omitempty"`
}

// Export serializes the current planning dataset into a snapshot document
func (s *SnapshotService) Export() (*Snapshot, error) {
	var members []models.Member
	var teams []models.Team
	var allocations []models.Allocation
	var entries []models.TimeEntry

	if err := s.db.Order("created_at ASC").Find(&members).Error; err != nil {
		return nil, fmt.Errorf("failed to export members: %w", err)
	}
	if err := s.db.Order("created_at ASC").Find(&teams).Error; err != nil {
		return nil, fmt.Errorf("failed to export teams: %w", err)
	}
	if err := s.db.Order("created_at ASC").Find(&allocations).Error; err != nil {
		return nil, fmt.Errorf("failed to export allocations: %w", err)
	}
	if err := s.db.Order("date ASC, created_at ASC").Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("failed to export time entries: %w", err)
	}

	snapshot := &Snapshot{
		TeamMembers:        make([]SnapshotMember, len(members)),
		Teams:              make([]SnapshotTeam, len(teams)),
		ProjectAllocations: make([]SnapshotAllocation, len(allocations)),
		TimeEntries:        make([]SnapshotTimeEntry, len(entries)),
	}

	for i, member := range members {
		record := SnapshotMember{
			ID:          member.ID.String(),
			Name:        member.Name,
			Email:       member.Email,
			Role:        member.Role,
			Department:  member.Department,
			Capacity:    member.Capacity,
			Skills:      member.Skills,
			AvatarColor: member.AvatarColor,
			IsTeamLead:  member.IsTeamLead,
		}
		if member.TeamID != nil {
			record.TeamID = member.TeamID.String()
		}
		snapshot.TeamMembers[i] = record
	}

	for i, team := range teams {
		record := SnapshotTeam{
			ID:          team.ID.String(),
			Name:        team.Name,
			Description: team.Description,
			Color:       team.Color,
		}
		if team.LeadID != nil {
			record.LeadID = team.LeadID.String()
		}
		snapshot.Teams[i] = record
	}

	for i, allocation := range allocations {
		record := SnapshotAllocation{
			ID:             allocation.ID.String(),
			Title:          allocation.Title,
			Description:    allocation.Description,
			AssigneeID:     allocation.AssigneeID.String(),
			Priority:       string(allocation.Priority),
			Status:         string(allocation.Status),
			EstimatedHours: allocation.EstimatedHours,
			ActualHours:    allocation.ActualHours,
			Tags:           allocation.Tags,
			ProjectCode:    allocation.ProjectCode,
			Budget:         allocation.Budget,
		}
		if allocation.TeamID != nil {
			record.TeamID = allocation.TeamID.String()
		}
		if allocation.DueDate != nil {
			record.DueDate = allocation.DueDate.Format(time.RFC3339)
		}
		if allocation.StartDate != nil {
			record.StartDate = allocation.StartDate.Format(time.RFC3339)
		}
		if allocation.EndDate != nil {
			record.EndDate = allocation.EndDate.Format(time.RFC3339)
		}
		snapshot.ProjectAllocations[i] = record
	}

	for i, entry := range entries {
		snapshot.TimeEntries[i] = SnapshotTimeEntry{
			ID:           entry.ID.String(),
			AllocationID: entry.AllocationID.String(),
			MemberID:     entry.MemberID.String(),
			Hours:        entry.Hours,
			Date:         entry.Date.Format(time.RFC3339),
			Description:  entry.Description,
		}
	}

	return snapshot, nil
}

// Import replaces the entire planning dataset with the snapshot's contents in
// a single transaction. Legacy string ids are remapped to fresh UUIDs and all
// cross references are rewritten accordingly.
func (s *SnapshotService) Import(raw []byte) error {
	var snapshot Snapshot
	if err := json.Unmarshal(raw, &snapshot); err != nil {
		return apperrors.NewValidationError("snapshot", fmt.Sprintf("invalid snapshot document: %v", err))
	}

	allocations := snapshot.ProjectAllocations
	if len(allocations) == 0 {
		allocations = snapshot.Assignments
	}

	teamIDs := newIDMapper()
	memberIDs := newIDMapper()
	allocationIDs := newIDMapper()

	teams := make([]models.Team, len(snapshot.Teams))
	for i, record := range snapshot.Teams {
		teams[i] = models.Team{
			BaseModel:   models.BaseModel{ID: teamIDs.Map(record.ID)},
			Name:        record.Name,
			Description: record.Description,
			Color:       record.Color,
		}
	}

	members := make([]models.Member, len(snapshot.TeamMembers))
	for i, record := range snapshot.TeamMembers {
		if record.Capacity <= 0 {
			return apperrors.NewValidationError("teamMembers", fmt.Sprintf("member %q has non-positive capacity", record.Name))
		}
		member := models.Member{
			BaseModel:   models.BaseModel{ID: memberIDs.Map(record.ID)},
			Name:        record.Name,
			Email:       record.Email,
			Role:        record.Role,
			Department:  record.Department,
			Capacity:    record.Capacity,
			Skills:      record.Skills,
			AvatarColor: record.AvatarColor,
			IsTeamLead:  record.IsTeamLead,
		}
		if record.TeamID != "" {
			id := teamIDs.Map(record.TeamID)
			member.TeamID = &id
		}
		members[i] = member
	}

	converted := make([]models.Allocation, len(allocations))
	for i, record := range allocations {
		if record.AssigneeID == "" {
			return apperrors.NewValidationError("projectAllocations", fmt.Sprintf("allocation %q has no assignee", record.Title))
		}
		priority := models.PriorityMedium
		if record.Priority != "" {
			priority = models.AllocationPriority(record.Priority)
			if !priority.IsValid() {
				return apperrors.NewValidationError("projectAllocations", fmt.Sprintf("allocation %q has invalid priority %q", record.Title, record.Priority))
			}
		}
		status := models.StatusTodo
		if record.Status != "" {
			status = models.AllocationStatus(record.Status)
			if !status.IsValid() {
				return apperrors.NewValidationError("projectAllocations", fmt.Sprintf("allocation %q has invalid status %q", record.Title, record.Status))
			}
		}
		allocation := models.Allocation{
			BaseModel:      models.BaseModel{ID: allocationIDs.Map(record.ID)},
			Title:          record.Title,
			Description:    record.Description,
			AssigneeID:     memberIDs.Map(record.AssigneeID),
			Priority:       priority,
			Status:         status,
			EstimatedHours: record.EstimatedHours,
			ActualHours:    record.ActualHours,
			Tags:           record.Tags,
			ProjectCode:    record.ProjectCode,
			Budget:         record.Budget,
		}
		if record.TeamID != "" {
			id := teamIDs.Map(record.TeamID)
			allocation.TeamID = &id
		}
		var err error
		if allocation.DueDate, err = parseSnapshotDate(record.DueDate); err != nil {
			return apperrors.NewValidationError("projectAllocations", fmt.Sprintf("allocation %q has invalid due date %q", record.Title, record.DueDate))
		}
		if allocation.StartDate, err = parseSnapshotDate(record.StartDate); err != nil {
			return apperrors.NewValidationError("projectAllocations", fmt.Sprintf("allocation %q has invalid start date %q", record.Title, record.StartDate))
		}
		if allocation.EndDate, err = parseSnapshotDate(record.EndDate); err != nil {
			return apperrors.NewValidationError("projectAllocations", fmt.Sprintf("allocation %q has invalid end date %q", record.Title, record.EndDate))
		}
		converted[i] = allocation
	}

	entries := make([]models.TimeEntry, len(snapshot.TimeEntries))
	for i, record := range snapshot.TimeEntries {
		allocationRef := record.AllocationID
		if allocationRef == "" {
			allocationRef = record.AssignmentID
		}
		if allocationRef == "" || record.MemberID == "" {
			return apperrors.NewValidationError("timeEntries", "time entry is missing its allocation or member reference")
		}
		if record.Hours <= 0 {
			return apperrors.NewValidationError("timeEntries", "time entry hours must be positive")
		}
		date, err := parseSnapshotDate(record.Date)
		if err != nil || date == nil {
			return apperrors.NewValidationError("timeEntries", fmt.Sprintf("time entry has invalid date %q", record.Date))
		}
		entry := models.TimeEntry{
			AllocationID: allocationIDs.Map(allocationRef),
			MemberID:     memberIDs.Map(record.MemberID),
			Hours:        record.Hours,
			Date:         *date,
			Description:  record.Description,
		}
		if record.ID != "" {
			if id, err := uuid.Parse(record.ID); err == nil {
				entry.ID = id
			}
		}
		entries[i] = entry
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		for _, model := range []interface{}{
			&models.TimeEntry{}, &models.Allocation{}, &models.Member{}, &models.Team{},
		} {
			if err := tx.Where("1 = 1").Delete(model).Error; err != nil {
				return fmt.Errorf("failed to clear existing data: %w", err)
			}
		}

		// Teams go in before members because members reference them; the lead
		// references point the other way and are filled in afterwards.
		if len(teams) > 0 {
			if err := tx.Create(&teams).Error; err != nil {
				return fmt.Errorf("failed to import teams: %w", err)
			}
		}
		if len(members) > 0 {
			if err := tx.Create(&members).Error; err != nil {
				return fmt.Errorf("failed to import members: %w", err)
			}
		}
		for _, record := range snapshot.Teams {
			if record.LeadID == "" {
				continue
			}
			leadID := memberIDs.Map(record.LeadID)
			if err := tx.Model(&models.Team{}).Where("id = ?", teamIDs.Map(record.ID)).
				Update("lead_id", leadID).Error; err != nil {
				return fmt.Errorf("failed to import team lead: %w", err)
			}
		}
		if len(converted) > 0 {
			if err := tx.Create(&converted).Error; err != nil {
				return fmt.Errorf("failed to import allocations: %w", err)
			}
		}
		if len(entries) > 0 {
			if err := tx.Create(&entries).Error; err != nil {
				return fmt.Errorf("failed to import time entries: %w", err)
			}
		}
		return nil
	})
}

// idMapper translates legacy string ids into UUIDs, keeping the mapping
// stable within one import so cross references stay intact.
type idMapper struct {
	mapping map[string]uuid.UUID
}

func newIDMapper() *idMapper {
	return &idMapper{mapping: make(map[string]uuid.UUID)}
}

func (m *idMapper) Map(legacy string) uuid.UUID {
	if id, ok := m.mapping[legacy]; ok {
		return id
	}
	id, err := uuid.Parse(legacy)
	if err != nil {
		id = uuid.New()
	}
	m.mapping[legacy] = id
	return id
}

func parseSnapshotDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if parsed, err := time.Parse(layout, value); err == nil {
			return &parsed, nil
		}
	}
	return nil, fmt.Errorf("unrecognized date %q", value)
}
