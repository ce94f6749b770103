package service

import (
	"fmt"

	"resource-planner-backend/internal/database/models"
	apperrors "resource-planner-backend/internal/errors"
	"resource-planner-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// TeamService handles business logic for teams
type TeamService struct {
	repo       repository.TeamRepositoryInterface
	memberRepo repository.MemberRepositoryInterface
	validator  *validator.Validate
}

// NewTeamService creates a new team service
func NewTeamService(repo repository.TeamRepositoryInterface, memberRepo repository.MemberRepositoryInterface, validator *validator.Validate) *TeamService {
	return &TeamService{
		repo:       repo,
		memberRepo: memberRepo,
		validator:  validator,
	}
}

// CreateTeamRequest represents the data needed to create a team
type CreateTeamRequest struct {
	Name        string `json:"name" validate:"required,max=100"`
	Description string `json:"description" validate:"max=500"`
	Color       string `json:"color" validate:"omitempty,hexcolor"`
}

// UpdateTeamRequest represents the data needed to update a team
type UpdateTeamRequest struct {
	Name        *string    `json:"name" validate:"omitempty,max=100"`
	Description *string    `json:"description" validate:"omitempty,max=500"`
	Color       *string    `json:"color" validate:"omitempty,hexcolor"`
	LeadID      *uuid.UUID `json:"lead_id"`
	ClearLead   bool       `json:"clear_lead"`
}

// TeamResponse represents the response data for a team
type TeamResponse struct {
	ID          uuid.UUID        `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Color       string           `json:"color"`
	LeadID      *uuid.UUID       `json:"lead_id,omitempty"`
	Members     []MemberResponse `json:"members,omitempty"`
	CreatedAt   string           `json:"created_at"`
	UpdatedAt   string           `json:"updated_at"`
}

// CreateTeam creates a new team. Teams start without a lead; leads are
// promoted once members have joined.
func (s *TeamService) CreateTeam(req *CreateTeamRequest) (*TeamResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	color := req.Color
	if color == "" {
		color = avatarPalette[0]
	}

	team := &models.Team{
		Name:        req.Name,
		Description: req.Description,
		Color:       color,
	}

	if err := s.repo.Create(team); err != nil {
		return nil, fmt.Errorf("failed to create team: %w", err)
	}

	return s.convertToResponse(team), nil
}

// GetTeamByID retrieves a team by ID
func (s *TeamService) GetTeamByID(id uuid.UUID) (*TeamResponse, error) {
	team, err := s.repo.GetByID(id)
	if err != nil {
		return nil, apperrors.ErrTeamNotFound
	}

	return s.convertToResponse(team), nil
}

// GetTeamWithMembers retrieves a team with its member list
func (s *TeamService) GetTeamWithMembers(id uuid.UUID) (*TeamResponse, error) {
	team, err := s.repo.GetWithMembers(id)
	if err != nil {
		return nil, apperrors.ErrTeamNotFound
	}

	response := s.convertToResponse(team)
	response.Members = make([]MemberResponse, len(team.Members))
	for i, member := range team.Members {
		response.Members[i] = MemberResponse{
			ID:          member.ID,
			TeamID:      member.TeamID,
			Name:        member.Name,
			Email:       member.Email,
			Role:        member.Role,
			Department:  member.Department,
			Capacity:    member.Capacity,
			Skills:      member.Skills,
			AvatarColor: member.AvatarColor,
			IsTeamLead:  member.IsTeamLead,
			CreatedAt:   member.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
			UpdatedAt:   member.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
		}
	}
	return response, nil
}

// ListTeams retrieves teams with pagination
func (s *TeamService) ListTeams(limit, offset int) ([]TeamResponse, int64, error) {
	teams, total, err := s.repo.GetAll(limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get teams: %w", err)
	}

	responses := make([]TeamResponse, len(teams))
	for i, team := range teams {
		responses[i] = *s.convertToResponse(&team)
	}

	return responses, total, nil
}

// UpdateTeam updates an existing team. Setting LeadID enforces that the lead
// is a member of the team and demotes the previous lead.
func (s *TeamService) UpdateTeam(id uuid.UUID, req *UpdateTeamRequest) (*TeamResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	team, err := s.repo.GetByID(id)
	if err != nil {
		return nil, apperrors.ErrTeamNotFound
	}

	if req.Name != nil {
		team.Name = *req.Name
	}
	if req.Description != nil {
		team.Description = *req.Description
	}
	if req.Color != nil {
		team.Color = *req.Color
	}

	if req.ClearLead {
		if err := s.clearLead(team); err != nil {
			return nil, err
		}
	} else if req.LeadID != nil && (team.LeadID == nil || *team.LeadID != *req.LeadID) {
		lead, err := s.memberRepo.GetByID(*req.LeadID)
		if err != nil {
			return nil, apperrors.ErrMemberNotFound
		}
		if lead.TeamID == nil || *lead.TeamID != team.ID {
			return nil, apperrors.ErrLeadNotInTeam
		}
		if err := s.clearLead(team); err != nil {
			return nil, err
		}
		lead.IsTeamLead = true
		if err := s.memberRepo.Update(lead); err != nil {
			return nil, fmt.Errorf("failed to promote lead: %w", err)
		}
		team.LeadID = req.LeadID
	}

	if err := s.repo.Update(team); err != nil {
		return nil, fmt.Errorf("failed to update team: %w", err)
	}

	return s.convertToResponse(team), nil
}

// DeleteTeam deletes a team; the repository cascades to the team's
// allocations and clears former members' team references and lead flags.
func (s *TeamService) DeleteTeam(id uuid.UUID) error {
	_, err := s.repo.GetByID(id)
	if err != nil {
		return apperrors.ErrTeamNotFound
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete team: %w", err)
	}

	return nil
}

// clearLead demotes the current lead, if any, and clears the reference
func (s *TeamService) clearLead(team *models.Team) error {
	if team.LeadID == nil {
		return nil
	}
	if previous, err := s.memberRepo.GetByID(*team.LeadID); err == nil {
		previous.IsTeamLead = false
		if err := s.memberRepo.Update(previous); err != nil {
			return fmt.Errorf("failed to demote previous lead: %w", err)
		}
	}
	team.LeadID = nil
	return nil
}

// convertToResponse converts a team model to response
func (s *TeamService) convertToResponse(team *models.Team) *TeamResponse {
	return &TeamResponse{
		ID:          team.ID,
		Name:        team.Name,
		Description: team.Description,
		Color:       team.Color,
		LeadID:      team.LeadID,
		CreatedAt:   team.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:   team.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
