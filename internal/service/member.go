package service

import (
	"fmt"
	"math/rand"

	"resource-planner-backend/internal/database/models"
	apperrors "resource-planner-backend/internal/errors"
	"resource-planner-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// avatarPalette holds the colors cycled through for new members
var avatarPalette = []string{
	"#3B82F6", "#8B5CF6", "#10B981", "#F59E0B",
	"#EF4444", "#06B6D4", "#84CC16", "#F97316",
}

// MemberService handles business logic for members
type MemberService struct {
	repo      repository.MemberRepositoryInterface
	teamRepo  repository.TeamRepositoryInterface
	validator *validator.Validate
}

// NewMemberService creates a new member service
func NewMemberService(repo repository.MemberRepositoryInterface, teamRepo repository.TeamRepositoryInterface, validator *validator.Validate) *MemberService {
	return &MemberService{
		repo:      repo,
		teamRepo:  teamRepo,
		validator: validator,
	}
}

// CreateMemberRequest represents the data needed to create a member
type CreateMemberRequest struct {
	Name        string     `json:"name" validate:"required,max=200"`
	Email       string     `json:"email" validate:"required,email,max=255"`
	Role        string     `json:"role" validate:"max=100"`
	Department  string     `json:"department" validate:"max=100"`
	Capacity    float64    `json:"capacity" validate:"required,gt=0"`
	Skills      []string   `json:"skills"`
	AvatarColor string     `json:"avatar_color" validate:"omitempty,hexcolor"` // picked from the palette when omitted
	TeamID      *uuid.UUID `json:"team_id"`
	IsTeamLead  bool       `json:"is_team_lead"`
}

// UpdateMemberRequest represents the data needed to update a member
type UpdateMemberRequest struct {
	Name        *string    `json:"name" validate:"omitempty,max=200"`
	Email       *string    `json:"email" validate:"omitempty,email,max=255"`
	Role        *string    `json:"role" validate:"omitempty,max=100"`
	Department  *string    `json:"department" validate:"omitempty,max=100"`
	Capacity    *float64   `json:"capacity" validate:"omitempty,gt=0"`
	Skills      []string   `json:"skills"`
	AvatarColor *string    `json:"avatar_color" validate:"omitempty,hexcolor"`
	TeamID      *uuid.UUID `json:"team_id"`
	ClearTeam   bool       `json:"clear_team"`
	IsTeamLead  *bool      `json:"is_team_lead"`
}

// MemberResponse represents the response data for a member
type MemberResponse struct {
	ID          uuid.UUID  `json:"id"`
	TeamID      *uuid.UUID `json:"team_id,omitempty"`
	Name        string     `json:"name"`
	Email       string     `json:"email"`
	Role        string     `json:"role"`
	Department  string     `json:"department"`
	Capacity    float64    `json:"capacity"`
	Skills      []string   `json:"skills"`
	AvatarColor string     `json:"avatar_color"`
	IsTeamLead  bool       `json:"is_team_lead"`
	CreatedAt   string     `json:"created_at"`
	UpdatedAt   string     `json:"updated_at"`
}

// CreateMember creates a new member
func (s *MemberService) CreateMember(req *CreateMemberRequest) (*MemberResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	// Check if email already exists
	if existing, err := s.repo.GetByEmail(req.Email); err == nil && existing != nil {
		return nil, apperrors.ErrMemberExists
	}

	if req.TeamID != nil {
		if _, err := s.teamRepo.GetByID(*req.TeamID); err != nil {
			return nil, apperrors.ErrTeamNotFound
		}
	}

	color := req.AvatarColor
	if color == "" {
		color = avatarPalette[rand.Intn(len(avatarPalette))]
	}

	member := &models.Member{
		Name:        req.Name,
		Email:       req.Email,
		Role:        req.Role,
		Department:  req.Department,
		Capacity:    req.Capacity,
		Skills:      req.Skills,
		AvatarColor: color,
		TeamID:      req.TeamID,
	}

	if err := s.repo.Create(member); err != nil {
		return nil, fmt.Errorf("failed to create member: %w", err)
	}

	// Lead promotion happens after creation so the demoted lead lookup sees
	// the new member's team assignment.
	if req.IsTeamLead && req.TeamID != nil {
		if err := s.promoteToLead(member, *req.TeamID); err != nil {
			return nil, err
		}
	}

	return s.convertToResponse(member), nil
}

// GetMemberByID retrieves a member by ID
func (s *MemberService) GetMemberByID(id uuid.UUID) (*MemberResponse, error) {
	member, err := s.repo.GetByID(id)
	if err != nil {
		return nil, apperrors.ErrMemberNotFound
	}

	return s.convertToResponse(member), nil
}

// ListMembers retrieves members with pagination
func (s *MemberService) ListMembers(limit, offset int) ([]MemberResponse, int64, error) {
	members, total, err := s.repo.GetAll(limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get members: %w", err)
	}

	responses := make([]MemberResponse, len(members))
	for i, member := range members {
		responses[i] = *s.convertToResponse(&member)
	}

	return responses, total, nil
}

// UpdateMember updates an existing member
func (s *MemberService) UpdateMember(id uuid.UUID, req *UpdateMemberRequest) (*MemberResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	member, err := s.repo.GetByID(id)
	if err != nil {
		return nil, apperrors.ErrMemberNotFound
	}

	// Check email uniqueness if email is being updated
	if req.Email != nil && *req.Email != member.Email {
		if existing, err := s.repo.GetByEmail(*req.Email); err == nil && existing != nil && existing.ID != id {
			return nil, apperrors.ErrMemberExists
		}
	}

	if req.Name != nil {
		member.Name = *req.Name
	}
	if req.Email != nil {
		member.Email = *req.Email
	}
	if req.Role != nil {
		member.Role = *req.Role
	}
	if req.Department != nil {
		member.Department = *req.Department
	}
	if req.Capacity != nil {
		member.Capacity = *req.Capacity
	}
	if req.Skills != nil {
		member.Skills = req.Skills
	}
	if req.AvatarColor != nil {
		member.AvatarColor = *req.AvatarColor
	}

	if req.ClearTeam {
		if err := s.demoteFromLead(member); err != nil {
			return nil, err
		}
		member.TeamID = nil
	} else if req.TeamID != nil && (member.TeamID == nil || *member.TeamID != *req.TeamID) {
		if _, err := s.teamRepo.GetByID(*req.TeamID); err != nil {
			return nil, apperrors.ErrTeamNotFound
		}
		// Moving teams drops any lead role held in the old team.
		if err := s.demoteFromLead(member); err != nil {
			return nil, err
		}
		member.TeamID = req.TeamID
	}

	if err := s.repo.Update(member); err != nil {
		return nil, fmt.Errorf("failed to update member: %w", err)
	}

	if req.IsTeamLead != nil {
		if *req.IsTeamLead {
			if member.TeamID == nil {
				return nil, apperrors.ErrLeadNotInTeam
			}
			if err := s.promoteToLead(member, *member.TeamID); err != nil {
				return nil, err
			}
		} else if member.IsTeamLead {
			if err := s.demoteFromLead(member); err != nil {
				return nil, err
			}
			if err := s.repo.Update(member); err != nil {
				return nil, fmt.Errorf("failed to update member: %w", err)
			}
		}
	}

	return s.convertToResponse(member), nil
}

// DeleteMember deletes a member; the repository cascades to the member's
// allocations, time entries and any team lead reference.
func (s *MemberService) DeleteMember(id uuid.UUID) error {
	_, err := s.repo.GetByID(id)
	if err != nil {
		return apperrors.ErrMemberNotFound
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete member: %w", err)
	}

	return nil
}

// GetTeamMembers retrieves all members of a team
func (s *MemberService) GetTeamMembers(teamID uuid.UUID) ([]MemberResponse, error) {
	if _, err := s.teamRepo.GetByID(teamID); err != nil {
		return nil, apperrors.ErrTeamNotFound
	}

	members, err := s.repo.GetByTeamID(teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to get team members: %w", err)
	}

	responses := make([]MemberResponse, len(members))
	for i, member := range members {
		responses[i] = *s.convertToResponse(&member)
	}

	return responses, nil
}

// promoteToLead makes the member the single lead of the team, demoting the
// previous lead if there is one.
func (s *MemberService) promoteToLead(member *models.Member, teamID uuid.UUID) error {
	team, err := s.teamRepo.GetByID(teamID)
	if err != nil {
		return apperrors.ErrTeamNotFound
	}

	if team.LeadID != nil && *team.LeadID != member.ID {
		if previous, err := s.repo.GetByID(*team.LeadID); err == nil {
			previous.IsTeamLead = false
			if err := s.repo.Update(previous); err != nil {
				return fmt.Errorf("failed to demote previous lead: %w", err)
			}
		}
	}

	member.IsTeamLead = true
	if err := s.repo.Update(member); err != nil {
		return fmt.Errorf("failed to promote member: %w", err)
	}

	team.LeadID = &member.ID
	if err := s.teamRepo.Update(team); err != nil {
		return fmt.Errorf("failed to update team lead: %w", err)
	}
	return nil
}

// demoteFromLead clears the member's lead flag and the team's lead reference
// when it points at them.
func (s *MemberService) demoteFromLead(member *models.Member) error {
	if !member.IsTeamLead {
		return nil
	}
	member.IsTeamLead = false
	if member.TeamID == nil {
		return nil
	}
	team, err := s.teamRepo.GetByID(*member.TeamID)
	if err != nil {
		return nil
	}
	if team.LeadID != nil && *team.LeadID == member.ID {
		team.LeadID = nil
		if err := s.teamRepo.Update(team); err != nil {
			return fmt.Errorf("failed to clear team lead: %w", err)
		}
	}
	return nil
}

// convertToResponse converts a member model to response
func (s *MemberService) convertToResponse(member *models.Member) *MemberResponse {
	return &MemberResponse{
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
