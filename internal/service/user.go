package service

import (
	"fmt"

	"resource-planner-backend/internal/database/models"
	apperrors "resource-planner-backend/internal/errors"
	"resource-planner-backend/internal/repository"

	"github.com/google/uuid"
)

// UserService handles admin management of user accounts
type UserService struct {
	repo repository.UserRepositoryInterface
}

// NewUserService creates a new user service
func NewUserService(repo repository.UserRepositoryInterface) *UserService {
	return &UserService{repo: repo}
}

// UserResponse represents the response data for a user account
type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	IsAdmin   bool      `json:"is_admin"`
	IsInvited bool      `json:"is_invited"`
	InvitedAt *string   `json:"invited_at,omitempty"`
	LastLogin *string   `json:"last_login,omitempty"`
	CreatedAt string    `json:"created_at"`
}

// ListUsers retrieves all user accounts
func (s *UserService) ListUsers() ([]UserResponse, error) {
	users, err := s.repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to get users: %w", err)
	}

	responses := make([]UserResponse, len(users))
	for i, user := range users {
		responses[i] = *s.convertToResponse(&user)
	}

	return responses, nil
}

// SetAdmin grants admin rights to a user
func (s *UserService) SetAdmin(id uuid.UUID) (*UserResponse, error) {
	return s.setAdminFlag(id, true)
}

// RemoveAdmin revokes admin rights from a user
func (s *UserService) RemoveAdmin(id uuid.UUID) (*UserResponse, error) {
	return s.setAdminFlag(id, false)
}

func (s *UserService) setAdminFlag(id uuid.UUID, isAdmin bool) (*UserResponse, error) {
	user, err := s.repo.GetByID(id)
	if err != nil {
		return nil, apperrors.ErrUserNotFound
	}

	if user.IsAdmin != isAdmin {
		user.IsAdmin = isAdmin
		if err := s.repo.Update(user); err != nil {
			return nil, fmt.Errorf("failed to update user: %w", err)
		}
	}

	return s.convertToResponse(user), nil
}

// convertToResponse converts a user model to response
func (s *UserService) convertToResponse(user *models.User) *UserResponse {
	response := &UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		IsAdmin:   user.IsAdmin,
		IsInvited: user.IsInvited,
		CreatedAt: user.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
	if user.InvitedAt != nil {
		invitedAt := user.InvitedAt.Format("2006-01-02T15:04:05Z07:00")
		response.InvitedAt = &invitedAt
	}
	if user.LastLogin != nil {
		lastLogin := user.LastLogin.Format("2006-01-02T15:04:05Z07:00")
		response.LastLogin = &lastLogin
	}
	return response
}
