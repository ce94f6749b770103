package repository

import (
	"time"

	"resource-planner-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// MemberRepositoryInterface defines the interface for member repository operations
type MemberRepositoryInterface interface {
	Create(member *models.Member) error
	GetByID(id uuid.UUID) (*models.Member, error)
	GetByEmail(email string) (*models.Member, error)
	GetAll(limit, offset int) ([]models.Member, int64, error)
	GetByTeamID(teamID uuid.UUID) ([]models.Member, error)
	Update(member *models.Member) error
	Delete(id uuid.UUID) error
}

// TeamRepositoryInterface defines the interface for team repository operations
type TeamRepositoryInterface interface {
	Create(team *models.Team) error
	GetByID(id uuid.UUID) (*models.Team, error)
	GetWithMembers(id uuid.UUID) (*models.Team, error)
	GetAll(limit, offset int) ([]models.Team, int64, error)
	Update(team *models.Team) error
	Delete(id uuid.UUID) error
}

// AllocationRepositoryInterface defines the interface for allocation repository operations
type AllocationRepositoryInterface interface {
	Create(allocation *models.Allocation) error
	GetByID(id uuid.UUID) (*models.Allocation, error)
	GetAll(limit, offset int) ([]models.Allocation, int64, error)
	GetByAssigneeID(assigneeID uuid.UUID) ([]models.Allocation, error)
	GetByTeamID(teamID uuid.UUID) ([]models.Allocation, error)
	Update(allocation *models.Allocation) error
	Delete(id uuid.UUID) error
}

// TimeEntryRepositoryInterface defines the interface for time entry repository operations
type TimeEntryRepositoryInterface interface {
	Create(entry *models.TimeEntry) error
	GetByID(id uuid.UUID) (*models.TimeEntry, error)
	GetAll(limit, offset int) ([]models.TimeEntry, int64, error)
	GetByMemberInRange(memberID uuid.UUID, from, to time.Time) ([]models.TimeEntry, error)
	Delete(id uuid.UUID) error
}

// UserRepositoryInterface defines the interface for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetAll() ([]models.User, error)
	Update(user *models.User) error
	Delete(id uuid.UUID) error
}

// InvitationRepositoryInterface defines the interface for invitation repository operations
type InvitationRepositoryInterface interface {
	Create(invitation *models.Invitation) error
	GetByEmail(email string) (*models.Invitation, error)
	GetAll() ([]models.Invitation, error)
	DeleteByEmail(email string) error
}
