package service

import (
	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// MemberServiceInterface defines the contract for member operations
type MemberServiceInterface interface {
	CreateMember(req *CreateMemberRequest) (*MemberResponse, error)
	GetMemberByID(id uuid.UUID) (*MemberResponse, error)
	ListMembers(limit, offset int) ([]MemberResponse, int64, error)
	UpdateMember(id uuid.UUID, req *UpdateMemberRequest) (*MemberResponse, error)
	DeleteMember(id uuid.UUID) error
	GetTeamMembers(teamID uuid.UUID) ([]MemberResponse, error)
}

// TeamServiceInterface defines the contract for team operations
type TeamServiceInterface interface {
	CreateTeam(req *CreateTeamRequest) (*TeamResponse, error)
	GetTeamByID(id uuid.UUID) (*TeamResponse, error)
	GetTeamWithMembers(id uuid.UUID) (*TeamResponse, error)
	ListTeams(limit, offset int) ([]TeamResponse, int64, error)
	UpdateTeam(id uuid.UUID, req *UpdateTeamRequest) (*TeamResponse, error)
	DeleteTeam(id uuid.UUID) error
}

// AllocationServiceInterface defines the contract for allocation operations
type AllocationServiceInterface interface {
	CreateAllocation(req *CreateAllocationRequest) (*AllocationResponse, error)
	GetAllocationByID(id uuid.UUID) (*AllocationResponse, error)
	ListAllocations(limit, offset int) ([]AllocationResponse, int64, error)
	GetMemberAllocations(memberID uuid.UUID) ([]AllocationResponse, error)
	UpdateAllocation(id uuid.UUID, req *UpdateAllocationRequest) (*AllocationResponse, error)
	DeleteAllocation(id uuid.UUID) error
}

// TimeEntryServiceInterface defines the contract for time entry operations
type TimeEntryServiceInterface interface {
	CreateTimeEntry(req *CreateTimeEntryRequest) (*TimeEntryResponse, error)
	ListTimeEntries(limit, offset int) ([]TimeEntryResponse, int64, error)
	DeleteTimeEntry(id uuid.UUID) error
}

// UtilizationServiceInterface defines the contract for the utilization view
type UtilizationServiceInterface interface {
	GetUtilization(memberID *uuid.UUID) ([]UtilizationResponse, error)
}

// UserServiceInterface defines the contract for user account management
type UserServiceInterface interface {
	ListUsers() ([]UserResponse, error)
	SetAdmin(id uuid.UUID) (*UserResponse, error)
	RemoveAdmin(id uuid.UUID) (*UserResponse, error)
}

// SnapshotServiceInterface defines the contract for dataset import/export
type SnapshotServiceInterface interface {
	Export() (*Snapshot, error)
	Import(raw []byte) error
}
