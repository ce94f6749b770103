package testutils

import (
	"fmt"
	"time"

	"resource-planner-backend/internal/database/models"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// MemberFactory provides methods to create test Member data
type MemberFactory struct{}

// NewMemberFactory creates a new MemberFactory
func NewMemberFactory() *MemberFactory {
	return &MemberFactory{}
}

// Create creates a test Member with default values
func (f *MemberFactory) Create() *models.Member {
	id := uuid.New()

	return &models.Member{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		TeamID: nil,
		Name:   "John Doe",
		// Unique email per instance so suites can create several members
		Email:       fmt.Sprintf("john.doe+%s@test.com", id.String()[:8]),
		Role:        "Developer",
		Department:  "Engineering",
		Capacity:    40,
		Skills:      []string{"Go", "PostgreSQL"},
		AvatarColor: "#3B82F6",
		IsTeamLead:  false,
	}
}

// WithTeam sets the team ID for the member
func (f *MemberFactory) WithTeam(teamID uuid.UUID) *models.Member {
	member := f.Create()
	member.TeamID = &teamID
	return member
}

// WithEmail sets a custom email for the member
func (f *MemberFactory) WithEmail(email string) *models.Member {
	member := f.Create()
	member.Email = email
	return member
}

// WithCapacity sets a custom weekly capacity for the member
func (f *MemberFactory) WithCapacity(capacity float64) *models.Member {
	member := f.Create()
	member.Capacity = capacity
	return member
}

// TeamFactory provides methods to create test Team data
type TeamFactory struct{}

// NewTeamFactory creates a new TeamFactory
func NewTeamFactory() *TeamFactory {
	return &TeamFactory{}
}

// Create creates a test Team with default values
func (f *TeamFactory) Create() *models.Team {
	return &models.Team{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:        "Test Team",
		Description: "A test team",
		Color:       "#3B82F6",
	}
}

// WithName sets a custom name for the team
func (f *TeamFactory) WithName(name string) *models.Team {
	team := f.Create()
	team.Name = name
	return team
}

// AllocationFactory provides methods to create test Allocation data
type AllocationFactory struct{}

// NewAllocationFactory creates a new AllocationFactory
func NewAllocationFactory() *AllocationFactory {
	return &AllocationFactory{}
}

// Create creates a test Allocation with default values. The assignee must be
// set before persisting.
func (f *AllocationFactory) Create() *models.Allocation {
	return &models.Allocation{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Title:          "Test Allocation",
		Description:    "A test allocation",
		Priority:       models.PriorityMedium,
		Status:         models.StatusTodo,
		EstimatedHours: 16,
		Tags:           []string{"test"},
	}
}

// WithAssignee sets the assignee for the allocation
func (f *AllocationFactory) WithAssignee(memberID uuid.UUID) *models.Allocation {
	allocation := f.Create()
	allocation.AssigneeID = memberID
	return allocation
}

// WithTeam sets the team for the allocation
func (f *AllocationFactory) WithTeam(memberID, teamID uuid.UUID) *models.Allocation {
	allocation := f.WithAssignee(memberID)
	allocation.TeamID = &teamID
	return allocation
}

// TimeEntryFactory provides methods to create test TimeEntry data
type TimeEntryFactory struct{}

// NewTimeEntryFactory creates a new TimeEntryFactory
func NewTimeEntryFactory() *TimeEntryFactory {
	return &TimeEntryFactory{}
}

// Create creates a test TimeEntry for the given allocation and member
func (f *TimeEntryFactory) Create(allocationID, memberID uuid.UUID) *models.TimeEntry {
	return &models.TimeEntry{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		AllocationID: allocationID,
		MemberID:     memberID,
		Hours:        4,
		Date:         time.Now(),
		Description:  "Test work",
	}
}

// OnDate sets the date for the time entry
func (f *TimeEntryFactory) OnDate(allocationID, memberID uuid.UUID, date time.Time) *models.TimeEntry {
	entry := f.Create(allocationID, memberID)
	entry.Date = date
	return entry
}

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a test User with the given password hashed with bcrypt
func (f *UserFactory) Create(email, password string) *models.User {
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	return &models.User{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Email:        email,
		PasswordHash: string(hash),
	}
}

// CreateAdmin creates a test admin User
func (f *UserFactory) CreateAdmin(email, password string) *models.User {
	user := f.Create(email, password)
	user.IsAdmin = true
	return user
}

// FactorySet provides access to all factories
type FactorySet struct {
	Member     *MemberFactory
	Team       *TeamFactory
	Allocation *AllocationFactory
	TimeEntry  *TimeEntryFactory
	User       *UserFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Member:     NewMemberFactory(),
		Team:       NewTeamFactory(),
		Allocation: NewAllocationFactory(),
		TimeEntry:  NewTimeEntryFactory(),
		User:       NewUserFactory(),
	}
}
