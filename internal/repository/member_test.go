//go:build integration
// +build integration

package repository

import (
	"testing"
	"time"

	"resource-planner-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// MemberRepositoryTestSuite tests the MemberRepository
type MemberRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *MemberRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *MemberRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewMemberRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *MemberRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *MemberRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *MemberRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestCreate tests creating a new member
func (suite *MemberRepositoryTestSuite) TestCreate() {
	member := suite.factories.Member.Create()

	err := suite.repo.Create(member)

	suite.NoError(err)
	suite.NotEqual(uuid.Nil, member.ID)
	suite.NotZero(member.CreatedAt)
	suite.NotZero(member.UpdatedAt)
}

// TestCreateDuplicateEmail tests creating a member with duplicate email
func (suite *MemberRepositoryTestSuite) TestCreateDuplicateEmail() {
	member1 := suite.factories.Member.WithEmail("test@example.com")
	err := suite.repo.Create(member1)
	suite.NoError(err)

	member2 := suite.factories.Member.WithEmail("test@example.com")
	member2.Name = "Different Name"

	err = suite.repo.Create(member2)
	suite.Error(err)
	suite.Contains(err.Error(), "duplicate key value")
}

// TestGetByID tests retrieving a member by ID
func (suite *MemberRepositoryTestSuite) TestGetByID() {
	member := suite.factories.Member.Create()
	err := suite.repo.Create(member)
	suite.NoError(err)

	retrievedMember, err := suite.repo.GetByID(member.ID)

	suite.NoError(err)
	suite.NotNil(retrievedMember)
	suite.Equal(member.ID, retrievedMember.ID)
	suite.Equal(member.Email, retrievedMember.Email)
	suite.Equal(member.Name, retrievedMember.Name)
	suite.Equal(member.Capacity, retrievedMember.Capacity)
	suite.Equal([]string(member.Skills), []string(retrievedMember.Skills))
}

// TestGetByIDNotFound tests retrieving a non-existent member
func (suite *MemberRepositoryTestSuite) TestGetByIDNotFound() {
	nonExistentID := uuid.New()

	member, err := suite.repo.GetByID(nonExistentID)

	suite.Error(err)
	suite.Equal(gorm.ErrRecordNotFound, err)
	suite.Nil(member)
}

// TestGetByEmail tests retrieving a member by email
func (suite *MemberRepositoryTestSuite) TestGetByEmail() {
	member := suite.factories.Member.WithEmail("test@example.com")
	err := suite.repo.Create(member)
	suite.NoError(err)

	retrievedMember, err := suite.repo.GetByEmail("test@example.com")

	suite.NoError(err)
	suite.NotNil(retrievedMember)
	suite.Equal(member.ID, retrievedMember.ID)
	suite.Equal("test@example.com", retrievedMember.Email)
}

// TestGetByEmailNotFound tests retrieving a non-existent member by email
func (suite *MemberRepositoryTestSuite) TestGetByEmailNotFound() {
	member, err := suite.repo.GetByEmail("nonexistent@example.com")

	suite.Error(err)
	suite.Equal(gorm.ErrRecordNotFound, err)
	suite.Nil(member)
}

// TestGetAll tests listing members
func (suite *MemberRepositoryTestSuite) TestGetAll() {
	for i := 0; i < 3; i++ {
		member := suite.factories.Member.Create()
		err := suite.repo.Create(member)
		suite.NoError(err)
	}

	members, total, err := suite.repo.GetAll(10, 0)

	suite.NoError(err)
	suite.Len(members, 3)
	suite.Equal(int64(3), total)
}

// TestGetAllWithPagination tests listing members with pagination
func (suite *MemberRepositoryTestSuite) TestGetAllWithPagination() {
	for i := 0; i < 5; i++ {
		member := suite.factories.Member.Create()
		err := suite.repo.Create(member)
		suite.NoError(err)
	}

	// Test first page
	members, total, err := suite.repo.GetAll(2, 0)
	suite.NoError(err)
	suite.Len(members, 2)
	suite.Equal(int64(5), total)

	// Test second page
	members, total, err = suite.repo.GetAll(2, 2)
	suite.NoError(err)
	suite.Len(members, 2)
	suite.Equal(int64(5), total)

	// Test third page
	members, total, err = suite.repo.GetAll(2, 4)
	suite.NoError(err)
	suite.Len(members, 1) // Only one left
	suite.Equal(int64(5), total)
}

// TestGetByTeamID tests retrieving members by team ID
func (suite *MemberRepositoryTestSuite) TestGetByTeamID() {
	team := suite.factories.Team.Create()
	teamRepo := NewTeamRepository(suite.baseTestSuite.DB)
	err := teamRepo.Create(team)
	suite.NoError(err)

	member1 := suite.factories.Member.WithTeam(team.ID)
	err = suite.repo.Create(member1)
	suite.NoError(err)

	member2 := suite.factories.Member.WithTeam(team.ID)
	err = suite.repo.Create(member2)
	suite.NoError(err)

	// Member outside the team should not appear
	outsider := suite.factories.Member.Create()
	err = suite.repo.Create(outsider)
	suite.NoError(err)

	members, err := suite.repo.GetByTeamID(team.ID)

	suite.NoError(err)
	suite.Len(members, 2)
}

// TestUpdate tests updating a member
func (suite *MemberRepositoryTestSuite) TestUpdate() {
	member := suite.factories.Member.Create()
	err := suite.repo.Create(member)
	suite.NoError(err)

	member.Name = "Updated Name"
	member.Role = "Senior Developer"
	member.Capacity = 32
	member.Skills = []string{"Go", "Kubernetes"}

	err = suite.repo.Update(member)
	suite.NoError(err)

	updatedMember, err := suite.repo.GetByID(member.ID)
	suite.NoError(err)
	suite.Equal("Updated Name", updatedMember.Name)
	suite.Equal("Senior Developer", updatedMember.Role)
	suite.Equal(32.0, updatedMember.Capacity)
	suite.Equal([]string{"Go", "Kubernetes"}, []string(updatedMember.Skills))
	suite.True(updatedMember.UpdatedAt.After(updatedMember.CreatedAt))
}

// TestDelete tests deleting a member
func (suite *MemberRepositoryTestSuite) TestDelete() {
	member := suite.factories.Member.Create()
	err := suite.repo.Create(member)
	suite.NoError(err)

	err = suite.repo.Delete(member.ID)
	suite.NoError(err)

	_, err = suite.repo.GetByID(member.ID)
	suite.Error(err)
	suite.Equal(gorm.ErrRecordNotFound, err)
}

// TestDeleteNotFound tests deleting a non-existent member
func (suite *MemberRepositoryTestSuite) TestDeleteNotFound() {
	nonExistentID := uuid.New()

	err := suite.repo.Delete(nonExistentID)

	// Should not error when deleting non-existent record
	suite.NoError(err)
}

// TestDeleteCascades tests that deleting a member removes their allocations
// and time entries and clears any team lead reference
func (suite *MemberRepositoryTestSuite) TestDeleteCascades() {
	team := suite.factories.Team.Create()
	teamRepo := NewTeamRepository(suite.baseTestSuite.DB)
	err := teamRepo.Create(team)
	suite.NoError(err)

	member := suite.factories.Member.WithTeam(team.ID)
	member.IsTeamLead = true
	err = suite.repo.Create(member)
	suite.NoError(err)

	team.LeadID = &member.ID
	err = teamRepo.Update(team)
	suite.NoError(err)

	allocation := suite.factories.Allocation.WithAssignee(member.ID)
	allocationRepo := NewAllocationRepository(suite.baseTestSuite.DB)
	err = allocationRepo.Create(allocation)
	suite.NoError(err)

	entry := suite.factories.TimeEntry.OnDate(allocation.ID, member.ID, time.Now())
	entryRepo := NewTimeEntryRepository(suite.baseTestSuite.DB)
	err = entryRepo.Create(entry)
	suite.NoError(err)

	// Delete the member
	err = suite.repo.Delete(member.ID)
	suite.NoError(err)

	// Allocation and time entry are gone
	_, err = allocationRepo.GetByID(allocation.ID)
	suite.Equal(gorm.ErrRecordNotFound, err)
	_, err = entryRepo.GetByID(entry.ID)
	suite.Equal(gorm.ErrRecordNotFound, err)

	// Team survives with a cleared lead reference
	updatedTeam, err := teamRepo.GetByID(team.ID)
	suite.NoError(err)
	suite.Nil(updatedTeam.LeadID)
}

// Run the test suite
func TestMemberRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(MemberRepositoryTestSuite))
}
