package service_test

import (
	"testing"
	"time"

	"resource-planner-backend/internal/database/models"
	"resource-planner-backend/internal/mocks"
	"resource-planner-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// UtilizationServiceTestSuite defines the test suite for UtilizationService
type UtilizationServiceTestSuite struct {
	suite.Suite
	ctrl               *gomock.Controller
	mockMemberRepo     *mocks.MockMemberRepositoryInterface
	mockTimeEntryRepo  *mocks.MockTimeEntryRepositoryInterface
	utilizationService *service.UtilizationService
}

// SetupTest sets up the test suite
func (suite *UtilizationServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockMemberRepo = mocks.NewMockMemberRepositoryInterface(suite.ctrl)
	suite.mockTimeEntryRepo = mocks.NewMockTimeEntryRepositoryInterface(suite.ctrl)

	suite.utilizationService = service.NewUtilizationService(suite.mockMemberRepo, suite.mockTimeEntryRepo)
}

// TearDownTest cleans up after each test
func (suite *UtilizationServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func entry(memberID, allocationID uuid.UUID, hours float64) models.TimeEntry {
	return models.TimeEntry{
		BaseModel: models.BaseModel{
			ID: uuid.New(),
		},
		MemberID:     memberID,
		AllocationID: allocationID,
		Hours:        hours,
		Date:         time.Now(),
	}
}

// TestGetUtilizationAllMembers tests computing utilization for every member
func (suite *UtilizationServiceTestSuite) TestGetUtilizationAllMembers() {
	memberA := models.Member{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Name:      "John Doe",
		Email:     "john@example.com",
		Capacity:  40,
	}
	memberB := models.Member{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Name:      "Jane Smith",
		Email:     "jane@example.com",
		Capacity:  40,
	}
	allocationID := uuid.New()

	suite.mockMemberRepo.EXPECT().
		GetAll(-1, 0).
		Return([]models.Member{memberA, memberB}, int64(2), nil).
		Times(1)

	suite.mockTimeEntryRepo.EXPECT().
		GetByMemberInRange(memberA.ID, gomock.Any(), gomock.Any()).
		Return([]models.TimeEntry{
			entry(memberA.ID, allocationID, 20),
			entry(memberA.ID, allocationID, 16),
		}, nil).
		Times(1)

	suite.mockTimeEntryRepo.EXPECT().
		GetByMemberInRange(memberB.ID, gomock.Any(), gomock.Any()).
		Return([]models.TimeEntry{}, nil).
		Times(1)

	responses, err := suite.utilizationService.GetUtilization(nil)

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), responses, 2)

	assert.Equal(suite.T(), memberA.ID, responses[0].MemberID)
	assert.Equal(suite.T(), 36.0, responses[0].TotalHours)
	assert.Equal(suite.T(), 40.0, responses[0].CapacityHours)
	assert.Equal(suite.T(), 90, responses[0].UtilizationPercentage)
	assert.Len(suite.T(), responses[0].Allocations, 1)
	assert.Equal(suite.T(), allocationID, responses[0].Allocations[0].AllocationID)
	assert.Equal(suite.T(), 36.0, responses[0].Allocations[0].Hours)

	assert.Equal(suite.T(), memberB.ID, responses[1].MemberID)
	assert.Equal(suite.T(), 0.0, responses[1].TotalHours)
	assert.Equal(suite.T(), 0, responses[1].UtilizationPercentage)
	assert.Empty(suite.T(), responses[1].Allocations)
}

// TestGetUtilizationSingleMember tests filtering utilization to one member
func (suite *UtilizationServiceTestSuite) TestGetUtilizationSingleMember() {
	member := &models.Member{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Name:      "John Doe",
		Email:     "john@example.com",
		Capacity:  40,
	}
	allocationID := uuid.New()

	suite.mockMemberRepo.EXPECT().
		GetByID(member.ID).
		Return(member, nil).
		Times(1)

	suite.mockTimeEntryRepo.EXPECT().
		GetByMemberInRange(member.ID, gomock.Any(), gomock.Any()).
		Return([]models.TimeEntry{
			entry(member.ID, allocationID, 30),
		}, nil).
		Times(1)

	responses, err := suite.utilizationService.GetUtilization(&member.ID)

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), responses, 1)
	assert.Equal(suite.T(), member.ID, responses[0].MemberID)
	assert.Equal(suite.T(), 30.0, responses[0].TotalHours)
	assert.Equal(suite.T(), 75, responses[0].UtilizationPercentage)
}

// TestGetUtilizationOverbooked tests that the percentage is not capped at 100
func (suite *UtilizationServiceTestSuite) TestGetUtilizationOverbooked() {
	member := &models.Member{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Name:      "John Doe",
		Email:     "john@example.com",
		Capacity:  40,
	}
	allocationID := uuid.New()

	suite.mockMemberRepo.EXPECT().
		GetByID(member.ID).
		Return(member, nil).
		Times(1)

	suite.mockTimeEntryRepo.EXPECT().
		GetByMemberInRange(member.ID, gomock.Any(), gomock.Any()).
		Return([]models.TimeEntry{
			entry(member.ID, allocationID, 50),
		}, nil).
		Times(1)

	responses, err := suite.utilizationService.GetUtilization(&member.ID)

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), responses, 1)
	assert.Equal(suite.T(), 125, responses[0].UtilizationPercentage)
}

// TestGetUtilizationBreakdownOrder tests that allocations keep first-seen order
func (suite *UtilizationServiceTestSuite) TestGetUtilizationBreakdownOrder() {
	member := &models.Member{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Name:      "John Doe",
		Email:     "john@example.com",
		Capacity:  40,
	}
	firstAllocation := uuid.New()
	secondAllocation := uuid.New()

	suite.mockMemberRepo.EXPECT().
		GetByID(member.ID).
		Return(member, nil).
		Times(1)

	suite.mockTimeEntryRepo.EXPECT().
		GetByMemberInRange(member.ID, gomock.Any(), gomock.Any()).
		Return([]models.TimeEntry{
			entry(member.ID, firstAllocation, 8),
			entry(member.ID, secondAllocation, 4),
			entry(member.ID, firstAllocation, 2),
		}, nil).
		Times(1)

	responses, err := suite.utilizationService.GetUtilization(&member.ID)

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), responses, 1)
	assert.Equal(suite.T(), 14.0, responses[0].TotalHours)
	assert.Len(suite.T(), responses[0].Allocations, 2)
	assert.Equal(suite.T(), firstAllocation, responses[0].Allocations[0].AllocationID)
	assert.Equal(suite.T(), 10.0, responses[0].Allocations[0].Hours)
	assert.Equal(suite.T(), secondAllocation, responses[0].Allocations[1].AllocationID)
	assert.Equal(suite.T(), 4.0, responses[0].Allocations[1].Hours)
}

// TestGetUtilizationMemberNotFound tests filtering to an unknown member
func (suite *UtilizationServiceTestSuite) TestGetUtilizationMemberNotFound() {
	memberID := uuid.New()

	suite.mockMemberRepo.EXPECT().
		GetByID(memberID).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	responses, err := suite.utilizationService.GetUtilization(&memberID)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), responses)
	assert.Contains(suite.T(), err.Error(), "member not found")
}

// TestStartOfWeek tests that weeks start on Sunday at midnight
func TestStartOfWeek(t *testing.T) {
	testCases := []struct {
		name     string
		input    time.Time
		expected time.Time
	}{
		{
			name:     "Midweek day",
			input:    time.Date(2024, 3, 13, 15, 30, 0, 0, time.UTC), // Wednesday
			expected: time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "Sunday maps to itself",
			input:    time.Date(2024, 3, 10, 23, 59, 59, 0, time.UTC),
			expected: time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "Saturday maps to preceding Sunday",
			input:    time.Date(2024, 3, 16, 0, 0, 1, 0, time.UTC),
			expected: time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "Week spanning a month boundary",
			input:    time.Date(2024, 4, 2, 9, 0, 0, 0, time.UTC), // Tuesday
			expected: time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, service.StartOfWeek(tc.input))
		})
	}
}

func TestUtilizationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UtilizationServiceTestSuite))
}
