package service_test

import (
	"testing"
	"time"

	"resource-planner-backend/internal/database/models"
	"resource-planner-backend/internal/mocks"
	"resource-planner-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// AllocationServiceTestSuite defines the test suite for AllocationService
type AllocationServiceTestSuite struct {
	suite.Suite
	ctrl               *gomock.Controller
	mockAllocationRepo *mocks.MockAllocationRepositoryInterface
	mockMemberRepo     *mocks.MockMemberRepositoryInterface
	mockTeamRepo       *mocks.MockTeamRepositoryInterface
	allocationService  *service.AllocationService
	validator          *validator.Validate
}

// SetupTest sets up the test suite
func (suite *AllocationServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockAllocationRepo = mocks.NewMockAllocationRepositoryInterface(suite.ctrl)
	suite.mockMemberRepo = mocks.NewMockMemberRepositoryInterface(suite.ctrl)
	suite.mockTeamRepo = mocks.NewMockTeamRepositoryInterface(suite.ctrl)
	suite.validator = validator.New()

	// Create service with mock repositories
	suite.allocationService = service.NewAllocationService(suite.mockAllocationRepo, suite.mockMemberRepo, suite.mockTeamRepo, suite.validator)
}

// TearDownTest cleans up after each test
func (suite *AllocationServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *AllocationServiceTestSuite) assignee() *models.Member {
	return &models.Member{
		BaseModel: models.BaseModel{
			ID: uuid.New(),
		},
		Name:     "John Doe",
		Email:    "john@example.com",
		Capacity: 40,
	}
}

// TestCreateAllocation tests creating an allocation with defaults
func (suite *AllocationServiceTestSuite) TestCreateAllocation() {
	assignee := suite.assignee()
	req := &service.CreateAllocationRequest{
		Title:          "API redesign",
		Description:    "Rework the public API surface",
		AssigneeID:     assignee.ID,
		EstimatedHours: 24,
		Tags:           []string{"api"},
		// Priority and Status are not provided - should use defaults
	}

	suite.mockMemberRepo.EXPECT().
		GetByID(assignee.ID).
		Return(assignee, nil).
		Times(1)

	suite.mockAllocationRepo.EXPECT().
		Create(gomock.Any()).
		Return(nil).
		Times(1)

	response, err := suite.allocationService.CreateAllocation(req)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), response)
	assert.Equal(suite.T(), req.Title, response.Title)
	assert.Equal(suite.T(), assignee.ID, response.AssigneeID)
	assert.Equal(suite.T(), "medium", response.Priority) // Default priority
	assert.Equal(suite.T(), "todo", response.Status)     // Default status
	assert.Equal(suite.T(), 24.0, response.EstimatedHours)
}

// TestCreateAllocationWithPriorityAndStatus tests explicit priority and status
func (suite *AllocationServiceTestSuite) TestCreateAllocationWithPriorityAndStatus() {
	assignee := suite.assignee()
	priority := "urgent"
	status := "in-progress"
	req := &service.CreateAllocationRequest{
		Title:      "Incident followup",
		AssigneeID: assignee.ID,
		Priority:   &priority,
		Status:     &status,
	}

	suite.mockMemberRepo.EXPECT().
		GetByID(assignee.ID).
		Return(assignee, nil).
		Times(1)

	suite.mockAllocationRepo.EXPECT().
		Create(gomock.Any()).
		Return(nil).
		Times(1)

	response, err := suite.allocationService.CreateAllocation(req)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), response)
	assert.Equal(suite.T(), "urgent", response.Priority)
	assert.Equal(suite.T(), "in-progress", response.Status)
}

// TestCreateAllocationInvalidPriority tests an unknown priority value
func (suite *AllocationServiceTestSuite) TestCreateAllocationInvalidPriority() {
	assignee := suite.assignee()
	priority := "critical"
	req := &service.CreateAllocationRequest{
		Title:      "API redesign",
		AssigneeID: assignee.ID,
		Priority:   &priority,
	}

	suite.mockMemberRepo.EXPECT().
		GetByID(assignee.ID).
		Return(assignee, nil).
		Times(1)

	response, err := suite.allocationService.CreateAllocation(req)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.Contains(suite.T(), err.Error(), "priority")
}

// TestCreateAllocationInvalidStatus tests an unknown status value
func (suite *AllocationServiceTestSuite) TestCreateAllocationInvalidStatus() {
	assignee := suite.assignee()
	status := "done"
	req := &service.CreateAllocationRequest{
		Title:      "API redesign",
		AssigneeID: assignee.ID,
		Status:     &status,
	}

	suite.mockMemberRepo.EXPECT().
		GetByID(assignee.ID).
		Return(assignee, nil).
		Times(1)

	response, err := suite.allocationService.CreateAllocation(req)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.Contains(suite.T(), err.Error(), "status")
}

// TestCreateAllocationAssigneeNotFound tests creating with an unknown assignee
func (suite *AllocationServiceTestSuite) TestCreateAllocationAssigneeNotFound() {
	assigneeID := uuid.New()
	req := &service.CreateAllocationRequest{
		Title:      "API redesign",
		AssigneeID: assigneeID,
	}

	suite.mockMemberRepo.EXPECT().
		GetByID(assigneeID).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	response, err := suite.allocationService.CreateAllocation(req)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.Contains(suite.T(), err.Error(), "assignee not found")
}

// TestCreateAllocationInvalidDateRange tests a start date after the end date
func (suite *AllocationServiceTestSuite) TestCreateAllocationInvalidDateRange() {
	assignee := suite.assignee()
	start := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	req := &service.CreateAllocationRequest{
		Title:      "API redesign",
		AssigneeID: assignee.ID,
		StartDate:  &start,
		EndDate:    &end,
	}

	suite.mockMemberRepo.EXPECT().
		GetByID(assignee.ID).
		Return(assignee, nil).
		Times(1)

	response, err := suite.allocationService.CreateAllocation(req)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.Contains(suite.T(), err.Error(), "start date must not be after end date")
}

// TestGetAllocationByID tests getting an allocation by ID
func (suite *AllocationServiceTestSuite) TestGetAllocationByID() {
	allocationID := uuid.New()
	expectedAllocation := &models.Allocation{
		BaseModel: models.BaseModel{
			ID: allocationID,
		},
		Title:      "API redesign",
		AssigneeID: uuid.New(),
		Priority:   models.PriorityHigh,
		Status:     models.StatusInProgress,
	}

	suite.mockAllocationRepo.EXPECT().
		GetByID(allocationID).
		Return(expectedAllocation, nil).
		Times(1)

	response, err := suite.allocationService.GetAllocationByID(allocationID)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), response)
	assert.Equal(suite.T(), expectedAllocation.ID, response.ID)
	assert.Equal(suite.T(), expectedAllocation.Title, response.Title)
	assert.Equal(suite.T(), "high", response.Priority)
}

// TestGetAllocationByIDNotFound tests getting an allocation when not found
func (suite *AllocationServiceTestSuite) TestGetAllocationByIDNotFound() {
	allocationID := uuid.New()

	suite.mockAllocationRepo.EXPECT().
		GetByID(allocationID).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	response, err := suite.allocationService.GetAllocationByID(allocationID)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.Contains(suite.T(), err.Error(), "allocation not found")
}

// TestListAllocations tests listing allocations with pagination
func (suite *AllocationServiceTestSuite) TestListAllocations() {
	limit, offset := 20, 0
	expectedAllocations := []models.Allocation{
		{
			BaseModel: models.BaseModel{
				ID: uuid.New(),
			},
			Title:      "API redesign",
			AssigneeID: uuid.New(),
			Priority:   models.PriorityMedium,
			Status:     models.StatusTodo,
		},
		{
			BaseModel: models.BaseModel{
				ID: uuid.New(),
			},
			Title:      "Billing migration",
			AssigneeID: uuid.New(),
			Priority:   models.PriorityHigh,
			Status:     models.StatusInProgress,
		},
	}
	expectedTotal := int64(2)

	suite.mockAllocationRepo.EXPECT().
		GetAll(limit, offset).
		Return(expectedAllocations, expectedTotal, nil).
		Times(1)

	responses, total, err := suite.allocationService.ListAllocations(limit, offset)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), expectedTotal, total)
	assert.Len(suite.T(), responses, 2)
	assert.Equal(suite.T(), expectedAllocations[0].Title, responses[0].Title)
	assert.Equal(suite.T(), expectedAllocations[1].Title, responses[1].Title)
}

// TestGetMemberAllocations tests getting all allocations of a member
func (suite *AllocationServiceTestSuite) TestGetMemberAllocations() {
	assignee := suite.assignee()
	expectedAllocations := []models.Allocation{
		{
			BaseModel: models.BaseModel{
				ID: uuid.New(),
			},
			Title:      "API redesign",
			AssigneeID: assignee.ID,
			Priority:   models.PriorityMedium,
			Status:     models.StatusTodo,
		},
	}

	suite.mockMemberRepo.EXPECT().
		GetByID(assignee.ID).
		Return(assignee, nil).
		Times(1)

	suite.mockAllocationRepo.EXPECT().
		GetByAssigneeID(assignee.ID).
		Return(expectedAllocations, nil).
		Times(1)

	responses, err := suite.allocationService.GetMemberAllocations(assignee.ID)

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), responses, 1)
	assert.Equal(suite.T(), expectedAllocations[0].Title, responses[0].Title)
}

// TestGetMemberAllocationsMemberNotFound tests an unknown member
func (suite *AllocationServiceTestSuite) TestGetMemberAllocationsMemberNotFound() {
	memberID := uuid.New()

	suite.mockMemberRepo.EXPECT().
		GetByID(memberID).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	responses, err := suite.allocationService.GetMemberAllocations(memberID)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), responses)
	assert.Contains(suite.T(), err.Error(), "member not found")
}

// TestUpdateAllocation tests updating an allocation
func (suite *AllocationServiceTestSuite) TestUpdateAllocation() {
	allocationID := uuid.New()
	existingAllocation := &models.Allocation{
		BaseModel: models.BaseModel{
			ID: allocationID,
		},
		Title:      "API redesign",
		AssigneeID: uuid.New(),
		Priority:   models.PriorityMedium,
		Status:     models.StatusTodo,
	}

	newTitle := "API redesign v2"
	newStatus := "review"
	newActualHours := 12.5
	req := &service.UpdateAllocationRequest{
		Title:       &newTitle,
		Status:      &newStatus,
		ActualHours: &newActualHours,
	}

	suite.mockAllocationRepo.EXPECT().
		GetByID(allocationID).
		Return(existingAllocation, nil).
		Times(1)

	suite.mockAllocationRepo.EXPECT().
		Update(gomock.Any()).
		Return(nil).
		Times(1)

	response, err := suite.allocationService.UpdateAllocation(allocationID, req)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), response)
	assert.Equal(suite.T(), newTitle, response.Title)
	assert.Equal(suite.T(), "review", response.Status)
	assert.Equal(suite.T(), newActualHours, response.ActualHours)
}

// TestUpdateAllocationReassign tests moving an allocation to another member
func (suite *AllocationServiceTestSuite) TestUpdateAllocationReassign() {
	allocationID := uuid.New()
	newAssignee := suite.assignee()
	existingAllocation := &models.Allocation{
		BaseModel: models.BaseModel{
			ID: allocationID,
		},
		Title:      "API redesign",
		AssigneeID: uuid.New(),
		Priority:   models.PriorityMedium,
		Status:     models.StatusTodo,
	}

	req := &service.UpdateAllocationRequest{
		AssigneeID: &newAssignee.ID,
	}

	suite.mockAllocationRepo.EXPECT().
		GetByID(allocationID).
		Return(existingAllocation, nil).
		Times(1)

	suite.mockMemberRepo.EXPECT().
		GetByID(newAssignee.ID).
		Return(newAssignee, nil).
		Times(1)

	suite.mockAllocationRepo.EXPECT().
		Update(gomock.Any()).
		Return(nil).
		Times(1)

	response, err := suite.allocationService.UpdateAllocation(allocationID, req)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), response)
	assert.Equal(suite.T(), newAssignee.ID, response.AssigneeID)
}

// TestUpdateAllocationNotFound tests updating an allocation that doesn't exist
func (suite *AllocationServiceTestSuite) TestUpdateAllocationNotFound() {
	allocationID := uuid.New()
	newTitle := "API redesign v2"
	req := &service.UpdateAllocationRequest{
		Title: &newTitle,
	}

	suite.mockAllocationRepo.EXPECT().
		GetByID(allocationID).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	response, err := suite.allocationService.UpdateAllocation(allocationID, req)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.Contains(suite.T(), err.Error(), "allocation not found")
}

// TestDeleteAllocation tests deleting an allocation
func (suite *AllocationServiceTestSuite) TestDeleteAllocation() {
	allocationID := uuid.New()
	existingAllocation := &models.Allocation{
		BaseModel: models.BaseModel{
			ID: allocationID,
		},
		Title:      "API redesign",
		AssigneeID: uuid.New(),
	}

	suite.mockAllocationRepo.EXPECT().
		GetByID(allocationID).
		Return(existingAllocation, nil).
		Times(1)

	suite.mockAllocationRepo.EXPECT().
		Delete(allocationID).
		Return(nil).
		Times(1)

	err := suite.allocationService.DeleteAllocation(allocationID)

	assert.NoError(suite.T(), err)
}

// TestDeleteAllocationNotFound tests deleting an allocation that doesn't exist
func (suite *AllocationServiceTestSuite) TestDeleteAllocationNotFound() {
	allocationID := uuid.New()

	suite.mockAllocationRepo.EXPECT().
		GetByID(allocationID).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	err := suite.allocationService.DeleteAllocation(allocationID)

	assert.Error(suite.T(), err)
	assert.Contains(suite.T(), err.Error(), "allocation not found")
}

func TestAllocationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AllocationServiceTestSuite))
}
