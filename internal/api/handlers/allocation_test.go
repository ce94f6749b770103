package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	apperrors "resource-planner-backend/internal/errors"
	"resource-planner-backend/internal/mocks"
	"resource-planner-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// AllocationHandlerTestSuite defines the test suite for allocation endpoints
type AllocationHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockAllocationServiceInterface
	router      *gin.Engine
}

// SetupTest sets up the test suite
func (suite *AllocationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockAllocationServiceInterface(suite.ctrl)

	suite.router = gin.New()
	suite.setupRoutesWithMock()
}

// TearDownTest cleans up after each test
func (suite *AllocationHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// setupRoutesWithMock sets up routes that use the mock service directly
func (suite *AllocationHandlerTestSuite) setupRoutesWithMock() {
	suite.router.POST("/allocations", func(c *gin.Context) {
		var req service.CreateAllocationRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		allocation, err := suite.mockService.CreateAllocation(&req)
		if err != nil {
			if apperrors.IsNotFound(err) {
				c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, allocation)
	})

	suite.router.GET("/allocations/:id", func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid allocation ID"})
			return
		}
		allocation, err := suite.mockService.GetAllocationByID(id)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, allocation)
	})

	suite.router.GET("/allocations", func(c *gin.Context) {
		limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
		offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

		allocations, total, err := suite.mockService.ListAllocations(limit, offset)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"allocations": allocations,
			"total":       total,
			"limit":       limit,
			"offset":      offset,
		})
	})

	suite.router.PUT("/allocations/:id", func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid allocation ID"})
			return
		}
		var req service.UpdateAllocationRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		allocation, err := suite.mockService.UpdateAllocation(id, &req)
		if err != nil {
			if apperrors.IsNotFound(err) {
				c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, allocation)
	})

	suite.router.DELETE("/allocations/:id", func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid allocation ID"})
			return
		}
		if err := suite.mockService.DeleteAllocation(id); err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Allocation deleted successfully"})
	})
}

// TestCreateAllocation tests POST /allocations
func (suite *AllocationHandlerTestSuite) TestCreateAllocation() {
	assigneeID := uuid.New()
	expectedResponse := &service.AllocationResponse{
		ID:         uuid.New(),
		Title:      "API redesign",
		AssigneeID: assigneeID,
		Priority:   "medium",
		Status:     "todo",
	}

	suite.mockService.EXPECT().
		CreateAllocation(gomock.Any()).
		Return(expectedResponse, nil).
		Times(1)

	body, _ := json.Marshal(gin.H{
		"title":       "API redesign",
		"assignee_id": assigneeID,
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/allocations", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusCreated, w.Code)

	var response service.AllocationResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "medium", response.Priority)
	assert.Equal(suite.T(), "todo", response.Status)
}

// TestCreateAllocationAssigneeNotFound tests POST /allocations for a missing assignee
func (suite *AllocationHandlerTestSuite) TestCreateAllocationAssigneeNotFound() {
	suite.mockService.EXPECT().
		CreateAllocation(gomock.Any()).
		Return(nil, apperrors.ErrAssigneeNotFound).
		Times(1)

	body, _ := json.Marshal(gin.H{
		"title":       "API redesign",
		"assignee_id": uuid.New(),
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/allocations", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

// TestCreateAllocationInvalidPriority tests POST /allocations with a bad priority
func (suite *AllocationHandlerTestSuite) TestCreateAllocationInvalidPriority() {
	suite.mockService.EXPECT().
		CreateAllocation(gomock.Any()).
		Return(nil, apperrors.NewValidationError("priority", "must be one of [low medium high urgent]")).
		Times(1)

	body, _ := json.Marshal(gin.H{
		"title":       "API redesign",
		"assignee_id": uuid.New(),
		"priority":    "critical",
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/allocations", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

// TestGetAllocation tests GET /allocations/:id
func (suite *AllocationHandlerTestSuite) TestGetAllocation() {
	allocationID := uuid.New()
	expectedResponse := &service.AllocationResponse{
		ID:         allocationID,
		Title:      "API redesign",
		AssigneeID: uuid.New(),
		Priority:   "high",
		Status:     "in-progress",
	}

	suite.mockService.EXPECT().
		GetAllocationByID(allocationID).
		Return(expectedResponse, nil).
		Times(1)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", fmt.Sprintf("/allocations/%s", allocationID), nil)
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var response service.AllocationResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), allocationID, response.ID)
}

// TestGetAllocationNotFound tests GET /allocations/:id with an unknown ID
func (suite *AllocationHandlerTestSuite) TestGetAllocationNotFound() {
	allocationID := uuid.New()

	suite.mockService.EXPECT().
		GetAllocationByID(allocationID).
		Return(nil, apperrors.ErrAllocationNotFound).
		Times(1)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", fmt.Sprintf("/allocations/%s", allocationID), nil)
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

// TestListAllocations tests GET /allocations
func (suite *AllocationHandlerTestSuite) TestListAllocations() {
	expectedAllocations := []service.AllocationResponse{
		{ID: uuid.New(), Title: "API redesign", Priority: "medium", Status: "todo"},
		{ID: uuid.New(), Title: "Billing migration", Priority: "high", Status: "review"},
	}

	suite.mockService.EXPECT().
		ListAllocations(20, 0).
		Return(expectedAllocations, int64(2), nil).
		Times(1)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/allocations", nil)
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), float64(2), response["total"])
	assert.Len(suite.T(), response["allocations"], 2)
}

// TestUpdateAllocation tests PUT /allocations/:id
func (suite *AllocationHandlerTestSuite) TestUpdateAllocation() {
	allocationID := uuid.New()
	expectedResponse := &service.AllocationResponse{
		ID:       allocationID,
		Title:    "API redesign",
		Priority: "medium",
		Status:   "completed",
	}

	suite.mockService.EXPECT().
		UpdateAllocation(allocationID, gomock.Any()).
		Return(expectedResponse, nil).
		Times(1)

	body, _ := json.Marshal(gin.H{"status": "completed"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("PUT", fmt.Sprintf("/allocations/%s", allocationID), bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var response service.AllocationResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "completed", response.Status)
}

// TestDeleteAllocation tests DELETE /allocations/:id
func (suite *AllocationHandlerTestSuite) TestDeleteAllocation() {
	allocationID := uuid.New()

	suite.mockService.EXPECT().
		DeleteAllocation(allocationID).
		Return(nil).
		Times(1)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("DELETE", fmt.Sprintf("/allocations/%s", allocationID), nil)
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
}

func TestAllocationHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(AllocationHandlerTestSuite))
}
