package handlers

import (
	"net/http"
	"strconv"

	"resource-planner-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AllocationHandler handles HTTP requests for allocations
type AllocationHandler struct {
	allocationService *service.AllocationService
}

// NewAllocationHandler creates a new allocation handler
func NewAllocationHandler(allocationService *service.AllocationService) *AllocationHandler {
	return &AllocationHandler{allocationService: allocationService}
}

// CreateAllocation creates a new allocation
// @Summary Create a new allocation
// @Description Create a new project allocation for a member.
// @Description
// @Description Optional Fields with Defaults:
// @Description - priority: Defaults to 'medium' (valid values: low, medium, high, urgent)
// @Description - status: Defaults to 'todo' (valid values: planning, todo, in-progress, review, on-hold, completed)
// @Tags allocations
// @Accept json
// @Produce json
// @Param allocation body service.CreateAllocationRequest true "Allocation data"
// @Success 201 {object} service.AllocationResponse "Successfully created allocation"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 404 {object} map[string]interface{} "Assignee or team not found"
// @Security BearerAuth
// @Router /allocations [post]
func (h *AllocationHandler) CreateAllocation(c *gin.Context) {
	var req service.CreateAllocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	allocation, err := h.allocationService.CreateAllocation(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, allocation)
}

// GetAllocation retrieves an allocation by ID
// @Summary Get allocation by ID
// @Description Get a specific allocation by its UUID
// @Tags allocations
// @Accept json
// @Produce json
// @Param id path string true "Allocation ID (UUID)"
// @Success 200 {object} service.AllocationResponse "Successfully retrieved allocation"
// @Failure 400 {object} map[string]interface{} "Invalid allocation ID"
// @Failure 404 {object} map[string]interface{} "Allocation not found"
// @Security BearerAuth
// @Router /allocations/{id} [get]
func (h *AllocationHandler) GetAllocation(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid allocation ID"})
		return
	}

	allocation, err := h.allocationService.GetAllocationByID(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, allocation)
}

// ListAllocations retrieves all allocations
// @Summary List allocations
// @Description Get all allocations with pagination
// @Tags allocations
// @Accept json
// @Produce json
// @Param limit query int false "Number of items to return" default(20)
// @Param offset query int false "Number of items to skip" default(0)
// @Success 200 {object} map[string]interface{} "Successfully retrieved allocations list"
// @Security BearerAuth
// @Router /allocations [get]
func (h *AllocationHandler) ListAllocations(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	allocations, total, err := h.allocationService.ListAllocations(limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"allocations": allocations,
		"total":       total,
		"limit":       limit,
		"offset":      offset,
	})
}

// UpdateAllocation updates an existing allocation
// @Summary Update allocation
// @Description Update an existing allocation by ID
// @Tags allocations
// @Accept json
// @Produce json
// @Param id path string true "Allocation ID (UUID)"
// @Param allocation body service.UpdateAllocationRequest true "Updated allocation data"
// @Success 200 {object} service.AllocationResponse "Successfully updated allocation"
// @Failure 400 {object} map[string]interface{} "Invalid request body or allocation ID"
// @Failure 404 {object} map[string]interface{} "Allocation not found"
// @Security BearerAuth
// @Router /allocations/{id} [put]
func (h *AllocationHandler) UpdateAllocation(c *gin.Context) {
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

	allocation, err := h.allocationService.UpdateAllocation(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, allocation)
}

// DeleteAllocation deletes an allocation
// @Summary Delete allocation
// @Description Delete an allocation. Its time entries are removed with it.
// @Tags allocations
// @Accept json
// @Produce json
// @Param id path string true "Allocation ID (UUID)"
// @Success 200 {object} map[string]interface{} "Successfully deleted allocation"
// @Failure 400 {object} map[string]interface{} "Invalid allocation ID"
// @Failure 404 {object} map[string]interface{} "Allocation not found"
// @Security BearerAuth
// @Router /allocations/{id} [delete]
func (h *AllocationHandler) DeleteAllocation(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid allocation ID"})
		return
	}

	if err := h.allocationService.DeleteAllocation(id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Allocation deleted successfully"})
}
