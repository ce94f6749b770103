package handlers

import (
	"net/http"
	"strconv"

	"resource-planner-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TimeEntryHandler handles HTTP requests for time entries
type TimeEntryHandler struct {
	timeEntryService *service.TimeEntryService
}

// NewTimeEntryHandler creates a new time entry handler
func NewTimeEntryHandler(timeEntryService *service.TimeEntryService) *TimeEntryHandler {
	return &TimeEntryHandler{timeEntryService: timeEntryService}
}

// CreateTimeEntry logs time against an allocation
// @Summary Log a time entry
// @Description Record hours a member spent on an allocation on a given date
// @Tags time-entries
// @Accept json
// @Produce json
// @Param entry body service.CreateTimeEntryRequest true "Time entry data"
// @Success 201 {object} service.TimeEntryResponse "Successfully created time entry"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 404 {object} map[string]interface{} "Allocation or member not found"
// @Security BearerAuth
// @Router /time-entries [post]
func (h *TimeEntryHandler) CreateTimeEntry(c *gin.Context) {
	var req service.CreateTimeEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := h.timeEntryService.CreateTimeEntry(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, entry)
}

// ListTimeEntries retrieves all time entries
// @Summary List time entries
// @Description Get all time entries with pagination
// @Tags time-entries
// @Accept json
// @Produce json
// @Param limit query int false "Number of items to return" default(20)
// @Param offset query int false "Number of items to skip" default(0)
// @Success 200 {object} map[string]interface{} "Successfully retrieved time entries list"
// @Security BearerAuth
// @Router /time-entries [get]
func (h *TimeEntryHandler) ListTimeEntries(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	entries, total, err := h.timeEntryService.ListTimeEntries(limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"time_entries": entries,
		"total":        total,
		"limit":        limit,
		"offset":       offset,
	})
}

// DeleteTimeEntry deletes a time entry
// @Summary Delete time entry
// @Description Delete a time entry by ID
// @Tags time-entries
// @Accept json
// @Produce json
// @Param id path string true "Time entry ID (UUID)"
// @Success 200 {object} map[string]interface{} "Successfully deleted time entry"
// @Failure 400 {object} map[string]interface{} "Invalid time entry ID"
// @Failure 404 {object} map[string]interface{} "Time entry not found"
// @Security BearerAuth
// @Router /time-entries/{id} [delete]
func (h *TimeEntryHandler) DeleteTimeEntry(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid time entry ID"})
		return
	}

	if err := h.timeEntryService.DeleteTimeEntry(id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Time entry deleted successfully"})
}
