package handlers

import (
	"net/http"

	"resource-planner-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// UtilizationHandler handles HTTP requests for the utilization view
type UtilizationHandler struct {
	utilizationService *service.UtilizationService
}

// NewUtilizationHandler creates a new utilization handler
func NewUtilizationHandler(utilizationService *service.UtilizationService) *UtilizationHandler {
	return &UtilizationHandler{utilizationService: utilizationService}
}

// GetUtilization retrieves current-week utilization
// @Summary Get current-week utilization
// @Description Get per-member utilization for the current calendar week, optionally filtered to one member. The percentage is unclamped; overbooked members exceed 100.
// @Tags utilization
// @Accept json
// @Produce json
// @Param member_id query string false "Member ID (UUID) to filter by"
// @Success 200 {object} map[string]interface{} "Successfully retrieved utilization"
// @Failure 400 {object} map[string]interface{} "Invalid member ID"
// @Failure 404 {object} map[string]interface{} "Member not found"
// @Security BearerAuth
// @Router /utilization [get]
func (h *UtilizationHandler) GetUtilization(c *gin.Context) {
	var memberID *uuid.UUID
	if idStr := c.Query("member_id"); idStr != "" {
		id, err := uuid.Parse(idStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid member ID"})
			return
		}
		memberID = &id
	}

	utilization, err := h.utilizationService.GetUtilization(memberID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"utilization": utilization,
		"total":       len(utilization),
	})
}
