package handlers

import (
	"io"
	"net/http"

	apperrors "resource-planner-backend/internal/errors"
	"resource-planner-backend/internal/logger"
	"resource-planner-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// SnapshotHandler handles dataset export and import
type SnapshotHandler struct {
	snapshotService *service.SnapshotService
}

// NewSnapshotHandler creates a new snapshot handler
func NewSnapshotHandler(snapshotService *service.SnapshotService) *SnapshotHandler {
	return &SnapshotHandler{snapshotService: snapshotService}
}

// Export downloads the full planning dataset
// @Summary Export the planning dataset
// @Description Download members, teams, allocations and time entries as a single JSON document
// @Tags snapshot
// @Produce json
// @Success 200 {object} service.Snapshot "Snapshot document"
// @Security BearerAuth
// @Router /snapshot [get]
func (h *SnapshotHandler) Export(c *gin.Context) {
	snapshot, err := h.snapshotService.Export()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Export failed"})
		return
	}

	c.JSON(http.StatusOK, snapshot)
}

// Import replaces the full planning dataset
// @Summary Import a planning dataset
// @Description Replace all members, teams, allocations and time entries with the uploaded snapshot. The whole import runs in one transaction; invalid documents leave the data untouched.
// @Tags snapshot
// @Accept json
// @Produce json
// @Param snapshot body service.Snapshot true "Snapshot document"
// @Success 200 {object} map[string]interface{} "Successfully imported snapshot"
// @Failure 400 {object} map[string]interface{} "Invalid snapshot document"
// @Security BearerAuth
// @Router /snapshot [put]
func (h *SnapshotHandler) Import(c *gin.Context) {
	raw, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read request body"})
		return
	}

	if err := h.snapshotService.Import(raw); err != nil {
		if apperrors.IsValidation(err) {
			logger.WithContext(c).WithError(err).Warn("snapshot import rejected")
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.WithContext(c).WithError(err).Error("snapshot import failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Import failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Snapshot imported successfully"})
}
