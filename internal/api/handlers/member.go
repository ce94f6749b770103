package handlers

import (
	"net/http"
	"strconv"

	"resource-planner-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// MemberHandler handles HTTP requests for members
type MemberHandler struct {
	memberService     *service.MemberService
	allocationService *service.AllocationService
}

// NewMemberHandler creates a new member handler
func NewMemberHandler(memberService *service.MemberService, allocationService *service.AllocationService) *MemberHandler {
	return &MemberHandler{
		memberService:     memberService,
		allocationService: allocationService,
	}
}

// CreateMember creates a new member
// @Summary Create a new member
// @Description Create a new member. The avatar color is picked from the palette when omitted.
// @Tags members
// @Accept json
// @Produce json
// @Param member body service.CreateMemberRequest true "Member data"
// @Success 201 {object} service.MemberResponse "Successfully created member"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 409 {object} map[string]interface{} "Member with this email already exists"
// @Security BearerAuth
// @Router /members [post]
func (h *MemberHandler) CreateMember(c *gin.Context) {
	var req service.CreateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	member, err := h.memberService.CreateMember(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, member)
}

// GetMember retrieves a member by ID
// @Summary Get member by ID
// @Description Get a specific member by their UUID
// @Tags members
// @Accept json
// @Produce json
// @Param id path string true "Member ID (UUID)"
// @Success 200 {object} service.MemberResponse "Successfully retrieved member"
// @Failure 400 {object} map[string]interface{} "Invalid member ID"
// @Failure 404 {object} map[string]interface{} "Member not found"
// @Security BearerAuth
// @Router /members/{id} [get]
func (h *MemberHandler) GetMember(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid member ID"})
		return
	}

	member, err := h.memberService.GetMemberByID(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, member)
}

// ListMembers retrieves all members
// @Summary List members
// @Description Get all members with pagination
// @Tags members
// @Accept json
// @Produce json
// @Param limit query int false "Number of items to return" default(20)
// @Param offset query int false "Number of items to skip" default(0)
// @Success 200 {object} map[string]interface{} "Successfully retrieved members list"
// @Security BearerAuth
// @Router /members [get]
func (h *MemberHandler) ListMembers(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	members, total, err := h.memberService.ListMembers(limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"members": members,
		"total":   total,
		"limit":   limit,
		"offset":  offset,
	})
}

// UpdateMember updates an existing member
// @Summary Update member
// @Description Update an existing member by ID. Assigning a team or the lead flag keeps the one-lead-per-team rule intact.
// @Tags members
// @Accept json
// @Produce json
// @Param id path string true "Member ID (UUID)"
// @Param member body service.UpdateMemberRequest true "Updated member data"
// @Success 200 {object} service.MemberResponse "Successfully updated member"
// @Failure 400 {object} map[string]interface{} "Invalid request body or member ID"
// @Failure 404 {object} map[string]interface{} "Member not found"
// @Failure 409 {object} map[string]interface{} "Member with this email already exists"
// @Security BearerAuth
// @Router /members/{id} [put]
func (h *MemberHandler) UpdateMember(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid member ID"})
		return
	}

	var req service.UpdateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	member, err := h.memberService.UpdateMember(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, member)
}

// DeleteMember deletes a member
// @Summary Delete member
// @Description Delete a member. Their allocations, time entries and any team lead reference are removed with them.
// @Tags members
// @Accept json
// @Produce json
// @Param id path string true "Member ID (UUID)"
// @Success 200 {object} map[string]interface{} "Successfully deleted member"
// @Failure 400 {object} map[string]interface{} "Invalid member ID"
// @Failure 404 {object} map[string]interface{} "Member not found"
// @Security BearerAuth
// @Router /members/{id} [delete]
func (h *MemberHandler) DeleteMember(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid member ID"})
		return
	}

	if err := h.memberService.DeleteMember(id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Member deleted successfully"})
}

// GetMemberAllocations retrieves a member's allocations
// @Summary List a member's allocations
// @Description Get all allocations assigned to a member
// @Tags members
// @Accept json
// @Produce json
// @Param id path string true "Member ID (UUID)"
// @Success 200 {object} map[string]interface{} "Successfully retrieved allocations"
// @Failure 400 {object} map[string]interface{} "Invalid member ID"
// @Failure 404 {object} map[string]interface{} "Member not found"
// @Security BearerAuth
// @Router /members/{id}/allocations [get]
func (h *MemberHandler) GetMemberAllocations(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid member ID"})
		return
	}

	allocations, err := h.allocationService.GetMemberAllocations(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"allocations": allocations,
		"total":       len(allocations),
	})
}
