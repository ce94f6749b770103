package handlers

import (
	"net/http"

	"resource-planner-backend/internal/auth"
	"resource-planner-backend/internal/logger"
	"resource-planner-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// UserHandler handles admin HTTP requests for user accounts and invitations
type UserHandler struct {
	userService *service.UserService
	authService *auth.AuthService
}

// NewUserHandler creates a new user handler
func NewUserHandler(userService *service.UserService, authService *auth.AuthService) *UserHandler {
	return &UserHandler{
		userService: userService,
		authService: authService,
	}
}

// InvitationRequest represents the payload for sending an invitation
type InvitationRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// ListUsers retrieves all user accounts
// @Summary List users
// @Description Get all user accounts. Admin only.
// @Tags users
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "Successfully retrieved users list"
// @Failure 403 {object} map[string]interface{} "Admin privileges required"
// @Security BearerAuth
// @Router /users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.userService.ListUsers()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"users": users,
		"total": len(users),
	})
}

// SetAdmin grants admin rights to a user
// @Summary Grant admin rights
// @Description Make a user an admin. Admin only.
// @Tags users
// @Accept json
// @Produce json
// @Param id path string true "User ID (UUID)"
// @Success 200 {object} service.UserResponse "Successfully updated user"
// @Failure 400 {object} map[string]interface{} "Invalid user ID"
// @Failure 403 {object} map[string]interface{} "Admin privileges required"
// @Failure 404 {object} map[string]interface{} "User not found"
// @Security BearerAuth
// @Router /users/{id}/admin [put]
func (h *UserHandler) SetAdmin(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	user, err := h.userService.SetAdmin(id)
	if err != nil {
		respondError(c, err)
		return
	}

	if claims, ok := auth.GetAuthClaims(c); ok {
		logger.New().WithFields(map[string]interface{}{
			"admin":  claims.Email,
			"target": user.Email,
		}).Info("admin rights granted")
	}

	c.JSON(http.StatusOK, user)
}

// RemoveAdmin revokes admin rights from a user
// @Summary Revoke admin rights
// @Description Remove a user's admin rights. Admin only.
// @Tags users
// @Accept json
// @Produce json
// @Param id path string true "User ID (UUID)"
// @Success 200 {object} service.UserResponse "Successfully updated user"
// @Failure 400 {object} map[string]interface{} "Invalid user ID"
// @Failure 403 {object} map[string]interface{} "Admin privileges required"
// @Failure 404 {object} map[string]interface{} "User not found"
// @Security BearerAuth
// @Router /users/{id}/admin [delete]
func (h *UserHandler) RemoveAdmin(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	user, err := h.userService.RemoveAdmin(id)
	if err != nil {
		respondError(c, err)
		return
	}

	if claims, ok := auth.GetAuthClaims(c); ok {
		logger.New().WithFields(map[string]interface{}{
			"admin":  claims.Email,
			"target": user.Email,
		}).Info("admin rights revoked")
	}

	c.JSON(http.StatusOK, user)
}

// SendInvitation records a pending invitation
// @Summary Send an invitation
// @Description Invite an email to register an account. Admin only.
// @Tags invitations
// @Accept json
// @Produce json
// @Param invitation body InvitationRequest true "Invitation data"
// @Success 201 {object} map[string]interface{} "Successfully created invitation"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 403 {object} map[string]interface{} "Admin privileges required"
// @Failure 409 {object} map[string]interface{} "Account or invitation already exists"
// @Security BearerAuth
// @Router /invitations [post]
func (h *UserHandler) SendInvitation(c *gin.Context) {
	var req InvitationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	invitation, err := h.authService.SendInvitation(req.Email)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"email":      invitation.Email,
		"created_at": invitation.CreatedAt,
	})
}

// ListInvitations retrieves all pending invitations
// @Summary List invitations
// @Description Get all pending invitations. Admin only.
// @Tags invitations
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "Successfully retrieved invitations list"
// @Failure 403 {object} map[string]interface{} "Admin privileges required"
// @Security BearerAuth
// @Router /invitations [get]
func (h *UserHandler) ListInvitations(c *gin.Context) {
	invitations, err := h.authService.ListInvitations()
	if err != nil {
		respondError(c, err)
		return
	}

	emails := make([]gin.H, len(invitations))
	for i, invitation := range invitations {
		emails[i] = gin.H{
			"email":      invitation.Email,
			"created_at": invitation.CreatedAt,
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"invitations": emails,
		"total":       len(invitations),
	})
}

// RevokeInvitation withdraws a pending invitation
// @Summary Revoke an invitation
// @Description Withdraw a pending invitation by email. Admin only.
// @Tags invitations
// @Accept json
// @Produce json
// @Param email path string true "Invited email"
// @Success 200 {object} map[string]interface{} "Successfully revoked invitation"
// @Failure 403 {object} map[string]interface{} "Admin privileges required"
// @Failure 404 {object} map[string]interface{} "Invitation not found"
// @Security BearerAuth
// @Router /invitations/{email} [delete]
func (h *UserHandler) RevokeInvitation(c *gin.Context) {
	email := c.Param("email")
	if email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email is required"})
		return
	}

	if err := h.authService.RevokeInvitation(email); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Invitation revoked successfully"})
}
