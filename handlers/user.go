package handlers

import (
	"errors"
	"net/http"

	"autodetail/models"
	"autodetail/services/user"
	"autodetail/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserHandler exposes account and session endpoints.
type UserHandler struct {
	UserService user.UserService
}

// CreateSessionHandler handles POST /api/auth/session. The frontend calls it
// after a Clerk sign-in to exchange the Clerk session token for an app
// token. The token is verified against Clerk's signing keys before anything
// is issued.
func (h *UserHandler) CreateSessionHandler(c *gin.Context) {
	logger := utils.GetLogger()
	var req struct {
		Token string `json:"token" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "token is required"})
		return
	}

	resp, err := h.UserService.CreateSession(c.Request.Context(), req.Token)
	if err != nil {
		logger.Warn("Session creation failed", zap.Error(err))
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unknown identity"})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetMeHandler handles GET /api/users/me.
func (h *UserHandler) GetMeHandler(c *gin.Context) {
	userID := c.GetString("userID")
	usr, err := h.UserService.GetUserByID(userID)
	if err != nil {
		utils.GetLogger().Error("User not found", zap.String("id", userID), zap.Error(err))
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	c.JSON(http.StatusOK, usr)
}

// SelectRoleHandler handles POST /api/users/me/role. A user picks customer or
// owner once during onboarding. The response carries a fresh session token
// with the new role claim; the client must swap to it.
func (h *UserHandler) SelectRoleHandler(c *gin.Context) {
	var req struct {
		Role string `json:"role" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "role is required"})
		return
	}

	resp, err := h.UserService.SelectRole(c.GetString("userID"), req.Role)
	if err != nil {
		if errors.Is(err, user.ErrInvalidRole) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Role must be customer or owner"})
			return
		}
		utils.GetLogger().Error("Role selection failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to set role"})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// UpdateMeHandler handles PATCH /api/users/me.
func (h *UserHandler) UpdateMeHandler(c *gin.Context) {
	var req models.UserUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payload"})
		return
	}
	req.ID = c.GetString("userID")

	usr, err := h.UserService.UpdateUser(req)
	if err != nil {
		utils.GetLogger().Error("User update failed", zap.String("id", req.ID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update user"})
		return
	}
	c.JSON(http.StatusOK, usr)
}

// DeleteMeHandler handles DELETE /api/users/me. Clerk remains the identity
// source; this removes only the local record.
func (h *UserHandler) DeleteMeHandler(c *gin.Context) {
	userID := c.GetString("userID")
	if err := h.UserService.DeleteUser(userID); err != nil {
		utils.GetLogger().Error("User delete failed", zap.String("id", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete user"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User deleted"})
}

// RevokeSessionHandler handles POST /api/auth/revoke.
func (h *UserHandler) RevokeSessionHandler(c *gin.Context) {
	userID := c.GetString("userID")
	if err := h.UserService.RevokeSession(userID); err != nil {
		utils.GetLogger().Error("Session revoke failed", zap.String("id", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to revoke session"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Session revoked"})
}
