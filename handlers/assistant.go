package handlers

import (
	"net/http"

	"autodetail/models"
	"autodetail/services/assistant"
	"autodetail/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AssistantHandler exposes the chat assistant endpoint.
type AssistantHandler struct {
	AssistantService assistant.AssistantService
}

// ChatHandler handles POST /api/assistant/chat. The user identity comes from
// the session, never from the payload.
func (h *AssistantHandler) ChatHandler(c *gin.Context) {
	var req models.AssistantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payload"})
		return
	}
	req.UserID = c.GetString("userID")
	if req.Text == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "text is required"})
		return
	}

	resp, err := h.AssistantService.ProcessMessage(c.Request.Context(), req)
	if err != nil {
		utils.GetLogger().Error("Assistant processing failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Assistant unavailable"})
		return
	}
	c.JSON(http.StatusOK, resp)
}
