package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"autodetail/models"
	"autodetail/services/user"
	"autodetail/utils"

	"github.com/gin-gonic/gin"
	svix "github.com/svix/svix-webhooks/go"
	"go.uber.org/zap"
)

// WebhookHandler receives Clerk account events.
type WebhookHandler struct {
	UserService   user.UserService
	SigningSecret string
}

// ClerkWebhookHandler handles POST /api/webhooks/clerk. The payload is
// svix-signed; unverifiable requests are rejected before any processing.
func (h *WebhookHandler) ClerkWebhookHandler(c *gin.Context) {
	logger := utils.GetLogger()

	payload, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unreadable payload"})
		return
	}

	wh, err := svix.NewWebhook(h.SigningSecret)
	if err != nil {
		logger.Error("Webhook verifier misconfigured", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Webhook not configured"})
		return
	}
	if err := wh.Verify(payload, c.Request.Header); err != nil {
		logger.Warn("Webhook signature rejected", zap.Error(err))
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid signature"})
		return
	}

	var event models.ClerkEvent
	if err := json.Unmarshal(payload, &event); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Malformed event"})
		return
	}

	if err := h.UserService.SyncFromClerk(event); err != nil {
		// Clerk sends event types beyond the user lifecycle; acknowledge them
		// so it stops retrying.
		if errors.Is(err, user.ErrUnknownEvent) {
			c.JSON(http.StatusOK, gin.H{"received": true, "ignored": event.Type})
			return
		}
		logger.Error("Clerk sync failed", zap.String("type", event.Type), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Sync failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"received": true})
}
