package api

import (
	"net/http"

	"mindcare/backend/pkg/errors"
	"mindcare/backend/pkg/notify"

	"github.com/gin-gonic/gin"
)

// NotifyController handles outbound crisis alerts. An alert goes out only when
// the user explicitly asks for it; the consent is the call itself.
type NotifyController struct {
	notifier notify.Notifier
}

// NewNotifyController creates a new notify controller. notifier may be nil
// when no SMTP settings are configured.
func NewNotifyController(notifier notify.Notifier) *NotifyController {
	return &NotifyController{notifier: notifier}
}

// RegisterRoutes registers the routes for the notify controller
func (c *NotifyController) RegisterRoutes(group *gin.RouterGroup) {
	group.POST("/notify/crisis", c.SendCrisisAlert)
}

// SendCrisisAlert sends one plain-text summary to the given recipient. A
// delivery failure is surfaced as a warning with the underlying reason and is
// not retried automatically.
func (c *NotifyController) SendCrisisAlert(ctx *gin.Context) {
	var request struct {
		Recipient string `json:"recipient" binding:"required,email"`
		Summary   string `json:"summary" binding:"required"`
	}

	if err := ctx.BindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if c.notifier == nil {
		ctx.JSON(http.StatusServiceUnavailable, gin.H{"error": "Notifications are not configured"})
		return
	}

	if err := c.notifier.SendCrisisAlert(ctx.Request.Context(), request.Recipient, request.Summary); err != nil {
		ctx.Error(errors.NewNotificationError(err))
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"status": "sent"})
}
