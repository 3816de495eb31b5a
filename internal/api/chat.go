package api

import (
	"net/http"
	"strconv"

	"mindcare/backend/internal/service"
	"mindcare/backend/pkg/config"

	"github.com/gin-gonic/gin"
)

// ChatController handles chat-related API endpoints
type ChatController struct {
	chatService *service.ChatService
}

// NewChatController creates a new chat controller
func NewChatController(chatService *service.ChatService) *ChatController {
	return &ChatController{chatService: chatService}
}

// RegisterRoutes registers the routes for the chat controller
func (c *ChatController) RegisterRoutes(group *gin.RouterGroup) {
	chat := group.Group("/chat")
	{
		chat.POST("/messages", c.SendMessage)
		chat.GET("/history", c.GetHistory)
	}
}

// SendMessage runs one user message through the pipeline and returns the
// exchange. The core enforces truncation, so text of arbitrary length is
// accepted here.
func (c *ChatController) SendMessage(ctx *gin.Context) {
	var request struct {
		Text string `json:"text" binding:"required"`
	}

	if err := ctx.BindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	exchange, err := c.chatService.ProcessMessage(ctx.Request.Context(), request.Text)
	if err != nil {
		ctx.Error(err)
		return
	}

	ctx.JSON(http.StatusOK, exchange)
}

// GetHistory returns the most recent messages, oldest first
func (c *ChatController) GetHistory(ctx *gin.Context) {
	limit := config.Get().History.DefaultChatLimit
	if limitStr := ctx.Query("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil || parsed < 0 {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit"})
			return
		}
		limit = parsed
	}

	messages, err := c.chatService.History(limit)
	if err != nil {
		ctx.Error(err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"messages": messages,
		"count":    len(messages),
	})
}
