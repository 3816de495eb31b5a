package api

import (
	"net/http"

	"mindcare/backend/internal/models"
	"mindcare/backend/internal/service"

	"github.com/gin-gonic/gin"
)

// MoodController handles mood tracker endpoints
type MoodController struct {
	moodService *service.MoodService
}

// NewMoodController creates a new mood controller
func NewMoodController(moodService *service.MoodService) *MoodController {
	return &MoodController{moodService: moodService}
}

// RegisterRoutes registers the routes for the mood controller
func (c *MoodController) RegisterRoutes(group *gin.RouterGroup) {
	moods := group.Group("/moods")
	{
		moods.POST("", c.LogMood)
		moods.GET("", c.GetMoods)
		moods.GET("/labels", c.GetLabels)
	}
}

// LogMood records a mood entry
func (c *MoodController) LogMood(ctx *gin.Context) {
	var request struct {
		Label string `json:"label" binding:"required"`
		Note  string `json:"note"`
	}

	if err := ctx.BindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	entry, err := c.moodService.LogMood(request.Label, request.Note)
	if err != nil {
		ctx.Error(err)
		return
	}

	ctx.JSON(http.StatusCreated, entry)
}

// GetMoods returns every mood entry, ascending by id, for trend charts
func (c *MoodController) GetMoods(ctx *gin.Context) {
	moods, err := c.moodService.AllMoods()
	if err != nil {
		ctx.Error(err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"moods": moods,
		"count": len(moods),
	})
}

// GetLabels returns the valid mood labels in ordinal order
func (c *MoodController) GetLabels(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"labels": models.MoodLabels()})
}
