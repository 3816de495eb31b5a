package api

import (
	"net/http"

	"mindcare/backend/internal/store"
	"mindcare/backend/pkg/errors"

	"github.com/gin-gonic/gin"
)

// AdminController exposes the bulk data reset. This lives outside the core
// contract: the event store itself never deletes.
type AdminController struct {
	store store.EventStore
}

// NewAdminController creates a new admin controller
func NewAdminController(st store.EventStore) *AdminController {
	return &AdminController{store: st}
}

// RegisterRoutes registers the routes for the admin controller
func (c *AdminController) RegisterRoutes(group *gin.RouterGroup) {
	group.POST("/admin/reset", c.Reset)
}

// Reset wipes chats, moods and the points ledger
func (c *AdminController) Reset(ctx *gin.Context) {
	if err := c.store.Reset(); err != nil {
		ctx.Error(errors.NewStorageWriteError(err))
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"status": "reset"})
}
