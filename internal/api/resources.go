package api

import (
	"net/http"

	"mindcare/backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ResourceController handles resource directory lookups
type ResourceController struct {
	resourceService *service.ResourceService
}

// NewResourceController creates a new resource controller
func NewResourceController(resourceService *service.ResourceService) *ResourceController {
	return &ResourceController{resourceService: resourceService}
}

// RegisterRoutes registers the routes for the resource controller
func (c *ResourceController) RegisterRoutes(group *gin.RouterGroup) {
	group.GET("/resources", c.Resolve)
}

// Resolve maps a free-text location query to a ranked entry list. The ladder
// bottoms out at the national fallback, so the list is never empty.
func (c *ResourceController) Resolve(ctx *gin.Context) {
	query := ctx.Query("q")
	country := ctx.Query("country")

	entries := c.resourceService.Resolve(query, country)

	ctx.JSON(http.StatusOK, gin.H{
		"query":     query,
		"resources": entries,
		"count":     len(entries),
	})
}
