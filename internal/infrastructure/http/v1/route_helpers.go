// Package v1 provides HTTP API version 1.
package v1

import (
	"github.com/gin-gonic/gin"
)

// ResourceRouteHandler defines the interface for resource handlers.
// All resource handlers must implement these methods.
type ResourceRouteHandler interface {
	List(c *gin.Context)
	Create(c *gin.Context)
	Get(c *gin.Context)
	Patch(c *gin.Context)
	Delete(c *gin.Context)
}

// Resource binds a handler to its collection path, e.g. "/accounts".
type Resource struct {
	Path    string
	Handler ResourceRouteHandler
}

// RegisterResourceRoutes registers standard CRUD routes for a resource.
//
// Usage:
//
//	handler := handlers.NewAccountHandler(baseHandler, service, validator)
//	RegisterResourceRoutes(router.Group("/accounts"), handler)
func RegisterResourceRoutes(group *gin.RouterGroup, handler ResourceRouteHandler) {
	group.GET("", handler.List)
	group.POST("", handler.Create)
	group.GET("/:id", handler.Get)
	group.PATCH("/:id", handler.Patch)
	group.DELETE("/:id", handler.Delete)
}
