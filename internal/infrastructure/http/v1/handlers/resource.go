package handlers

import (
	"github.com/gin-gonic/gin"

	"imaut/internal/core/entity"
	"imaut/internal/core/validation"
	"imaut/internal/domain"
)

// ResourceHandler serves list/get/create/patch/delete for one resource.
type ResourceHandler[T entity.Identifiable, C, P, R any] struct {
	*BaseHandler
	service   *domain.ResourceService[T, C, P, R]
	validator *validation.Validator

	// createObjectName is reported in create-request violations
	createObjectName string
}

// ResourceHandlerConfig configures the resource handler.
type ResourceHandlerConfig[T entity.Identifiable, C, P, R any] struct {
	Service          *domain.ResourceService[T, C, P, R]
	Validator        *validation.Validator
	CreateObjectName string
}

// NewResourceHandler creates a new resource handler.
func NewResourceHandler[T entity.Identifiable, C, P, R any](
	base *BaseHandler,
	cfg ResourceHandlerConfig[T, C, P, R],
) *ResourceHandler[T, C, P, R] {
	return &ResourceHandler[T, C, P, R]{
		BaseHandler:      base,
		service:          cfg.Service,
		validator:        cfg.Validator,
		createObjectName: cfg.CreateObjectName,
	}
}

// List handles GET /{resource}.
func (h *ResourceHandler[T, C, P, R]) List(c *gin.Context) {
	items, err := h.service.List(c.Request.Context())
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, items)
}

// Get handles GET /{resource}/:id.
func (h *ResourceHandler[T, C, P, R]) Get(c *gin.Context) {
	entityID, ok := h.ParseID(c)
	if !ok {
		return
	}

	resp, err := h.service.Get(c.Request.Context(), entityID)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, resp)
}

// Create handles POST /{resource}.
func (h *ResourceHandler[T, C, P, R]) Create(c *gin.Context) {
	ctx := c.Request.Context()

	var req C
	if !h.BindJSON(c, &req) {
		return
	}

	if err := h.validator.Check(ctx, h.createObjectName, &req); err != nil {
		h.Error(c, err)
		return
	}

	resp, err := h.service.Create(ctx, req)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, resp)
}

// Patch handles PATCH /{resource}/:id with a merge patch document.
func (h *ResourceHandler[T, C, P, R]) Patch(c *gin.Context) {
	entityID, ok := h.ParseID(c)
	if !ok {
		return
	}

	var p P
	if !h.BindMergePatch(c, &p) {
		return
	}

	resp, err := h.service.Update(c.Request.Context(), entityID, p)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, resp)
}

// Delete handles DELETE /{resource}/:id. Missing ids succeed.
func (h *ResourceHandler[T, C, P, R]) Delete(c *gin.Context) {
	entityID, ok := h.ParseID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), entityID); err != nil {
		h.Error(c, err)
		return
	}
	h.Empty(c)
}
