// Package handlers provides HTTP request handlers.
package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"imaut/internal/core/apperror"
	"imaut/internal/core/id"
	"imaut/internal/core/patch"
)

// maxBodyBytes caps request bodies read by the handlers.
const maxBodyBytes = 1 << 20

// BaseHandler provides common handler utilities.
type BaseHandler struct{}

// NewBaseHandler creates a new base handler.
func NewBaseHandler() *BaseHandler {
	return &BaseHandler{}
}

// BindJSON decodes a JSON body. Unknown fields, including keys that only
// differ in case from a declared one, are ignored.
// Constraint checks are left to the caller.
func (h *BaseHandler) BindJSON(c *gin.Context, obj any) bool {
	body, err := h.readBody(c)
	if err != nil {
		return false
	}

	if err := patch.UnmarshalExact(body, obj); err != nil {
		h.Error(c, apperror.NewInvalidInput("invalid request body", err))
		return false
	}
	return true
}

func (h *BaseHandler) readBody(c *gin.Context) ([]byte, error) {
	body, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxBodyBytes))
	if err != nil {
		h.Error(c, apperror.NewInvalidInput("unreadable request body", err))
		return nil, err
	}
	return body, nil
}

// BindMergePatch checks the content type and decodes a merge patch document into dst.
func (h *BaseHandler) BindMergePatch(c *gin.Context, dst any) bool {
	if ct := c.ContentType(); ct != patch.MediaType {
		h.Error(c, apperror.NewUnsupportedMediaType(ct, patch.MediaType))
		return false
	}

	body, err := h.readBody(c)
	if err != nil {
		return false
	}

	if err := patch.Decode(body, dst); err != nil {
		msg := "malformed merge patch document"
		if errors.Is(err, patch.ErrNotObject) {
			msg = patch.ErrNotObject.Error()
		}
		h.Error(c, apperror.NewInvalidInput(msg, err))
		return false
	}
	return true
}

// ParseID reads the :id path parameter.
func (h *BaseHandler) ParseID(c *gin.Context) (id.ID, bool) {
	entityID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format").WithDetail("id", c.Param("id")))
		return 0, false
	}
	return entityID, true
}

// Error registers err on the Gin context and aborts the request.
// The response is produced by middleware.ErrorHandler.
func (h *BaseHandler) Error(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}

// OK sends 200 response with data.
func (h *BaseHandler) OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// Empty sends 200 response without a body.
func (h *BaseHandler) Empty(c *gin.Context) {
	c.Status(http.StatusOK)
}
