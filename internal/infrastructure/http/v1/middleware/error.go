package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"imaut/internal/core/apperror"
	"imaut/internal/infrastructure/http/v1/dto"
	"imaut/pkg/logger"
)

// ErrorHandler middleware transforms errors into consistent responses.
//   - constraint violations: 400 with the structured validation body
//   - not found: 404 with an empty body
//   - other AppErrors: their status with code, message and details
//   - anything else: 500 without internal details
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err

		// If response already written by handler, do not override it.
		if c.Writer.Written() {
			return
		}

		ctx := c.Request.Context()

		appErr, ok := apperror.AsAppError(err)
		if !ok {
			logger.Error(ctx, "unhandled error", "error", err)

			c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
				Code:    apperror.CodeInternal,
				Message: "Internal server error",
				Details: map[string]any{"request_id": c.GetString("request_id")},
			})
			return
		}

		switch appErr.Code {
		case apperror.CodeValidationFailed:
			c.JSON(http.StatusBadRequest, dto.NewValidationErrorResponse(
				time.Now(), c.Request.URL.Path, appErr.Message, appErr.Violations))
			return
		case apperror.CodeNotFound:
			c.Status(http.StatusNotFound)
			return
		}

		if appErr.HTTPStatus >= http.StatusInternalServerError {
			logger.Error(ctx, "request error", "code", appErr.Code, "cause", appErr.Err)
		} else if appErr.Err != nil {
			logger.Debug(ctx, "request rejected", "code", appErr.Code, "cause", appErr.Err)
		}

		c.JSON(appErr.HTTPStatus, dto.ErrorResponse{
			Code:    appErr.Code,
			Message: appErr.Message,
			Details: appErr.Details,
		})
	}
}
