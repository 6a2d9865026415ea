package middleware

import (
	"errors"
	"net/http"

	domainerr "github.com/amirhossein-jamali/dbexceptions/internal/domain/error"
	coreport "github.com/amirhossein-jamali/dbexceptions/internal/domain/port/core"
	"github.com/amirhossein-jamali/dbexceptions/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// ErrorHandler middleware recovers from panics and renders errors attached
// to the context with c.Error when the handler wrote no response
func ErrorHandler(logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger.Error("Panic recovered in API request", map[string]any{
					"error":      err,
					"path":       c.Request.URL.Path,
					"method":     c.Request.Method,
					"client_ip":  c.ClientIP(),
					"request_id": c.GetHeader("X-Request-ID"),
					"user_agent": c.Request.UserAgent(),
				})

				c.AbortWithStatusJSON(http.StatusInternalServerError, dto.ErrorResponse{
					Code:    domainerr.ErrorCode(domainerr.ErrInternalServer),
					Message: "Internal server error",
				})
			}
		}()

		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		status, response := ErrorResponse(err)
		if status == http.StatusInternalServerError {
			logger.Error("Unhandled error in API request", map[string]any{
				"error":  err.Error(),
				"path":   c.Request.URL.Path,
				"method": c.Request.Method,
			})
		}
		c.AbortWithStatusJSON(status, response)
	}
}

// ErrorResponse maps an error to its HTTP status and response body.
// Unique and reference failures are conflicts; null, length and overflow
// failures are unprocessable input.
func ErrorResponse(err error) (int, dto.ErrorResponse) {
	response := dto.ErrorResponse{Code: domainerr.ErrorCode(err)}

	category, ok := domainerr.Category(err)
	if !ok {
		if errors.Is(err, domainerr.ErrInvalidRequest) {
			response.Message = "Invalid request"
			return http.StatusBadRequest, response
		}
		response.Message = "Internal server error"
		return http.StatusInternalServerError, response
	}

	response.Category = category.String()
	response.Message = category.Sentinel().Error()

	if constraint, ok := domainerr.ConstraintOf(err); ok && constraint.Resolved() {
		response.Constraint = constraint.ConstraintName
		response.Table = constraint.SchemaQualifiedTableName
		response.Columns = constraint.ConstraintProperties
	}

	switch category {
	case domainerr.UniqueConstraint, domainerr.ReferenceConstraint:
		return http.StatusConflict, response
	default:
		return http.StatusUnprocessableEntity, response
	}
}
