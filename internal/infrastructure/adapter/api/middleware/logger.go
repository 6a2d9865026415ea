package middleware

import (
	"net/http"
	"time"

	domainerr "github.com/amirhossein-jamali/dbexceptions/internal/domain/error"
	coreport "github.com/amirhossein-jamali/dbexceptions/internal/domain/port/core"
	"github.com/gin-gonic/gin"
)

// Logger middleware logs every request once it completes.
// Server errors are logged at error level and rejected requests at warn,
// with the database failure category when the request hit one.
func Logger(logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		statusCode := c.Writer.Status()
		fields := map[string]any{
			"method":     method,
			"path":       path,
			"status":     statusCode,
			"latency_ms": time.Since(start).Milliseconds(),
			"ip":         c.ClientIP(),
			"request_id": c.GetHeader("X-Request-ID"),
			"user_agent": c.Request.UserAgent(),
		}

		if last := c.Errors.Last(); last != nil {
			fields["error"] = last.Error()
			if category, ok := domainerr.Category(last.Err); ok {
				fields["failure_category"] = category.String()
			}
			if constraint, ok := domainerr.ConstraintOf(last.Err); ok && constraint.Resolved() {
				fields["constraint"] = constraint.ConstraintName
			}
		}

		switch {
		case statusCode >= http.StatusInternalServerError:
			logger.Error("Request failed", fields)
		case statusCode >= http.StatusBadRequest:
			logger.Warn("Request rejected", fields)
		default:
			logger.Info("Request processed", fields)
		}
	}
}
