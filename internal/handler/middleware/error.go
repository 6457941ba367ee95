package middleware

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

// apiError is the one JSON error shape the API emits. Handlers render it
// inline as gin.H; this middleware covers deferred errors and panics.
type apiError struct {
	Status int    `json:"-"`
	Error  string `json:"error"`
}

// ErrorHandler renders the newest public error a handler left on the context
// without writing a response itself.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}

		for i := len(c.Errors) - 1; i >= 0; i-- {
			ginErr := c.Errors[i]
			if !ginErr.IsType(gin.ErrorTypePublic) {
				continue
			}
			if resp, ok := ginErr.Meta.(apiError); ok {
				c.JSON(resp.Status, resp)
				return
			}
		}

		if status := c.Writer.Status(); status != http.StatusOK {
			c.Status(status)
			c.Writer.WriteHeaderNow()
			return
		}
		c.JSON(http.StatusInternalServerError, apiError{Error: "Internal server error"})
	}
}

// CustomRecovery turns panics into 500s without leaking the panic value to
// the client.
func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				slog.Error("recovered from panic", "error", r, "path", c.Request.URL.Path)
				c.AbortWithStatusJSON(http.StatusInternalServerError, apiError{Error: "Internal server error"})
			}
		}()
		c.Next()
	}
}
