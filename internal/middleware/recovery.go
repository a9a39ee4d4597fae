package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"
)

// Recovery turns panics into the API's unexpected-error envelope. Exception
// type and stack trace are only included when exposeDetails is set.
func Recovery(exposeDetails bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			recovered := recover()
			if recovered == nil {
				return
			}
			stack := string(debug.Stack())
			GetLoggerFromContext(c).Error("Recovered from panic",
				slog.Any("panic", recovered),
				slog.String("stack", stack),
			)

			body := gin.H{
				"success": false,
				"error":   fmt.Sprintf("Unexpected error: %v", panicMessage(recovered)),
			}
			if exposeDetails {
				body["exception"] = fmt.Sprintf("%T", recovered)
				body["trace"] = stack
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, body)
		}()
		c.Next()
	}
}

func panicMessage(recovered any) string {
	if err, ok := recovered.(error); ok {
		return err.Error()
	}
	return fmt.Sprint(recovered)
}
