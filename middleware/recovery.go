package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"
	"github.com/rebirthstudio/portfolio-backend/errors"
	"github.com/rebirthstudio/portfolio-backend/logger"
	"github.com/rebirthstudio/portfolio-backend/types"
)

// Recovery turns a panic anywhere below it into the generic 500 answer.
// The panic value and stack only go to the log.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			recovered := recover()
			if recovered == nil {
				return
			}
			// Nothing useful can be written once the client has gone.
			if recovered == http.ErrAbortHandler {
				panic(recovered)
			}

			logger.GetLogger().Errorw("Recovered from panic",
				"panic", fmt.Sprint(recovered),
				"path", c.Request.URL.Path,
				"method", c.Request.Method,
				"request_id", c.GetString(RequestIDKey),
				"stack_trace", string(debug.Stack()))

			if c.Writer.Written() {
				c.Abort()
				return
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, types.ErrorResponse{Error: errors.MsgSendFailed})
		}()

		c.Next()
	}
}
