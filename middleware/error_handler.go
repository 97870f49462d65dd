package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rebirthstudio/portfolio-backend/errors"
	"github.com/rebirthstudio/portfolio-backend/logger"
	"github.com/rebirthstudio/portfolio-backend/types"
)

// ErrorHandler renders the last error pushed with c.Error as
// {"error": "..."}. Only validation errors carry extra detail (the per-field
// messages); everything internal stays in the log.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err

		if appError, ok := err.(*errors.AppError); ok {
			statusCode := appError.GetHTTPStatus()
			if statusCode >= http.StatusInternalServerError {
				logger.LogHTTPError(c, err, statusCode, fmt.Sprintf("%s error", appError.Type))
			} else {
				logger.GetLogger().Infow("Request rejected",
					"code", appError.Code,
					"path", c.Request.URL.Path,
					"request_id", c.GetString(RequestIDKey))
			}

			response := types.ErrorResponse{Error: appError.Message}
			if appError.Type == errors.ValidationError {
				response.Fields = appError.Fields
			}
			c.JSON(statusCode, response)
			return
		}

		logger.LogHTTPError(c, err, http.StatusInternalServerError, "Unexpected server error")
		c.JSON(http.StatusInternalServerError, types.ErrorResponse{Error: errors.MsgSendFailed})
	}
}
