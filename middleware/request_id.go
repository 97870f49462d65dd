package middleware

import (
	"regexp"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// RequestIDKey is the key used to store the request ID in the gin context
	RequestIDKey = "request_id"
	// RequestIDHeader carries the ID in and out
	RequestIDHeader = "X-Request-ID"
)

// acceptedRequestID bounds what an upstream proxy may hand us: up to 64
// URL-safe characters, enough for UUIDs and common trace ID formats.
var acceptedRequestID = regexp.MustCompile(`^[A-Za-z0-9._:-]{1,64}$`)

// RequestIDMiddleware adds a unique request ID to each request
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Reuse an ID set by a load balancer or proxy
		requestID := c.GetHeader(RequestIDHeader)
		if !acceptedRequestID.MatchString(requestID) {
			requestID = uuid.New().String()
		}

		c.Set(RequestIDKey, requestID)
		c.Header(RequestIDHeader, requestID)

		c.Next()
	}
}
