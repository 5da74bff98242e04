package middleware

import (
	"log"

	"github.com/aidarkhanov/nanoid/v2"
	"github.com/gin-gonic/gin"
)

const (
	// RequestIDHeader carries the request ID in both directions.
	RequestIDHeader = "X-Request-ID"
	// RequestIDKey is the gin context key holding the request ID.
	RequestIDKey = "requestID"

	requestIDAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"
	requestIDLength   = 12
)

// RequestID tags every request with an ID, reusing the client's X-Request-ID
// when one is supplied.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" || len(id) > 64 {
			generated, err := nanoid.GenerateString(requestIDAlphabet, requestIDLength)
			if err != nil {
				log.Printf("[REQUEST] Failed to generate request ID: %v", err)
			}
			id = generated
		}

		c.Set(RequestIDKey, id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

// GetRequestID returns the ID set by RequestID, or "".
func GetRequestID(c *gin.Context) string {
	return c.GetString(RequestIDKey)
}
