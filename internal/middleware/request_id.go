// Package middleware provides HTTP middleware components for the tile estimator.
package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// RequestIDHeader is the HTTP header name for request ID.
	RequestIDHeader = "X-Request-ID"
	// maxRequestIDLength caps client supplied ids before they reach logs.
	maxRequestIDLength = 128
)

// ContextKey type for context keys to avoid collisions.
type ContextKey string

const (
	// RequestIDKey is the context key for request ID.
	RequestIDKey ContextKey = "request_id"
	// CustomerIDKey is set by handlers that create or read a customer record.
	CustomerIDKey ContextKey = "customer_id"
)

// RequestID returns a middleware that ensures each request has a unique ID.
// A client supplied X-Request-ID is reused when it is short printable ASCII;
// otherwise a new UUID v4 is generated.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if !validRequestID(requestID) {
			requestID = uuid.New().String()
		}

		c.Set(string(RequestIDKey), requestID)
		c.Header(RequestIDHeader, requestID)
		c.Next()
	}
}

func validRequestID(id string) bool {
	if id == "" || len(id) > maxRequestIDLength {
		return false
	}
	for i := 0; i < len(id); i++ {
		if id[i] < 0x21 || id[i] > 0x7e {
			return false
		}
	}
	return true
}

// GetRequestID retrieves the request ID from the gin context.
func GetRequestID(c *gin.Context) string {
	return c.GetString(string(RequestIDKey))
}

// SetCustomerID records the customer a request acted on so request and
// audit logs can be joined to it.
func SetCustomerID(c *gin.Context, id string) {
	c.Set(string(CustomerIDKey), id)
}

// GetCustomerID returns the id recorded by SetCustomerID, if any.
func GetCustomerID(c *gin.Context) string {
	return c.GetString(string(CustomerIDKey))
}
