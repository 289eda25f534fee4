package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name        string
		headerValue string
		wantReused  bool
	}{
		{name: "generates id when missing", headerValue: ""},
		{name: "reuses client id", headerValue: "custom-request-id-123", wantReused: true},
		{name: "replaces id with spaces", headerValue: "bad id"},
		{name: "replaces overlong id", headerValue: strings.Repeat("a", maxRequestIDLength+1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.Use(RequestID())
			router.GET("/test", func(c *gin.Context) {
				c.String(http.StatusOK, GetRequestID(c))
			})

			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			if tt.headerValue != "" {
				req.Header.Set(RequestIDHeader, tt.headerValue)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			id := w.Body.String()
			assert.Equal(t, id, w.Header().Get(RequestIDHeader))
			if tt.wantReused {
				assert.Equal(t, tt.headerValue, id)
				return
			}
			_, err := uuid.Parse(id)
			assert.NoError(t, err)
		})
	}
}

func TestCustomerID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	assert.Empty(t, GetCustomerID(c))
	SetCustomerID(c, "65f000000000000000000001")
	assert.Equal(t, "65f000000000000000000001", GetCustomerID(c))
}
