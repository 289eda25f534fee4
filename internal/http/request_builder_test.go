package http

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tileworks/tile-estimator/internal/domain/dto"
	"github.com/tileworks/tile-estimator/internal/i18n"
	"github.com/tileworks/tile-estimator/internal/middleware"
)

func newTestContext(method, body string, headers ...string) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req := httptest.NewRequest(method, "/", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	c.Request = req
	c.Set(string(middleware.RequestIDKey), "req-123")
	return c, w
}

func TestResponseBuilder_Success(t *testing.T) {
	tests := []struct {
		name           string
		send           func(*ResponseBuilder)
		expectedStatus int
	}{
		{"ok", func(b *ResponseBuilder) { b.SuccessOK(map[string]int{"boxes": 8}) }, http.StatusOK},
		{"created", func(b *ResponseBuilder) { b.SuccessCreated(map[string]int{"boxes": 8}) }, http.StatusCreated},
		{"custom", func(b *ResponseBuilder) { b.Success(http.StatusAccepted, map[string]int{"boxes": 8}) }, http.StatusAccepted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, w := newTestContext(http.MethodGet, "")
			tt.send(NewResponseBuilder(c))

			require.Equal(t, tt.expectedStatus, w.Code)
			var data map[string]int
			resp := decodeData(t, w, &data)
			assert.Equal(t, 8, data["boxes"])
			assert.Equal(t, "req-123", resp.RequestID)
			assert.False(t, resp.Timestamp.IsZero())
		})
	}
}

func TestResponseBuilder_Error(t *testing.T) {
	tests := []struct {
		name            string
		locale          string
		status          int
		expectedCode    string
		expectedMessage string
	}{
		{"english", "en", http.StatusNotFound, dto.ErrCodeNotFound, "Customer not found"},
		{"tamil", "ta", http.StatusNotFound, dto.ErrCodeNotFound, i18n.GetTranslator().Translate(i18n.ErrKeyCustomerNotFound, "ta")},
		{"unsupported locale falls back", "fr", http.StatusServiceUnavailable, dto.ErrCodeUnavailable, "Customer not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, w := newTestContext(http.MethodGet, "", "Accept-Language", tt.locale)
			NewResponseBuilder(c).Error(tt.status, i18n.ErrKeyCustomerNotFound, errors.New("missing"))

			require.Equal(t, tt.status, w.Code)
			resp := decodeError(t, w)
			assert.Equal(t, tt.expectedCode, resp.Error)
			assert.Equal(t, tt.expectedMessage, resp.Message)
			assert.Equal(t, "req-123", resp.RequestID)
			assert.True(t, c.IsAborted())
			require.Len(t, c.Errors, 1)
		})
	}
}

func TestResponseBuilder_ErrorWithMessage(t *testing.T) {
	c, w := newTestContext(http.MethodGet, "")
	NewResponseBuilder(c).ErrorWithMessage(http.StatusBadRequest, "limit: must be between 1 and 100", nil)

	require.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeError(t, w)
	assert.Equal(t, "limit: must be between 1 and 100", resp.Message)
	assert.Empty(t, c.Errors)
}

func TestResponseBuilder_ValidationError(t *testing.T) {
	t.Run("field details", func(t *testing.T) {
		c, w := newTestContext(http.MethodPost, "")
		err := dto.ValidationErrors{
			{Field: "phone", Message: "must be a 10 digit number"},
			{Field: "address", Message: "is required"},
		}
		NewResponseBuilder(c).ValidationError(err)

		require.Equal(t, http.StatusBadRequest, w.Code)
		resp := decodeError(t, w)
		assert.Equal(t, "Please correct the highlighted fields", resp.Message)
		assert.Equal(t, map[string]string{
			"phone":   "must be a 10 digit number",
			"address": "is required",
		}, resp.Details)
	})

	t.Run("plain error", func(t *testing.T) {
		c, w := newTestContext(http.MethodPost, "")
		NewResponseBuilder(c).ValidationError(errors.New("rooms: bad"))

		require.Equal(t, http.StatusBadRequest, w.Code)
		resp := decodeError(t, w)
		assert.Equal(t, "rooms: bad", resp.Message)
		assert.Empty(t, resp.Details)
	})
}

func TestBindAndValidate(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		wantOK   bool
		wantCode int
	}{
		{"valid", `{"rooms":[{"areaType":"Kitchen","applications":[]}]}`, true, 0},
		{"not json", `rooms`, false, http.StatusBadRequest},
		{"empty body", ``, false, http.StatusBadRequest},
		{"fails validation", `{"rooms":[]}`, false, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, w := newTestContext(http.MethodPost, tt.body)
			req, ok := BindAndValidate[dto.EstimateRequest](c)

			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				require.NotNil(t, req)
				assert.Len(t, req.Rooms, 1)
				assert.False(t, c.IsAborted())
				return
			}
			assert.Nil(t, req)
			assert.Equal(t, tt.wantCode, w.Code)
		})
	}
}

func TestBindAndValidate_BindingTags(t *testing.T) {
	details := `"fullname":"Priya Raman","address":"12 Gandhi Road","attender":"Kumar","attenderPhone":"9123456780"`

	tests := []struct {
		name        string
		body        string
		wantDetails map[string]string
	}{
		{
			name: "valid",
			body: `{` + details + `,"phone":"9876543210","rooms":[{"areaType":"Kitchen","applications":[]}]}`,
		},
		{
			name:        "tag and room errors together",
			body:        `{` + details + `,"phone":"12345","rooms":[]}`,
			wantDetails: map[string]string{"phone": "must be a 10 digit number", "rooms": "at least one room is required"},
		},
		{
			name:        "blank required field",
			body:        `{"fullname":"   ","phone":"9876543210","address":"x","attender":"y","attenderPhone":"9123456780","rooms":[{"areaType":"Kitchen","applications":[]}]}`,
			wantDetails: map[string]string{"fullname": "is required"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, w := newTestContext(http.MethodPost, tt.body)
			req, ok := BindAndValidate[dto.SaveEstimateRequest](c)

			if tt.wantDetails == nil {
				require.True(t, ok)
				assert.Equal(t, "9876543210", req.Phone)
				return
			}
			assert.False(t, ok)
			require.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, tt.wantDetails, decodeError(t, w).Details)
		})
	}

	t.Run("negative totals", func(t *testing.T) {
		c, w := newTestContext(http.MethodPost, `{`+details+`,"phone":"9876543210","totalAmount":-5}`)
		_, ok := BindAndValidate[dto.CreateCustomerRequest](c)

		assert.False(t, ok)
		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, map[string]string{"totalAmount": "must not be negative"}, decodeError(t, w).Details)
	})
}

func TestResponsePools_Reset(t *testing.T) {
	resp := getErrorResponse()
	resp.Error = "x"
	resp.Details = map[string]string{"a": "b"}
	putErrorResponse(resp)

	again := getErrorResponse()
	assert.Empty(t, again.Error)
	assert.Nil(t, again.Details)
	putErrorResponse(again)

	ok := getSuccessResponse()
	ok.Data = 1
	putSuccessResponse(ok)
	assert.Nil(t, getSuccessResponse().Data)
}
