package dto

import (
	"net/http"
	"time"

	"github.com/tileworks/tile-estimator/internal/domain/model"
)

const (
	// ErrCodeInvalidRequest indicates an invalid request.
	ErrCodeInvalidRequest = "invalid_request"
	// ErrCodeInternal indicates an internal server error.
	ErrCodeInternal = "internal_error"
	// ErrCodeNotFound indicates a resource was not found.
	ErrCodeNotFound = "not_found"
	// ErrCodeRateLimit indicates rate limit exceeded.
	ErrCodeRateLimit = "rate_limit_exceeded"
	// ErrCodeConflict indicates a conflict with current state.
	ErrCodeConflict = "conflict"
	// ErrCodeTimeout indicates a request timeout.
	ErrCodeTimeout = "timeout"
	// ErrCodeUnavailable indicates the customer store cannot be reached.
	ErrCodeUnavailable = "service_unavailable"
)

// SuccessResponse wraps successful API responses with metadata.
// @Description Successful API response wrapper
type SuccessResponse struct {
	// Data contains the endpoint payload (EstimateResult, Customer, ...)
	Data any `json:"data" swaggertype:"object"`
	// RequestID is the unique request identifier
	RequestID string `json:"request_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
	// Timestamp is when the response was generated
	Timestamp time.Time `json:"timestamp" example:"2026-03-01T10:00:00Z"`
} // @name SuccessResponse

// ErrorResponse represents a standardized error response for the API.
// @Description Standardized error response
type ErrorResponse struct {
	Error   string `json:"error" example:"invalid_request"`
	Message string `json:"message,omitempty" example:"phone: must be a 10 digit number"`
	// Details maps a request field to what is wrong with it
	Details   map[string]string `json:"details,omitempty"`
	RequestID string            `json:"request_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
	Timestamp time.Time         `json:"timestamp" example:"2026-03-01T10:00:00Z"`
} // @name ErrorResponse

// NewError creates a new ErrorResponse with the given code and message.
func NewError(code, message string) ErrorResponse {
	return ErrorResponse{
		Error:     code,
		Message:   message,
		Timestamp: time.Now(),
	}
}

// WithRequestID adds a request ID to the error response.
func (e ErrorResponse) WithRequestID(requestID string) ErrorResponse {
	e.RequestID = requestID
	return e
}

// WithDetails attaches per-field validation messages.
func (e ErrorResponse) WithDetails(details map[string]string) ErrorResponse {
	e.Details = details
	return e
}

// ErrCodeFromStatus returns the appropriate error code for an HTTP status.
func ErrCodeFromStatus(status int) string {
	switch status {
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return ErrCodeInvalidRequest
	case http.StatusNotFound:
		return ErrCodeNotFound
	case http.StatusConflict:
		return ErrCodeConflict
	case http.StatusTooManyRequests:
		return ErrCodeRateLimit
	case http.StatusGatewayTimeout, http.StatusRequestTimeout:
		return ErrCodeTimeout
	case http.StatusServiceUnavailable:
		return ErrCodeUnavailable
	default:
		return ErrCodeInternal
	}
}

// CustomerSavedResponse is returned after a customer record is stored.
// @Description Saved customer with a confirmation message
type CustomerSavedResponse struct {
	Message  string          `json:"message" example:"Customer saved successfully (mongodb)"`
	Customer *model.Customer `json:"customer"`
} // @name CustomerSavedResponse

// AreaTypeResponse lists the application types a room category offers.
// @Description Room category and its permitted application types
type AreaTypeResponse struct {
	Name             model.AreaType          `json:"name" example:"Kitchen"`
	ApplicationTypes []model.ApplicationKind `json:"applicationTypes" example:"floor,wall,total_area,highlight"`
} // @name AreaTypeResponse

// NewAreaTypeResponses builds the category list in menu order.
func NewAreaTypeResponses() []AreaTypeResponse {
	out := make([]AreaTypeResponse, len(model.AreaTypes))
	for i, a := range model.AreaTypes {
		out[i] = AreaTypeResponse{Name: a, ApplicationTypes: a.PermittedKinds()}
	}
	return out
}
