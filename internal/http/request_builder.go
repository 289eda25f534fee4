package http

import (
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/tileworks/tile-estimator/internal/domain/dto"
	"github.com/tileworks/tile-estimator/internal/i18n"
	"github.com/tileworks/tile-estimator/internal/middleware"
)

// Response DTO pools for reducing allocations.
var (
	successResponsePool = sync.Pool{
		New: func() any {
			return &dto.SuccessResponse{}
		},
	}

	errorResponsePool = sync.Pool{
		New: func() any {
			return &dto.ErrorResponse{}
		},
	}
)

func getSuccessResponse() *dto.SuccessResponse {
	if resp, ok := successResponsePool.Get().(*dto.SuccessResponse); ok {
		return resp
	}
	return &dto.SuccessResponse{}
}

func putSuccessResponse(resp *dto.SuccessResponse) {
	resp.Data = nil
	resp.RequestID = ""
	resp.Timestamp = time.Time{}
	successResponsePool.Put(resp)
}

func getErrorResponse() *dto.ErrorResponse {
	if resp, ok := errorResponsePool.Get().(*dto.ErrorResponse); ok {
		return resp
	}
	return &dto.ErrorResponse{}
}

func putErrorResponse(resp *dto.ErrorResponse) {
	resp.Error = ""
	resp.Message = ""
	resp.RequestID = ""
	resp.Timestamp = time.Time{}
	resp.Details = nil
	errorResponsePool.Put(resp)
}

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := dto.RegisterValidations(v); err != nil {
			panic(err)
		}
	}
}

// Validator is implemented by request DTOs that check themselves.
type Validator interface {
	Validate() error
}

// BindAndValidate decodes the JSON body into T, checks its binding tags and
// runs its Validate method when it has one. Tag and Validate failures are
// reported together. On failure it writes the 400 response and returns false.
func BindAndValidate[T any](c *gin.Context) (*T, bool) {
	builder := NewResponseBuilder(c)

	var req T
	err := c.ShouldBindJSON(&req)
	verrs := dto.FromBindingError(err)
	if err != nil && verrs == nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return nil, false
	}
	if v, ok := any(&req).(Validator); ok {
		if err := v.Validate(); err != nil {
			var more dto.ValidationErrors
			if !errors.As(err, &more) {
				builder.ValidationError(err)
				return nil, false
			}
			verrs = append(verrs, more...)
		}
	}
	if len(verrs) > 0 {
		verrs.Sort()
		builder.ValidationError(verrs)
		return nil, false
	}
	return &req, true
}

// ResponseBuilder writes the standard success and error envelopes.
// Uses sync.Pool for DTO reuse to reduce allocations.
type ResponseBuilder struct {
	c *gin.Context
}

// NewResponseBuilder creates a new response builder for the given context.
func NewResponseBuilder(c *gin.Context) *ResponseBuilder {
	return &ResponseBuilder{c: c}
}

// Success sends a successful response with the given data.
func (b *ResponseBuilder) Success(statusCode int, data any) {
	resp := getSuccessResponse()
	resp.Data = data
	resp.RequestID = middleware.GetRequestID(b.c)
	resp.Timestamp = time.Now()

	// Gin serializes synchronously, so the response can go back to the pool.
	b.c.JSON(statusCode, resp)
	putSuccessResponse(resp)
}

// SuccessOK sends a 200 OK response with the given data.
func (b *ResponseBuilder) SuccessOK(data any) {
	b.Success(http.StatusOK, data)
}

// SuccessCreated sends a 201 Created response with the given data.
func (b *ResponseBuilder) SuccessCreated(data any) {
	b.Success(http.StatusCreated, data)
}

// Error sends an error response with a translated message.
func (b *ResponseBuilder) Error(statusCode int, messageKey string, err error) {
	b.abort(statusCode, b.translate(messageKey), nil, err)
}

// ErrorWithMessage sends an error response with a custom message.
func (b *ResponseBuilder) ErrorWithMessage(statusCode int, message string, err error) {
	b.abort(statusCode, message, nil, err)
}

// ValidationError sends a 400 listing every invalid field. Errors that are
// not dto.ValidationErrors fall back to the plain message.
func (b *ResponseBuilder) ValidationError(err error) {
	var verrs dto.ValidationErrors
	if errors.As(err, &verrs) {
		b.abort(http.StatusBadRequest, b.translate(i18n.ErrKeyValidationFailed), verrs.Details(), err)
		return
	}
	b.abort(http.StatusBadRequest, err.Error(), nil, err)
}

func (b *ResponseBuilder) translate(key string) string {
	return i18n.GetTranslator().Translate(key, i18n.GetLocale(b.c))
}

func (b *ResponseBuilder) abort(statusCode int, message string, details map[string]string, err error) {
	resp := getErrorResponse()
	resp.Error = dto.ErrCodeFromStatus(statusCode)
	resp.Message = message
	resp.Details = details
	resp.RequestID = middleware.GetRequestID(b.c)
	resp.Timestamp = time.Now()

	// Recorded for the request logger.
	if err != nil {
		_ = b.c.Error(err)
	}

	b.c.AbortWithStatusJSON(statusCode, resp)
	putErrorResponse(resp)
}
