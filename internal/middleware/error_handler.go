package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tileworks/tile-estimator/internal/domain/dto"
	"github.com/tileworks/tile-estimator/internal/i18n"
	"github.com/tileworks/tile-estimator/internal/logger"
)

// ErrorHandler logs errors attached to the gin context and writes an error
// body when the handler left the response empty. Bind errors map to 400,
// everything else to 500.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last()
		requestID := GetRequestID(c)

		log := logger.Logger()
		log.Error().
			Str("request_id", requestID).
			Err(err.Err).
			Str("path", c.Request.URL.Path).
			Str("method", c.Request.Method).
			Int("status_code", c.Writer.Status()).
			Msg("request error")

		if c.Writer.Written() {
			return
		}

		status, key := http.StatusInternalServerError, i18n.ErrKeyInternalError
		if err.IsType(gin.ErrorTypeBind) {
			status, key = http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody
		}
		message := i18n.GetTranslator().Translate(key, i18n.GetLocale(c))
		c.JSON(status, dto.NewError(dto.ErrCodeFromStatus(status), message).WithRequestID(requestID))
	}
}
