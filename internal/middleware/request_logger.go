package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/tileworks/tile-estimator/internal/domain/model"
	"github.com/tileworks/tile-estimator/internal/logger"
	"github.com/tileworks/tile-estimator/internal/service"
)

// RequestLogger logs every request to the console and, when sink is not
// nil, queues a copy for the logs collection.
func RequestLogger(sink service.LogSink) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		latency := time.Since(start)
		statusCode := c.Writer.Status()
		entry := &model.LogEntry{
			Timestamp:  start,
			Level:      levelForStatus(statusCode),
			Message:    "HTTP request",
			RequestID:  GetRequestID(c),
			Method:     c.Request.Method,
			Path:       c.Request.URL.Path,
			StatusCode: statusCode,
			Duration:   latency.Milliseconds(),
			IP:         c.ClientIP(),
			UserAgent:  c.Request.UserAgent(),
			CustomerID: GetCustomerID(c),
		}
		if len(c.Errors) > 0 {
			entry.Error = c.Errors.Last().Error()
		}

		log := logger.Logger()
		var event *zerolog.Event
		switch entry.Level {
		case "error":
			event = log.Error()
		case "warn":
			event = log.Warn()
		default:
			event = log.Info()
		}
		event.
			Str("request_id", entry.RequestID).
			Str("method", entry.Method).
			Str("path", entry.Path).
			Int("status_code", statusCode).
			Int64("duration_ms", entry.Duration).
			Str("ip", entry.IP).
			Str("user_agent", entry.UserAgent).
			Str("customer_id", entry.CustomerID).
			Msg(entry.Message)

		if sink != nil {
			sink.Log(entry)
		}
	}
}

func levelForStatus(statusCode int) string {
	switch {
	case statusCode >= 500:
		return "error"
	case statusCode >= 400:
		return "warn"
	default:
		return "info"
	}
}
