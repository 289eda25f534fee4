package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tileworks/tile-estimator/internal/domain/model"
	"github.com/tileworks/tile-estimator/internal/service"
)

// AuditLog records a business action such as saving a customer or
// exporting the customer list. Nothing is recorded when sink is nil.
func AuditLog(sink service.LogSink, c *gin.Context, actionType, message string, fields map[string]any) {
	if sink == nil {
		return
	}
	sink.Log(auditEntry(c, "info", actionType, message, fields))
}

// AuditLogError records a failed business action.
func AuditLogError(sink service.LogSink, c *gin.Context, actionType, message string, err error, fields map[string]any) {
	if sink == nil {
		return
	}
	entry := auditEntry(c, "error", actionType, message, fields)
	if err != nil {
		entry.Error = err.Error()
	}
	sink.Log(entry)
}

func auditEntry(c *gin.Context, level, actionType, message string, fields map[string]any) *model.LogEntry {
	entry := &model.LogEntry{
		Timestamp:  time.Now(),
		Level:      level,
		Message:    message,
		RequestID:  GetRequestID(c),
		Method:     c.Request.Method,
		Path:       c.Request.URL.Path,
		IP:         c.ClientIP(),
		UserAgent:  c.Request.UserAgent(),
		ActionType: actionType,
		CustomerID: GetCustomerID(c),
	}
	if len(fields) > 0 {
		entry.WithFields(fields)
	}
	return entry
}
