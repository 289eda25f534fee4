package http

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tileworks/tile-estimator/internal/domain/model"
	"github.com/tileworks/tile-estimator/internal/i18n"
	"github.com/tileworks/tile-estimator/internal/service"
)

const maxLogsLimit = 500

// LogsHandler serves the stored request and audit logs.
type LogsHandler struct {
	logging service.LoggingService
}

// NewLogsHandler creates a LogsHandler.
func NewLogsHandler(logging service.LoggingService) *LogsHandler {
	return &LogsHandler{logging: logging}
}

// LogsPage is one page of log entries.
// @Description A page of stored log entries
type LogsPage struct {
	Entries []model.LogEntry `json:"entries"`
	Total   int64            `json:"total"`
	Limit   int              `json:"limit"`
	Skip    int              `json:"skip"`
} // @name LogsPage

// ListLogs handles GET /api/logs.
//
// @Summary      Query logs
// @Description  Returns stored request and audit log entries, newest first. Only available when the database is enabled.
// @Tags         Logs
// @Produce      json
// @Param        request_id  query string false "Request id"
// @Param        level       query string false "Level (info, warn, error)"
// @Param        action_type query string false "Audit action, e.g. save_estimate"
// @Param        customer_id query string false "Customer id of audit entries"
// @Param        path        query string false "Request path"
// @Param        since       query string false "RFC 3339 start time"
// @Param        until       query string false "RFC 3339 end time"
// @Param        limit       query int    false "Page size (default 50, max 500)"
// @Param        skip        query int    false "Entries to skip"
// @Success      200 {object} dto.SuccessResponse{data=LogsPage}
// @Failure      400 {object} dto.ErrorResponse "Invalid query"
// @Failure      503 {object} dto.ErrorResponse "Log store unavailable"
// @Router       /api/logs [get]
func (h *LogsHandler) ListLogs(c *gin.Context) {
	builder := NewResponseBuilder(c)

	opts, err := parseLogQuery(c)
	if err != nil {
		builder.ErrorWithMessage(http.StatusBadRequest, err.Error(), err)
		return
	}

	ctx := c.Request.Context()
	entries, err := h.logging.QueryLogs(ctx, opts)
	if err != nil {
		status, key := storeErrorStatus(err, http.StatusServiceUnavailable, i18n.ErrKeyStoreUnavailable)
		builder.Error(status, key, err)
		return
	}
	total, err := h.logging.CountLogs(ctx, opts)
	if err != nil {
		status, key := storeErrorStatus(err, http.StatusServiceUnavailable, i18n.ErrKeyStoreUnavailable)
		builder.Error(status, key, err)
		return
	}
	if entries == nil {
		entries = []model.LogEntry{}
	}

	builder.SuccessOK(LogsPage{
		Entries: entries,
		Total:   total,
		Limit:   opts.Limit,
		Skip:    opts.Skip,
	})
}

func parseLogQuery(c *gin.Context) (model.LogQueryOptions, error) {
	opts := model.LogQueryOptions{
		RequestID:  c.Query("request_id"),
		Level:      c.Query("level"),
		ActionType: c.Query("action_type"),
		CustomerID: c.Query("customer_id"),
		Path:       c.Query("path"),
		Limit:      50,
	}

	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > maxLogsLimit {
			return opts, fmt.Errorf("limit: must be between 1 and %d", maxLogsLimit)
		}
		opts.Limit = n
	}
	if raw := c.Query("skip"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return opts, fmt.Errorf("skip: must be a non-negative integer")
		}
		opts.Skip = n
	}
	if raw := c.Query("since"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return opts, fmt.Errorf("since: must be an RFC 3339 time")
		}
		opts.StartTime = &t
	}
	if raw := c.Query("until"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return opts, fmt.Errorf("until: must be an RFC 3339 time")
		}
		opts.EndTime = &t
	}
	return opts, nil
}
