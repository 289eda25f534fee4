package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Audit action types recorded in the logs collection.
const (
	ActionCalculateEstimate = "calculate_estimate"
	ActionSaveEstimate      = "save_estimate"
	ActionSaveCustomer      = "save_customer"
	ActionExportCustomers   = "export_customers"
	ActionPrintEstimate     = "print_estimate"
)

// LogEntry is a request or audit log document. Anything specific to one
// action goes into Fields.
type LogEntry struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Timestamp  time.Time          `bson:"timestamp" json:"timestamp"`
	Level      string             `bson:"level" json:"level"`
	Message    string             `bson:"message" json:"message"`
	RequestID  string             `bson:"request_id,omitempty" json:"request_id,omitempty"`
	Method     string             `bson:"method,omitempty" json:"method,omitempty"`
	Path       string             `bson:"path,omitempty" json:"path,omitempty"`
	StatusCode int                `bson:"status_code,omitempty" json:"status_code,omitempty"`
	Duration   int64              `bson:"duration_ms,omitempty" json:"duration_ms,omitempty"`
	IP         string             `bson:"ip,omitempty" json:"ip,omitempty"`
	UserAgent  string             `bson:"user_agent,omitempty" json:"user_agent,omitempty"`
	Error      string             `bson:"error,omitempty" json:"error,omitempty"`
	ActionType string             `bson:"action_type,omitempty" json:"action_type,omitempty"`
	CustomerID string             `bson:"customer_id,omitempty" json:"customer_id,omitempty"`
	Fields     map[string]any     `bson:"fields,omitempty" json:"fields,omitempty"`
}

// WithField sets one entry in Fields, allocating the map if needed.
func (e *LogEntry) WithField(key string, value any) *LogEntry {
	if e.Fields == nil {
		e.Fields = make(map[string]any)
	}
	e.Fields[key] = value
	return e
}

// WithFields merges fields into Fields.
func (e *LogEntry) WithFields(fields map[string]any) *LogEntry {
	if e.Fields == nil {
		e.Fields = make(map[string]any, len(fields))
	}
	for k, v := range fields {
		e.Fields[k] = v
	}
	return e
}

// LogQueryOptions filters a logs query.
type LogQueryOptions struct {
	RequestID  string
	Level      string
	ActionType string
	CustomerID string
	Path       string
	StartTime  *time.Time
	EndTime    *time.Time
	Limit      int
	Skip       int
}
