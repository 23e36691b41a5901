package domain

import "time"

// ErrorEvent is posted to /api/analytics/error for uncaught runtime errors
// and rejected async operations.
type ErrorEvent struct {
	Type      string    `json:"type"` // "runtime" or "promise"
	Message   string    `json:"message"`
	Source    string    `json:"source,omitempty"`
	Line      int       `json:"lineno,omitempty"`
	Column    int       `json:"colno,omitempty"`
	Stack     string    `json:"stack,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// PerformanceReport is posted to /api/analytics/performance once per page load.
// All durations are milliseconds.
type PerformanceReport struct {
	PageLoad         int64 `json:"pageLoad"`
	DOMContentLoaded int64 `json:"domContentLoaded"`
	FirstPaint       int64 `json:"firstPaint"`
	DNSLookup        int64 `json:"dnsLookup"`
	TCPConnection    int64 `json:"tcpConnection"`
	ServerResponse   int64 `json:"serverResponse"`
	DOMProcessing    int64 `json:"domProcessing"`
	ResourceLoading  int64 `json:"resourceLoading"`
}

// BehaviorEvent is posted to /api/analytics/behavior, one POST per captured
// user action.
type BehaviorEvent struct {
	Type      string         `json:"type"`
	Data      map[string]any `json:"data"`
	Timestamp time.Time      `json:"timestamp"`
	URL       string         `json:"url"`
	UserAgent string         `json:"userAgent"`
}

// FeedbackSubmission is the single JSON payload for POST /api/feedback.
type FeedbackSubmission struct {
	Type      string    `json:"type" validate:"required,oneof=bug feature improvement other"`
	Message   string    `json:"message" validate:"required"`
	Email     string    `json:"email,omitempty" validate:"omitempty,email"`
	Rating    int       `json:"rating,omitempty" validate:"omitempty,min=1,max=5"`
	Timestamp time.Time `json:"timestamp"`
	UserAgent string    `json:"userAgent"`
	URL       string    `json:"url"`
}
