package api

import (
	"context"
	"net/http"

	"threeclick/internal/domain"
)

// The telemetry endpoints are fire-and-forget: the response body is ignored
// and callers log-and-drop failures rather than retrying.

// SendErrorEvent reports one captured error.
func (c *Client) SendErrorEvent(ctx context.Context, ev domain.ErrorEvent) error {
	return c.do(ctx, http.MethodPost, "/api/analytics/error", ev, nil)
}

// SendPerformanceReport reports the page-load timing breakdown.
func (c *Client) SendPerformanceReport(ctx context.Context, rep domain.PerformanceReport) error {
	return c.do(ctx, http.MethodPost, "/api/analytics/performance", rep, nil)
}

// SendBehaviorEvent reports one captured user action.
func (c *Client) SendBehaviorEvent(ctx context.Context, ev domain.BehaviorEvent) error {
	return c.do(ctx, http.MethodPost, "/api/analytics/behavior", ev, nil)
}

// SendFeedback submits one feedback form payload.
func (c *Client) SendFeedback(ctx context.Context, sub domain.FeedbackSubmission) error {
	return c.do(ctx, http.MethodPost, "/api/feedback", sub, nil)
}

// Compile-time assertions for the telemetry-facing interfaces.
var (
	_ domain.TelemetrySink = (*Client)(nil)
	_ domain.FeedbackSink  = (*Client)(nil)
)
