package analytics

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"threeclick/internal/domain"
	"threeclick/internal/page"
)

// Tracker observes a page's event bus and reports telemetry. One Tracker
// covers one visit; visitor and session IDs are minted on construction.
type Tracker struct {
	sink      domain.TelemetrySink
	logger    *slog.Logger
	visitorID string
	sessionID string
	userAgent string
	now       func() time.Time

	mu        sync.Mutex
	url       string
	enteredAt time.Time
	maxDepth  int
}

// NewTracker returns a Tracker bound to sink. userAgent is stamped on every
// behavior event.
func NewTracker(sink domain.TelemetrySink, userAgent string, logger *slog.Logger) *Tracker {
	return &Tracker{
		sink:      sink,
		logger:    logger.With("component", "analytics"),
		visitorID: uuid.NewString(),
		sessionID: uuid.NewString(),
		userAgent: userAgent,
		now:       time.Now,
	}
}

// VisitorID returns the per-tracker visitor identifier.
func (t *Tracker) VisitorID() string { return t.visitorID }

// SessionID returns the per-tracker session identifier.
func (t *Tracker) SessionID() string { return t.sessionID }

// Attach subscribes the tracker to the bus. ctx bounds every send the
// resulting handlers make.
func (t *Tracker) Attach(ctx context.Context, bus *page.Bus) {
	bus.On(page.EventLoad, func(e page.Event) { t.pageView(ctx, e) })
	bus.On(page.EventClick, func(e page.Event) { t.click(ctx, e) })
	bus.On(page.EventSubmit, func(e page.Event) { t.formSubmit(ctx, e) })
	bus.On(page.EventScroll, func(e page.Event) { t.scroll(ctx, e) })
	bus.On(page.EventError, func(e page.Event) { t.runtimeError(ctx, e) })
	bus.On(page.EventRejection, func(e page.Event) { t.rejection(ctx, e) })
	bus.On(page.EventUnload, func(e page.Event) { t.pageExit(ctx, e) })
}

func (t *Tracker) pageView(ctx context.Context, e page.Event) {
	t.mu.Lock()
	t.url = e.URL
	t.enteredAt = t.now()
	t.maxDepth = 0
	t.mu.Unlock()

	t.behavior(ctx, "page_view", map[string]any{
		"visitorId": t.visitorID,
		"sessionId": t.sessionID,
	})
}

func (t *Tracker) click(ctx context.Context, e page.Event) {
	t.behavior(ctx, "click", map[string]any{"element": e.Target})
}

func (t *Tracker) formSubmit(ctx context.Context, e page.Event) {
	t.behavior(ctx, "form_submit", map[string]any{"form": e.Target})
}

// scroll reports a depth only when it exceeds every depth seen so far in
// this visit, so each maximum is reported exactly once.
func (t *Tracker) scroll(ctx context.Context, e page.Event) {
	t.mu.Lock()
	if e.Percent <= t.maxDepth {
		t.mu.Unlock()
		return
	}
	t.maxDepth = e.Percent
	t.mu.Unlock()

	t.behavior(ctx, "scroll_depth", map[string]any{"depth": e.Percent})
}

func (t *Tracker) pageExit(ctx context.Context, _ page.Event) {
	t.mu.Lock()
	entered := t.enteredAt
	t.mu.Unlock()

	dwellMS := int64(0)
	if !entered.IsZero() {
		dwellMS = t.now().Sub(entered).Milliseconds()
	}
	t.behavior(ctx, "page_exit", map[string]any{"dwellTime": dwellMS})
}

func (t *Tracker) runtimeError(ctx context.Context, e page.Event) {
	t.sendError(ctx, domain.ErrorEvent{
		Type:      "runtime",
		Message:   e.Message,
		Source:    e.Source,
		Line:      e.Line,
		Timestamp: t.now(),
	})
}

func (t *Tracker) rejection(ctx context.Context, e page.Event) {
	t.sendError(ctx, domain.ErrorEvent{
		Type:      "promise",
		Message:   e.Message,
		Timestamp: t.now(),
	})
}

// ReportPerformance posts one load-timing report. Called once per page load
// by the host.
func (t *Tracker) ReportPerformance(ctx context.Context, r domain.PerformanceReport) {
	if err := t.sink.SendPerformanceReport(ctx, r); err != nil {
		t.logger.Warn("performance report dropped", "error", err)
	}
}

// Track sends a custom behavior event.
func (t *Tracker) Track(ctx context.Context, eventType string, data map[string]any) {
	t.behavior(ctx, eventType, data)
}

func (t *Tracker) behavior(ctx context.Context, eventType string, data map[string]any) {
	t.mu.Lock()
	url := t.url
	t.mu.Unlock()

	ev := domain.BehaviorEvent{
		Type:      eventType,
		Data:      data,
		Timestamp: t.now(),
		URL:       url,
		UserAgent: t.userAgent,
	}
	if err := t.sink.SendBehaviorEvent(ctx, ev); err != nil {
		t.logger.Warn("behavior event dropped", "type", eventType, "error", err)
	}
}

func (t *Tracker) sendError(ctx context.Context, ev domain.ErrorEvent) {
	if err := t.sink.SendErrorEvent(ctx, ev); err != nil {
		t.logger.Warn("error event dropped", "error", err)
	}
}
