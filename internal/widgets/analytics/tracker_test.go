package analytics

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"threeclick/internal/domain"
	"threeclick/internal/page"
)

// ---- fakes ----

type fakeSink struct {
	errors    []domain.ErrorEvent
	perf      []domain.PerformanceReport
	behaviors []domain.BehaviorEvent
	fail      error
}

func (f *fakeSink) SendErrorEvent(_ context.Context, e domain.ErrorEvent) error {
	if f.fail != nil {
		return f.fail
	}
	f.errors = append(f.errors, e)
	return nil
}

func (f *fakeSink) SendPerformanceReport(_ context.Context, r domain.PerformanceReport) error {
	if f.fail != nil {
		return f.fail
	}
	f.perf = append(f.perf, r)
	return nil
}

func (f *fakeSink) SendBehaviorEvent(_ context.Context, e domain.BehaviorEvent) error {
	if f.fail != nil {
		return f.fail
	}
	f.behaviors = append(f.behaviors, e)
	return nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func attached(sink *fakeSink) (*Tracker, *page.Bus) {
	t := NewTracker(sink, "test-agent", discardLogger())
	bus := page.NewBus()
	t.Attach(context.Background(), bus)
	return t, bus
}

func behaviorsOfType(sink *fakeSink, eventType string) []domain.BehaviorEvent {
	var out []domain.BehaviorEvent
	for _, b := range sink.behaviors {
		if b.Type == eventType {
			out = append(out, b)
		}
	}
	return out
}

// ---- scroll depth ----

func TestScroll_NewMaximum_EmitsOncePerMaximum(t *testing.T) {
	sink := &fakeSink{}
	_, bus := attached(sink)

	for _, depth := range []int{10, 45, 80, 60, 80, 25} {
		bus.Dispatch(page.Event{Type: page.EventScroll, Percent: depth})
	}

	got := behaviorsOfType(sink, "scroll_depth")
	want := []int{10, 45, 80}
	if len(got) != len(want) {
		t.Fatalf("got %d scroll_depth events, want %d", len(got), len(want))
	}
	for i, ev := range got {
		if ev.Data["depth"] != want[i] {
			t.Errorf("event %d depth = %v, want %d", i, ev.Data["depth"], want[i])
		}
	}
}

func TestScroll_MaximumResetsOnNewPageLoad(t *testing.T) {
	sink := &fakeSink{}
	_, bus := attached(sink)

	bus.Dispatch(page.Event{Type: page.EventScroll, Percent: 90})
	bus.Dispatch(page.Event{Type: page.EventLoad, URL: "/about"})
	bus.Dispatch(page.Event{Type: page.EventScroll, Percent: 30})

	got := behaviorsOfType(sink, "scroll_depth")
	if len(got) != 2 {
		t.Fatalf("got %d scroll_depth events, want 2", len(got))
	}
	if got[1].Data["depth"] != 30 {
		t.Errorf("post-load depth = %v, want 30", got[1].Data["depth"])
	}
}

// ---- behavior events ----

func TestPageLoad_SendsPageViewWithIDs(t *testing.T) {
	sink := &fakeSink{}
	tr, bus := attached(sink)

	bus.Dispatch(page.Event{Type: page.EventLoad, URL: "/pricing"})

	got := behaviorsOfType(sink, "page_view")
	if len(got) != 1 {
		t.Fatalf("got %d page_view events, want 1", len(got))
	}
	if got[0].URL != "/pricing" {
		t.Errorf("URL = %q, want /pricing", got[0].URL)
	}
	if got[0].UserAgent != "test-agent" {
		t.Errorf("UserAgent = %q, want test-agent", got[0].UserAgent)
	}
	if got[0].Data["visitorId"] != tr.VisitorID() || got[0].Data["sessionId"] != tr.SessionID() {
		t.Errorf("IDs = %v, want visitor %q session %q", got[0].Data, tr.VisitorID(), tr.SessionID())
	}
}

func TestClickAndSubmit_CarryTarget(t *testing.T) {
	sink := &fakeSink{}
	_, bus := attached(sink)

	bus.Dispatch(page.Event{Type: page.EventClick, Target: "button#cta"})
	bus.Dispatch(page.Event{Type: page.EventSubmit, Target: "form#signup"})

	clicks := behaviorsOfType(sink, "click")
	if len(clicks) != 1 || clicks[0].Data["element"] != "button#cta" {
		t.Errorf("clicks = %+v, want one with element button#cta", clicks)
	}
	submits := behaviorsOfType(sink, "form_submit")
	if len(submits) != 1 || submits[0].Data["form"] != "form#signup" {
		t.Errorf("submits = %+v, want one with form form#signup", submits)
	}
}

func TestUnload_ReportsDwellTime(t *testing.T) {
	sink := &fakeSink{}
	tr, bus := attached(sink)

	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	current := base
	tr.now = func() time.Time { return current }

	bus.Dispatch(page.Event{Type: page.EventLoad, URL: "/"})
	current = base.Add(42 * time.Second)
	bus.Dispatch(page.Event{Type: page.EventUnload})

	exits := behaviorsOfType(sink, "page_exit")
	if len(exits) != 1 {
		t.Fatalf("got %d page_exit events, want 1", len(exits))
	}
	if exits[0].Data["dwellTime"] != int64(42000) {
		t.Errorf("dwellTime = %v, want 42000", exits[0].Data["dwellTime"])
	}
}

// ---- errors ----

func TestErrorEvents_MapToRuntimeAndPromise(t *testing.T) {
	sink := &fakeSink{}
	_, bus := attached(sink)

	bus.Dispatch(page.Event{Type: page.EventError, Message: "boom", Source: "app.js", Line: 7})
	bus.Dispatch(page.Event{Type: page.EventRejection, Message: "fetch aborted"})

	if len(sink.errors) != 2 {
		t.Fatalf("got %d error events, want 2", len(sink.errors))
	}
	if sink.errors[0].Type != "runtime" || sink.errors[0].Source != "app.js" || sink.errors[0].Line != 7 {
		t.Errorf("runtime event = %+v", sink.errors[0])
	}
	if sink.errors[1].Type != "promise" || sink.errors[1].Message != "fetch aborted" {
		t.Errorf("promise event = %+v", sink.errors[1])
	}
}

// ---- delivery failure ----

func TestSendFailure_DroppedWithoutRetry(t *testing.T) {
	sink := &fakeSink{fail: errors.New("gone away")}
	tr, bus := attached(sink)

	bus.Dispatch(page.Event{Type: page.EventClick, Target: "a#nav"})
	tr.ReportPerformance(context.Background(), domain.PerformanceReport{PageLoad: 900})

	sink.fail = nil
	bus.Dispatch(page.Event{Type: page.EventClick, Target: "a#nav"})

	// Only the post-recovery click arrives; the failed sends are gone.
	if len(sink.behaviors) != 1 {
		t.Fatalf("got %d behaviors, want 1", len(sink.behaviors))
	}
	if len(sink.perf) != 0 {
		t.Fatalf("got %d perf reports, want 0", len(sink.perf))
	}
}

func TestReportPerformance_DeliversReport(t *testing.T) {
	sink := &fakeSink{}
	tr := NewTracker(sink, "test-agent", discardLogger())

	tr.ReportPerformance(context.Background(), domain.PerformanceReport{PageLoad: 1200, FirstPaint: 300})

	if len(sink.perf) != 1 || sink.perf[0].PageLoad != 1200 {
		t.Fatalf("perf = %+v, want one report with PageLoad 1200", sink.perf)
	}
}
