package log

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"threeclick/internal/invocationid"
)

func TestContextHandler_AddsInvocationID(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewContextHandler(slog.NewJSONHandler(&buf, nil)))

	ctx := invocationid.WithInvocationID(context.Background(), "inv-123")
	logger.InfoContext(ctx, "hello")

	var rec map[string]any
	if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
		t.Fatalf("unmarshal record: %v", err)
	}
	if rec["invocation_id"] != "inv-123" {
		t.Errorf("invocation_id = %v, want inv-123", rec["invocation_id"])
	}
}

func TestContextHandler_NoID_OmitsAttribute(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewContextHandler(slog.NewJSONHandler(&buf, nil)))

	logger.Info("hello")

	if strings.Contains(buf.String(), "invocation_id") {
		t.Errorf("record = %s, want no invocation_id", buf.String())
	}
}

func TestNew_ProductionUsesJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, "production", slog.LevelInfo)

	logger.Info("ping", "k", "v")

	var rec map[string]any
	if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
		t.Fatalf("production output is not JSON: %v\n%s", err, buf.String())
	}
	if rec["msg"] != "ping" || rec["k"] != "v" {
		t.Errorf("record = %v", rec)
	}
}

func TestNew_LevelFilters(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, "production", slog.LevelWarn)

	logger.Info("dropped")
	if buf.Len() != 0 {
		t.Errorf("info record emitted below level: %s", buf.String())
	}
	logger.Warn("kept")
	if buf.Len() == 0 {
		t.Error("warn record missing")
	}
}
