package app

import (
	"io"
	"log/slog"
	"testing"
)

func TestNewWire_BuildsFullGraph(t *testing.T) {
	wire, err := NewWire(Config{
		Home:       t.TempDir(),
		APIBaseURL: "http://localhost:5001",
		Logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	if err != nil {
		t.Fatalf("NewWire: %v", err)
	}

	if wire.API == nil || wire.Session == nil || wire.Bus == nil {
		t.Fatal("core graph incomplete")
	}
	if wire.Analytics == nil || wire.Chat == nil || wire.Banner == nil || wire.Feedback == nil || wire.KB == nil {
		t.Fatal("widget graph incomplete")
	}
	if !wire.Session.IsLoading() {
		t.Error("session not in loading state before Init")
	}
	if !wire.Banner.NeedsPrompt() {
		t.Error("banner suppressed in a fresh home dir")
	}
}
