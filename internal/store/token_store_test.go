package store_test

import (
	"testing"

	"threeclick/internal/domain"
	"threeclick/internal/store"
)

func TestToken_SaveLoad_OK(t *testing.T) {
	home := t.TempDir()

	var ts domain.TokenStore = store.NewTokenFileStore(home, "")

	if err := ts.SaveToken("tok-123"); err != nil {
		t.Fatalf("save token: %v", err)
	}

	got, ok, err := ts.LoadToken()
	if err != nil {
		t.Fatalf("load token: %v", err)
	}
	if !ok || got != "tok-123" {
		t.Fatalf("got (%q, %v), want (%q, true)", got, ok, "tok-123")
	}
}

func TestToken_LoadAbsent_NotOK(t *testing.T) {
	ts := store.NewTokenFileStore(t.TempDir(), "")

	_, ok, err := ts.LoadToken()
	if err != nil {
		t.Fatalf("load token: %v", err)
	}
	if ok {
		t.Fatal("expected ok=false with no token stored")
	}
}

func TestToken_Clear_RemovesToken(t *testing.T) {
	ts := store.NewTokenFileStore(t.TempDir(), "")

	if err := ts.SaveToken("tok-123"); err != nil {
		t.Fatalf("save token: %v", err)
	}
	if err := ts.ClearToken(); err != nil {
		t.Fatalf("clear token: %v", err)
	}
	if _, ok, _ := ts.LoadToken(); ok {
		t.Fatal("token still present after clear")
	}

	// Clearing again is a no-op.
	if err := ts.ClearToken(); err != nil {
		t.Fatalf("second clear: %v", err)
	}
}

func TestToken_Sealed_SaveLoad_OK(t *testing.T) {
	home := t.TempDir()
	ts := store.NewTokenFileStore(home, "hunter2-hunter2")

	if err := ts.SaveToken("tok-sealed"); err != nil {
		t.Fatalf("save token: %v", err)
	}

	got, ok, err := ts.LoadToken()
	if err != nil {
		t.Fatalf("load token: %v", err)
	}
	if !ok || got != "tok-sealed" {
		t.Fatalf("got (%q, %v), want (%q, true)", got, ok, "tok-sealed")
	}
}

func TestToken_Sealed_WrongPassphrase_Fails(t *testing.T) {
	home := t.TempDir()

	if err := store.NewTokenFileStore(home, "correct-horse").SaveToken("tok"); err != nil {
		t.Fatalf("save token: %v", err)
	}
	if _, _, err := store.NewTokenFileStore(home, "battery-staple").LoadToken(); err == nil {
		t.Fatal("expected error with wrong passphrase")
	}
}
