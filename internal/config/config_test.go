package config

import "testing"

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Env != "local" {
		t.Errorf("Env = %q, want local", cfg.Env)
	}
	if cfg.APIBaseURL != "http://localhost:5001" {
		t.Errorf("APIBaseURL = %q, want http://localhost:5001", cfg.APIBaseURL)
	}
	if cfg.HTTPTimeoutSec != 30 {
		t.Errorf("HTTPTimeoutSec = %d, want 30", cfg.HTTPTimeoutSec)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("ENV", "production")
	t.Setenv("API_BASE_URL", "https://api.3clickwebsite.com")
	t.Setenv("HTTP_TIMEOUT_SEC", "5")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Env != "production" || cfg.APIBaseURL != "https://api.3clickwebsite.com" || cfg.HTTPTimeoutSec != 5 {
		t.Errorf("cfg = %+v", cfg)
	}
}

func TestLoad_InvalidEnv_Fails(t *testing.T) {
	t.Setenv("ENV", "dev")
	if _, err := Load(); err == nil {
		t.Fatal("Load = nil error, want validation failure")
	}
}

func TestLoad_InvalidTimeout_Fails(t *testing.T) {
	t.Setenv("HTTP_TIMEOUT_SEC", "0")
	if _, err := Load(); err == nil {
		t.Fatal("Load = nil error, want validation failure")
	}
}
