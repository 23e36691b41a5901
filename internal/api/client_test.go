package api_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"threeclick/internal/api"
	"threeclick/internal/domain"
)

// ---- fakes ----

// memTokenStore is an in-memory domain.TokenStore.
type memTokenStore struct {
	token string
}

func (s *memTokenStore) SaveToken(token string) error { s.token = token; return nil }
func (s *memTokenStore) LoadToken() (string, bool, error) {
	return s.token, s.token != "", nil
}
func (s *memTokenStore) ClearToken() error { s.token = ""; return nil }

// ---- helpers ----

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newClient(t *testing.T, handler http.HandlerFunc, tokens domain.TokenStore) (*api.Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return api.New(srv.URL, tokens, srv.Client(), discardLogger()), srv
}

// ---- request path ----

func TestLogin_SendsJSONAndDecodesBody(t *testing.T) {
	var gotContentType string
	c, _ := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		if r.URL.Path != "/auth/login" || r.Method != http.MethodPost {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"token":"tok-1","user":{"id":7,"email":"a@b.com","full_name":"A B"}}`))
	}, &memTokenStore{})

	resp, err := c.Login(context.Background(), domain.LoginRequest{Email: "a@b.com", Password: "pw"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if gotContentType != "application/json" {
		t.Errorf("Content-Type = %q, want application/json", gotContentType)
	}
	if resp.Token != "tok-1" || resp.User.ID != 7 {
		t.Errorf("unexpected response: %+v", resp)
	}
}

func TestBearer_AttachedWhenTokenPresent(t *testing.T) {
	var gotAuth string
	tokens := &memTokenStore{token: "tok-xyz"}
	c, _ := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`[]`))
	}, tokens)

	if _, err := c.Websites(context.Background()); err != nil {
		t.Fatalf("websites: %v", err)
	}
	if gotAuth != "Bearer tok-xyz" {
		t.Errorf("Authorization = %q, want Bearer tok-xyz", gotAuth)
	}
}

func TestBearer_OmittedWhenNoToken(t *testing.T) {
	var gotAuth string
	c, _ := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`[]`))
	}, &memTokenStore{})

	if _, err := c.Templates(context.Background()); err != nil {
		t.Fatalf("templates: %v", err)
	}
	if gotAuth != "" {
		t.Errorf("Authorization = %q, want empty", gotAuth)
	}
}

// ---- response path ----

func TestNon2xx_CarriesServerMessage(t *testing.T) {
	c, _ := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"error":"Email already registered"}`))
	}, &memTokenStore{})

	_, err := c.Register(context.Background(), domain.RegisterRequest{
		Email: "a@b.com", Password: "password1", FullName: "A B",
	})
	var apiErr *api.Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("want *api.Error, got %T (%v)", err, err)
	}
	if apiErr.Status != http.StatusConflict || apiErr.Message != "Email already registered" {
		t.Errorf("unexpected error: %+v", apiErr)
	}
}

func TestNon2xx_NoBody_FallsBackToStatus(t *testing.T) {
	c, _ := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}, &memTokenStore{})

	_, err := c.Websites(context.Background())
	var apiErr *api.Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("want *api.Error, got %T (%v)", err, err)
	}
	if apiErr.Status != http.StatusBadGateway || apiErr.Message == "" {
		t.Errorf("unexpected error: %+v", apiErr)
	}
}

func TestNotFound_MatchesSentinel(t *testing.T) {
	c, _ := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"Website not found"}`))
	}, &memTokenStore{})

	_, err := c.Website(context.Background(), 42)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("want ErrNotFound, got %v", err)
	}
}

// ---- the global 401 side effect ----

func Test401_ClearsTokenAndFiresHook(t *testing.T) {
	tokens := &memTokenStore{token: "stale"}
	c, _ := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":"Token expired"}`))
	}, tokens)

	hookFired := false
	c.SetUnauthorizedHandler(func() { hookFired = true })

	_, err := c.UpdateWebsite(context.Background(), 1, domain.NewWebsiteDraft())
	if !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("want ErrUnauthorized, got %v", err)
	}
	if _, ok, _ := tokens.LoadToken(); ok {
		t.Error("token still present after 401")
	}
	if !hookFired {
		t.Error("unauthorized hook did not fire")
	}
}

func Test401_AppliesToEveryCall(t *testing.T) {
	tokens := &memTokenStore{token: "stale"}
	c, _ := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}, tokens)

	// The side effect is global, not per-endpoint.
	_ = c.Logout(context.Background())
	if _, ok, _ := tokens.LoadToken(); ok {
		t.Error("token still present after 401 from logout")
	}
}
