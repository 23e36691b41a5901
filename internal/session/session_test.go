package session_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"testing"

	"threeclick/internal/api"
	"threeclick/internal/domain"
	"threeclick/internal/session"
)

// ---- fakes ----

type fakeAuthAPI struct {
	login       func(ctx context.Context, req domain.LoginRequest) (domain.AuthResponse, error)
	register    func(ctx context.Context, req domain.RegisterRequest) (domain.AuthResponse, error)
	logout      func(ctx context.Context) error
	currentUser func(ctx context.Context) (domain.User, error)
}

func (f *fakeAuthAPI) Login(ctx context.Context, req domain.LoginRequest) (domain.AuthResponse, error) {
	return f.login(ctx, req)
}

func (f *fakeAuthAPI) Register(ctx context.Context, req domain.RegisterRequest) (domain.AuthResponse, error) {
	return f.register(ctx, req)
}

func (f *fakeAuthAPI) Logout(ctx context.Context) error { return f.logout(ctx) }

func (f *fakeAuthAPI) CurrentUser(ctx context.Context) (domain.User, error) {
	return f.currentUser(ctx)
}

type memTokenStore struct {
	token string
}

func (s *memTokenStore) SaveToken(token string) error { s.token = token; return nil }
func (s *memTokenStore) LoadToken() (string, bool, error) {
	return s.token, s.token != "", nil
}
func (s *memTokenStore) ClearToken() error { s.token = ""; return nil }

// ---- helpers ----

var testUser = domain.User{ID: 1, Email: "jo@example.com", FullName: "Jo Bloggs"}

func newContext(authAPI domain.AuthAPI, tokens domain.TokenStore) *session.Context {
	return session.New(authAPI, tokens, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// ---- Init ----

func TestInit_NoToken_Anonymous(t *testing.T) {
	s := newContext(&fakeAuthAPI{}, &memTokenStore{})
	s.Init(context.Background())

	if s.State() != session.StateAnonymous {
		t.Errorf("state = %v, want anonymous", s.State())
	}
}

func TestInit_ValidToken_Authenticated(t *testing.T) {
	apiFake := &fakeAuthAPI{
		currentUser: func(_ context.Context) (domain.User, error) { return testUser, nil },
	}
	s := newContext(apiFake, &memTokenStore{token: "tok"})
	s.Init(context.Background())

	if !s.IsAuthenticated() {
		t.Fatalf("state = %v, want authenticated", s.State())
	}
	if u, ok := s.User(); !ok || u != testUser {
		t.Errorf("user = %+v (%v), want %+v", u, ok, testUser)
	}
}

func TestInit_FailingCheck_ClearsTokenAndEndsAnonymous(t *testing.T) {
	apiFake := &fakeAuthAPI{
		currentUser: func(_ context.Context) (domain.User, error) {
			return domain.User{}, &api.Error{Status: http.StatusUnauthorized, Message: "Token expired"}
		},
	}
	tokens := &memTokenStore{token: "stale"}
	s := newContext(apiFake, tokens)
	s.Init(context.Background())

	if s.State() != session.StateAnonymous {
		t.Errorf("state = %v, want anonymous", s.State())
	}
	if _, ok, _ := tokens.LoadToken(); ok {
		t.Error("token still present after failed check")
	}
}

// ---- Login ----

func TestLogin_Success_PersistsTokenAndProfile(t *testing.T) {
	apiFake := &fakeAuthAPI{
		login: func(_ context.Context, req domain.LoginRequest) (domain.AuthResponse, error) {
			if req.Email != testUser.Email {
				t.Errorf("login email = %q", req.Email)
			}
			return domain.AuthResponse{Token: "tok-new", User: testUser}, nil
		},
	}
	tokens := &memTokenStore{}
	s := newContext(apiFake, tokens)
	s.Init(context.Background())

	u, err := s.Login(context.Background(), testUser.Email, "pw")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if u != testUser || !s.IsAuthenticated() {
		t.Errorf("user = %+v, state = %v", u, s.State())
	}
	if tok, ok, _ := tokens.LoadToken(); !ok || tok != "tok-new" {
		t.Errorf("persisted token = %q (%v)", tok, ok)
	}
}

func TestLogin_Failure_SetsErrAndPropagates(t *testing.T) {
	wantErr := &api.Error{Status: http.StatusUnauthorized, Message: "Invalid email or password"}
	apiFake := &fakeAuthAPI{
		login: func(_ context.Context, _ domain.LoginRequest) (domain.AuthResponse, error) {
			return domain.AuthResponse{}, wantErr
		},
	}
	s := newContext(apiFake, &memTokenStore{})
	s.Init(context.Background())

	_, err := s.Login(context.Background(), "a@b.com", "bad")
	if !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("want the failure re-raised, got %v", err)
	}
	if s.Err() != "Invalid email or password" {
		t.Errorf("Err() = %q, want server message", s.Err())
	}
	if s.IsAuthenticated() {
		t.Error("session authenticated after failed login")
	}
}

func TestLogin_TransportFailure_GenericFallbackMessage(t *testing.T) {
	apiFake := &fakeAuthAPI{
		login: func(_ context.Context, _ domain.LoginRequest) (domain.AuthResponse, error) {
			return domain.AuthResponse{}, errors.New("dial tcp: connection refused")
		},
	}
	s := newContext(apiFake, &memTokenStore{})
	s.Init(context.Background())

	if _, err := s.Login(context.Background(), "a@b.com", "pw"); err == nil {
		t.Fatal("expected error")
	}
	if s.Err() != "Login failed" {
		t.Errorf("Err() = %q, want generic fallback", s.Err())
	}
}

// ---- Logout ----

func TestLogout_ServerFailure_StillClearsSession(t *testing.T) {
	apiFake := &fakeAuthAPI{
		login: func(_ context.Context, _ domain.LoginRequest) (domain.AuthResponse, error) {
			return domain.AuthResponse{Token: "tok", User: testUser}, nil
		},
		logout: func(_ context.Context) error { return errors.New("503 service unavailable") },
	}
	tokens := &memTokenStore{}
	s := newContext(apiFake, tokens)
	s.Init(context.Background())
	if _, err := s.Login(context.Background(), testUser.Email, "pw"); err != nil {
		t.Fatalf("login: %v", err)
	}

	s.Logout(context.Background())

	if s.IsAuthenticated() {
		t.Error("still authenticated after logout")
	}
	if _, ok, _ := tokens.LoadToken(); ok {
		t.Error("token still present after logout")
	}
}

// ---- UpdateUser / guard ----

func TestUpdateUser_MergesInPlace(t *testing.T) {
	apiFake := &fakeAuthAPI{
		currentUser: func(_ context.Context) (domain.User, error) { return testUser, nil },
	}
	s := newContext(apiFake, &memTokenStore{token: "tok"})
	s.Init(context.Background())

	s.UpdateUser(domain.UserUpdate{FullName: "Jo Renamed"})

	u, _ := s.User()
	if u.FullName != "Jo Renamed" || u.Email != testUser.Email {
		t.Errorf("merged user = %+v", u)
	}
}

func TestRequireUser_GuardsByState(t *testing.T) {
	s := newContext(&fakeAuthAPI{}, &memTokenStore{})

	if _, err := s.RequireUser(); !errors.Is(err, domain.ErrSessionLoading) {
		t.Errorf("loading guard: got %v", err)
	}

	s.Init(context.Background())
	if _, err := s.RequireUser(); !errors.Is(err, domain.ErrNotAuthenticated) {
		t.Errorf("anonymous guard: got %v", err)
	}
}
