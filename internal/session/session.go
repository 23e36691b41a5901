package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"threeclick/internal/api"
	"threeclick/internal/domain"
)

// State is the lifecycle position of the auth context.
type State string

const (
	// StateLoading is the initial state, before the one-shot token check.
	StateLoading State = "loading"
	// StateAuthenticated means a profile is present and a token is persisted.
	StateAuthenticated State = "authenticated"
	// StateAnonymous means no valid session exists.
	StateAnonymous State = "anonymous"
)

// Fallback messages when the server gives no usable error text.
const (
	loginFailedMsg    = "Login failed"
	registerFailedMsg = "Registration failed"
)

// Context is the session-lifetime authentication state machine. It is an
// explicit object passed by reference to whatever needs it; it is the single
// source of truth for guarding protected flows. It owns the persisted token:
// nothing else writes it.
//
// Lifecycle: loading -> {authenticated, anonymous}, then
// authenticated <-> anonymous via login/logout.
type Context struct {
	api    domain.AuthAPI
	tokens domain.TokenStore
	logger *slog.Logger

	state State
	user  domain.User
	err   string // last auth failure message, "" when none
}

// New returns a Context in StateLoading. Call Init exactly once before use.
func New(authAPI domain.AuthAPI, tokens domain.TokenStore, logger *slog.Logger) *Context {
	return &Context{
		api:    authAPI,
		tokens: tokens,
		logger: logger.With("component", "session"),
		state:  StateLoading,
	}
}

// Init performs the single startup check: with a persisted token it asks the
// API for the current profile; on any failure the token is discarded and the
// session becomes anonymous. There is no retry. Init never returns an error;
// a failed check is a valid (anonymous) outcome.
func (s *Context) Init(ctx context.Context) {
	defer func() {
		if s.state == StateLoading {
			s.state = StateAnonymous
		}
	}()

	_, ok, err := s.tokens.LoadToken()
	if err != nil {
		s.logger.Warn("auth status check: read token", "error", err)
		return
	}
	if !ok {
		return
	}

	user, err := s.api.CurrentUser(ctx)
	if err != nil {
		s.logger.Warn("auth status check failed", "error", err)
		if err := s.tokens.ClearToken(); err != nil {
			s.logger.Warn("discard token", "error", err)
		}
		return
	}

	s.user = user
	s.state = StateAuthenticated
}

// Login exchanges credentials for a session. On success the token is
// persisted, the profile set, and the state becomes authenticated. On failure
// the session error is set to the server message (or a generic fallback) and
// the failure is returned to the caller, never swallowed.
func (s *Context) Login(ctx context.Context, email, password string) (domain.User, error) {
	s.err = ""

	resp, err := s.api.Login(ctx, domain.LoginRequest{Email: email, Password: password})
	if err != nil {
		s.err = failureMessage(err, loginFailedMsg)
		return domain.User{}, err
	}
	if err := s.establish(resp); err != nil {
		s.err = loginFailedMsg
		return domain.User{}, err
	}
	return s.user, nil
}

// Register creates an account; the contract is the same as Login.
func (s *Context) Register(ctx context.Context, req domain.RegisterRequest) (domain.User, error) {
	s.err = ""

	resp, err := s.api.Register(ctx, req)
	if err != nil {
		s.err = failureMessage(err, registerFailedMsg)
		return domain.User{}, err
	}
	if err := s.establish(resp); err != nil {
		s.err = registerFailedMsg
		return domain.User{}, err
	}
	return s.user, nil
}

// establish persists the token and flips to authenticated. The token write
// comes first: authenticated requires a persisted token.
func (s *Context) establish(resp domain.AuthResponse) error {
	if err := s.tokens.SaveToken(resp.Token); err != nil {
		return fmt.Errorf("persist token: %w", err)
	}
	s.user = resp.User
	s.state = StateAuthenticated
	return nil
}

// Logout tells the server best-effort (failure is logged, not surfaced),
// then unconditionally clears the persisted token and resets to anonymous.
func (s *Context) Logout(ctx context.Context) {
	if err := s.api.Logout(ctx); err != nil {
		s.logger.Warn("logout call failed", "error", err)
	}
	if err := s.tokens.ClearToken(); err != nil {
		s.logger.Warn("clear token", "error", err)
	}
	s.reset()
}

// Invalidate resets to anonymous without a server call. It is the 401 hook:
// the API client has already cleared the token by the time it fires.
func (s *Context) Invalidate() {
	s.reset()
}

func (s *Context) reset() {
	s.user = domain.User{}
	s.state = StateAnonymous
	s.err = ""
}

// UpdateUser merges non-zero fields into the current profile in place. No
// server round-trip; persisting is the caller's concern.
func (s *Context) UpdateUser(update domain.UserUpdate) {
	if update.Email != "" {
		s.user.Email = update.Email
	}
	if update.FullName != "" {
		s.user.FullName = update.FullName
	}
}

// State returns the current lifecycle state.
func (s *Context) State() State { return s.state }

// IsAuthenticated reports whether a session is established.
func (s *Context) IsAuthenticated() bool { return s.state == StateAuthenticated }

// IsLoading reports whether Init has not completed yet. Protected flows must
// not proceed while this is true.
func (s *Context) IsLoading() bool { return s.state == StateLoading }

// User returns the current profile; ok is false when anonymous or loading.
func (s *Context) User() (domain.User, bool) {
	return s.user, s.state == StateAuthenticated
}

// Err returns the last auth failure message, or "".
func (s *Context) Err() string { return s.err }

// RequireUser is the route guard: it returns the profile only for an
// established session.
func (s *Context) RequireUser() (domain.User, error) {
	switch s.state {
	case StateLoading:
		return domain.User{}, domain.ErrSessionLoading
	case StateAuthenticated:
		return s.user, nil
	default:
		return domain.User{}, domain.ErrNotAuthenticated
	}
}

// failureMessage prefers the server-provided error text, falling back to a
// generic message for transport-level failures.
func failureMessage(err error, fallback string) string {
	var apiErr *api.Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}
