package api

import (
	"context"
	"net/http"

	"threeclick/internal/domain"
)

// Login exchanges credentials for a token and profile.
func (c *Client) Login(ctx context.Context, req domain.LoginRequest) (domain.AuthResponse, error) {
	var out domain.AuthResponse
	if err := c.do(ctx, http.MethodPost, "/auth/login", req, &out); err != nil {
		return domain.AuthResponse{}, err
	}
	return out, nil
}

// Register creates an account and returns its first token and profile.
func (c *Client) Register(ctx context.Context, req domain.RegisterRequest) (domain.AuthResponse, error) {
	var out domain.AuthResponse
	if err := c.do(ctx, http.MethodPost, "/auth/register", req, &out); err != nil {
		return domain.AuthResponse{}, err
	}
	return out, nil
}

// Logout invalidates the current token server-side.
func (c *Client) Logout(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/auth/logout", nil, nil)
}

// CurrentUser returns the profile behind the persisted token.
func (c *Client) CurrentUser(ctx context.Context) (domain.User, error) {
	var out domain.User
	if err := c.do(ctx, http.MethodGet, "/auth/me", nil, &out); err != nil {
		return domain.User{}, err
	}
	return out, nil
}

// Compile-time assertion that Client implements domain.AuthAPI.
var _ domain.AuthAPI = (*Client)(nil)
