package api

import (
	"context"
	"fmt"
	"net/http"

	"threeclick/internal/domain"
)

// Templates lists the available site templates.
func (c *Client) Templates(ctx context.Context) ([]domain.Template, error) {
	var out []domain.Template
	if err := c.do(ctx, http.MethodGet, "/templates", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Template fetches one template by ID.
func (c *Client) Template(ctx context.Context, id string) (domain.Template, error) {
	var out domain.Template
	if err := c.do(ctx, http.MethodGet, "/templates/"+id, nil, &out); err != nil {
		return domain.Template{}, err
	}
	return out, nil
}

// UpdateUserSettings saves account-level preferences.
func (c *Client) UpdateUserSettings(ctx context.Context, settings domain.UserSettings) error {
	return c.do(ctx, http.MethodPut, "/users/settings", settings, nil)
}

// UpdateUserProfile saves profile fields and returns the updated profile.
func (c *Client) UpdateUserProfile(ctx context.Context, req domain.ProfileUpdateRequest) (domain.User, error) {
	var out domain.User
	if err := c.do(ctx, http.MethodPut, "/users/profile", req, &out); err != nil {
		return domain.User{}, err
	}
	return out, nil
}

// SubscriptionPlans lists the purchasable plans.
func (c *Client) SubscriptionPlans(ctx context.Context) ([]domain.SubscriptionPlan, error) {
	var out []domain.SubscriptionPlan
	if err := c.do(ctx, http.MethodGet, "/subscriptions/plans", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateSubscription subscribes the caller to a plan.
func (c *Client) CreateSubscription(ctx context.Context, planID string) (domain.Subscription, error) {
	payload := struct {
		PlanID string `json:"planId"`
	}{PlanID: planID}
	var out domain.Subscription
	if err := c.do(ctx, http.MethodPost, "/subscriptions", payload, &out); err != nil {
		return domain.Subscription{}, err
	}
	return out, nil
}

// CancelSubscription ends the caller's active subscription.
func (c *Client) CancelSubscription(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/subscriptions/cancel", nil, nil)
}

// GenerateAPIKey mints a new API key; the secret is only present in this
// response.
func (c *Client) GenerateAPIKey(ctx context.Context) (domain.APIKey, error) {
	var out domain.APIKey
	if err := c.do(ctx, http.MethodPost, "/api-keys", nil, &out); err != nil {
		return domain.APIKey{}, err
	}
	return out, nil
}

// APIKeys lists the caller's keys, secrets omitted.
func (c *Client) APIKeys(ctx context.Context) ([]domain.APIKey, error) {
	var out []domain.APIKey
	if err := c.do(ctx, http.MethodGet, "/api-keys", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// RevokeAPIKey permanently disables a key.
func (c *Client) RevokeAPIKey(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api-keys/%d", id), nil, nil)
}
