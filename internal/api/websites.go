package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"threeclick/internal/domain"
)

// CreateWebsite submits a completed draft and returns the new site.
func (c *Client) CreateWebsite(ctx context.Context, req domain.CreateWebsiteRequest) (domain.CreateWebsiteResponse, error) {
	var out domain.CreateWebsiteResponse
	if err := c.do(ctx, http.MethodPost, "/websites", req, &out); err != nil {
		return domain.CreateWebsiteResponse{}, err
	}
	return out, nil
}

// Websites lists the caller's sites, newest first.
func (c *Client) Websites(ctx context.Context) ([]domain.Website, error) {
	var out []domain.Website
	if err := c.do(ctx, http.MethodGet, "/websites", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Website fetches one site by ID.
func (c *Client) Website(ctx context.Context, id int64) (domain.Website, error) {
	var out domain.Website
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/websites/%d", id), nil, &out); err != nil {
		return domain.Website{}, err
	}
	return out, nil
}

// UpdateWebsite replaces a site's draft content.
func (c *Client) UpdateWebsite(ctx context.Context, id int64, draft domain.WebsiteDraft) (domain.Website, error) {
	var out domain.Website
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/websites/%d", id), draft, &out); err != nil {
		return domain.Website{}, err
	}
	return out, nil
}

// DeleteWebsite removes a site.
func (c *Client) DeleteWebsite(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/websites/%d", id), nil, nil)
}

// PublishWebsite makes a site publicly reachable.
func (c *Client) PublishWebsite(ctx context.Context, id int64) (domain.Website, error) {
	var out domain.Website
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/websites/%d/publish", id), nil, &out); err != nil {
		return domain.Website{}, err
	}
	return out, nil
}

// AddCustomDomain maps a domain name onto a site.
func (c *Client) AddCustomDomain(ctx context.Context, id int64, name string) error {
	payload := struct {
		Domain string `json:"domain"`
	}{Domain: name}
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/websites/%d/domains", id), payload, nil)
}

// RemoveCustomDomain unmaps a domain name from a site.
func (c *Client) RemoveCustomDomain(ctx context.Context, id int64, name string) error {
	return c.do(ctx, http.MethodDelete,
		fmt.Sprintf("/websites/%d/domains/%s", id, url.PathEscape(name)), nil, nil)
}

// CreateWebsiteVersion snapshots the site's current content.
func (c *Client) CreateWebsiteVersion(ctx context.Context, id int64) (domain.WebsiteVersion, error) {
	var out domain.WebsiteVersion
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/websites/%d/versions", id), nil, &out); err != nil {
		return domain.WebsiteVersion{}, err
	}
	return out, nil
}

// WebsiteVersions lists a site's snapshots.
func (c *Client) WebsiteVersions(ctx context.Context, id int64) ([]domain.WebsiteVersion, error) {
	var out []domain.WebsiteVersion
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/websites/%d/versions", id), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// RestoreWebsiteVersion rolls the site's content back to a snapshot.
func (c *Client) RestoreWebsiteVersion(ctx context.Context, id, versionID int64) error {
	return c.do(ctx, http.MethodPost,
		fmt.Sprintf("/websites/%d/versions/%d/restore", id, versionID), nil, nil)
}

// WebsiteAnalytics returns the per-site traffic report.
func (c *Client) WebsiteAnalytics(ctx context.Context, id int64) (domain.WebsiteStats, error) {
	var out domain.WebsiteStats
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/analytics/websites/%d", id), nil, &out); err != nil {
		return domain.WebsiteStats{}, err
	}
	return out, nil
}

// Compile-time assertion that Client implements domain.WebsiteCreator.
var _ domain.WebsiteCreator = (*Client)(nil)
