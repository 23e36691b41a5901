package api

import (
	"context"
	"net/http"

	"threeclick/internal/domain"
)

// The quick endpoints back the marketing page's three-field demo form. They
// are unauthenticated and separate from the dashboard's /websites surface.

// QuickCreate generates a preview site from the demo form.
func (c *Client) QuickCreate(ctx context.Context, req domain.QuickSiteRequest) (domain.QuickSiteResponse, error) {
	var out domain.QuickSiteResponse
	if err := c.do(ctx, http.MethodPost, "/api/create-website", req, &out); err != nil {
		return domain.QuickSiteResponse{}, err
	}
	return out, nil
}

// QuickPDF renders the demo form into a PDF summary and returns the raw bytes.
func (c *Client) QuickPDF(ctx context.Context, req domain.QuickSiteRequest) ([]byte, error) {
	return c.doRaw(ctx, http.MethodPost, "/download-pdf", req)
}

// QuickPublish publishes the demo site and returns its public URL.
func (c *Client) QuickPublish(ctx context.Context, req domain.QuickSiteRequest) (domain.QuickPublishResponse, error) {
	var out domain.QuickPublishResponse
	if err := c.do(ctx, http.MethodPost, "/publish", req, &out); err != nil {
		return domain.QuickPublishResponse{}, err
	}
	return out, nil
}
