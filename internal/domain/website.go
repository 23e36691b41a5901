package domain

import "time"

// ClosedSentinel is the free-text convention for a day with no opening hours.
const ClosedSentinel = "Closed"

// DefaultTemplate is the template every new draft starts from.
const DefaultTemplate = "tradie-1"

// Weekdays lists the business-hours keys in display order.
var Weekdays = []string{
	"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday",
}

// DayHours holds the open/close strings for one weekday. Both are free text;
// no format is enforced beyond the ClosedSentinel convention.
type DayHours struct {
	Open  string `json:"open"`
	Close string `json:"close"`
}

// BusinessHours maps weekday name to opening hours.
type BusinessHours map[string]DayHours

// DefaultBusinessHours returns the hours every new draft starts with:
// Mon-Fri 8:00-17:00, Sat 9:00-14:00, Sun closed.
func DefaultBusinessHours() BusinessHours {
	h := BusinessHours{}
	for _, day := range Weekdays[:5] {
		h[day] = DayHours{Open: "8:00", Close: "17:00"}
	}
	h["saturday"] = DayHours{Open: "9:00", Close: "14:00"}
	h["sunday"] = DayHours{Open: ClosedSentinel, Close: ClosedSentinel}
	return h
}

// WebsiteDraft is the in-memory payload the builder wizard assembles. It lives
// only for the lifetime of the wizard; there is no autosave.
type WebsiteDraft struct {
	BusinessName  string        `json:"businessName" validate:"required"`
	Phone         string        `json:"phone" validate:"required"`
	Email         string        `json:"email" validate:"required"`
	Address       string        `json:"address" validate:"required"`
	Location      string        `json:"location" validate:"required"`
	Services      []string      `json:"services"`
	BusinessHours BusinessHours `json:"businessHours"`
	Template      string        `json:"template"`
}

// NewWebsiteDraft returns a draft with the default hours and template.
func NewWebsiteDraft() WebsiteDraft {
	return WebsiteDraft{
		Services:      []string{},
		BusinessHours: DefaultBusinessHours(),
		Template:      DefaultTemplate,
	}
}

// CreateWebsiteRequest is the payload for POST /websites: the full draft plus
// the authenticated user's identifier.
type CreateWebsiteRequest struct {
	WebsiteDraft
	UserID int64 `json:"userId"`
}

// CreateWebsiteResponse is returned on successful creation.
type CreateWebsiteResponse struct {
	ID      int64  `json:"id"`
	Message string `json:"message"`
	URL     string `json:"url"`
}

// Website is a stored website as returned by the websites endpoints.
type Website struct {
	ID           int64     `json:"id"`
	UserID       int64     `json:"user_id"`
	BusinessName string    `json:"business_name"`
	Template     string    `json:"template"`
	Content      string    `json:"content"`
	PublishedURL string    `json:"published_url"`
	IsPublished  bool      `json:"is_published"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Template is a site template from GET /templates.
type Template struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Preview     string `json:"preview"`
}

// WebsiteVersion is one snapshot from the version-control endpoints.
type WebsiteVersion struct {
	ID        int64     `json:"id"`
	WebsiteID int64     `json:"website_id"`
	CreatedAt time.Time `json:"created_at"`
}

// WebsiteStats is the per-site report from GET /analytics/websites/:id.
type WebsiteStats struct {
	WebsiteID int64 `json:"website_id"`
	PageViews int64 `json:"page_views"`
	Visitors  int64 `json:"visitors"`
}

// SubscriptionPlan is one entry from GET /subscriptions/plans.
type SubscriptionPlan struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	PricePerMo   float64 `json:"price_per_month"`
	Description  string  `json:"description"`
}

// Subscription is the caller's active plan.
type Subscription struct {
	ID        int64     `json:"id"`
	PlanID    string    `json:"plan_id"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// APIKey is one entry from the api-keys endpoints. The secret is only present
// in the generate response.
type APIKey struct {
	ID        int64     `json:"id"`
	Key       string    `json:"key,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// QuickSiteRequest is the marketing-page payload: the three-field demo form.
type QuickSiteRequest struct {
	BusinessName string `json:"businessName" validate:"required"`
	ServiceType  string `json:"serviceType" validate:"required"`
	Location     string `json:"location" validate:"required"`
}

// QuickSiteResponse carries the generated preview markup.
type QuickSiteResponse struct {
	HTML string `json:"html"`
}

// QuickPublishResponse carries the public URL after a demo publish.
type QuickPublishResponse struct {
	URL string `json:"url"`
}
