package domain

import "context"

// TokenStore persists the opaque bearer token across invocations. The session
// is the only writer; the API client only ever reads and clears it.
type TokenStore interface {
	SaveToken(token string) error
	LoadToken() (token string, ok bool, err error)
	ClearToken() error
}

// ConsentStore persists the cookie-consent record.
type ConsentStore interface {
	SaveConsent(rec ConsentRecord) error
	LoadConsent() (rec ConsentRecord, ok bool, err error)
}

// TranscriptStore persists the chat transcript across page loads.
type TranscriptStore interface {
	SaveTranscript(msgs []ChatMessage) error
	LoadTranscript() ([]ChatMessage, error)
}

// AuthAPI is the slice of the API client the session context needs.
type AuthAPI interface {
	Login(ctx context.Context, req LoginRequest) (AuthResponse, error)
	Register(ctx context.Context, req RegisterRequest) (AuthResponse, error)
	Logout(ctx context.Context) error
	CurrentUser(ctx context.Context) (User, error)
}

// WebsiteCreator is the slice of the API client the builder wizard needs.
type WebsiteCreator interface {
	CreateWebsite(ctx context.Context, req CreateWebsiteRequest) (CreateWebsiteResponse, error)
}

// TelemetrySink receives fire-and-forget analytics beacons. Implementations
// must not retry; a failed send is the caller's to log and drop.
type TelemetrySink interface {
	SendErrorEvent(ctx context.Context, ev ErrorEvent) error
	SendPerformanceReport(ctx context.Context, rep PerformanceReport) error
	SendBehaviorEvent(ctx context.Context, ev BehaviorEvent) error
}

// FeedbackSink receives feedback submissions.
type FeedbackSink interface {
	SendFeedback(ctx context.Context, sub FeedbackSubmission) error
}

// ScriptLoader is the consent widget's hook for loading and unloading the
// third-party analytics tag at runtime.
type ScriptLoader interface {
	LoadScript(src string) error
	UnloadScript(src string) error
}
