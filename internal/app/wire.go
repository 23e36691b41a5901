package app

import (
	"log/slog"

	"threeclick/internal/api"
	"threeclick/internal/domain"
	"threeclick/internal/page"
	"threeclick/internal/session"
	"threeclick/internal/store"
	"threeclick/internal/widgets/analytics"
	"threeclick/internal/widgets/chat"
	"threeclick/internal/widgets/consent"
	"threeclick/internal/widgets/feedback"
	"threeclick/internal/widgets/kb"
)

// userAgent identifies this client on telemetry payloads.
const userAgent = "threeclick-cli"

// Wire bundles all stores, clients and widgets for the CLI.
type Wire struct {
	Tokens      domain.TokenStore
	Consent     domain.ConsentStore
	Transcripts domain.TranscriptStore

	API     *api.Client
	Session *session.Context

	Bus       *page.Bus
	Analytics *analytics.Tracker
	Chat      *chat.Widget
	Banner    *consent.Banner
	Feedback  *feedback.Form
	KB        *kb.Base
}

// NewWire constructs the dependency graph from cfg. A 401 from any API call
// invalidates the session before the command sees the error.
func NewWire(cfg Config) (*Wire, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	// File-based stores
	tokenStore := store.NewTokenFileStore(cfg.Home, cfg.Passphrase)
	consentStore := store.NewConsentFileStore(cfg.Home)
	transcriptStore := store.NewTranscriptFileStore(cfg.Home)

	// A nil HTTP client gets the API client's timeout-bounded default.
	client := api.New(cfg.APIBaseURL, tokenStore, cfg.HTTP, logger)
	sess := session.New(client, tokenStore, logger)
	client.SetUnauthorizedHandler(sess.Invalidate)

	bus := page.NewBus()
	tracker := analytics.NewTracker(client, userAgent, logger)

	return &Wire{
		Tokens:      tokenStore,
		Consent:     consentStore,
		Transcripts: transcriptStore,
		API:         client,
		Session:     sess,
		Bus:         bus,
		Analytics:   tracker,
		Chat:        chat.New(transcriptStore, logger),
		Banner:      consent.New(consentStore, noopScripts{logger: logger}, logger),
		Feedback:    feedback.New(client, userAgent, "/", logger),
		KB:          kb.New(),
	}, nil
}

// noopScripts stands in for a browser script tag; it only records the
// toggle in the log.
type noopScripts struct {
	logger *slog.Logger
}

func (n noopScripts) LoadScript(src string) error {
	n.logger.Debug("analytics script loaded", "src", src)
	return nil
}

func (n noopScripts) UnloadScript(src string) error {
	n.logger.Debug("analytics script unloaded", "src", src)
	return nil
}

var _ domain.ScriptLoader = (noopScripts{})
