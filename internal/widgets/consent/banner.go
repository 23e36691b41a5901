package consent

import (
	"log/slog"
	"time"

	"threeclick/internal/domain"
)

// AnalyticsScriptSrc is the third-party tag toggled by the analytics choice.
const AnalyticsScriptSrc = "https://analytics.example.com/tracker.js"

// Banner decides whether to prompt for consent and applies the outcome.
type Banner struct {
	store   domain.ConsentStore
	scripts domain.ScriptLoader
	logger  *slog.Logger
	now     func() time.Time

	loaded bool
	record domain.ConsentRecord
}

// New reads any persisted consent and applies its script side effects, so a
// returning visitor's analytics tag is restored without a new prompt.
func New(store domain.ConsentStore, scripts domain.ScriptLoader, logger *slog.Logger) *Banner {
	b := &Banner{
		store:   store,
		scripts: scripts,
		logger:  logger.With("component", "consent"),
		now:     time.Now,
	}
	rec, ok, err := store.LoadConsent()
	if err != nil {
		b.logger.Warn("load consent failed", "error", err)
		return b
	}
	if ok {
		b.loaded = true
		b.record = rec
		b.applyScripts(rec.Preferences)
	}
	return b
}

// NeedsPrompt reports whether the banner should render. Any persisted
// record, whatever its choices, suppresses it.
func (b *Banner) NeedsPrompt() bool { return !b.loaded }

// Preferences returns the current choices; only meaningful once consent has
// been given or loaded.
func (b *Banner) Preferences() (domain.ConsentPreferences, bool) {
	return b.record.Preferences, b.loaded
}

// AcceptAll grants analytics and marketing.
func (b *Banner) AcceptAll() error {
	return b.Save(domain.ConsentPreferences{Analytics: true, Marketing: true})
}

// RejectAll declines everything optional.
func (b *Banner) RejectAll() error {
	return b.Save(domain.ConsentPreferences{})
}

// Save persists the choices with the current time and loads or unloads the
// analytics script to match. Essential is forced on regardless of input.
func (b *Banner) Save(prefs domain.ConsentPreferences) error {
	prefs.Essential = true
	rec := domain.ConsentRecord{Preferences: prefs, Timestamp: b.now()}

	if err := b.store.SaveConsent(rec); err != nil {
		return err
	}
	b.loaded = true
	b.record = rec
	b.applyScripts(prefs)
	return nil
}

func (b *Banner) applyScripts(prefs domain.ConsentPreferences) {
	var err error
	if prefs.Analytics {
		err = b.scripts.LoadScript(AnalyticsScriptSrc)
	} else {
		err = b.scripts.UnloadScript(AnalyticsScriptSrc)
	}
	if err != nil {
		b.logger.Warn("analytics script toggle failed", "analytics", prefs.Analytics, "error", err)
	}
}
