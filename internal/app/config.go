package app

import (
	"log/slog"
	"net/http"
)

// Config holds runtime wiring options for building the app.
type Config struct {
	Home       string       // config directory, e.g. $HOME/.threeclick
	APIBaseURL string       // API base URL, e.g. http://localhost:5001
	Passphrase string       // optional; seals the persisted token when set
	HTTP       *http.Client // optional; defaults to a timeout-bounded client
	Logger     *slog.Logger // optional; defaults to slog.Default()
}
