package commands

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"threeclick/internal/app"
	"threeclick/internal/config"
	"threeclick/internal/invocationid"
	applog "threeclick/internal/log"
	"threeclick/internal/page"
)

var (
	home       string
	apiURL     string
	passphrase string
	verbose    bool

	wire   *app.Wire
	logger *slog.Logger
)

func Execute() error {
	root := &cobra.Command{
		Use:           "threeclick",
		Short:         "3-Click Website Builder client",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			// Flags beat environment.
			if home == "" {
				home = cfg.Home
			}
			if home == "" {
				dir, err := os.UserHomeDir()
				if err != nil {
					return err
				}
				home = filepath.Join(dir, ".threeclick")
			}
			if err := os.MkdirAll(home, 0o700); err != nil {
				return err
			}
			if apiURL == "" {
				apiURL = cfg.APIBaseURL
			}
			if passphrase == "" {
				passphrase = cfg.TokenPassphrase
			}

			level := slog.LevelWarn
			if verbose {
				level = slog.LevelDebug
			}
			logger = applog.New(os.Stderr, cfg.Env, level)

			wire, err = app.NewWire(app.Config{
				Home:       home,
				APIBaseURL: apiURL,
				Passphrase: passphrase,
				HTTP:       &http.Client{Timeout: time.Duration(cfg.HTTPTimeoutSec) * time.Second},
				Logger:     logger,
			})
			if err != nil {
				return err
			}

			ctx := invocationid.WithInvocationID(cmd.Context(), invocationid.New())
			cmd.SetContext(ctx)

			wire.Analytics.Attach(ctx, wire.Bus)
			wire.Bus.Dispatch(page.Event{Type: page.EventLoad, URL: "/" + cmd.Name()})

			// Settle the session before the handler looks at it.
			wire.Session.Init(ctx)

			if wire.Banner.NeedsPrompt() && !isConsentCommand(cmd) {
				fmt.Fprintln(os.Stderr, "No cookie preferences saved yet. Run `threeclick consent accept`, `consent reject` or `consent set`.")
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if wire != nil {
				wire.Bus.Dispatch(page.Event{Type: page.EventUnload})
			}
		},
	}

	root.PersistentFlags().StringVar(&home, "home", "", "config dir (default ~/.threeclick)")
	root.PersistentFlags().StringVar(&apiURL, "api", "", "API base URL (default http://localhost:5001)")
	root.PersistentFlags().StringVarP(&passphrase, "passphrase", "p", "", "passphrase to seal the stored token")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(
		loginCmd(), registerCmd(), logoutCmd(), whoamiCmd(),
		builderCmd(), websitesCmd(), templatesCmd(), accountCmd(),
		quickCmd(), kbCmd(), chatCmd(), feedbackCmd(), consentCmd(),
	)
	return root.ExecuteContext(context.Background())
}

func isConsentCommand(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Name() == "consent" {
			return true
		}
	}
	return false
}
