// Package config loads runtime configuration from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
)

type Config struct {
	Env string `env:"ENV" envDefault:"local" validate:"required,oneof=local staging production"`

	APIBaseURL     string `env:"API_BASE_URL" envDefault:"http://localhost:5001" validate:"required,url"`
	HTTPTimeoutSec int    `env:"HTTP_TIMEOUT_SEC" envDefault:"30" validate:"min=1,max=300"`

	// Home overrides where token, consent and chat files live; empty means
	// a dot directory under the user's home.
	Home string `env:"THREECLICK_HOME"`

	// TokenPassphrase, when set, seals the persisted token with an
	// encryption envelope instead of storing it in the clear.
	TokenPassphrase string `env:"TOKEN_PASSPHRASE"`
}

func Load() (*Config, error) {
	cfg := &Config{}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}
