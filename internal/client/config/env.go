package config

import (
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// envConfig is the environment overlay. Unset variables leave the current
// Config values untouched.
type envConfig struct {
	ServerBaseURL  string        `env:"STORE_RATING_API_URL"`
	RequestTimeout time.Duration `env:"STORE_RATING_TIMEOUT"`
	DatabasePath   string        `env:"STORE_RATING_DB"`
}

// parseEnv overlays Config with values from the process environment. A
// .env file in the working directory is honored when present. Panics on
// malformed variable values.
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	var ec envConfig
	if err := env.Parse(&ec); err != nil {
		panic(err)
	}

	if ec.ServerBaseURL != "" {
		cfg.ServerBaseURL = ec.ServerBaseURL
	}
	if ec.RequestTimeout != 0 {
		cfg.RequestTimeout = ec.RequestTimeout
	}
	if ec.DatabasePath != "" {
		cfg.DatabasePath = ec.DatabasePath
	}
}
