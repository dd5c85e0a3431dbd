package config

import (
	"context"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// envConfig is a DTO for environment parsing. Empty/unset variables leave
// the corresponding Config field untouched.
type envConfig struct {
	ServerBaseURL  string        `env:"FEEDBACKDESK_SERVER_URL"`
	RequestTimeout time.Duration `env:"FEEDBACKDESK_REQUEST_TIMEOUT"`
	DatabasePath   string        `env:"FEEDBACKDESK_DB_PATH"`
	LogLevel       string        `env:"FEEDBACKDESK_LOG_LEVEL"`
}

// parseEnv overlays Config with values from the environment using
// go-envconfig. Unset variables are skipped so defaults survive.
func parseEnv(cfg *Config) {
	var ec envConfig
	if err := envconfig.Process(context.Background(), &ec); err != nil {
		panic(err)
	}

	if ec.ServerBaseURL != "" {
		cfg.ServerBaseURL = ec.ServerBaseURL
	}
	if ec.RequestTimeout > 0 {
		cfg.RequestTimeout = ec.RequestTimeout
	}
	if ec.DatabasePath != "" {
		cfg.DatabasePath = ec.DatabasePath
	}
	if ec.LogLevel != "" {
		cfg.LogLevel = ec.LogLevel
	}
}
