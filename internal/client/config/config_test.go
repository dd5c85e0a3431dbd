package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var cfg Config
	cfg.LoadDefaults()

	require.Equal(t, "http://localhost:8000", cfg.ServerBaseURL)
	require.Equal(t, 15*time.Second, cfg.RequestTimeout)
	require.Equal(t, "feedbackdesk.db", cfg.DatabasePath)
	require.Equal(t, "info", cfg.LogLevel)
	require.True(t, cfg.LogPretty)
}

func TestParseEnv_OverlaysOnlySetVariables(t *testing.T) {
	t.Setenv("FEEDBACKDESK_SERVER_URL", "http://api.example.com")
	t.Setenv("FEEDBACKDESK_REQUEST_TIMEOUT", "30s")

	var cfg Config
	cfg.LoadDefaults()
	parseEnv(&cfg)

	require.Equal(t, "http://api.example.com", cfg.ServerBaseURL)
	require.Equal(t, 30*time.Second, cfg.RequestTimeout)
	// Untouched by env: defaults survive.
	require.Equal(t, "feedbackdesk.db", cfg.DatabasePath)
	require.Equal(t, "info", cfg.LogLevel)
}

func TestParseJson_Overlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"server_base_url": "http://json.example.com",
		"request_timeout": "45s",
		"log_pretty": false
	}`), 0o600))

	oldArgs := os.Args
	os.Args = []string{"feedbackdesk", "-c", path}
	t.Cleanup(func() { os.Args = oldArgs })

	var cfg Config
	cfg.LoadDefaults()
	parseJson(&cfg)

	require.Equal(t, "http://json.example.com", cfg.ServerBaseURL)
	require.Equal(t, 45*time.Second, cfg.RequestTimeout)
	require.False(t, cfg.LogPretty)
	require.Equal(t, "feedbackdesk.db", cfg.DatabasePath)
}

func TestParseFlags(t *testing.T) {
	oldArgs := os.Args
	os.Args = []string{"feedbackdesk", "-a", "http://flag.example.com", "-t", "5", "-d", "alt.db"}
	t.Cleanup(func() { os.Args = oldArgs })

	var cfg Config
	cfg.LoadDefaults()
	parseFlags(&cfg)

	require.Equal(t, "http://flag.example.com", cfg.ServerBaseURL)
	require.Equal(t, 5*time.Second, cfg.RequestTimeout)
	require.Equal(t, "alt.db", cfg.DatabasePath)
}
