package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "conf.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestParseJson_OverlaysValues(t *testing.T) {
	path := writeConfigFile(t, `{
  "server_base_url": "http://json.example.com/api",
  "request_timeout": "15s",
  "database_path": "/var/lib/ratings/s.db"
}`)
	withArgs(t, "-c", path)

	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)

	require.Equal(t, "http://json.example.com/api", cfg.ServerBaseURL)
	require.Equal(t, 15*time.Second, cfg.RequestTimeout)
	require.Equal(t, "/var/lib/ratings/s.db", cfg.DatabasePath)
}

func TestParseJson_PartialFileKeepsDefaults(t *testing.T) {
	path := writeConfigFile(t, `{"server_base_url": "http://json.example.com/api"}`)
	withArgs(t, "-config", path)

	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)

	require.Equal(t, "http://json.example.com/api", cfg.ServerBaseURL)
	require.Equal(t, 10*time.Second, cfg.RequestTimeout)
}

func TestParseJson_NoFlagIsNoop(t *testing.T) {
	withArgs(t)

	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)

	require.Equal(t, "http://localhost:5000/api", cfg.ServerBaseURL)
}

func TestParseJson_MalformedFilePanics(t *testing.T) {
	path := writeConfigFile(t, `{oops`)
	withArgs(t, "-c", path)

	cfg := &Config{}
	cfg.LoadDefaults()
	require.Panics(t, func() { parseJson(cfg) })
}
