package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avstrong/confirmation/internal/render"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "8092", cfg.Server.Port)
	assert.Equal(t, 20*time.Second, cfg.Server.ReadHeaderTimeout)
	assert.Equal(t, "/liveness", cfg.Server.LivenessEndpoint)
	assert.Equal(t, "classic", cfg.Render.Style)
	assert.Equal(t, render.StyleNames(), cfg.Render.Styles)
	assert.True(t, cfg.Render.Compress)
	assert.Equal(t, render.DefaultProfile(), cfg.Hotel.Profile())
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
env: production
log:
  level: warn
server:
  port: "9000"
  shutdown_timeout: 10s
render:
  style: ocean
  styles: [ocean, markup]
hotel:
  name: Seaside Inn
  cancellation_days: 7
  phones:
    - "+30 210 0000000"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.Env)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "9000", cfg.Server.Port)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, []string{"ocean", "markup"}, cfg.Render.Styles)

	p := cfg.Hotel.Profile()
	assert.Equal(t, "Seaside Inn", p.HotelName)
	assert.Equal(t, 7, p.CancellationDays)
	assert.Equal(t, []string{"+30 210 0000000"}, p.Phones)
	assert.Equal(t, "Alpha Bank", p.BankName)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("CONFIRMATION_SERVER_PORT", "9100")
	t.Setenv("CONFIRMATION_HOTEL_NAME", "Env Hotel")
	t.Setenv("CONFIRMATION_RENDER_STYLE", "minimal")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "9100", cfg.Server.Port)
	assert.Equal(t, "Env Hotel", cfg.Hotel.Name)
	assert.Equal(t, "minimal", cfg.Render.Style)
}

func TestLoad_Invalid(t *testing.T) {
	tests := map[string]string{
		"log level":       "log:\n  level: loud\n",
		"port":            "server:\n  port: http\n",
		"unknown style":   "render:\n  style: baroque\n  styles: [baroque]\n",
		"style disabled":  "render:\n  style: classic\n  styles: [ocean]\n",
		"negative days":   "hotel:\n  cancellation_days: -1\n",
		"empty hotel":     "hotel:\n  name: \"\"\n",
		"liveness prefix": "server:\n  liveness_endpoint: live\n",
	}

	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeConfig(t, body))
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalid), err.Error())
		})
	}
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrInvalid))
}

func TestRenderOptions(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Len(t, cfg.RenderOptions(), 1)

	cfg.Render.FontDir = "/fonts"
	cfg.Render.UTF8Font = "DejaVuSans.ttf"
	assert.Len(t, cfg.RenderOptions(), 3)
}
