package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		t.Setenv("HOME", t.TempDir())
		cfg, err := Load("")
		require.NoError(t, err)

		assert.Equal(t, "info", cfg.Logger.Level)
		assert.Equal(t, "console", cfg.Logger.Format)
		assert.Equal(t, "stderr", cfg.Logger.OutputPath)
		assert.Empty(t, cfg.Currencies.File)
		assert.Empty(t, cfg.Rates.File)
		assert.Empty(t, cfg.Rates.Worth)
		assert.Equal(t, -1, cfg.Display.Precision)
	})

	t.Run("file", func(t *testing.T) {
		path := writeConfig(t, "monet.yaml", `
logger:
  level: debug
  format: json
currencies:
  file: currencies.csv
rates:
  file: rates.yaml
  worth:
    usd: "1"
    CHF: 1.1
display:
  precision: 4
`)
		cfg, err := Load(path)
		require.NoError(t, err)

		assert.Equal(t, "debug", cfg.Logger.Level)
		assert.Equal(t, "json", cfg.Logger.Format)
		assert.Equal(t, "stderr", cfg.Logger.OutputPath)
		assert.Equal(t, "currencies.csv", cfg.Currencies.File)
		assert.Equal(t, "rates.yaml", cfg.Rates.File)
		assert.Equal(t, map[string]string{"USD": "1", "CHF": "1.1"}, cfg.Rates.Worth)
		assert.Equal(t, 4, cfg.Display.Precision)
	})

	t.Run("search path", func(t *testing.T) {
		home := t.TempDir()
		t.Setenv("HOME", home)
		dir := filepath.Join(home, ".config", "monet")
		require.NoError(t, os.MkdirAll(dir, 0o700))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "monet.yaml"), []byte("display:\n  precision: 2\n"), 0o600))

		cfg, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, 2, cfg.Display.Precision)
	})

	t.Run("env", func(t *testing.T) {
		t.Setenv("HOME", t.TempDir())
		t.Setenv("MONET_LOGGER_LEVEL", "warn")
		t.Setenv("MONET_DISPLAY_PRECISION", "0")
		t.Setenv("MONET_RATES_FILE", "/etc/monet/rates.toml")

		cfg, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, "warn", cfg.Logger.Level)
		assert.Equal(t, 0, cfg.Display.Precision)
		assert.Equal(t, "/etc/monet/rates.toml", cfg.Rates.File)
	})

	t.Run("error", func(t *testing.T) {
		tests := map[string]struct {
			name, content, want string
		}{
			"precision high":  {"monet.yaml", "display:\n  precision: 7\n", "display.precision"},
			"precision low":   {"monet.yaml", "display:\n  precision: -2\n", "display.precision"},
			"format":          {"monet.yaml", "logger:\n  format: xml\n", "logger.format"},
			"syntax":          {"monet.yaml", "logger: [\n", "reading config"},
			"unsupported ext": {"monet.ini2", "x", "reading config"},
		}
		for name, tt := range tests {
			t.Run(name, func(t *testing.T) {
				_, err := Load(writeConfig(t, tt.name, tt.content))
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.want)
			})
		}

		_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
		assert.Error(t, err)
	})
}
