package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "levelgen.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Len(t, cfg.Zones, 9)
	assert.Equal(t, "INFO", cfg.Logging.ConsoleLevel)
}

func TestLoad_EmptyPathUsesDefault(t *testing.T) {
	t.Setenv("LEVELGEN_CONFIG", "")
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_OverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
generator:
  half_width: 100
server:
  cache_size: 3
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 100, cfg.Generator.HalfWidth)
	assert.Equal(t, 3, cfg.Server.CacheSize)
	// Незаданные поля остаются по умолчанию
	assert.Equal(t, 16, cfg.Generator.HalfHeight)
	assert.Equal(t, "levelgen", cfg.Server.MetricsNamespace)
}

func TestLoad_FromEnv(t *testing.T) {
	path := writeConfig(t, "generator:\n  margin: 7\n")
	t.Setenv("LEVELGEN_CONFIG", path)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.Generator.Margin)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, "generator: [broken"))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, "generator:\n  height_lo: 5\n  height_hi: 5\n"))
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestValidate(t *testing.T) {
	cases := map[string]func(c *Config){
		"zero width":       func(c *Config) { c.Generator.HalfWidth = 0 },
		"short height":     func(c *Config) { c.Generator.HalfHeight = c.Generator.HeightHi - 1 },
		"no zones":         func(c *Config) { c.Zones = nil },
		"chance above one": func(c *Config) { c.Zones[0].GapChance = 1.5 },
		"negative chance":  func(c *Config) { c.Zones[2].BridgeChance = -0.1 },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := Default()
			mutate(cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}
}

func TestGetRESTPort(t *testing.T) {
	t.Setenv("LEVELGEN_REST_PORT", "")
	s := ServerConfig{}
	assert.Equal(t, 8090, s.GetRESTPort())

	t.Setenv("LEVELGEN_REST_PORT", "9100")
	assert.Equal(t, 9100, s.GetRESTPort())

	s.RESTPort = 7000
	assert.Equal(t, 7000, s.GetRESTPort())
}

func TestShippedConfigMatchesDefault(t *testing.T) {
	cfg, err := Load(filepath.Join("..", "..", "configs", "levelgen.yaml"))
	require.NoError(t, err)

	def := Default()
	assert.Equal(t, def.Generator, cfg.Generator)
	assert.Equal(t, def.Zones, cfg.Zones)
}
