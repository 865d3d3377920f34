// SPDX-License-Identifier: MIT
package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/campusnav/builder"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "campusnav.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestDefault_IsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, SourceDemo, cfg.Campus.Source)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_NoFile(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_YAMLOverlay(t *testing.T) {
	path := writeFile(t, `
log:
  level: debug
  format: json
campus:
  source: generated
  buildings: 3
  floors: 4
  stairs: west
route:
  trace: true
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, SourceGenerated, cfg.Campus.Source)
	assert.Equal(t, 3, cfg.Campus.Buildings)
	assert.Equal(t, 4, cfg.Campus.Floors)
	assert.Equal(t, "west", cfg.Campus.Stairs)
	// Untouched keys keep their defaults.
	assert.Equal(t, 6, cfg.Campus.Junctions)
	assert.True(t, cfg.Route.Trace)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv(EnvLogLevel, "warn")
	t.Setenv(EnvCampusSource, SourceGenerated)
	t.Setenv(EnvFloors, "5")

	cfg, err := Load(writeFile(t, "log:\n  level: debug\n"))
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Log.Level, "environment wins over the file")
	assert.Equal(t, SourceGenerated, cfg.Campus.Source)
	assert.Equal(t, 5, cfg.Campus.Floors)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	_, err = Load(writeFile(t, "log: [unclosed"))
	require.Error(t, err)

	t.Setenv(EnvBuildings, "many")
	_, err = Load("")
	require.ErrorIs(t, err, ErrInvalidConfig)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"bad level", func(c *Config) { c.Log.Level = "loud" }, "Config.Log.Level"},
		{"bad format", func(c *Config) { c.Log.Format = "xml" }, "Config.Log.Format"},
		{"missing source", func(c *Config) { c.Campus.Source = "" }, "field is required"},
		{"zero buildings", func(c *Config) { c.Campus.Buildings = 0 }, "must be at least 1"},
		{"three rooms", func(c *Config) { c.Campus.RoomsPerJunction = 3 }, "must not exceed 2"},
		{"bad stairs", func(c *Config) { c.Campus.Stairs = "roof" }, "Config.Campus.Stairs"},
		{"passage above roof", func(c *Config) { c.Campus.PassageFloor = 9 }, "Config.Campus.PassageFloor"},
		{"negative stair weight", func(c *Config) { c.Campus.StairWeight = -1 }, "Config.Campus.StairWeight"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			err := cfg.Validate()
			require.ErrorIs(t, err, ErrInvalidConfig)
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}

func TestCampusConfig_Builder(t *testing.T) {
	cfg := Default()
	con, opts := cfg.Campus.Builder()
	m, err := builder.BuildWith(opts, con)
	require.NoError(t, err)
	assert.Len(t, m.FindByLabel("Entrance"), 1)

	cfg.Campus.Source = SourceGenerated
	cfg.Campus.Buildings = 1
	cfg.Campus.Floors = 2
	cfg.Campus.Junctions = 2
	cfg.Campus.RoomsPerJunction = 0
	con, opts = cfg.Campus.Builder()
	m, err = builder.BuildWith(opts, con)
	require.NoError(t, err)
	// 2 floors × 2 junctions + 2 stairwells × 2 landings.
	assert.Equal(t, 8, m.Len())
}
