package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JustinWhittecar/mekcore/internal/rules"
	"github.com/JustinWhittecar/mekcore/internal/tech"
)

func TestParseOptions(t *testing.T) {
	data := []byte(`
conditions:
  gravity: 1.5
  weather: heavy snow
  wind: strong_gale
  temperature: -30
  atmosphere: thin
year: 3058
tech_base: clan
max_rules_level: standard
`)
	opts, err := ParseOptions(data)
	require.NoError(t, err)

	want := rules.Conditions{
		Gravity:     1.5,
		Weather:     rules.WeatherHeavySnow,
		Wind:        rules.WindStrongGale,
		Temperature: -30,
		Atmosphere:  rules.AtmoThin,
	}
	assert.Equal(t, want, opts.Conditions)
	assert.Equal(t, 3058, opts.Year)
	assert.Equal(t, "Clan", opts.TechBase)
	assert.Equal(t, tech.LevelStandard, opts.MaxRulesLevel)
}

func TestParseOptionsDefaults(t *testing.T) {
	opts, err := ParseOptions([]byte("year: 3067\n"))
	require.NoError(t, err)
	assert.Equal(t, rules.DefaultConditions(), opts.Conditions)
	assert.Equal(t, 3067, opts.Year)
	assert.Empty(t, opts.TechBase)
}

func TestParseOptionsErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		is   error
	}{
		{"zero gravity", "conditions:\n  gravity: 0\n", rules.ErrInvalidGravity},
		{"early year", "year: 1999\n", ErrInvalidYear},
		{"late year", "year: 3201\n", ErrInvalidYear},
		{"weather", "conditions:\n  weather: fog of war\n", nil},
		{"level", "max_rules_level: tournament\n", nil},
		{"syntax", "conditions: [\n", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseOptions([]byte(tt.yaml))
			require.Error(t, err)
			if tt.is != nil {
				assert.ErrorIs(t, err, tt.is)
			}
		})
	}
}

func TestLoadOptionsMissingFile(t *testing.T) {
	opts, err := LoadOptions(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultOptions(), opts)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "options.yaml")
	require.NoError(t, os.WriteFile(path, []byte("year: 3050\n"), 0o644))

	t.Setenv("MEKCORE_DB_PATH", "/tmp/catalog.db")
	t.Setenv("PORT", "9090")
	t.Setenv("MEKCORE_PG_DSN", "")
	t.Setenv("MEKCORE_OPTIONS", path)
	t.Setenv("MEKCORE_DEBUG", "true")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/catalog.db", cfg.DBPath)
	assert.Equal(t, "9090", cfg.Port)
	assert.Empty(t, cfg.PostgresDSN)
	assert.True(t, cfg.Debug)
	assert.Equal(t, 3050, cfg.Options.Year)

	t.Setenv("MEKCORE_DEBUG", "loud")
	_, err = Load()
	assert.Error(t, err)
}

func TestAllows(t *testing.T) {
	opts := DefaultOptions()
	opts.MaxRulesLevel = tech.LevelStandard
	opts.TechBase = "Inner Sphere"

	assert.True(t, opts.Allows("Inner Sphere", tech.LevelIntroductory))
	assert.False(t, opts.Allows("Inner Sphere", tech.LevelAdvanced))
	assert.False(t, opts.Allows("Clan", tech.LevelStandard))

	opts.TechBase = ""
	assert.True(t, opts.Allows("Clan", tech.LevelStandard))
}
