// Package config reads server and CLI settings from the environment and the
// optional YAML game options file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/JustinWhittecar/mekcore/internal/entity"
	"github.com/JustinWhittecar/mekcore/internal/rules"
	"github.com/JustinWhittecar/mekcore/internal/tech"
)

const (
	DefaultDBPath = "data/mekcore.db"
	DefaultPort   = "8080"
	DefaultYear   = 3025

	minYear = 2000
	maxYear = 3200
)

var ErrInvalidYear = errors.New("year out of range")

// Config holds everything the binaries read at startup.
type Config struct {
	DBPath      string
	Port        string
	PostgresDSN string
	OptionsPath string
	Debug       bool
	Options     Options
}

// Options are the game defaults applied to evaluations that do not set
// their own.
type Options struct {
	Conditions    rules.Conditions
	Year          int
	TechBase      string // empty means any
	MaxRulesLevel tech.Level
}

// optionsFile is the YAML form of Options. Enum values are written by name.
type optionsFile struct {
	Conditions struct {
		Gravity     *float64 `yaml:"gravity"`
		Weather     string   `yaml:"weather"`
		Wind        string   `yaml:"wind"`
		Temperature *int     `yaml:"temperature"`
		Atmosphere  string   `yaml:"atmosphere"`
		Space       bool     `yaml:"space"`
	} `yaml:"conditions"`
	Year          int    `yaml:"year"`
	TechBase      string `yaml:"tech_base"`
	MaxRulesLevel string `yaml:"max_rules_level"`
}

func DefaultOptions() Options {
	return Options{
		Conditions:    rules.DefaultConditions(),
		Year:          DefaultYear,
		MaxRulesLevel: tech.LevelExperimental,
	}
}

// Load reads .env when present, then the environment, then the options
// file named by MEKCORE_OPTIONS.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	cfg := &Config{
		DBPath:      getEnv("MEKCORE_DB_PATH", DefaultDBPath),
		Port:        getEnv("PORT", DefaultPort),
		PostgresDSN: os.Getenv("MEKCORE_PG_DSN"),
		OptionsPath: os.Getenv("MEKCORE_OPTIONS"),
		Options:     DefaultOptions(),
	}
	if v := os.Getenv("MEKCORE_DEBUG"); v != "" {
		debug, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("MEKCORE_DEBUG: %w", err)
		}
		cfg.Debug = debug
	}

	if cfg.OptionsPath != "" {
		opts, err := LoadOptions(cfg.OptionsPath)
		if err != nil {
			return nil, err
		}
		cfg.Options = opts
	}
	return cfg, nil
}

// LoadOptions reads a game options file. A missing file yields the defaults.
func LoadOptions(path string) (Options, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return DefaultOptions(), nil
	}
	if err != nil {
		return Options{}, fmt.Errorf("read options: %w", err)
	}
	opts, err := ParseOptions(data)
	if err != nil {
		return Options{}, fmt.Errorf("options %s: %w", path, err)
	}
	return opts, nil
}

// ParseOptions decodes YAML game options over the defaults and validates
// the result.
func ParseOptions(data []byte) (Options, error) {
	var f optionsFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return Options{}, fmt.Errorf("parse yaml: %w", err)
	}

	opts := DefaultOptions()
	c := &opts.Conditions
	if f.Conditions.Gravity != nil {
		c.Gravity = *f.Conditions.Gravity
	}
	if f.Conditions.Temperature != nil {
		c.Temperature = *f.Conditions.Temperature
	}
	c.Space = f.Conditions.Space

	var err error
	if f.Conditions.Weather != "" {
		if c.Weather, err = rules.ParseWeather(f.Conditions.Weather); err != nil {
			return Options{}, err
		}
	}
	if f.Conditions.Wind != "" {
		if c.Wind, err = rules.ParseWind(f.Conditions.Wind); err != nil {
			return Options{}, err
		}
	}
	if f.Conditions.Atmosphere != "" {
		if c.Atmosphere, err = rules.ParseAtmosphere(f.Conditions.Atmosphere); err != nil {
			return Options{}, err
		}
	}
	if f.MaxRulesLevel != "" {
		if opts.MaxRulesLevel, err = tech.ParseLevel(f.MaxRulesLevel); err != nil {
			return Options{}, err
		}
	}
	if f.Year != 0 {
		opts.Year = f.Year
	}
	if f.TechBase != "" {
		opts.TechBase = entity.ParseTechBase(f.TechBase).String()
	}

	if err := opts.Validate(); err != nil {
		return Options{}, err
	}
	return opts, nil
}

func (o Options) Validate() error {
	if err := o.Conditions.Validate(); err != nil {
		return err
	}
	if o.Year < minYear || o.Year > maxYear {
		return fmt.Errorf("%w: %d not in [%d, %d]", ErrInvalidYear, o.Year, minYear, maxYear)
	}
	return nil
}

// Allows reports whether a design with the given tech base and rules level
// may be fielded under these options.
func (o Options) Allows(techBase string, level tech.Level) bool {
	if level > o.MaxRulesLevel {
		return false
	}
	return o.TechBase == "" || strings.EqualFold(o.TechBase, techBase)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
