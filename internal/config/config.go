// SPDX-License-Identifier: MIT

// Package config loads the campusnav configuration: defaults, then an
// optional YAML file, then environment overrides, then validation.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/campusnav/builder"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Campus sources.
const (
	SourceDemo      = "demo"
	SourceGenerated = "generated"
)

// Environment overrides.
const (
	EnvLogLevel     = "CAMPUSNAV_LOG_LEVEL"
	EnvLogFormat    = "CAMPUSNAV_LOG_FORMAT"
	EnvCampusSource = "CAMPUSNAV_CAMPUS_SOURCE"
	EnvBuildings    = "CAMPUSNAV_CAMPUS_BUILDINGS"
	EnvFloors       = "CAMPUSNAV_CAMPUS_FLOORS"
)

// validate is the shared validator instance.
var validate = validator.New()

// Config is the root configuration.
type Config struct {
	Log    LogConfig    `yaml:"log"`
	Campus CampusConfig `yaml:"campus"`
	Route  RouteConfig  `yaml:"route"`
}

// LogConfig controls the process logger.
type LogConfig struct {
	Level  string `yaml:"level" validate:"omitempty,oneof=debug info warn error"`
	Format string `yaml:"format" validate:"omitempty,oneof=text json"`
}

// CampusConfig selects and shapes the map the binary plans over.
type CampusConfig struct {
	// Source is "demo" for the reference building or "generated" for a
	// synthetic campus shaped by the fields below.
	Source string `yaml:"source" validate:"required,oneof=demo generated"`

	Buildings        int    `yaml:"buildings" validate:"min=1,max=50"`
	Floors           int    `yaml:"floors" validate:"min=1,max=100"`
	Junctions        int    `yaml:"junctions" validate:"min=1,max=1000"`
	RoomsPerJunction int    `yaml:"rooms_per_junction" validate:"min=0,max=2"`
	Spacing          int    `yaml:"spacing" validate:"min=1"`
	Stairs           string `yaml:"stairs" validate:"oneof=ends west center"`
	PassageFloor     int    `yaml:"passage_floor" validate:"min=0,ltefield=Floors"`
	StairWeight      int64  `yaml:"stair_weight" validate:"min=0"`
}

// RouteConfig controls route queries.
type RouteConfig struct {
	// Trace logs every search at debug level.
	Trace bool `yaml:"trace"`
	// Metrics prints the Prometheus exposition after each command.
	Metrics bool `yaml:"metrics"`
}

// Default returns the built-in configuration: the demo building, info-level
// text logs.
func Default() Config {
	return Config{
		Log: LogConfig{Level: "info", Format: "text"},
		Campus: CampusConfig{
			Source:           SourceDemo,
			Buildings:        2,
			Floors:           3,
			Junctions:        6,
			RoomsPerJunction: 2,
			Spacing:          builder.DefaultSpacing,
			Stairs:           string(builder.StairsEnds),
			PassageFloor:     1,
			StairWeight:      builder.DefaultStairWeight,
		},
	}
}

// Load returns Default overlaid with the YAML file at path (if path is
// non-empty) and the environment, then validated. A missing file is an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// applyEnv overrides fields from CAMPUSNAV_* variables.
func applyEnv(cfg *Config) error {
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		cfg.Log.Format = v
	}
	if v := os.Getenv(EnvCampusSource); v != "" {
		cfg.Campus.Source = v
	}
	for name, dst := range map[string]*int{
		EnvBuildings: &cfg.Campus.Buildings,
		EnvFloors:    &cfg.Campus.Floors,
	} {
		v := os.Getenv(name)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q is not an integer", ErrInvalidConfig, name, v)
		}
		*dst = n
	}

	return nil
}

// Validate checks cfg against its struct tags.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return formatValidationError(err)
	}

	return nil
}

// formatValidationError reports the first failing field.
func formatValidationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	e := verrs[0]
	field := e.Namespace()
	switch e.Tag() {
	case "required":
		return fmt.Errorf("%w: %s: field is required", ErrInvalidConfig, field)
	case "min":
		return fmt.Errorf("%w: %s: must be at least %s", ErrInvalidConfig, field, e.Param())
	case "max":
		return fmt.Errorf("%w: %s: must not exceed %s", ErrInvalidConfig, field, e.Param())
	case "oneof":
		return fmt.Errorf("%w: %s: must be one of [%s], got %v", ErrInvalidConfig, field, e.Param(), e.Value())
	case "ltefield":
		return fmt.Errorf("%w: %s: must not exceed %s", ErrInvalidConfig, field, e.Param())
	}

	return fmt.Errorf("%w: %s: validation failed (%s)", ErrInvalidConfig, field, e.Tag())
}

// Builder converts the campus section into the builder's inputs.
func (c CampusConfig) Builder() (builder.Constructor, []builder.Option) {
	opts := []builder.Option{builder.WithStairWeight(c.StairWeight)}
	if c.Source == SourceDemo {
		return builder.Demo(), opts
	}

	return builder.Campus(builder.CampusConfig{
		Buildings:        c.Buildings,
		Floors:           c.Floors,
		Junctions:        c.Junctions,
		RoomsPerJunction: c.RoomsPerJunction,
		Spacing:          c.Spacing,
		Stairs:           builder.StairPlacement(c.Stairs),
		PassageFloor:     c.PassageFloor,
	}), opts
}
