package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config is the explorer host's YAML configuration. Every field has a
// working default so the server boots from an empty or missing file.
type Config struct {
	Server ServerConfig `yaml:"server"`
	Plan   PlanConfig   `yaml:"plan"`
	Stairs StairsConfig `yaml:"stairs"`
	Zones  ZonesConfig  `yaml:"zones"`
}

type ServerConfig struct {
	Port      int    `yaml:"port"`
	StaticDir string `yaml:"static_dir"`
}

type PlanConfig struct {
	Path string `yaml:"path"`
}

// StairsConfig tunes the floor predictor. StepCount divides the stair's
// total rise into the tread rise the hysteresis thresholds scale against.
type StairsConfig struct {
	TransitionMargin     float64 `yaml:"transition_margin"`
	LandingTriggerMargin float64 `yaml:"landing_trigger_margin"`
	StepCount            int     `yaml:"step_count"`
	NavMarginX           float64 `yaml:"nav_margin_x"`
	NavMarginZ           float64 `yaml:"nav_margin_z"`
	LandingSlabDepth     float64 `yaml:"landing_slab_depth"`
	LandingSlabThickness float64 `yaml:"landing_slab_thickness"`
}

type ZonesConfig struct {
	PassageDepth   float64 `yaml:"passage_depth"`
	PassagePadding float64 `yaml:"passage_padding"`
}

// GetPort returns the listen port with config -> APP_PORT env -> default
// precedence.
func (s *ServerConfig) GetPort() int {
	if s.Port > 0 {
		return s.Port
	}
	if v := os.Getenv("APP_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil && port > 0 {
			return port
		}
	}
	return 8080
}

// GetStaticDir returns the static asset directory, defaulting to the
// in-repo client.
func (s *ServerConfig) GetStaticDir() string {
	if s.StaticDir != "" {
		return s.StaticDir
	}
	return "internal/web/static"
}

// GetPlanPath returns the floor plan file with config -> PLAN_PATH env ->
// default precedence.
func (p *PlanConfig) GetPlanPath() string {
	if p.Path != "" {
		return p.Path
	}
	if v := os.Getenv("PLAN_PATH"); v != "" {
		return v
	}
	return "content/plan.json"
}

// Defaults returns a config with every tuning value filled in.
func Defaults() *Config {
	return &Config{
		Stairs: StairsConfig{
			TransitionMargin:     0.6,
			LandingTriggerMargin: 0.15,
			StepCount:            9,
			NavMarginX:           0.4,
			NavMarginZ:           0.4,
			LandingSlabDepth:     2.0,
			LandingSlabThickness: 0.25,
		},
		Zones: ZonesConfig{
			PassageDepth:   0, // zero selects the plan-derived default
			PassagePadding: 0.5,
		},
	}
}

// Load reads the YAML config at path, layered over Defaults. An empty path
// falls back to the APP_CONFIG env var; if that is empty too, the defaults
// are returned as-is.
func Load(path string) (*Config, error) {
	cfg := Defaults()
	if path == "" {
		path = os.Getenv("APP_CONFIG")
		if path == "" {
			return cfg, nil
		}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}
	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid config %q: %w", path, err)
	}
	return cfg, nil
}

func validate(c *Config) error {
	if c.Stairs.StepCount <= 0 {
		return fmt.Errorf("stairs.step_count must be positive, got %d", c.Stairs.StepCount)
	}
	if c.Stairs.TransitionMargin < 0 || c.Stairs.LandingTriggerMargin < 0 {
		return fmt.Errorf("stair margins must not be negative")
	}
	if c.Stairs.LandingTriggerMargin > c.Stairs.TransitionMargin {
		return fmt.Errorf("landing_trigger_margin (%v) must not exceed transition_margin (%v)",
			c.Stairs.LandingTriggerMargin, c.Stairs.TransitionMargin)
	}
	return nil
}
