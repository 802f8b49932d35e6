// Package config loads simulator tuning knobs from an optional YAML file and
// lets command-line flags override them, in that order. Defaults match the
// flag defaults the CLI has always shipped, so a simulator started with no
// config file and no flags runs with those documented defaults.
package config

import (
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds every tunable of a simulator run. Field names and defaults
// mirror the CLI flags verbatim.
type Config struct {
	WindowWidth    int `mapstructure:"window_width"`
	WindowHeight   int `mapstructure:"window_height"`
	GridSize       int `mapstructure:"grid_size"`
	SpawnFrequency int `mapstructure:"spawn_frequency"`
	Lookahead      int `mapstructure:"lookahead"`
	StepMillis     int `mapstructure:"step_ms"`
	OddCycleSteps  int `mapstructure:"odd_cycle_steps"`
	EvenCycleSteps int `mapstructure:"even_cycle_steps"`
}

// Defaults returns the configuration a simulator runs with when no config
// file and no flag overrides are given.
func Defaults() *Config {
	return &Config{
		WindowWidth:    1024,
		WindowHeight:   1024,
		GridSize:       12,
		SpawnFrequency: 8,
		Lookahead:      3,
		StepMillis:     25,
		OddCycleSteps:  8,
		EvenCycleSteps: 50,
	}
}

// FromYaml loads a YAML config file over Defaults. Any field the file
// omits keeps its default value. The file is read and decoded through
// viper rather than encoding/yaml directly.
func FromYaml(path string) (*Config, error) {
	vp := viper.New()
	vp.SetConfigFile(path)
	vp.SetConfigType("yaml")
	vp.AddConfigPath(filepath.Dir(path))
	if err := vp.ReadInConfig(); err != nil {
		return nil, err
	}

	cfg := Defaults()
	if err := vp.Unmarshal(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyFlags overlays only the flags the user explicitly passed (per
// f.Set) onto cfg, giving the command line the final say over a loaded
// config file while leaving cfg's other fields — defaults or values from
// a config file — untouched.
func (cfg *Config) ApplyFlags(f *Flags) {
	if f.Set["window_width"] {
		cfg.WindowWidth = f.WindowWidth
	}
	if f.Set["window_height"] {
		cfg.WindowHeight = f.WindowHeight
	}
	if f.Set["grid_size"] {
		cfg.GridSize = f.GridSize
	}
	if f.Set["spawn_frequency"] {
		cfg.SpawnFrequency = f.SpawnFrequency
	}
	if f.Set["lookahead"] {
		cfg.Lookahead = f.Lookahead
	}
	if f.Set["step_ms"] {
		cfg.StepMillis = f.StepMillis
	}
	if f.Set["odd_cycle_steps"] {
		cfg.OddCycleSteps = f.OddCycleSteps
	}
	if f.Set["even_cycle_steps"] {
		cfg.EvenCycleSteps = f.EvenCycleSteps
	}
}
