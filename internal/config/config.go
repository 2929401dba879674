// Package config loads timestable settings.
//
// Precedence, highest first:
//  1. TIMESTABLE_* environment variables (TIMESTABLE_DRILL_ROUNDS -> drill.rounds)
//  2. YAML config file
//  3. Defaults
package config

import (
	"fmt"

	"github.com/abhisek/timestable/internal/logging"
)

// Config is the full application configuration.
type Config struct {
	DB      DBConfig       `koanf:"db"`
	Log     logging.Config `koanf:"log"`
	Locale  LocaleConfig   `koanf:"locale"`
	Drill   DrillConfig    `koanf:"drill"`
	Learner LearnerConfig  `koanf:"learner"`
}

// DBConfig locates the SQLite database. An empty path uses the store's
// default location.
type DBConfig struct {
	Path string `koanf:"path"`
}

// LocaleConfig picks the catalog used to phrase explanations.
type LocaleConfig struct {
	Lang string `koanf:"lang"`
	// Dir holds additional <lang>.yaml catalogs that override the
	// embedded ones.
	Dir string `koanf:"dir"`
}

// DrillConfig tunes the practice loop.
type DrillConfig struct {
	Rounds    int  `koanf:"rounds"`
	MaxFactor int  `koanf:"max_factor"`
	Advanced  bool `koanf:"advanced"`
	Discovery bool `koanf:"discovery"`
	// StruggleBias is the share of facts drawn from struggling numbers.
	StruggleBias float64 `koanf:"struggle_bias"`
}

// LearnerConfig tunes struggle detection.
type LearnerConfig struct {
	StruggleThreshold int `koanf:"struggle_threshold"`
	RecoveryStreak    int `koanf:"recovery_streak"`
}

// Default returns the built-in configuration.
func Default() Config {
	cfg := Config{}
	applyDefaults(&cfg)
	return cfg
}

func applyDefaults(cfg *Config) {
	def := logging.DefaultConfig()
	if cfg.Log.Level == "" {
		cfg.Log.Level = def.Level
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = def.Format
	}
	if cfg.Locale.Lang == "" {
		cfg.Locale.Lang = "en"
	}
	if cfg.Drill.Rounds == 0 {
		cfg.Drill.Rounds = 10
	}
	if cfg.Drill.MaxFactor == 0 {
		cfg.Drill.MaxFactor = 10
	}
	if cfg.Drill.StruggleBias == 0 {
		cfg.Drill.StruggleBias = 0.5
	}
	if cfg.Learner.StruggleThreshold == 0 {
		cfg.Learner.StruggleThreshold = 3
	}
	if cfg.Learner.RecoveryStreak == 0 {
		cfg.Learner.RecoveryStreak = 3
	}
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if err := c.Log.Validate(); err != nil {
		return err
	}
	if c.Locale.Lang == "" {
		return fmt.Errorf("locale.lang is required")
	}
	if c.Drill.Rounds < 1 {
		return fmt.Errorf("drill.rounds must be at least 1, got %d", c.Drill.Rounds)
	}
	if c.Drill.MaxFactor < 2 || c.Drill.MaxFactor > 12 {
		return fmt.Errorf("drill.max_factor must be between 2 and 12, got %d", c.Drill.MaxFactor)
	}
	if c.Drill.StruggleBias < 0 || c.Drill.StruggleBias > 1 {
		return fmt.Errorf("drill.struggle_bias must be between 0 and 1, got %v", c.Drill.StruggleBias)
	}
	if c.Learner.StruggleThreshold < 1 {
		return fmt.Errorf("learner.struggle_threshold must be at least 1, got %d", c.Learner.StruggleThreshold)
	}
	if c.Learner.RecoveryStreak < 1 {
		return fmt.Errorf("learner.recovery_streak must be at least 1, got %d", c.Learner.RecoveryStreak)
	}
	return nil
}
