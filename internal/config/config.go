// Package config handles chip's TOML configuration file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"chip/internal/engine"
)

// Config holds all chip configuration.
type Config struct {
	General    GeneralConfig    `toml:"general"`
	Rules      RulesConfig      `toml:"rules"`
	Appearance AppearanceConfig `toml:"appearance"`
}

// GeneralConfig holds general preferences.
type GeneralConfig struct {
	DataDir string `toml:"data_dir,omitempty"`
}

// RulesConfig overrides the engine's reward tables. Absent values mean
// "keep the default" so a sparse config file stays valid.
type RulesConfig struct {
	Policy       string       `toml:"policy,omitempty"` // "cycle" or "tiers"
	XPPerLevel   int64        `toml:"xp_per_level,omitempty"`
	HonestyBonus *int64       `toml:"honesty_bonus,omitempty"`
	XPNecessary  *int64       `toml:"xp_necessary,omitempty"`
	XPWant       *int64       `toml:"xp_want,omitempty"`
	XPInvestment *int64       `toml:"xp_investment,omitempty"`
	Tiers        []TierConfig `toml:"tiers,omitempty"`
}

// TierConfig is one named tier band for the tiers policy.
type TierConfig struct {
	Name string `toml:"name"`
	Min  int64  `toml:"min"`
	Max  int64  `toml:"max"`
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme string `toml:"theme"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Appearance: AppearanceConfig{
			Theme: "flexoki-dark",
		},
	}
}

// ConfigDir returns the XDG-compliant config directory.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "chip")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "chip")
}

// ConfigPath returns the full path to the config file.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// Load reads the config file, returning defaults if it doesn't exist.
func Load() (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(ConfigPath())
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	dir := ConfigDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(ConfigPath(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(ConfigPath())
	return err == nil
}

// BuildRules applies the file's overrides on top of the engine defaults.
// Behavior differences between rule variants are data here, never code.
func BuildRules(cfg Config) engine.Rules {
	r := engine.DefaultRules()

	if cfg.Rules.Policy == string(engine.PolicyTiers) {
		r.Policy = engine.PolicyTiers
	}

	if cfg.Rules.XPPerLevel > 0 {
		r.XPPerLevel = cfg.Rules.XPPerLevel
	}
	if cfg.Rules.HonestyBonus != nil {
		r.HonestyBonus = *cfg.Rules.HonestyBonus
	}
	if cfg.Rules.XPNecessary != nil {
		r.BaseXP[engine.CategoryNecessary] = *cfg.Rules.XPNecessary
	}
	if cfg.Rules.XPWant != nil {
		r.BaseXP[engine.CategoryWant] = *cfg.Rules.XPWant
	}
	if cfg.Rules.XPInvestment != nil {
		r.BaseXP[engine.CategoryInvestment] = *cfg.Rules.XPInvestment
	}

	if len(cfg.Rules.Tiers) > 0 {
		tiers := make([]engine.Tier, 0, len(cfg.Rules.Tiers))
		for _, t := range cfg.Rules.Tiers {
			tiers = append(tiers, engine.Tier{Name: t.Name, Min: t.Min, Max: t.Max})
		}
		r.Tiers = tiers
	}

	return r
}
