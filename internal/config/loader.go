package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadSST loads the simulation configuration.
// Search order: customPath -> ~/.sst/configs/sst.yaml -> ./configs/sst.yaml -> embedded default.
// Files are layered over the defaults, so a file may set only the keys it cares about.
func LoadSST(customPath string) (SSTConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return SSTConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parseSST(data)
		if err != nil {
			return SSTConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("sst.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parseSST(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "sst.yaml")); err == nil {
		if cfg, err := parseSST(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parseSST(defaultSSTYAML)
	if err != nil {
		return DefaultSSTConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parseSST decodes YAML over the hardcoded defaults and validates the result.
func parseSST(data []byte) (SSTConfig, error) {
	cfg := DefaultSSTConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return SSTConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return SSTConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".sst", "configs", filename)
}

// Validate reports every out-of-range value in the configuration.
func (c SSTConfig) Validate() error {
	var errs []error

	// Negated comparisons also catch NaN.
	positive := func(name string, v float64) {
		if !(v > 0) {
			errs = append(errs, fmt.Errorf("%s must be positive, got %v", name, v))
		}
	}
	nonNegative := func(name string, v float64) {
		if !(v >= 0) {
			errs = append(errs, fmt.Errorf("%s must not be negative, got %v", name, v))
		}
	}
	chance := func(name string, v float64) {
		if !(v >= 0 && v <= 1) {
			errs = append(errs, fmt.Errorf("%s must be within [0, 1], got %v", name, v))
		}
	}

	positive("ship.energy_max", c.Ship.EnergyMax)
	positive("torpedoes.max", float64(c.Torpedoes.Max))
	positive("torpedoes.range", float64(c.Torpedoes.Range))
	positive("phasers.max_discharge", c.Phasers.MaxDischarge)
	positive("phasers.damage_factor", c.Phasers.DamageFactor)
	positive("impulse.max_distance", c.Impulse.MaxDistance)
	positive("warp.max_distance", c.Warp.MaxDistance)
	positive("mining.reserve", c.Mining.Reserve)
	positive("stars.max", float64(c.Stars.Max))
	positive("bases.max", float64(c.Bases.Max))
	positive("bases.energy", c.Bases.Energy)
	positive("hostiles.max", float64(c.Hostiles.Max))
	positive("hostiles.energy", c.Hostiles.Energy)
	positive("turn.days", c.Turn.Days)

	nonNegative("impulse.energy", c.Impulse.Energy)
	nonNegative("impulse.time", c.Impulse.Time)
	nonNegative("warp.energy", c.Warp.Energy)
	nonNegative("warp.time", c.Warp.Time)
	nonNegative("dock.time", c.Dock.Time)
	nonNegative("mining.time", c.Mining.Time)
	nonNegative("bases.regen", c.Bases.Regen)
	nonNegative("hostiles.regen", c.Hostiles.Regen)
	nonNegative("hostiles.drift", c.Hostiles.Drift)

	chance("stars.planet_chance", c.Stars.PlanetChance)
	chance("hostiles.ship_aggression", c.Hostiles.ShipAggression)
	chance("hostiles.base_aggression", c.Hostiles.BaseAggression)

	// Populated cells must leave the grid far from saturated so random
	// placement always finds room.
	if total := c.Stars.Max + c.Bases.Max + c.Hostiles.Max + 1; total > 64*64/2 {
		errs = append(errs, fmt.Errorf("population of %d exceeds half the grid", total))
	}

	return errors.Join(errs...)
}
