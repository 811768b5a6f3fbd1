// Package config provides YAML-based tuning for the star trek simulation,
// difficulty presets and .env driven defaults for the command line.
package config

// SSTConfig contains every tunable of the simulation.
type SSTConfig struct {
	Ship      ShipConfig     `yaml:"ship"`
	Torpedoes TorpedoConfig  `yaml:"torpedoes"`
	Phasers   PhaserConfig   `yaml:"phasers"`
	Impulse   DriveConfig    `yaml:"impulse"`
	Warp      DriveConfig    `yaml:"warp"`
	Dock      DockConfig     `yaml:"dock"`
	Mining    MiningConfig   `yaml:"mining"`
	Stars     StarConfig     `yaml:"stars"`
	Bases     BaseConfig     `yaml:"bases"`
	Hostiles  HostileConfig  `yaml:"hostiles"`
	Turn      TurnConfig     `yaml:"turn"`
	Stardate  StardateConfig `yaml:"stardate"`
}

// ShipConfig defines the player ship's energy budget.
type ShipConfig struct {
	EnergyMax   float64 `yaml:"energy_max"`
	YellowAlert float64 `yaml:"yellow_alert"` // Condition turns YELLOW below this
}

// TorpedoConfig defines the photon torpedo rack.
type TorpedoConfig struct {
	Max   int `yaml:"max"`
	Range int `yaml:"range"` // Cells a torpedo travels before burning out
}

// PhaserConfig defines phaser discharge limits.
type PhaserConfig struct {
	MaxDischarge float64 `yaml:"max_discharge"`
	DamageFactor float64 `yaml:"damage_factor"` // Damage = energy * factor / distance
}

// DriveConfig defines cost and reach of a drive. Distances are cells for
// impulse and sectors for warp.
type DriveConfig struct {
	Energy      float64 `yaml:"energy"` // Energy per unit distance
	Time        float64 `yaml:"time"`   // Days per unit distance
	MaxDistance float64 `yaml:"max_distance"`
	Step        float64 `yaml:"step"`
}

// DockConfig defines docking with a star base.
type DockConfig struct {
	Time float64 `yaml:"time"`
}

// MiningConfig defines dilithium mining on planets.
type MiningConfig struct {
	Reserve float64 `yaml:"reserve"` // Maximum dilithium a planet starts with
	Time    float64 `yaml:"time"`
}

// StarConfig defines star population.
type StarConfig struct {
	Max          int     `yaml:"max"`
	PlanetChance float64 `yaml:"planet_chance"`
}

// BaseConfig defines star base population and shields.
type BaseConfig struct {
	Max    int     `yaml:"max"`
	Energy float64 `yaml:"energy"`
	Regen  float64 `yaml:"regen"` // Fraction of current energy regained per day
}

// HostileConfig defines hostile population and behaviour.
type HostileConfig struct {
	Max            int     `yaml:"max"`
	Energy         float64 `yaml:"energy"`
	Regen          float64 `yaml:"regen"`
	Drift          float64 `yaml:"drift"`           // Cells a hostile may drift per day
	ShipAggression float64 `yaml:"ship_aggression"` // Chance to fire on the ship each turn
	BaseAggression float64 `yaml:"base_aggression"` // Chance to fire on a base each turn
}

// TurnConfig defines the time cost of a turn and of waiting.
type TurnConfig struct {
	Days     float64 `yaml:"days"` // Forced time advance after every command
	WaitMax  float64 `yaml:"wait_max"`
	WaitStep float64 `yaml:"wait_step"`
}

// StardateConfig defines the starting stardate, base + rand*spread.
type StardateConfig struct {
	Base   float64 `yaml:"base"`
	Spread float64 `yaml:"spread"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParseDifficulty accepts an empty string as normal.
func ParseDifficulty(s string) (DifficultyPreset, bool) {
	switch DifficultyPreset(s) {
	case "", DifficultyNormal:
		return DifficultyNormal, true
	case DifficultyEasy:
		return DifficultyEasy, true
	case DifficultyHard:
		return DifficultyHard, true
	default:
		return "", false
	}
}
