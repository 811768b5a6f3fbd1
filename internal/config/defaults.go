package config

import (
	_ "embed"
)

//go:embed defaults/sst.yaml
var defaultSSTYAML []byte

// DefaultSSTConfig returns the hardcoded default configuration. It mirrors
// defaults/sst.yaml and is used when the embedded file cannot be parsed.
func DefaultSSTConfig() SSTConfig {
	return SSTConfig{
		Ship: ShipConfig{
			EnergyMax:   10000,
			YellowAlert: 1000,
		},
		Torpedoes: TorpedoConfig{
			Max:   10,
			Range: 12,
		},
		Phasers: PhaserConfig{
			MaxDischarge: 1000,
			DamageFactor: 4,
		},
		Impulse: DriveConfig{
			Energy:      200,
			Time:        1,
			MaxDistance: 10,
			Step:        1,
		},
		Warp: DriveConfig{
			Energy:      200,
			Time:        0.5,
			MaxDistance: 8,
			Step:        0.25,
		},
		Dock: DockConfig{
			Time: 2,
		},
		Mining: MiningConfig{
			Reserve: 12345,
			Time:    3,
		},
		Stars: StarConfig{
			Max:          200,
			PlanetChance: 0.2,
		},
		Bases: BaseConfig{
			Max:    8,
			Energy: 5000,
			Regen:  0.1,
		},
		Hostiles: HostileConfig{
			Max:            18,
			Energy:         3000,
			Regen:          0.1,
			Drift:          4,
			ShipAggression: 0.9,
			BaseAggression: 0.1,
		},
		Turn: TurnConfig{
			Days:     1.0 / 12,
			WaitMax:  5,
			WaitStep: 0.25,
		},
		Stardate: StardateConfig{
			Base:   2500,
			Spread: 50,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultSSTYAML
}
