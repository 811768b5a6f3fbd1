package config

// ApplySSTPreset modifies the config based on a difficulty preset.
// Normal leaves the loaded values untouched.
func ApplySSTPreset(cfg *SSTConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Hostiles.Max = cfg.Hostiles.Max * 2 / 3
		cfg.Hostiles.ShipAggression = scaleChance(cfg.Hostiles.ShipAggression, 0.75)
		cfg.Hostiles.BaseAggression = scaleChance(cfg.Hostiles.BaseAggression, 0.5)
		cfg.Bases.Max += 2
	case DifficultyHard:
		cfg.Hostiles.Max = cfg.Hostiles.Max * 4 / 3
		cfg.Hostiles.Energy *= 1.2
		cfg.Hostiles.ShipAggression = scaleChance(cfg.Hostiles.ShipAggression, 1.1)
		cfg.Hostiles.BaseAggression = scaleChance(cfg.Hostiles.BaseAggression, 2)
		cfg.Bases.Max = max(1, cfg.Bases.Max-2)
	}
	if cfg.Hostiles.Max < 1 {
		cfg.Hostiles.Max = 1
	}
}

// scaleChance multiplies a probability and keeps it within [0, 1].
func scaleChance(p, factor float64) float64 {
	return min(1.0, max(0.0, p*factor))
}
