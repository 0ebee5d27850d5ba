package config

import (
	_ "embed"
)

//go:embed defaults/match3.yaml
var defaultMatch3YAML []byte

// DefaultMatch3Config returns the default match-3 configuration.
func DefaultMatch3Config() Match3Config {
	return Match3Config{
		Board: BoardConfig{
			Rows:     4,
			Cols:     4,
			Alphabet: "ADFGX",
		},
		Refill: RefillConfig{
			AllowChains: true,
		},
		Display: DisplayConfig{
			StepDelayTicks: 8,
			ShowSteps:      true,
			Color:          true,
		},
		Difficulty: DifficultyConfig{
			Preset:  string(DifficultyNormal),
			Reserve: "V",
		},
		Variants: map[string]BoardConfig{
			"classic": {Rows: 4, Cols: 4},
			"large":   {Rows: 8, Cols: 8, Alphabet: "ADFGXV"},
		},
	}
}
