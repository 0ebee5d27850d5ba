package config

import (
	"fmt"
	"strings"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParseDifficultyPreset accepts a preset name in any case.
// The empty string means normal.
func ParseDifficultyPreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(strings.ToLower(strings.TrimSpace(s))) {
	case "", DifficultyNormal:
		return DifficultyNormal, nil
	case DifficultyEasy:
		return DifficultyEasy, nil
	case DifficultyHard:
		return DifficultyHard, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal or hard)", s)
	}
}

// AlphabetForPreset adjusts an alphabet to a preset. Fewer symbols make
// matches more likely: easy drops the last symbol (never below three), hard
// appends the first reserve symbol not already present.
func AlphabetForPreset(alphabet string, preset DifficultyPreset, reserve string) string {
	symbols := []rune(alphabet)
	switch preset {
	case DifficultyEasy:
		if len(symbols) > 3 {
			symbols = symbols[:len(symbols)-1]
		}
	case DifficultyHard:
		for _, r := range reserve {
			if !strings.ContainsRune(string(symbols), r) {
				symbols = append(symbols, r)
				break
			}
		}
	}
	return string(symbols)
}

// ApplyMatch3Preset modifies the config based on a difficulty preset.
// Every variant alphabet is adjusted as well as the top-level one.
func ApplyMatch3Preset(cfg *Match3Config, preset DifficultyPreset) {
	cfg.Difficulty.Preset = string(preset)
	cfg.Board.Alphabet = AlphabetForPreset(cfg.Board.Alphabet, preset, cfg.Difficulty.Reserve)
	for id, v := range cfg.Variants {
		if v.Alphabet != "" {
			v.Alphabet = AlphabetForPreset(v.Alphabet, preset, cfg.Difficulty.Reserve)
			cfg.Variants[id] = v
		}
	}
}
