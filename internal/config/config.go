// Package config provides YAML-based configuration loading and difficulty
// presets for the match-3 game.
package config

// Match3Config contains all configuration for the match-3 game.
type Match3Config struct {
	Board      BoardConfig            `yaml:"board"`
	Refill     RefillConfig           `yaml:"refill"`
	Display    DisplayConfig          `yaml:"display"`
	Difficulty DifficultyConfig       `yaml:"difficulty"`
	Variants   map[string]BoardConfig `yaml:"variants"`
}

// BoardConfig defines the board size and the symbols it is drawn from.
// Zero fields in a variant entry fall back to the top-level board.
type BoardConfig struct {
	Rows     int    `yaml:"rows"`
	Cols     int    `yaml:"cols"`
	Alphabet string `yaml:"alphabet"`
}

// RefillConfig controls how emptied cells are refilled.
type RefillConfig struct {
	// AllowChains accepts refills that create new matches, which then clear
	// as a chain reaction. When false a refill must leave no match.
	AllowChains bool `yaml:"allow_chains"`
}

// DisplayConfig controls cascade playback in the terminal front ends.
type DisplayConfig struct {
	StepDelayTicks int  `yaml:"step_delay_ticks"` // ticks each intermediate board stays on screen
	ShowSteps      bool `yaml:"show_steps"`       // print clear/collapse/refill boards
	Color          bool `yaml:"color"`
}

// DifficultyConfig holds preset-dependent settings.
type DifficultyConfig struct {
	Preset  string `yaml:"preset"`  // easy, normal or hard
	Reserve string `yaml:"reserve"` // extra symbols added by the hard preset
}

// BoardFor returns the board of a variant, with unset fields taken from the
// top-level board. Unknown variants get the top-level board.
func (c Match3Config) BoardFor(variant string) BoardConfig {
	b := c.Board
	v, ok := c.Variants[variant]
	if !ok {
		return b
	}
	if v.Rows > 0 {
		b.Rows = v.Rows
	}
	if v.Cols > 0 {
		b.Cols = v.Cols
	}
	if v.Alphabet != "" {
		b.Alphabet = v.Alphabet
	}
	return b
}
