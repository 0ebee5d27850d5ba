package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadMatch3 loads the match-3 configuration.
// Search order: customPath -> ~/.match3/configs/match3.yaml -> ./configs/match3.yaml -> embedded default.
// Fields missing from a file keep their default values.
func LoadMatch3(customPath string) (Match3Config, error) {
	cfg := DefaultMatch3Config()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("match3.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, nil
			}
			cfg = DefaultMatch3Config()
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "match3.yaml")); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
		cfg = DefaultMatch3Config()
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultMatch3YAML, &cfg); err != nil {
		return DefaultMatch3Config(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".match3", "configs", filename)
}

// BoardFile is a fixed starting board, one string per row.
// '*' and '.' mark empty cells.
type BoardFile struct {
	Alphabet string   `yaml:"alphabet"`
	Rows     []string `yaml:"rows"`
}

// LoadBoardFile reads a board fixture from a YAML file.
func LoadBoardFile(path string) (BoardFile, error) {
	var bf BoardFile

	data, err := os.ReadFile(path)
	if err != nil {
		return bf, fmt.Errorf("failed to read board %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &bf); err != nil {
		return bf, fmt.Errorf("failed to parse board %s: %w", path, err)
	}
	if err := bf.Validate(); err != nil {
		return bf, fmt.Errorf("invalid board %s: %w", path, err)
	}
	return bf, nil
}

// Size returns the row and column count of the fixture.
func (bf BoardFile) Size() (rows, cols int) {
	if len(bf.Rows) == 0 {
		return 0, 0
	}
	return len(bf.Rows), len([]rune(bf.Rows[0]))
}
