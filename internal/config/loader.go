package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadLabyrinth loads the labyrinth configuration.
// Search order: customPath -> ~/.maze/configs/labyrinth.yaml -> ./configs/labyrinth.yaml -> embedded default
//
// Files found on the search path are decoded on top of the defaults, so
// a partial file only overrides what it names. An explicit customPath that
// cannot be read, parsed or validated is an error; other locations are
// skipped when they fail.
func LoadLabyrinth(customPath string) (LabyrinthConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return LabyrinthConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parseLabyrinth(data)
		if err != nil {
			return LabyrinthConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("labyrinth.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parseLabyrinth(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "labyrinth.yaml")); err == nil {
		if cfg, err := parseLabyrinth(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parseLabyrinth(defaultLabyrinthYAML)
	if err != nil {
		return DefaultLabyrinthConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parseLabyrinth decodes data over the hardcoded defaults and validates
// the result. A levels list in data replaces the default table wholesale.
func parseLabyrinth(data []byte) (LabyrinthConfig, error) {
	cfg := DefaultLabyrinthConfig()
	cfg.Levels = nil
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return LabyrinthConfig{}, err
	}
	if len(cfg.Levels) == 0 {
		cfg.Levels = DefaultLabyrinthConfig().Levels
	}
	if err := cfg.Validate(); err != nil {
		return LabyrinthConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".maze", "configs", filename)
}
