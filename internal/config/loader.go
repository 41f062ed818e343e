package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// GolfConfigFile is the file name searched for in the config directories.
const GolfConfigFile = "minigolf.yaml"

// LoadGolf loads minigolf configuration.
// Search order: customPath -> ~/.arcade/configs/minigolf.yaml -> ./configs/minigolf.yaml -> embedded default
// Keys missing from the file keep their default values.
func LoadGolf(customPath string) (GolfConfig, error) {
	return load(customPath, GolfConfigFile, defaultGolfYAML, DefaultGolfConfig)
}

// load implements the search order shared by every config file.
func load[T any](customPath, filename string, embedded []byte, fallback func() T) (T, error) {
	// Try custom path first
	if customPath != "" {
		cfg := fallback()
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then the local configs directory
	for _, path := range []string{userConfigPath(filename), filepath.Join("configs", filename)} {
		if path == "" {
			continue
		}
		if data, err := os.ReadFile(path); err == nil {
			cfg := fallback()
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, nil
			}
		}
	}

	// Use embedded default YAML
	cfg := fallback()
	if err := yaml.Unmarshal(embedded, &cfg); err != nil {
		return fallback(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// ApplyGolfPreset modifies the config based on a difficulty preset.
func ApplyGolfPreset(cfg *GolfConfig, preset DifficultyPreset) {
	if IsFixedPreset(preset) {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust gameplay based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Physics.SinkSpeed = 2.0
		cfg.Physics.Friction = 1.8
		cfg.Aim.MinDrag = 0.01
	case DifficultyHard:
		cfg.Physics.SinkSpeed = 1.1
		cfg.Physics.Friction = 1.2
		cfg.Aim.MaxPower = 24
	}
}
