package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadGarden loads the game configuration.
// Search order: customPath -> ~/.maysday/configs/garden.yaml -> ./configs/garden.yaml -> embedded default
// Values missing from a file keep their defaults.
func LoadGarden(customPath string) (GardenConfig, error) {
	cfg := DefaultGardenConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	// Try user config directory
	if userCfgPath := userConfigPath("garden.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if c, err := parseGarden(data); err == nil {
				return c, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "garden.yaml")); err == nil {
		if c, err := parseGarden(data); err == nil {
			return c, nil
		}
	}

	// Use embedded default YAML
	c, err := parseGarden(defaultGardenYAML)
	if err != nil {
		return DefaultGardenConfig(), nil // Fallback to hardcoded if embed fails
	}
	return c, nil
}

// parseGarden decodes data over the defaults and validates the result.
func parseGarden(data []byte) (GardenConfig, error) {
	cfg := DefaultGardenConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".maysday", "configs", filename)
}
