package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

//go:embed defaults/yafb.yaml
var defaultYAML []byte

// FileName is the tuning file name looked up in the config directories.
const FileName = "yafb.yaml"

// Load loads the game tuning.
// Search order: customPath -> ~/.yafb/config.yaml -> ./configs/yafb.yaml -> embedded default.
// Fields missing from a file keep their default values.
func Load(customPath string) (Tuning, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Tuning{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return Tuning{}, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	// Try user config directory
	if userCfgPath := userConfigPath(); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, cfg.Validate()
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", FileName)); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, cfg.Validate()
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultYAML)
	if err != nil {
		return Default(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, cfg.Validate()
}

// Parse decodes a YAML document on top of the built-in defaults.
func Parse(data []byte) (Tuning, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Tuning{}, err
	}
	return cfg, nil
}

// Marshal encodes a tuning as YAML.
func Marshal(cfg Tuning) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// DefaultYAML returns the embedded default tuning document.
func DefaultYAML() []byte {
	return defaultYAML
}

// userConfigPath returns the path to the user config file, or empty if home is unavailable.
func userConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".yafb", "config.yaml")
}
