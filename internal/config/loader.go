package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const jewelsFile = "jewels.yaml"

// LoadJewels loads the jewels configuration.
// Search order: customPath -> ~/.jewels/configs/jewels.yaml ->
// ./configs/jewels.yaml -> embedded default.
//
// Values missing from a file keep their defaults. An explicit customPath that
// cannot be read, parsed or validated is an error; the other locations are
// skipped silently when unusable.
func LoadJewels(customPath string) (JewelsConfig, error) {
	if customPath != "" {
		cfg := DefaultJewelsConfig()
		if err := readYAML(customPath, &cfg); err != nil {
			return cfg, err
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	for _, path := range []string{userConfigPath(jewelsFile), filepath.Join("configs", jewelsFile)} {
		if path == "" {
			continue
		}
		cfg := DefaultJewelsConfig()
		if err := readYAML(path, &cfg); err == nil && cfg.Validate() == nil {
			return cfg, nil
		}
	}

	cfg := DefaultJewelsConfig()
	if err := yaml.Unmarshal(defaultJewelsYAML, &cfg); err != nil || cfg.Validate() != nil {
		return DefaultJewelsConfig(), nil // hardcoded fallback
	}
	return cfg, nil
}

// readYAML decodes the file at path into out.
func readYAML(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return nil
}

// WriteJewels stores cfg as YAML at path, creating parent directories.
func WriteJewels(path string, cfg JewelsConfig) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config %s: %w", path, err)
	}
	return nil
}

// userConfigPath returns the path of a file in the user config directory,
// or "" when the home directory is unknown.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".jewels", "configs", filename)
}

// UserConfigPath is the per-user location of the jewels configuration.
func UserConfigPath() string {
	return userConfigPath(jewelsFile)
}
