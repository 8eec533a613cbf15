package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

//go:embed defaults/render.yaml
var defaultRenderYAML []byte

// Load reads the render configuration.
// Search order: customPath -> ~/.leonardo/render.yaml -> ./leonardo.yaml
// -> embedded default. A custom path that cannot be read or parsed is an
// error; the fallback locations are skipped silently.
func Load(customPath string) (Render, error) {
	var cfg Render

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg.Normalize(), nil
	}

	if userPath := userConfigPath("render.yaml"); userPath != "" {
		if data, err := os.ReadFile(userPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg.Normalize(), nil
			}
		}
	}

	if data, err := os.ReadFile("leonardo.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg.Normalize(), nil
		}
	}

	if err := yaml.Unmarshal(defaultRenderYAML, &cfg); err != nil {
		return Default(), nil
	}
	return cfg.Normalize(), nil
}

// userConfigPath returns the path under the user config directory, or
// empty if the home directory is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".leonardo", filename)
}
