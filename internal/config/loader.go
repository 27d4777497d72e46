package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// LocalPath is the project-relative config file checked after the user file.
const LocalPath = "configs/monsters.yaml"

// Load loads the Monster Yard configuration.
// Search order: customPath -> ~/.monsters/config.yaml -> ./configs/monsters.yaml -> embedded default.
// The file found is laid over the embedded defaults, so partial files are fine.
// MONSTERS_* environment variables are applied last.
func Load(customPath string) (Config, error) {
	cfg := embeddedDefault()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return finish(cfg)
	}

	for _, path := range []string{userConfigPath("config.yaml"), LocalPath} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		candidate := embeddedDefault()
		if err := yaml.Unmarshal(data, &candidate); err == nil {
			cfg = candidate
			break
		}
	}

	return finish(cfg)
}

// Marshal renders cfg as a YAML document.
func Marshal(cfg Config) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: cannot marshal: %w", err)
	}
	return data, nil
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("config: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}

// embeddedDefault parses the embedded YAML, falling back to Default.
func embeddedDefault() Config {
	var cfg Config
	if err := yaml.Unmarshal(defaultMonstersYAML, &cfg); err != nil {
		return Default()
	}
	return cfg
}

// finish applies environment overrides, expands paths and validates.
func finish(cfg Config) (Config, error) {
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("config: parse env: %w", err)
	}

	for _, p := range []*string{&cfg.Files.Highscores, &cfg.Files.History} {
		expanded, err := ExpandHome(*p)
		if err != nil {
			return cfg, err
		}
		*p = expanded
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".monsters", filename)
}
