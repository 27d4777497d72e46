// Package config provides YAML-based game configuration loading with
// environment overrides for Monster Yard.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/monster-yard/internal/core"
)

// Config contains all configuration for a Monster Yard session.
type Config struct {
	Spawn   SpawnConfig   `yaml:"spawn"`
	Weapons WeaponsConfig `yaml:"weapons"`
	Render  RenderConfig  `yaml:"render"`
	Files   FilesConfig   `yaml:"files"`
}

// SpawnConfig defines how monsters are created.
type SpawnConfig struct {
	Difficulty float64 `yaml:"difficulty" env:"MONSTERS_DIFFICULTY"`
	SeedYard   []int   `yaml:"seed_yard"`
	Seed       int64   `yaml:"seed" env:"MONSTERS_SEED"` // 0 = time based
}

// WeaponsConfig defines weapon parameters.
type WeaponsConfig struct {
	StartLevel int `yaml:"start_level"`
}

// RenderConfig defines how the yard is drawn.
type RenderConfig struct {
	VillageWidth int      `yaml:"village_width"`
	NoColors     bool     `yaml:"no_colors" env:"MONSTERS_NO_COLORS"`
	Tiers        []HPTier `yaml:"tiers"`
}

// HPTier colors monsters with fewer than Below hit points.
// A tier with Below == 0 matches any monster.
type HPTier struct {
	Below int    `yaml:"below"`
	Color string `yaml:"color"`
}

// FilesConfig defines where results are persisted.
type FilesConfig struct {
	Highscores string `yaml:"highscores" env:"MONSTERS_HIGHSCORES"`
	History    string `yaml:"history" env:"MONSTERS_HISTORY"`
}

// Validate checks the configuration for values the game cannot run with.
func (c Config) Validate() error {
	var errs []error

	if c.Spawn.Difficulty < 0 {
		errs = append(errs, fmt.Errorf("spawn.difficulty must be >= 0, got %g", c.Spawn.Difficulty))
	}
	if len(c.Spawn.SeedYard) == 0 {
		errs = append(errs, errors.New("spawn.seed_yard must not be empty"))
	}
	for i, hp := range c.Spawn.SeedYard {
		if hp < 0 {
			errs = append(errs, fmt.Errorf("spawn.seed_yard[%d] must be >= 0, got %d", i, hp))
		}
	}
	if c.Weapons.StartLevel < 1 {
		errs = append(errs, fmt.Errorf("weapons.start_level must be >= 1, got %d", c.Weapons.StartLevel))
	}
	if c.Render.VillageWidth < 1 {
		errs = append(errs, fmt.Errorf("render.village_width must be >= 1, got %d", c.Render.VillageWidth))
	}
	for i, tier := range c.Render.Tiers {
		if _, ok := core.ColorByName(tier.Color); !ok {
			errs = append(errs, fmt.Errorf("render.tiers[%d]: unknown color %q", i, tier.Color))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid configuration: %w", errors.Join(errs...))
	}
	return nil
}
