package config

import (
	_ "embed"
)

//go:embed defaults/monsters.yaml
var defaultMonstersYAML []byte

// Default returns the built-in configuration.
// It mirrors defaults/monsters.yaml and is used when the embedded file
// cannot be parsed.
func Default() Config {
	return Config{
		Spawn: SpawnConfig{
			Difficulty: 0.2,
			SeedYard:   []int{0, 0, 0, 4},
		},
		Weapons: WeaponsConfig{
			StartLevel: 1,
		},
		Render: RenderConfig{
			VillageWidth: 17,
			Tiers: []HPTier{
				{Below: 5, Color: "cyan"},
				{Below: 10, Color: "green"},
				{Below: 50, Color: "yellow"},
				{Below: 100, Color: "red"},
				{Below: 0, Color: "magenta"},
			},
		},
		Files: FilesConfig{
			Highscores: "monsters_highscores.txt",
			History:    "~/.monsters/history.db",
		},
	}
}

// DefaultYAML returns the embedded default configuration document.
func DefaultYAML() []byte {
	return defaultMonstersYAML
}
