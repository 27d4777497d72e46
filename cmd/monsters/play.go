package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/monster-yard/internal/games/monsters"
	"github.com/vovakirdan/monster-yard/internal/highscore"
	"github.com/vovakirdan/monster-yard/internal/platform/tui"
	"github.com/vovakirdan/monster-yard/internal/storage"
)

var flagSeed int64

func init() {
	rootCmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger, closeLog, err := newLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	seed := cfg.Spawn.Seed
	if cmd.Flags().Changed("seed") {
		seed = flagSeed
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	colors := useColors(cfg)

	// Open history storage
	store, err := storage.Open(cfg.Files.History)
	if err != nil {
		logger.Warn("could not open history database", "path", cfg.Files.History, "error", err)
		// Continue without history - game still works
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	game := monsters.New(cfg, seed)
	logger.Debug("game started", "seed", game.Seed(), "difficulty", cfg.Spawn.Difficulty, "colors", colors)

	if err := tui.Run(game, tui.Options{
		Highscores: highscore.Open(cfg.Files.Highscores),
		Store:      store,
		Theme:      tui.NewTheme(colors),
		Logger:     logger,
	}); err != nil {
		return fmt.Errorf("game: %w", err)
	}
	return nil
}
