// monsters is a terminal game: keep the monsters in the yard from reaching
// the helpless village.
//
// Usage:
//
//	monsters                 - Play a game
//	monsters scores          - Show the highscore list
//	monsters history         - Show recorded games and stats
//	monsters config          - Print the effective configuration
//
// Global flags:
//
//	--config <path>      - Config file (default: ~/.monsters/config.yaml)
//	--highscores <path>  - Highscore file (default: monsters_highscores.txt)
//	--db <path>          - History database (default: ~/.monsters/history.db)
//	--log <path>         - Write debug logs to a file
//	--no-colors          - Disable ANSI colors
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/monster-yard/internal/config"
)

var (
	// Global flags
	flagConfig     string
	flagHighscores string
	flagDBPath     string
	flagLogPath    string
	flagNoColors   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "monsters",
	Short: "Monster Yard - defend the village in your terminal",
	Long: `Monsters crowd the yard in front of a helpless village. Every turn they
move one step closer. Pick a weapon, kill as many as you can and keep them
out of the village.

Actions (type the letter, then Enter):
  c  - Constant Cannon: same damage to every monster
  l  - Linear Laser: damage grows with every monster it passes
  s  - Sinus Shooter: damages every other monster, heals the rest
  g  - Gaussian Gun: hits hardest around the strongest monster
  r  - Increase range: one more monster joins the yard
  u  - Upgrade weapon level

Examples:
  monsters
  monsters --no-colors
  monsters scores
  monsters history --limit 5`,
	Args:          cobra.NoArgs,
	RunE:          runPlay,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagHighscores, "highscores", "", "Path to highscore file (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to history database (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Write debug logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagNoColors, "no-colors", false, "Disable ANSI colors")

	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig loads the configuration and applies the path flags.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}

	for _, o := range []struct {
		flag string
		dst  *string
	}{
		{flagHighscores, &cfg.Files.Highscores},
		{flagDBPath, &cfg.Files.History},
	} {
		if o.flag == "" {
			continue
		}
		path, err := config.ExpandHome(o.flag)
		if err != nil {
			return cfg, err
		}
		*o.dst = path
	}
	return cfg, nil
}

// useColors reports whether output gets ANSI colors: --no-colors and the
// config can turn them off, and they are never sent to a pipe.
func useColors(cfg config.Config) bool {
	return !flagNoColors && !cfg.Render.NoColors && term.IsTerminal(int(os.Stdout.Fd()))
}

// newLogger returns the process logger. Without --log only warnings reach
// stderr so the game screen stays clean. The returned func closes the log file.
func newLogger() (*log.Logger, func(), error) {
	if flagLogPath == "" {
		logger := log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "monsters",
			Level:           log.WarnLevel,
		})
		return logger, func() {}, nil
	}

	f, err := os.OpenFile(flagLogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "monsters",
		Level:           log.DebugLevel,
	})
	//nolint:errcheck // Best-effort close on exit
	return logger, func() { f.Close() }, nil
}
