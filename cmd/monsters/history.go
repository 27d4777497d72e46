package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/monster-yard/internal/platform/tui"
	"github.com/vovakirdan/monster-yard/internal/storage"
)

var (
	flagLimit int
	flagBest  bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recorded games and stats",
	Long: `Display recently played games from the history database together with
overall statistics.

Examples:
  monsters history
  monsters history --limit 5
  monsters history --best`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagLimit, "limit", 20, "Number of games to show")
	historyCmd.Flags().BoolVar(&flagBest, "best", false, "Order by score instead of date")
}

func runHistory(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	store, err := storage.Open(cfg.Files.History)
	if err != nil {
		return err
	}
	defer store.Close()

	var games []storage.GameRecord
	if flagBest {
		games, err = store.TopGames(flagLimit)
	} else {
		games, err = store.RecentGames(flagLimit)
	}
	if err != nil {
		return err
	}

	stats, err := store.Stats()
	if err != nil {
		return err
	}

	fmt.Fprint(cmd.OutOrStdout(), tui.RenderHistory(games, stats, tui.NewTheme(useColors(cfg))))
	return nil
}
