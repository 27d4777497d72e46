package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/monster-yard/internal/highscore"
	"github.com/vovakirdan/monster-yard/internal/platform/tui"
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the highscore list",
	Long: `Display the top 10 scores from the highscore file.

Examples:
  monsters scores
  monsters scores --highscores ./shared_scores.txt`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func runScores(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	entries, err := highscore.Load(cfg.Files.Highscores)
	if err != nil {
		return err
	}

	theme := tui.NewTheme(useColors(cfg))
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, theme.Title.Render("HIGH SCORES"))
	fmt.Fprintln(out)
	fmt.Fprintln(out, tui.RenderHighscores(entries, theme))
	return nil
}
