package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	ltable "github.com/charmbracelet/lipgloss/table"

	"github.com/vovakirdan/monster-yard/internal/highscore"
	"github.com/vovakirdan/monster-yard/internal/storage"
)

const noHighscores = "There were no highscores saved yet. Time to fill the list!"

// RenderHighscores formats the highscore list as a table, best first.
func RenderHighscores(entries []highscore.Entry, theme Theme) string {
	if len(entries) == 0 {
		return noHighscores
	}

	rows := make([][]string, len(entries))
	for i, e := range entries {
		rows[i] = []string{strconv.Itoa(i + 1), strconv.Itoa(e.Score), e.Name}
	}

	t := ltable.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(theme.TableBorder).
		BorderHeader(true).
		BorderRow(false).
		Headers("#", "Score", "Name").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			s := theme.TableCell
			if row == ltable.HeaderRow {
				s = theme.TableHeader
			}
			if col < 2 {
				s = s.Align(lipgloss.Right)
			}
			return s
		})

	return t.Render()
}

// historyColumns is the layout of the game history table.
var historyColumns = []table.Column{
	{Title: "Date", Width: 12},
	{Title: "Player", Width: 14},
	{Title: "Score", Width: 6},
	{Title: "Level", Width: 6},
	{Title: "Turns", Width: 6},
	{Title: "Yard", Width: 5},
	{Title: "Ending", Width: 10},
}

// RenderHistory formats recorded games and their aggregate stats.
func RenderHistory(games []storage.GameRecord, stats *storage.Stats, theme Theme) string {
	var b strings.Builder

	b.WriteString(theme.Title.Render("GAME HISTORY"))
	b.WriteString("\n\n")

	if len(games) == 0 {
		b.WriteString("No games recorded yet.\n")
		return b.String()
	}

	rows := make([]table.Row, len(games))
	for i, g := range games {
		player := g.Player
		if player == "" {
			player = "-"
		}
		rows[i] = table.Row{
			g.CreatedAt.Format("Jan 02 15:04"),
			player,
			strconv.Itoa(g.Score),
			strconv.Itoa(g.Level),
			strconv.Itoa(g.Turns),
			strconv.Itoa(g.YardLength),
			string(g.EndReason),
		}
	}

	t := table.New(
		table.WithColumns(historyColumns),
		table.WithRows(rows),
		table.WithHeight(len(rows)+2),
		table.WithFocused(false),
	)
	t.SetStyles(historyStyles(theme))

	b.WriteString(t.View())
	b.WriteString("\n\n")

	if stats != nil {
		fmt.Fprintf(&b, "Games: %d  Best: %d  Average: %.1f  Monsters killed: %d\n",
			stats.GamesCount, stats.BestScore, stats.AvgScore, stats.TotalKills)
		if !stats.LastPlayed.IsZero() {
			fmt.Fprintf(&b, "Last played: %s\n", stats.LastPlayed.Format("Jan 02 2006 15:04"))
		}
	}

	return b.String()
}

func historyStyles(theme Theme) table.Styles {
	if !theme.Colors {
		return table.Styles{
			Header: lipgloss.NewStyle().Padding(0, 1),
			Cell:   lipgloss.NewStyle().Padding(0, 1),
		}
	}

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = lipgloss.NewStyle()
	return s
}
