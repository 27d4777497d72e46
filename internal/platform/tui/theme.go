package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/monster-yard/internal/core"
)

// ansiColors maps core.Color to the basic 8 terminal colors.
var ansiColors = map[core.Color]lipgloss.Color{
	core.ColorBlack:   lipgloss.Color("0"),
	core.ColorRed:     lipgloss.Color("1"),
	core.ColorGreen:   lipgloss.Color("2"),
	core.ColorYellow:  lipgloss.Color("3"),
	core.ColorBlue:    lipgloss.Color("4"),
	core.ColorMagenta: lipgloss.Color("5"),
	core.ColorCyan:    lipgloss.Color("6"),
	core.ColorWhite:   lipgloss.Color("7"),
}

// Theme contains the visual styles of the game screens.
// A theme without colors renders text unchanged.
type Theme struct {
	Colors bool

	// Prompt segments
	PromptLevel lipgloss.Style
	PromptKills lipgloss.Style
	Key         lipgloss.Style

	// Text
	Narration lipgloss.Style
	Notice    lipgloss.Style
	Help      lipgloss.Style

	// End screens
	Banner lipgloss.Style
	Ending lipgloss.Style
	Title  lipgloss.Style

	// Highscore table
	TableBorder lipgloss.Style
	TableHeader lipgloss.Style
	TableCell   lipgloss.Style
}

// DefaultTheme returns the colored theme.
func DefaultTheme() Theme {
	white := ansiColors[core.ColorWhite]
	black := ansiColors[core.ColorBlack]

	return Theme{
		Colors: true,

		PromptLevel: lipgloss.NewStyle().Bold(true).Foreground(white).Background(ansiColors[core.ColorGreen]),
		PromptKills: lipgloss.NewStyle().Bold(true).Foreground(white).Background(ansiColors[core.ColorMagenta]),
		Key:         lipgloss.NewStyle().Bold(true).Foreground(white).Background(black),

		Narration: lipgloss.NewStyle().Italic(true),
		Notice:    lipgloss.NewStyle().Foreground(ansiColors[core.ColorYellow]),
		Help:      lipgloss.NewStyle().Foreground(lipgloss.Color("241")),

		Banner: lipgloss.NewStyle().Bold(true).Foreground(ansiColors[core.ColorRed]).Background(black),
		Ending: lipgloss.NewStyle().Bold(true).Foreground(white).Background(ansiColors[core.ColorRed]),
		Title:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")),

		TableBorder: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		TableHeader: lipgloss.NewStyle().Bold(true).Padding(0, 1),
		TableCell:   lipgloss.NewStyle().Padding(0, 1),
	}
}

// PlainTheme returns a theme that emits no escape sequences.
func PlainTheme() Theme {
	plain := lipgloss.NewStyle()
	return Theme{
		PromptLevel: plain,
		PromptKills: plain,
		Key:         plain,
		Narration:   plain,
		Notice:      plain,
		Help:        plain,
		Banner:      plain,
		Ending:      plain,
		Title:       plain,
		TableBorder: plain,
		TableHeader: plain.Padding(0, 1),
		TableCell:   plain.Padding(0, 1),
	}
}

// NewTheme picks DefaultTheme or PlainTheme.
func NewTheme(colors bool) Theme {
	if colors {
		return DefaultTheme()
	}
	return PlainTheme()
}

// cellStyle converts a screen cell style to lipgloss.
func (t Theme) cellStyle(st core.Style) lipgloss.Style {
	s := lipgloss.NewStyle()
	if !t.Colors {
		return s
	}
	if c, ok := ansiColors[st.Fg]; ok {
		s = s.Foreground(c)
	}
	if c, ok := ansiColors[st.Bg]; ok {
		s = s.Background(c)
	}
	if st.Bold {
		s = s.Bold(true)
	}
	return s
}
