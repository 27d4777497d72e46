package tui

import (
	"strings"

	"github.com/vovakirdan/monster-yard/internal/core"
)

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same style to minimize ANSI escape
// sequences. Trailing unstyled blanks are dropped from every row.
func RenderScreen(s *core.Screen, theme Theme) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		end := rowEnd(s, y, theme)

		// Group consecutive cells with the same style
		x := 0
		for x < end {
			start := s.GetCell(x, y).Style

			var run strings.Builder
			for x < end {
				cell := s.GetCell(x, y)
				if cell.Style != start {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			if start.IsPlain() || !theme.Colors {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(theme.cellStyle(start).Render(run.String()))
		}
	}
	return sb.String()
}

// rowEnd returns the x just past the last cell of row y that is not a
// blank rendered without style.
func rowEnd(s *core.Screen, y int, theme Theme) int {
	end := s.Width()
	for end > 0 {
		cell := s.GetCell(end-1, y)
		if cell.Rune != ' ' || (theme.Colors && !cell.Style.IsPlain()) {
			break
		}
		end--
	}
	return end
}
