package monsters

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/monster-yard/internal/core"
)

const villageLabel = "helpless village"

// weaponBars is the background of each weapon's preview row.
var weaponBars = map[Weapon]core.Color{
	WeaponConstant: core.ColorRed,
	WeaponLinear:   core.ColorCyan,
	WeaponSinus:    core.ColorBlue,
	WeaponGaussian: core.ColorYellow,
}

// span is a run of text placed on a screen row.
type span struct {
	x    int
	text string
}

// ScreenSize returns the buffer size Render needs for the current yard.
func (g *Game) ScreenSize() (width, height int) {
	positions := g.yard.view()
	cols, end := g.slotColumns(positions)

	width = end
	for _, w := range Weapons {
		spans := previewSpans(positions, g.Preview(w), cols, g.cfg.Render.VillageWidth)
		if n := len(spans); n > 0 {
			last := spans[n-1]
			width = max(width, last.x+len(last.text))
		}
	}
	// Preview rows end with one padding cell of their bar color.
	return width + 1, 1 + len(Weapons)
}

// Render draws the yard on the first row and one damage preview row per
// weapon below it. Preview cells show the hit points a monster would have
// left, X for a kill, and nothing for monsters the weapon does not touch.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	positions := g.yard.view()
	cols, _ := g.slotColumns(positions)
	villageW := g.cfg.Render.VillageWidth

	dst.DrawText(0, 0, fit(villageLabel, villageW))
	for i, hp := range positions {
		if hp > 0 {
			dst.DrawStyledText(cols[i], 0, slotText(hp), core.Style{Fg: g.tierColor(hp), Bold: true})
		} else {
			dst.DrawText(cols[i], 0, slotText(hp))
		}
	}

	for row, w := range Weapons {
		y := row + 1
		bar := core.Style{Fg: core.ColorWhite, Bg: weaponBars[w], Bold: true}

		dst.StyleSpan(0, y, dst.Width(), bar)
		dst.DrawStyledText(0, y, fit(w.Name(), villageW), bar)
		for _, s := range previewSpans(positions, g.Preview(w), cols, villageW) {
			dst.DrawStyledText(s.x, y, s.text, bar)
		}
	}
}

// slotColumns returns the x coordinate of every slot and the x just past
// the last one. Each slot is its text plus a separating space.
func (g *Game) slotColumns(positions []int) ([]int, int) {
	cols := make([]int, len(positions))
	x := g.cfg.Render.VillageWidth
	for i, hp := range positions {
		cols[i] = x
		x += len(slotText(hp)) + 1
	}
	return cols, x
}

// tierColor picks the monster color for hp from the configured tiers.
func (g *Game) tierColor(hp int) core.Color {
	for _, t := range g.tiers {
		if t.below == 0 || hp < t.below {
			return t.color
		}
	}
	return core.ColorDefault
}

// previewSpans lays out the predicted result of effect under each slot.
// A preview wider than its slot pushes the following previews right
// instead of overwriting them.
func previewSpans(positions, effect []int, cols []int, start int) []span {
	if effect == nil {
		return nil
	}

	var spans []span
	cursor := start
	for i, hp := range positions {
		if hp == 0 || effect[i] == 0 {
			continue
		}
		text := "X"
		if left := hp + effect[i]; left > 0 {
			text = strconv.Itoa(left)
		}
		x := max(cols[i], cursor)
		spans = append(spans, span{x: x, text: text})
		cursor = x + len(text)
	}
	return spans
}

func slotText(hp int) string {
	if hp > 0 {
		return strconv.Itoa(hp)
	}
	return "_"
}

// fit pads or truncates s to exactly width characters.
func fit(s string, width int) string {
	if len(s) > width {
		return s[:width]
	}
	return fmt.Sprintf("%-*s", width, s)
}
