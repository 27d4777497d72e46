package core

// Color represents a terminal color for a screen cell.
// Uses ANSI 16-color codes so that output degrades cleanly on basic terminals.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorBlack
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
)

// Style describes how a single cell is drawn.
// The zero value is plain text in the terminal's default colors.
type Style struct {
	Fg   Color
	Bg   Color
	Bold bool
}

// Plain is the default cell style.
var Plain = Style{}

// IsPlain reports whether the style carries no attributes.
func (s Style) IsPlain() bool {
	return s == Plain
}

var colorNames = map[string]Color{
	"default": ColorDefault,
	"black":   ColorBlack,
	"red":     ColorRed,
	"green":   ColorGreen,
	"yellow":  ColorYellow,
	"blue":    ColorBlue,
	"magenta": ColorMagenta,
	"cyan":    ColorCyan,
	"white":   ColorWhite,
}

// ColorByName looks up a color by its lower-case name ("red", "cyan", ...).
func ColorByName(name string) (Color, bool) {
	c, ok := colorNames[name]
	return c, ok
}
