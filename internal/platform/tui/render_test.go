package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/monster-yard/internal/config"
	"github.com/vovakirdan/monster-yard/internal/core"
	"github.com/vovakirdan/monster-yard/internal/games/monsters"
)

func TestRenderScreenPlain(t *testing.T) {
	g := monsters.New(config.Default(), 1)
	s := core.NewScreen(g.ScreenSize())
	g.Render(s)

	got := RenderScreen(s, PlainTheme())
	want := strings.Join([]string{
		"helpless village _ _ _ 4",
		"Constant Cannon        3",
		"Linear Laser           3",
		"Sinus Shooter          3",
		"Gaussian Gun           3",
	}, "\n")

	if got != want {
		t.Errorf("RenderScreen() =\n%s\nwant\n%s", got, want)
	}
}

func TestRenderScreenTrimsBlankTail(t *testing.T) {
	s := core.NewScreen(10, 2)
	s.DrawText(0, 0, "ab")

	if got := RenderScreen(s, PlainTheme()); got != "ab\n" {
		t.Errorf("RenderScreen() = %q, want %q", got, "ab\n")
	}
}

func TestRenderScreenKeepsStyledTail(t *testing.T) {
	s := core.NewScreen(4, 1)
	s.DrawText(0, 0, "a")
	s.StyleSpan(0, 0, 4, core.Style{Bg: core.ColorRed})

	// Output may or may not carry escape codes depending on the terminal,
	// but the styled blanks must survive.
	got := RenderScreen(s, DefaultTheme())
	if !strings.Contains(got, "a   ") {
		t.Errorf("RenderScreen() = %q, want styled padding kept", got)
	}
}

func TestPlainThemeHasNoEscapes(t *testing.T) {
	theme := PlainTheme()
	st := theme.cellStyle(core.Style{Fg: core.ColorRed, Bg: core.ColorBlue, Bold: true})

	if got := st.Render("x"); got != "x" {
		t.Errorf("plain cell style rendered %q", got)
	}
	if got := theme.Ending.Render("bye"); got != "bye" {
		t.Errorf("plain ending style rendered %q", got)
	}
}

func TestNewTheme(t *testing.T) {
	if !NewTheme(true).Colors {
		t.Error("NewTheme(true) should use colors")
	}
	if NewTheme(false).Colors {
		t.Error("NewTheme(false) should not use colors")
	}
}
