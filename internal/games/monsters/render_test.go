package monsters

import (
	"reflect"
	"strings"
	"testing"

	"github.com/vovakirdan/monster-yard/internal/config"
	"github.com/vovakirdan/monster-yard/internal/core"
)

func renderGame(g *Game) *core.Screen {
	w, h := g.ScreenSize()
	dst := core.NewScreen(w, h)
	g.Render(dst)
	return dst
}

func TestRenderSeedYard(t *testing.T) {
	g := newTestGame([]int{0, 0, 0, 4}, nil)

	w, h := g.ScreenSize()
	if w != 26 || h != 5 {
		t.Fatalf("ScreenSize() = %dx%d, want 26x5", w, h)
	}

	dst := renderGame(g)

	if got := strings.TrimRight(dst.Row(0), " "); got != "helpless village _ _ _ 4" {
		t.Errorf("yard row = %q", got)
	}
	if got := strings.TrimRight(dst.Row(1), " "); got != "Constant Cannon        3" {
		t.Errorf("constant row = %q", got)
	}
	if got := strings.TrimRight(dst.Row(2), " "); got != "Linear Laser           3" {
		t.Errorf("linear row = %q", got)
	}
	if got := strings.TrimRight(dst.Row(3), " "); got != "Sinus Shooter          3" {
		t.Errorf("sinus row = %q", got)
	}
	if got := strings.TrimRight(dst.Row(4), " "); got != "Gaussian Gun           3" {
		t.Errorf("gaussian row = %q", got)
	}
}

func TestRenderKillMarker(t *testing.T) {
	g := newTestGame([]int{0, 1, 6}, nil)
	dst := renderGame(g)

	// cols: 17 "_", 19 "1", 21 "6"
	if got := strings.TrimRight(dst.Row(1), " "); got != "Constant Cannon    X 5" {
		t.Errorf("constant row = %q", got)
	}
	// sinus: rank 0 damaged, rank 1 healed
	if got := strings.TrimRight(dst.Row(3), " "); got != "Sinus Shooter      X 7" {
		t.Errorf("sinus row = %q", got)
	}
}

func TestRenderStyles(t *testing.T) {
	g := newTestGame([]int{0, 4, 7, 120}, nil)
	dst := renderGame(g)

	tests := []struct {
		x    int
		want core.Color
	}{
		{19, core.ColorCyan},
		{21, core.ColorGreen},
		{23, core.ColorMagenta},
	}
	for _, tc := range tests {
		if got := dst.GetCell(tc.x, 0).Style; got.Fg != tc.want || !got.Bold {
			t.Errorf("monster at x=%d style = %+v, want bold %v", tc.x, got, tc.want)
		}
	}
	if !dst.GetCell(17, 0).Style.IsPlain() {
		t.Error("empty slot should be unstyled")
	}

	// Preview rows are filled with their bar color edge to edge
	for x := 0; x < dst.Width(); x++ {
		if bg := dst.GetCell(x, 1).Style.Bg; bg != core.ColorRed {
			t.Fatalf("constant row cell %d bg = %v, want red", x, bg)
		}
	}
}

func TestPreviewSpansPushOverflowRight(t *testing.T) {
	positions := []int{9, 5, 9}
	effect := []int{-100, 100, -100}
	cols := []int{17, 19, 21}

	got := previewSpans(positions, effect, cols, 17)
	want := []span{{17, "X"}, {19, "105"}, {22, "X"}}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("previewSpans() = %+v, want %+v", got, want)
	}
}

func TestScreenSizeCoversOverflow(t *testing.T) {
	g := newTestGame([]int{9, 5, 9}, nil)
	g.level = 100

	w, _ := g.ScreenSize()
	// Sinus preview ends at 23; one padding cell
	if w != 24 {
		t.Errorf("ScreenSize() width = %d, want 24", w)
	}
}

func TestRenderNarrowVillage(t *testing.T) {
	cfg := config.Default()
	cfg.Render.VillageWidth = 4
	g := New(cfg, 1)

	dst := renderGame(g)
	if got := strings.TrimRight(dst.Row(0), " "); got != "help_ _ _ 4" {
		t.Errorf("yard row = %q", got)
	}
}
