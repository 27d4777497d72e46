package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/monster-yard/internal/highscore"
	"github.com/vovakirdan/monster-yard/internal/storage"
)

func TestRenderHighscoresEmpty(t *testing.T) {
	if got := RenderHighscores(nil, PlainTheme()); got != noHighscores {
		t.Errorf("RenderHighscores(nil) = %q", got)
	}
}

func TestRenderHighscores(t *testing.T) {
	entries := []highscore.Entry{{Score: 120, Name: "alice"}, {Score: 7, Name: "bob"}}
	got := RenderHighscores(entries, PlainTheme())

	for _, want := range []string{"Score", "Name", "120", "alice", "bob"} {
		if !strings.Contains(got, want) {
			t.Errorf("table missing %q:\n%s", want, got)
		}
	}
	if strings.Index(got, "alice") > strings.Index(got, "bob") {
		t.Errorf("entries out of order:\n%s", got)
	}
	if strings.Contains(got, "\x1b[") {
		t.Errorf("plain table contains escape codes:\n%s", got)
	}
}

func TestRenderHistoryEmpty(t *testing.T) {
	got := RenderHistory(nil, &storage.Stats{}, PlainTheme())
	if !strings.Contains(got, "No games recorded yet.") {
		t.Errorf("RenderHistory(nil) = %q", got)
	}
}

func TestRenderHistory(t *testing.T) {
	played := time.Date(2026, 3, 1, 18, 30, 0, 0, time.UTC)
	games := []storage.GameRecord{
		{Player: "ann", Score: 12, Level: 2, Turns: 40, YardLength: 7, EndReason: storage.EndOverrun, CreatedAt: played},
		{Score: 3, Level: 1, Turns: 9, YardLength: 4, EndReason: storage.EndAbandoned, CreatedAt: played},
	}
	stats := &storage.Stats{GamesCount: 2, BestScore: 12, AvgScore: 7.5, TotalKills: 15, LastPlayed: played}

	got := RenderHistory(games, stats, PlainTheme())

	for _, want := range []string{
		"GAME HISTORY",
		"ann",
		"overrun",
		"abandoned",
		"Mar 01 18:30",
		"Games: 2  Best: 12  Average: 7.5  Monsters killed: 15",
		"Last played: Mar 01 2026 18:30",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("history missing %q:\n%s", want, got)
		}
	}
}
