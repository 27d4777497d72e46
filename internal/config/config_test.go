package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

// isolate points HOME at an empty directory and runs from another one so the
// user and local config files do not leak into tests.
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	{
		dir := t.TempDir()
		wd, err := os.Getwd()
		if err != nil {
			t.Fatal(err)
		}
		if err := os.Chdir(dir); err != nil {
			t.Fatal(err)
		}
		t.Cleanup(func() { _ = os.Chdir(wd) })
	}
}

func TestEmbeddedDefaultMatchesDefault(t *testing.T) {
	got := embeddedDefault()
	want := Default()

	if !reflect.DeepEqual(got, want) {
		t.Errorf("embedded defaults differ from Default():\n got  %+v\n want %+v", got, want)
	}
}

func TestLoadFallsBackToDefaults(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Spawn.Difficulty != 0.2 {
		t.Errorf("difficulty = %g, expected 0.2", cfg.Spawn.Difficulty)
	}
	if !reflect.DeepEqual(cfg.Spawn.SeedYard, []int{0, 0, 0, 4}) {
		t.Errorf("seed yard = %v, expected [0 0 0 4]", cfg.Spawn.SeedYard)
	}
	if cfg.Weapons.StartLevel != 1 {
		t.Errorf("start level = %d, expected 1", cfg.Weapons.StartLevel)
	}
	if cfg.Files.Highscores != "monsters_highscores.txt" {
		t.Errorf("highscores = %q", cfg.Files.Highscores)
	}
	if strings.HasPrefix(cfg.Files.History, "~") {
		t.Errorf("history path should be expanded, got %q", cfg.Files.History)
	}
}

func TestLoadCustomPathOverlaysDefaults(t *testing.T) {
	isolate(t)

	path := filepath.Join(t.TempDir(), "custom.yaml")
	doc := "spawn:\n  difficulty: 0.5\nweapons:\n  start_level: 3\n"
	if err := os.WriteFile(path, []byte(doc), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Spawn.Difficulty != 0.5 {
		t.Errorf("difficulty = %g, expected 0.5", cfg.Spawn.Difficulty)
	}
	if cfg.Weapons.StartLevel != 3 {
		t.Errorf("start level = %d, expected 3", cfg.Weapons.StartLevel)
	}
	// Untouched sections keep their defaults
	if cfg.Render.VillageWidth != 17 {
		t.Errorf("village width = %d, expected 17", cfg.Render.VillageWidth)
	}
	if len(cfg.Render.Tiers) != 5 {
		t.Errorf("expected 5 default tiers, got %d", len(cfg.Render.Tiers))
	}
}

func TestLoadLocalConfig(t *testing.T) {
	isolate(t)

	if err := os.MkdirAll("configs", 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(LocalPath, []byte("spawn:\n  seed_yard: [0, 2]\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if !reflect.DeepEqual(cfg.Spawn.SeedYard, []int{0, 2}) {
		t.Errorf("seed yard = %v, expected [0 2]", cfg.Spawn.SeedYard)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	isolate(t)

	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Load() with a missing custom path should fail")
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	isolate(t)
	t.Setenv("MONSTERS_DIFFICULTY", "1.5")
	t.Setenv("MONSTERS_SEED", "99")
	t.Setenv("MONSTERS_NO_COLORS", "true")
	t.Setenv("MONSTERS_HIGHSCORES", "/tmp/scores.txt")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Spawn.Difficulty != 1.5 {
		t.Errorf("difficulty = %g, expected 1.5", cfg.Spawn.Difficulty)
	}
	if cfg.Spawn.Seed != 99 {
		t.Errorf("seed = %d, expected 99", cfg.Spawn.Seed)
	}
	if !cfg.Render.NoColors {
		t.Error("MONSTERS_NO_COLORS should disable colors")
	}
	if cfg.Files.Highscores != "/tmp/scores.txt" {
		t.Errorf("highscores = %q", cfg.Files.Highscores)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"defaults", func(*Config) {}, ""},
		{"negative difficulty", func(c *Config) { c.Spawn.Difficulty = -1 }, "spawn.difficulty"},
		{"empty yard", func(c *Config) { c.Spawn.SeedYard = nil }, "seed_yard"},
		{"negative slot", func(c *Config) { c.Spawn.SeedYard = []int{0, -2} }, "seed_yard[1]"},
		{"zero level", func(c *Config) { c.Weapons.StartLevel = 0 }, "start_level"},
		{"zero width", func(c *Config) { c.Render.VillageWidth = 0 }, "village_width"},
		{"bad color", func(c *Config) { c.Render.Tiers[0].Color = "chartreuse" }, "chartreuse"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			err := cfg.Validate()

			if tc.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() = %v, expected nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("Validate() = %v, expected error mentioning %q", err, tc.wantErr)
			}
		})
	}
}

func TestExpandHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := ExpandHome("~/.monsters/history.db")
	if err != nil {
		t.Fatalf("ExpandHome() failed: %v", err)
	}
	if want := filepath.Join(home, ".monsters", "history.db"); got != want {
		t.Errorf("ExpandHome() = %q, expected %q", got, want)
	}

	if got, _ := ExpandHome("relative/file"); got != "relative/file" {
		t.Errorf("relative paths should be untouched, got %q", got)
	}
}

func TestMarshal(t *testing.T) {
	data, err := Marshal(Default())
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	if !strings.Contains(string(data), "difficulty: 0.2") {
		t.Errorf("marshalled config missing difficulty:\n%s", data)
	}
}
