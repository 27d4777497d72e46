// Package monsters implements Monster Yard: monsters queue up in a line in
// front of a village and the player fires weapons with different damage
// profiles at them. Every turn the line advances by one slot; a live monster
// leaving the front of the line ends the game.
package monsters

import (
	"math/rand"

	"github.com/vovakirdan/monster-yard/internal/config"
	"github.com/vovakirdan/monster-yard/internal/core"
)

// Outcome is the result of resolving one player action.
type Outcome int

const (
	OutcomeContinue Outcome = iota // turn resolved, game goes on
	OutcomeInvalid                 // input rejected, no turn was taken
	OutcomeGameOver                // a monster reached the village
)

// String returns a human-readable name for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeContinue:
		return "Continue"
	case OutcomeInvalid:
		return "Invalid"
	case OutcomeGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// Game holds the state of one Monster Yard session.
type Game struct {
	cfg     config.Config
	seed    int64
	spawner *Spawner
	tiers   []tier

	yard  *Yard
	score int
	level int
	turns int
	over  bool
}

// tier is a parsed config.HPTier.
type tier struct {
	below int
	color core.Color
}

// New creates a game seeded from cfg. The seed drives monster spawning only.
func New(cfg config.Config, seed int64) *Game {
	g := &Game{cfg: cfg}
	for _, t := range cfg.Render.Tiers {
		c, _ := core.ColorByName(t.Color)
		g.tiers = append(g.tiers, tier{below: t.Below, color: c})
	}
	g.Reset(seed)
	return g
}

// Reset starts a fresh game with the given seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.spawner = NewSpawner(rand.New(rand.NewSource(seed)), g.cfg.Spawn.Difficulty)
	g.yard = NewYard(g.cfg.Spawn.SeedYard)
	g.score = 0
	g.level = max(1, g.cfg.Weapons.StartLevel)
	g.turns = 0
	g.over = false
}

// Seed returns the seed the current game was started with.
func (g *Game) Seed() int64 {
	return g.seed
}

// Positions returns a copy of the yard, village side first.
func (g *Game) Positions() []int {
	return g.yard.Positions()
}

// Score returns the number of monsters killed.
func (g *Game) Score() int {
	return g.score
}

// Level returns the current weapon level.
func (g *Game) Level() int {
	return g.level
}

// Turns returns the number of resolved turns.
func (g *Game) Turns() int {
	return g.turns
}

// Over reports whether a monster has reached the village.
func (g *Game) Over() bool {
	return g.over
}

// Preview returns the effect w would have on the current yard.
// Returns nil for an unknown weapon.
func (g *Game) Preview(w Weapon) []int {
	effect, err := Effect(g.yard.view(), g.level, w)
	if err != nil {
		return nil
	}
	return effect
}

// Apply parses an input character and resolves it as one turn.
func (g *Game) Apply(key rune) Outcome {
	if g.over {
		return OutcomeGameOver
	}
	action, err := ParseAction(key)
	if err != nil {
		return OutcomeInvalid
	}
	return g.Resolve(action)
}

// Resolve plays one turn. Every accepted action ends with the yard advancing
// one slot; rejected actions leave the state untouched.
func (g *Game) Resolve(a Action) Outcome {
	if g.over {
		return OutcomeGameOver
	}

	switch a.Kind {
	case ActionRange:
		g.yard.Push(g.spawner.Monster(g.score))
	case ActionUpgrade:
		g.level++
	case ActionFire:
		if !a.Weapon.Valid() || !g.fire(a.Weapon) {
			return OutcomeInvalid
		}
	default:
		return OutcomeInvalid
	}

	g.turns++

	// Spawn uses the score after this turn's kills.
	if front := g.yard.Advance(g.spawner.Monster(g.score)); front != 0 {
		g.over = true
		return OutcomeGameOver
	}
	return OutcomeContinue
}

// fire applies w to the yard and counts kills.
// Returns false without touching state if w is not a weapon.
func (g *Game) fire(w Weapon) bool {
	effect, err := Effect(g.yard.view(), g.level, w)
	if err != nil {
		return false
	}

	for i, delta := range effect {
		hp := g.yard.At(i)
		next := max(0, hp+delta)
		if hp > 0 && next <= 0 {
			g.score++
		}
		g.yard.Set(i, next)
	}
	return true
}
