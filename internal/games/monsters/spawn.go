package monsters

import (
	"math"
	"math/rand"
)

// DefaultDifficulty is the weight of the quadratic term in the spawn model.
const DefaultDifficulty = 0.2

// Spawner samples the hit points of newly arriving monsters.
// Monsters get stronger with the square of the player's kill count.
type Spawner struct {
	rng        *rand.Rand
	difficulty float64
}

// NewSpawner creates a spawner drawing from rng.
func NewSpawner(rng *rand.Rand, difficulty float64) *Spawner {
	return &Spawner{rng: rng, difficulty: difficulty}
}

// Monster draws one uniform value and returns floor(u * ceiling) where
// ceiling = score + difficulty*score^2 + 1. A score of 0 always yields 0.
func (s *Spawner) Monster(score int) int {
	ceiling := MonsterCeiling(score, s.difficulty)
	hp := int(math.Floor(s.rng.Float64() * ceiling))
	// u < 1 but the product can round up to an integral ceiling.
	if float64(hp) >= ceiling {
		hp--
	}
	return hp
}

// MonsterCeiling returns the exclusive upper bound of Monster for a score.
func MonsterCeiling(score int, difficulty float64) float64 {
	s := float64(score)
	return s + difficulty*s*s + 1
}
