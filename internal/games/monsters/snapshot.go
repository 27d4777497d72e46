package monsters

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying  GameStateType = "playing"
	StateGameOver GameStateType = "game_over"
)

// Snapshot captures the complete game state for tests and history records.
type Snapshot struct {
	Seed  int64
	Turns int
	Score int
	Level int
	Yard  []int
	State GameStateType
}

// Snapshot returns a copy of the current game state.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	if g.over {
		state = StateGameOver
	}

	return Snapshot{
		Seed:  g.seed,
		Turns: g.turns,
		Score: g.score,
		Level: g.level,
		Yard:  g.yard.Positions(),
		State: state,
	}
}
