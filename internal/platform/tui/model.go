// Package tui provides the Bubble Tea integration for Monster Yard.
// It handles the terminal UI loop, the action prompt and the end screens.
package tui

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/monster-yard/internal/core"
	"github.com/vovakirdan/monster-yard/internal/games/monsters"
	"github.com/vovakirdan/monster-yard/internal/highscore"
	"github.com/vovakirdan/monster-yard/internal/storage"
)

// Phase is the screen the model is showing.
type Phase int

const (
	PhasePlaying   Phase = iota // action prompt
	PhaseNameEntry              // ranked player types a name
	PhaseResults                // game over with the highscore list
	PhaseDeclined               // ranked player skipped the name entry
	PhaseFarewell               // player fled mid-game
)

var phaseNames = [...]string{"playing", "name-entry", "results", "declined", "farewell"}

func (p Phase) String() string {
	if p < 0 || int(p) >= len(phaseNames) {
		return fmt.Sprintf("Phase(%d)", int(p))
	}
	return phaseNames[p]
}

const (
	nameCharLimit = 32
	hintLine      = "%s: increase range, %s: upgrade weapon level"
)

// Options are the collaborators of a game session. Nil stores disable
// the corresponding persistence.
type Options struct {
	Highscores *highscore.File
	Store      *storage.Store
	Theme      Theme
	Logger     *log.Logger
}

// Model is the Bubble Tea model for one Monster Yard session.
type Model struct {
	game   *monsters.Game
	screen *core.Screen
	opts   Options
	keys   KeyMap
	help   help.Model

	action textinput.Model
	name   textinput.Model

	phase   Phase
	invalid bool
	notice  string

	// Filled in when the game ends
	gameID int64
	rank   int
	scores []highscore.Entry
}

// NewModel creates a Bubble Tea model playing game.
func NewModel(game *monsters.Game, opts Options) Model {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	action := textinput.New()
	action.Prompt = " action> "
	action.CharLimit = 16
	action.Focus()

	name := textinput.New()
	name.Prompt = "Enter your name > "
	name.CharLimit = nameCharLimit

	h := help.New()
	if !opts.Theme.Colors {
		plain := lipgloss.NewStyle()
		h.Styles = help.Styles{
			Ellipsis:       plain,
			ShortKey:       plain,
			ShortDesc:      plain,
			ShortSeparator: plain,
			FullKey:        plain,
			FullDesc:       plain,
			FullSeparator:  plain,
		}
	}

	return Model{
		game:   game,
		screen: core.NewScreen(game.ScreenSize()),
		opts:   opts,
		keys:   DefaultKeyMap(),
		help:   h,
		action: action,
		name:   name,
		rank:   highscore.NotRanked,
	}
}

// Init starts the cursor blinking.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil
	}

	var cmd tea.Cmd
	switch m.phase {
	case PhasePlaying:
		m.action, cmd = m.action.Update(msg)
	case PhaseNameEntry:
		m.name, cmd = m.name.Update(msg)
	}
	return m, cmd
}

// handleKey processes keyboard input for the current phase.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.phase {
	case PhasePlaying:
		return m.handlePlayingKey(msg)
	case PhaseNameEntry:
		return m.handleNameKey(msg)
	}
	return m, tea.Quit
}

func (m Model) handlePlayingKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.abandon()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Submit):
		line := strings.ToLower(m.action.Value())
		m.action.Reset()
		return m.act(firstRune(line))
	}

	var cmd tea.Cmd
	m.action, cmd = m.action.Update(msg)
	return m, cmd
}

// act resolves one typed action.
func (m Model) act(r rune) (tea.Model, tea.Cmd) {
	outcome := m.game.Apply(r)
	m.opts.Logger.Debug("turn resolved",
		"input", string(r),
		"outcome", outcome,
		"score", m.game.Score(),
		"level", m.game.Level(),
		"yard", m.game.Positions(),
	)

	switch outcome {
	case monsters.OutcomeInvalid:
		m.invalid = true
	case monsters.OutcomeContinue:
		m.invalid = false
	case monsters.OutcomeGameOver:
		return m.finish()
	}
	return m, nil
}

// finish records the lost game and decides whether the player makes the
// highscore list.
func (m Model) finish() (tea.Model, tea.Cmd) {
	m.action.Blur()
	m.gameID = m.record(storage.EndOverrun)

	if m.opts.Highscores != nil {
		entries, err := m.opts.Highscores.Load()
		if err != nil {
			m.opts.Logger.Error("could not load highscores", "error", err)
			m.notice = "Highscores could not be read."
		}
		m.scores = entries
		m.rank = highscore.Rank(entries, m.game.Score())
	}

	if m.rank == highscore.NotRanked || m.notice != "" {
		m.phase = PhaseResults
		return m, tea.Quit
	}

	m.phase = PhaseNameEntry
	cmd := m.name.Focus()
	return m, cmd
}

func (m Model) handleNameKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.name.Blur()
		m.phase = PhaseDeclined
		return m, tea.Quit

	case key.Matches(msg, m.keys.Submit):
		m.name.Blur()
		m.saveName(strings.TrimSpace(m.name.Value()))
		m.phase = PhaseResults
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.name, cmd = m.name.Update(msg)
	return m, cmd
}

// saveName writes the ranked score to the highscore file and the history.
func (m *Model) saveName(name string) {
	entries := highscore.Insert(m.scores, m.game.Score(), name)
	if err := m.opts.Highscores.Save(entries); err != nil {
		m.opts.Logger.Error("could not save highscores", "path", m.opts.Highscores.Path, "error", err)
		m.notice = "Your score could not be saved."
	}
	m.scores = entries

	if m.opts.Store != nil && m.gameID != 0 {
		if err := m.opts.Store.SetPlayer(m.gameID, name); err != nil {
			m.opts.Logger.Warn("could not name history entry", "error", err)
		}
	}
}

// abandon ends a game the player walked away from.
func (m *Model) abandon() {
	m.action.Blur()
	m.gameID = m.record(storage.EndAbandoned)
	m.phase = PhaseFarewell
}

// record stores the finished game in the history. Failures are logged only.
func (m *Model) record(reason storage.EndReason) int64 {
	if m.opts.Store == nil {
		return 0
	}

	snap := m.game.Snapshot()
	id, err := m.opts.Store.SaveGame(storage.GameRecord{
		Score:      snap.Score,
		Level:      snap.Level,
		Turns:      snap.Turns,
		YardLength: len(snap.Yard),
		Seed:       snap.Seed,
		EndReason:  reason,
	})
	if err != nil {
		m.opts.Logger.Warn("could not record game", "error", err)
		return 0
	}
	m.opts.Logger.Info("game recorded", "id", id, "score", snap.Score, "reason", reason)
	return id
}

// Phase returns the current screen.
func (m Model) Phase() Phase {
	return m.phase
}

// Highscores returns the highscore list as last loaded or saved.
func (m Model) Highscores() []highscore.Entry {
	return m.scores
}

// View renders the current phase.
func (m Model) View() string {
	switch m.phase {
	case PhasePlaying:
		return m.playingView()
	case PhaseFarewell:
		return m.farewellView()
	}
	return m.gameOverView()
}

func (m Model) playingView() string {
	t := m.opts.Theme
	var b strings.Builder

	b.WriteString(t.Narration.Render(monsters.Narration(m.game.Score(), m.invalid)))
	b.WriteString("\n\n")

	m.screen.Resize(m.game.ScreenSize())
	m.game.Render(m.screen)
	b.WriteString(RenderScreen(m.screen, t))
	b.WriteString("\n")

	fmt.Fprintf(&b, hintLine, t.Key.Render(string(monsters.KeyRange)), t.Key.Render(string(monsters.KeyUpgrade)))
	b.WriteString("\n")

	b.WriteString(m.prompt())
	b.WriteString(m.action.View())
	b.WriteString("\n\n")

	b.WriteString(t.Help.Render(m.help.View(m.keys)))
	return b.String()
}

// prompt renders the weapon level and kill counter in front of the input.
func (m Model) prompt() string {
	t := m.opts.Theme
	level := fmt.Sprintf("weapon lvl %d ", m.game.Level())
	kills := fmt.Sprintf(" %d killed ", m.game.Score())
	if !t.Colors {
		return level + "/" + kills + "/"
	}
	return t.PromptLevel.Render(level) + t.PromptKills.Render(kills)
}

func (m Model) gameOverView() string {
	t := m.opts.Theme
	var b strings.Builder

	b.WriteString(t.Banner.Render(strings.Join(monsters.GameOverBanner, "\n")))
	b.WriteString("\n\n")
	for _, line := range monsters.GameOverLines(m.game.Score()) {
		b.WriteString(t.Ending.Render(line))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	switch m.phase {
	case PhaseNameEntry:
		if m.rank == 0 {
			b.WriteString("Wow! That's a new highscore!\n")
		} else {
			fmt.Fprintf(&b, "That would be rank #%d in the highscores list!\n", m.rank+1)
		}
		b.WriteString(m.name.View())
		b.WriteString("\n")

	case PhaseDeclined:
		b.WriteString("If you don't want to, that's alright.\n")
		b.WriteString("See you again soon!\n")

	case PhaseResults:
		if m.notice != "" {
			b.WriteString(t.Notice.Render(m.notice))
			b.WriteString("\n")
		}
		if m.opts.Highscores == nil {
			break
		}
		if m.rank == highscore.NotRanked {
			b.WriteString("Play again if you want to try to get on this highscores list:\n")
		} else if m.notice == "" {
			b.WriteString("Doesn't this look beautiful?\n")
		}
		b.WriteString(RenderHighscores(m.scores, t))
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) farewellView() string {
	t := m.opts.Theme
	var b strings.Builder
	for _, line := range monsters.FarewellLines(m.game.Score()) {
		b.WriteString(t.Ending.Render(line))
		b.WriteString("\n")
	}
	return b.String()
}

// firstRune returns the first character of s, or utf8.RuneError for an
// empty line so that it resolves as an invalid action.
func firstRune(s string) rune {
	r, _ := utf8.DecodeRuneInString(s)
	return r
}

// Run plays one game in the terminal. The final screen stays on the
// terminal after the program exits.
func Run(game *monsters.Game, opts Options) error {
	m := NewModel(game, opts)
	p := tea.NewProgram(m)

	final, err := p.Run()
	if err != nil {
		return err
	}
	if fm, ok := final.(Model); ok {
		m.opts.Logger.Debug("session ended",
			"phase", fm.Phase(),
			"score", fm.game.Score(),
			"highscores", len(fm.Highscores()))
	}
	return nil
}
