package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mkarpenko/snake-tui/internal/core"
	"github.com/mkarpenko/snake-tui/internal/snake"
	"github.com/mkarpenko/snake-tui/internal/storage"
)

// Model is the Bubble Tea model for running a snake session.
// One logical tick per TickMsg: the game consumes at most one buffered
// input event, advances, and the next tick is scheduled with the delay the
// game's speed curve currently prescribes.
type Model struct {
	game       *snake.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	keymap     *KeyMapper
	inputFrame core.InputFrame
	gameState  core.GameState
	quitting   bool
	scoreSaved bool // Whether score has been saved for current game over
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game *snake.Game, store *storage.Store, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	game.Reset(cfg)

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		keymap:     NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
		gameState:  game.State(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.game.TickDelay())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey buffers keyboard input for the next tick. A quit key pressed on
// the game-over screen terminates the session immediately; during play it is
// delivered to the game, which ends the session with the user-quit outcome.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	isQuit := m.keymap.MapKeyToFrame(msg, &m.inputFrame)
	if isQuit && m.gameState.Over {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.game.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick runs one game simulation tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	wasOver := m.gameState.Over

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if m.gameState.Over && !wasOver {
		m.saveScore()
	}
	if !m.gameState.Over {
		m.scoreSaved = false
	}

	m.inputFrame.Clear()

	return m, tickCmd(m.game.TickDelay())
}

// saveScore persists the final score once per game over.
func (m *Model) saveScore() {
	if m.scoreSaved || m.gameState.Score <= 0 || m.store == nil {
		return
	}
	//nolint:errcheck // Best-effort save, session continues regardless
	m.store.SaveScore(m.game.ID(), m.gameState.Score)
	m.scoreSaved = true
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program with the given model.
func Run(game *snake.Game, store *storage.Store, cfg core.RuntimeConfig) error {
	model := NewModel(game, store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
