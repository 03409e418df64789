package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mkarpenko/snake-tui/internal/core"
	"github.com/mkarpenko/snake-tui/internal/storage"
)

const maxScoreRows = 100 // Max scores to load

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Quit}}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c", "x"),
			key.WithHelp("q", "quit"),
		),
	}
}

var (
	scoreboardTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	scoreboardBestStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	scoreboardEmptyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Italic(true)
)

// ScoreboardModel is the Bubble Tea model for the high-score screen.
type ScoreboardModel struct {
	title   string
	table   table.Model
	help    help.Model
	keys    ScoreboardKeyMap
	best    int
	empty   bool
	loadErr error
}

// NewScoreboardModel loads scores for the game and builds the table.
func NewScoreboardModel(store *storage.Store, gameID, title string) ScoreboardModel {
	m := ScoreboardModel{
		title: title,
		help:  help.New(),
		keys:  DefaultScoreboardKeyMap(),
	}

	entries, err := store.TopScores(gameID, maxScoreRows)
	if err != nil {
		m.loadErr = err
		return m
	}
	if len(entries) == 0 {
		m.empty = true
		return m
	}
	m.best = entries[0].Score

	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Score", Width: 10},
		{Title: "Date", Width: 18},
	}
	rows := make([]table.Row, len(entries))
	for i, e := range entries {
		rows[i] = table.Row{
			fmt.Sprintf("%d", i+1),
			fmt.Sprintf("%d", e.Score),
			e.CreatedAt.Format("2006-01-02 15:04"),
		}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(core.Clamp(len(rows), 3, 12)),
	)
	m.table = t
	return m
}

// Init implements tea.Model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles scrolling and quitting.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if key.Matches(keyMsg, m.keys.Quit) {
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	header := scoreboardTitleStyle.Render(fmt.Sprintf("High Scores - %s", m.title))

	switch {
	case m.loadErr != nil:
		return fmt.Sprintf("%s\n\ncould not load scores: %v\n", header, m.loadErr)
	case m.empty:
		return header + "\n\n" + scoreboardEmptyStyle.Render("No scores recorded yet.") + "\n"
	}

	best := scoreboardBestStyle.Render(fmt.Sprintf("Best: %d", m.best))
	return fmt.Sprintf("%s\n\n%s\n\n%s\n%s\n", header, m.table.View(), best, m.help.View(m.keys))
}

// RunScoreboard shows the interactive high-score table.
func RunScoreboard(store *storage.Store, gameID, title string) error {
	p := tea.NewProgram(NewScoreboardModel(store, gameID, title))
	_, err := p.Run()
	return err
}
