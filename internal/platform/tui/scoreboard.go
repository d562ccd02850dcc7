package tui

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/wavetap/internal/storage"
)

// maxScores is the number of runs loaded into the scoreboard.
const maxScores = 100

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Back key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Back, k.Quit},
	}
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
		Back: key.NewBinding(
			key.WithKeys("tab", "esc", "b"),
			key.WithHelp("tab/esc", "back to game"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardModel shows the persisted run history in a table.
type ScoreboardModel struct {
	table  table.Model
	help   help.Model
	keys   ScoreboardKeyMap
	stats  *storage.Stats
	width  int
	height int
	err    error
}

var scoreboardTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))

// NewScoreboardModel loads the run history and builds the table.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		help:   help.New(),
		keys:   DefaultScoreboardKeyMap(),
		width:  width,
		height: height,
	}

	runs, err := store.TopRuns(maxScores)
	if err != nil {
		m.err = err
		return m
	}
	m.stats, _ = store.GetStats() // Stats are decoration; ignore errors

	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Score", Width: 10},
		{Title: "Level", Width: 7},
		{Title: "Date", Width: 18},
	}

	rows := make([]table.Row, 0, len(runs))
	for i, run := range runs {
		rows = append(rows, table.Row{
			strconv.Itoa(i + 1),
			strconv.Itoa(run.Score),
			strconv.Itoa(run.Level),
			run.CreatedAt.Format("2006-01-02 15:04"),
		})
	}

	tableHeight := max(height-8, 3)
	m.table = table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(tableHeight),
	)

	return m
}

// Update handles scoreboard input. The third return value reports whether
// the view was closed.
func (m ScoreboardModel) Update(msg tea.Msg) (ScoreboardModel, tea.Cmd, bool) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Back):
			return m, nil, true
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit, false
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table.SetHeight(max(msg.Height-8, 3))
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd, false
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.err != nil {
		return fmt.Sprintf("\n  Could not load scores: %v\n\n  Press Tab to return.\n", m.err)
	}

	title := scoreboardTitleStyle.Render(" High Scores ")

	statsLine := ""
	if m.stats != nil && m.stats.RunCount > 0 {
		statsLine = fmt.Sprintf(" %d runs  best %d  avg %.0f  deepest level %d",
			m.stats.RunCount, m.stats.HighScore, m.stats.AvgScore, m.stats.BestLevel)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		"",
		title,
		statsLine,
		m.table.View(),
		"",
		" "+m.help.View(m.keys),
	)
}
