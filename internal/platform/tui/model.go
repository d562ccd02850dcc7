package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/wavetap/internal/core"
	"github.com/vovakirdan/wavetap/internal/game"
	"github.com/vovakirdan/wavetap/internal/storage"
)

// Board layout constants.
const (
	cellW     = 2 // Each board cell is two characters wide
	hudHeight = 2 // Top HUD lines above the board
)

// maxFrameDelta caps the simulation step for a single frame so a suspended
// terminal doesn't replay minutes of timers on resume.
const maxFrameDelta = 250 * time.Millisecond

// GameModel is the Bubble Tea model for a wavetap session.
type GameModel struct {
	eng    *game.Engine
	screen *core.Screen
	store  *storage.Store
	config core.RuntimeConfig
	keys   *KeyMapper

	// Keyboard cursor (mouse is the primary input)
	cursorRow int
	cursorCol int

	lastFrame  time.Time
	scoreSaved bool // Whether the finished run has been recorded
	quitting   bool

	showScores bool
	scoreboard ScoreboardModel
}

// NewGameModel creates a new Bubble Tea model around a fresh engine.
func NewGameModel(eng *game.Engine, store *storage.Store, cfg core.RuntimeConfig) GameModel {
	return GameModel{
		eng:       eng,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:     store,
		config:    cfg,
		keys:      NewKeyMapper(),
		cursorRow: game.Rows / 2,
		cursorCol: game.Cols / 2,
	}
}

// Init starts the run and the frame loop.
func (m GameModel) Init() tea.Cmd {
	m.eng.Start()
	return frameCmd(m.config.FPS)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.showScores {
		return m.updateScoreboard(msg)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case FrameMsg:
		return m.handleFrame(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch action {
	case core.ActionUp:
		m.cursorRow = core.Clamp(m.cursorRow-1, 0, game.Rows-1)
	case core.ActionDown:
		m.cursorRow = core.Clamp(m.cursorRow+1, 0, game.Rows-1)
	case core.ActionLeft:
		m.cursorCol = core.Clamp(m.cursorCol-1, 0, game.Cols-1)
	case core.ActionRight:
		m.cursorCol = core.Clamp(m.cursorCol+1, 0, game.Cols-1)
	case core.ActionFire:
		m.eng.Click(m.cursorRow, m.cursorCol)
	case core.ActionPause:
		m.eng.Pause()
	case core.ActionRestart:
		m.eng.Reset()
		m.scoreSaved = false
	case core.ActionScoreboard:
		if m.store != nil {
			m.scoreboard = NewScoreboardModel(m.store, m.config.ScreenW, m.config.ScreenH)
			m.showScores = true
		}
	}

	return m, nil
}

// handleMouse translates a left click on the board into an engine tap.
func (m GameModel) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}

	board := m.boardRect()
	if !board.Contains(msg.X, msg.Y) {
		return m, nil
	}

	row := msg.Y - board.Y
	col := (msg.X - board.X) / cellW
	m.cursorRow = row
	m.cursorCol = col
	m.eng.Click(row, col)

	return m, nil
}

// handleFrame advances the engine by the elapsed wall-clock time.
func (m GameModel) handleFrame(now time.Time) (tea.Model, tea.Cmd) {
	dt := time.Second / time.Duration(max(m.config.FPS, 1))
	if !m.lastFrame.IsZero() {
		dt = min(now.Sub(m.lastFrame), maxFrameDelta)
	}
	m.lastFrame = now

	m.eng.Advance(dt)

	// Record the finished run once
	snap := m.eng.Snapshot()
	if snap.GameOver && !m.scoreSaved {
		if m.store != nil && snap.Score > 0 {
			//nolint:errcheck // Best-effort save, game continues regardless
			m.store.SaveRun(snap.Score, snap.Level)
		}
		m.scoreSaved = true
	}

	return m, frameCmd(m.config.FPS)
}

// updateScoreboard routes messages while the scoreboard view is open.
func (m GameModel) updateScoreboard(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Keep the frame loop alive so the game resumes smoothly
	if fm, ok := msg.(FrameMsg); ok {
		m.lastFrame = time.Time(fm)
		return m, frameCmd(m.config.FPS)
	}
	if ws, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = ws.Width
		m.config.ScreenH = ws.Height
		m.screen.Resize(ws.Width, ws.Height)
	}

	sb, cmd, closed := m.scoreboard.Update(msg)
	m.scoreboard = sb
	if closed {
		m.showScores = false
	}
	return m, cmd
}

// boardRect returns the board's position on screen, centered horizontally.
func (m GameModel) boardRect() core.Rect {
	w := game.Cols * cellW
	x := (m.config.ScreenW - w) / 2
	return core.NewRect(x, hudHeight+1, w, game.Rows)
}

// View renders the current state.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}
	if m.showScores {
		return m.scoreboard.View()
	}

	m.render(m.eng.Snapshot())
	return RenderScreen(m.screen)
}

// render draws a snapshot into the screen buffer.
func (m GameModel) render(snap game.Snapshot) {
	m.screen.Clear()

	requiredW := game.Cols*cellW + 2
	requiredH := game.Rows + hudHeight + 3
	if m.config.ScreenW < requiredW || m.config.ScreenH < requiredH {
		m.drawOverlay("Window too small", "Resize to continue")
		return
	}

	m.drawHUD(snap)
	m.drawBoard(snap)

	board := m.boardRect()
	help := "click/space: tap  p: pause  r: restart  tab: scores  q: quit"
	m.screen.DrawTextCentered(board.Bottom()+1, help)

	switch {
	case snap.GameOver:
		m.drawOverlay(fmt.Sprintf("Game Over - Score: %d", snap.Score), "Press R to restart")
	case snap.Paused:
		m.drawOverlay("Paused", "Press P to continue")
	}
}

// drawHUD draws the top status bar.
func (m GameModel) drawHUD(snap game.Snapshot) {
	hearts := strings.Repeat("♥", snap.Lives)
	hud := fmt.Sprintf(" Score: %d  High: %d  Level: %d  Combo: x%d  Lives: %s  Wave: %s",
		snap.Score, snap.HighScore, snap.Level, min(snap.Combo+1, 5), hearts, snap.Pattern)
	m.screen.DrawText(0, 0, hud)

	if snap.Shield {
		m.screen.DrawTextColored(len(hud)+2, 0, "[SHIELD]", core.ColorBrightCyan)
	}

	for x := range m.screen.Width() {
		m.screen.Set(x, 1, '─')
	}
}

// drawBoard draws the grid, the wave, the target and the keyboard cursor.
func (m GameModel) drawBoard(snap game.Snapshot) {
	board := m.boardRect()
	wave := waveColor(snap)

	for row := range game.Rows {
		for col := range game.Cols {
			x := board.X + col*cellW
			y := board.Y + row

			lit := snap.Grid[row][col]
			isTarget := snap.HasTarget && snap.Target.Row == row && snap.Target.Col == col
			isCursor := m.cursorRow == row && m.cursorCol == col

			glyph, pad := '·', ' '
			color := core.ColorGray
			switch {
			case isTarget:
				glyph = '◎'
				color = core.ColorBrightWhite
				if lit {
					// Lit target is the tappable moment
					glyph = '◉'
					color = core.ColorBrightYellow
				}
			case lit:
				glyph, pad = '█', '█'
				color = wave
			}
			if isCursor && !isTarget {
				color = core.ColorBrightCyan
				if !lit {
					glyph, pad = '▒', '▒'
				}
			}

			m.screen.SetCell(x, y, glyph, color)
			m.screen.SetCell(x+1, y, pad, color)
		}
	}
}

// drawOverlay draws a centered boxed two-line message.
func (m GameModel) drawOverlay(line1, line2 string) {
	w := m.screen.Width()
	h := m.screen.Height()

	boxW := max(len(line1), len(line2)) + 4
	boxH := 5
	box := core.NewRect((w-boxW)/2, (h-boxH)/2, boxW, boxH)

	for y := box.Y + 1; y < box.Bottom()-1; y++ {
		for x := box.X + 1; x < box.Right()-1; x++ {
			m.screen.Set(x, y, ' ')
		}
	}
	m.screen.DrawBox(box)
	m.screen.DrawTextCentered(box.Y+1, line1)
	m.screen.DrawTextCentered(box.Y+3, line2)
}

// saveScreenshot saves the current board rendering to a text file.
func (m GameModel) saveScreenshot() {
	m.render(m.eng.Snapshot())

	dir := filepath.Join(os.Getenv("HOME"), ".wavetap", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("wavetap_%s.txt", timestamp))

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// Run starts the Bubble Tea program for a local terminal session.
func Run(eng *game.Engine, store *storage.Store, cfg core.RuntimeConfig) error {
	model := NewGameModel(eng, store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(), // The board is click-driven
	)

	_, err := p.Run()
	return err
}
