package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/funclicker/internal/core"
	"github.com/vovakirdan/funclicker/internal/driver"
	"github.com/vovakirdan/funclicker/internal/game"
	"github.com/vovakirdan/funclicker/internal/storage"
)

// view is the screen currently shown.
type view int

const (
	viewStart view = iota
	viewPlaying // Also shows the game over box once the round ends
	viewHistory
)

// Options configures the terminal host.
type Options struct {
	Runtime      core.RuntimeConfig
	MinCellWidth int
	WarnAt       float64 // Timer turns amber at or below this many seconds
	DangerAt     float64 // Timer turns red at or below this many seconds
	Logger       *log.Logger
}

// Model is the Bubble Tea model hosting a FunClicker driver.
type Model struct {
	driver  *driver.Driver
	store   *storage.Store
	logger  *log.Logger
	opts    Options
	screen  *core.Screen
	keys    KeyMap
	help    help.Model
	history historyView

	view   view
	prev   view // Where the history view returns to
	width  int
	height int

	stats      storage.Stats
	lastResult game.Result

	notice      string
	noticeColor core.Color
	noticeTicks int

	quitting bool
}

// NewModel creates a model showing the start screen.
func NewModel(d *driver.Driver, store *storage.Store, opts Options) Model {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Runtime.TickRate <= 0 {
		opts.Runtime.TickRate = core.DefaultConfig().TickRate
	}

	w, h := opts.Runtime.ScreenW, opts.Runtime.ScreenH
	hm := help.New()
	hm.Width = w

	return Model{
		driver:  d,
		store:   store,
		logger:  opts.Logger,
		opts:    opts,
		screen:  core.NewScreen(w, h-footerHeight),
		keys:    DefaultKeyMap(),
		help:    hm,
		history: newHistoryView(w, h),
		view:    viewStart,
		width:   w,
		height:  h,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.opts.Runtime.TickInterval())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case tea.FocusMsg:
		m.driver.Resume()
		return m, nil

	case tea.BlurMsg:
		m.driver.Pause()
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.Action(msg)
	if action == core.ActionQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch m.view {
	case viewStart:
		switch action {
		case core.ActionStart:
			m.startGame(m.driver.Start())
		case core.ActionHistory:
			m.openHistory()
		}

	case viewPlaying:
		if m.driver.State().Status != game.StatusGameOver {
			return m, nil
		}
		switch action {
		case core.ActionRestart, core.ActionStart:
			m.startGame(m.driver.Restart())
		case core.ActionMenu:
			m.driver.Reset()
			m.view = viewStart
		case core.ActionHistory:
			m.openHistory()
		}

	case viewHistory:
		switch action {
		case core.ActionBack, core.ActionHistory:
			m.view = m.prev
		default:
			var cmd tea.Cmd
			m.history.table, cmd = m.history.table.Update(msg)
			return m, cmd
		}
	}

	return m, nil
}

// handleMouse resolves a left click to the tile under the pointer.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.view != viewPlaying || msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}

	st := m.driver.State()
	if !st.Playing() {
		return m, nil
	}
	l, ok := m.layout(st.BoardSize)
	if !ok {
		return m, nil
	}
	pos, ok := l.HitTest(msg.X, msg.Y)
	if !ok {
		return m, nil
	}
	tile, ok := st.TileAt(pos)
	if !ok {
		return m, nil
	}

	m.handleEvents(m.driver.Click(tile.Number))
	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.opts.Runtime.ScreenW = msg.Width
	m.opts.Runtime.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height-footerHeight)
	m.help.Width = msg.Width
	m.history.resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick advances the round timer.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.noticeTicks > 0 {
		m.noticeTicks--
		if m.noticeTicks == 0 {
			m.notice = ""
		}
	}

	m.handleEvents(m.driver.Tick())
	return m, tickCmd(m.opts.Runtime.TickInterval())
}

func (m *Model) startGame(events []driver.Event) {
	m.view = viewPlaying
	m.notice = ""
	m.noticeTicks = 0
	m.handleEvents(events)
}

func (m *Model) openHistory() {
	if err := m.history.load(m.store); err != nil {
		m.logger.Warn("could not load history", "error", err)
	}
	m.prev = m.view
	m.view = viewHistory
}

func (m *Model) handleEvents(events []driver.Event) {
	for _, e := range events {
		switch e := e.(type) {
		case driver.MisClick:
			m.setNotice(fmt.Sprintf("Wrong! Next is %d", e.Expected), core.ColorDanger)
		case driver.RoundCleared:
			m.setNotice(fmt.Sprintf("Round %d cleared!", e.Iteration), core.ColorOK)
		case driver.GameEnded:
			m.lastResult = e.Result
			m.notice = ""
			m.noticeTicks = 0
			m.saveResult(e.Result)
		}
	}
}

// setNotice shows a short message in the HUD for half a second.
func (m *Model) setNotice(text string, c core.Color) {
	m.notice = text
	m.noticeColor = c
	m.noticeTicks = max(m.opts.Runtime.TickRate/2, 1)
}

// saveResult records a finished game. Storage failures only cost the
// history entry.
func (m *Model) saveResult(r game.Result) {
	m.stats.Games++
	m.stats.TotalRounds += r.Rounds
	m.stats.Best = max(m.stats.Best, r.Score)

	if m.store == nil {
		return
	}

	saved, err := m.store.SaveResult(storage.Result{
		Score:       r.Score,
		Rounds:      r.Rounds,
		AvgPerRound: r.AvgPerRound,
	})
	if err != nil {
		m.logger.Warn("could not save result", "error", err)
		return
	}
	m.logger.Info("result saved", "game_id", saved.GameID, "score", saved.Score, "rounds", saved.Rounds)

	stats, err := m.store.Stats()
	if err != nil {
		m.logger.Warn("could not read session stats", "error", err)
		return
	}
	m.stats = stats
}

// layout computes the board placement for the current terminal size.
func (m Model) layout(boardSize int) (Layout, bool) {
	return ComputeLayout(m.width, m.height, boardSize, m.opts.MinCellWidth)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.view == viewHistory {
		return m.history.View() + "\n" + m.help.View(helpKeys{m.keys.Back, m.keys.Quit})
	}

	m.screen.Clear()
	var keys helpKeys

	switch m.view {
	case viewStart:
		drawStart(m.screen, m.stats)
		keys = helpKeys{m.keys.Start, m.keys.History, m.keys.Quit}

	case viewPlaying:
		keys = m.drawPlaying()
	}

	return RenderScreen(m.screen) + "\n" + m.help.View(keys)
}

// drawPlaying draws the board, HUD and game over box, returning the
// bindings that apply.
func (m Model) drawPlaying() helpKeys {
	st := m.driver.State()
	l, ok := m.layout(st.BoardSize)
	if !ok {
		w, h := MinSize(st.BoardSize, m.opts.MinCellWidth)
		drawTooSmall(m.screen, w, h)
		return helpKeys{m.keys.Quit}
	}

	drawTitle(m.screen)
	drawBoard(m.screen, l, st)

	h := hud{
		state:    st,
		best:     max(m.stats.Best, st.HighestClicked),
		warnAt:   m.opts.WarnAt,
		dangerAt: m.opts.DangerAt,
		notice:   m.notice,
		noticeC:  m.noticeColor,
	}
	if m.driver.Paused() && st.Playing() {
		h.notice, h.noticeC = "Paused", core.ColorMuted
	}
	if l.Stacked {
		drawStackedHUD(m.screen, l, h)
	} else {
		drawSidebar(m.screen, l, h)
	}

	if st.Status == game.StatusGameOver {
		drawGameOver(m.screen, l, m.lastResult, m.stats.Best)
		return helpKeys{m.keys.Restart, m.keys.Menu, m.keys.History, m.keys.Quit}
	}
	return helpKeys{m.keys.Quit}
}

// Run starts the Bubble Tea program with the given driver.
func Run(d *driver.Driver, store *storage.Store, opts Options) error {
	model := NewModel(d, store, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Tile clicks
		tea.WithReportFocus(),     // Pause the timer while unfocused
	)

	_, err := p.Run()
	return err
}
