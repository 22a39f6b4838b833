package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/funclicker/internal/board"
	"github.com/vovakirdan/funclicker/internal/core"
	"github.com/vovakirdan/funclicker/internal/driver"
	"github.com/vovakirdan/funclicker/internal/game"
	"github.com/vovakirdan/funclicker/internal/storage"
)

func storageStats(games, best int) storage.Stats {
	return storage.Stats{Games: games, Best: best}
}

func newTestModel(t *testing.T, store *storage.Store) (Model, *core.ManualClock) {
	t.Helper()
	clock := core.NewManualClock(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	d := driver.New(board.NewGenerator(board.NewSource(7)), clock, driver.Options{})
	m := NewModel(d, store, Options{
		Runtime:      core.DefaultConfig(),
		MinCellWidth: 4,
		WarnAt:       1.5,
		DangerAt:     1.0,
	})
	return m, clock
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	out, ok := next.(Model)
	if !ok {
		t.Fatalf("Update() returned %T, expected Model", next)
	}
	return out
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// clickTile sends a left click on the tile carrying number.
func clickTile(t *testing.T, m Model, number int) Model {
	t.Helper()
	st := m.driver.State()
	l, ok := m.layout(st.BoardSize)
	if !ok {
		t.Fatal("board does not fit the test terminal")
	}
	for _, tile := range st.VisibleTiles() {
		if tile.Number == number {
			r := l.CellRect(tile.Position())
			return update(t, m, tea.MouseMsg{X: r.X, Y: r.Y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
		}
	}
	t.Fatalf("tile %d is not on the board", number)
	return m
}

// expire runs the clock past the round's time limit.
func expire(t *testing.T, m Model, clock *core.ManualClock) Model {
	t.Helper()
	m = update(t, m, TickMsg{})
	clock.Advance(10 * time.Second)
	return update(t, m, TickMsg{})
}

func TestModelStartScreen(t *testing.T) {
	m, _ := newTestModel(t, nil)

	if m.view != viewStart {
		t.Fatalf("view = %v, expected start", m.view)
	}
	m.View()
	if out := m.screen.String(); !strings.Contains(out, "Press enter to start") {
		t.Errorf("start screen missing prompt:\n%s", out)
	}
	if m.driver.State().Status != game.StatusIdle {
		t.Error("driver should stay idle on the start screen")
	}
}

func TestModelStartAndClick(t *testing.T) {
	m, _ := newTestModel(t, nil)
	m = update(t, m, keyMsg("enter"))

	if m.view != viewPlaying {
		t.Fatalf("view = %v, expected playing", m.view)
	}
	if st := m.driver.State(); st.Status != game.StatusPlaying || len(st.Tiles) != 1 {
		t.Fatalf("state = %+v, expected round 1 with one tile", st)
	}

	m = clickTile(t, m, 1)
	m = update(t, m, TickMsg{})

	st := m.driver.State()
	if st.HighestClicked != 1 {
		t.Errorf("HighestClicked = %d, expected 1", st.HighestClicked)
	}
	if st.Iteration != 2 {
		t.Errorf("Iteration = %d, expected 2", st.Iteration)
	}
}

func TestModelClickOutsideTiles(t *testing.T) {
	m, _ := newTestModel(t, nil)
	m = update(t, m, keyMsg("enter"))

	// Border, sidebar and right-button clicks are ignored
	for _, msg := range []tea.MouseMsg{
		{X: 0, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft},
		{X: 60, Y: 5, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft},
		{X: 8, Y: 2, Action: tea.MouseActionPress, Button: tea.MouseButtonRight},
	} {
		m = update(t, m, msg)
	}

	st := m.driver.State()
	tile := st.Tiles[0]
	empty := game.Position{Row: (tile.Row + 1) % st.BoardSize, Col: tile.Col}
	l, _ := m.layout(st.BoardSize)
	r := l.CellRect(empty)
	m = update(t, m, tea.MouseMsg{X: r.X, Y: r.Y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})

	if got := m.driver.State(); got.HighestClicked != 0 || len(got.VisibleTiles()) != 1 {
		t.Errorf("state changed by a miss: %+v", got)
	}
}

func TestModelIgnoresKeysWhilePlaying(t *testing.T) {
	m, _ := newTestModel(t, nil)
	m = update(t, m, keyMsg("enter"))
	m = update(t, m, keyMsg("m"))
	m = update(t, m, keyMsg("r"))
	m = update(t, m, keyMsg("tab"))

	if m.view != viewPlaying {
		t.Errorf("view = %v, expected playing", m.view)
	}
	if st := m.driver.State(); st.Status != game.StatusPlaying {
		t.Errorf("Status = %v, expected playing", st.Status)
	}
}

func TestModelFocusPausesTimer(t *testing.T) {
	m, clock := newTestModel(t, nil)
	m = update(t, m, keyMsg("enter"))
	m = update(t, m, TickMsg{})

	m = update(t, m, tea.BlurMsg{})
	if !m.driver.Paused() {
		t.Fatal("driver not paused after blur")
	}
	clock.Advance(time.Minute)
	m = update(t, m, TickMsg{})

	m = update(t, m, tea.FocusMsg{})
	if m.driver.Paused() {
		t.Fatal("driver still paused after focus")
	}
	m = update(t, m, TickMsg{})

	if st := m.driver.State(); st.Status != game.StatusPlaying || st.TimeRemaining != 4.0 {
		t.Errorf("state after unfocused minute = %v with %vs left, expected playing with 4s", st.Status, st.TimeRemaining)
	}
}

func TestModelGameOverFlow(t *testing.T) {
	store, err := storage.Open()
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	defer store.Close()

	m, clock := newTestModel(t, store)
	m = update(t, m, keyMsg("enter"))
	m = clickTile(t, m, 1)
	m = update(t, m, TickMsg{})
	m = expire(t, m, clock)

	if st := m.driver.State(); st.Status != game.StatusGameOver {
		t.Fatalf("Status = %v, expected gameover", st.Status)
	}
	if m.lastResult.Score != 1 || m.lastResult.Rounds != 2 {
		t.Errorf("lastResult = %+v, expected score 1 over 2 rounds", m.lastResult)
	}
	if m.stats.Games != 1 || m.stats.Best != 1 {
		t.Errorf("stats = %+v, expected one game with best 1", m.stats)
	}

	m.View()
	out := m.screen.String()
	for _, want := range []string{"GAME OVER", "Keep practicing!"} {
		if !strings.Contains(out, want) {
			t.Errorf("game over screen missing %q", want)
		}
	}

	recent, err := store.Recent(10)
	if err != nil {
		t.Fatalf("Recent() failed: %v", err)
	}
	if len(recent) != 1 || recent[0].Score != 1 {
		t.Errorf("stored results = %+v, expected one result with score 1", recent)
	}

	// History and back
	m = update(t, m, keyMsg("tab"))
	if m.view != viewHistory {
		t.Fatalf("view = %v, expected history", m.view)
	}
	if len(m.history.results) != 1 {
		t.Errorf("history rows = %d, expected 1", len(m.history.results))
	}
	if !strings.Contains(m.View(), "SESSION HISTORY") {
		t.Error("history view missing title")
	}
	m = update(t, m, keyMsg("esc"))
	if m.view != viewPlaying {
		t.Errorf("view after back = %v, expected playing", m.view)
	}

	// Play again
	m = update(t, m, keyMsg("r"))
	if st := m.driver.State(); st.Status != game.StatusPlaying || st.Iteration != 1 || st.HighestClicked != 0 {
		t.Errorf("state after play again = %+v, expected a fresh game", st)
	}

	// Back to menu after a second game over
	m = expire(t, m, clock)
	m = update(t, m, keyMsg("m"))
	if m.view != viewStart {
		t.Errorf("view = %v, expected start", m.view)
	}
	if st := m.driver.State(); st.Status != game.StatusIdle {
		t.Errorf("Status = %v, expected idle", st.Status)
	}
	if m.stats.Games != 2 {
		t.Errorf("stats.Games = %d, expected 2", m.stats.Games)
	}
}

func TestModelGameOverWithoutStore(t *testing.T) {
	m, clock := newTestModel(t, nil)
	m = update(t, m, keyMsg("enter"))
	m = expire(t, m, clock)

	if m.stats.Games != 1 {
		t.Errorf("stats.Games = %d, expected 1", m.stats.Games)
	}

	m = update(t, m, keyMsg("tab"))
	if m.view != viewHistory {
		t.Fatalf("view = %v, expected history", m.view)
	}
	if !strings.Contains(m.View(), "No games finished yet") {
		t.Error("history without a store should show the empty message")
	}
}

func TestModelTooSmall(t *testing.T) {
	m, _ := newTestModel(t, nil)
	m = update(t, m, tea.WindowSizeMsg{Width: 40, Height: 12})
	m = update(t, m, keyMsg("enter"))

	m.View()
	if out := m.screen.String(); !strings.Contains(out, "Terminal too small") {
		t.Errorf("expected the too-small message:\n%s", out)
	}

	// Clicks are ignored while the board cannot be shown
	m = update(t, m, tea.MouseMsg{X: 5, Y: 5, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if st := m.driver.State(); st.HighestClicked != 0 {
		t.Errorf("HighestClicked = %d, expected 0", st.HighestClicked)
	}
}

func TestModelQuit(t *testing.T) {
	m, _ := newTestModel(t, nil)
	next, cmd := m.Update(keyMsg("q"))
	if cmd == nil {
		t.Error("quit key should return a command")
	}
	if out := next.View(); out != "" {
		t.Errorf("View() after quit = %q, expected empty", out)
	}
}

func TestModelMisClickNotice(t *testing.T) {
	m, _ := newTestModel(t, nil)
	m = update(t, m, keyMsg("enter"))
	m = clickTile(t, m, 1)
	m = update(t, m, TickMsg{})

	// Round 2 holds 2 and 3; 3 is not next
	m = clickTile(t, m, 3)
	if !strings.HasPrefix(m.notice, "Wrong!") {
		t.Errorf("notice = %q, expected a misclick warning", m.notice)
	}

	for i := 0; i < m.opts.Runtime.TickRate; i++ {
		m = update(t, m, TickMsg{})
	}
	if m.notice != "" {
		t.Errorf("notice = %q, expected it to expire", m.notice)
	}
}
