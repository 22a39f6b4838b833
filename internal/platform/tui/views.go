package tui

import (
	"fmt"
	"math"
	"strconv"

	"github.com/vovakirdan/funclicker/internal/core"
	"github.com/vovakirdan/funclicker/internal/game"
	"github.com/vovakirdan/funclicker/internal/storage"
)

const title = "FunClicker"

// Rating returns the end-of-game verdict for a score.
func Rating(score int) string {
	switch {
	case score >= 50:
		return "Legendary!"
	case score >= 30:
		return "Amazing!"
	case score >= 20:
		return "Great job!"
	case score >= 10:
		return "Nice try!"
	default:
		return "Keep practicing!"
	}
}

// TimerColor picks the timer color for the seconds left.
func TimerColor(remaining, warnAt, dangerAt float64) core.Color {
	switch {
	case remaining <= dangerAt:
		return core.ColorDanger
	case remaining <= warnAt:
		return core.ColorWarn
	default:
		return core.ColorOK
	}
}

// timerRatio returns the fraction of the round's time left, in [0, 1].
func timerRatio(remaining, limit float64) float64 {
	if limit <= 0 {
		return 0
	}
	return core.Clamp01(remaining / limit)
}

// TimerBar renders a bar of the given width filled in proportion to the
// time left.
func TimerBar(remaining, limit float64, width int) string {
	if width <= 0 {
		return ""
	}
	filled := int(math.Round(timerRatio(remaining, limit) * float64(width)))
	bar := make([]rune, width)
	for i := range bar {
		if i < filled {
			bar[i] = '█'
		} else {
			bar[i] = '░'
		}
	}
	return string(bar)
}

// TimerPercent returns the time left as a whole percentage.
func TimerPercent(remaining, limit float64) int {
	return int(math.Round(timerRatio(remaining, limit) * 100))
}

// hud carries everything the playing screen shows besides the board.
type hud struct {
	state    game.State
	best     int
	warnAt   float64
	dangerAt float64
	notice   string
	noticeC  core.Color
}

func drawTitle(s *core.Screen) {
	s.DrawTextCentered(0, title, core.ColorTitle)
}

func drawBoard(s *core.Screen, l Layout, st game.State) {
	s.DrawBox(l.Board, core.ColorBorder)

	for row := 0; row < l.BoardSize; row++ {
		for col := 0; col < l.BoardSize; col++ {
			r := l.CellRect(game.Position{Row: row, Col: col})
			s.SetColor(r.X+r.W/2, r.Y+(r.H-1)/2, '·', core.ColorMuted)
		}
	}

	for _, t := range st.VisibleTiles() {
		color := core.ColorTile
		if t.Number == st.NextExpected {
			color = core.ColorNext
		}
		r := l.CellRect(t.Position())
		s.FillRect(r, ' ', color)

		label := strconv.Itoa(t.Number)
		if len(label) > r.W {
			label = label[len(label)-r.W:]
		}
		s.DrawTextColor(r.X+(r.W-len(label))/2, r.Y+(r.H-1)/2, label, color)
	}
}

func drawSidebar(s *core.Screen, l Layout, h hud) {
	s.DrawBox(l.HUD, core.ColorBorder)

	x := l.HUD.X + 2
	y := l.HUD.Y + 1
	valueX := x + 12
	st := h.state

	line := func(label, value string, c core.Color) {
		s.DrawTextColor(x, y, label, core.ColorMuted)
		s.DrawTextColor(valueX, y, value, c)
		y++
	}

	line("Score", strconv.Itoa(st.HighestClicked), core.ColorScore)
	line("Click next", strconv.Itoa(st.NextExpected), core.ColorOK)
	line("Round", strconv.Itoa(st.Iteration), core.ColorDefault)
	line("Best", strconv.Itoa(h.best), core.ColorDefault)
	y++

	timerC := TimerColor(st.TimeRemaining, h.warnAt, h.dangerAt)
	line("Time left", fmt.Sprintf("%.1fs", st.TimeRemaining), timerC)

	barW := l.HUD.W - 4 - 5
	s.DrawTextColor(x, y, TimerBar(st.TimeRemaining, st.TimeLimit, barW), timerC)
	s.DrawTextColor(x+barW+1, y, fmt.Sprintf("%3d%%", TimerPercent(st.TimeRemaining, st.TimeLimit)), core.ColorMuted)
	y += 2

	if h.notice != "" && y < l.HUD.Bottom()-1 {
		s.DrawTextColor(x, y, h.notice, h.noticeC)
	}

	if bottom := l.HUD.Bottom() - 2; bottom > y {
		s.DrawTextColor(x, bottom, "green", core.ColorOK)
		s.DrawTextColor(x+6, bottom, "= click next", core.ColorMuted)
	}
}

func drawStackedHUD(s *core.Screen, l Layout, h hud) {
	st := h.state
	x, y := l.HUD.X, l.HUD.Y

	stats := fmt.Sprintf("Score %d  Next %d  Round %d  Best %d",
		st.HighestClicked, st.NextExpected, st.Iteration, h.best)
	s.DrawTextColor(x, y, stats, core.ColorScore)

	timerC := TimerColor(st.TimeRemaining, h.warnAt, h.dangerAt)
	label := fmt.Sprintf("%4.1fs ", st.TimeRemaining)
	s.DrawTextColor(x, y+1, label, timerC)
	barW := l.HUD.W - len(label) - 5
	s.DrawTextColor(x+len(label), y+1, TimerBar(st.TimeRemaining, st.TimeLimit, barW), timerC)
	s.DrawTextColor(x+len(label)+barW+1, y+1, fmt.Sprintf("%3d%%", TimerPercent(st.TimeRemaining, st.TimeLimit)), core.ColorMuted)

	if h.notice != "" {
		s.DrawTextColor(x, y+2, h.notice, h.noticeC)
	}
}

// drawGameOver draws the result box over the middle of the board.
func drawGameOver(s *core.Screen, l Layout, r game.Result, best int) {
	lines := []struct {
		text  string
		color core.Color
	}{
		{"GAME OVER", core.ColorDanger},
		{Rating(r.Score), core.ColorTitle},
		{"", core.ColorDefault},
		{fmt.Sprintf("Final score   %4d", r.Score), core.ColorScore},
		{fmt.Sprintf("Rounds        %4d", r.Rounds), core.ColorDefault},
		{fmt.Sprintf("Avg per round %4.1f", r.AvgPerRound), core.ColorDefault},
		{fmt.Sprintf("Session best  %4d", best), core.ColorDefault},
		{"", core.ColorDefault},
		{"r play again  m menu", core.ColorMuted},
	}

	w, h := 30, len(lines)+2
	cx := l.Board.X + l.Board.W/2
	cy := l.Board.Y + l.Board.H/2
	box := core.NewRect(cx-w/2, cy-h/2, w, h)

	s.FillRect(box, ' ', core.ColorDefault)
	s.DrawBox(box, core.ColorBorder)
	for i, ln := range lines {
		x := box.X + (box.W-len([]rune(ln.text)))/2
		s.DrawTextColor(x, box.Y+1+i, ln.text, ln.color)
	}
}

func drawStart(s *core.Screen, st storage.Stats) {
	howTo := []string{
		"1. Tiles with numbers appear on the board",
		"2. Click them in ascending order (1, 2, 3...)",
		"3. Clear all tiles before the timer runs out",
		"4. Each round gets faster and the board grows!",
	}

	top := (s.Height() - 14) / 2
	if top < 0 {
		top = 0
	}
	y := top

	s.DrawTextCentered(y, title, core.ColorTitle)
	y++
	s.DrawTextCentered(y, "Click the numbers in ascending order!", core.ColorMuted)
	y += 2

	// Demo tiles
	x := (s.Width() - 13) / 2
	for i, c := range []core.Color{core.ColorNext, core.ColorTile, core.ColorTile} {
		s.DrawTextColor(x+i*5, y, fmt.Sprintf(" %d ", i+1), c)
	}
	y += 2

	s.DrawTextCentered(y, "How to Play", core.ColorDefault)
	y++
	left := (s.Width() - len(howTo[3])) / 2
	for _, ln := range howTo {
		s.DrawTextColor(left, y, ln, core.ColorMuted)
		y++
	}
	y++

	s.DrawTextCentered(y, "Press enter to start", core.ColorOK)
	y += 2

	if st.Games > 0 {
		s.DrawTextCentered(y, fmt.Sprintf("This session: %d games, best %d", st.Games, st.Best), core.ColorScore)
	}
}

func drawTooSmall(s *core.Screen, needW, needH int) {
	y := s.Height() / 2
	s.DrawTextCentered(y-1, "Terminal too small", core.ColorDanger)
	s.DrawTextCentered(y, fmt.Sprintf("need %dx%d, have %dx%d", needW, needH, s.Width(), s.Height()+footerHeight), core.ColorMuted)
	s.DrawTextCentered(y+1, "enlarge the window to continue", core.ColorMuted)
}
