package tui

import (
	"github.com/vovakirdan/funclicker/internal/core"
	"github.com/vovakirdan/funclicker/internal/game"
)

// Layout constants
const (
	sidebarWidth = 24 // Width of the HUD panel beside the board
	stackedHUD   = 3  // Rows of the HUD above the board on narrow terminals
	headerHeight = 1  // Title row
	footerHeight = 1  // Help row
	maxCellRows  = 3
)

// Layout places the board and HUD on the terminal and maps mouse
// coordinates back to board cells.
type Layout struct {
	Board     core.Rect // Board including its border
	HUD       core.Rect
	Stacked   bool // HUD above the board instead of beside it
	BoardSize int
	CellW     int
	CellH     int
}

// ComputeLayout finds the largest cells that fit the terminal. It prefers
// a sidebar HUD and falls back to a HUD stacked above the board. The second
// return value is false when the board cannot fit at all.
func ComputeLayout(width, height, boardSize, minCellWidth int) (Layout, bool) {
	if boardSize <= 0 {
		return Layout{}, false
	}

	for cellH := maxCellRows; cellH >= 1; cellH-- {
		cellW := cellWidth(cellH, minCellWidth)
		boardW, boardH := boardSize*cellW+2, boardSize*cellH+2
		totalW := boardW + 1 + sidebarWidth
		if totalW > width || boardH+headerHeight+footerHeight > height {
			continue
		}

		x := (width - totalW) / 2
		board := core.NewRect(x, headerHeight, boardW, boardH)
		return Layout{
			Board:     board,
			HUD:       core.NewRect(board.Right()+1, headerHeight, sidebarWidth, boardH),
			BoardSize: boardSize,
			CellW:     cellW,
			CellH:     cellH,
		}, true
	}

	for cellH := maxCellRows; cellH >= 1; cellH-- {
		cellW := cellWidth(cellH, minCellWidth)
		boardW, boardH := boardSize*cellW+2, boardSize*cellH+2
		if boardW > width || boardH+stackedHUD+headerHeight+footerHeight > height {
			continue
		}

		x := (width - boardW) / 2
		return Layout{
			Board:     core.NewRect(x, headerHeight+stackedHUD, boardW, boardH),
			HUD:       core.NewRect(x, headerHeight, boardW, stackedHUD),
			Stacked:   true,
			BoardSize: boardSize,
			CellW:     cellW,
			CellH:     cellH,
		}, true
	}

	return Layout{}, false
}

// MinSize returns the smallest terminal that fits a board of the given size.
func MinSize(boardSize, minCellWidth int) (int, int) {
	cellW := cellWidth(1, minCellWidth)
	boardW, boardH := boardSize*cellW+2, boardSize+2
	return boardW, boardH + stackedHUD + headerHeight + footerHeight
}

// cellWidth keeps cells roughly square: terminal rows are about twice as
// tall as columns are wide.
func cellWidth(cellH, minCellWidth int) int {
	w := 2*cellH + 2
	if w < minCellWidth {
		w = minCellWidth
	}
	return w
}

// inner returns the board area inside the border.
func (l Layout) inner() core.Rect {
	return core.NewRect(l.Board.X+1, l.Board.Y+1, l.BoardSize*l.CellW, l.BoardSize*l.CellH)
}

// CellRect returns the drawable area of a cell. The last column, and the
// last row of cells taller than one row, are left as a gap.
func (l Layout) CellRect(p game.Position) core.Rect {
	in := l.inner()
	h := l.CellH
	if h > 1 {
		h--
	}
	return core.NewRect(in.X+p.Col*l.CellW, in.Y+p.Row*l.CellH, l.CellW-1, h)
}

// HitTest maps a terminal coordinate to the board cell under it.
func (l Layout) HitTest(x, y int) (game.Position, bool) {
	in := l.inner()
	if l.CellW <= 0 || l.CellH <= 0 || !in.Contains(x, y) {
		return game.Position{}, false
	}
	return game.Position{
		Row: (y - in.Y) / l.CellH,
		Col: (x - in.X) / l.CellW,
	}, true
}
