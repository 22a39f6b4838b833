package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", s.Width())
	}
	if s.Height() != 24 {
		t.Errorf("Height() = %d, expected 24", s.Height())
	}

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if c := s.GetCell(x, y); c.Rune != ' ' || c.Color != ColorDefault {
				t.Fatalf("GetCell(%d, %d) = %+v, expected blank", x, y, c)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.Set(5, 5, 'X')
	if s.Get(5, 5) != 'X' {
		t.Errorf("Get(5, 5) = %q, expected 'X'", s.Get(5, 5))
	}

	s.SetColor(2, 3, '7', ColorNext)
	if c := s.GetCell(2, 3); c.Rune != '7' || c.Color != ColorNext {
		t.Errorf("GetCell(2, 3) = %+v, expected '7' in ColorNext", c)
	}

	// Out of bounds writes are ignored
	s.Set(-1, 0, 'A')
	s.Set(100, 0, 'A')
	s.Set(0, -1, 'A')
	s.Set(0, 100, 'A')

	if s.Get(-1, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
	if s.Get(100, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(4, 3)
	s.FillRect(NewRect(0, 0, 4, 3), 'X', ColorTile)
	s.Clear()

	for y := 0; y < 3; y++ {
		if row := s.Row(y); row != "    " {
			t.Errorf("Row(%d) = %q after Clear, expected blanks", y, row)
		}
	}
	if c := s.GetCell(1, 1); c.Color != ColorDefault {
		t.Errorf("Clear left color %v, expected ColorDefault", c.Color)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.Set(1, 1, 'X')
	s.Resize(20, 5)

	if s.Width() != 20 || s.Height() != 5 {
		t.Errorf("size = %dx%d, expected 20x5", s.Width(), s.Height())
	}
	if s.Get(1, 1) != ' ' {
		t.Error("Resize should clear the buffer")
	}

	s.Resize(-3, -3)
	if s.Width() != 0 || s.Height() != 0 {
		t.Errorf("negative resize = %dx%d, expected 0x0", s.Width(), s.Height())
	}
	if s.String() != "" {
		t.Errorf("String() = %q on empty screen, expected empty", s.String())
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(10, 2)
	s.DrawTextColor(7, 0, "Score", ColorScore)

	if row := s.Row(0); row != "       Sco" {
		t.Errorf("Row(0) = %q, expected clipped text", row)
	}
	if c := s.GetCell(8, 0); c.Color != ColorScore {
		t.Errorf("GetCell(8, 0).Color = %v, expected ColorScore", c.Color)
	}

	s.DrawTextCentered(1, "ab", ColorTitle)
	if row := s.Row(1); row != "    ab    " {
		t.Errorf("Row(1) = %q, expected centered text", row)
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(4, 3)
	s.DrawBox(NewRect(0, 0, 4, 3), ColorBorder)

	expected := strings.Join([]string{
		"┌──┐",
		"│  │",
		"└──┘",
	}, "\n")
	if s.String() != expected {
		t.Errorf("String() =\n%s\nexpected\n%s", s.String(), expected)
	}

	// Too small to draw
	small := NewScreen(3, 3)
	small.DrawBox(NewRect(0, 0, 1, 3), ColorBorder)
	if small.Get(0, 0) != ' ' {
		t.Error("DrawBox with width 1 should draw nothing")
	}
}

func TestScreenRowOutOfRange(t *testing.T) {
	s := NewScreen(3, 1)
	if row := s.Row(5); row != "   " {
		t.Errorf("Row(5) = %q, expected blank row", row)
	}
}
