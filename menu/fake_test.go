package menu

import (
	"errors"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var errBroken = errors.New("broken pipe")

// fakeTerm records every operation and tracks the cursor row so tests can
// check which rows a redraw touched.
type fakeTerm struct {
	keys []tea.Key

	cols, rows int
	sizeErr    error
	readErr    error
	failOp     string

	ops     []string
	raw     bool
	hidden  bool
	row     int
	cleared []int // rows hit by ClearLine, in order
	text    map[int]string // printed since the row was last cleared
}

func newFakeTerm(keys ...tea.Key) *fakeTerm {
	return &fakeTerm{keys: keys, cols: 80, rows: 24, text: map[int]string{}}
}

func (f *fakeTerm) record(op string) error {
	f.ops = append(f.ops, op)
	if f.failOp != "" && f.failOp == op {
		return errBroken
	}
	return nil
}

func (f *fakeTerm) EnableRaw() error {
	f.raw = true
	return f.record("raw on")
}

func (f *fakeTerm) DisableRaw() error {
	f.raw = false
	return f.record("raw off")
}

func (f *fakeTerm) HideCursor() error {
	f.hidden = true
	return f.record("hide")
}

func (f *fakeTerm) ShowCursor() error {
	f.hidden = false
	return f.record("show")
}

func (f *fakeTerm) Size() (int, int, error) {
	return f.cols, f.rows, f.sizeErr
}

func (f *fakeTerm) ReadKey() (tea.Key, error) {
	if f.readErr != nil {
		return tea.Key{}, f.readErr
	}
	if len(f.keys) == 0 {
		return tea.Key{}, io.EOF
	}
	k := f.keys[0]
	f.keys = f.keys[1:]
	return k, nil
}

// ClearScreen keeps text so tests can inspect rows after the restore.
func (f *fakeTerm) ClearScreen() error {
	return f.record("clear")
}

func (f *fakeTerm) ClearLine() error {
	f.cleared = append(f.cleared, f.row)
	f.text[f.row] = ""
	return f.record("clearline")
}

func (f *fakeTerm) MoveTo(col, row int) error {
	f.row = row
	return f.record(fmt.Sprintf("move %d,%d", col, row))
}

func (f *fakeTerm) MoveToColumn(col int) error {
	return f.record(fmt.Sprintf("col %d", col))
}

func (f *fakeTerm) PrevLine(n int) error {
	f.row -= n
	return f.record(fmt.Sprintf("prev %d", n))
}

func (f *fakeTerm) NextLine(n int) error {
	f.row += n
	return f.record(fmt.Sprintf("next %d", n))
}

func (f *fakeTerm) MoveRight(n int) error {
	return f.record(fmt.Sprintf("right %d", n))
}

func (f *fakeTerm) SetColors(fg, bg lipgloss.Color) error {
	return f.record(fmt.Sprintf("colors %s/%s", fg, bg))
}

func (f *fakeTerm) ResetColors() error {
	return f.record("reset")
}

func (f *fakeTerm) Print(s string) error {
	f.text[f.row] += s
	return f.record("print " + s)
}

func (f *fakeTerm) Flush() error {
	return f.record("flush")
}

func (f *fakeTerm) count(op string) int {
	n := 0
	for _, o := range f.ops {
		if o == op {
			n++
		}
	}
	return n
}

var (
	keyUp    = tea.Key{Type: tea.KeyUp}
	keyDown  = tea.Key{Type: tea.KeyDown}
	keySpace = tea.Key{Type: tea.KeySpace, Runes: []rune{' '}}
	keyEnter = tea.Key{Type: tea.KeyEnter}
	keyEsc   = tea.Key{Type: tea.KeyEsc}
	keyCtrlC = tea.Key{Type: tea.KeyCtrlC}
)
