package render

import "github.com/charmbracelet/lipgloss"

// Screen is the set of terminal operations the renderer draws with.
// Columns and rows are zero-based.
type Screen interface {
	ClearScreen() error
	ClearLine() error
	MoveTo(col, row int) error
	MoveToColumn(col int) error
	PrevLine(n int) error
	NextLine(n int) error
	MoveRight(n int) error
	SetColors(fg, bg lipgloss.Color) error
	ResetColors() error
	Print(s string) error
	Flush() error
}

// pen issues Screen operations and keeps the first error. Once an error is
// seen every later call is a no-op.
type pen struct {
	s   Screen
	err error
}

func (p *pen) do(f func() error) {
	if p.err == nil {
		p.err = f()
	}
}

func (p *pen) clearScreen() { p.do(p.s.ClearScreen) }
func (p *pen) clearLine() { p.do(p.s.ClearLine) }
func (p *pen) resetColors() { p.do(p.s.ResetColors) }
func (p *pen) flush() { p.do(p.s.Flush) }
func (p *pen) moveTo(col, row int) { p.do(func() error { return p.s.MoveTo(col, row) }) }
func (p *pen) column(col int) { p.do(func() error { return p.s.MoveToColumn(col) }) }

func (p *pen) print(s string) {
	if s == "" {
		return
	}
	p.do(func() error { return p.s.Print(s) })
}

func (p *pen) right(n int) {
	if n <= 0 {
		return
	}
	p.do(func() error { return p.s.MoveRight(n) })
}

func (p *pen) colors(fg, bg lipgloss.Color) {
	p.do(func() error { return p.s.SetColors(fg, bg) })
}

// vertical moves n rows down, or -n rows up, landing on column 0.
func (p *pen) vertical(n int) {
	switch {
	case n > 0:
		p.do(func() error { return p.s.NextLine(n) })
	case n < 0:
		p.do(func() error { return p.s.PrevLine(-n) })
	}
}
