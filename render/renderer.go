// Package render draws selection menus onto a Screen. A session starts with
// one full paint; after that only rows whose state changed are redrawn.
package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"termselect/models"
)

// Renderer draws a menu and remembers which option row the cursor is on.
type Renderer struct {
	s      Screen
	cursor int
}

func New(s Screen) *Renderer {
	return &Renderer{s: s}
}

// Cursor returns the option index the terminal cursor sits on.
func (r *Renderer) Cursor() int {
	return r.cursor
}

// Full clears the screen and paints the title and every row, then parks the
// cursor on the highlighted row.
func (r *Renderer) Full(v models.Variant) error {
	sel := v.Selection()
	p := &pen{s: r.s}

	p.clearScreen()
	p.moveTo(0, 0)
	for _, line := range sel.TitleLines() {
		p.print(line)
		p.vertical(1)
	}
	p.vertical(sel.TitleSpacing)

	for i := range sel.Options {
		r.row(p, v, i)
		p.vertical(1)
	}

	p.moveTo(0, sel.RowOf(sel.Highlighted))
	p.flush()
	if p.err != nil {
		return p.err
	}
	r.cursor = sel.Highlighted
	return nil
}

// Move redraws the rows at from and to after the highlight moved between
// them. Every other row is left alone.
func (r *Renderer) Move(v models.Variant, from, to int) error {
	p := &pen{s: r.s}
	if r.cursor != from {
		p.moveTo(0, v.Selection().RowOf(from))
	}

	p.column(0)
	p.clearLine()
	r.row(p, v, from)

	p.vertical(to - from)
	p.clearLine()
	r.row(p, v, to)
	p.column(0)
	p.flush()
	if p.err != nil {
		return p.err
	}
	r.cursor = to
	return nil
}

// Row redraws the row at i, which must be the row under the cursor.
func (r *Renderer) Row(v models.Variant, i int) error {
	p := &pen{s: r.s}
	if r.cursor != i {
		p.moveTo(0, v.Selection().RowOf(i))
	}
	p.column(0)
	p.clearLine()
	r.row(p, v, i)
	p.column(0)
	p.flush()
	if p.err != nil {
		return p.err
	}
	r.cursor = i
	return nil
}

func (r *Renderer) row(p *pen, v models.Variant, i int) {
	style := v.Style()
	label := v.Selection().Options[i]

	glyph, fg, bg, styled := style.For(v.RowState(i))
	if !styled {
		p.right(ansi.StringWidth(style.Selector))
		p.print(label)
		return
	}
	p.colors(fg, bg)
	p.print(glyph)
	p.print(label)
	p.resetColors()
}

// Line renders row i as a styled string. Plain rows are padded with spaces
// to the selector width so labels stay aligned.
func Line(v models.Variant, i int) string {
	style := v.Style()
	label := v.Selection().Options[i]

	glyph, fg, bg, styled := style.For(v.RowState(i))
	if !styled {
		return strings.Repeat(" ", ansi.StringWidth(style.Selector)) + label
	}
	ls := lipgloss.NewStyle()
	if fg != "" {
		ls = ls.Foreground(fg)
	}
	if bg != "" {
		ls = ls.Background(bg)
	}
	return ls.Render(glyph + label)
}

// Frame renders the whole menu as a string: title, spacing and rows.
func Frame(v models.Variant) string {
	sel := v.Selection()

	var b strings.Builder
	b.WriteString(sel.Title)
	b.WriteString("\n")
	b.WriteString(strings.Repeat("\n", sel.TitleSpacing))
	for i := range sel.Options {
		b.WriteString(Line(v, i))
		b.WriteString("\n")
	}
	return b.String()
}
