package models

import (
	"fmt"
	"strings"
)

// Selection is the state shared by both menu variants: the title, the
// option labels and the highlighted row.
type Selection struct {
	Title        string
	Options      []string
	Highlighted  int
	TitleSpacing int
}

// Bounds is the terminal size a menu has to fit in.
type Bounds struct {
	Cols int
	Rows int
}

// Variant is implemented by Single and Multi. The renderer and the input
// loop only talk to a menu through this interface.
type Variant interface {
	Selection() *Selection
	Style() Style
	RowState(i int) RowState
	MoveHighlight(delta int) (from, to int, moved bool)
	// Toggle flips the checked state of the highlighted row. handled is
	// false for variants without checkable rows.
	Toggle() (checked, handled bool)
}

// Len returns the number of options.
func (s *Selection) Len() int {
	return len(s.Options)
}

// MoveHighlight moves the highlight by delta rows. Moves that would leave
// the option list are ignored.
func (s *Selection) MoveHighlight(delta int) (from, to int, moved bool) {
	from = s.Highlighted
	to = from + delta
	if delta == 0 || to < 0 || to > len(s.Options)-1 {
		return from, from, false
	}
	s.Highlighted = to
	return from, to, true
}

// TitleLines splits the title on its embedded line breaks. A trailing
// newline produces an empty last line, which still occupies a row.
func (s *Selection) TitleLines() []string {
	return strings.Split(s.Title, "\n")
}

// FirstRow is the screen row of option 0.
func (s *Selection) FirstRow() int {
	return strings.Count(s.Title, "\n") + 1 + s.TitleSpacing
}

// RowOf returns the screen row of option i.
func (s *Selection) RowOf(i int) int {
	return s.FirstRow() + i
}

// Height is the number of rows the menu needs, including the row the
// cursor lands on after the last option.
func (s *Selection) Height() int {
	return s.FirstRow() + len(s.Options) + 1
}

// Labels converts items into option labels. fmt.Stringer values use their
// String method, everything else is formatted with fmt.Sprint.
func Labels[T any](items []T) []string {
	labels := make([]string, len(items))
	for i, item := range items {
		switch v := any(item).(type) {
		case string:
			labels[i] = v
		case fmt.Stringer:
			labels[i] = v.String()
		default:
			labels[i] = fmt.Sprint(v)
		}
	}
	return labels
}
