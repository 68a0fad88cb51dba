package models

// Single is a single-select menu. Confirming it yields the highlighted index.
type Single struct {
	sel   *Selection
	style Style
}

// NewSingle validates opts against b and builds the menu. Checked indices
// are ignored.
func NewSingle(opts Options, b Bounds) (*Single, error) {
	if err := opts.validate(b, false); err != nil {
		return nil, err
	}
	return &Single{sel: opts.selection(), style: opts.Style}, nil
}

func (m *Single) Selection() *Selection { return m.sel }

func (m *Single) Style() Style { return m.style }

// SetStyle replaces the colors. Glyphs are fixed at construction because
// the layout was validated against them.
func (m *Single) SetStyle(s Style) {
	s.Selector = m.style.Selector
	s.CheckedSelector = m.style.CheckedSelector
	m.style = s
}

func (m *Single) RowState(i int) RowState {
	if i == m.sel.Highlighted {
		return RowHighlighted
	}
	return RowPlain
}

func (m *Single) MoveHighlight(delta int) (from, to int, moved bool) {
	return m.sel.MoveHighlight(delta)
}

func (m *Single) Toggle() (checked, handled bool) {
	return false, false
}

// Result returns the highlighted index.
func (m *Single) Result() int {
	return m.sel.Highlighted
}
