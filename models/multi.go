package models

import "sort"

// Set is an unordered set of option indices.
type Set map[int]struct{}

// NewSet returns a set holding idx.
func NewSet(idx ...int) Set {
	s := make(Set, len(idx))
	for _, i := range idx {
		s[i] = struct{}{}
	}
	return s
}

func (s Set) Has(i int) bool {
	_, ok := s[i]
	return ok
}

func (s Set) Clone() Set {
	c := make(Set, len(s))
	for i := range s {
		c[i] = struct{}{}
	}
	return c
}

// Sorted returns the members in ascending order.
func (s Set) Sorted() []int {
	out := make([]int, 0, len(s))
	for i := range s {
		out = append(out, i)
	}
	sort.Ints(out)
	return out
}

// Multi is a multi-select menu. Rows are checked with Toggle and confirming
// it yields the checked set.
type Multi struct {
	sel     *Selection
	style   Style
	checked Set
}

// NewMulti validates opts against b and builds the menu.
func NewMulti(opts Options, b Bounds) (*Multi, error) {
	if err := opts.validate(b, true); err != nil {
		return nil, err
	}
	return &Multi{
		sel:     opts.selection(),
		style:   opts.Style,
		checked: NewSet(opts.Checked...),
	}, nil
}

func (m *Multi) Selection() *Selection { return m.sel }

func (m *Multi) Style() Style { return m.style }

// SetStyle replaces the colors. Glyphs are fixed at construction.
func (m *Multi) SetStyle(s Style) {
	s.Selector = m.style.Selector
	s.CheckedSelector = m.style.CheckedSelector
	m.style = s
}

func (m *Multi) RowState(i int) RowState {
	switch hl, ck := i == m.sel.Highlighted, m.checked.Has(i); {
	case hl && ck:
		return RowHighlightedChecked
	case hl:
		return RowHighlighted
	case ck:
		return RowChecked
	}
	return RowPlain
}

func (m *Multi) MoveHighlight(delta int) (from, to int, moved bool) {
	return m.sel.MoveHighlight(delta)
}

func (m *Multi) Toggle() (checked, handled bool) {
	i := m.sel.Highlighted
	if m.checked.Has(i) {
		delete(m.checked, i)
		return false, true
	}
	m.checked[i] = struct{}{}
	return true, true
}

// Checked returns a copy of the checked set.
func (m *Multi) Checked() Set {
	return m.checked.Clone()
}

// Result returns a copy of the checked set. ok is false when nothing is
// checked, which callers cannot tell apart from a cancelled menu.
func (m *Multi) Result() (Set, bool) {
	if len(m.checked) == 0 {
		return nil, false
	}
	return m.checked.Clone(), true
}
