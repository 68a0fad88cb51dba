package models

import "github.com/charmbracelet/lipgloss"

// RowState is the visual state of a single option row.
type RowState int

const (
	RowPlain RowState = iota
	RowHighlighted
	RowChecked
	RowHighlightedChecked
)

func (r RowState) String() string {
	switch r {
	case RowHighlighted:
		return "highlighted"
	case RowChecked:
		return "checked"
	case RowHighlightedChecked:
		return "highlighted+checked"
	default:
		return "plain"
	}
}

// Style holds the selector glyphs and colors of a menu. An empty color
// leaves the terminal default in place.
type Style struct {
	Selector        string `yaml:"selector"`
	CheckedSelector string `yaml:"checked_selector"`

	HighlightFg lipgloss.Color `yaml:"highlight_fg"`
	HighlightBg lipgloss.Color `yaml:"highlight_bg"`

	CheckedFg lipgloss.Color `yaml:"checked_fg"`
	CheckedBg lipgloss.Color `yaml:"checked_bg"`

	HighlightCheckedFg lipgloss.Color `yaml:"highlight_checked_fg"`
	HighlightCheckedBg lipgloss.Color `yaml:"highlight_checked_bg"`
}

// ANSI color indexes used by the defaults.
const (
	Black lipgloss.Color = "0"
	White lipgloss.Color = "7"
)

// DefaultStyle returns the style menus start with.
func DefaultStyle() Style {
	return Style{
		Selector:           " > ",
		CheckedSelector:    " * ",
		HighlightFg:        White,
		HighlightBg:        Black,
		CheckedFg:          White,
		CheckedBg:          Black,
		HighlightCheckedFg: Black,
		HighlightCheckedBg: Black,
	}
}

// For returns the glyph and colors a row in state r is drawn with. styled
// is false for plain rows, which are drawn without glyph or colors.
func (s Style) For(r RowState) (glyph string, fg, bg lipgloss.Color, styled bool) {
	switch r {
	case RowHighlighted:
		return s.Selector, s.HighlightFg, s.HighlightBg, true
	case RowChecked:
		return s.CheckedSelector, s.CheckedFg, s.CheckedBg, true
	case RowHighlightedChecked:
		// The highlight glyph wins; the checked state shows through the colors.
		return s.Selector, s.HighlightCheckedFg, s.HighlightCheckedBg, true
	default:
		return "", "", "", false
	}
}
