package models

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Options describes a menu before it is built.
type Options struct {
	Title        string
	Options      []string
	Highlighted  int
	Checked      []int // multi-select only
	TitleSpacing int
	Style        Style

	// Bypass skips the layout checks. The list must still be non-empty
	// and every index must still point into it.
	Bypass bool
}

func (o Options) validate(b Bounds, multi bool) error {
	if len(o.Options) == 0 {
		return invalid("options", -1, "menu needs at least one option")
	}
	if o.Highlighted < 0 || o.Highlighted >= len(o.Options) {
		return invalid("highlighted", o.Highlighted, "out of range")
	}
	for _, i := range o.Checked {
		if i < 0 || (multi && i >= len(o.Options)) {
			return invalid("checked", i, "out of range")
		}
	}
	if o.TitleSpacing < 0 {
		return invalid("title_spacing", -1, "must not be negative")
	}
	if o.Bypass {
		return nil
	}

	if multi && ansi.StringWidth(o.Style.Selector) != ansi.StringWidth(o.Style.CheckedSelector) {
		return invalid("checked_selector", -1, "width must equal selector width")
	}

	for i, line := range strings.Split(o.Title, "\n") {
		if ansi.StringWidth(line) > b.Cols {
			return invalid("title", i, "line is too long")
		}
	}
	glyph := ansi.StringWidth(o.Style.Selector)
	for i, opt := range o.Options {
		if strings.ContainsRune(opt, '\n') {
			return invalid("options", i, "contains new line")
		}
		if strings.ContainsRune(opt, '\t') {
			return invalid("options", i, "contains tab")
		}
		if glyph+ansi.StringWidth(opt) > b.Cols {
			return invalid("options", i, "is too long")
		}
	}

	sel := Selection{Title: o.Title, Options: o.Options, TitleSpacing: o.TitleSpacing}
	if sel.Height() > b.Rows {
		return invalid("layout", -1, "menu needs %d rows, terminal has %d", sel.Height(), b.Rows)
	}
	return nil
}

func (o Options) selection() *Selection {
	opts := make([]string, len(o.Options))
	copy(opts, o.Options)
	return &Selection{
		Title:        o.Title,
		Options:      opts,
		Highlighted:  o.Highlighted,
		TitleSpacing: o.TitleSpacing,
	}
}
