// Package menu runs interactive list-selection menus in a terminal.
//
// A Menu lets the user pick one option; a MultiMenu lets them check any
// number of options with Space. Both are validated against the terminal
// size when built, draw the whole list once, and then redraw only the rows
// that change. The terminal is always put back into its normal mode when
// Run returns, and before the process exits on Ctrl+C.
//
//	m, err := menu.New("Pick a language", []string{"Go", "Rust", "Zig"})
//	if err != nil {
//	    return err // printed before the screen is touched
//	}
//	i, ok, err := m.Run()
package menu

import (
	"io"
	"log/slog"
	"os"

	"github.com/charmbracelet/lipgloss"

	"termselect/internal/terminal"
	"termselect/models"
)

type settings struct {
	highlighted int
	checked     []int
	spacing     int
	style       models.Style
	bypass      bool
	term        Terminal
	keys        KeyMap
	logger      *slog.Logger
	exit        func(int)
}

// Option configures a menu at construction.
type Option func(*settings)

// WithHighlighted sets the initially highlighted option.
func WithHighlighted(i int) Option {
	return func(s *settings) { s.highlighted = i }
}

// WithChecked sets the initially checked options of a MultiMenu.
func WithChecked(idx ...int) Option {
	return func(s *settings) { s.checked = append(s.checked, idx...) }
}

// WithTitleSpacing adds n blank rows between the title and the options.
func WithTitleSpacing(n int) Option {
	return func(s *settings) { s.spacing = n }
}

// WithStyle replaces the default glyphs and colors.
func WithStyle(st models.Style) Option {
	return func(s *settings) { s.style = st }
}

// WithBypass skips layout validation and the terminal size query. Use it
// for non-interactive terminals or when the caller has checked the layout.
func WithBypass() Option {
	return func(s *settings) { s.bypass = true }
}

// WithTerminal runs the menu on t instead of stdin and stdout.
func WithTerminal(t Terminal) Option {
	return func(s *settings) { s.term = t }
}

// WithKeyMap replaces the default key bindings.
func WithKeyMap(k KeyMap) Option {
	return func(s *settings) { s.keys = k }
}

// WithLogger sends session debug logs to l. By default nothing is logged.
func WithLogger(l *slog.Logger) Option {
	return func(s *settings) { s.logger = l }
}

// WithExit replaces the function called with the exit status (130) on
// Ctrl+C. It defaults to os.Exit.
func WithExit(exit func(code int)) Option {
	return func(s *settings) { s.exit = exit }
}

func newSettings(opts []Option) *settings {
	s := &settings{
		style: models.DefaultStyle(),
		keys:  DefaultKeyMap(),
		exit:  os.Exit,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.term == nil {
		s.term = terminal.Stdio()
	}
	if s.logger == nil {
		s.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return s
}

func (s *settings) options(title string, labels []string) (models.Options, models.Bounds, error) {
	o := models.Options{
		Title:        title,
		Options:      labels,
		Highlighted:  s.highlighted,
		Checked:      s.checked,
		TitleSpacing: s.spacing,
		Style:        s.style,
		Bypass:       s.bypass,
	}
	if s.bypass {
		return o, models.Bounds{}, nil
	}
	cols, rows, err := s.term.Size()
	if err != nil {
		return o, models.Bounds{}, ioErr("query terminal size", err)
	}
	return o, models.Bounds{Cols: cols, Rows: rows}, nil
}

func (s *settings) session() *session {
	return &session{term: s.term, keys: s.keys, log: s.logger, exit: s.exit}
}

// Menu is a single-select menu.
type Menu struct {
	model *models.Single
	sess  *session
}

// New builds a single-select menu over options. Items are labelled with
// models.Labels. A *models.ValidationError is returned when the menu does
// not fit the terminal or its options are malformed.
func New[T any](title string, options []T, opts ...Option) (*Menu, error) {
	s := newSettings(opts)
	s.keys = s.keys.forSingle()
	o, b, err := s.options(title, models.Labels(options))
	if err != nil {
		return nil, err
	}
	m, err := models.NewSingle(o, b)
	if err != nil {
		return nil, err
	}
	return &Menu{model: m, sess: s.session()}, nil
}

// Run shows the menu and blocks until the user is done. ok is false when
// the menu was cancelled with Escape. Ctrl+C restores the terminal and
// exits the process without returning. The exit status is 130, as a shell
// reports for SIGINT, rather than 0, so scripts can tell an interrupted
// menu from a successful one. Use WithExit to choose another status.
func (m *Menu) Run() (index int, ok bool, err error) {
	confirmed, err := m.sess.run(m.model)
	if err != nil || !confirmed {
		return 0, false, err
	}
	return m.model.Result(), true, nil
}

// State reports where the last Run ended.
func (m *Menu) State() State { return m.sess.state }

// Options returns the option labels.
func (m *Menu) Options() []string { return m.model.Selection().Options }

// Model exposes the underlying selection model.
func (m *Menu) Model() *models.Single { return m.model }

// Program returns a bubbletea model running this menu.
func (m *Menu) Program() Program { return NewProgram(m.model, m.sess.keys) }

// SetHighlightColors sets the colors of the highlighted row.
func (m *Menu) SetHighlightColors(fg, bg lipgloss.Color) {
	st := m.model.Style()
	st.HighlightFg, st.HighlightBg = fg, bg
	m.model.SetStyle(st)
}

// MultiMenu is a multi-select menu.
type MultiMenu struct {
	model *models.Multi
	sess  *session
}

// NewMulti builds a multi-select menu over options. See New.
func NewMulti[T any](title string, options []T, opts ...Option) (*MultiMenu, error) {
	s := newSettings(opts)
	o, b, err := s.options(title, models.Labels(options))
	if err != nil {
		return nil, err
	}
	m, err := models.NewMulti(o, b)
	if err != nil {
		return nil, err
	}
	return &MultiMenu{model: m, sess: s.session()}, nil
}

// Run shows the menu and blocks until the user is done. It returns the
// checked indices on Enter. ok is false both when the menu was cancelled
// and when Enter was pressed with nothing checked; callers that need to
// tell the two apart can check Model().Checked() after a confirm.
// Ctrl+C behaves as for Menu.Run.
func (m *MultiMenu) Run() (checked models.Set, ok bool, err error) {
	confirmed, err := m.sess.run(m.model)
	if err != nil || !confirmed {
		return nil, false, err
	}
	checked, ok = m.model.Result()
	return checked, ok, nil
}

// State reports where the last Run ended.
func (m *MultiMenu) State() State { return m.sess.state }

// Options returns the option labels.
func (m *MultiMenu) Options() []string { return m.model.Selection().Options }

// Model exposes the underlying selection model.
func (m *MultiMenu) Model() *models.Multi { return m.model }

// Program returns a bubbletea model running this menu.
func (m *MultiMenu) Program() Program { return NewProgram(m.model, m.sess.keys) }

// SetHighlightColors sets the colors of the highlighted, unchecked row.
func (m *MultiMenu) SetHighlightColors(fg, bg lipgloss.Color) {
	st := m.model.Style()
	st.HighlightFg, st.HighlightBg = fg, bg
	m.model.SetStyle(st)
}

// SetCheckedColors sets the colors of checked rows that are not highlighted.
func (m *MultiMenu) SetCheckedColors(fg, bg lipgloss.Color) {
	st := m.model.Style()
	st.CheckedFg, st.CheckedBg = fg, bg
	m.model.SetStyle(st)
}

// SetHighlightCheckedColors sets the colors of the highlighted row when it
// is also checked.
func (m *MultiMenu) SetHighlightCheckedColors(fg, bg lipgloss.Color) {
	st := m.model.Style()
	st.HighlightCheckedFg, st.HighlightCheckedBg = fg, bg
	m.model.SetStyle(st)
}
