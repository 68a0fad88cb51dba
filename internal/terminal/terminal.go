// Package terminal drives a real terminal for menu sessions: raw mode and
// size through golang.org/x/term, output through termenv escape sequences.
package terminal

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// ErrNotTerminal is returned by EnableRaw and Size when the input or output
// is not attached to a terminal.
var ErrNotTerminal = errors.New("not a terminal")

// Terminal writes menu output and reads keys. Output is buffered until
// Flush.
type Terminal struct {
	in      io.Reader
	out     *bufio.Writer
	inFd    int
	outFd   int
	profile termenv.Profile
	state   *term.State
	pending []byte
	closer  io.Closer
}

// Option configures a Terminal.
type Option func(*Terminal)

// WithProfile fixes the color profile instead of detecting it from the
// environment.
func WithProfile(p termenv.Profile) Option {
	return func(t *Terminal) {
		t.profile = p
	}
}

type fder interface {
	Fd() uintptr
}

// New returns a Terminal reading keys from in and drawing to out. Raw mode
// and size queries need in and out to be *os.File terminals.
func New(in io.Reader, out io.Writer, opts ...Option) *Terminal {
	t := &Terminal{
		in:      in,
		out:     bufio.NewWriter(out),
		inFd:    -1,
		outFd:   -1,
		profile: termenv.EnvColorProfile(),
	}
	if f, ok := in.(fder); ok {
		t.inFd = int(f.Fd())
	}
	if f, ok := out.(fder); ok {
		t.outFd = int(f.Fd())
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Stdio returns a Terminal on the process's stdin and stdout.
func Stdio(opts ...Option) *Terminal {
	return New(os.Stdin, os.Stdout, opts...)
}

// OpenTTY opens the controlling terminal for both keys and drawing, so
// stdin and stdout stay free for pipes. Close releases it.
func OpenTTY(opts ...Option) (*Terminal, error) {
	f, err := os.OpenFile("/dev/tty", os.O_RDWR, 0)
	if err != nil {
		return nil, fmt.Errorf("open tty: %w", err)
	}
	t := New(f, f, opts...)
	t.closer = f
	return t, nil
}

// File returns the underlying input when it is an *os.File, for handing
// the same terminal to a bubbletea program.
func (t *Terminal) File() (*os.File, bool) {
	f, ok := t.in.(*os.File)
	return f, ok
}

func (t *Terminal) Close() error {
	if t.closer == nil {
		return nil
	}
	return t.closer.Close()
}

// Size returns the terminal size in columns and rows.
func (t *Terminal) Size() (cols, rows int, err error) {
	for _, fd := range []int{t.outFd, t.inFd} {
		if fd < 0 || !term.IsTerminal(fd) {
			continue
		}
		return term.GetSize(fd)
	}
	return 0, 0, ErrNotTerminal
}

// EnableRaw puts the input terminal into raw mode.
func (t *Terminal) EnableRaw() error {
	if t.state != nil {
		return nil
	}
	if t.inFd < 0 || !term.IsTerminal(t.inFd) {
		return ErrNotTerminal
	}
	st, err := term.MakeRaw(t.inFd)
	if err != nil {
		return err
	}
	t.state = st
	return nil
}

// DisableRaw restores the mode saved by EnableRaw. It is a no-op when raw
// mode is not active.
func (t *Terminal) DisableRaw() error {
	if t.state == nil {
		return nil
	}
	err := term.Restore(t.inFd, t.state)
	t.state = nil
	return err
}

// ReadKey blocks until the next key is available.
func (t *Terminal) ReadKey() (tea.Key, error) {
	if len(t.pending) == 0 {
		buf := make([]byte, 64)
		n, err := t.in.Read(buf)
		if n == 0 {
			if err == nil {
				err = io.ErrUnexpectedEOF
			}
			return tea.Key{}, err
		}
		t.pending = buf[:n]
	}
	k, n := decodeKey(t.pending)
	t.pending = t.pending[n:]
	return k, nil
}

func (t *Terminal) csi(seq string) error {
	_, err := t.out.WriteString(termenv.CSI + seq)
	return err
}

func (t *Terminal) HideCursor() error { return t.csi(termenv.HideCursorSeq) }
func (t *Terminal) ShowCursor() error { return t.csi(termenv.ShowCursorSeq) }
func (t *Terminal) ClearLine() error { return t.csi(termenv.EraseEntireLineSeq) }
func (t *Terminal) ResetColors() error { return t.csi(termenv.ResetSeq + "m") }

func (t *Terminal) ClearScreen() error {
	return t.csi(fmt.Sprintf(termenv.EraseDisplaySeq, 2))
}

func (t *Terminal) MoveTo(col, row int) error {
	return t.csi(fmt.Sprintf(termenv.CursorPositionSeq, row+1, col+1))
}

func (t *Terminal) MoveToColumn(col int) error {
	return t.csi(fmt.Sprintf(termenv.CursorHorizontalSeq, col+1))
}

func (t *Terminal) PrevLine(n int) error {
	return t.csi(fmt.Sprintf(termenv.CursorPreviousLineSeq, n))
}

func (t *Terminal) NextLine(n int) error {
	return t.csi(fmt.Sprintf(termenv.CursorNextLineSeq, n))
}

func (t *Terminal) MoveRight(n int) error {
	return t.csi(fmt.Sprintf(termenv.CursorForwardSeq, n))
}

// SetColors sets the foreground and background. Colors the profile cannot
// show are skipped.
func (t *Terminal) SetColors(fg, bg lipgloss.Color) error {
	if seq := t.sequence(fg, false); seq != "" {
		if err := t.csi(seq + "m"); err != nil {
			return err
		}
	}
	if seq := t.sequence(bg, true); seq != "" {
		return t.csi(seq + "m")
	}
	return nil
}

func (t *Terminal) sequence(c lipgloss.Color, bg bool) string {
	tc := t.profile.Color(string(c))
	if tc == nil {
		return ""
	}
	return tc.Sequence(bg)
}

func (t *Terminal) Print(s string) error {
	_, err := t.out.WriteString(s)
	return err
}

func (t *Terminal) Flush() error {
	return t.out.Flush()
}
