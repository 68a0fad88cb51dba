package menu

import (
	"errors"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"termselect/models"
	"termselect/render"
)

// State is the lifecycle position of a session.
type State int

const (
	Idle State = iota
	Running
	Done
	Aborted
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Done:
		return "done"
	case Aborted:
		return "aborted"
	default:
		return "idle"
	}
}

// Terminal is what a session needs from the terminal driver.
type Terminal interface {
	render.Screen
	EnableRaw() error
	DisableRaw() error
	HideCursor() error
	ShowCursor() error
	ReadKey() (tea.Key, error)
	Size() (cols, rows int, err error)
}

// abortExitCode is the status Ctrl+C exits with, as for SIGINT.
const abortExitCode = 130

// session runs the read-decide-act loop for one menu.
type session struct {
	term  Terminal
	keys  KeyMap
	log   *slog.Logger
	exit  func(code int)
	state State
}

// run drives v until the user confirms, cancels or aborts. On abort the
// exit function is called after the terminal has been restored.
func (s *session) run(v models.Variant) (confirmed bool, err error) {
	confirmed, err = s.loop(v)
	if s.state == Aborted {
		s.log.Debug("menu: exiting process", "code", abortExitCode)
		s.exit(abortExitCode)
		if err == nil {
			err = ErrAborted
		}
		return false, err
	}
	return confirmed, err
}

func (s *session) loop(v models.Variant) (confirmed bool, err error) {
	s.state = Idle
	if err := s.term.EnableRaw(); err != nil {
		return false, ioErr("enable raw mode", err)
	}
	s.state = Running
	s.log.Debug("menu: session start", "options", v.Selection().Len(), "highlighted", v.Selection().Highlighted)

	// The guard runs on every way out of the loop, panics included.
	defer func() {
		if s.state != Aborted {
			s.state = Done
		}
		if rerr := s.restore(); rerr != nil {
			err = errors.Join(err, rerr)
		}
		s.log.Debug("menu: terminal restored", "state", s.state)
	}()

	if err := s.term.HideCursor(); err != nil {
		return false, ioErr("hide cursor", err)
	}
	r := render.New(s.term)
	if err := r.Full(v); err != nil {
		return false, ioErr("draw menu", err)
	}

	for {
		k, err := s.term.ReadKey()
		if err != nil {
			return false, ioErr("read key", err)
		}

		t := apply(v, s.keys, k)
		if t.act != actIgnore {
			s.log.Debug("menu: key", "key", k.String(), "action", t.act, "from", t.from, "to", t.to)
		}
		switch t.act {
		case actMoved:
			if err := r.Move(v, t.from, t.to); err != nil {
				return false, ioErr("redraw rows", err)
			}
		case actToggled:
			if err := r.Row(v, t.to); err != nil {
				return false, ioErr("redraw row", err)
			}
		case actConfirm:
			return true, nil
		case actCancel:
			return false, nil
		case actAbort:
			s.state = Aborted
			return false, nil
		}
	}
}

// restore clears the menu, shows the cursor and leaves raw mode. Every step
// is attempted even when an earlier one fails.
func (s *session) restore() error {
	var errs []error
	for _, step := range []struct {
		op string
		fn func() error
	}{
		{"clear screen", s.term.ClearScreen},
		{"move cursor", func() error { return s.term.MoveTo(0, 0) }},
		{"show cursor", s.term.ShowCursor},
		{"flush", s.term.Flush},
		{"disable raw mode", s.term.DisableRaw},
	} {
		if err := step.fn(); err != nil {
			errs = append(errs, ioErr(step.op, err))
		}
	}
	return errors.Join(errs...)
}
