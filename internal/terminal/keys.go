package terminal

import (
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
)

// Modifier bits of the xterm "CSI 1 ; <mod> <key>" form, after subtracting one.
const (
	modShift = 1 << iota
	modAlt
	modCtrl
)

// csiParams bounds the parameters collected from one sequence.
const csiParams = 32

// decodeKey decodes the first key in buf and returns it together with the
// number of bytes it used. A lone ESC is the Escape key; input arrives one
// read per keypress so escape sequences are never split across reads.
func decodeKey(buf []byte) (tea.Key, int) {
	if len(buf) == 0 {
		return tea.Key{}, 0
	}

	b := buf[0]
	switch {
	case b == 0x1b:
		if len(buf) == 1 {
			return tea.Key{Type: tea.KeyEsc}, 1
		}
		return decodeEscape(buf)
	case b == '\r' || b == '\n':
		return tea.Key{Type: tea.KeyEnter}, 1
	case b == ' ':
		return tea.Key{Type: tea.KeySpace, Runes: []rune{' '}}, 1
	case b == 0x7f:
		return tea.Key{Type: tea.KeyBackspace}, 1
	case b < 0x20:
		// Control bytes share their values with tea's ctrl key types.
		return tea.Key{Type: tea.KeyType(b)}, 1
	}

	r, n := utf8.DecodeRune(buf)
	if r == utf8.RuneError && n <= 1 {
		return tea.Key{Type: tea.KeyRunes, Runes: []rune{utf8.RuneError}}, 1
	}
	return tea.Key{Type: tea.KeyRunes, Runes: []rune{r}}, n
}

func decodeEscape(buf []byte) (tea.Key, int) {
	switch buf[1] {
	case 0x1b:
		// Two Escape presses in one read: the second starts the next key.
		return tea.Key{Type: tea.KeyEsc}, 1
	case '[':
		return decodeCSI(buf)
	case 'O':
		// SS3, sent for arrows in application cursor mode.
		if len(buf) >= 3 {
			if k, ok := arrowKey(buf[2], 0); ok {
				return k, 3
			}
			return tea.Key{Type: tea.KeyRunes, Runes: []rune{rune(buf[2])}, Alt: true}, 3
		}
	}

	// ESC followed by a regular key is that key with Alt held.
	k, n := decodeKey(buf[1:])
	k.Alt = true
	return k, n + 1
}

// decodeCSI decodes a control sequence with x/ansi. Only arrows, optionally
// in the xterm "1;<mod>" form, become keys; other sequences are consumed
// and ignored.
func decodeCSI(buf []byte) (tea.Key, int) {
	ignored := tea.Key{Type: tea.KeyRunes}

	p := new(ansi.Parser)
	p.SetParamsSize(csiParams)
	_, _, n, state := ansi.DecodeSequence(buf, ansi.NormalState, p)
	if state != ansi.NormalState {
		// Unterminated sequence: drop it.
		return ignored, len(buf)
	}

	cmd := ansi.Cmd(p.Command())
	if cmd.Prefix() != 0 || cmd.Intermediate() != 0 {
		return ignored, n
	}

	mods := 0
	switch params := p.Params(); len(params) {
	case 0:
	case 2:
		first, _, _ := params.Param(0, 1)
		mod, _, _ := params.Param(1, 1)
		if first != 1 || mod < 1 || mod > 8 {
			return ignored, n
		}
		mods = mod - 1
	default:
		return ignored, n
	}

	if k, ok := arrowKey(cmd.Final(), mods); ok {
		return k, n
	}
	return ignored, n
}

func arrowKey(final byte, mods int) (tea.Key, bool) {
	var plain, shift, ctrl, ctrlShift tea.KeyType
	switch final {
	case 'A':
		plain, shift, ctrl, ctrlShift = tea.KeyUp, tea.KeyShiftUp, tea.KeyCtrlUp, tea.KeyCtrlShiftUp
	case 'B':
		plain, shift, ctrl, ctrlShift = tea.KeyDown, tea.KeyShiftDown, tea.KeyCtrlDown, tea.KeyCtrlShiftDown
	case 'C':
		plain, shift, ctrl, ctrlShift = tea.KeyRight, tea.KeyShiftRight, tea.KeyCtrlRight, tea.KeyCtrlShiftRight
	case 'D':
		plain, shift, ctrl, ctrlShift = tea.KeyLeft, tea.KeyShiftLeft, tea.KeyCtrlLeft, tea.KeyCtrlShiftLeft
	default:
		return tea.Key{}, false
	}

	k := tea.Key{Type: plain, Alt: mods&modAlt != 0}
	switch {
	case mods&modCtrl != 0 && mods&modShift != 0:
		k.Type = ctrlShift
	case mods&modCtrl != 0:
		k.Type = ctrl
	case mods&modShift != 0:
		k.Type = shift
	}
	return k, true
}
