package menu

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"termselect/models"
)

type action int

const (
	actIgnore action = iota
	actMoved
	actToggled
	actConfirm
	actCancel
	actAbort
)

func (a action) String() string {
	switch a {
	case actMoved:
		return "moved"
	case actToggled:
		return "toggled"
	case actConfirm:
		return "confirm"
	case actCancel:
		return "cancel"
	case actAbort:
		return "abort"
	default:
		return "ignore"
	}
}

// transition is the effect of one key on a menu.
type transition struct {
	act      action
	from, to int
	checked  bool
}

// apply maps k to a transition and applies it to v. Both the blocking
// session loop and Program use it, so the two behave the same.
func apply(v models.Variant, keys KeyMap, k tea.Key) transition {
	switch {
	case key.Matches(k, keys.Quit):
		return transition{act: actAbort}
	case key.Matches(k, keys.Cancel):
		return transition{act: actCancel}
	case key.Matches(k, keys.Confirm):
		return transition{act: actConfirm}
	case key.Matches(k, keys.Up):
		return move(v, -1)
	case key.Matches(k, keys.Down):
		return move(v, +1)
	case key.Matches(k, keys.Toggle):
		checked, handled := v.Toggle()
		if !handled {
			return transition{act: actIgnore}
		}
		i := v.Selection().Highlighted
		return transition{act: actToggled, from: i, to: i, checked: checked}
	}
	return transition{act: actIgnore}
}

func move(v models.Variant, delta int) transition {
	from, to, moved := v.MoveHighlight(delta)
	if !moved {
		return transition{act: actIgnore}
	}
	return transition{act: actMoved, from: from, to: to}
}
