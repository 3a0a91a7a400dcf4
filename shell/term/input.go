package term

import (
	"github.com/gdamore/tcell/v2"
	"github.com/plus3/blockfall/loop"
)

var keyActions = map[tcell.Key]loop.Action{
	tcell.KeyLeft:  loop.ActionLeft,
	tcell.KeyRight: loop.ActionRight,
	tcell.KeyUp:    loop.ActionRotate,
	tcell.KeyDown:  loop.ActionStep,
}

var runeActions = map[rune]loop.Action{
	'a': loop.ActionLeft,
	'd': loop.ActionRight,
	'w': loop.ActionRotate,
	's': loop.ActionStep,
	'x': loop.ActionHardDrop,
	' ': loop.ActionHardDrop,
	'r': loop.ActionReset,
}

// KeyAction maps a key press to an engine action. ch is only read for
// tcell.KeyRune. quit is true for the keys that end the session; ok is false
// for unmapped keys.
func KeyAction(key tcell.Key, ch rune) (action loop.Action, ok, quit bool) {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return 0, false, true
	case tcell.KeyRune:
		if ch >= 'A' && ch <= 'Z' {
			ch += 'a' - 'A'
		}
		if ch == 'q' {
			return 0, false, true
		}
		action, ok = runeActions[ch]
		return action, ok, false
	}
	action, ok = keyActions[key]
	return action, ok, false
}
