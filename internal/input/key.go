// Package input provides generic key input handling: parsing of key sequence
// specification strings, input trees mapping key sequences to actions, and
// composable input processors.
package input

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// Key represents a single key input.
//
// For special keys (arrows, control combinations, ...) Key is set and Ch is
// the zero rune; for plain rune input Key is tcell.KeyRune and Ch carries the
// rune.
type Key struct {
	Mod tcell.ModMask
	Key tcell.Key
	Ch  rune
}

// KeyFromTcellEvent converts a tcell key event to a Key.
//
// tcell delivers control combinations with the modifier mask still set; the
// mask is cleared here so that a Key compares equal to the corresponding
// parsed keyspec key.
func KeyFromTcellEvent(e *tcell.EventKey) Key {
	if e.Key() == tcell.KeyRune {
		return Key{Key: tcell.KeyRune, Ch: e.Rune()}
	}
	return Key{Key: e.Key()}
}

// ToDebugString returns a debug representation of this key.
func (k Key) ToDebugString() string {
	return fmt.Sprintf("(%d,%d,'%c')", k.Mod, k.Key, k.Ch)
}

// Help maps key sequence specification strings to explanations of the actions
// they trigger, e.g., for display in a help view.
type Help = map[string]string
