package input

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// Keyspec is a key sequence specification, e.g. "<del>" or "<space>qw".
type Keyspec string

// Key is a single key press, as delivered by the terminal.
type Key struct {
	Mod tcell.ModMask
	Key tcell.Key
	Ch  rune
}

// KeyFromTcell converts a tcell key event to a Key.
// Modifiers are only kept for non-rune keys, since for runes they are already
// reflected in the rune itself.
func KeyFromTcell(e *tcell.EventKey) Key {
	if e.Key() == tcell.KeyRune {
		return Key{Key: tcell.KeyRune, Ch: e.Rune()}
	}
	return Key{Key: e.Key()}
}

// ToDebugString returns a representation of the key for logging purposes.
func (k *Key) ToDebugString() string {
	return fmt.Sprintf(
		"(%s (%d),'%s'(%d))",
		tcell.KeyNames[k.Key],
		int(k.Key),
		string(k.Ch),
		int(k.Ch),
	)
}
