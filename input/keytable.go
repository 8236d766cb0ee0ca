package input

import (
	"maps"
	"unicode"

	"github.com/gdamore/tcell/v2"
)

// KeyTable maps keys to intents
type KeyTable struct {
	// Printable keys, matched case-sensitively
	Runes map[rune]Intent

	// Special keys (Ctrl+*, arrows, function keys)
	Keys map[tcell.Key]Intent
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		Keys: map[tcell.Key]Intent{
			tcell.KeyEscape: IntentQuit,
			tcell.KeyCtrlC:  IntentQuit,
			tcell.KeyUp:     IntentMoveForward,
			tcell.KeyDown:   IntentMoveBack,
			tcell.KeyLeft:   IntentTurnLeft,
			tcell.KeyRight:  IntentTurnRight,
			tcell.KeyTab:    IntentToggleView,
			tcell.KeyF1:     IntentToggleStats,
		},

		Runes: map[rune]Intent{
			// Movement
			'w': IntentMoveForward,
			's': IntentMoveBack,
			'a': IntentStrafeLeft,
			'd': IntentStrafeRight,
			'q': IntentTurnLeft,
			'e': IntentTurnRight,

			// Shifted movement also boosts, see TranslateBoost
			'W': IntentMoveForward,
			'S': IntentMoveBack,
			'A': IntentStrafeLeft,
			'D': IntentStrafeRight,
			'Q': IntentTurnLeft,
			'E': IntentTurnRight,

			// Abilities, a bare Shift press never reaches the terminal so boost also has its own key
			'c': IntentToggleStealth,
			'C': IntentToggleStealth,
			'b': IntentActivateBoost,
			'B': IntentActivateBoost,

			// Session
			' ': IntentStart,
			'r': IntentRestart,
			'R': IntentRestart,

			// View
			'v': IntentToggleView,
			'm': IntentToggleMinimap,
			'+': IntentCameraCloser,
			'=': IntentCameraCloser,
			'-': IntentCameraFarther,
			'l': IntentToggleStats,
			'x': IntentToggleMute,
		},
	}
}

// Clone returns a deep copy safe to modify
func (kt *KeyTable) Clone() *KeyTable {
	return &KeyTable{
		Runes: maps.Clone(kt.Runes),
		Keys:  maps.Clone(kt.Keys),
	}
}

// Lookup resolves a key press to an intent, IntentNone when unbound
func (kt *KeyTable) Lookup(key tcell.Key, r rune) Intent {
	if key == tcell.KeyRune {
		return kt.Runes[r]
	}
	return kt.Keys[key]
}

// Translate resolves a tcell key event to an intent
func (kt *KeyTable) Translate(ev *tcell.EventKey) Intent {
	if ev == nil {
		return IntentNone
	}
	return kt.Lookup(ev.Key(), ev.Rune())
}

// TranslateBoost resolves a key event and reports whether it is a shifted movement key
// Shift+letter arrives as an uppercase rune, often without ModShift, so Caps Lock reads as Shift
func (kt *KeyTable) TranslateBoost(ev *tcell.EventKey) (Intent, bool) {
	intent := kt.Translate(ev)
	if !intent.Movement() {
		return intent, false
	}
	shifted := ev.Modifiers()&tcell.ModShift != 0 ||
		(ev.Key() == tcell.KeyRune && unicode.IsUpper(ev.Rune()))
	return intent, shifted
}
