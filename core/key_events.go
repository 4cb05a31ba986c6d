package core

import (
	"fmt"
	"strings"
	"unicode"
)

// --- KeyCode, KeyModifiers, Key ---

// KeyCode represents non-character keys
type KeyCode int

const (
	KeyUnknown KeyCode = iota
	KeyEnter
	KeyTab
	KeyBackspace
	KeyEscape

	// Arrow keys
	KeyUp
	KeyDown
	KeyLeft
	KeyRight

	// Navigation keys
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown

	// Editing keys
	KeyDelete
	KeyInsert
)

var keyCodeNames = map[KeyCode]string{
	KeyEnter:     "Enter",
	KeyTab:       "Tab",
	KeyBackspace: "Backspace",
	KeyEscape:    "Escape",
	KeyUp:        "Up",
	KeyDown:      "Down",
	KeyLeft:      "Left",
	KeyRight:     "Right",
	KeyHome:      "Home",
	KeyEnd:       "End",
	KeyPageUp:    "PageUp",
	KeyPageDown:  "PageDown",
	KeyDelete:    "Delete",
	KeyInsert:    "Insert",
	KeyUnknown:   "Unknown",
}

// KeyModifiers represents modifier keys held during a keystroke
type KeyModifiers uint8

const (
	ModNone KeyModifiers = 0
	ModCtrl KeyModifiers = 1 << iota
	ModAlt
	ModShift
)

// KeyEvent is one input atom: a character or special key plus the modifiers
// held with it. Two events are the same atom only if all fields are equal.
//
// Printable characters carry Rune with Key == KeyUnknown; shifted characters
// are delivered as their shifted rune without ModShift. Special keys carry Key
// with Rune == 0.
type KeyEvent struct {
	Rune      rune
	Key       KeyCode
	Modifiers KeyModifiers
}

// RuneKey returns the atom for a plain character.
func RuneKey(r rune) KeyEvent {
	return KeyEvent{Rune: r}
}

// SpecialKey returns the atom for a non-character key.
func SpecialKey(code KeyCode) KeyEvent {
	return KeyEvent{Key: code}
}

// CtrlKey returns the atom for Ctrl held with a character.
func CtrlKey(r rune) KeyEvent {
	return KeyEvent{Rune: unicode.ToLower(r), Modifiers: ModCtrl}
}

// IsPrintable reports whether the event inserts its rune when typed as text.
func (k KeyEvent) IsPrintable() bool {
	if k.Rune == 0 || k.Modifiers&(ModCtrl|ModAlt) != 0 {
		return false
	}
	return unicode.IsPrint(k.Rune)
}

// String returns a string representation of a Key
func (k KeyEvent) String() string {
	var parts []string

	// Modifiers first
	if k.Modifiers&ModCtrl != 0 {
		parts = append(parts, "Ctrl")
	}
	if k.Modifiers&ModAlt != 0 {
		parts = append(parts, "Alt")
	}
	if k.Modifiers&ModShift != 0 {
		parts = append(parts, "Shift")
	}

	// Key representation
	switch {
	case k.Rune == ' ':
		parts = append(parts, "Space")
	case k.Rune != 0:
		parts = append(parts, string(k.Rune))
	default:
		if name, ok := keyCodeNames[k.Key]; ok {
			parts = append(parts, name)
		} else {
			parts = append(parts, fmt.Sprintf("SpecialKey(%d)", k.Key))
		}
	}

	return strings.Join(parts, "+")
}

// SequenceString renders a key sequence as space separated keys, e.g. "g g".
func SequenceString(seq []KeyEvent) string {
	parts := make([]string, len(seq))
	for i, k := range seq {
		parts[i] = k.String()
	}
	return strings.Join(parts, " ")
}
