package core

import (
	"fmt"
	"strings"
	"unicode"
)

var specialKeyNames = map[string]KeyEvent{
	"cr":        SpecialKey(KeyEnter),
	"enter":     SpecialKey(KeyEnter),
	"return":    SpecialKey(KeyEnter),
	"esc":       SpecialKey(KeyEscape),
	"escape":    SpecialKey(KeyEscape),
	"tab":       SpecialKey(KeyTab),
	"bs":        SpecialKey(KeyBackspace),
	"backspace": SpecialKey(KeyBackspace),
	"del":       SpecialKey(KeyDelete),
	"delete":    SpecialKey(KeyDelete),
	"ins":       SpecialKey(KeyInsert),
	"insert":    SpecialKey(KeyInsert),
	"up":        SpecialKey(KeyUp),
	"down":      SpecialKey(KeyDown),
	"left":      SpecialKey(KeyLeft),
	"right":     SpecialKey(KeyRight),
	"home":      SpecialKey(KeyHome),
	"end":       SpecialKey(KeyEnd),
	"pageup":    SpecialKey(KeyPageUp),
	"pgup":      SpecialKey(KeyPageUp),
	"pagedown":  SpecialKey(KeyPageDown),
	"pgdn":      SpecialKey(KeyPageDown),
	"space":     RuneKey(' '),
	"lt":        RuneKey('<'),
	"gt":        RuneKey('>'),
	"bar":       RuneKey('|'),
	"bslash":    RuneKey('\\'),
}

// ParseSequence parses a vim style key sequence such as "gg", "dd", "<Esc>"
// or "<C-c>" into input atoms. Plain characters stand for themselves;
// bracketed names select special keys and modifiers.
func ParseSequence(spec string) ([]KeyEvent, error) {
	if spec == "" {
		return nil, ErrEmptyKeySpec
	}

	runes := []rune(spec)
	seq := make([]KeyEvent, 0, len(runes))

	for i := 0; i < len(runes); i++ {
		if runes[i] != '<' {
			seq = append(seq, RuneKey(runes[i]))
			continue
		}

		end := -1
		for j := i + 1; j < len(runes); j++ {
			if runes[j] == '>' {
				end = j
				break
			}
		}

		// A lone '<' with no closing bracket, or "<>", is the character itself.
		if end == -1 || end == i+1 {
			seq = append(seq, RuneKey('<'))
			continue
		}

		key, err := parseBracketed(string(runes[i+1 : end]))
		if err != nil {
			return nil, fmt.Errorf("%q: %w", spec, err)
		}
		seq = append(seq, key)
		i = end
	}

	return seq, nil
}

// ParseKey parses a spec that must name exactly one atom.
func ParseKey(spec string) (KeyEvent, error) {
	seq, err := ParseSequence(spec)
	if err != nil {
		return KeyEvent{}, err
	}
	if len(seq) != 1 {
		return KeyEvent{}, fmt.Errorf("%w: %q names %d keys", ErrInvalidKeySpec, spec, len(seq))
	}
	return seq[0], nil
}

// parseBracketed parses the inside of "<...>", e.g. "C-c", "A-x", "Esc".
func parseBracketed(inner string) (KeyEvent, error) {
	parts := strings.Split(inner, "-")

	// "<C-->" binds Ctrl and the minus key.
	if strings.HasSuffix(inner, "--") {
		parts = append(strings.Split(strings.TrimSuffix(inner, "--"), "-"), "-")
	}

	keyPart := parts[len(parts)-1]
	var mods KeyModifiers
	for _, p := range parts[:len(parts)-1] {
		switch strings.ToLower(p) {
		case "c":
			mods |= ModCtrl
		case "a", "m":
			mods |= ModAlt
		case "s":
			mods |= ModShift
		default:
			return KeyEvent{}, fmt.Errorf("%w: unknown modifier %q", ErrInvalidKeySpec, p)
		}
	}

	if key, ok := specialKeyNames[strings.ToLower(keyPart)]; ok {
		key.Modifiers = mods
		return key, nil
	}

	runes := []rune(keyPart)
	if len(runes) != 1 {
		return KeyEvent{}, fmt.Errorf("%w: unknown key %q", ErrInvalidKeySpec, keyPart)
	}

	r := runes[0]
	if mods&ModCtrl != 0 {
		// Terminals do not distinguish Ctrl+c from Ctrl+C.
		r = unicode.ToLower(r)
	} else if mods&ModShift != 0 && unicode.IsLetter(r) {
		// Shifted letters arrive as their upper case rune.
		r = unicode.ToUpper(r)
		mods &^= ModShift
	}

	return KeyEvent{Rune: r, Modifiers: mods}, nil
}
