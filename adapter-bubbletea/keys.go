package adapter_bubbletea

import (
	"unicode"

	tea "charm.land/bubbletea/v2"

	"github.com/ionut-t/miv/core"
)

var specialKeys = map[rune]core.KeyCode{
	tea.KeyEnter:     core.KeyEnter,
	tea.KeyTab:       core.KeyTab,
	tea.KeyBackspace: core.KeyBackspace,
	tea.KeyEscape:    core.KeyEscape,
	tea.KeyUp:        core.KeyUp,
	tea.KeyDown:      core.KeyDown,
	tea.KeyLeft:      core.KeyLeft,
	tea.KeyRight:     core.KeyRight,
	tea.KeyHome:      core.KeyHome,
	tea.KeyEnd:       core.KeyEnd,
	tea.KeyPgUp:      core.KeyPageUp,
	tea.KeyPgDown:    core.KeyPageDown,
	tea.KeyDelete:    core.KeyDelete,
	tea.KeyInsert:    core.KeyInsert,
}

// convertKey turns a key press into an input atom. Text keys become their
// rune, with Shift folded into the rune; Ctrl and Alt stay modifiers.
func convertKey(msg tea.KeyPressMsg) core.KeyEvent {
	var mods core.KeyModifiers
	if msg.Mod&tea.ModCtrl != 0 {
		mods |= core.ModCtrl
	}
	if msg.Mod&tea.ModAlt != 0 {
		mods |= core.ModAlt
	}

	if code, ok := specialKeys[msg.Code]; ok {
		if msg.Mod&tea.ModShift != 0 {
			mods |= core.ModShift
		}
		return core.KeyEvent{Key: code, Modifiers: mods}
	}

	if mods == core.ModNone && msg.Text != "" {
		return core.RuneKey([]rune(msg.Text)[0])
	}

	r := msg.Code
	switch {
	case mods&core.ModCtrl != 0:
		r = unicode.ToLower(r)
	case msg.Mod&tea.ModShift != 0 && msg.ShiftedCode != 0:
		r = msg.ShiftedCode
	case msg.Mod&tea.ModShift != 0:
		r = unicode.ToUpper(r)
	}
	return core.KeyEvent{Rune: r, Modifiers: mods}
}
