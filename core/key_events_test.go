package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyEvent_String(t *testing.T) {
	tests := []struct {
		key  KeyEvent
		want string
	}{
		{RuneKey('g'), "g"},
		{RuneKey(' '), "Space"},
		{CtrlKey('C'), "Ctrl+c"},
		{SpecialKey(KeyEscape), "Escape"},
		{KeyEvent{Key: KeyTab, Modifiers: ModShift}, "Shift+Tab"},
		{KeyEvent{Rune: 'x', Modifiers: ModCtrl | ModAlt}, "Ctrl+Alt+x"},
		{KeyEvent{Key: KeyCode(99)}, "SpecialKey(99)"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.key.String())
	}
}

func TestKeyEvent_IsPrintable(t *testing.T) {
	assert.True(t, RuneKey('a').IsPrintable())
	assert.True(t, RuneKey(' ').IsPrintable())
	assert.True(t, RuneKey('ß').IsPrintable())
	assert.False(t, CtrlKey('a').IsPrintable())
	assert.False(t, KeyEvent{Rune: 'a', Modifiers: ModAlt}.IsPrintable())
	assert.False(t, SpecialKey(KeyEnter).IsPrintable())
	assert.False(t, RuneKey('\x01').IsPrintable())
}

func TestSequenceString(t *testing.T) {
	assert.Equal(t, "g g", SequenceString([]KeyEvent{RuneKey('g'), RuneKey('g')}))
	assert.Equal(t, "", SequenceString(nil))
}
