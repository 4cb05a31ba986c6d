package core

import "strings"

type insertMode struct{}

func NewInsertMode() EditorMode { return &insertMode{} }

func (m *insertMode) Name() Mode { return InsertMode }

func (m *insertMode) Bindings() []Binding { return defaultInsertBindings }

func (m *insertMode) Enter(editor Editor) {
	editor.UpdateStatus(InsertStatusLine)
}

// Exit steps the cursor back onto the last typed character.
func (m *insertMode) Exit(editor Editor) {
	cursor := editor.GetState().Cursor
	if cursor.X > 0 {
		cursor.X--
		editor.Apply(CursorUpdate{Cursor: cursor})
	}
}

// HandleUnknown types the buffered keys of a sequence that did not resolve
// to a command. The key that broke the sequence is fed again on its own so a
// bound key such as <Esc> still runs its command. Keys with no textual
// meaning are dropped.
func (m *insertMode) HandleUnknown(editor Editor, err *UnknownMotionError) error {
	if len(err.Sequence) > 1 {
		last := len(err.Sequence) - 1
		for _, key := range err.Sequence[:last] {
			typeKey(editor, key)
		}
		_, ferr := editor.HandleKey(err.Sequence[last])
		return ferr
	}
	for _, key := range err.Sequence {
		typeKey(editor, key)
	}
	return nil
}

func typeKey(editor Editor, key KeyEvent) {
	switch {
	case key.IsPrintable():
		editor.InsertText(string(key.Rune))
	case key.Modifiers != ModNone:
	case key.Key == KeyEnter:
		editor.InsertText("\n")
	case key.Key == KeyTab:
		editor.InsertText(strings.Repeat(" ", editor.TabSize()))
	case key.Key == KeyBackspace:
		editor.DeleteBackward(1)
	}
}

func (m *insertMode) AllowsPastEnd() bool { return true }

var defaultInsertBindings = []Binding{
	{Keys: "<Esc>", Command: CmdNormal},
	{Keys: "<Left>", Command: CmdLeft},
	{Keys: "<Down>", Command: CmdDown},
	{Keys: "<Up>", Command: CmdUp},
	{Keys: "<Right>", Command: CmdRight},
}
