package core

type visualMode struct{}

func NewVisualMode() EditorMode { return &visualMode{} }

func (m *visualMode) Name() Mode { return VisualMode }

func (m *visualMode) Bindings() []Binding { return defaultVisualBindings }

// Enter only updates the status line; the selection anchor travels in
// ModeState.VisualStart.
func (m *visualMode) Enter(editor Editor) {
	editor.UpdateStatus(VisualStatusLine)
}

func (m *visualMode) Exit(editor Editor) {}

func (m *visualMode) HandleUnknown(editor Editor, err *UnknownMotionError) error {
	editor.UpdateCommand(err.Error())
	return err
}

func (m *visualMode) AllowsPastEnd() bool { return false }

var defaultVisualBindings = []Binding{
	{Keys: "v", Command: CmdNormal},
	{Keys: "<Esc>", Command: CmdNormal},

	{Keys: "h", Command: CmdLeft},
	{Keys: "j", Command: CmdDown},
	{Keys: "k", Command: CmdUp},
	{Keys: "l", Command: CmdRight},
	{Keys: "<Left>", Command: CmdLeft},
	{Keys: "<Down>", Command: CmdDown},
	{Keys: "<Up>", Command: CmdUp},
	{Keys: "<Right>", Command: CmdRight},
	{Keys: "0", Command: CmdLineStart},
	{Keys: "$", Command: CmdLineEnd},

	{Keys: "y", Command: CmdYankSelection},
	{Keys: "d", Command: CmdDeleteSelection},
	{Keys: "x", Command: CmdDeleteSelection},
}
