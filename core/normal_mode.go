package core

type normalMode struct{}

func NewNormalMode() EditorMode { return &normalMode{} }

func (m *normalMode) Name() Mode { return NormalMode }

func (m *normalMode) Bindings() []Binding { return defaultNormalBindings }

func (m *normalMode) Enter(editor Editor) {
	editor.UpdateStatus(NormalStatusLine)
}

func (m *normalMode) Exit(editor Editor) {}

// HandleUnknown reports the sequence on the command line and drops it.
func (m *normalMode) HandleUnknown(editor Editor, err *UnknownMotionError) error {
	editor.UpdateCommand(err.Error())
	return err
}

func (m *normalMode) AllowsPastEnd() bool { return false }

var defaultNormalBindings = []Binding{
	{Keys: "q", Command: CmdQuit},
	{Keys: "<C-c>", Command: CmdQuit},

	{Keys: "i", Command: CmdInsert},
	{Keys: "a", Command: CmdAppend},
	{Keys: "I", Command: CmdInsertLineStart},
	{Keys: "A", Command: CmdAppendLineEnd},
	{Keys: "o", Command: CmdOpenBelow},
	{Keys: "v", Command: CmdVisual},

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
	{Keys: "gg", Command: CmdTop},
	{Keys: "G", Command: CmdBottom},

	{Keys: "x", Command: CmdDeleteChar},
	{Keys: "dd", Command: CmdDeleteLine},
	{Keys: "p", Command: CmdPut},

	{Keys: "gt", Command: CmdNextBuffer},
	{Keys: "gT", Command: CmdPrevBuffer},
	{Keys: "<C-n>", Command: CmdNewBuffer},
}
