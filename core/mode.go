package core

type Mode string

const (
	NormalMode Mode = "normal"
	InsertMode Mode = "insert"
	VisualMode Mode = "visual"
)

// ModeState is the active mode together with the data that belongs to it.
// VisualStart is only meaningful in visual mode.
type ModeState struct {
	Mode        Mode
	VisualStart Cursor
}

func NewNormalState() ModeState { return ModeState{Mode: NormalMode} }

func NewInsertState() ModeState { return ModeState{Mode: InsertMode} }

func NewVisualState(cursorStart Cursor) ModeState {
	return ModeState{Mode: VisualMode, VisualStart: cursorStart}
}

func (m ModeState) String() string { return string(m.Mode) }

// EditorMode is the behaviour attached to one mode: the bindings that make
// up its motion tree, what happens on entering and leaving it, and how an
// atom that resolves to no command is handled.
type EditorMode interface {
	Name() Mode
	Bindings() []Binding
	Enter(editor Editor)
	Exit(editor Editor)
	// HandleUnknown recovers from an unknown motion. A non-nil return is
	// reported to the caller of HandleKey.
	HandleUnknown(editor Editor, err *UnknownMotionError) error
	// AllowsPastEnd reports whether the cursor may sit after the last
	// character of a line.
	AllowsPastEnd() bool
}
