package core

// SelectionType indicates the selection status of a position
type SelectionType int

const (
	SelectionNone      SelectionType = iota // Position is not selected
	SelectionCharacter                      // Position is part of a character-wise visual selection
)

// Editor represents the main editor interface
type Editor interface {
	// Input
	HandleKey(key KeyEvent) (Outcome, error) // Feed one atom to the active mode
	Paste(text string)                       // Insert literal text at the cursor
	Resize(rows, cols int)                   // Terminal size changed
	SetFocus(focused bool)

	// State management
	GetState() State                 // Snapshot of the current state
	SetState(State)                  // Replace the state (the mode handler follows State.Mode)
	Apply(update StateUpdate) Outcome // Apply an update the way a resolved action would
	UpdateStatus(string)             // Helper to set status line
	UpdateCommand(string)            // Helper to set command line
	DispatchError(id ErrorId, err error)

	// Buffer access
	ActiveBuffer() *Buffer
	Content() string
	InsertText(text string)   // Insert at the cursor and advance it
	DeleteBackward(count int) // Delete before the cursor

	// Modes and motions
	GetMode() EditorMode
	ActiveTree() *MotionBranch
	Tree(mode Mode) *MotionBranch
	Interpreter() InterpreterState
	TabSize() int

	GetSelectionStatus(pos Cursor) SelectionType
	IsNormalMode() bool
	IsInsertMode() bool
	IsVisualMode() bool
}

type Clipboard interface {
	Write(text string) error
	Read() (string, error)
}

// TermInfo holds the terminal dimensions in cells.
type TermInfo struct {
	Rows int
	Cols int
}
