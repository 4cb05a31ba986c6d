package core

// StateUpdate describes a change an action wants applied to the editor
// state. The editor applies it in one step, replacing exactly the named
// fields.
type StateUpdate interface {
	isStateUpdate()
}

type (
	// NoUpdate leaves the state untouched.
	NoUpdate struct{}

	// ModeUpdate switches the active mode.
	ModeUpdate struct{ Mode ModeState }

	// BuffersUpdate replaces the list of open buffers.
	BuffersUpdate struct{ Buffers []*Buffer }

	// BufferIdxUpdate selects another open buffer; the cursor moves to its start.
	BufferIdxUpdate struct{ Index int }

	// TermInfoUpdate replaces the terminal dimensions.
	TermInfoUpdate struct{ TermInfo TermInfo }

	// CursorUpdate moves the cursor, and with it the gap of the active buffer.
	CursorUpdate struct{ Cursor Cursor }

	// CommandLineUpdate replaces the command line text.
	CommandLineUpdate struct{ Text string }

	// YankUpdate copies text to the clipboard.
	YankUpdate struct{ Text string }

	// PutUpdate inserts the clipboard text after the cursor.
	PutUpdate struct{}

	// FullUpdate replaces the whole state.
	FullUpdate struct{ State State }

	// HaltUpdate asks the host loop to stop.
	HaltUpdate struct{}

	// BatchUpdate applies its updates in order.
	BatchUpdate []StateUpdate
)

func (NoUpdate) isStateUpdate()          {}
func (ModeUpdate) isStateUpdate()        {}
func (BuffersUpdate) isStateUpdate()     {}
func (BufferIdxUpdate) isStateUpdate()   {}
func (TermInfoUpdate) isStateUpdate()    {}
func (CursorUpdate) isStateUpdate()      {}
func (CommandLineUpdate) isStateUpdate() {}
func (YankUpdate) isStateUpdate()        {}
func (PutUpdate) isStateUpdate()         {}
func (FullUpdate) isStateUpdate()        {}
func (HaltUpdate) isStateUpdate()        {}
func (BatchUpdate) isStateUpdate()       {}

// Batch groups updates that must be applied together.
func Batch(updates ...StateUpdate) StateUpdate {
	return BatchUpdate(updates)
}

// Outcome tells the host loop whether to keep running.
type Outcome int

const (
	Continue Outcome = iota
	Halt
)

func (o Outcome) String() string {
	if o == Halt {
		return "halt"
	}
	return "continue"
}
