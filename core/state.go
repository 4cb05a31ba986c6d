package core

import (
	"errors"
	"fmt"
	"slices"

	"github.com/ionut-t/miv/internal/log"
)

// State represents the complete current state of the editor
type State struct {
	Mode        ModeState // Current editing mode and its data
	Cursor      Cursor    // Cursor in the active buffer
	StatusLine  string    // Content of the status line
	CommandLine string    // Pending keys or the last message
	Buffers     []*Buffer // Open buffers, never empty
	BufferIdx   int       // Index of the active buffer
	TermInfo    TermInfo
	Focused     bool
	Quit        bool // Set once a halt was applied

	BufferCapacity int // Store size of buffers opened by commands
}

// InitialState creates a default state with one empty buffer.
func InitialState(capacity int) State {
	return State{
		Mode:       NewNormalState(),
		StatusLine: NormalStatusLine,
		Buffers:    []*Buffer{NewBuffer("", capacity)},
		TermInfo:   TermInfo{Rows: 24, Cols: 80},
		Focused:    true,

		BufferCapacity: capacity,
	}
}

// ActiveBuffer returns the buffer the cursor lives in.
func (s State) ActiveBuffer() *Buffer {
	if len(s.Buffers) == 0 {
		return nil
	}
	return s.Buffers[min(max(s.BufferIdx, 0), len(s.Buffers)-1)]
}

// EditActive copies the active buffer, applies edit to the copy and returns
// the buffer list with the copy in place. The receiver's buffers are not
// modified.
func (s State) EditActive(edit func(b *Buffer)) []*Buffer {
	buffers := slices.Clone(s.Buffers)
	active := s.ActiveBuffer().Clone()
	active.Seek(s.Cursor)
	edit(active)
	buffers[min(max(s.BufferIdx, 0), len(buffers)-1)] = active
	return buffers
}

// Selection returns the ordered visual selection. ok is false outside
// visual mode.
func (s State) Selection() (start, end Cursor, ok bool) {
	if s.Mode.Mode != VisualMode {
		return Cursor{}, Cursor{}, false
	}
	start, end = NormalizeSelection(s.Mode.VisualStart, s.Cursor)
	return start, end, true
}

// snapshot is the copy handed to actions. The buffer list is cloned so an
// action appending to it cannot reach the live state.
func (s State) snapshot() State {
	s.Buffers = slices.Clone(s.Buffers)
	return s
}

// Option configures an editor created by New.
type Option func(*editor)

// WithTabSize sets how many spaces a tab inserts.
func WithTabSize(n int) Option {
	return func(e *editor) {
		if n > 0 {
			e.tabSize = n
		}
	}
}

// WithInitialCapacity sets the store size of new buffers.
func WithInitialCapacity(n int) Option {
	return func(e *editor) {
		if n > 0 {
			e.capacity = n
		}
	}
}

// WithClipboard sets the clipboard used by yank and put.
func WithClipboard(c Clipboard) Option {
	return func(e *editor) { e.clipboard = c }
}

// WithTermInfo sets the initial terminal size.
func WithTermInfo(t TermInfo) Option {
	return func(e *editor) { e.initialTerm = &t }
}

// WithBindings adds bindings to a mode on top of its defaults. A binding
// for an existing path replaces the default command.
func WithBindings(mode Mode, bindings ...Binding) Option {
	return func(e *editor) {
		e.extra[mode] = append(e.extra[mode], bindings...)
	}
}

// WithBuffers opens the given buffers instead of a single empty one.
func WithBuffers(buffers ...*Buffer) Option {
	return func(e *editor) { e.initialBuffers = buffers }
}

// Concrete implementation of Editor
type editor struct {
	state       State
	currentMode EditorMode
	modes       map[Mode]EditorMode
	trees       map[Mode]*MotionBranch
	extra       map[Mode][]Binding
	interpreter InterpreterState

	clipboard Clipboard // Clipboard interface for yank/put
	tabSize   int
	capacity  int

	initialTerm    *TermInfo
	initialBuffers []*Buffer
}

const defaultTabSize = 4

// New creates a new editor instance. It fails when a binding names an
// unknown command, has an invalid key specification or conflicts with
// another binding of the same mode.
func New(opts ...Option) (Editor, error) {
	e := &editor{
		modes:       make(map[Mode]EditorMode),
		trees:       make(map[Mode]*MotionBranch),
		extra:       make(map[Mode][]Binding),
		interpreter: NewInterpreterState(),
		tabSize:     defaultTabSize,
		capacity:    DefaultCapacity,
	}
	for _, opt := range opts {
		opt(e)
	}

	e.modes[NormalMode] = NewNormalMode()
	e.modes[InsertMode] = NewInsertMode()
	e.modes[VisualMode] = NewVisualMode()

	for name, mode := range e.modes {
		tree, err := buildTree(mode.Bindings(), e.extra[name])
		if err != nil {
			return nil, fmt.Errorf("%s mode: %w", name, err)
		}
		e.trees[name] = tree
	}

	e.state = InitialState(e.capacity)
	if len(e.initialBuffers) > 0 {
		e.state.Buffers = slices.Clone(e.initialBuffers)
	}
	if e.initialTerm != nil {
		e.state.TermInfo = *e.initialTerm
	}

	e.currentMode = e.modes[NormalMode]
	e.currentMode.Enter(e)
	e.syncCursor()

	log.Info(log.CatCore, "editor created", "buffers", len(e.state.Buffers), "tab_size", e.tabSize)
	return e, nil
}

func buildTree(sets ...[]Binding) (*MotionBranch, error) {
	tree := NewMotionTree()
	for _, bindings := range sets {
		for _, b := range bindings {
			seq, err := ParseSequence(b.Keys)
			if err != nil {
				return nil, err
			}
			cmd, err := LookupCommand(b.Command)
			if err != nil {
				return nil, err
			}
			if err := tree.Insert(seq, cmd); err != nil {
				return nil, err
			}
		}
	}
	return tree, nil
}

func (e *editor) HandleKey(key KeyEvent) (Outcome, error) {
	tree := e.ActiveTree()
	next, err := UpdateInterpreter(e.interpreter, tree, key)
	if err != nil {
		e.interpreter = NewInterpreterState()
		var unknown *UnknownMotionError
		if !errors.As(err, &unknown) {
			return Continue, err
		}
		log.Debug(log.CatMotion, "unknown motion", "mode", e.state.Mode, "keys", SequenceString(unknown.Sequence))
		quit := e.state.Quit
		if herr := e.currentMode.HandleUnknown(e, unknown); herr != nil {
			return Continue, NewError(ErrUnknownMotionId, herr)
		}
		// The mode may have replayed a key that resolved to a halt.
		if e.state.Quit && !quit {
			return Halt, nil
		}
		return Continue, nil
	}

	switch st := next.(type) {
	case Pending:
		e.interpreter = st
		e.state.CommandLine = SequenceString(st.Atoms)
		return Continue, nil
	case Done:
		e.interpreter = NewInterpreterState()
		e.state.CommandLine = EmptyMessage
		log.Debug(log.CatMotion, "command resolved", "mode", e.state.Mode, "command", st.Command.Name)
		update := st.Command.Action(e.state.snapshot())
		return e.Apply(update), nil
	}
	return Continue, nil
}

// Apply folds an update into the state. Updates that touch the buffers or
// the cursor leave the gap of the active buffer at the cursor.
func (e *editor) Apply(update StateUpdate) Outcome {
	switch u := update.(type) {
	case nil, NoUpdate:
	case ModeUpdate:
		e.setMode(u.Mode)
	case BuffersUpdate:
		e.state.Buffers = u.Buffers
		if len(e.state.Buffers) == 0 {
			e.state.Buffers = []*Buffer{NewBuffer("", e.capacity)}
		}
		e.state.BufferIdx = min(max(e.state.BufferIdx, 0), len(e.state.Buffers)-1)
		e.syncCursor()
	case BufferIdxUpdate:
		e.state.BufferIdx = min(max(u.Index, 0), len(e.state.Buffers)-1)
		e.state.Cursor = Cursor{}
		e.syncCursor()
	case TermInfoUpdate:
		e.state.TermInfo = u.TermInfo
	case CursorUpdate:
		e.state.Cursor = u.Cursor
		e.syncCursor()
	case CommandLineUpdate:
		e.state.CommandLine = u.Text
	case YankUpdate:
		e.yank(u.Text)
	case PutUpdate:
		e.put()
	case FullUpdate:
		e.SetState(u.State)
	case HaltUpdate:
		e.state.Quit = true
		log.Info(log.CatCore, "halt requested")
		return Halt
	case BatchUpdate:
		outcome := Continue
		for _, sub := range u {
			if e.Apply(sub) == Halt {
				outcome = Halt
			}
		}
		return outcome
	default:
		log.Warn(log.CatCore, "ignoring unknown update", "type", fmt.Sprintf("%T", update))
	}
	return Continue
}

// syncCursor clamps the cursor for the current mode and moves the gap of
// the active buffer onto it.
func (e *editor) syncCursor() {
	buf := e.state.ActiveBuffer()
	c := e.state.Cursor.clamp(buf, e.currentMode.AllowsPastEnd())
	buf.Seek(c)
	e.state.Cursor = c
}

func (e *editor) setMode(ms ModeState) {
	next, ok := e.modes[ms.Mode]
	if !ok {
		log.Warn(log.CatMode, "unknown mode", "mode", ms.Mode)
		return
	}

	from := e.state.Mode.Mode
	e.currentMode.Exit(e)
	e.currentMode = next
	e.state.Mode = ms
	e.interpreter = NewInterpreterState()
	e.currentMode.Enter(e)
	e.syncCursor()

	log.Debug(log.CatMode, "mode changed", "from", from, "to", ms.Mode)
}

func (e *editor) yank(text string) {
	if e.clipboard == nil {
		e.DispatchError(ErrFailedToYankId, ErrClipboardUnavailable)
		return
	}
	if err := e.clipboard.Write(text); err != nil {
		e.DispatchError(ErrFailedToYankId, fmt.Errorf("failed to copy to clipboard: %w", err))
		return
	}
	e.UpdateCommand(YankMessage)
}

// put inserts the clipboard text after the character under the cursor and
// leaves the cursor on the last inserted character.
func (e *editor) put() {
	if e.clipboard == nil {
		e.DispatchError(ErrFailedToPasteId, ErrClipboardUnavailable)
		return
	}
	text, err := e.clipboard.Read()
	if err != nil {
		e.DispatchError(ErrFailedToPasteId, fmt.Errorf("failed to read clipboard: %w", err))
		return
	}
	if text == "" {
		e.DispatchError(ErrNothingToPutId, ErrNothingToPut)
		return
	}

	buf := e.state.ActiveBuffer()
	offset := buf.Offset(e.state.Cursor)
	if buf.LineLen(e.state.Cursor.Y) > 0 && !e.currentMode.AllowsPastEnd() {
		offset++
	}
	buf.Content().MoveGap(offset)
	buf.Insert([]rune(text)...)
	e.state.Cursor = buf.CursorAt(buf.Content().GapIndex() - 1)
	e.syncCursor()
}

// InsertText writes text at the cursor and moves the cursor after it.
func (e *editor) InsertText(text string) {
	if text == "" {
		return
	}
	buf := e.state.ActiveBuffer()
	buf.Insert([]rune(text)...)
	e.state.Cursor = buf.CursorAt(buf.Content().GapIndex())
}

// DeleteBackward removes up to count characters before the cursor.
func (e *editor) DeleteBackward(count int) {
	buf := e.state.ActiveBuffer()
	buf.DeleteBackward(count)
	e.state.Cursor = buf.CursorAt(buf.Content().GapIndex())
}

func (e *editor) Paste(text string) {
	log.Debug(log.CatCore, "paste", "runes", len([]rune(text)))
	e.InsertText(text)
	e.syncCursor()
}

func (e *editor) Resize(rows, cols int) {
	e.Apply(TermInfoUpdate{TermInfo: TermInfo{Rows: rows, Cols: cols}})
}

func (e *editor) SetFocus(focused bool) {
	e.state.Focused = focused
}

func (e *editor) GetState() State {
	return e.state
}

// SetState replaces the state. The mode handler follows the new mode
// without running its enter or exit hooks.
func (e *editor) SetState(state State) {
	if len(state.Buffers) == 0 {
		state.Buffers = []*Buffer{NewBuffer("", e.capacity)}
	}
	state.BufferIdx = min(max(state.BufferIdx, 0), len(state.Buffers)-1)
	if state.BufferCapacity <= 0 {
		state.BufferCapacity = e.capacity
	}
	if mode, ok := e.modes[state.Mode.Mode]; ok {
		e.currentMode = mode
	} else {
		state.Mode = NewNormalState()
		e.currentMode = e.modes[NormalMode]
	}
	e.state = state
	e.interpreter = NewInterpreterState()
	e.syncCursor()
}

// UpdateStatus is a helper for modes to update the status line
func (e *editor) UpdateStatus(status string) {
	e.state.StatusLine = status
}

// UpdateCommand is a helper for modes to update the command line
func (e *editor) UpdateCommand(cmd string) {
	e.state.CommandLine = cmd
}

// DispatchError shows err on the command line and logs it.
func (e *editor) DispatchError(id ErrorId, err error) {
	e.state.CommandLine = err.Error()
	log.ErrorErr(log.CatCore, "editor error", err, "id", int(id))
}

func (e *editor) ActiveBuffer() *Buffer {
	return e.state.ActiveBuffer()
}

func (e *editor) Content() string {
	return e.state.ActiveBuffer().String()
}

func (e *editor) GetMode() EditorMode {
	return e.currentMode
}

func (e *editor) ActiveTree() *MotionBranch {
	return e.trees[e.state.Mode.Mode]
}

func (e *editor) Tree(mode Mode) *MotionBranch {
	return e.trees[mode]
}

func (e *editor) Interpreter() InterpreterState {
	return e.interpreter
}

func (e *editor) TabSize() int {
	return e.tabSize
}

func (e *editor) GetSelectionStatus(pos Cursor) SelectionType {
	start, end, ok := e.state.Selection()
	if !ok {
		return SelectionNone
	}
	if pos.Before(start) || end.Before(pos) {
		return SelectionNone
	}
	return SelectionCharacter
}

func (e *editor) IsNormalMode() bool {
	return e.state.Mode.Mode == NormalMode
}

func (e *editor) IsInsertMode() bool {
	return e.state.Mode.Mode == InsertMode
}

func (e *editor) IsVisualMode() bool {
	return e.state.Mode.Mode == VisualMode
}
