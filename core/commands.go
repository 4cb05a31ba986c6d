package core

import (
	"fmt"
	"maps"
	"slices"
)

// Binding maps a key specification such as "gg" or "<C-n>" to the name of
// a registered command.
type Binding struct {
	Keys    string
	Command string
}

const (
	CmdQuit            = "quit"
	CmdInsert          = "insert"
	CmdAppend          = "append"
	CmdInsertLineStart = "insert_line_start"
	CmdAppendLineEnd   = "append_line_end"
	CmdOpenBelow       = "open_below"
	CmdVisual          = "visual"
	CmdNormal          = "normal"
	CmdLeft            = "left"
	CmdRight           = "right"
	CmdUp              = "up"
	CmdDown            = "down"
	CmdLineStart       = "line_start"
	CmdLineEnd         = "line_end"
	CmdTop             = "top"
	CmdBottom          = "bottom"
	CmdDeleteChar      = "delete_char"
	CmdDeleteLine      = "delete_line"
	CmdYankSelection   = "yank_selection"
	CmdDeleteSelection = "delete_selection"
	CmdPut             = "put"
	CmdNextBuffer      = "next_buffer"
	CmdPrevBuffer      = "prev_buffer"
	CmdNewBuffer       = "new_buffer"
)

var commands = map[string]Action{
	CmdQuit:            quit,
	CmdInsert:          enterInsert,
	CmdAppend:          appendAfterCursor,
	CmdInsertLineStart: insertLineStart,
	CmdAppendLineEnd:   appendLineEnd,
	CmdOpenBelow:       openBelow,
	CmdVisual:          enterVisual,
	CmdNormal:          enterNormal,
	CmdLeft:            moveLeft,
	CmdRight:           moveRight,
	CmdUp:              moveUp,
	CmdDown:            moveDown,
	CmdLineStart:       lineStart,
	CmdLineEnd:         lineEnd,
	CmdTop:             top,
	CmdBottom:          bottom,
	CmdDeleteChar:      deleteChar,
	CmdDeleteLine:      deleteLine,
	CmdYankSelection:   yankSelection,
	CmdDeleteSelection: deleteSelection,
	CmdPut:             put,
	CmdNextBuffer:      nextBuffer,
	CmdPrevBuffer:      prevBuffer,
	CmdNewBuffer:       newBuffer,
}

// LookupCommand returns the command registered under name.
func LookupCommand(name string) (Command, error) {
	action, ok := commands[name]
	if !ok {
		return Command{}, fmt.Errorf("%w: %q", ErrUnknownCommand, name)
	}
	return Command{Name: name, Action: action}, nil
}

// CommandNames lists the registered command names in sorted order.
func CommandNames() []string {
	return slices.Sorted(maps.Keys(commands))
}

func quit(State) StateUpdate { return HaltUpdate{} }

func enterInsert(State) StateUpdate { return ModeUpdate{Mode: NewInsertState()} }

func enterNormal(State) StateUpdate { return ModeUpdate{Mode: NewNormalState()} }

func enterVisual(s State) StateUpdate { return ModeUpdate{Mode: NewVisualState(s.Cursor)} }

func appendAfterCursor(s State) StateUpdate {
	c := s.Cursor
	if s.ActiveBuffer().LineLen(c.Y) > 0 {
		c.X++
	}
	return Batch(ModeUpdate{Mode: NewInsertState()}, CursorUpdate{Cursor: c})
}

func insertLineStart(s State) StateUpdate {
	return Batch(ModeUpdate{Mode: NewInsertState()}, CursorUpdate{Cursor: s.Cursor.MoveToLineStart()})
}

func appendLineEnd(s State) StateUpdate {
	c := s.Cursor.MoveToLineEnd(s.ActiveBuffer(), true)
	return Batch(ModeUpdate{Mode: NewInsertState()}, CursorUpdate{Cursor: c})
}

func openBelow(s State) StateUpdate {
	buffers := s.EditActive(func(b *Buffer) {
		b.Seek(s.Cursor.MoveToLineEnd(b, true))
		b.Insert('\n')
	})
	return Batch(
		BuffersUpdate{Buffers: buffers},
		ModeUpdate{Mode: NewInsertState()},
		CursorUpdate{Cursor: Cursor{X: 0, Y: s.Cursor.Y + 1}},
	)
}

func pastEnd(s State) bool { return s.Mode.Mode == InsertMode }

// moveWith builds a cursor update from a movement; a movement stopped
// before its first step changes nothing.
func moveWith(s State, move func(Cursor) (Cursor, error)) StateUpdate {
	c, err := move(s.Cursor)
	if err != nil && c == s.Cursor {
		return NoUpdate{}
	}
	return CursorUpdate{Cursor: c}
}

func moveLeft(s State) StateUpdate {
	return moveWith(s, func(c Cursor) (Cursor, error) { return c.MoveLeft(s.ActiveBuffer(), 1) })
}

func moveRight(s State) StateUpdate {
	return moveWith(s, func(c Cursor) (Cursor, error) { return c.MoveRight(s.ActiveBuffer(), 1, pastEnd(s)) })
}

func moveUp(s State) StateUpdate {
	return moveWith(s, func(c Cursor) (Cursor, error) { return c.MoveUp(s.ActiveBuffer(), 1, pastEnd(s)) })
}

func moveDown(s State) StateUpdate {
	return moveWith(s, func(c Cursor) (Cursor, error) { return c.MoveDown(s.ActiveBuffer(), 1, pastEnd(s)) })
}

func lineStart(s State) StateUpdate {
	return CursorUpdate{Cursor: s.Cursor.MoveToLineStart()}
}

func lineEnd(s State) StateUpdate {
	return CursorUpdate{Cursor: s.Cursor.MoveToLineEnd(s.ActiveBuffer(), pastEnd(s))}
}

func top(State) StateUpdate {
	return CursorUpdate{Cursor: Cursor{}}
}

func bottom(s State) StateUpdate {
	return CursorUpdate{Cursor: Cursor{Y: s.ActiveBuffer().LineCount() - 1}}
}

func deleteChar(s State) StateUpdate {
	if s.ActiveBuffer().LineLen(s.Cursor.Y) == 0 {
		return NoUpdate{}
	}
	buffers := s.EditActive(func(b *Buffer) {
		off := b.Offset(s.Cursor)
		b.DeleteRange(off, off+1)
	})
	return Batch(BuffersUpdate{Buffers: buffers}, CursorUpdate{Cursor: s.Cursor})
}

func deleteLine(s State) StateUpdate {
	var lines int
	buffers := s.EditActive(func(b *Buffer) {
		start, end := b.LineRange(s.Cursor.Y)
		b.DeleteRange(start, end)
		lines = b.LineCount()
	})
	return Batch(
		BuffersUpdate{Buffers: buffers},
		CursorUpdate{Cursor: Cursor{Y: min(s.Cursor.Y, lines-1)}},
		CommandLineUpdate{Text: LinesDeletedMessage},
	)
}

// selectionRange converts the visual selection into an offset range that
// includes the character under its end.
func selectionRange(s State, b *Buffer) (start, end int, ok bool) {
	from, to, ok := s.Selection()
	if !ok {
		return 0, 0, false
	}
	return b.Offset(from), min(b.Offset(to)+1, b.Len()), true
}

func yankSelection(s State) StateUpdate {
	b := s.ActiveBuffer()
	start, end, ok := selectionRange(s, b)
	if !ok {
		return NoUpdate{}
	}
	from, _, _ := s.Selection()
	return Batch(
		ModeUpdate{Mode: NewNormalState()},
		CursorUpdate{Cursor: from},
		YankUpdate{Text: b.Text(start, end)},
	)
}

func deleteSelection(s State) StateUpdate {
	start, end, ok := selectionRange(s, s.ActiveBuffer())
	if !ok {
		return NoUpdate{}
	}
	from, _, _ := s.Selection()
	buffers := s.EditActive(func(b *Buffer) {
		b.DeleteRange(start, end)
	})
	return Batch(
		BuffersUpdate{Buffers: buffers},
		ModeUpdate{Mode: NewNormalState()},
		CursorUpdate{Cursor: from},
	)
}

func put(State) StateUpdate { return PutUpdate{} }

func nextBuffer(s State) StateUpdate {
	if len(s.Buffers) < 2 {
		return NoUpdate{}
	}
	return BufferIdxUpdate{Index: (s.BufferIdx + 1) % len(s.Buffers)}
}

func prevBuffer(s State) StateUpdate {
	if len(s.Buffers) < 2 {
		return NoUpdate{}
	}
	return BufferIdxUpdate{Index: (s.BufferIdx - 1 + len(s.Buffers)) % len(s.Buffers)}
}

func newBuffer(s State) StateUpdate {
	capacity := s.BufferCapacity
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	buffers := append(slices.Clone(s.Buffers), NewBuffer("", capacity))
	return Batch(
		BuffersUpdate{Buffers: buffers},
		BufferIdxUpdate{Index: len(buffers) - 1},
		CommandLineUpdate{Text: NewBufferMessage},
	)
}
