package core

// Cursor is a position in the active buffer: X is the column, Y the row,
// both zero based and counted in characters.
type Cursor struct {
	X int
	Y int
}

// Before reports whether c comes before o in document order.
func (c Cursor) Before(o Cursor) bool {
	return c.Y < o.Y || (c.Y == o.Y && c.X < o.X)
}

// --- Cursor Movement ---
//
// Movements return the new cursor and an error when the edge of the line or
// buffer stopped them before count steps. The returned cursor is always valid.

// clamp keeps the cursor inside the buffer. With pastEnd the column may sit
// one past the last character, as in insert mode.
func (c Cursor) clamp(buffer *Buffer, pastEnd bool) Cursor {
	lastRow := buffer.LineCount() - 1
	c.Y = min(max(c.Y, 0), lastRow)

	lineLen := buffer.LineLen(c.Y)
	maxCol := lineLen
	if !pastEnd && lineLen > 0 {
		maxCol = lineLen - 1
	}
	c.X = min(max(c.X, 0), maxCol)
	return c
}

// MoveLeft moves the cursor left by count characters within the line.
func (c Cursor) MoveLeft(buffer *Buffer, count int) (Cursor, error) {
	for range count {
		if c.X <= 0 {
			return c, ErrStartOfLine
		}
		c.X--
	}
	return c, nil
}

// MoveRight moves the cursor right by count characters within the line.
// With pastEnd the cursor may stop one past the last character.
func (c Cursor) MoveRight(buffer *Buffer, count int, pastEnd bool) (Cursor, error) {
	limit := buffer.LineLen(c.Y)
	if !pastEnd {
		limit = max(limit-1, 0)
	}
	for range count {
		if c.X >= limit {
			return c, ErrEndOfLine
		}
		c.X++
	}
	return c, nil
}

// MoveUp moves the cursor up by count lines, keeping the column where the
// new line allows it.
func (c Cursor) MoveUp(buffer *Buffer, count int, pastEnd bool) (Cursor, error) {
	if c.Y <= 0 {
		return c, ErrStartOfBuffer
	}
	var err error
	for range count {
		if c.Y <= 0 {
			err = ErrStartOfBuffer
			break
		}
		c.Y--
	}
	return c.clamp(buffer, pastEnd), err
}

// MoveDown moves the cursor down by count lines.
func (c Cursor) MoveDown(buffer *Buffer, count int, pastEnd bool) (Cursor, error) {
	lastRow := buffer.LineCount() - 1
	if c.Y >= lastRow {
		return c, ErrEndOfBuffer
	}
	var err error
	for range count {
		if c.Y >= lastRow {
			err = ErrEndOfBuffer
			break
		}
		c.Y++
	}
	return c.clamp(buffer, pastEnd), err
}

// MoveToLineStart moves to column 0.
func (c Cursor) MoveToLineStart() Cursor {
	c.X = 0
	return c
}

// MoveToLineEnd moves to the last character of the line, or one past it.
func (c Cursor) MoveToLineEnd(buffer *Buffer, pastEnd bool) Cursor {
	c.X = buffer.LineLen(c.Y)
	return c.clamp(buffer, pastEnd)
}

// NormalizeSelection orders two cursors so that start is not after end.
func NormalizeSelection(a, b Cursor) (start, end Cursor) {
	if b.Before(a) {
		return b, a
	}
	return a, b
}
