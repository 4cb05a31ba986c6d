package core

import (
	"strings"

	"github.com/ionut-t/miv/internal/log"
)

// DefaultCapacity is the initial store size of a new buffer.
const DefaultCapacity = 64

// Buffer is one open document: its characters, a display name and an
// optional backing location. The gap of the content sits wherever the last
// edit happened; the editor keeps it on the cursor.
type Buffer struct {
	content  *GapBuffer[rune]
	Name     string
	Location string // empty when the buffer has no backing file
}

// NewBuffer creates an empty buffer with the given initial capacity.
func NewBuffer(name string, capacity int) *Buffer {
	return &Buffer{
		content: NewGapBuffer[rune](capacity),
		Name:    name,
	}
}

// NewBufferFromString creates a buffer holding text with the gap at the start.
func NewBufferFromString(name, text string) *Buffer {
	runes := []rune(text)
	b := NewBuffer(name, len(runes)+DefaultCapacity)
	b.content.Insert(runes...)
	b.content.MoveGap(0)
	return b
}

// Content exposes the underlying gap buffer.
func (b *Buffer) Content() *GapBuffer[rune] {
	return b.content
}

// Clone returns an independent copy.
func (b *Buffer) Clone() *Buffer {
	return &Buffer{
		content:  b.content.Clone(),
		Name:     b.Name,
		Location: b.Location,
	}
}

// Len returns the number of characters.
func (b *Buffer) Len() int {
	return b.content.Len()
}

// IsEmpty reports whether the buffer holds no characters.
func (b *Buffer) IsEmpty() bool {
	return b.content.Len() == 0
}

func (b *Buffer) String() string {
	return string(b.content.Items())
}

// Lines splits the content on newlines. An empty buffer has one empty line.
func (b *Buffer) Lines() []string {
	return strings.Split(b.String(), "\n")
}

// LineCount returns the number of lines.
func (b *Buffer) LineCount() int {
	n := 1
	for r := range b.content.All() {
		if r == '\n' {
			n++
		}
	}
	return n
}

// LineLen returns the number of characters on row, excluding the newline.
func (b *Buffer) LineLen(row int) int {
	start, ok := b.lineStart(row)
	if !ok {
		return 0
	}
	n := 0
	for i := start; i < b.content.Len(); i++ {
		r, _ := b.content.At(i)
		if r == '\n' {
			break
		}
		n++
	}
	return n
}

// lineStart returns the offset of the first character of row.
func (b *Buffer) lineStart(row int) (int, bool) {
	if row < 0 {
		return 0, false
	}
	if row == 0 {
		return 0, true
	}
	line := 0
	i := 0
	for r := range b.content.All() {
		i++
		if r == '\n' {
			line++
			if line == row {
				return i, true
			}
		}
	}
	return 0, false
}

// Offset converts a cursor into a logical offset. Columns past the end of
// the line clamp to the line end; rows past the last line clamp to the end.
func (b *Buffer) Offset(c Cursor) int {
	c.Y = max(c.Y, 0)
	row, col := 0, 0
	i := 0
	for r := range b.content.All() {
		if row == c.Y && (col >= c.X || r == '\n') {
			return i
		}
		if r == '\n' {
			row++
			col = 0
		} else {
			col++
		}
		i++
	}
	return i
}

// CursorAt converts a logical offset into a cursor.
func (b *Buffer) CursorAt(offset int) Cursor {
	var c Cursor
	i := 0
	for r := range b.content.All() {
		if i >= offset {
			break
		}
		if r == '\n' {
			c.Y++
			c.X = 0
		} else {
			c.X++
		}
		i++
	}
	return c
}

// Seek moves the gap to the cursor's offset.
func (b *Buffer) Seek(c Cursor) {
	b.content.MoveGap(b.Offset(c))
}

// Insert writes runes at the gap. The gap ends up after them.
func (b *Buffer) Insert(runes ...rune) {
	before := b.content.Cap()
	b.content.Insert(runes...)
	if b.content.Cap() != before {
		log.Debug(log.CatCore, "buffer grew", "name", b.Name, "from", before, "to", b.content.Cap())
	}
}

// DeleteBackward removes up to n characters before the gap.
func (b *Buffer) DeleteBackward(n int) {
	b.content.Delete(n)
}

// DeleteRange removes the characters in [start, end) and leaves the gap at start.
func (b *Buffer) DeleteRange(start, end int) {
	start = max(start, 0)
	end = min(end, b.content.Len())
	if end <= start {
		return
	}
	b.content.MoveGap(end)
	b.content.Delete(end - start)
}

// Text returns the characters in [start, end).
func (b *Buffer) Text(start, end int) string {
	return string(b.content.Slice(start, end))
}

// LineRange returns the offsets spanning row including its trailing newline.
// The last line has no newline; when it is removed the preceding newline is
// included instead so no empty line is left behind.
func (b *Buffer) LineRange(row int) (start, end int) {
	start, ok := b.lineStart(row)
	if !ok {
		return 0, 0
	}
	end = start + b.LineLen(row)
	if end < b.content.Len() {
		return start, end + 1
	}
	if start > 0 {
		return start - 1, end
	}
	return start, end
}
