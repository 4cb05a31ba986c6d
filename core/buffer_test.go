package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestBuffer_Empty(t *testing.T) {
	b := NewBuffer("scratch", 8)

	assert.True(t, b.IsEmpty())
	assert.Equal(t, 1, b.LineCount())
	assert.Equal(t, []string{""}, b.Lines())
	assert.Equal(t, 0, b.LineLen(0))
	assert.Equal(t, 0, b.Offset(Cursor{X: 3, Y: 2}))
}

func TestBuffer_FromStringKeepsGapAtStart(t *testing.T) {
	b := NewBufferFromString("a.txt", "ab\ncd")

	assert.Equal(t, "ab\ncd", b.String())
	assert.Equal(t, 0, b.Content().GapIndex())
	assert.Equal(t, "a.txt", b.Name)
}

func TestBuffer_Lines(t *testing.T) {
	b := NewBufferFromString("", "one\n\nthree\n")

	assert.Equal(t, 4, b.LineCount())
	assert.Equal(t, []string{"one", "", "three", ""}, b.Lines())
	assert.Equal(t, 3, b.LineLen(0))
	assert.Equal(t, 0, b.LineLen(1))
	assert.Equal(t, 5, b.LineLen(2))
	assert.Equal(t, 0, b.LineLen(3))
	assert.Equal(t, 0, b.LineLen(9))
	assert.Equal(t, 0, b.LineLen(-1))
}

func TestBuffer_OffsetAndCursorAt(t *testing.T) {
	b := NewBufferFromString("", "ab\ncd")

	tests := []struct {
		cursor Cursor
		offset int
	}{
		{Cursor{0, 0}, 0},
		{Cursor{1, 0}, 1},
		{Cursor{2, 0}, 2},
		{Cursor{0, 1}, 3},
		{Cursor{2, 1}, 5},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.offset, b.Offset(tt.cursor), "offset of %+v", tt.cursor)
		assert.Equal(t, tt.cursor, b.CursorAt(tt.offset), "cursor at %d", tt.offset)
	}

	// Out of range positions clamp.
	assert.Equal(t, 2, b.Offset(Cursor{X: 9, Y: 0}))
	assert.Equal(t, 5, b.Offset(Cursor{X: 0, Y: 7}))
	assert.Equal(t, 0, b.Offset(Cursor{X: 0, Y: -1}))
}

func TestBuffer_SeekInsert(t *testing.T) {
	b := NewBufferFromString("", "ab\ncd")

	b.Seek(Cursor{X: 1, Y: 1})
	b.Insert('X', 'Y')

	assert.Equal(t, "ab\ncXYd", b.String())
	assert.Equal(t, 6, b.Content().GapIndex())
}

func TestBuffer_InsertGrows(t *testing.T) {
	b := NewBuffer("", 2)
	b.Insert([]rune("hello")...)

	assert.Equal(t, "hello", b.String())
	assert.GreaterOrEqual(t, b.Content().Cap(), 5)
}

func TestBuffer_DeleteBackward(t *testing.T) {
	b := NewBufferFromString("", "hello")
	b.Seek(Cursor{X: 3})

	b.DeleteBackward(2)
	assert.Equal(t, "hlo", b.String())

	b.DeleteBackward(10)
	assert.Equal(t, "lo", b.String())
}

func TestBuffer_DeleteRange(t *testing.T) {
	b := NewBufferFromString("", "hello world")

	b.DeleteRange(2, 7)
	assert.Equal(t, "heorld", b.String())
	assert.Equal(t, 2, b.Content().GapIndex())

	b.DeleteRange(4, 2)
	b.DeleteRange(-3, 1)
	assert.Equal(t, "eorld", b.String())

	b.DeleteRange(3, 100)
	assert.Equal(t, "eor", b.String())
}

func TestBuffer_Text(t *testing.T) {
	b := NewBufferFromString("", "ab\ncd")
	assert.Equal(t, "b\nc", b.Text(1, 4))
}

func TestBuffer_LineRange(t *testing.T) {
	b := NewBufferFromString("", "ab\ncd\nef")

	start, end := b.LineRange(0)
	assert.Equal(t, [2]int{0, 3}, [2]int{start, end})

	start, end = b.LineRange(1)
	assert.Equal(t, [2]int{3, 6}, [2]int{start, end})

	start, end = b.LineRange(2)
	assert.Equal(t, [2]int{5, 8}, [2]int{start, end})

	single := NewBufferFromString("", "ab")
	start, end = single.LineRange(0)
	assert.Equal(t, [2]int{0, 2}, [2]int{start, end})

	start, end = b.LineRange(5)
	assert.Equal(t, [2]int{0, 0}, [2]int{start, end})
}

func TestBuffer_CloneIsIndependent(t *testing.T) {
	b := NewBufferFromString("a", "abc")
	b.Location = "/tmp/a"

	c := b.Clone()
	c.Seek(Cursor{X: 3})
	c.Insert('d')

	assert.Equal(t, "abc", b.String())
	assert.Equal(t, "abcd", c.String())
	assert.Equal(t, "/tmp/a", c.Location)
}

func TestBuffer_OffsetCursorRoundTripProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		text := rapid.StringOf(rapid.SampledFrom([]rune("ab\nç "))).Draw(t, "text")
		b := NewBufferFromString("", text)
		offset := rapid.IntRange(0, b.Len()).Draw(t, "offset")

		c := b.CursorAt(offset)
		if got := b.Offset(c); got != offset {
			t.Fatalf("offset %d -> %+v -> %d in %q", offset, c, got, text)
		}
	})
}

func TestBuffer_LineRangeRemovesOneLineProperty(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		lines := rapid.SliceOfN(rapid.StringOf(rapid.SampledFrom([]rune("xyz"))), 2, 6).Draw(rt, "lines")
		text := ""
		for i, l := range lines {
			if i > 0 {
				text += "\n"
			}
			text += l
		}
		b := NewBufferFromString("", text)
		row := rapid.IntRange(0, len(lines)-1).Draw(rt, "row")

		start, end := b.LineRange(row)
		b.DeleteRange(start, end)

		if b.LineCount() != len(lines)-1 {
			rt.Fatalf("deleting row %d of %q left %d lines", row, text, b.LineCount())
		}
	})
}
