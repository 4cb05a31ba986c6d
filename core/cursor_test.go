package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCursor_MoveLeft(t *testing.T) {
	b := NewBufferFromString("", "hello")

	c, err := Cursor{X: 3}.MoveLeft(b, 2)
	assert.NoError(t, err)
	assert.Equal(t, Cursor{X: 1}, c)

	c, err = Cursor{X: 1}.MoveLeft(b, 5)
	assert.ErrorIs(t, err, ErrStartOfLine)
	assert.Equal(t, Cursor{X: 0}, c)
}

func TestCursor_MoveRight(t *testing.T) {
	b := NewBufferFromString("", "abc")

	c, err := Cursor{X: 1}.MoveRight(b, 1, false)
	assert.NoError(t, err)
	assert.Equal(t, Cursor{X: 2}, c)

	c, err = Cursor{X: 2}.MoveRight(b, 1, false)
	assert.ErrorIs(t, err, ErrEndOfLine)
	assert.Equal(t, Cursor{X: 2}, c)

	c, err = Cursor{X: 2}.MoveRight(b, 1, true)
	assert.NoError(t, err)
	assert.Equal(t, Cursor{X: 3}, c)

	_, err = Cursor{}.MoveRight(NewBuffer("", 4), 1, false)
	assert.ErrorIs(t, err, ErrEndOfLine)
}

func TestCursor_MoveUpDownClampsColumn(t *testing.T) {
	b := NewBufferFromString("", "long line\nab\nlonger line")

	c, err := Cursor{X: 8, Y: 0}.MoveDown(b, 1, false)
	assert.NoError(t, err)
	assert.Equal(t, Cursor{X: 1, Y: 1}, c)

	c, err = Cursor{X: 8, Y: 0}.MoveDown(b, 1, true)
	assert.NoError(t, err)
	assert.Equal(t, Cursor{X: 2, Y: 1}, c)

	c, err = Cursor{X: 1, Y: 1}.MoveDown(b, 5, false)
	assert.ErrorIs(t, err, ErrEndOfBuffer)
	assert.Equal(t, Cursor{X: 1, Y: 2}, c)

	c, err = Cursor{X: 4, Y: 2}.MoveUp(b, 1, false)
	assert.NoError(t, err)
	assert.Equal(t, Cursor{X: 1, Y: 1}, c)

	c, err = Cursor{X: 0, Y: 0}.MoveUp(b, 1, false)
	assert.ErrorIs(t, err, ErrStartOfBuffer)
	assert.Equal(t, Cursor{}, c)

	c, err = Cursor{X: 0, Y: 2}.MoveDown(b, 1, false)
	assert.ErrorIs(t, err, ErrEndOfBuffer)
	assert.Equal(t, Cursor{Y: 2}, c)
}

func TestCursor_LineStartEnd(t *testing.T) {
	b := NewBufferFromString("", "abc\n")

	assert.Equal(t, Cursor{Y: 0}, Cursor{X: 2}.MoveToLineStart())
	assert.Equal(t, Cursor{X: 2}, Cursor{}.MoveToLineEnd(b, false))
	assert.Equal(t, Cursor{X: 3}, Cursor{}.MoveToLineEnd(b, true))
	assert.Equal(t, Cursor{Y: 1}, Cursor{Y: 1}.MoveToLineEnd(b, false))
}

func TestNormalizeSelection(t *testing.T) {
	a, b := Cursor{X: 3, Y: 1}, Cursor{X: 5, Y: 0}

	start, end := NormalizeSelection(a, b)
	assert.Equal(t, b, start)
	assert.Equal(t, a, end)

	start, end = NormalizeSelection(b, a)
	assert.Equal(t, b, start)
	assert.Equal(t, a, end)

	start, end = NormalizeSelection(a, a)
	assert.Equal(t, a, start)
	assert.Equal(t, a, end)
}
