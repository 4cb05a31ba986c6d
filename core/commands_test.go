package core

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupCommand(t *testing.T) {
	cmd, err := LookupCommand(CmdDeleteLine)
	require.NoError(t, err)
	assert.Equal(t, CmdDeleteLine, cmd.Name)
	assert.NotNil(t, cmd.Action)

	_, err = LookupCommand("frobnicate")
	require.ErrorIs(t, err, ErrUnknownCommand)
	assert.Contains(t, err.Error(), `"frobnicate"`)
}

func TestCommandNames_SortedAndComplete(t *testing.T) {
	names := CommandNames()

	assert.True(t, slices.IsSorted(names))
	assert.Len(t, names, len(commands))
	for _, mode := range []EditorMode{NewNormalMode(), NewInsertMode(), NewVisualMode()} {
		for _, b := range mode.Bindings() {
			assert.Contains(t, names, b.Command, "%s binding %q", mode.Name(), b.Keys)
		}
	}
}

func TestActions_DoNotMutateState(t *testing.T) {
	buf := NewBufferFromString("", "one\ntwo")
	state := InitialState(DefaultCapacity)
	state.Buffers = []*Buffer{buf}
	state.Cursor = Cursor{X: 1, Y: 0}

	for _, name := range CommandNames() {
		cmd, err := LookupCommand(name)
		require.NoError(t, err)

		cmd.Action(state.snapshot())

		assert.Equal(t, "one\ntwo", buf.String(), "after %s", name)
		assert.Len(t, state.Buffers, 1, "after %s", name)
	}
}

func TestNewBuffer_DoesNotShareBacking(t *testing.T) {
	state := InitialState(DefaultCapacity)
	state.Buffers = make([]*Buffer, 1, 4)
	state.Buffers[0] = NewBuffer("a", 8)

	first := newBuffer(state).(BatchUpdate)[0].(BuffersUpdate).Buffers
	second := newBuffer(state).(BatchUpdate)[0].(BuffersUpdate).Buffers

	assert.NotSame(t, first[1], second[1])
	assert.Len(t, state.Buffers, 1)
}
