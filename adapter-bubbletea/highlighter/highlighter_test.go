package highlighter

import (
	"testing"

	"github.com/alecthomas/chroma/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLines_PositionsCoverLine(t *testing.T) {
	h := New("go", "catppuccin-mocha")
	lines := []string{"package main", "", "func main() {}"}

	tokens := h.Lines(lines)
	require.Len(t, tokens, len(lines))
	for row, line := range lines {
		positions := tokens[row]
		end := 0
		for _, p := range positions {
			assert.Equal(t, end, p.StartCol, "row %d", row)
			end = p.EndCol
		}
		assert.Equal(t, len([]rune(line)), end, "row %d", row)
	}
}

func TestLines_KeywordToken(t *testing.T) {
	h := New("go", "catppuccin-mocha")
	lines := []string{"package main"}

	tok, ok := TokenAt(h.Lines(lines)[0], 0)
	require.True(t, ok)
	assert.Equal(t, chroma.KeywordNamespace, tok.Type)
}

func TestLines_RetokenisesOnChange(t *testing.T) {
	h := New("go", "catppuccin-mocha")

	require.NotEmpty(t, h.Lines([]string{"package main"})[0])
	assert.Empty(t, h.Lines([]string{""})[0])
	assert.Equal(t, 2, h.tokenizations)
}

func TestLines_CachesUnchangedContent(t *testing.T) {
	h := New("go", "catppuccin-mocha")
	lines := []string{"package main", "", "func main() {}"}

	first := h.Lines(lines)
	second := h.Lines(lines)

	assert.Equal(t, 1, h.tokenizations)
	assert.Equal(t, first, second)
}

func TestNew_UnknownLanguageFallsBack(t *testing.T) {
	h := New("no-such-language", "no-such-style")
	lines := []string{"hello"}

	tok, ok := TokenAt(h.Lines(lines)[0], 2)
	require.True(t, ok)
	assert.Equal(t, "hello", tok.Value)
	assert.NotPanics(t, func() { h.StyleFor(tok.Type) })
}

func TestTokenAt_Miss(t *testing.T) {
	_, ok := TokenAt(nil, 0)
	assert.False(t, ok)
}
