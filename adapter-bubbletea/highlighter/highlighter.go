package highlighter

import (
	"strings"
	"sync"

	"charm.land/lipgloss/v2"
	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"

	"github.com/ionut-t/miv/internal/log"
)

// Highlighter handles syntax highlighting for the editor
type Highlighter struct {
	lexer chroma.Lexer
	style *chroma.Style

	mu            sync.Mutex
	source        string            // content the cached tokens were built from
	lines         [][]TokenPosition // tokens per line of source
	tokenizations int
	styleCache    map[chroma.TokenType]lipgloss.Style
}

// TokenPosition represents a token's position in the original line
type TokenPosition struct {
	Token    chroma.Token
	StartCol int
	EndCol   int
}

// New creates a highlighter for a chroma language and style name. Unknown
// names fall back to plain text and the default style.
func New(language string, theme string) *Highlighter {
	lexer := lexers.Get(language)
	if lexer == nil {
		log.Warn(log.CatRender, "unknown language, using plain text", "language", language)
		lexer = lexers.Fallback
	}

	return &Highlighter{
		lexer:      chroma.Coalesce(lexer),
		style:      styles.Get(theme),
		styleCache: make(map[chroma.TokenType]lipgloss.Style),
	}
}

// Lines returns the token positions of every line. The content is joined
// once per call and tokenised again only when it changed since the previous
// call, since multi-line constructs need the full text. The result must not
// be modified.
func (h *Highlighter) Lines(lines []string) [][]TokenPosition {
	h.mu.Lock()
	defer h.mu.Unlock()

	content := strings.Join(lines, "\n")
	if h.lines == nil || content != h.source {
		h.tokenize(content, len(lines))
	}
	return h.lines
}

func (h *Highlighter) tokenize(content string, lineCount int) {
	h.tokenizations++
	h.source = content
	h.lines = make([][]TokenPosition, lineCount)
	if content == "" {
		return
	}

	iterator, err := h.lexer.Tokenise(nil, content)
	if err != nil {
		// Leave every line unstyled rather than retrying on each render.
		log.ErrorErr(log.CatRender, "tokenise failed", err)
		return
	}

	row, col := 0, 0
	add := func(t chroma.TokenType, value string) {
		if value == "" || row >= lineCount {
			return
		}
		n := len([]rune(value))
		h.lines[row] = append(h.lines[row], TokenPosition{
			Token:    chroma.Token{Type: t, Value: value},
			StartCol: col,
			EndCol:   col + n,
		})
		col += n
	}

	for _, token := range iterator.Tokens() {
		value := token.Value
		for {
			before, after, found := strings.Cut(value, "\n")
			add(token.Type, before)
			if !found {
				break
			}
			row++
			col = 0
			value = after
		}
	}
}

// StyleFor converts a chroma token type to a lipgloss style.
func (h *Highlighter) StyleFor(tokenType chroma.TokenType) lipgloss.Style {
	h.mu.Lock()
	defer h.mu.Unlock()

	if style, ok := h.styleCache[tokenType]; ok {
		return style
	}

	entry := h.style.Get(tokenType)

	style := lipgloss.NewStyle()
	if entry.Colour.IsSet() {
		style = style.Foreground(lipgloss.Color(entry.Colour.String()))
	}
	if entry.Bold == chroma.Yes {
		style = style.Bold(true)
	}
	if entry.Italic == chroma.Yes {
		style = style.Italic(true)
	}
	if entry.Underline == chroma.Yes {
		style = style.Underline(true)
	}

	h.styleCache[tokenType] = style
	return style
}

// TokenAt finds which token contains the given column.
func TokenAt(positions []TokenPosition, col int) (chroma.Token, bool) {
	for _, pos := range positions {
		if col >= pos.StartCol && col < pos.EndCol {
			return pos.Token, true
		}
	}
	return chroma.Token{}, false
}
