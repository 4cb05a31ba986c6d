package adapter_bubbletea

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/rivo/uniseg"

	"github.com/ionut-t/miv/adapter-bubbletea/highlighter"
	"github.com/ionut-t/miv/core"
)

// reservedRows are the status and command lines below the content window.
const reservedRows = 2

// ErrViewportTooSmall is returned when the terminal cannot show a single
// content cell. The program stops with it.
var ErrViewportTooSmall = errors.New("viewport too small")

// contentWindow returns the first visible buffer row and the number of
// content rows. The cursor line is kept vertically centred.
func contentWindow(ti core.TermInfo, cursorRow int) (top, rows int, err error) {
	rows = ti.Rows - reservedRows
	if ti.Cols < 1 || rows < 1 {
		return 0, 0, fmt.Errorf("%w: %dx%d", ErrViewportTooSmall, ti.Cols, ti.Rows)
	}
	return max(0, cursorRow-rows/2), rows, nil
}

// lineNumberWidth computes the gutter width, or 0 when the gutter is hidden
// or would leave no room for text.
func (m *Model) lineNumberWidth(totalLines, cols int) int {
	if !m.showLineNumbers {
		return 0
	}
	width := min(max(4, len(strconv.Itoa(max(1, totalLines))))+1, 10)
	if cols-width < 1 {
		return 0
	}
	return width
}

// renderVisibleSlice renders the rows of the active buffer that fit the
// terminal into the viewport.
func (m *Model) renderVisibleSlice() error {
	state := m.editor.GetState()

	top, rows, err := contentWindow(state.TermInfo, state.Cursor.Y)
	if err != nil {
		return err
	}

	lines := state.ActiveBuffer().Lines()
	gutter := m.lineNumberWidth(len(lines), state.TermInfo.Cols)
	textWidth := state.TermInfo.Cols - gutter
	cursorLine := lines[min(max(state.Cursor.Y, 0), len(lines)-1)]
	left := scrollLeft([]rune(cursorLine), state.Cursor.X, textWidth)

	var tokens [][]highlighter.TokenPosition
	if m.highlighter != nil {
		tokens = m.highlighter.Lines(lines)
	}

	var b strings.Builder
	for i := range rows {
		if i > 0 {
			b.WriteByte('\n')
		}

		row := top + i
		if row >= len(lines) {
			if m.showTildeIndicator {
				b.WriteString(m.theme.TildeStyle.Render("~"))
			}
			continue
		}

		if gutter > 0 {
			style := m.theme.LineNumberStyle
			if row == state.Cursor.Y {
				style = m.theme.CurrentLineNumberStyle
			}
			b.WriteString(style.Width(gutter - 1).Render(strconv.Itoa(row+1)))
			b.WriteByte(' ')
		}

		var rowTokens []highlighter.TokenPosition
		if row < len(tokens) {
			rowTokens = tokens[row]
		}
		b.WriteString(m.renderLine(state, lines[row], row, left, textWidth, rowTokens))
	}

	m.viewport.SetWidth(state.TermInfo.Cols)
	m.viewport.SetHeight(rows)
	m.viewport.SetContent(b.String())
	m.viewport.SetYOffset(0)
	return nil
}

// scrollLeft returns the first column to draw so that the cursor cell fits
// in width display cells. A cursor past the end of the line takes one cell.
func scrollLeft(line []rune, cursorX, width int) int {
	cursorX = min(max(cursorX, 0), len(line))
	used := 1
	if cursorX < len(line) {
		used = uniseg.StringWidth(string(line[cursorX]))
	}
	for _, r := range line[:cursorX] {
		used += uniseg.StringWidth(string(r))
	}

	left := 0
	for used > width && left < cursorX {
		used -= uniseg.StringWidth(string(line[left]))
		left++
	}
	return left
}

// renderLine styles the cells of one line starting at column left, clipped
// to width display cells. Syntax colours come first, the selection
// background over them, and the cursor cell last.
func (m *Model) renderLine(state core.State, line string, row, left, width int, tokens []highlighter.TokenPosition) string {
	runes := []rune(line)
	cursorOnRow := row == state.Cursor.Y && state.Focused

	var b strings.Builder
	used := 0
	for col := left; col < len(runes); col++ {
		ch := string(runes[col])
		w := uniseg.StringWidth(ch)
		if used+w > width {
			break
		}
		used += w

		style := lipgloss.NewStyle()
		if tok, ok := highlighter.TokenAt(tokens, col); ok {
			style = m.highlighter.StyleFor(tok.Type)
		}
		if m.editor.GetSelectionStatus(core.Cursor{X: col, Y: row}) != core.SelectionNone {
			style = style.Background(m.theme.SelectionStyle.GetBackground())
		}
		if cursorOnRow && col == state.Cursor.X {
			style = m.modeStyle()
		}
		b.WriteString(style.Render(ch))
	}

	// The cursor may sit past the last character, e.g. in insert mode or
	// on an empty line.
	if cursorOnRow && state.Cursor.X >= len(runes) && used < width {
		b.WriteString(m.modeStyle().Render(" "))
	}
	return b.String()
}
