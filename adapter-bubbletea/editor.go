package adapter_bubbletea

import (
	"context"
	"fmt"
	"strings"
	"time"

	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/ionut-t/miv/adapter-bubbletea/highlighter"
	"github.com/ionut-t/miv/core"
	"github.com/ionut-t/miv/internal/log"
)

type Theme struct {
	NormalModeStyle        lipgloss.Style
	InsertModeStyle        lipgloss.Style
	VisualModeStyle        lipgloss.Style
	StatusLineStyle        lipgloss.Style
	CommandLineStyle       lipgloss.Style
	MessageStyle           lipgloss.Style
	LineNumberStyle        lipgloss.Style
	CurrentLineNumberStyle lipgloss.Style
	SelectionStyle         lipgloss.Style
	ErrorStyle             lipgloss.Style
	TildeStyle             lipgloss.Style
}

var DefaultTheme = Theme{
	NormalModeStyle:        lipgloss.NewStyle().Background(lipgloss.Color("62")).Foreground(lipgloss.Color("255")),
	InsertModeStyle:        lipgloss.NewStyle().Background(lipgloss.Color("26")).Foreground(lipgloss.Color("255")),
	VisualModeStyle:        lipgloss.NewStyle().Background(lipgloss.Color("127")).Foreground(lipgloss.Color("255")),
	CommandLineStyle:       lipgloss.NewStyle().Background(lipgloss.Color("235")).Foreground(lipgloss.Color("255")),
	StatusLineStyle:        lipgloss.NewStyle().Background(lipgloss.Color("236")).Foreground(lipgloss.Color("255")),
	MessageStyle:           lipgloss.NewStyle().Foreground(lipgloss.Color("34")),
	ErrorStyle:             lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	LineNumberStyle:        lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Align(lipgloss.Right),
	CurrentLineNumberStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Align(lipgloss.Right),
	SelectionStyle:         lipgloss.NewStyle().Background(lipgloss.Color("237")),
	TildeStyle:             lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
}

const messageDuration = 3 * time.Second

// Model hosts a core editor inside a bubbletea program. It turns key
// presses into atoms, forwards paste, resize and focus notifications, and
// renders the editor state.
type Model struct {
	editor             core.Editor
	viewport           viewport.Model
	theme              Theme
	highlighter        *highlighter.Highlighter
	showLineNumbers    bool
	showTildeIndicator bool
	err                error // last error returned by the editor, shown until cleared
	fatal              error // set when the program must stop, e.g. ErrViewportTooSmall
	clearMsgCancel     context.CancelFunc
}

type clearMsg struct{}

// New wraps ed. The terminal size is taken from the editor state until a
// tea.WindowSizeMsg arrives.
func New(ed core.Editor) Model {
	ti := ed.GetState().TermInfo
	vp := viewport.New(viewport.WithWidth(ti.Cols), viewport.WithHeight(max(ti.Rows-reservedRows, 0)))

	return Model{
		editor:             ed,
		viewport:           vp,
		theme:              DefaultTheme,
		showLineNumbers:    true,
		showTildeIndicator: true,
	}
}

// WithTheme allows setting a custom theme for the editor.
func (m *Model) WithTheme(theme Theme) {
	m.theme = theme
}

// SetLanguage enables syntax highlighting with a chroma language and style.
// An empty language disables it.
func (m *Model) SetLanguage(language string, theme string) {
	if language == "" {
		m.highlighter = nil
		return
	}
	m.highlighter = highlighter.New(language, theme)
}

// HideLineNumbers controls whether to show line numbers in the viewport.
func (m *Model) HideLineNumbers(hide bool) {
	m.showLineNumbers = !hide
}

// ShowTildeIndicator controls whether rows past the end of the buffer show "~".
func (m *Model) ShowTildeIndicator(show bool) {
	m.showTildeIndicator = show
}

// GetEditor returns the underlying editor instance
func (m *Model) GetEditor() core.Editor {
	return m.editor
}

// Err returns the error that stopped the program, if any.
func (m Model) Err() error {
	return m.fatal
}

func (m *Model) dispatchClearMsg(duration time.Duration) tea.Cmd {
	if m.clearMsgCancel != nil {
		m.clearMsgCancel()
	}

	ctx, cancel := context.WithTimeout(context.Background(), duration)
	m.clearMsgCancel = cancel

	return func() tea.Msg {
		defer cancel()
		<-ctx.Done()
		if ctx.Err() == context.DeadlineExceeded {
			return clearMsg{}
		}
		return nil
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.editor.Resize(msg.Height, msg.Width)

	case tea.FocusMsg:
		m.editor.SetFocus(true)

	case tea.BlurMsg:
		m.editor.SetFocus(false)

	case tea.PasteMsg:
		m.editor.Paste(msg.Content)

	case tea.KeyPressMsg:
		outcome, err := m.editor.HandleKey(convertKey(msg))
		m.err = err
		if err != nil {
			cmds = append(cmds, m.dispatchClearMsg(messageDuration))
		}
		if outcome == core.Halt {
			return m, tea.Quit
		}

	case clearMsg:
		m.err = nil
		m.clearMsgCancel = nil
	}

	if err := m.renderVisibleSlice(); err != nil {
		log.ErrorErr(log.CatRender, "cannot render", err)
		m.fatal = err
		return m, tea.Quit
	}

	return m, tea.Batch(cmds...)
}

func (m Model) View() tea.View {
	var content string
	if m.fatal == nil {
		content = m.render()
	}

	v := tea.NewView(content)
	v.AltScreen = true
	v.ReportFocus = true
	return v
}

// render joins the content window with the status and command lines.
func (m Model) render() string {
	width := m.editor.GetState().TermInfo.Cols

	statusLine := m.getStatusLine()
	if pad := width - lipgloss.Width(statusLine); pad > 0 {
		statusLine += m.theme.StatusLineStyle.Render(strings.Repeat(" ", pad))
	}

	commandLine := m.getCommandLine()
	if pad := width - lipgloss.Width(commandLine); pad > 0 {
		commandLine += m.theme.CommandLineStyle.Render(strings.Repeat(" ", pad))
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewport.View(),
		statusLine,
		commandLine,
	)
}

func (m *Model) modeStyle() lipgloss.Style {
	switch m.editor.GetState().Mode.Mode {
	case core.InsertMode:
		return m.theme.InsertModeStyle
	case core.VisualMode:
		return m.theme.VisualModeStyle
	default:
		return m.theme.NormalModeStyle
	}
}

// getStatusLine renders the mode badge, the buffer name and the cursor
// position.
func (m *Model) getStatusLine() string {
	state := m.editor.GetState()

	badge := strings.Trim(state.StatusLine, "- ")
	statusLine := m.modeStyle().Render(" " + badge + " ")

	name := state.ActiveBuffer().Name
	if name == "" {
		name = "[No Name]"
	}
	if len(state.Buffers) > 1 {
		name = fmt.Sprintf("%s (%d/%d)", name, state.BufferIdx+1, len(state.Buffers))
	}
	left := m.theme.StatusLineStyle.Render(" " + name)

	cursorInfo := fmt.Sprintf("%d:%d ", state.Cursor.Y+1, state.Cursor.X+1)
	gap := strings.Repeat(" ", max(0, state.TermInfo.Cols-lipgloss.Width(statusLine)-lipgloss.Width(left)-lipgloss.Width(cursorInfo)))

	return statusLine + left + m.theme.StatusLineStyle.Render(gap+cursorInfo)
}

func (m *Model) getCommandLine() string {
	text := m.editor.GetState().CommandLine
	if m.err == nil {
		return m.theme.CommandLineStyle.Render(text)
	}

	if text == "" {
		text = m.err.Error()
	}
	return m.theme.ErrorStyle.
		Background(m.theme.CommandLineStyle.GetBackground()).
		Render(text)
}
