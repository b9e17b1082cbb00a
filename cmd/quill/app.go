package main

import (
	"log"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/iw2rmb/quill"
	"github.com/iw2rmb/quill/buffer"
	"github.com/iw2rmb/quill/editor"
)

const (
	helpMessage   = "HELP: Ctrl-S = save | Ctrl-Q = quit"
	savedMessage  = "File saved successfully"
	saveErrorText = "Error writing file!"
	openErrorText = "ERR: Could not open file: "
)

// barRows is the number of screen rows below the editor.
const barRows = 2

type app struct {
	editor  editor.Model
	message string
	width   int
	title   string

	statusStyle  lipgloss.Style
	messageStyle lipgloss.Style
}

func newApp(path string) app {
	b := buffer.New()
	message := helpMessage
	if path != "" {
		opened, err := buffer.Open(path)
		if err != nil {
			log.Printf("open: %v", err)
			message = openErrorText + path
		} else {
			b = opened
		}
	}
	return app{
		editor:       editor.New(editor.Config{Buffer: b, Style: editor.DefaultStyle()}),
		message:      message,
		statusStyle:  lipgloss.NewStyle().Reverse(true),
		messageStyle: lipgloss.NewStyle(),
	}
}

func (a app) Init() tea.Cmd { return nil }

func (a app) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.editor = a.editor.SetSize(msg.Width, max(msg.Height-barRows, 0))
	case editor.SaveMsg:
		if msg.Err != nil {
			log.Printf("save %s: %v", msg.Source, msg.Err)
			a.message = saveErrorText
		} else {
			a.message = savedMessage
		}
	default:
		a.editor, cmd = a.editor.Update(msg)
		if a.editor.Quitting() {
			log.Printf("quit: %s", a.editor.Status().FileName)
		}
	}

	if title := a.windowTitle(); title != a.title {
		a.title = title
		cmd = tea.Batch(cmd, tea.SetWindowTitle(title))
	}
	return a, cmd
}

func (a app) View() string {
	if a.editor.Quitting() {
		return ""
	}
	var sb strings.Builder
	sb.WriteString(a.editor.View())
	sb.WriteByte('\n')
	sb.WriteString(a.statusStyle.Render(a.statusBar()))
	sb.WriteByte('\n')
	sb.WriteString(a.messageStyle.Render(ansi.Truncate(a.message, a.width, "")))
	return sb.String()
}

func (a app) windowTitle() string {
	return a.editor.Status().FileName + " - " + quill.Name
}

// statusBar lays out "<name> - <n> lines (modified)" on the left and the
// caret line on the right, padded to the screen width.
func (a app) statusBar() string {
	st := a.editor.Status()
	left := st.FileName + " - " + st.LinesString()
	if mod := st.ModifiedString(); mod != "" {
		left += " " + mod
	}
	right := st.CaretString()

	if a.width <= 0 {
		return ""
	}
	rw := ansi.StringWidth(right)
	if rw >= a.width {
		return ansi.Truncate(right, a.width, "")
	}
	left = ansi.Truncate(left, a.width-rw, "")
	gap := a.width - rw - ansi.StringWidth(left)
	return left + strings.Repeat(" ", gap) + right
}
