package editor

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/quill/buffer"
)

// Model is the caret and viewport controller for one buffer. It is also a
// Bubble Tea component.
//
// Every command is applied in full (edit, caret clamp, scroll) before the
// next one; the Model is not safe for concurrent use.
type Model struct {
	cfg Config
	buf *buffer.Buffer

	caret  buffer.Pos
	size   Size
	offset Position

	// dirty is set by edits, resizes, and scrolls; cleared by Render.
	dirty    bool
	quitting bool

	// View cache, rebuilt when stale or when the caret cell moved.
	frame      []string
	frameCaret Position
	stale      bool
}

// SaveMsg reports the outcome of a save command to the Bubble Tea host.
type SaveMsg struct {
	Source string
	Err    error
}

func New(cfg Config) Model {
	cfg = cfg.withDefaults()
	m := Model{
		cfg: cfg,
		buf: cfg.Buffer,
	}
	m.markDirty()
	m.refreshFrame()
	return m
}

// Buffer returns the edited buffer.
func (m Model) Buffer() *buffer.Buffer { return m.buf }

// Caret returns the caret's logical location.
func (m Model) Caret() buffer.Pos { return m.caret }

// Size returns the viewport size.
func (m Model) Size() Size { return m.size }

// ScrollOffset returns the document cell shown at the viewport's top left.
func (m Model) ScrollOffset() Position { return m.offset }

// NeedsRedraw reports whether rows changed since the last render.
func (m Model) NeedsRedraw() bool { return m.dirty }

// Quitting reports whether a quit command was applied.
func (m Model) Quitting() bool { return m.quitting }

// SetSize resizes the viewport.
func (m Model) SetSize(width, height int) Model {
	_ = (&m).Apply(ResizeCommand(width, height))
	m.refreshFrame()
	return m
}

// Apply runs cmd to completion. Only a failed save returns an error; every
// other command either takes effect or is a no-op.
func (m *Model) Apply(cmd Command) error {
	switch cmd.Kind {
	case CommandInsertChar:
		m.insertChar(cmd.Char)
	case CommandDeleteForward:
		m.deleteForward()
	case CommandBackspace:
		m.backspace()
	case CommandLineBreak:
		m.lineBreak()
	case CommandMove:
		m.move(cmd.Dir)
	case CommandResize:
		m.resize(cmd.Size)
	case CommandSave:
		return m.buf.Save()
	case CommandQuit:
		m.quitting = true
	}
	return nil
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []Command
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		cmds = []Command{ResizeCommand(msg.Width, msg.Height)}
	case tea.KeyMsg:
		cmds = m.cfg.KeyMap.Decode(msg)
	default:
		return m, nil
	}

	var out []tea.Cmd
	for _, c := range cmds {
		err := (&m).Apply(c)
		switch c.Kind {
		case CommandSave:
			out = append(out, saveResult(m.buf.Source(), err))
		case CommandQuit:
			out = append(out, tea.Quit)
		}
	}
	m.refreshFrame()
	switch len(out) {
	case 0:
		return m, nil
	case 1:
		return m, out[0]
	}
	return m, tea.Batch(out...)
}

// View returns the styled rows of the viewport, caret included.
func (m Model) View() string {
	return strings.Join(m.frame, "\n")
}

func (m *Model) markDirty() {
	m.dirty = true
	m.stale = true
}

func saveResult(source string, err error) tea.Cmd {
	return func() tea.Msg {
		return SaveMsg{Source: source, Err: err}
	}
}
