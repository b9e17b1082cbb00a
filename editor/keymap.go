package editor

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// KeyMap defines the editor key bindings.
type KeyMap struct {
	Up, Down, Left, Right    key.Binding
	Home, End                key.Binding
	PageUp, PageDown         key.Binding
	Backspace, Delete, Enter key.Binding
	Tab                      key.Binding
	Save, Quit               key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:    key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up")),
		Down:  key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down")),
		Left:  key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "left")),
		Right: key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "right")),

		Home:     key.NewBinding(key.WithKeys("home"), key.WithHelp("home", "line start")),
		End:      key.NewBinding(key.WithKeys("end"), key.WithHelp("end", "line end")),
		PageUp:   key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "top")),
		PageDown: key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdown", "page bottom")),

		Backspace: key.NewBinding(key.WithKeys("backspace", "ctrl+h"), key.WithHelp("backspace", "delete left")),
		Delete:    key.NewBinding(key.WithKeys("delete"), key.WithHelp("del", "delete right")),
		Enter:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "newline")),
		Tab:       key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "insert tab")),

		Save: key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save")),
		Quit: key.NewBinding(key.WithKeys("ctrl+q"), key.WithHelp("ctrl+q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (km KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.Save, km.Quit}
}

// FullHelp implements help.KeyMap.
func (km KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{km.Up, km.Down, km.Left, km.Right},
		{km.Home, km.End, km.PageUp, km.PageDown},
		{km.Backspace, km.Delete, km.Enter, km.Tab},
		{km.Save, km.Quit},
	}
}

func (km KeyMap) empty() bool {
	for _, group := range km.FullHelp() {
		for _, b := range group {
			if len(b.Keys()) > 0 {
				return false
			}
		}
	}
	return true
}

// Decode maps a key message to the commands it stands for. Keys without a
// meaning decode to nil. A paste yields one command per rune.
func (km KeyMap) Decode(msg tea.KeyMsg) []Command {
	// Runes are text and never match a binding.
	if msg.Type == tea.KeyRunes {
		if msg.Alt && !msg.Paste {
			return nil
		}
		return textCommands(msg.Runes)
	}

	switch {
	case key.Matches(msg, km.Quit):
		return []Command{{Kind: CommandQuit}}
	case key.Matches(msg, km.Save):
		return []Command{{Kind: CommandSave}}

	case key.Matches(msg, km.Up):
		return []Command{MoveCommand(DirUp)}
	case key.Matches(msg, km.Down):
		return []Command{MoveCommand(DirDown)}
	case key.Matches(msg, km.Left):
		return []Command{MoveCommand(DirLeft)}
	case key.Matches(msg, km.Right):
		return []Command{MoveCommand(DirRight)}
	case key.Matches(msg, km.Home):
		return []Command{MoveCommand(DirHome)}
	case key.Matches(msg, km.End):
		return []Command{MoveCommand(DirEnd)}
	case key.Matches(msg, km.PageUp):
		return []Command{MoveCommand(DirPageUp)}
	case key.Matches(msg, km.PageDown):
		return []Command{MoveCommand(DirPageDown)}

	case key.Matches(msg, km.Backspace):
		return []Command{{Kind: CommandBackspace}}
	case key.Matches(msg, km.Delete):
		return []Command{{Kind: CommandDeleteForward}}
	case key.Matches(msg, km.Enter):
		return []Command{{Kind: CommandLineBreak}}
	case key.Matches(msg, km.Tab):
		return []Command{InsertCommand('\t')}
	}

	if msg.Type == tea.KeySpace {
		return []Command{InsertCommand(' ')}
	}
	return nil
}

func textCommands(runes []rune) []Command {
	if len(runes) == 0 {
		return nil
	}
	out := make([]Command, 0, len(runes))
	for _, r := range runes {
		switch r {
		case '\r':
			// "\r\n" and lone "\n" both break once.
		case '\n':
			out = append(out, Command{Kind: CommandLineBreak})
		default:
			out = append(out, InsertCommand(r))
		}
	}
	return out
}
