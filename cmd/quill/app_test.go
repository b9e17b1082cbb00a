package main

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/iw2rmb/quill/editor"
)

func sized(t *testing.T, a app, w, h int) app {
	t.Helper()
	m, _ := a.Update(tea.WindowSizeMsg{Width: w, Height: h})
	return m.(app)
}

func TestNewApp_Unnamed(t *testing.T) {
	a := newApp("")
	if a.message != helpMessage {
		t.Fatalf("message: got %q, want %q", a.message, helpMessage)
	}
	if got := a.windowTitle(); got != "[No Name] - quill" {
		t.Fatalf("title: got %q", got)
	}
}

func TestNewApp_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.txt")
	a := newApp(path)
	if a.message != openErrorText+path {
		t.Fatalf("message: got %q", a.message)
	}
	if a.editor.Buffer().Source() != "" {
		t.Fatalf("expected an unnamed buffer")
	}
}

func TestApp_ResizeLeavesRoomForBars(t *testing.T) {
	a := sized(t, newApp(""), 40, 10)
	if got := a.editor.Size(); got != (editor.Size{Width: 40, Height: 8}) {
		t.Fatalf("editor size: got %+v, want 40x8", got)
	}
	rows := strings.Split(ansi.Strip(a.View()), "\n")
	if len(rows) != 10 {
		t.Fatalf("view rows: got %d, want 10", len(rows))
	}
	if got := rows[9]; got != helpMessage {
		t.Fatalf("message bar: got %q", got)
	}
}

func TestApp_StatusBar(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.txt")
	if err := os.WriteFile(path, []byte("a\nb\nc\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	a := sized(t, newApp(path), 200, 6)

	bar := a.statusBar()
	if ansi.StringWidth(bar) != 200 {
		t.Fatalf("status width: got %d, want 200", ansi.StringWidth(bar))
	}
	if !strings.HasPrefix(bar, path+" - 3 lines") || !strings.HasSuffix(bar, "1/3") {
		t.Fatalf("status: got %q", bar)
	}

	m, _ := a.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	a = m.(app)
	if bar := a.statusBar(); !strings.Contains(bar, "(modified)") {
		t.Fatalf("status after edit: got %q", bar)
	}
}

func TestApp_StatusBarNarrow(t *testing.T) {
	a := sized(t, newApp(""), 3, 4)
	if got := a.statusBar(); got != "1/0" {
		t.Fatalf("narrow status: got %q", got)
	}
}

func TestApp_SaveMessages(t *testing.T) {
	a := sized(t, newApp(""), 40, 6)

	m, _ := a.Update(editor.SaveMsg{Source: "x.txt"})
	if got := m.(app).message; got != savedMessage {
		t.Fatalf("saved: got %q", got)
	}
	m, _ = a.Update(editor.SaveMsg{Source: "x.txt", Err: errors.New("disk full")})
	if got := m.(app).message; got != saveErrorText {
		t.Fatalf("failed save: got %q", got)
	}
}

func TestApp_TitleSentOnlyOnChange(t *testing.T) {
	a := newApp("")
	m, cmd := a.Update(tea.WindowSizeMsg{Width: 20, Height: 5})
	if cmd == nil {
		t.Fatalf("expected a window title command")
	}
	_, cmd = m.Update(tea.WindowSizeMsg{Width: 21, Height: 5})
	if cmd != nil {
		t.Fatalf("unexpected command with unchanged title")
	}
}

func TestApp_QuitClearsView(t *testing.T) {
	a := sized(t, newApp(""), 20, 5)
	m, cmd := a.Update(tea.KeyMsg{Type: tea.KeyCtrlQ})
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if got := m.View(); got != "" {
		t.Fatalf("view after quit: got %q", got)
	}
}
