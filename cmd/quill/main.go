package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "quill: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("stdout is not a terminal")
	}

	if os.Getenv("QUILL_DEBUG") != "" {
		f, err := tea.LogToFile("quill-debug.log", "quill")
		if err != nil {
			return err
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	var path string
	if len(args) > 0 {
		path = args[0]
	}

	p := tea.NewProgram(newApp(path), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
