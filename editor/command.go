package editor

// CommandKind identifies an editor command.
type CommandKind uint8

const (
	CommandInsertChar CommandKind = iota
	CommandDeleteForward
	CommandBackspace
	CommandLineBreak
	CommandMove
	CommandResize
	CommandSave
	CommandQuit
)

// Direction is the caret movement requested by a CommandMove.
type Direction uint8

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
	DirHome     // line start
	DirEnd      // line end
	DirPageUp   // first line
	DirPageDown // viewport height - 1
)

// Command is a decoded user action. Only the field matching Kind is used.
type Command struct {
	Kind CommandKind
	Char rune      // CommandInsertChar
	Dir  Direction // CommandMove
	Size Size      // CommandResize
}

// InsertCommand inserts r at the caret.
func InsertCommand(r rune) Command {
	return Command{Kind: CommandInsertChar, Char: r}
}

// MoveCommand moves the caret in direction d.
func MoveCommand(d Direction) Command {
	return Command{Kind: CommandMove, Dir: d}
}

// ResizeCommand sets the viewport to width x height cells.
func ResizeCommand(width, height int) Command {
	return Command{Kind: CommandResize, Size: Size{Width: width, Height: height}}
}
