// Package command defines the closed set of user-invocable actions and the
// textual command language that produces them.
package command

import "github.com/marcus/treeline/internal/key"

// Command is one unit of user-invocable behavior. It is produced by a key
// binding, a typed command line, or a prompt submission, and is immutable
// once constructed. The set of variants is closed.
type Command interface {
	isCommand()
}

// Quit requests the main loop to exit after the current cycle.
type Quit struct{}

// Shell runs the given text through an external shell, with the selected
// entry as "$1".
type Shell struct {
	Text string
}

// Open runs the configured open command against Path, or against the
// current selection when Path is empty.
type Open struct {
	Path string
}

// CommandString re-enters the command parser with Text and executes the
// resulting sequence in order.
type CommandString struct {
	Text string
}

// SetOption mutates one named config option.
type SetOption struct {
	Name  string
	Value string
}

// Echo writes an informational message to the status line.
type Echo struct {
	Text string
}

// ChangeDir changes the working directory and re-roots the tree there.
// An empty Path means the current selection.
type ChangeDir struct {
	Path string
}

// MapKey binds Key to Cmd, overwriting any previous binding.
type MapKey struct {
	Key key.KeyPress
	Cmd Command
}

// Rename renames the selected entry to Name within its parent directory.
// An empty Name opens a prompt pre-filled with the current filename.
type Rename struct {
	Name string
}

// NewFile creates a file named Name under the current directory context.
// A Name ending in a path separator creates a directory instead. An empty
// Name opens a prompt.
type NewFile struct {
	Name string
}

// NewDir creates a directory named Name under the current directory
// context. An empty Name opens a prompt.
type NewDir struct {
	Name string
}

// Delete removes the selected entry. Unless Confirmed, a confirmation
// prompt is opened first.
type Delete struct {
	Confirmed bool
}

// Yank copies Path (or the current selection when empty) to the system
// clipboard.
type Yank struct {
	Path string
}

func (Quit) isCommand()          {}
func (Shell) isCommand()         {}
func (Open) isCommand()          {}
func (CommandString) isCommand() {}
func (SetOption) isCommand()     {}
func (Echo) isCommand()          {}
func (ChangeDir) isCommand()     {}
func (MapKey) isCommand()        {}
func (Rename) isCommand()        {}
func (NewFile) isCommand()       {}
func (NewDir) isCommand()        {}
func (Delete) isCommand()        {}
func (Yank) isCommand()          {}
