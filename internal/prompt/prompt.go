// Package prompt implements the modal single-line input sessions and the
// status line that hosts them. Each prompt kind carries its own payload
// and submit semantics; histories are kept per kind for the lifetime of
// the process.
package prompt

import (
	"strings"

	"github.com/marcus/treeline/internal/command"
)

// Kind enumerates the prompt variants.
type Kind int

const (
	KindShell Kind = iota
	KindCommandLine
	KindRename
	KindNewFile
	KindNewDir
	KindDeleteConfirm
)

// Spec describes one prompt: its kind, the label shown before the input
// (which doubles as the history key) and optional pre-filled text.
type Spec struct {
	Kind    Kind
	Label   string
	Initial string
}

// ShellPrompt asks for a shell command.
func ShellPrompt() Spec { return Spec{Kind: KindShell, Label: "!"} }

// CommandLinePrompt asks for a command string.
func CommandLinePrompt() Spec { return Spec{Kind: KindCommandLine, Label: ":"} }

// RenamePrompt asks for a new name, pre-filled with the current one.
func RenamePrompt(oldName string) Spec {
	return Spec{Kind: KindRename, Label: "Rename>", Initial: oldName}
}

// NewFilePrompt asks for a file name.
func NewFilePrompt() Spec { return Spec{Kind: KindNewFile, Label: "mk>"} }

// NewDirPrompt asks for a directory name.
func NewDirPrompt() Spec { return Spec{Kind: KindNewDir, Label: "New dir>"} }

// DeleteConfirmPrompt asks for delete confirmation.
func DeleteConfirmPrompt() Spec {
	return Spec{Kind: KindDeleteConfirm, Label: "delete? [y/N]>"}
}

// Submit maps the finalized text to the command the prompt stands for.
// The second result is false when submission produces no command.
func (s Spec) Submit(text string) (command.Command, bool) {
	switch s.Kind {
	case KindShell:
		return command.Shell{Text: text}, true
	case KindCommandLine:
		return command.CommandString{Text: text}, true
	case KindRename:
		return command.Rename{Name: text}, true
	case KindNewFile:
		return command.NewFile{Name: text}, true
	case KindNewDir:
		return command.NewDir{Name: text}, true
	case KindDeleteConfirm:
		if text == "y" || text == "Y" {
			return command.Delete{Confirmed: true}, true
		}
		return nil, false
	}
	return nil, false
}

// Cancel maps an aborted session to a command. No kind currently emits
// one.
func (s Spec) Cancel() (command.Command, bool) {
	return nil, false
}

// Complete returns candidate completions for the current text. Only the
// command-line prompt offers any: the command keywords.
func (s Spec) Complete(text string) []string {
	if s.Kind != KindCommandLine {
		return nil
	}
	if strings.ContainsAny(text, " \t") {
		return nil
	}
	var out []string
	for _, kw := range command.Keywords() {
		if strings.HasPrefix(kw, text) {
			out = append(out, kw)
		}
	}
	return out
}
