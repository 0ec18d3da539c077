package command

import (
	"fmt"
	"strings"

	"github.com/marcus/treeline/internal/key"
)

// Keywords returns the command keywords the parser recognizes, in a fixed
// order suitable for completion.
func Keywords() []string {
	return []string{
		"cd", "delete", "delete!", "echo", "eval", "map", "mk", "mkdir",
		"open", "quit", "rename", "set", "shell", "yank",
	}
}

// ParseScript parses a multi-line command script. Blank lines and lines
// starting with '#' are skipped. Parsing stops at the first malformed
// line.
func ParseScript(text string) ([]Command, error) {
	var cmds []Command
	for i, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		cmd, err := ParseLine(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		cmds = append(cmds, cmd)
	}
	return cmds, nil
}

// ParseLine parses a single command line into a Command.
func ParseLine(line string) (Command, error) {
	word, rest := splitWord(line)
	switch word {
	case "":
		return nil, fmt.Errorf("empty command")
	case "quit":
		if rest != "" {
			return nil, fmt.Errorf("quit takes no arguments")
		}
		return Quit{}, nil
	case "shell":
		if rest == "" {
			return nil, fmt.Errorf("shell requires a command")
		}
		return Shell{Text: rest}, nil
	case "open":
		return Open{Path: rest}, nil
	case "eval":
		if rest == "" {
			return nil, fmt.Errorf("eval requires a command string")
		}
		return CommandString{Text: rest}, nil
	case "set":
		name, value := splitWord(rest)
		if name == "" || value == "" {
			return nil, fmt.Errorf("usage: set <option> <value>")
		}
		return SetOption{Name: name, Value: value}, nil
	case "echo":
		return Echo{Text: rest}, nil
	case "cd":
		return ChangeDir{Path: rest}, nil
	case "map":
		notation, cmdText := splitWord(rest)
		if notation == "" || cmdText == "" {
			return nil, fmt.Errorf("usage: map <key> <command>")
		}
		k, err := key.Parse(notation)
		if err != nil {
			return nil, err
		}
		nested, err := ParseLine(cmdText)
		if err != nil {
			return nil, fmt.Errorf("map %s: %w", notation, err)
		}
		return MapKey{Key: k, Cmd: nested}, nil
	case "rename":
		return Rename{Name: rest}, nil
	case "mk":
		return NewFile{Name: rest}, nil
	case "mkdir":
		return NewDir{Name: rest}, nil
	case "delete":
		if rest != "" {
			return nil, fmt.Errorf("delete takes no arguments")
		}
		return Delete{}, nil
	case "delete!":
		if rest != "" {
			return nil, fmt.Errorf("delete! takes no arguments")
		}
		return Delete{Confirmed: true}, nil
	case "yank":
		return Yank{Path: rest}, nil
	default:
		return nil, fmt.Errorf("unknown command %q", word)
	}
}

// splitWord splits off the first whitespace-delimited word, returning it
// and the trimmed remainder of the line.
func splitWord(s string) (string, string) {
	s = strings.TrimSpace(s)
	i := strings.IndexFunc(s, func(r rune) bool { return r == ' ' || r == '\t' })
	if i < 0 {
		return s, ""
	}
	return s[:i], strings.TrimSpace(s[i+1:])
}
