package app

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/marcus/treeline/internal/command"
	"github.com/marcus/treeline/internal/prompt"
)

// exec carries out one command. Mutation failures land on the status
// line rather than aborting the session.
func (m *Model) exec(c command.Command) tea.Cmd {
	switch c := c.(type) {
	case command.Quit:
		m.quitting = true
		return tea.Quit

	case command.Shell:
		return m.runShell(c.Text, func(err error) tea.Msg {
			return shellDoneMsg{err: err}
		})

	case command.Open:
		path := c.Path
		if path == "" {
			path = m.tree.Entry().Path
		}
		return m.runShellOn(m.cfg.OpenCmd, path, func(err error) tea.Msg {
			return openDoneMsg{err: err}
		})

	case command.CommandString:
		return m.runScript(c.Text)

	case command.SetOption:
		if err := m.cfg.Set(c.Name, c.Value); err != nil {
			m.status.Error(err.Error())
			return nil
		}
		m.resync()
		return nil

	case command.Echo:
		m.status.Info(c.Text)
		return nil

	case command.ChangeDir:
		m.changeDir(c.Path)
		return nil

	case command.MapKey:
		m.userKeys.Bind(c.Key, c.Cmd)
		return nil

	case command.Rename:
		m.rename(c.Name)
		return nil

	case command.NewFile:
		m.newFile(c.Name)
		return nil

	case command.NewDir:
		m.newDir(c.Name)
		return nil

	case command.Delete:
		if !c.Confirmed {
			m.status.Open(prompt.DeleteConfirmPrompt())
			return nil
		}
		m.deleteSelected()
		return nil

	case command.Yank:
		path := c.Path
		if path == "" {
			path = m.tree.Entry().Path
		}
		if err := clipboard.WriteAll(path); err != nil {
			m.status.Error(err.Error())
			return nil
		}
		m.status.Info("yanked " + path)
		return nil
	}
	return nil
}

// ApplyScript runs a startup script before the program loop begins. Each
// line is parsed and executed independently; a bad line is logged and the
// rest still run. The terminal is not claimed yet, so shell and open
// commands run synchronously on the real stdio instead of suspending
// the UI, and a quit is recorded for the caller to honor (Quitting).
func (m *Model) ApplyScript(text string) {
	for i, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		c, err := command.ParseLine(line)
		if err != nil {
			m.logger.Warn("startup command skipped", "line", i+1, "err", err)
			continue
		}
		m.execStartup(c)
	}
}

// execStartup executes one startup command. Shell-outs run inline and
// command strings recurse so their shell-outs do too; everything else
// goes through the normal executor.
func (m *Model) execStartup(c command.Command) {
	switch c := c.(type) {
	case command.Shell:
		m.runStartupShell(c.Text, m.tree.Entry().Path)
	case command.Open:
		path := c.Path
		if path == "" {
			path = m.tree.Entry().Path
		}
		m.runStartupShell(m.cfg.OpenCmd, path)
	case command.CommandString:
		cmds, err := command.ParseScript(c.Text)
		if err != nil {
			m.status.Error(err.Error())
			return
		}
		for _, nested := range cmds {
			m.execStartup(nested)
		}
	default:
		m.exec(c)
	}
}

// runStartupShell runs a shell command attached to the process stdio.
func (m *Model) runStartupShell(text, path string) {
	cmd := exec.Command("sh", "-c", text, "--", path)
	cmd.Env = append(os.Environ(),
		"TREELINE_ROOT="+m.tree.Root().Path,
		"TREELINE_ENTRY="+path,
		"TREELINE_DIR="+m.tree.CurrentDir(),
	)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		m.status.Error(err.Error())
	}
	m.resync()
}

// runScript parses a command string and executes the commands in order.
// A quit does not suppress the commands after it; the loop exits once
// the whole sequence has run.
func (m *Model) runScript(text string) tea.Cmd {
	cmds, err := command.ParseScript(text)
	if err != nil {
		m.status.Error(err.Error())
		return nil
	}
	var out []tea.Cmd
	for _, c := range cmds {
		if cmd := m.exec(c); cmd != nil {
			out = append(out, cmd)
		}
	}
	return tea.Batch(out...)
}

// runShell suspends the UI and runs text through sh with the selected
// entry as the positional argument, so scripts can use "$1".
func (m *Model) runShell(text string, done func(error) tea.Msg) tea.Cmd {
	return m.runShellOn(text, m.tree.Entry().Path, done)
}

func (m *Model) runShellOn(text, path string, done func(error) tea.Msg) tea.Cmd {
	cmd := exec.Command("sh", "-c", text, "--", path)
	cmd.Env = append(os.Environ(),
		"TREELINE_ROOT="+m.tree.Root().Path,
		"TREELINE_ENTRY="+path,
		"TREELINE_DIR="+m.tree.CurrentDir(),
	)
	m.logger.Debug("shell", "cmd", text, "arg", path)
	return tea.ExecProcess(cmd, done)
}

// changeDir re-roots the tree. An empty path means the selected entry
// itself, so cd on a file is an error rather than a cd to its parent.
func (m *Model) changeDir(path string) {
	if path == "" {
		path = m.tree.Entry().Path
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		m.status.Error(err.Error())
		return
	}
	info, err := os.Stat(abs)
	if err != nil {
		m.status.Error(err.Error())
		return
	}
	if !info.IsDir() {
		m.status.Error(fmt.Sprintf("not a directory: %s", abs))
		return
	}
	if err := os.Chdir(abs); err != nil {
		m.status.Error(err.Error())
		return
	}
	m.tree.ChangeRoot(m.cfg, abs)
	m.syncWatcher()
}

// rename moves the selected entry to a new name inside its parent. An
// empty name opens a prompt pre-filled with the current name.
func (m *Model) rename(name string) {
	e := m.tree.Entry()
	if name == "" {
		m.status.Open(prompt.RenamePrompt(filepath.Base(e.Path)))
		return
	}
	target := filepath.Join(filepath.Dir(e.Path), name)
	if _, err := os.Lstat(target); err == nil {
		m.status.Error(fmt.Sprintf("destination exists: %s", target))
		return
	}
	if err := os.Rename(e.Path, target); err != nil {
		m.status.Error(err.Error())
		return
	}
	m.resync()
	m.tree.SelectPath(target)
}

// newFile creates a file under the current directory context. A name
// ending in a path separator creates a directory instead.
func (m *Model) newFile(name string) {
	if name == "" {
		m.status.Open(prompt.NewFilePrompt())
		return
	}
	if strings.HasSuffix(name, string(os.PathSeparator)) || strings.HasSuffix(name, "/") {
		m.newDir(strings.TrimRight(name, "/"+string(os.PathSeparator)))
		return
	}
	target := filepath.Join(m.tree.CurrentDir(), name)
	f, err := os.OpenFile(target, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0644)
	if err != nil {
		m.status.Error(err.Error())
		return
	}
	f.Close()
	m.revealNew(target)
}

// newDir creates a directory under the current directory context,
// including intermediate components.
func (m *Model) newDir(name string) {
	if name == "" {
		m.status.Open(prompt.NewDirPrompt())
		return
	}
	target := filepath.Join(m.tree.CurrentDir(), name)
	if _, err := os.Lstat(target); err == nil {
		m.status.Error(fmt.Sprintf("already exists: %s", target))
		return
	}
	if err := os.MkdirAll(target, 0755); err != nil {
		m.status.Error(err.Error())
		return
	}
	m.revealNew(target)
}

// revealNew expands down to a freshly created path and selects it.
func (m *Model) revealNew(path string) {
	m.tree.ExpandToPath(path)
	m.resync()
	m.tree.SelectPath(path)
}

// deleteSelected removes the selected entry, recursively for
// directories. The root itself is never removed.
func (m *Model) deleteSelected() {
	e := m.tree.Entry()
	if e.Path == m.tree.Root().Path {
		m.status.Error("refusing to delete the root")
		return
	}
	if err := os.RemoveAll(e.Path); err != nil {
		m.status.Error(err.Error())
		return
	}
	m.resync()
}
