package app

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/marcus/treeline/internal/command"
	"github.com/marcus/treeline/internal/key"
	"github.com/marcus/treeline/internal/msg"
	"github.com/marcus/treeline/internal/prompt"
)

// Update routes one message through the model, then keeps the selection
// inside the scrolled window.
func (m Model) Update(message tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.handle(message)
	next.scrollToCursor()
	return next, cmd
}

func (m Model) handle(message tea.Msg) (Model, tea.Cmd) {
	switch message := message.(type) {
	case tea.WindowSizeMsg:
		m.width = message.Width
		m.height = message.Height
		m.ready = true
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(message)

	case tea.MouseMsg:
		return m.handleMouse(message)

	case tickMsg:
		m.resync()
		return m, tick()

	case msg.ResyncMsg:
		m.resync()
		if m.watch != nil {
			return m, listenForChanges(m.watch)
		}
		return m, nil

	case msg.InfoMsg:
		m.status.Info(message.Text)
		return m, nil

	case msg.ErrorMsg:
		m.status.Error(message.Text)
		return m, nil

	case openDoneMsg:
		if message.err != nil {
			m.status.Error(message.err.Error())
		}
		if m.cfg.QuitOnOpen {
			m.quitting = true
			return m, tea.Quit
		}
		m.resync()
		return m, nil

	case shellDoneMsg:
		if message.err != nil {
			m.status.Error(message.err.Error())
		}
		m.resync()
		return m, nil
	}
	return m, nil
}

// handleKey dispatches a key press. A focused prompt consumes every key;
// otherwise the press runs through the user binding table and then
// through the built-in bindings. Both layers fire when both match, so a
// user binding extends a built-in key rather than replacing it.
func (m Model) handleKey(message tea.KeyMsg) (Model, tea.Cmd) {
	if m.status.HasFocus() {
		cmd, ok := m.status.HandleKey(message)
		if !ok {
			return m, nil
		}
		return m, m.exec(cmd)
	}

	k := key.FromKeyMsg(message)
	m.logger.Debug("key", "press", k.String())

	var cmds []tea.Cmd
	if userCmd, ok := m.userKeys.Lookup(k); ok {
		cmds = append(cmds, m.exec(userCmd))
	}
	if builtin, ok := m.builtin(k); ok {
		cmds = append(cmds, builtin)
	}
	return m, tea.Batch(cmds...)
}

// builtin executes the built-in binding for k, if one exists.
func (m *Model) builtin(k key.KeyPress) (tea.Cmd, bool) {
	if k.Mods == key.ModAlt && k.Sym == key.SymRune && k.Rune == 'l' {
		return m.expandOrNext(), true
	}
	if k.Mods != 0 {
		return nil, false
	}

	switch k.Sym {
	case key.SymUp:
		m.tree.SelectPrev()
		return nil, true
	case key.SymDown:
		m.tree.SelectNext()
		return nil, true
	case key.SymRight:
		return m.expandOrNext(), true
	case key.SymLeft:
		m.collapseOrUp()
		return nil, true
	case key.SymEsc:
		m.status.Clear()
		return nil, true
	}
	if k.Sym != key.SymRune {
		return nil, false
	}

	switch k.Rune {
	case 'q':
		return m.exec(command.Quit{}), true
	case 'j':
		m.tree.SelectNext()
		return nil, true
	case 'k':
		m.tree.SelectPrev()
		return nil, true
	case '\n':
		return m.openOrToggle(), true
	case 'l':
		return m.exec(command.ChangeDir{}), true
	case 'h':
		m.collapseOrUp()
		return nil, true
	case '!':
		m.status.Open(prompt.ShellPrompt())
		return nil, true
	case ':':
		m.status.Open(prompt.CommandLinePrompt())
		return nil, true
	case '.':
		return m.exec(command.SetOption{Name: "show_hidden", Value: boolWord(!m.cfg.ShowHidden)}), true
	case 'y':
		return m.exec(command.Yank{}), true
	}
	return nil, false
}

// openOrToggle is the enter behavior: directories toggle, files open.
func (m *Model) openOrToggle() tea.Cmd {
	e := m.tree.Entry()
	if e.IsDir {
		m.tree.ToggleExpanded(e.Path)
		m.resync()
		return nil
	}
	return m.exec(command.Open{})
}

// expandOrNext expands a collapsed directory, otherwise moves down.
func (m *Model) expandOrNext() tea.Cmd {
	e := m.tree.Entry()
	if e.IsDir && !e.IsExpanded() {
		m.tree.Expand(e.Path)
		m.resync()
		return nil
	}
	m.tree.SelectNext()
	return nil
}

// collapseOrUp collapses an expanded directory, otherwise jumps to the
// nearest shallower ancestor line.
func (m *Model) collapseOrUp() {
	e := m.tree.Entry()
	if e.IsDir && e.IsExpanded() {
		m.tree.Collapse(e.Path)
		m.resync()
		return
	}
	m.tree.SelectUp()
}

func (m Model) handleMouse(message tea.MouseMsg) (Model, tea.Cmd) {
	if m.status.HasFocus() {
		return m, nil
	}
	switch message.Button {
	case tea.MouseButtonWheelUp:
		m.tree.SelectPrev()
		return m, nil
	case tea.MouseButtonWheelDown:
		m.tree.SelectNext()
		return m, nil
	case tea.MouseButtonLeft:
		if message.Action != tea.MouseActionPress {
			return m, nil
		}
		n := m.offset + message.Y
		if n >= 0 && n < len(m.tree.Lines()) {
			if n == m.tree.SelectedIndex() {
				return m, m.openOrToggle()
			}
			m.tree.SelectNth(n)
		}
		return m, nil
	}
	return m, nil
}

func boolWord(v bool) string {
	if v {
		return "true"
	}
	return "false"
}
