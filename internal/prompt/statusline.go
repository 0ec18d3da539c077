package prompt

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/marcus/treeline/internal/command"
	"github.com/marcus/treeline/internal/styles"
)

// StatusLine owns the bottom line of the panel: either an informational
// message or an active prompt session. Prompt histories persist here,
// keyed by prompt label, for the lifetime of the process.
type StatusLine struct {
	histories map[string][]string
	session   *Session

	infoMsg   string
	infoIsErr bool
}

// NewStatusLine returns an empty status line.
func NewStatusLine() *StatusLine {
	return &StatusLine{histories: make(map[string][]string)}
}

// HasFocus reports whether a modal session is active. While it is, every
// key event belongs to the status line.
func (sl *StatusLine) HasFocus() bool { return sl.session != nil }

// Open starts a modal session for the given prompt, seeding it with the
// stored history for that prompt kind.
func (sl *StatusLine) Open(spec Spec) {
	sl.Clear()
	history := sl.histories[spec.Label]
	delete(sl.histories, spec.Label)
	sl.session = newSession(spec, history)
}

// HandleKey forwards a key to the active session. When the session ends
// its history is stored and the resulting command, if any, is returned.
func (sl *StatusLine) HandleKey(msg tea.KeyMsg) (command.Command, bool) {
	if sl.session == nil {
		return nil, false
	}
	done, cmd, ok := sl.session.HandleKey(msg)
	if done {
		sl.histories[sl.session.spec.Label] = sl.session.finalHistory()
		sl.session = nil
	}
	return cmd, ok
}

// CancelPrompt aborts any active session.
func (sl *StatusLine) CancelPrompt() (command.Command, bool) {
	if sl.session == nil {
		return nil, false
	}
	cmd, ok := sl.session.cancel()
	sl.histories[sl.session.spec.Label] = sl.session.finalHistory()
	sl.session = nil
	return cmd, ok
}

// Info replaces the status message with an informational one.
func (sl *StatusLine) Info(text string) {
	sl.infoMsg, sl.infoIsErr = text, false
}

// Error replaces the status message with an error.
func (sl *StatusLine) Error(text string) {
	sl.infoMsg, sl.infoIsErr = text, true
}

// Clear removes the status message.
func (sl *StatusLine) Clear() {
	sl.infoMsg, sl.infoIsErr = "", false
}

// Message returns the current status message and whether it is an error.
func (sl *StatusLine) Message() (string, bool) { return sl.infoMsg, sl.infoIsErr }

// View renders the status line into the given width.
func (sl *StatusLine) View(width int) string {
	if sl.session != nil {
		label := styles.PromptLabel.Render(sl.session.spec.Label)
		return ansi.Truncate(label+sl.session.input.View(), width, "")
	}
	style := styles.StatusInfo
	if sl.infoIsErr {
		style = styles.StatusError
	}
	return ansi.Truncate(style.Render(sl.infoMsg), width, "")
}
