package msg

import tea "github.com/charmbracelet/bubbletea"

// ResyncMsg asks the model to rescan the filesystem and rebuild the
// flattened tree. Sent by the periodic tick and by the watcher.
type ResyncMsg struct{}

// InfoMsg puts an informational message on the status line.
type InfoMsg struct {
	Text string
}

// ErrorMsg puts an error message on the status line.
type ErrorMsg struct {
	Text string
}

// ShowInfo returns a command delivering an InfoMsg.
func ShowInfo(text string) tea.Cmd {
	return func() tea.Msg { return InfoMsg{Text: text} }
}

// ShowError returns a command delivering an ErrorMsg.
func ShowError(text string) tea.Cmd {
	return func() tea.Msg { return ErrorMsg{Text: text} }
}
