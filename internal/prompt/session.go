package prompt

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/marcus/treeline/internal/command"
)

// Session is one active modal input. The history slice always has the
// live editing slot at index 0, mirroring the buffer; older submissions
// follow, newest first.
type Session struct {
	spec    Spec
	input   textinput.Model
	history []string
	histIdx int
}

func newSession(spec Spec, history []string) *Session {
	input := textinput.New()
	input.Prompt = ""
	input.SetValue(spec.Initial)
	input.CursorEnd()
	input.Focus()
	return &Session{
		spec:    spec,
		input:   input,
		history: append([]string{spec.Initial}, history...),
	}
}

// Value returns the current buffer contents.
func (s *Session) Value() string { return s.input.Value() }

// HandleKey feeds one key into the session. done reports that the
// session ended (submit or cancel); cmd is the command to execute, if
// the ending produced one.
func (s *Session) HandleKey(msg tea.KeyMsg) (done bool, cmd command.Command, ok bool) {
	switch msg.Type {
	case tea.KeyEnter:
		cmd, ok = s.submit()
		return true, cmd, ok
	case tea.KeyEsc:
		cmd, ok = s.cancel()
		return true, cmd, ok
	case tea.KeyUp:
		s.walkHistory(1)
		return false, nil, false
	case tea.KeyDown:
		s.walkHistory(-1)
		return false, nil, false
	case tea.KeyTab:
		s.complete()
		return false, nil, false
	}
	s.input, _ = s.input.Update(msg)
	s.history[0] = s.input.Value()
	return false, nil, false
}

// walkHistory moves the history cursor (positive = older) and replaces
// the buffer with that entry, cursor at end of line.
func (s *Session) walkHistory(delta int) {
	s.histIdx += delta
	if s.histIdx < 0 {
		s.histIdx = 0
	}
	if s.histIdx > len(s.history)-1 {
		s.histIdx = len(s.history) - 1
	}
	s.input.SetValue(s.history[s.histIdx])
	s.input.CursorEnd()
}

// complete replaces the buffer with the common prefix of the candidate
// completions, or the sole candidate plus a trailing space.
func (s *Session) complete() {
	candidates := s.spec.Complete(s.input.Value())
	if len(candidates) == 0 {
		return
	}
	if len(candidates) == 1 {
		s.input.SetValue(candidates[0] + " ")
	} else {
		s.input.SetValue(commonPrefix(candidates))
	}
	s.input.CursorEnd()
	s.history[0] = s.input.Value()
}

func (s *Session) submit() (command.Command, bool) {
	text := s.input.Value()
	s.history[0] = text
	return s.spec.Submit(text)
}

func (s *Session) cancel() (command.Command, bool) {
	// The live, unsubmitted slot does not survive a cancel.
	s.history = s.history[1:]
	return s.spec.Cancel()
}

// finalHistory is the history to persist for this prompt kind, with runs
// of identical entries collapsed.
func (s *Session) finalHistory() []string {
	var out []string
	for _, h := range s.history {
		if len(out) > 0 && out[len(out)-1] == h {
			continue
		}
		out = append(out, h)
	}
	return out
}

func commonPrefix(words []string) string {
	prefix := words[0]
	for _, w := range words[1:] {
		for !strings.HasPrefix(w, prefix) {
			prefix = prefix[:len(prefix)-1]
		}
	}
	return prefix
}
