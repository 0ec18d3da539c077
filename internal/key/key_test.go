package key

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestFromKeyMsg(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.KeyMsg
		want KeyPress
	}{
		{"rune", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}, Char('q')},
		{"alt rune", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'l'}, Alt: true}, KeyPress{Rune: 'l', Mods: ModAlt}},
		{"enter as newline", tea.KeyMsg{Type: tea.KeyEnter}, Char('\n')},
		{"tab as char", tea.KeyMsg{Type: tea.KeyTab}, Char('\t')},
		{"space as char", tea.KeyMsg{Type: tea.KeySpace}, Char(' ')},
		{"ctrl a", tea.KeyMsg{Type: tea.KeyCtrlA}, KeyPress{Rune: 'a', Mods: ModCtrl}},
		{"ctrl z", tea.KeyMsg{Type: tea.KeyCtrlZ}, KeyPress{Rune: 'z', Mods: ModCtrl}},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, KeyPress{Sym: SymEsc}},
		{"shift tab", tea.KeyMsg{Type: tea.KeyShiftTab}, KeyPress{Sym: SymBacktab}},
		{"backspace", tea.KeyMsg{Type: tea.KeyBackspace}, KeyPress{Sym: SymBackspace}},
		{"delete", tea.KeyMsg{Type: tea.KeyDelete}, KeyPress{Sym: SymDelete}},
		{"up", tea.KeyMsg{Type: tea.KeyUp}, KeyPress{Sym: SymUp}},
		{"pgdown", tea.KeyMsg{Type: tea.KeyPgDown}, KeyPress{Sym: SymPageDown}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FromKeyMsg(tt.msg); got != tt.want {
				t.Errorf("FromKeyMsg(%v) = %+v, want %+v", tt.msg, got, tt.want)
			}
		})
	}
}

func TestFromKeyMsgMatchesNotation(t *testing.T) {
	// What the terminal delivers must equal what the notation parses to,
	// or map commands could never fire.
	tests := []struct {
		notation string
		msg      tea.KeyMsg
	}{
		{"<c-a>", tea.KeyMsg{Type: tea.KeyCtrlA}},
		{"<return>", tea.KeyMsg{Type: tea.KeyEnter}},
		{"<space>", tea.KeyMsg{Type: tea.KeySpace}},
		{"<a-x>", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}, Alt: true}},
		{"<backtab>", tea.KeyMsg{Type: tea.KeyShiftTab}},
		{"q", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}},
	}
	for _, tt := range tests {
		t.Run(tt.notation, func(t *testing.T) {
			parsed, err := Parse(tt.notation)
			if err != nil {
				t.Fatal(err)
			}
			if got := FromKeyMsg(tt.msg); got != parsed {
				t.Errorf("FromKeyMsg = %+v, Parse(%q) = %+v, want equal", got, tt.notation, parsed)
			}
		})
	}
}
