// Package key defines the structural identity of a key press and the
// textual notation used to describe one (e.g. "<c-a>", "<return>", "q").
package key

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// Mod is a bitset of key modifiers.
type Mod uint8

const (
	ModAlt Mod = 1 << iota
	ModCtrl
	ModShift
)

// Has reports whether all modifiers in m are set.
func (m Mod) Has(want Mod) bool { return m&want == want }

// Sym identifies a non-character key. SymRune means the press carries a
// character in KeyPress.Rune.
type Sym uint8

const (
	SymRune Sym = iota
	SymEsc
	SymBacktab
	SymBackspace
	SymDelete
	SymHome
	SymEnd
	SymUp
	SymDown
	SymLeft
	SymRight
	SymInsert
	SymPageUp
	SymPageDown
)

var symNames = map[Sym]string{
	SymEsc:       "esc",
	SymBacktab:   "backtab",
	SymBackspace: "backspace",
	SymDelete:    "del",
	SymHome:      "home",
	SymEnd:       "end",
	SymUp:        "up",
	SymDown:      "down",
	SymLeft:      "left",
	SymRight:     "right",
	SymInsert:    "insert",
	SymPageUp:    "pageup",
	SymPageDown:  "pagedown",
}

// KeyPress is the structural identity of a single key press. Equality and
// hashing are by value, so it can be used directly as a map key.
type KeyPress struct {
	Sym  Sym
	Rune rune
	Mods Mod
}

// Char returns a character key press with no modifiers.
func Char(r rune) KeyPress { return KeyPress{Sym: SymRune, Rune: r} }

// String renders the press in notation form, round-tripping through Parse.
func (k KeyPress) String() string {
	var b strings.Builder
	body := symNames[k.Sym]
	if k.Sym == SymRune {
		switch k.Rune {
		case '\n':
			body = "return"
		case '\t':
			body = "tab"
		case ' ':
			body = "space"
		case ';':
			body = "semicolon"
		case '>':
			body = "gt"
		case '<':
			body = "lt"
		case '%':
			body = "percent"
		default:
			body = string(k.Rune)
		}
	}
	if k.Mods == 0 && k.Sym == SymRune && len(body) == 1 {
		return body
	}
	b.WriteByte('<')
	if k.Mods.Has(ModAlt) {
		b.WriteString("a-")
	}
	if k.Mods.Has(ModCtrl) {
		b.WriteString("c-")
	}
	b.WriteString(body)
	b.WriteByte('>')
	return b.String()
}

// FromKeyMsg converts a bubbletea key message into a KeyPress.
// Enter, tab and space arrive as their character forms ('\n', '\t', ' ')
// so notation like <return> matches what the terminal delivers.
func FromKeyMsg(msg tea.KeyMsg) KeyPress {
	var k KeyPress
	if msg.Alt {
		k.Mods |= ModAlt
	}
	switch msg.Type {
	case tea.KeyRunes:
		if len(msg.Runes) > 0 {
			k.Rune = msg.Runes[0]
		}
	case tea.KeyEnter:
		k.Rune = '\n'
	case tea.KeyTab:
		k.Rune = '\t'
	case tea.KeySpace:
		k.Rune = ' '
	case tea.KeyEsc:
		k.Sym = SymEsc
	case tea.KeyShiftTab:
		k.Sym = SymBacktab
	case tea.KeyBackspace:
		k.Sym = SymBackspace
	case tea.KeyDelete:
		k.Sym = SymDelete
	case tea.KeyHome:
		k.Sym = SymHome
	case tea.KeyEnd:
		k.Sym = SymEnd
	case tea.KeyUp:
		k.Sym = SymUp
	case tea.KeyDown:
		k.Sym = SymDown
	case tea.KeyLeft:
		k.Sym = SymLeft
	case tea.KeyRight:
		k.Sym = SymRight
	case tea.KeyPgUp:
		k.Sym = SymPageUp
	case tea.KeyPgDown:
		k.Sym = SymPageDown
	default:
		if r, ok := ctrlRune(msg.Type); ok {
			k.Rune = r
			k.Mods |= ModCtrl
			break
		}
		if msg.String() == "insert" {
			k.Sym = SymInsert
		}
	}
	return k
}

// ctrlRune maps the control-key types onto their letter, so ctrl+a becomes
// the same value <c-a> parses to.
func ctrlRune(t tea.KeyType) (rune, bool) {
	switch t {
	case tea.KeyCtrlA, tea.KeyCtrlB, tea.KeyCtrlC, tea.KeyCtrlD, tea.KeyCtrlE,
		tea.KeyCtrlF, tea.KeyCtrlG, tea.KeyCtrlH, tea.KeyCtrlJ, tea.KeyCtrlK,
		tea.KeyCtrlL, tea.KeyCtrlN, tea.KeyCtrlO, tea.KeyCtrlP, tea.KeyCtrlQ,
		tea.KeyCtrlR, tea.KeyCtrlS, tea.KeyCtrlT, tea.KeyCtrlU, tea.KeyCtrlV,
		tea.KeyCtrlW, tea.KeyCtrlX, tea.KeyCtrlY, tea.KeyCtrlZ:
		return 'a' + rune(t-tea.KeyCtrlA), true
	}
	return 0, false
}
