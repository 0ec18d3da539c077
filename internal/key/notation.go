package key

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// charAliases expands word forms that stand in for a single character.
var charAliases = map[string]rune{
	"return":    '\n',
	"ret":       '\n',
	"semicolon": ';',
	"gt":        '>',
	"lt":        '<',
	"percent":   '%',
	"space":     ' ',
	"tab":       '\t',
}

// namedKeys are the non-character keys. They do not combine with a
// modifier prefix.
var namedKeys = map[string]Sym{
	"esc":       SymEsc,
	"backtab":   SymBacktab,
	"backspace": SymBackspace,
	"del":       SymDelete,
	"home":      SymHome,
	"end":       SymEnd,
	"up":        SymUp,
	"down":      SymDown,
	"left":      SymLeft,
	"right":     SymRight,
	"insert":    SymInsert,
	"pageup":    SymPageUp,
	"pagedown":  SymPageDown,
}

// Parse converts a key notation string into a KeyPress.
//
// The grammar has two forms. The short form is a single bare character:
// "a". The long form is bracketed: "<esc>", "<c-x>", "<a-space>". Inside
// brackets an optional "a-" (alt) or "c-" (control) prefix may precede a
// character body; named keys such as "left" take no prefix. The whole
// input must be consumed.
func Parse(input string) (KeyPress, error) {
	if input == "" {
		return KeyPress{}, fmt.Errorf("empty key notation")
	}
	if input[0] != '<' {
		r, size := utf8.DecodeRuneInString(input)
		if size != len(input) {
			return KeyPress{}, fmt.Errorf("invalid key notation %q: expected a single character", input)
		}
		return Char(r), nil
	}
	if input[len(input)-1] != '>' || len(input) < 3 {
		return KeyPress{}, fmt.Errorf("invalid key notation %q: unterminated '<'", input)
	}
	body := input[1 : len(input)-1]
	if body == "" || strings.ContainsAny(body, "<>") {
		return KeyPress{}, fmt.Errorf("invalid key notation %q", input)
	}

	var mods Mod
	switch {
	case len(body) > 2 && body[:2] == "a-":
		mods, body = ModAlt, body[2:]
	case len(body) > 2 && body[:2] == "c-":
		mods, body = ModCtrl, body[2:]
	}

	if mods == 0 {
		if sym, ok := namedKeys[body]; ok {
			return KeyPress{Sym: sym}, nil
		}
	}
	if r, ok := charAliases[body]; ok {
		return KeyPress{Rune: r, Mods: mods}, nil
	}
	r, size := utf8.DecodeRuneInString(body)
	if size != len(body) {
		return KeyPress{}, fmt.Errorf("unknown key %q in notation %q", body, input)
	}
	return KeyPress{Rune: r, Mods: mods}, nil
}
