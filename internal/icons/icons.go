// Package icons maps tree entries to their display glyphs. Lookup is a
// pure function of the entry's shape and the configured icon mode.
package icons

import (
	"path/filepath"
	"strings"
)

// Plain glyphs used when per-filetype icons are disabled.
const (
	dirClosed  = '' //  folder
	dirOpen    = '' //  open folder
	dirLinked  = '' //  symlinked folder
	filePlain  = '' //  file
	fileLinked = '' //  symlinked file
)

// byExtension is a nerd-font table keyed by lowercase file extension.
// https://www.nerdfonts.com/cheat-sheet
var byExtension = map[string]rune{
	".go":   '',
	".rs":   '',
	".py":   '',
	".js":   '',
	".ts":   '',
	".c":    '',
	".h":    '',
	".cpp":  '',
	".sh":   '',
	".md":   '',
	".json": '',
	".yml":  '',
	".yaml": '',
	".toml": '',
	".lock": '',
	".git":  '',
	".html": '',
	".css":  '',
	".png":  '',
	".jpg":  '',
	".svg":  '',
	".zip":  '',
	".pdf":  '',
	".txt":  '',
}

var byName = map[string]rune{
	"Makefile":   '',
	"Dockerfile": '',
	"LICENSE":    '',
	"go.mod":     '',
	"go.sum":     '',
}

// For returns the icon for an entry.
func For(path string, isDir, isExpanded, isLink, fileIcons bool) rune {
	if fileIcons && !isDir {
		if r, ok := byName[filepath.Base(path)]; ok {
			return r
		}
		ext := strings.ToLower(filepath.Ext(path))
		if r, ok := byExtension[ext]; ok {
			return r
		}
	}
	switch {
	case isDir && isExpanded:
		return dirOpen
	case isDir && isLink:
		return dirLinked
	case isDir:
		return dirClosed
	case isLink:
		return fileLinked
	default:
		return filePlain
	}
}

// Arrow returns the expansion indicator preceding the icon: a triangle
// for directories, a space for files.
func Arrow(isDir, isExpanded bool) rune {
	switch {
	case isDir && isExpanded:
		return '▾'
	case isDir:
		return '▸'
	default:
		return ' '
	}
}
