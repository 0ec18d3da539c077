// Package styles centralizes the lipgloss color palette and the shared
// text styles used by the tree view and status line.
package styles

import "github.com/charmbracelet/lipgloss"

// Color palette - default dark theme
var (
	Primary = lipgloss.Color("#7C3AED") // Purple
	Accent  = lipgloss.Color("#F59E0B") // Amber

	Error = lipgloss.Color("#EF4444") // Red
	Info  = lipgloss.Color("#3B82F6") // Blue

	TextPrimary   = lipgloss.Color("#F9FAFB")
	TextSecondary = lipgloss.Color("#9CA3AF")
	TextMuted     = lipgloss.Color("#6B7280")

	BgSelected = lipgloss.Color("#374151")
)

// Tree line styles
var (
	// Directory names
	Dir = lipgloss.NewStyle().
		Foreground(Info).
		Bold(true)

	// Regular file names
	File = lipgloss.NewStyle().
		Foreground(TextPrimary)

	// Symlinks keep their base style but are italicized
	Link = lipgloss.NewStyle().
		Italic(true).
		Foreground(TextSecondary)

	// Expansion arrows and file icons
	Icon = lipgloss.NewStyle().
		Foreground(TextMuted)

	// The selected line
	Selected = lipgloss.NewStyle().
			Background(BgSelected).
			Bold(true)
)

// Status line styles
var (
	StatusInfo = lipgloss.NewStyle().
			Foreground(TextSecondary)

	StatusError = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	PromptLabel = lipgloss.NewStyle().
			Foreground(Accent).
			Bold(true)
)
