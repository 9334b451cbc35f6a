package theme

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/renato0307/hookpin/internal/domain"
)

// Result line styles
var (
	FailedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("15")).
			Background(ColorFailed)

	PassedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(ColorPassed)

	SkippedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(ColorSkipped)

	ReasonStyle = lipgloss.NewStyle().
			Foreground(ColorReason)

	DetailStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)
)

// Message styles
var (
	ErrorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorError)

	HighlightStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorHighlight)

	WarningStyle = lipgloss.NewStyle().
			Foreground(ColorWarning)
)

// Diff styles
var (
	AdditionsStyle = lipgloss.NewStyle().
			Foreground(ColorAdditions)

	DeletionsStyle = lipgloss.NewStyle().
			Foreground(ColorDeletions)

	HunkStyle = lipgloss.NewStyle().
			Foreground(ColorHunk)
)

// StatusStyle returns the style used for a hook status label
func StatusStyle(status domain.HookStatus) lipgloss.Style {
	switch status {
	case domain.StatusFailed:
		return FailedStyle
	case domain.StatusPassed:
		return PassedStyle
	default:
		return SkippedStyle
	}
}

// SetColor forces colored output on or off
func SetColor(enabled bool) {
	if enabled {
		lipgloss.SetColorProfile(termenv.ANSI256)
		return
	}
	lipgloss.SetColorProfile(termenv.Ascii)
}
