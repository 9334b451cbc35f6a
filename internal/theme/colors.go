package theme

import "github.com/charmbracelet/lipgloss"

// Color is an alias for lipgloss.Color for convenience
type Color = lipgloss.Color

// Hook status colors
const (
	ColorFailed  Color = "1" // Red
	ColorPassed  Color = "2" // Green
	ColorSkipped Color = "3" // Yellow
	ColorReason  Color = "6" // Cyan - skip reasons
)

// UI semantic colors
const (
	ColorError     Color = "196" // Bright red
	ColorHighlight Color = "255" // White - emphasis
	ColorMuted     Color = "241" // Gray - secondary text
	ColorWarning   Color = "214" // Orange
)

// Diff colors
const (
	ColorAdditions Color = "2" // Green
	ColorDeletions Color = "1" // Red
	ColorHunk      Color = "6" // Cyan
)
