// Package style holds the colors and icons shared by console output.
package style

import "github.com/charmbracelet/lipgloss"

// Palette.
var (
	Accent = lipgloss.Color("#8B5CF6")
	Muted  = lipgloss.Color("#667085")
	Green  = lipgloss.Color("#22A06B")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
)

// Icons.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Arrow   = "→"
	Dot     = "●"
	Circle  = "○"
)

// StateColor returns the color used to render a unit state by name.
func StateColor(state string) lipgloss.Color {
	switch state {
	case "recorded", "build":
		return Accent
	case "skipped", "skip":
		return Muted
	case "failed":
		return Red
	default:
		return Yellow
	}
}
