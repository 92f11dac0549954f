// Package style provides the brand colors and icons shared by the CLI output.
package style

import "github.com/charmbracelet/lipgloss"

// Brand Colors.
var (
	Iris   = lipgloss.Color("#8B5CF6")
	Slate  = lipgloss.Color("#667085")
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
)

// Heading renders a section title in the brand color.
func Heading(text string) string {
	return lipgloss.NewStyle().Bold(true).Foreground(Iris).Render(text)
}

// Success prefixes text with the check icon in green.
func Success(text string) string {
	return lipgloss.NewStyle().Foreground(Green).Render(Check) + " " + text
}
