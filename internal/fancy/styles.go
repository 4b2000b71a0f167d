package fancy

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	RootStyle = lipgloss.NewStyle().
			Foreground(ColorBlue).
			Bold(true)

	HeaderStyle = lipgloss.NewStyle().
			Foreground(ColorWhite).
			Bold(true)

	InfoStyle = lipgloss.NewStyle().
			Foreground(ColorGray).
			Italic(true)

	BranchStyle = lipgloss.NewStyle().
			Foreground(ColorDarkGray)

	ListenerStyle = lipgloss.NewStyle().
			Foreground(ColorMagenta)

	RouteStyle = lipgloss.NewStyle().
			Foreground(ColorYellow)

	ActionStyle = lipgloss.NewStyle().
			Foreground(ColorOrange)

	FieldStyle = lipgloss.NewStyle().
			Foreground(ColorCyan)

	ValidStyle = lipgloss.NewStyle().
			Foreground(ColorGreen)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorRed)
)

// ListenerText styles a listener address
func ListenerText(text string) string {
	return ListenerStyle.Render(text)
}

// RouteText styles a route key
func RouteText(text string) string {
	return RouteStyle.Render(text)
}

// ActionText styles an action ID
func ActionText(text string) string {
	return ActionStyle.Render(text)
}

// FieldText styles a record field name
func FieldText(text string) string {
	return FieldStyle.Render(text)
}

// ValidText styles valid status text (green)
func ValidText(text string) string {
	return ValidStyle.Render(text)
}

// ErrorText styles error text (red)
func ErrorText(text string) string {
	return ErrorStyle.Render(text)
}

// PathText styles file paths (gray)
func PathText(text string) string {
	return InfoStyle.Render(text)
}
