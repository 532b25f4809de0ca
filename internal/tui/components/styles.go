package components

import "github.com/charmbracelet/lipgloss"

// Palette shared with the app shell.
var (
	colorWarning = lipgloss.Color("#ffe66d")
	colorSuccess = lipgloss.Color("#a8e6cf")
	colorText    = lipgloss.Color("#f1faee")
	colorLabel   = lipgloss.Color("#a8dadc")
	colorBgAlt   = lipgloss.Color("#2d3436")
	colorBorder  = lipgloss.Color("#3d5a80")
)

var (
	warningStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorWarning).
			Foreground(colorWarning).
			Padding(0, 1).
			Align(lipgloss.Center)

	fieldLabelStyle = lipgloss.NewStyle().
			Foreground(colorLabel).
			Bold(true)

	fieldStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Foreground(colorText).
			Padding(0, 1)

	buttonStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorText).
			Background(colorBgAlt).
			Padding(0, 3)

	checkStyle = lipgloss.NewStyle().
			Foreground(colorSuccess).
			Background(colorBgAlt).
			Bold(true)
)
