package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Colors
var (
	colorPrimary = lipgloss.Color("#7C3AED")
	colorText    = lipgloss.Color("#F9FAFB")
	colorAccent  = lipgloss.Color("#F59E0B")
	colorError   = lipgloss.Color("#EF4444")
	colorMuted   = lipgloss.Color("#6B7280")
	colorRaw     = lipgloss.Color("#10B981")
)

// Styles
var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary).
			MarginBottom(1)

	InputStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorPrimary).
			Padding(0, 1)

	CommandStyle = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)

	TextTokenStyle = lipgloss.NewStyle().
			Foreground(colorText)

	RawTokenStyle = lipgloss.NewStyle().
			Foreground(colorRaw)

	GroupStyle = lipgloss.NewStyle().
			Foreground(colorAccent)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(colorError)

	LocationStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	PromptStyle = lipgloss.NewStyle().
			Foreground(colorRaw).
			Bold(true)

	HelpStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			MarginTop(1)
)
