package main

import "github.com/charmbracelet/lipgloss"

// Shared colors for CLI output, tuned for dark terminal backgrounds.
const (
	colorPrimary = lipgloss.Color("#7C3AED")
	colorMuted   = lipgloss.Color("#6B7280")
	colorSuccess = lipgloss.Color("#10B981")
	colorWarning = lipgloss.Color("#F59E0B")
)

var (
	// titleStyle is for primary headers.
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	// subtitleStyle is for secondary text and descriptions.
	subtitleStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	// successStyle is for success messages.
	successStyle = lipgloss.NewStyle().
			Foreground(colorSuccess)

	// warningStyle is for best-effort steps that did not complete.
	warningStyle = lipgloss.NewStyle().
			Foreground(colorWarning)
)
