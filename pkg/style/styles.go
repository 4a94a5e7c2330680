// Package style defines the terminal styling for classifiles output.
//
// Styles use adaptive colors so the same semantic roles read well on
// light and dark terminal themes.
package style

import (
	"github.com/charmbracelet/lipgloss"
)

// Adaptive colors for semantic roles
var (
	SuccessColor = lipgloss.AdaptiveColor{Light: "#027A48", Dark: "#12B76A"}
	ErrorColor   = lipgloss.AdaptiveColor{Light: "#B42318", Dark: "#F97066"}
	WarningColor = lipgloss.AdaptiveColor{Light: "#B54708", Dark: "#FDB022"}
	MutedColor   = lipgloss.AdaptiveColor{Light: "#667085", Dark: "#98A2B3"}
	HeadingColor = lipgloss.AdaptiveColor{Light: "#101828", Dark: "#FCFCFD"}
	PathColor    = lipgloss.AdaptiveColor{Light: "#175CD3", Dark: "#84ADFF"}
)

// Base styles
var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(HeadingColor).
			Bold(true)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(SuccessColor).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)

	WarningStyle = lipgloss.NewStyle().
			Foreground(WarningColor).
			Bold(true)

	MutedStyle = lipgloss.NewStyle().
			Foreground(MutedColor)

	PathStyle = lipgloss.NewStyle().
			Foreground(PathColor).
			Italic(true)
)

// Indicators prefixing summary lines
var (
	SuccessIndicator = SuccessStyle.Render("✓")
	ErrorIndicator   = ErrorStyle.Render("✗")
	WarningIndicator = WarningStyle.Render("!")
	InfoIndicator    = MutedStyle.Render("•")
)
