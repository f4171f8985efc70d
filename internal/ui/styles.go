package ui

import "github.com/charmbracelet/lipgloss"

// --- Theme Colors ---

var (
	ColorPrimary    = lipgloss.Color("#4e9a8e") // teal
	ColorSecondary  = lipgloss.Color("#5c7fa3") // slate blue
	ColorAccent     = lipgloss.Color("#c7a252") // amber
	ColorBackground = lipgloss.Color("#171a1f") // dark
	ColorText       = lipgloss.Color("#d8dade") // main text
	ColorMuted      = lipgloss.Color("#8a93a6") // muted text
	ColorSuccess    = lipgloss.Color("#56905f") // green
	ColorError      = lipgloss.Color("#b05560") // red
	ColorBorder     = lipgloss.Color("#2d3a42") // border
)

// --- Reusable Styles ---

var (
	BannerStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	SelectedStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	NormalStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError).
			Bold(true)

	AccentStyle = lipgloss.NewStyle().
			Foreground(ColorAccent)

	HeaderStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary).
			Bold(true).
			PaddingBottom(1)

	StatusBarStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			PaddingTop(1)
)
