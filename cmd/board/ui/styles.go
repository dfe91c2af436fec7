// Package ui renders the scheduling board for the terminal.
package ui

import "github.com/charmbracelet/lipgloss"

var (
	colorAccent = lipgloss.Color("#8BC34A")
	colorMuted  = lipgloss.Color("#6c7a89")
	colorError  = lipgloss.Color("#e53935")
	colorOpen   = lipgloss.Color("#FFC107")
)

// Styles holds the lipgloss styles used by the board views.
type Styles struct {
	Title  lipgloss.Style
	Header lipgloss.Style
	Row    lipgloss.Style
	Cell   lipgloss.Style
	Open   lipgloss.Style
	Muted  lipgloss.Style
	Error  lipgloss.Style
}

// DefaultStyles returns the standard board theme.
func DefaultStyles() Styles {
	return Styles{
		Title:  lipgloss.NewStyle().Bold(true).Foreground(colorAccent),
		Header: lipgloss.NewStyle().Bold(true).Padding(0, 1),
		Row:    lipgloss.NewStyle().Bold(true).Padding(0, 1),
		Cell:   lipgloss.NewStyle().Padding(0, 1),
		Open:   lipgloss.NewStyle().Bold(true).Foreground(colorOpen).Padding(0, 1),
		Muted:  lipgloss.NewStyle().Foreground(colorMuted),
		Error:  lipgloss.NewStyle().Bold(true).Foreground(colorError),
	}
}
