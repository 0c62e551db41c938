package ui

import (
	"image/color"

	"PomoTimer/timer"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// PhaseTheme tints the default theme with the accent of the current phase.
type PhaseTheme struct {
	fyne.Theme
	accent color.Color
}

// NewPhaseTheme creates a new instance of the phase theme.
func NewPhaseTheme(p timer.Phase) fyne.Theme {
	return &PhaseTheme{Theme: theme.DefaultTheme(), accent: timer.PhaseColor(p)}
}

// Color returns the phase accent for primary and focus colours.
func (t *PhaseTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNamePrimary, theme.ColorNameFocus:
		return t.accent
	}
	return t.Theme.Color(name, variant)
}
