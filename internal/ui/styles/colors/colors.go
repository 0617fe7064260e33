package colors

import (
	"github.com/charmbracelet/lipgloss"
)

// Lipgloss Color Names - Tokyo Night Theme Hex Values
const (
	LipglossRed     = "#f7768e"
	LipglossGreen   = "#9ece6a"
	LipglossBlue    = "#7aa2f7"
	LipglossCyan    = "#7dcfff"
	LipglossMagenta = "#bb9af7"
	LipglossWhite   = "#a9b1d6"
	LipglossGray    = "#565f89"
	LipglossAmber   = "#e0af68"
)

// Color is a named terminal color
type Color struct {
	Lipgloss string
}

var (
	ErrorColor   = Color{Lipgloss: LipglossRed}
	SuccessColor = Color{Lipgloss: LipglossGreen}
	WarningColor = Color{Lipgloss: LipglossAmber}
	AccentColor  = Color{Lipgloss: LipglossBlue}
	HeaderColor  = Color{Lipgloss: LipglossBlue}
	KeyColor     = Color{Lipgloss: LipglossCyan}
	ActionColor  = Color{Lipgloss: LipglossMagenta}
	TextColor    = Color{Lipgloss: LipglossWhite}
	DimColor     = Color{Lipgloss: LipglossGray}
)

// GetLipglossColor returns a lipgloss color for the given Color
func (c Color) GetLipglossColor() lipgloss.Color {
	return lipgloss.Color(c.Lipgloss)
}

// Style returns a foreground style in this color
func (c Color) Style() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(c.GetLipglossColor())
}
