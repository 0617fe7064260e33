package colors

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestColor_GetLipglossColor(t *testing.T) {
	color := Color{Lipgloss: "31"}
	assert.Equal(t, lipgloss.Color("31"), color.GetLipglossColor())
}

func TestPredefinedColors(t *testing.T) {
	testCases := []struct {
		name     string
		color    Color
		expected string
	}{
		{"ErrorColor", ErrorColor, LipglossRed},
		{"SuccessColor", SuccessColor, LipglossGreen},
		{"WarningColor", WarningColor, LipglossAmber},
		{"KeyColor", KeyColor, LipglossCyan},
		{"ActionColor", ActionColor, LipglossMagenta},
		{"DimColor", DimColor, LipglossGray},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.color.Lipgloss)
			assert.Equal(t, lipgloss.Color(tc.expected), tc.color.Style().GetForeground())
		})
	}
}
