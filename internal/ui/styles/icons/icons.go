package icons

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/inference-gateway/tilecfg/internal/ui/styles/colors"
)

// Status icons
const (
	CheckMark   = "✓"
	CrossMark   = "✗"
	WarningMark = "!"
)

// Icon styles
var (
	CheckMarkStyle   = lipgloss.NewStyle().Foreground(colors.SuccessColor.GetLipglossColor()).Bold(true)
	CrossMarkStyle   = lipgloss.NewStyle().Foreground(colors.ErrorColor.GetLipglossColor()).Bold(true)
	WarningMarkStyle = lipgloss.NewStyle().Foreground(colors.WarningColor.GetLipglossColor()).Bold(true)
)

func StyledCheckMark() string {
	return CheckMarkStyle.Render(CheckMark)
}

func StyledCrossMark() string {
	return CrossMarkStyle.Render(CrossMark)
}

func StyledWarningMark() string {
	return WarningMarkStyle.Render(WarningMark)
}
