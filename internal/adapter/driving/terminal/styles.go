package terminal

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/ericfisherdev/trainingpanel/internal/domain/model"
)

// Palette shared with the HTML status classes.
var (
	colorValid        = lipgloss.Color("#22C55E")
	colorWarning      = lipgloss.Color("#EAB308")
	colorExpired      = lipgloss.Color("#EF4444")
	colorInapplicable = lipgloss.Color("#6B7280")
	colorPrimary      = lipgloss.Color("#4A9EFF")
	colorDim          = lipgloss.Color("#9CA3AF")
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1)

	bodyStyle = lipgloss.NewStyle().Padding(0, 1)

	dimStyle = lipgloss.NewStyle().Foreground(colorDim)

	summaryBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorDim).
			Padding(0, 1).
			MarginBottom(1)

	validStyle        = lipgloss.NewStyle().Foreground(colorValid)
	warningStyle      = lipgloss.NewStyle().Bold(true).Foreground(colorWarning)
	expiredStyle      = lipgloss.NewStyle().Bold(true).Blink(true).Foreground(colorExpired)
	inapplicableStyle = lipgloss.NewStyle().Foreground(colorInapplicable)
)

// statusStyle returns the style for a status. Expired cells blink, the
// terminal counterpart of the pulse treatment.
func statusStyle(s model.Status) lipgloss.Style {
	switch s {
	case model.StatusValid:
		return validStyle
	case model.StatusWarning:
		return warningStyle
	case model.StatusExpired:
		return expiredStyle
	case model.StatusInapplicable:
		return inapplicableStyle
	default:
		return dimStyle
	}
}

// statusMarker is a glyph that keeps the status readable without colour.
func statusMarker(s model.Status) string {
	switch s {
	case model.StatusValid:
		return "✓"
	case model.StatusWarning:
		return "!"
	case model.StatusExpired:
		return "✗"
	default:
		return ""
	}
}
