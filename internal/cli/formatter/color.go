package formatter

import (
	"github.com/alexanderramin/deadline/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// ScenarioStyle returns the style used for a scenario's row.
func ScenarioStyle(sc domain.Scenario) lipgloss.Style {
	switch sc {
	case domain.ScenarioBestCase:
		return StyleGreen
	case domain.ScenarioWorstCase:
		return StyleRed
	case domain.ScenarioRealistic:
		return StyleYellow
	default:
		return StyleDim
	}
}

// ScenarioIndicator returns a colored label such as "● Best case".
func ScenarioIndicator(sc domain.Scenario) string {
	return ScenarioStyle(sc).Render("● " + sc.Label())
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
