package report

import "github.com/charmbracelet/lipgloss"

// Couleurs du rapport console.
var (
	colorCyan = lipgloss.Color("#00FFFF")
	colorGray = lipgloss.Color("#666666")
)

// Styles appliqués uniquement en sortie console (jamais dans l'export ni le
// presse-papier, qui reçoivent le texte brut).
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorCyan)

	bannerStyle = lipgloss.NewStyle().
			Foreground(colorGray)

	totalStyle = lipgloss.NewStyle().
			Bold(true)
)
