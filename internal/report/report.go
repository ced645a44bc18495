// Package report met en forme les statistiques d'usage en rapport console
// (quatre sections) et en note Markdown exportable.
package report

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/patrickprogramme/whisperlog/pkg/model"
)

const bannerWidth = 80

// Data rassemble tout ce dont le rendu a besoin, console comme Markdown.
type Data struct {
	LogPath     string
	GeneratedAt time.Time

	Summary model.Summary
	Cost    model.CostEstimate
	Monthly []model.MonthStats

	// ShowEmptyDays inclut les jours à 0 mot dans le daily breakdown
	// (filtrage d'affichage uniquement : ces jours comptent toujours dans
	// TotalDays).
	ShowEmptyDays bool
}

// decorators : hooks de style appliqués aux éléments marquants du rapport.
// La variante brute utilise l'identité, la variante console utilise lipgloss.
type decorators struct {
	title  func(string) string
	banner func(string) string
	total  func(string) string
}

func identity(s string) string { return s }

var plainDecorators = decorators{title: identity, banner: identity, total: identity}

var styledDecorators = decorators{
	title:  func(s string) string { return titleStyle.Render(s) },
	banner: func(s string) string { return bannerStyle.Render(s) },
	total:  func(s string) string { return totalStyle.Render(s) },
}

// Render produit le rapport en texte brut (sans séquences ANSI).
// C'est cette variante qui part dans l'export Markdown-adjacent et le
// presse-papier.
func Render(d Data) string { return render(d, plainDecorators) }

// RenderStyled produit le rapport console avec les styles lipgloss.
func RenderStyled(d Data) string { return render(d, styledDecorators) }

func render(d Data, dec decorators) string {
	// printer anglophone : séparateurs de milliers ("12,345")
	p := message.NewPrinter(language.English)

	var b strings.Builder
	banner := dec.banner(strings.Repeat("=", bannerWidth))

	section := func(title string) {
		b.WriteString(banner + "\n")
		b.WriteString(dec.title(title) + "\n")
		b.WriteString(banner + "\n")
	}

	// 1) daily breakdown — par défaut on n'affiche que les jours avec des mots
	section("DAILY BREAKDOWN")
	for _, day := range d.Summary.Daily {
		if day.Words == 0 && !d.ShowEmptyDays {
			continue
		}
		fmt.Fprintf(&b, "%-20s | %5d words | %d recordings | %d silent\n",
			day.Date, day.Words, day.Recordings, day.Silent)
	}

	// 2) summary statistics
	b.WriteString("\n")
	section("SUMMARY STATISTICS")
	fmt.Fprintf(&b, "Total days with entries:      %d\n", d.Summary.TotalDays)
	fmt.Fprintf(&b, "Days with actual recordings:  %d\n", d.Summary.DaysWithRecordings)
	b.WriteString(dec.total(p.Sprintf("Total words transcribed:      %d", d.Summary.TotalWords)) + "\n")

	// 3) cost estimate + projection mensuelle
	b.WriteString("\n")
	section("OPENAI API COST ESTIMATE (Whisper)")
	fmt.Fprintf(&b, "Estimated audio duration:     %s minutes\n", p.Sprintf("%.2f", d.Cost.EstimatedMinutes))
	b.WriteString(dec.total(fmt.Sprintf("Total cost (all recordings):  $%.4f", d.Cost.TotalCost)) + "\n")
	b.WriteString("\n")
	b.WriteString("MONTHLY PROJECTION (if pattern continues):\n")
	fmt.Fprintf(&b, "Avg words per day:            %s\n", p.Sprintf("%.0f", d.Cost.AvgWordsPerDay))
	fmt.Fprintf(&b, "Estimated monthly words:      %s\n", p.Sprintf("%.0f", d.Cost.MonthlyWords))
	fmt.Fprintf(&b, "Estimated monthly minutes:    %s\n", p.Sprintf("%.2f", d.Cost.MonthlyMinutes))
	b.WriteString(dec.total(fmt.Sprintf("Estimated monthly cost:       $%.2f", d.Cost.MonthlyCost)) + "\n")
	b.WriteString(banner + "\n")

	// 4) monthly breakdown, trié chronologiquement en amont (stats.GroupByMonth)
	b.WriteString("\n")
	section("MONTHLY BREAKDOWN")
	fmt.Fprintf(&b, "%-20s | %8s | %5s | %8s | %8s\n", "Month", "Words", "Days", "Minutes", "Cost")
	b.WriteString(strings.Repeat("-", 70) + "\n")
	for _, m := range d.Monthly {
		fmt.Fprintf(&b, "%-20s | %8s | %5d | %8.2f | $%7.2f\n",
			m.Label, p.Sprintf("%d", m.Words), m.Days, m.Minutes, m.Cost)
	}
	b.WriteString(banner + "\n")

	return b.String()
}
