package report

import (
	"strings"
	"testing"
	"time"

	"github.com/patrickprogramme/whisperlog/pkg/model"
)

// helper : renvoie true si substr apparaît avant substr2 dans s (index >= 0)
func appearsBefore(s, substr, substr2 string) bool {
	i := strings.Index(s, substr)
	j := strings.Index(s, substr2)
	return i >= 0 && j >= 0 && i < j
}

func fixtureData() Data {
	return Data{
		LogPath:     "wf-log.txt",
		GeneratedAt: time.Date(2025, time.December, 14, 10, 30, 0, 0, time.UTC),
		Summary: model.Summary{
			Daily: []model.DailyStats{
				{Date: "November 29, 2025", Words: 0, Recordings: 0, Silent: 2, TotalEntries: 2},
				{Date: "November 30, 2025", Words: 12345, Recordings: 3, Silent: 1, TotalEntries: 4},
				{Date: "December 1, 2025", Words: 42, Recordings: 1, Silent: 0, TotalEntries: 1},
			},
			TotalWords:         12387,
			TotalDays:          3,
			DaysWithRecordings: 2,
		},
		Cost: model.CostEstimate{
			TotalWords:       12387,
			EstimatedMinutes: 82.58,
			TotalCost:        1.6516,
			AvgWordsPerDay:   6193.5,
			MonthlyWords:     185805,
			MonthlyMinutes:   1238.7,
			MonthlyCost:      24.77,
		},
		Monthly: []model.MonthStats{
			{Label: "November 2025", Words: 12345, Days: 1, Minutes: 82.3, Cost: 1.65},
			{Label: "December 2025", Words: 42, Days: 1, Minutes: 0.28, Cost: 0.01},
		},
	}
}

func TestRender_SectionsInOrder(t *testing.T) {
	out := Render(fixtureData())

	sections := []string{
		"DAILY BREAKDOWN",
		"SUMMARY STATISTICS",
		"OPENAI API COST ESTIMATE (Whisper)",
		"MONTHLY PROJECTION (if pattern continues):",
		"MONTHLY BREAKDOWN",
	}
	for i := 0; i < len(sections)-1; i++ {
		if !appearsBefore(out, sections[i], sections[i+1]) {
			t.Errorf("expected %q before %q in report:\n%s", sections[i], sections[i+1], out)
		}
	}
}

func TestRender_FiltersZeroWordDaysByDefault(t *testing.T) {
	d := fixtureData()

	out := Render(d)
	if strings.Contains(out, "November 29, 2025") {
		t.Error("zero-word day should be hidden by default")
	}
	// mais il compte toujours dans les totaux
	if !strings.Contains(out, "Total days with entries:      3") {
		t.Errorf("TotalDays should still count the hidden day:\n%s", out)
	}

	d.ShowEmptyDays = true
	out = Render(d)
	if !strings.Contains(out, "November 29, 2025") {
		t.Error("zero-word day should appear with ShowEmptyDays")
	}
}

func TestRender_NumbersAndAmounts(t *testing.T) {
	out := Render(fixtureData())

	checks := []string{
		// séparateurs de milliers sur les totaux
		"Total words transcribed:      12,387",
		"Estimated monthly words:      185,805",
		"Estimated monthly minutes:    1,238.70",
		// coût total à 4 décimales, projection à 2
		"Total cost (all recordings):  $1.6516",
		"Estimated monthly cost:       $24.77",
		// moyenne = total / jours avec recordings, arrondie à l'affichage
		"Avg words per day:            6,194",
		// ligne mensuelle : mots groupés, coût à 2 décimales
		"November 2025",
		"12,345",
	}
	for _, c := range checks {
		if !strings.Contains(out, c) {
			t.Errorf("report missing %q:\n%s", c, out)
		}
	}
}

func TestRender_DailyLineLayout(t *testing.T) {
	out := Render(fixtureData())

	if !strings.Contains(out, "December 1, 2025     |    42 words | 1 recordings | 0 silent") {
		t.Errorf("daily line layout unexpected:\n%s", out)
	}
}

func TestRenderStyled_KeepsTextIntact(t *testing.T) {
	// les styles enveloppent les chaînes sans les découper : le texte des
	// sections doit rester cherchable tel quel
	out := RenderStyled(fixtureData())

	for _, want := range []string{"DAILY BREAKDOWN", "SUMMARY STATISTICS", "MONTHLY BREAKDOWN"} {
		if !strings.Contains(out, want) {
			t.Errorf("styled report missing %q", want)
		}
	}
}
