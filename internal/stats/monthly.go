package stats

import (
	"sort"
	"time"

	"github.com/patrickprogramme/whisperlog/internal/wflog"
	"github.com/patrickprogramme/whisperlog/pkg/model"
)

// MonthLayout est le format des labels mensuels ("November 2025").
const MonthLayout = "January 2006"

// GroupByMonth regroupe les mots par mois calendaire.
//   - clé de date qui ne parse pas -> skip silencieux (pas une erreur)
//   - jour avec 0 mot -> ignoré entièrement : il ne crée pas de bucket et ne
//     compte pas dans Days (contrairement à TotalDays côté Analyze, asymétrie
//     voulue)
//
// Le résultat est trié chronologiquement en re-parsant le label.
func GroupByMonth(l *wflog.Log) []model.MonthStats {
	type bucket struct {
		words int
		days  int
	}

	totals := make(map[string]*bucket)
	var labels []string

	for _, date := range l.Dates() {
		t, err := time.Parse(wflog.DateLayout, date)
		if err != nil {
			continue
		}
		label := t.Format(MonthLayout)

		dayWords := 0
		for _, r := range l.Records(date) {
			dayWords += wflog.CountWords(r.Text)
		}
		if dayWords == 0 {
			continue
		}

		b, ok := totals[label]
		if !ok {
			b = &bucket{}
			totals[label] = b
			labels = append(labels, label)
		}
		b.words += dayWords
		b.days++
	}

	sort.Slice(labels, func(i, j int) bool {
		ti, _ := time.Parse(MonthLayout, labels[i])
		tj, _ := time.Parse(MonthLayout, labels[j])
		return ti.Before(tj)
	})

	out := make([]model.MonthStats, 0, len(labels))
	for _, label := range labels {
		b := totals[label]
		minutes := round2(float64(b.words) / avgWordsPerMinute)
		out = append(out, model.MonthStats{
			Label:   label,
			Words:   b.words,
			Days:    b.days,
			Minutes: minutes,
			Cost:    round2(minutes * whisperCostPerMinute),
		})
	}
	return out
}
