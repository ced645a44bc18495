// Package stats calcule les statistiques journalières et mensuelles d'un log
// Whisper parsé, ainsi que l'estimation de coût API correspondante.
package stats

import (
	"sort"
	"time"

	"github.com/patrickprogramme/whisperlog/internal/wflog"
	"github.com/patrickprogramme/whisperlog/pkg/model"
)

// Analyze réduit le log en statistiques par jour + totaux globaux.
// Les dates sont parcourues en ordre calendaire croissant (et non dans
// l'ordre du fichier). Un enregistrement avec au moins un mot compte comme
// "recording", sinon comme "silent" ; les jours sans aucun mot restent
// présents dans Daily et comptent dans TotalDays.
func Analyze(l *wflog.Log) model.Summary {
	dates := l.Dates()
	sortDatesChronological(dates)

	var s model.Summary
	for _, date := range dates {
		records := l.Records(date)

		d := model.DailyStats{Date: date}
		for _, r := range records {
			if n := wflog.CountWords(r.Text); n > 0 {
				d.Words += n
				d.Recordings++
			} else {
				d.Silent++
			}
		}
		d.TotalEntries = len(records)

		if d.Recordings > 0 {
			s.DaysWithRecordings++
		}
		s.TotalWords += d.Words
		s.Daily = append(s.Daily, d)
	}
	s.TotalDays = len(s.Daily)

	return s
}

// sortDatesChronological trie les clés de date en ordre calendaire.
// Les clés qui ne parsent pas avec le layout du log passent APRÈS toutes les
// clés valides, triées lexicographiquement entre elles (ordre déterministe).
func sortDatesChronological(dates []string) {
	sort.SliceStable(dates, func(i, j int) bool {
		ti, erri := time.Parse(wflog.DateLayout, dates[i])
		tj, errj := time.Parse(wflog.DateLayout, dates[j])
		switch {
		case erri == nil && errj == nil:
			return ti.Before(tj)
		case erri == nil:
			return true
		case errj == nil:
			return false
		default:
			return dates[i] < dates[j]
		}
	})
}
