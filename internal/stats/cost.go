package stats

import (
	"math"

	"github.com/patrickprogramme/whisperlog/pkg/model"
)

// Modèle de coût (tarifs OpenAI, décembre 2025).
// Ces constantes sont volontairement des littéraux : elles ne sont pas
// configurables.
const (
	// débit de parole moyen utilisé pour estimer la durée audio
	avgWordsPerMinute = 150
	// tarif API Whisper en USD par minute d'audio
	whisperCostPerMinute = 0.02
	// horizon de la projection mensuelle
	projectionDays = 30
)

// EstimateAPICost convertit un total de mots en durée audio estimée et coût,
// plus une projection mensuelle si le pattern d'usage continue.
// daysWithRecordings == 0 -> tous les champs Monthly* restent à zéro
// (garde explicite contre la division par zéro).
func EstimateAPICost(totalWords, daysWithRecordings int) model.CostEstimate {
	minutes := float64(totalWords) / avgWordsPerMinute

	// moyenne affichée telle quelle dans le rapport ; le diviseur est borné
	// à 1 pour éviter une division par zéro sur un log sans jour enregistré
	avgPerDay := float64(totalWords) / float64(max(1, daysWithRecordings))

	est := model.CostEstimate{
		TotalWords:       totalWords,
		EstimatedMinutes: round2(minutes),
		TotalCost:        round4(minutes * whisperCostPerMinute),
		AvgWordsPerDay:   avgPerDay,
	}

	if daysWithRecordings > 0 {
		monthlyWords := avgPerDay * projectionDays
		monthlyMinutes := monthlyWords / avgWordsPerMinute

		est.MonthlyWords = math.Round(monthlyWords)
		est.MonthlyMinutes = round2(monthlyMinutes)
		est.MonthlyCost = round2(monthlyMinutes * whisperCostPerMinute)
	}

	return est
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }
func round4(v float64) float64 { return math.Round(v*10000) / 10000 }
