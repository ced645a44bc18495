package model

// Record est une transcription individuelle extraite du log : l'heure du
// dernier TimeMarker rencontré + le texte brut de la ligne (trimé).
type Record struct {
	Time string // format "01:08 PM"
	Text string
}

// DailyStats agrège les enregistrements d'une date donnée.
// Words ne compte que les transcriptions réelles (les sentinelles comptent 0).
type DailyStats struct {
	Date         string // clé telle que lue dans le log, ex: "November 30, 2025"
	Words        int
	Recordings   int // enregistrements avec au moins un mot
	Silent       int // enregistrements vides ou sentinelles
	TotalEntries int // Recordings + Silent
}

// Summary contient les totaux calculés sur l'ensemble du log.
// TotalDays compte TOUTES les dates rencontrées, y compris celles sans mots ;
// DaysWithRecordings ne compte que les dates avec au moins une vraie transcription.
// Cette asymétrie est voulue, ne pas unifier.
type Summary struct {
	Daily              []DailyStats // ordre calendaire croissant
	TotalWords         int
	TotalDays          int
	DaysWithRecordings int
}

// CostEstimate est le résultat de l'estimation de coût API (Whisper).
// Les champs Monthly* projettent l'usage courant sur 30 jours ; ils valent
// tous 0 quand DaysWithRecordings == 0.
type CostEstimate struct {
	TotalWords       int
	EstimatedMinutes float64 // arrondi à 2 décimales
	TotalCost        float64 // arrondi à 4 décimales
	AvgWordsPerDay   float64 // non arrondi, diviseur borné à 1
	MonthlyWords     float64 // arrondi à 0 décimale
	MonthlyMinutes   float64 // arrondi à 2 décimales
	MonthlyCost      float64 // arrondi à 2 décimales
}

// MonthStats agrège les mots d'un mois calendaire ("November 2025").
// Days ne compte que les jours avec un total de mots > 0.
type MonthStats struct {
	Label   string // "January 2006"
	Words   int
	Days    int
	Minutes float64 // arrondi à 2 décimales
	Cost    float64 // arrondi à 2 décimales
}

// HasRecordings renvoie true si la journée contient au moins une vraie transcription.
func (d DailyStats) HasRecordings() bool {
	return d.Recordings > 0
}
