package wflog

import "strings"

// Phrases sentinelles écrites par l'app quand il n'y a rien à transcrire.
// Elles comptent pour ZÉRO mot quelle que soit leur longueur littérale,
// comparaison insensible à la casse.
const (
	sentinelSilent    = "audio is silent."
	sentinelDismissed = "the transcription was dismissed."
)

// CountWords renvoie le nombre de mots d'une transcription.
// - texte vide ou uniquement des espaces -> 0
// - phrase sentinelle (voir ci-dessus)   -> 0
// - sinon : nombre de tokens séparés par des espaces (strings.Fields)
func CountWords(text string) int {
	t := strings.TrimSpace(text)
	if t == "" {
		return 0
	}
	switch strings.ToLower(t) {
	case sentinelSilent, sentinelDismissed:
		return 0
	}
	return len(strings.Fields(t))
}
