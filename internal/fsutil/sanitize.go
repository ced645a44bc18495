package fsutil

import (
	"regexp"
	"strings"
)

// borne la longueur du nom produit (hors extension)
const maxFilenameLen = 120

// forbiddenRunes : caractères refusés par au moins un des systèmes de
// fichiers visés (NTFS est le plus restrictif). \x00-\x1F = caractères de
// contrôle.
var forbiddenRunes = regexp.MustCompile(`[<>:"/\\|?*\x00-\x1F]`)

// spaceRuns détecte les suites d'espaces à compacter
var spaceRuns = regexp.MustCompile(`\s+`)

// SanitizeFilename transforme un titre de note (typiquement export_title +
// date) en nom de fichier portable :
// - les caractères interdits deviennent des espaces
// - les suites d'espaces sont compactées, bords nettoyés
// - les points/tirets terminaux sont retirés (Windows refuse un nom en ".")
// - la longueur est bornée (troncature sur des runes, pas des octets)
// Un titre vide ou entièrement invalide retombe sur "whisper-usage".
func SanitizeFilename(title string) string {
	clean := forbiddenRunes.ReplaceAllString(title, " ")
	clean = spaceRuns.ReplaceAllString(strings.TrimSpace(clean), " ")
	clean = strings.TrimRight(clean, ".- ")

	if clean == "" {
		return "whisper-usage"
	}

	if rs := []rune(clean); len(rs) > maxFilenameLen {
		clean = strings.TrimRight(string(rs[:maxFilenameLen]), ".- ")
	}

	return clean
}
