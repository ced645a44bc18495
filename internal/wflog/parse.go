package wflog

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/patrickprogramme/whisperlog/pkg/model"
)

// parse.go : classification des lignes du log Whisper.
//
// Le log alterne trois sortes de lignes :
//   - marqueur de date  : "November 30, 2025"
//   - marqueur d'heure  : "01:08 PM"
//   - texte transcrit   : tout le reste (non vide)
//
// Les marqueurs doivent matcher la ligne ENTIÈRE (ancres ^$) : une ligne
// comme "November 30, 2025 something" est du contenu, pas un marqueur.

// DateLayout est le format Go des marqueurs de date du log.
const DateLayout = "January 2, 2006"

var (
	dateMarkerRe = regexp.MustCompile(`^[A-Za-z]+ \d{1,2}, \d{4}$`)
	timeMarkerRe = regexp.MustCompile(`^\d{1,2}:\d{2} [AP]M$`)
)

// Parse classe les lignes et regroupe les transcriptions par date.
// État courant : deux slots (currentDate, currentTime) mis à jour au fil des
// marqueurs. Une ligne de contenu n'est émise que si les DEUX slots sont
// renseignés ; le même currentTime s'applique à toutes les lignes de contenu
// jusqu'au marqueur d'heure suivant. Lignes vides ignorées, contenu avant le
// premier couple date/heure silencieusement abandonné.
func Parse(lines []string) *Log {
	l := NewLog()

	var currentDate, currentTime string

	for _, raw := range lines {
		line := strings.TrimSpace(raw)

		switch {
		case dateMarkerRe.MatchString(line):
			currentDate = line

		case timeMarkerRe.MatchString(line):
			currentTime = line

		case line == "":
			// ligne vide : pas de changement d'état, pas d'enregistrement

		case currentDate != "" && currentTime != "":
			l.Append(currentDate, model.Record{Time: currentTime, Text: line})

			// sinon : contenu orphelin (avant tout marqueur), on l'ignore
		}
	}

	return l
}

// ParseReader lit toutes les lignes du reader puis les parse.
func ParseReader(r io.Reader) (*Log, error) {
	var lines []string

	sc := bufio.NewScanner(r)
	// certains jets de dictée font plusieurs milliers de caractères sur une
	// seule ligne : on relève la limite par défaut du Scanner (64 KiB)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("lecture des lignes: %w", err)
	}

	return Parse(lines), nil
}

// ParseFile lit le fichier en entier puis le parse. Fichier absent ou
// illisible -> erreur remontée telle quelle à l'appelant (condition fatale,
// pas de retry).
func ParseFile(path string) (*Log, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("ouverture du log %s impossible : %w", path, err)
	}
	defer f.Close()

	l, err := ParseReader(f)
	if err != nil {
		return nil, fmt.Errorf("parse du log %s : %w", path, err)
	}
	return l, nil
}
