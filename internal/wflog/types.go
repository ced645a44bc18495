package wflog

import "github.com/patrickprogramme/whisperlog/pkg/model"

// Log est le résultat du parsing : mapping date -> enregistrements, qui
// préserve l'ordre d'insertion des dates ET l'ordre des enregistrements dans
// chaque date. On garde une slice de clés à côté de la map plutôt que de
// compter sur une auto-vivification implicite : les buckets sont créés
// explicitement au premier Append.
type Log struct {
	dates  []string
	byDate map[string][]model.Record
}

// NewLog construit un Log vide prêt à recevoir des enregistrements.
func NewLog() *Log {
	return &Log{byDate: make(map[string][]model.Record)}
}

// Append ajoute un enregistrement sous la date donnée.
// La date est enregistrée dans l'ordre d'insertion la première fois qu'on la voit.
func (l *Log) Append(date string, r model.Record) {
	if _, ok := l.byDate[date]; !ok {
		l.dates = append(l.dates, date)
	}
	l.byDate[date] = append(l.byDate[date], r)
}

// Dates renvoie les dates dans l'ordre d'apparition dans le fichier.
// La slice retournée est une copie : l'appelant peut la trier sans casser le Log.
func (l *Log) Dates() []string {
	out := make([]string, len(l.dates))
	copy(out, l.dates)
	return out
}

// Records renvoie les enregistrements d'une date, dans l'ordre du fichier.
// Date inconnue -> slice nil (pas d'erreur).
func (l *Log) Records(date string) []model.Record {
	return l.byDate[date]
}

// Len renvoie le nombre de dates distinctes.
func (l *Log) Len() int {
	return len(l.dates)
}
