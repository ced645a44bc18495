package wflog

import (
	"strings"
	"testing"
)

func TestParse_GroupsRecordsByDate(t *testing.T) {
	lines := []string{
		"November 30, 2025",
		"01:08 PM",
		"Hello world",
		"01:10 PM",
		"Audio is silent.",
		"December 1, 2025",
		"09:00 AM",
		"One two three four",
	}

	l := Parse(lines)

	if l.Len() != 2 {
		t.Fatalf("expected 2 dates, got %d: %#v", l.Len(), l.Dates())
	}

	nov := l.Records("November 30, 2025")
	if len(nov) != 2 {
		t.Fatalf("expected 2 records for November 30, got %d: %#v", len(nov), nov)
	}
	if nov[0].Time != "01:08 PM" || nov[0].Text != "Hello world" {
		t.Errorf("record 0 = %+v; want {01:08 PM Hello world}", nov[0])
	}
	if nov[1].Time != "01:10 PM" || nov[1].Text != "Audio is silent." {
		t.Errorf("record 1 = %+v; want {01:10 PM Audio is silent.}", nov[1])
	}

	dec := l.Records("December 1, 2025")
	if len(dec) != 1 {
		t.Fatalf("expected 1 record for December 1, got %d: %#v", len(dec), dec)
	}
	if dec[0].Time != "09:00 AM" || dec[0].Text != "One two three four" {
		t.Errorf("record 0 = %+v; want {09:00 AM One two three four}", dec[0])
	}
}

func TestParse_NearestPrecedingMarkersWin(t *testing.T) {
	// chaque enregistrement doit porter le DERNIER marqueur de date et d'heure
	// vus avant lui dans le fichier
	lines := []string{
		"November 30, 2025",
		"01:08 PM",
		"first",
		"02:30 PM",
		"second",
		"third",
		"December 1, 2025",
		"fourth", // même heure (02:30 PM), nouvelle date
	}

	l := Parse(lines)

	nov := l.Records("November 30, 2025")
	if len(nov) != 3 {
		t.Fatalf("expected 3 records for November 30, got %d", len(nov))
	}
	if nov[0].Time != "01:08 PM" {
		t.Errorf("first: time = %q; want 01:08 PM", nov[0].Time)
	}
	// second et third partagent le même TimeMarker
	for i, r := range nov[1:] {
		if r.Time != "02:30 PM" {
			t.Errorf("record %d: time = %q; want 02:30 PM", i+1, r.Time)
		}
	}

	dec := l.Records("December 1, 2025")
	if len(dec) != 1 || dec[0].Time != "02:30 PM" || dec[0].Text != "fourth" {
		t.Fatalf("December records = %#v; want fourth at 02:30 PM", dec)
	}
}

func TestParse_ContentBeforeMarkersIsDropped(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
	}{
		{"no markers at all", []string{"orphan text", "more orphan text"}},
		{"date but no time", []string{"November 30, 2025", "orphan text"}},
		{"time but no date", []string{"01:08 PM", "orphan text"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			l := Parse(tc.lines)
			if l.Len() != 0 {
				t.Fatalf("expected empty log, got %d dates: %#v", l.Len(), l.Dates())
			}
		})
	}
}

func TestParse_StrictMarkerAnchoring(t *testing.T) {
	// une ligne qui ne matche pas le pattern en ENTIER est du contenu
	lines := []string{
		"November 30, 2025",
		"01:08 PM",
		"November 30, 2025 and some words", // contenu, pas un marqueur
		"1:08PM",                           // pas d'espace avant AM/PM : contenu
		"13:08 XM",                         // lettre invalide : contenu
	}

	l := Parse(lines)

	recs := l.Records("November 30, 2025")
	if len(recs) != 3 {
		t.Fatalf("expected 3 content records, got %d: %#v", len(recs), recs)
	}
	for _, r := range recs {
		if r.Time != "01:08 PM" {
			t.Errorf("record %+v should keep time 01:08 PM", r)
		}
	}
}

func TestParse_BlankLinesSkipped(t *testing.T) {
	lines := []string{
		"",
		"November 30, 2025",
		"",
		"01:08 PM",
		"   ",
		"Hello world",
		"",
	}

	l := Parse(lines)
	recs := l.Records("November 30, 2025")
	if len(recs) != 1 || recs[0].Text != "Hello world" {
		t.Fatalf("records = %#v; want single Hello world", recs)
	}
}

func TestParse_DatesKeepInsertionOrder(t *testing.T) {
	// l'ordre du fichier est préservé, même si les dates ne sont pas triées
	lines := []string{
		"December 1, 2025",
		"09:00 AM",
		"later first",
		"November 30, 2025",
		"10:00 AM",
		"earlier second",
	}

	l := Parse(lines)
	dates := l.Dates()
	want := []string{"December 1, 2025", "November 30, 2025"}
	if len(dates) != len(want) {
		t.Fatalf("dates = %#v; want %#v", dates, want)
	}
	for i := range want {
		if dates[i] != want[i] {
			t.Errorf("dates[%d] = %q; want %q", i, dates[i], want[i])
		}
	}
}

func TestParseReader_MatchesParse(t *testing.T) {
	input := "November 30, 2025\n01:08 PM\nHello world\n"

	l, err := ParseReader(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ParseReader: %v", err)
	}
	recs := l.Records("November 30, 2025")
	if len(recs) != 1 || recs[0].Text != "Hello world" {
		t.Fatalf("records = %#v; want single Hello world", recs)
	}
}

func TestParseFile_MissingFileIsError(t *testing.T) {
	if _, err := ParseFile("does-not-exist.txt"); err == nil {
		t.Fatal("expected error for missing file, got nil")
	}
}
