package wflog

import "testing"

func TestCountWords(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want int
	}{
		{"empty", "", 0},
		{"whitespace only", "   \t  ", 0},
		{"single word", "bonjour", 1},
		{"simple sentence", "Hello world", 2},
		{"four words", "One two three four", 4},
		{"multiple spaces collapse", "a   b     c", 3},
		{"sentinel silent lowercase", "audio is silent.", 0},
		{"sentinel silent capitalized", "Audio is silent.", 0},
		{"sentinel silent uppercase", "AUDIO IS SILENT.", 0},
		{"sentinel dismissed", "The transcription was dismissed.", 0},
		{"sentinel dismissed uppercase", "THE TRANSCRIPTION WAS DISMISSED.", 0},
		{"sentinel with surrounding spaces", "  Audio is silent.  ", 0},
		// une phrase qui CONTIENT la sentinelle n'est pas une sentinelle
		{"sentinel embedded in text", "well audio is silent. indeed", 5},
		{"sentinel without final dot", "Audio is silent", 3},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := CountWords(tc.in); got != tc.want {
				t.Errorf("CountWords(%q) = %d; want %d", tc.in, got, tc.want)
			}
		})
	}
}

func TestCountWords_Idempotent(t *testing.T) {
	inputs := []string{"Hello world", "Audio is silent.", "", "a b c"}
	for _, in := range inputs {
		first := CountWords(in)
		second := CountWords(in)
		if first != second {
			t.Errorf("CountWords(%q) not stable: %d then %d", in, first, second)
		}
	}
}
