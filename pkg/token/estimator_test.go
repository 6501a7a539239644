package token

import "testing"

func TestWords(t *testing.T) {
	cases := []struct {
		name string
		text string
		want int
	}{
		{name: "empty", text: "", want: 0},
		{name: "whitespace only", text: "  \n\t ", want: 0},
		{name: "single word", text: "hello", want: 1},
		{name: "sentence", text: "LLMs rank semantics, not keywords.", want: 5},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Words.Estimate(tc.text); got != tc.want {
				t.Fatalf("Words.Estimate(%q) = %d, want %d", tc.text, got, tc.want)
			}
		})
	}
}

func TestRunes(t *testing.T) {
	cases := []struct {
		name string
		text string
		want int
	}{
		{name: "empty", text: "", want: 0},
		{name: "short text floors at one", text: "abc", want: 1},
		{name: "eight runes", text: "abcdefgh", want: 2},
		{name: "multibyte runes counted once", text: "éééééééé", want: 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Runes.Estimate(tc.text); got != tc.want {
				t.Fatalf("Runes.Estimate(%q) = %d, want %d", tc.text, got, tc.want)
			}
		})
	}
}
