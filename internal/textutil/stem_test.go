package textutil

import "testing"

func TestNormalizeStemStripsLocaleSuffixes(t *testing.T) {
	cases := map[string]string{
		"Movie.Name.2022.eng":        "moviename2022",
		"Movie.Name.2022.en.forced":  "moviename2022",
		"Movie.Name.2022.sdh":        "moviename2022",
		"Show - S01E02 [Group]":      "shows01e02group",
		"Simple":                     "simple",
		"Movie.Name.2022.spanish.cc": "moviename2022",
	}
	for input, want := range cases {
		if got := NormalizeStem(input); got != want {
			t.Errorf("NormalizeStem(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestStemsRelated(t *testing.T) {
	if !StemsRelated("movienam2022", "movienam2022extended") {
		t.Error("expected substring stems to be related")
	}
	if !StemsRelated("movienam2022extended", "movienam2022") {
		t.Error("expected containment in either direction")
	}
	if StemsRelated("unrelated", "movienam2022") {
		t.Error("unrelated stems should not match")
	}
	if StemsRelated("", "movienam2022") {
		t.Error("empty stem should not match anything")
	}
}
