package parse

import "testing"

func TestParse_ValidAnnouncements(t *testing.T) {
	cases := []struct {
		name  string
		text  string
		title string
		year  string
		lang  string
	}{
		{
			name:  "title year language link",
			text:  "Inception 2010 English https://t.me/x",
			title: "Inception", year: "2010", lang: "English",
		},
		{
			name:  "language at end of text",
			text:  "The Matrix 1999 English",
			title: "The Matrix", year: "1999", lang: "English",
		},
		{
			name:  "multi word title and extra whitespace",
			text:  "  Dune Part Two   2024   Hindi  cam-rip",
			title: "Dune Part Two", year: "2024", lang: "Hindi",
		},
		{
			name:  "numeric title before the real year",
			text:  "1917 Movie 2019 English",
			title: "1917 Movie", year: "2019", lang: "English",
		},
		{
			name:  "numeric language token",
			text:  "Movie 2010 2011 English",
			title: "Movie", year: "2010", lang: "2011",
		},
		{
			name:  "five digit run skipped in favor of later year",
			text:  "Blade 20255 2025 English",
			title: "Blade 20255", year: "2025", lang: "English",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ann, ok := Parse(tc.text)
			if !ok {
				t.Fatalf("Parse(%q) did not match", tc.text)
			}
			if ann.Title != tc.title || ann.Year != tc.year || ann.Language != tc.lang {
				t.Fatalf("Parse(%q) = %+v, want title=%q year=%q lang=%q",
					tc.text, ann, tc.title, tc.year, tc.lang)
			}
		})
	}
}

func TestParse_NoMatch(t *testing.T) {
	cases := []struct {
		name string
		text string
	}{
		{"empty", ""},
		{"whitespace only", "   "},
		{"no year anywhere", "Inception English"},
		{"year without language", "Inception 2010"},
		{"year without language trailing space", "Inception 2010   "},
		{"five digit run only", "Movie 12345 English"},
		{"year at start has no title", "2010 English"},
		{"year at start with leading space", " 2010 English"},
		{"digits glued to title", "Movie2010 English"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if ann, ok := Parse(tc.text); ok {
				t.Fatalf("Parse(%q) matched unexpectedly: %+v", tc.text, ann)
			}
		})
	}
}
