// Package parse converts raw channel announcements into structured movie
// metadata. It is a pure string-to-record function with no transport or
// storage dependencies, so it can be tested in isolation.
//
// The recognized shape is:
//
//	<title tokens> <4-digit year> <language token> [anything else]
//
// Everything before the year is the title; the single token after the year
// is the language; trailing tokens (links, captions) are discarded. Text
// without a whitespace-delimited 4-digit run anywhere does not parse.
package parse

import (
	"regexp"
	"strings"
)

// announcementRE captures title, year, and language. The title capture is
// non-greedy, so when the text contains several 4-digit runs the leftmost
// one that is preceded by whitespace and followed by whitespace and a token
// is taken as the year.
var announcementRE = regexp.MustCompile(`^(.*?)\s+(\d{4})\s+(\S+)`)

// Announcement is the structured result of parsing one channel message.
type Announcement struct {
	Title    string // trimmed, case preserved
	Year     string // 4-digit run, kept as text
	Language string // first token after the year
}

// Parse extracts an Announcement from raw message text. The boolean result
// reports whether the text matched the announcement shape; on false the
// returned value is the zero Announcement.
func Parse(text string) (Announcement, bool) {
	m := announcementRE.FindStringSubmatch(text)
	if m == nil {
		return Announcement{}, false
	}
	title := strings.TrimSpace(m[1])
	if title == "" {
		return Announcement{}, false
	}
	return Announcement{
		Title:    title,
		Year:     m[2],
		Language: m[3],
	}, true
}
