package matchers

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/varaeff/wordcheck.api/enums"
)

// LineBreakMarker replaces line separators in display text.
const LineBreakMarker = "<br>"

var genderMarkers = regexp.MustCompile(`(?i)\((?:m|f|mpl|fpl)\)`)

type Normalized struct {
	Text    string
	Display string
	Words   []string
}

// Normalize prepares a text and a newline-delimited word list for matching.
func Normalize(text, wordList string, mode enums.Mode) Normalized {
	normalized := NormalizeText(text)
	return Normalized{
		Text:    normalized,
		Display: DisplayText(normalized),
		Words:   ParseWordList(wordList, mode),
	}
}

// NormalizeText collapses whitespace inside every line, trims the lines and drops empty ones.
func NormalizeText(text string) string {
	lines := strings.Split(canonical(text), "\n")
	kept := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.Join(strings.Fields(line), " ")
		if line == "" {
			continue
		}
		kept = append(kept, line)
	}
	return strings.Join(kept, "\n")
}

func DisplayText(normalized string) string {
	return strings.ReplaceAll(normalized, "\n", LineBreakMarker)
}

// ParseWordList splits a word list into trimmed, non-empty entries.
// Order and duplicates are preserved. Only manuscript mode strips gender markers.
func ParseWordList(wordList string, mode enums.Mode) []string {
	wordList = canonical(wordList)
	if mode == enums.ModeManuscript {
		wordList = StripGenderMarkers(wordList)
	}

	lines := strings.Split(wordList, "\n")
	words := make([]string, 0, len(lines))
	for _, line := range lines {
		word := strings.TrimSpace(line)
		if word == "" {
			continue
		}
		words = append(words, word)
	}
	return words
}

// canonical replaces invalid UTF-8 with U+FFFD and composes the result to NFC.
func canonical(s string) string {
	return norm.NFC.String(strings.ToValidUTF8(s, "\uFFFD"))
}

// StripGenderMarkers removes "(m)", "(f)", "(mpl)" and "(fpl)" in any letter case.
func StripGenderMarkers(s string) string {
	return genderMarkers.ReplaceAllString(s, "")
}

// Target returns the text that words are matched against for t.
func (n Normalized) Target(t enums.Target) string {
	if t == enums.TargetDisplay {
		return n.Display
	}
	return n.Text
}
