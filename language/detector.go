package language

import (
	"strings"

	"github.com/pemistahl/lingua-go"
)

// DefaultLanguages are the languages manuscripts and glossaries are usually written in.
var DefaultLanguages = []lingua.Language{
	lingua.English,
	lingua.Spanish,
	lingua.Russian,
	lingua.French,
	lingua.German,
	lingua.Italian,
	lingua.Portuguese,
}

// Detector reports the dominant language of a text. It never affects matching.
type Detector struct {
	detector lingua.LanguageDetector
}

// NewDetector builds a detector for the given languages, or DefaultLanguages when fewer
// than two are passed.
func NewDetector(languages ...lingua.Language) *Detector {
	if len(languages) < 2 {
		languages = DefaultLanguages
	}

	d := lingua.NewLanguageDetectorBuilder().
		FromLanguages(languages...).
		WithMinimumRelativeDistance(0.1).
		Build()

	return &Detector{detector: d}
}

// Detect returns the lower-case ISO 639-1 code of the text's language, or "" when unsure.
func (d *Detector) Detect(text string) string {
	if d == nil || strings.TrimSpace(text) == "" {
		return ""
	}

	lang, ok := d.detector.DetectLanguageOf(text)
	if !ok {
		return ""
	}

	return strings.ToLower(lang.IsoCode639_1().String())
}
