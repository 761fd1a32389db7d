package matchers

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/varaeff/wordcheck.api/enums"
)

const trailingPunctuation = ".,!?;:"

type PatternOptions struct {
	Boundary  enums.Boundary
	LineBreak string
}

type PatternOption func(*PatternOptions)

// WithBoundary selects the boundary rule. The default is enums.BoundaryAware.
func WithBoundary(b enums.Boundary) PatternOption {
	return func(o *PatternOptions) {
		o.Boundary = b
	}
}

// WithLineBreak makes the pattern treat marker as a boundary, for matching display text.
func WithLineBreak(marker string) PatternOption {
	return func(o *PatternOptions) {
		o.LineBreak = marker
	}
}

// Pattern matches a single word literally and case-insensitively, honoring word boundaries.
// The zero value never matches.
type Pattern struct {
	word string
	re   *regexp.Regexp
	opts PatternOptions
}

func BuildMatchPattern(word string, opts ...PatternOption) Pattern {
	o := PatternOptions{Boundary: enums.BoundaryAware}
	for _, opt := range opts {
		opt(&o)
	}

	word = canonical(strings.TrimSpace(word))
	p := Pattern{word: word, opts: o}
	if word == "" {
		return p
	}
	p.re = regexp.MustCompile(`(?i)` + regexp.QuoteMeta(word))
	return p
}

func (p Pattern) Word() string {
	return p.word
}

// String returns the underlying literal expression.
func (p Pattern) String() string {
	if p.re == nil {
		return ""
	}
	return p.re.String()
}

func (p Pattern) MatchString(text string) bool {
	return len(p.find(text, 1)) > 0
}

func (p Pattern) Count(text string) int {
	return len(p.find(text, -1))
}

// FindAllIndex returns the byte offsets [start, end) of every accepted occurrence in text.
func (p Pattern) FindAllIndex(text string) [][]int {
	return p.find(text, -1)
}

func (p Pattern) find(text string, limit int) [][]int {
	if p.re == nil {
		return nil
	}

	var hits [][]int
	pos := 0
	for pos < len(text) {
		loc := p.re.FindStringIndex(text[pos:])
		if loc == nil {
			break
		}
		start, end := pos+loc[0], pos+loc[1]

		if p.accepts(text, start, end) {
			hits = append(hits, []int{start, end})
			if limit > 0 && len(hits) >= limit {
				break
			}
			pos = end
			continue
		}

		// Retry from the next rune so that overlapping candidates are not skipped.
		_, size := utf8.DecodeRuneInString(text[start:])
		pos = start + size
	}
	return hits
}

func (p Pattern) accepts(text string, start, end int) bool {
	if p.overlapsLineBreak(text, start, end) {
		return false
	}
	if p.opts.Boundary == enums.BoundarySimple {
		return p.leftSimple(text, start) && p.rightSimple(text, end)
	}
	return p.leftAware(text, start) && p.rightAware(text, end)
}

// overlapsLineBreak reports whether [start, end) shares bytes with a line-break marker.
func (p Pattern) overlapsLineBreak(text string, start, end int) bool {
	marker := p.opts.LineBreak
	if marker == "" {
		return false
	}

	lo := max(0, start-len(marker)+1)
	hi := min(len(text), end+len(marker)-1)
	window := text[lo:hi]
	for off := 0; ; {
		i := strings.Index(window[off:], marker)
		if i < 0 {
			return false
		}
		m := lo + off + i
		if m < end && m+len(marker) > start {
			return true
		}
		off += i + 1
	}
}

func (p Pattern) leftAware(text string, start int) bool {
	if start == 0 {
		return true
	}
	if p.opts.LineBreak != "" && strings.HasSuffix(text[:start], p.opts.LineBreak) {
		return true
	}
	r, _ := utf8.DecodeLastRuneInString(text[:start])
	return !unicode.IsLetter(r)
}

func (p Pattern) rightAware(text string, end int) bool {
	if end == len(text) {
		return true
	}
	if p.opts.LineBreak != "" && strings.HasPrefix(text[end:], p.opts.LineBreak) {
		return true
	}
	r, _ := utf8.DecodeRuneInString(text[end:])
	return unicode.IsSpace(r) || strings.ContainsRune(trailingPunctuation, r)
}

func (p Pattern) leftSimple(text string, start int) bool {
	if start == 0 {
		return true
	}
	if p.opts.LineBreak != "" && strings.HasSuffix(text[:start], p.opts.LineBreak) {
		return true
	}
	r, _ := utf8.DecodeLastRuneInString(text[:start])
	return !isWordChar(r)
}

func (p Pattern) rightSimple(text string, end int) bool {
	if end == len(text) {
		return true
	}
	if p.opts.LineBreak != "" && strings.HasPrefix(text[end:], p.opts.LineBreak) {
		return true
	}
	r, _ := utf8.DecodeRuneInString(text[end:])
	return !isWordChar(r)
}

func isWordChar(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}
