package matchers

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/varaeff/wordcheck.api/enums"
)

func TestNormalizeText_CollapsesWhitespace(t *testing.T) {
	got := NormalizeText("  Hola   mundo \t cruel  \n\tadiós  ")

	assert.Equal(t, "Hola mundo cruel\nadiós", got)
	for _, line := range strings.Split(got, "\n") {
		assert.NotContains(t, line, "  ")
		assert.Equal(t, strings.TrimSpace(line), line)
	}
}

func TestNormalizeText_DropsEmptyLines(t *testing.T) {
	got := NormalizeText("primer párrafo\n\n   \n\t\nsegundo párrafo\n")

	assert.Equal(t, "primer párrafo\nsegundo párrafo", got)
	for _, line := range strings.Split(got, "\n") {
		assert.NotEmpty(t, line)
	}
}

func TestNormalizeText_CarriageReturns(t *testing.T) {
	assert.Equal(t, "uno\ndos", NormalizeText("uno\r\n\r\ndos\r\n"))
}

func TestNormalizeText_Idempotent(t *testing.T) {
	inputs := []string{
		"",
		"   ",
		"a  b\n\n c ",
		"El  perro (m)\n\n\tcome.\r\nFin",
	}

	for _, in := range inputs {
		once := Normalize(in, "", enums.ModeManuscript).Text
		twice := Normalize(once, "", enums.ModeManuscript).Text
		assert.Equal(t, once, twice, "input %q", in)
	}
}

func TestNormalize_EmptyInput(t *testing.T) {
	n := Normalize("", "", enums.ModeManuscript)

	assert.Equal(t, "", n.Text)
	assert.Equal(t, "", n.Display)
	assert.Empty(t, n.Words)
}

func TestDisplayText_ReplacesLineBreaks(t *testing.T) {
	n := Normalize("casa\n\nperro\ngato", "", enums.ModeWordList)

	assert.Equal(t, "casa\nperro\ngato", n.Text)
	assert.Equal(t, "casa<br>perro<br>gato", n.Display)
}

func TestParseWordList_StripsGenderMarkersInManuscriptMode(t *testing.T) {
	words := ParseWordList("perro (m)\ncasa (f)\nlibros (mpl)\nmesas (FPL)\nGato (M)", enums.ModeManuscript)

	assert.Equal(t, []string{"perro", "casa", "libros", "mesas", "Gato"}, words)
}

func TestParseWordList_KeepsMarkersInWordListMode(t *testing.T) {
	words := ParseWordList("perro (m)\nperro", enums.ModeWordList)

	assert.Equal(t, []string{"perro (m)", "perro"}, words)
}

func TestParseWordList_OnlyKnownMarkers(t *testing.T) {
	words := ParseWordList("hola (pl)\nadiós (mf)", enums.ModeManuscript)

	assert.Equal(t, []string{"hola (pl)", "adiós (mf)"}, words)
}

func TestParseWordList_PreservesOrderAndDuplicates(t *testing.T) {
	assert.Equal(t, []string{"b", "a", "c"}, ParseWordList("b\n\na\n   \nc\n", enums.ModeWordList))
	assert.Equal(t, []string{"a", "a"}, ParseWordList("a\n a ", enums.ModeWordList))
}

func TestParseWordList_KeepsInnerWhitespaceOfPhrases(t *testing.T) {
	assert.Equal(t, []string{"buenos días"}, ParseWordList("  buenos días  ", enums.ModeWordList))
}

func TestStripGenderMarkers_Anywhere(t *testing.T) {
	assert.Equal(t, "perro  grande", StripGenderMarkers("perro (m) grande"))
	assert.Equal(t, "perro", StripGenderMarkers("perro(M)"))
}

func TestNormalizeText_ComposesAndSanitizes(t *testing.T) {
	assert.Equal(t, "caf\u00e9", NormalizeText("cafe\u0301"))
	assert.Equal(t, "caf\ufffd x", NormalizeText("caf\xe9  x"))
}
