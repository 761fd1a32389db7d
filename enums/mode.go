package enums

import "fmt"

type Mode string

const (
	ModeInvalid Mode = ""

	// ModeManuscript checks a list of words against a body of text.
	// Gender/number annotations such as "(m)" or "(fpl)" are stripped from the list first.
	ModeManuscript Mode = "manuscript"

	// ModeWordList compares two word lists verbatim, without stripping.
	ModeWordList Mode = "wordlist"
)

func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeManuscript, ModeWordList:
		return Mode(s), nil
	}
	return ModeInvalid, fmt.Errorf("invalid mode: %q", s)
}
