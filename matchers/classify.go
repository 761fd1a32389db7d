package matchers

import "github.com/varaeff/wordcheck.api/enums"

type WordResult struct {
	Word  string `json:"word"`
	Found bool   `json:"found"`
}

// Classification holds one result per word list entry, in list order.
type Classification []WordResult

// Found reports whether word was found. ok is false if word is not part of the classification.
func (c Classification) Found(word string) (found, ok bool) {
	for _, r := range c {
		if r.Word == word {
			return r.Found, true
		}
	}
	return false, false
}

// Classify marks each word as found if at least one accepted occurrence exists in target.
func Classify(words []string, target string, opts ...PatternOption) Classification {
	target = canonical(target)
	patterns := make(map[string]Pattern, len(words))

	res := make(Classification, 0, len(words))
	for _, word := range words {
		p, ok := patterns[word]
		if !ok {
			p = BuildMatchPattern(word, opts...)
			patterns[word] = p
		}
		res = append(res, WordResult{Word: word, Found: p.MatchString(target)})
	}
	return res
}

// Partition splits a classification into found, not found and all words, keeping order.
func Partition(c Classification) (found, notFound, all []string) {
	found = make([]string, 0, len(c))
	notFound = make([]string, 0, len(c))
	all = make([]string, 0, len(c))
	for _, r := range c {
		all = append(all, r.Word)
		if r.Found {
			found = append(found, r.Word)
		} else {
			notFound = append(notFound, r.Word)
		}
	}
	return found, notFound, all
}

// CollectByStatus returns the words whose classification equals wantFound.
// The result is empty, never nil, when nothing qualifies.
func CollectByStatus(words []string, target string, wantFound bool, opts ...PatternOption) []string {
	res := make([]string, 0)
	for _, r := range Classify(words, target, opts...) {
		if r.Found == wantFound {
			res = append(res, r.Word)
		}
	}
	return res
}

// Check normalizes the inputs and classifies the words against the chosen target text.
func Check(text, wordList string, mode enums.Mode, target enums.Target, boundary enums.Boundary) (Normalized, Classification) {
	n := Normalize(text, wordList, mode)
	return n, Classify(n.Words, n.Target(target), TargetOptions(target, boundary)...)
}

// TargetOptions returns the pattern options needed to match against the given target.
func TargetOptions(target enums.Target, boundary enums.Boundary) []PatternOption {
	opts := []PatternOption{WithBoundary(boundary)}
	if target == enums.TargetDisplay {
		opts = append(opts, WithLineBreak(LineBreakMarker))
	}
	return opts
}
