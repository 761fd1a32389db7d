package matchers

import "github.com/varaeff/wordcheck.api/enums"

// Filter returns the view of c selected by f. Unknown filters behave like enums.FilterAll.
func Filter(c Classification, f enums.Filter) []string {
	found, notFound, all := Partition(c)

	switch f {
	case enums.FilterFound:
		return found
	case enums.FilterNotFound:
		return notFound
	}

	return all
}
