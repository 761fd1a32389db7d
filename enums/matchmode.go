package enums

import "fmt"

type Boundary string

const (
	// BoundaryAware accepts a match only when it is not preceded by a letter and is
	// followed by whitespace, one of ".,!?;:", a line-break marker or the end of the text.
	// For example, "tener" will not match "mantener", "(tener)" or "tener/comer".
	BoundaryAware Boundary = "aware"

	// BoundarySimple requires the match to be a complete word: no letter, digit or
	// underscore on either side. For example, "tener" matches "(tener)" but not "mantener".
	BoundarySimple Boundary = "simple"
)

type Target string

const (
	// TargetNormalized matches against the whitespace-normalized text.
	TargetNormalized Target = "normalized"

	// TargetDisplay matches against the display text, where line breaks are "<br>" markers.
	TargetDisplay Target = "display"
)

type Filter string

const (
	FilterAll      Filter = "all"
	FilterFound    Filter = "found"
	FilterNotFound Filter = "notfound"
)

// ParseBoundary, ParseTarget and ParseFilter treat an empty string as the default value.

func ParseBoundary(s string) (Boundary, error) {
	switch Boundary(s) {
	case "", BoundaryAware:
		return BoundaryAware, nil
	case BoundarySimple:
		return BoundarySimple, nil
	}
	return "", fmt.Errorf("invalid boundary: %q", s)
}

func ParseTarget(s string) (Target, error) {
	switch Target(s) {
	case "", TargetNormalized:
		return TargetNormalized, nil
	case TargetDisplay:
		return TargetDisplay, nil
	}
	return "", fmt.Errorf("invalid target: %q", s)
}

func ParseFilter(s string) (Filter, error) {
	switch Filter(s) {
	case "", FilterAll:
		return FilterAll, nil
	case FilterFound, FilterNotFound:
		return Filter(s), nil
	}
	return "", fmt.Errorf("invalid filter: %q", s)
}
