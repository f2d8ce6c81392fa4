package spec

import (
	"fmt"
	"strings"
)

//go:generate go tool stringer -type=Style -trimprefix=Style -output=style_string.go

// Style identifies one argument style and the pass that matches it.
type Style int

const (
	_ Style = iota // zero value is invalid

	StyleNamed
	StyleTagged
	StyleChained
	StyleExpression

	// StyleIndexed and StyleVariadic always run after the configured order
	// and cannot appear in it.
	StyleIndexed
	StyleVariadic
)

// DefaultOrder returns the pass order used when none is configured.
func DefaultOrder() []Style {
	return []Style{StyleExpression, StyleChained, StyleTagged, StyleNamed}
}

// Orderable reports whether s may appear in a configured pass order.
func (s Style) Orderable() bool {
	switch s {
	default:
		return false
	case StyleNamed, StyleTagged, StyleChained, StyleExpression:
		return true
	}
}

// ParseStyle parses a style name case-insensitively. "chain" and "word" are
// accepted as aliases of the chained style.
func ParseStyle(s string) (Style, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "named":
		return StyleNamed, nil
	case "tagged":
		return StyleTagged, nil
	case "chained", "chain", "word":
		return StyleChained, nil
	case "expression":
		return StyleExpression, nil
	case "indexed":
		return StyleIndexed, nil
	case "variadic":
		return StyleVariadic, nil
	default:
		return 0, fmt.Errorf("unknown argument style %q", s)
	}
}
