package spec

import (
	"errors"
	"regexp"
	"slices"

	"argseval/resolver"
)

//go:generate go tool stringer -type=MatcherKind -trimprefix=Match -output=matcherkind_string.go

// MatcherKind tags the variant held by a Matcher.
type MatcherKind int

const (
	_ MatcherKind = iota // zero value is invalid

	MatchLiteral   // token equals Literal
	MatchType      // a resolver exists for Type
	MatchPredicate // Predicate accepts the token
	MatchTransform // Predicate accepts the token; Transform produces the value
	MatchPattern   // Pattern matches the whole token; optional Type resolves the capture
)

// Matcher is one element of an Expression. Only the fields belonging to Kind
// are meaningful; build matchers with the constructors below.
type Matcher struct {
	Kind MatcherKind

	Literal   string
	Type      resolver.TypeID
	Predicate func(string) bool
	Transform func(string) any
	Pattern   *regexp.Regexp

	// full is Pattern anchored at both ends.
	full *regexp.Regexp
}

// Lit matches a token equal to s and emits s.
func Lit(s string) Matcher {
	return Matcher{Kind: MatchLiteral, Literal: s}
}

// OfType matches any token for which a resolver is registered under id and
// emits the resolved value.
func OfType(id resolver.TypeID) Matcher {
	return Matcher{Kind: MatchType, Type: id}
}

// Where matches tokens accepted by pred and emits the raw token.
func Where(pred func(string) bool) Matcher {
	return Matcher{Kind: MatchPredicate, Predicate: pred}
}

// WhereMap matches tokens accepted by pred and emits fn(token). fn runs only
// once every element of the surrounding expression has matched.
func WhereMap(pred func(string) bool, fn func(string) any) Matcher {
	return Matcher{Kind: MatchTransform, Predicate: pred, Transform: fn}
}

// OneOf matches a token equal to any of values and emits the raw token.
func OneOf(values ...string) Matcher {
	values = slices.Clone(values)

	return Where(func(s string) bool { return slices.Contains(values, s) })
}

// Regex matches tokens that re matches in full. The emitted value is the
// first capture group when re has one, otherwise the whole token.
func Regex(re *regexp.Regexp) Matcher {
	return RegexAs(re, "")
}

// RegexAs is Regex with the emitted string passed through the resolver
// registered under id. An empty id emits the string unchanged.
func RegexAs(re *regexp.Regexp, id resolver.TypeID) Matcher {
	m := Matcher{Kind: MatchPattern, Pattern: re, Type: id}
	if re != nil {
		m.full = anchor(re)
	}

	return m
}

// MustRegex compiles expr and returns Regex of it. It panics if expr does not
// compile.
func MustRegex(expr string) Matcher {
	return Regex(regexp.MustCompile(expr))
}

// FullMatch returns the submatches of tok when the matcher's pattern matches
// all of tok, or nil otherwise.
func (m Matcher) FullMatch(tok string) []string {
	re := m.full
	if re == nil {
		if m.Pattern == nil {
			return nil
		}

		re = anchor(m.Pattern)
	}

	return re.FindStringSubmatch(tok)
}

// compile anchors Pattern once for matchers built without RegexAs.
func (m *Matcher) compile() {
	if m.Kind == MatchPattern && m.Pattern != nil && m.full == nil {
		m.full = anchor(m.Pattern)
	}
}

func anchor(re *regexp.Regexp) *regexp.Regexp {
	return regexp.MustCompile(`^(?:` + re.String() + `)$`)
}

func (m Matcher) validate() error {
	switch m.Kind {
	case MatchLiteral:
		return nil
	case MatchType:
		if m.Type == "" {
			return errors.New("type matcher without a type")
		}
	case MatchPredicate:
		if m.Predicate == nil {
			return errors.New("predicate matcher without a predicate")
		}
	case MatchTransform:
		if m.Predicate == nil || m.Transform == nil {
			return errors.New("transform matcher needs both a predicate and a transform")
		}
	case MatchPattern:
		if m.Pattern == nil {
			return errors.New("pattern matcher without a pattern")
		}
	default:
		return errors.New("matcher has no kind")
	}

	return nil
}
