package spec

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFullMatch(t *testing.T) {
	tests := []struct {
		name string
		m    Matcher
		tok  string
		want []string
	}{
		{"whole token", MustRegex(`<!\d{10}.*>`), "<!2345678901>", []string{"<!2345678901>"}},
		{"capture group", MustRegex(`<!(\d{10}).*>`), "<!2345678901xyz>", []string{"<!2345678901xyz>", "2345678901"}},
		{"prefix only", MustRegex(`\d+`), "123abc", nil},
		{"alternation prefers full", MustRegex(`a|ab`), "ab", []string{"ab"}},
		{"hand built", Matcher{Kind: MatchPattern, Pattern: regexp.MustCompile(`x+`)}, "xxx", []string{"xxx"}},
		{"hand built rejects partial", Matcher{Kind: MatchPattern, Pattern: regexp.MustCompile(`x+`)}, "xxy", nil},
		{"no pattern", Lit("x"), "x", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.m.FullMatch(tt.tok))
		})
	}
}

func TestOneOf(t *testing.T) {
	values := []string{"create", "delete", "edit"}
	m := OneOf(values...)
	values[0] = "mutated"

	assert.Equal(t, MatchPredicate, m.Kind)
	assert.True(t, m.Predicate("create"))
	assert.True(t, m.Predicate("edit"))
	assert.False(t, m.Predicate("make"))
}

func TestMatcherConstructors(t *testing.T) {
	assert.Equal(t, MatchLiteral, Lit("a").Kind)
	assert.Equal(t, MatchType, OfType("int").Kind)
	assert.Equal(t, MatchTransform, WhereMap(func(string) bool { return true }, func(s string) any { return s }).Kind)

	m := RegexAs(regexp.MustCompile(`\d+`), "int")
	assert.Equal(t, MatchPattern, m.Kind)
	assert.Equal(t, "int", string(m.Type))
	assert.Panics(t, func() { MustRegex("(") })
}
