package match

import (
	"cmp"
	"slices"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"argseval/spec"
)

// DefaultThreshold is the least NameSimilarity a candidate found only by edit
// distance needs to be suggested.
const DefaultThreshold = 0.6

// Candidate is a declared name a token may have been meant as.
type Candidate struct {
	Name  string
	Style spec.Style
}

// Suggestion is a ranked Candidate.
type Suggestion struct {
	Candidate

	// Score is the NameSimilarity between the token and the candidate.
	Score float64
}

// Suggester ranks the names declared by one argument set.
type Suggester struct {
	candidates []Candidate
	separator  string

	// Threshold overrides DefaultThreshold when positive.
	Threshold float64
	// Limit caps the number of suggestions when positive.
	Limit int
}

// NewSuggester collects the candidates of set: named and tagged names, and
// the literals of chains and expressions.
func NewSuggester(set spec.Set) *Suggester {
	s := &Suggester{separator: set.Separator, Limit: 3}

	seen := make(map[Candidate]bool)
	add := func(name string, st spec.Style) {
		c := Candidate{Name: name, Style: st}
		if name == "" || seen[c] {
			return
		}

		seen[c] = true
		s.candidates = append(s.candidates, c)
	}

	for _, a := range set.Named {
		add(a.Name, spec.StyleNamed)
	}

	for _, a := range set.Tagged {
		add(a.Name, spec.StyleTagged)
	}

	for _, c := range set.Chains {
		for _, lit := range c.Literals {
			add(lit, spec.StyleChained)
		}
	}

	for _, x := range set.Expressions {
		for _, el := range x.Elements {
			if el.Kind == spec.MatchLiteral {
				add(el.Literal, spec.StyleExpression)
			}
		}
	}

	return s
}

// Candidates returns the names the suggester ranks.
func (s *Suggester) Candidates() []Candidate {
	return slices.Clone(s.candidates)
}

// Suggest ranks the candidates token may have been meant as, best first.
// Named candidates are compared with the key part of token when it contains
// the separator. A candidate equal to the compared text is never suggested.
//
// Candidates found as a fuzzy subsequence need half the threshold; when
// fuzzy matching finds nothing, candidates reaching the threshold by edit
// distance are used instead.
func (s *Suggester) Suggest(token string) []Suggestion {
	threshold := s.Threshold
	if threshold <= 0 {
		threshold = DefaultThreshold
	}

	key := token
	if s.separator != "" {
		if k, _, found := strings.Cut(token, s.separator); found {
			key = k
		}
	}

	query := func(c Candidate) string {
		if c.Style == spec.StyleNamed {
			return key
		}

		return token
	}

	var out []Suggestion

	for _, group := range s.byQuery(query) {
		ranks := fuzzy.RankFindNormalizedFold(group.query, group.names())

		for _, r := range ranks {
			c := group.candidates[r.OriginalIndex]
			if score := NameSimilarity(group.query, c.Name); c.Name != group.query && score >= threshold/2 {
				out = append(out, Suggestion{Candidate: c, Score: score})
			}
		}
	}

	if len(out) == 0 {
		for _, c := range s.candidates {
			q := query(c)
			if score := NameSimilarity(q, c.Name); c.Name != q && score >= threshold {
				out = append(out, Suggestion{Candidate: c, Score: score})
			}
		}
	}

	slices.SortStableFunc(out, func(a, b Suggestion) int {
		if c := cmp.Compare(b.Score, a.Score); c != 0 {
			return c
		}

		return strings.Compare(a.Name, b.Name)
	})

	if s.Limit > 0 && len(out) > s.Limit {
		out = out[:s.Limit]
	}

	return out
}

type queryGroup struct {
	query      string
	candidates []Candidate
}

func (g queryGroup) names() []string {
	names := make([]string, len(g.candidates))
	for i, c := range g.candidates {
		names[i] = c.Name
	}

	return names
}

// byQuery groups candidates by the text they are compared with.
func (s *Suggester) byQuery(query func(Candidate) string) []queryGroup {
	var groups []queryGroup

	for _, c := range s.candidates {
		q := query(c)

		i := slices.IndexFunc(groups, func(g queryGroup) bool { return g.query == q })
		if i < 0 {
			groups = append(groups, queryGroup{query: q})
			i = len(groups) - 1
		}

		groups[i].candidates = append(groups[i].candidates, c)
	}

	return groups
}
