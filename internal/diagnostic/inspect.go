package diagnostic

import (
	"fmt"
	"slices"

	"argseval/engine"
	"argseval/internal/match"
	"argseval/result"
	"argseval/spec"
)

// Inspect reports on one evaluation by e that produced m and err. m may be
// nil when the evaluation never ran.
func Inspect(e *engine.Engine, m *result.Map, err error) Diagnostics {
	var d Diagnostics

	for _, id := range e.MissingTypes() {
		d.AddError(CodeMissingType, "no resolver registered for this type", string(id))
	}

	if err != nil {
		d.AddError(CodeEvaluation, err.Error(), "")
	}

	if m == nil {
		return d
	}

	set := e.Set()

	for _, a := range set.Indexed {
		if !m.Has(a.Name) {
			d.AddInfo(CodeMissingIndexed, "indexed argument received no token", a.Name)
		}
	}

	suggester := match.NewSuggester(set)

	rest := m.Remaining()

	for i, tok := range rest {
		isTag := slices.ContainsFunc(set.Tagged, func(t spec.Tagged) bool { return t.Name == tok })
		if isTag && i == len(rest)-1 {
			d.AddWarning(CodeTagWithoutValue, "trailing tag has no value", tok)
			continue
		}

		var names []string
		for _, s := range suggester.Suggest(tok) {
			if !slices.Contains(names, s.Name) {
				names = append(names, s.Name)
			}
		}

		d.AddWarning(CodeUnconsumed, fmt.Sprintf("token at leftover position %d was not consumed", i), tok, names...)
	}

	return d
}
