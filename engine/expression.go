package engine

import (
	"fmt"

	"argseval/result"
	"argseval/spec"
)

// matchExpression tries each expression at pos in two phases. check decides
// the match without resolving anything; materialize computes the values and
// only runs for the expression that matched.
func (e *Engine) matchExpression(s *stream, pos int, m *result.Map) (bool, error) {
	for _, x := range e.set.Expressions {
		w, ok := s.window(pos, len(x.Elements))
		if !ok || !e.check(x.Elements, w) {
			continue
		}

		values, err := e.materialize(x, w)
		if err != nil {
			return false, err
		}

		e.accept(spec.StyleExpression, x.Name, values, s, pos, len(x.Elements), m)

		return true, nil
	}

	return false, nil
}

func (e *Engine) check(elements []spec.Matcher, w []string) bool {
	for i, el := range elements {
		tok := w[i]

		switch el.Kind {
		case spec.MatchLiteral:
			if tok != el.Literal {
				return false
			}
		case spec.MatchType:
			if !e.registry.Has(el.Type) {
				return false
			}
		case spec.MatchPredicate, spec.MatchTransform:
			if !el.Predicate(tok) {
				return false
			}
		case spec.MatchPattern:
			if el.FullMatch(tok) == nil {
				return false
			}
		default:
			return false
		}
	}

	return true
}

func (e *Engine) materialize(x spec.Expression, w []string) ([]any, error) {
	values := make([]any, len(w))

	for i, el := range x.Elements {
		tok := w[i]

		switch el.Kind {
		case spec.MatchLiteral:
			values[i] = el.Literal
		case spec.MatchType:
			v, err := e.registry.Resolve(el.Type, tok)
			if err != nil {
				return nil, fmt.Errorf("expression %q element %d: %w", x.Name, i, err)
			}

			values[i] = v
		case spec.MatchPredicate:
			values[i] = tok
		case spec.MatchTransform:
			values[i] = el.Transform(tok)
		case spec.MatchPattern:
			sub := el.FullMatch(tok)

			capture := sub[0]
			if len(sub) > 1 {
				capture = sub[1]
			}

			if el.Type == "" {
				values[i] = capture
				continue
			}

			v, err := e.registry.Resolve(el.Type, capture)
			if err != nil {
				return nil, fmt.Errorf("expression %q element %d: %w", x.Name, i, err)
			}

			values[i] = v
		}
	}

	return values, nil
}
