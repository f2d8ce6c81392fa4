package engine

import (
	"fmt"
	"slices"
	"strings"

	"argseval/result"
	"argseval/spec"
)

// matchFunc tries every declaration of one style at pos. On a match it has
// already removed the matched tokens and recorded the value.
type matchFunc func(s *stream, pos int, m *result.Map) (bool, error)

// scan runs one pass. After a match the cursor stays put so the tokens that
// slid into pos are tried next; tokens before pos are not revisited. Without
// a match the cursor advances in mixing mode and the pass ends in strict mode.
func (e *Engine) scan(style spec.Style, s *stream, m *result.Map, match matchFunc) error {
	e.logger.Debug("pass start", "style", style, "tokens", s.len())

	for pos := 0; pos < s.len(); {
		ok, err := match(s, pos, m)
		if err != nil {
			return err
		}

		if ok {
			continue
		}

		if !e.set.Mixing {
			e.logger.Debug("strict pass halted", "style", style, "pos", pos, "token", s.at(pos))
			break
		}

		pos++
	}

	e.logger.Debug("pass end", "style", style, "tokens", s.len())

	return nil
}

// accept removes n tokens at pos and stores v under name.
func (e *Engine) accept(style spec.Style, name string, v any, s *stream, pos, n int, m *result.Map) {
	taken := s.remove(pos, n)
	m.Set(name, v)

	e.logger.Debug("matched", "style", style, "name", name, "pos", pos, "tokens", taken)
}

func (e *Engine) matchNamed(s *stream, pos int, m *result.Map) (bool, error) {
	key, raw, found := strings.Cut(s.at(pos), e.set.Separator)
	if !found {
		return false, nil
	}

	for _, a := range e.set.Named {
		if a.Name != key {
			continue
		}

		v, err := e.registry.Resolve(a.Type, raw)
		if err != nil {
			return false, fmt.Errorf("named argument %q: %w", a.Name, err)
		}

		e.accept(spec.StyleNamed, a.Name, v, s, pos, 1, m)

		return true, nil
	}

	return false, nil
}

func (e *Engine) matchTagged(s *stream, pos int, m *result.Map) (bool, error) {
	tok := s.at(pos)

	for _, a := range e.set.Tagged {
		if a.Name != tok {
			continue
		}

		// A trailing tag has no value and does not match.
		if pos+1 >= s.len() {
			return false, nil
		}

		v, err := e.registry.Resolve(a.Type, s.at(pos+1))
		if err != nil {
			return false, fmt.Errorf("tagged argument %q: %w", a.Name, err)
		}

		e.accept(spec.StyleTagged, a.Name, v, s, pos, 2, m)

		return true, nil
	}

	return false, nil
}

func (e *Engine) matchChained(s *stream, pos int, m *result.Map) (bool, error) {
	for _, c := range e.set.Chains {
		w, ok := s.window(pos, len(c.Literals))
		if !ok || !slices.Equal(w, c.Literals) {
			continue
		}

		e.accept(spec.StyleChained, c.Name, slices.Clone(c.Literals), s, pos, len(c.Literals), m)

		return true, nil
	}

	return false, nil
}

// evalIndexed assigns the leading tokens to the indexed declarations in
// order. It ignores the mixing mode.
func (e *Engine) evalIndexed(s *stream, m *result.Map) error {
	declared := len(e.set.Indexed)
	if e.set.RequireAllIndexed && s.len() < declared {
		return &InsufficientArgumentsError{Want: declared, Got: s.len()}
	}

	n := min(declared, s.len())
	values := make([]any, n)

	for i, a := range e.set.Indexed[:n] {
		v, err := e.registry.Resolve(a.Type, s.at(i))
		if err != nil {
			return fmt.Errorf("indexed argument %q: %w", a.Name, err)
		}

		values[i] = v
	}

	for i, a := range e.set.Indexed[:n] {
		m.Set(a.Name, values[i])
	}

	if n > 0 {
		taken := s.remove(0, n)
		e.logger.Debug("indexed consumed", "count", n, "tokens", taken)
	}

	return nil
}

func (e *Engine) evalVariadic(s *stream, m *result.Map) {
	rest := s.remove(0, s.len())
	m.Set(result.VariadicKey, rest)

	e.logger.Debug("variadic consumed", "count", len(rest))
}
