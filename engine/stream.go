package engine

import "slices"

// stream is the mutable token list one evaluation works on. Removals keep
// the relative order of the remaining tokens.
type stream struct {
	tokens   []string
	consumed int
}

func newStream(tokens []string) *stream {
	return &stream{tokens: slices.Clone(tokens)}
}

func (s *stream) len() int {
	return len(s.tokens)
}

func (s *stream) at(i int) string {
	return s.tokens[i]
}

// window returns the n tokens starting at pos, or false when fewer remain.
// The returned slice aliases the stream and is only valid until the next
// removal.
func (s *stream) window(pos, n int) ([]string, bool) {
	if n <= 0 || pos < 0 || pos+n > len(s.tokens) {
		return nil, false
	}

	return s.tokens[pos : pos+n : pos+n], true
}

// remove deletes n tokens at pos and returns a copy of them.
func (s *stream) remove(pos, n int) []string {
	taken := slices.Clone(s.tokens[pos : pos+n])
	s.tokens = slices.Delete(s.tokens, pos, pos+n)
	s.consumed += n

	return taken
}

func (s *stream) rest() []string {
	return slices.Clone(s.tokens)
}
