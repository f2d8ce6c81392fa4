// Package engine evaluates token lists against a declared argument set.
//
// An evaluation runs the configured passes in order over one shared token
// stream, then the indexed pass, then the variadic pass when enabled. Every
// pass scans left to right and removes the tokens it matches, so later passes
// only see what earlier passes left behind. Passes are never re-run.
package engine

import (
	"fmt"
	"log/slog"

	"argseval/resolver"
	"argseval/result"
	"argseval/spec"
)

// Engine evaluates token lists. Its argument set is fixed at construction;
// only its resolver registry may change afterwards. An Engine may be used by
// several goroutines at once.
type Engine struct {
	set      spec.Set
	registry *resolver.Registry
	logger   *slog.Logger
}

// Option configures an Engine built by New.
type Option func(*Engine)

// WithRegistry makes the engine resolve through r instead of a fresh default
// registry. The engine does not copy r.
func WithRegistry(r *resolver.Registry) Option {
	return func(e *Engine) {
		if r != nil {
			e.registry = r
		}
	}
}

// WithLogger sets the logger debug traces are written to.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// New validates set and builds an engine from a copy of it.
func New(set spec.Set, opts ...Option) (*Engine, error) {
	if err := set.Validate(); err != nil {
		return nil, fmt.Errorf("invalid argument set: %w", err)
	}

	e := &Engine{
		set:      set.Clone(),
		registry: resolver.NewDefaultRegistry(),
		logger:   slog.New(slog.DiscardHandler),
	}

	for _, opt := range opts {
		opt(e)
	}

	return e, nil
}

// Register adds or replaces a resolver after the engine is built.
func (e *Engine) Register(id resolver.TypeID, fn resolver.Func) {
	e.registry.Register(id, fn)
}

// Registry returns the registry the engine resolves through.
func (e *Engine) Registry() *resolver.Registry {
	return e.registry
}

// Set returns a copy of the engine's argument set.
func (e *Engine) Set() spec.Set {
	return e.set.Clone()
}

// MissingTypes lists the type identifiers the argument set uses that have no
// resolver yet. Evaluating a token that needs one of them fails.
func (e *Engine) MissingTypes() []resolver.TypeID {
	var missing []resolver.TypeID

	for _, id := range e.set.TypeIDs() {
		if !e.registry.Has(id) {
			missing = append(missing, id)
		}
	}

	return missing
}

// Evaluate matches tokens against the argument set. tokens is not modified.
//
// On error the returned map holds whatever the completed passes recorded.
func (e *Engine) Evaluate(tokens []string) (*result.Map, error) {
	return e.EvaluateInto(tokens, nil)
}

// EvaluateInto is Evaluate writing into m, which is reset first. A nil m
// gets a new map.
func (e *Engine) EvaluateInto(tokens []string, m *result.Map) (*result.Map, error) {
	if m == nil {
		m = result.New()
	} else {
		m.Reset()
	}

	s := newStream(tokens)
	err := e.run(s, m)
	m.SetOutcome(s.consumed, s.rest())

	return m, err
}

func (e *Engine) run(s *stream, m *result.Map) error {
	for _, st := range e.set.Order {
		var match matchFunc

		switch st {
		case spec.StyleNamed:
			match = e.matchNamed
		case spec.StyleTagged:
			match = e.matchTagged
		case spec.StyleChained:
			match = e.matchChained
		case spec.StyleExpression:
			match = e.matchExpression
		default:
			return fmt.Errorf("unsupported pass %s", st)
		}

		if err := e.scan(st, s, m, match); err != nil {
			return err
		}
	}

	if err := e.evalIndexed(s, m); err != nil {
		return err
	}

	if e.set.Variadic && s.len() > 0 {
		e.evalVariadic(s, m)
	}

	return nil
}
