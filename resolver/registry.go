// Package resolver maps type identifiers to functions that turn raw tokens
// into typed values.
package resolver

import (
	"maps"
	"slices"
	"sync"
)

// TypeID names a resolvable type. Identifiers are compared exactly; there is
// no notion of subtypes.
type TypeID string

// Func converts a raw token into a value of the type it is registered for.
type Func func(raw string) (any, error)

// Registry holds resolvers keyed by TypeID. It is safe for concurrent use.
type Registry struct {
	mu    sync.RWMutex
	funcs map[TypeID]Func
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		funcs: make(map[TypeID]Func),
	}
}

// NewDefaultRegistry creates a registry seeded with the Builtin resolvers.
func NewDefaultRegistry() *Registry {
	return &Registry{
		funcs: Builtin(),
	}
}

// Register adds fn under id, replacing any resolver already registered for it.
func (r *Registry) Register(id TypeID, fn Func) {
	if fn == nil {
		panic("resolver function cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.funcs == nil {
		r.funcs = make(map[TypeID]Func)
	}
	r.funcs[id] = fn
}

// Has reports whether a resolver is registered for id.
func (r *Registry) Has(id TypeID) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.funcs[id]

	return ok
}

// Resolve converts raw using the resolver registered for id.
func (r *Registry) Resolve(id TypeID, raw string) (any, error) {
	r.mu.RLock()
	fn, ok := r.funcs[id]
	r.mu.RUnlock()

	if !ok {
		return nil, &UnresolvableTypeError{Type: id}
	}

	v, err := fn(raw)
	if err != nil {
		return nil, &ConversionError{Type: id, Raw: raw, Err: err}
	}

	return v, nil
}

// Clone returns an independent copy of the registry.
func (r *Registry) Clone() *Registry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return &Registry{
		funcs: maps.Clone(r.funcs),
	}
}

// TypeIDs returns the registered identifiers in lexical order.
func (r *Registry) TypeIDs() []TypeID {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return slices.Sorted(maps.Keys(r.funcs))
}
