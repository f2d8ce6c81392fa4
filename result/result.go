// Package result holds the name to value mapping produced by an evaluation.
package result

import (
	"maps"
	"slices"
)

// VariadicKey is the reserved key under which leftover tokens are stored.
const VariadicKey = "argseval.variadic"

// Map maps argument names to resolved values. A Map is not safe for
// concurrent mutation.
type Map struct {
	values    map[string]any
	remaining []string
	consumed  int
}

// New returns an empty Map.
func New() *Map {
	return &Map{values: make(map[string]any)}
}

// Reset empties m for reuse.
func (m *Map) Reset() {
	clear(m.values)
	m.remaining = nil
	m.consumed = 0
}

// Set stores v under name, replacing any earlier value.
func (m *Map) Set(name string, v any) {
	if m.values == nil {
		m.values = make(map[string]any)
	}

	m.values[name] = v
}

// Get returns the value stored under name.
func (m *Map) Get(name string) (any, bool) {
	v, ok := m.values[name]
	return v, ok
}

// Value returns the value stored under name, or nil.
func (m *Map) Value(name string) any {
	return m.values[name]
}

// GetOr returns the value stored under name, or def when it is absent or nil.
func (m *Map) GetOr(name string, def any) any {
	if v := m.values[name]; v != nil {
		return v
	}

	return def
}

// GetOrElse is GetOr with a lazily computed default.
func (m *Map) GetOrElse(name string, def func() any) any {
	if v := m.values[name]; v != nil {
		return v
	}

	return def()
}

// Has reports whether name has a value.
func (m *Map) Has(name string) bool {
	_, ok := m.values[name]
	return ok
}

// IfPresent calls fn with the value stored under name, if any.
func (m *Map) IfPresent(name string, fn func(any)) {
	if v, ok := m.values[name]; ok {
		fn(v)
	}
}

// IfPresentElse calls fn with the value stored under name, or orElse when it
// is absent.
func (m *Map) IfPresentElse(name string, fn func(any), orElse func()) {
	if v, ok := m.values[name]; ok {
		fn(v)
		return
	}

	orElse()
}

// Keys returns the stored names in lexical order.
func (m *Map) Keys() []string {
	return slices.Sorted(maps.Keys(m.values))
}

// Len returns the number of stored names.
func (m *Map) Len() int {
	return len(m.values)
}

// All returns a copy of the stored values.
func (m *Map) All() map[string]any {
	return maps.Clone(m.values)
}

// Variadic returns the leftover tokens captured by the variadic pass.
func (m *Map) Variadic() []string {
	v, _ := m.values[VariadicKey].([]string)
	return v
}

// Remaining returns the tokens no pass consumed.
func (m *Map) Remaining() []string {
	return m.remaining
}

// Consumed returns how many input tokens the passes consumed.
func (m *Map) Consumed() int {
	return m.consumed
}

// SetOutcome records what an evaluation left behind.
func (m *Map) SetOutcome(consumed int, remaining []string) {
	m.consumed = consumed
	m.remaining = remaining
}

// As returns the value stored under name as a T. It reports false when the
// name is absent or holds another type.
func As[T any](m *Map, name string) (T, bool) {
	v, ok := m.values[name].(T)
	return v, ok
}

// AsOr returns the value stored under name as a T, or def.
func AsOr[T any](m *Map, name string, def T) T {
	if v, ok := As[T](m, name); ok {
		return v
	}

	return def
}

// Lookup returns the value stored under name as a T. Unlike As it
// distinguishes an absent name (ok is false, err is nil) from a value of the
// wrong type (err is non-nil).
func Lookup[T any](m *Map, name string) (v T, ok bool, err error) {
	raw, present := m.values[name]
	if !present {
		return v, false, nil
	}

	v, ok = raw.(T)
	if !ok {
		return v, false, &TypeMismatchError{Name: name, Value: raw, Want: typeName[T]()}
	}

	return v, true, nil
}
