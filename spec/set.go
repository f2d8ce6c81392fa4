// Package spec declares the argument styles an engine matches and the
// configuration that drives its passes.
package spec

import (
	"errors"
	"fmt"
	"slices"

	"argseval/resolver"
)

// DefaultSeparator splits named tokens into key and value.
const DefaultSeparator = "="

// Set is the complete, ordered declaration an engine is built from. Within
// each style, declarations are tried in slice order.
type Set struct {
	// Order lists the passes run before the indexed and variadic passes.
	Order []Style
	// RequireAllIndexed fails evaluation when fewer tokens than declared
	// indexed arguments remain.
	RequireAllIndexed bool
	// Variadic stores leftover tokens under the reserved variadic key.
	Variadic bool
	// Mixing lets a pass skip tokens it cannot match. When false a pass
	// stops at the first such token.
	Mixing bool
	// Separator splits named tokens.
	Separator string

	Indexed     []Indexed
	Named       []Named
	Tagged      []Tagged
	Chains      []Chain
	Expressions []Expression
}

// DefaultSet returns an empty declaration with the default configuration.
func DefaultSet() Set {
	return Set{
		Order:     DefaultOrder(),
		Mixing:    true,
		Separator: DefaultSeparator,
	}
}

// Validate reports every malformed declaration in s.
func (s Set) Validate() error {
	var errs []error

	for _, st := range s.Order {
		if !st.Orderable() {
			errs = append(errs, &MalformedSpecError{
				Style:  st,
				Reason: fmt.Sprintf("%s cannot appear in the evaluation order", st),
			})
		}
	}

	if s.Separator == "" && len(s.Named) > 0 {
		errs = append(errs, &MalformedSpecError{Style: StyleNamed, Reason: "empty separator"})
	}

	for _, a := range s.Indexed {
		errs = append(errs, checkTyped(StyleIndexed, a.Name, a.Type))
	}

	for _, a := range s.Named {
		errs = append(errs, checkTyped(StyleNamed, a.Name, a.Type))
	}

	for _, a := range s.Tagged {
		errs = append(errs, checkTyped(StyleTagged, a.Name, a.Type))
	}

	for _, c := range s.Chains {
		errs = append(errs, c.validate())
	}

	for _, e := range s.Expressions {
		errs = append(errs, e.validate())
	}

	return errors.Join(errs...)
}

// TypeIDs returns every type identifier the set may resolve, in first-use order.
func (s Set) TypeIDs() []resolver.TypeID {
	var ids []resolver.TypeID

	add := func(id resolver.TypeID) {
		if id != "" && !slices.Contains(ids, id) {
			ids = append(ids, id)
		}
	}

	for _, a := range s.Indexed {
		add(a.Type)
	}

	for _, a := range s.Named {
		add(a.Type)
	}

	for _, a := range s.Tagged {
		add(a.Type)
	}

	for _, e := range s.Expressions {
		for _, m := range e.Elements {
			if m.Kind == MatchType || m.Kind == MatchPattern {
				add(m.Type)
			}
		}
	}

	return ids
}

// Clone returns a copy of s that shares no slices with it. Pattern matchers
// in the copy carry their anchored regexp.
func (s Set) Clone() Set {
	c := s
	c.Order = slices.Clone(s.Order)
	c.Indexed = slices.Clone(s.Indexed)
	c.Named = slices.Clone(s.Named)
	c.Tagged = slices.Clone(s.Tagged)

	c.Chains = slices.Clone(s.Chains)
	for i, ch := range c.Chains {
		c.Chains[i].Literals = slices.Clone(ch.Literals)
	}

	c.Expressions = slices.Clone(s.Expressions)
	for i, e := range c.Expressions {
		c.Expressions[i].Elements = slices.Clone(e.Elements)
		for j := range c.Expressions[i].Elements {
			c.Expressions[i].Elements[j].compile()
		}
	}

	return c
}

func checkTyped(st Style, name string, id resolver.TypeID) error {
	if id == "" {
		return &MalformedSpecError{Style: st, Name: name, Reason: "no type"}
	}

	return nil
}
