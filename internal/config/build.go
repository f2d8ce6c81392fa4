package config

import (
	"errors"
	"fmt"
	"maps"
	"regexp"
	"slices"
	"strings"

	"argseval/engine"
	"argseval/resolver"
	"argseval/spec"
)

// Builder turns f into an engine builder resolving through reg, or through a
// fresh default registry when reg is nil. Aliases are registered on the
// registry. Every problem found is returned, joined.
func (f *File) Builder(reg *resolver.Registry) (*engine.Builder, error) {
	if reg == nil {
		reg = resolver.NewDefaultRegistry()
	}

	var errs []error

	b := engine.NewBuilder().Registry(reg)

	if len(f.Order) > 0 {
		order := make([]spec.Style, 0, len(f.Order))

		for _, name := range f.Order {
			st, err := spec.ParseStyle(name)
			if err != nil {
				errs = append(errs, fmt.Errorf("order: %w", err))
				continue
			}

			order = append(order, st)
		}

		b.Order(order...)
	}

	if f.Mixing != nil {
		b.Mixing(*f.Mixing)
	}

	if f.Separator != "" {
		b.Separator(f.Separator)
	}

	b.RequireAllIndexed(f.RequireAllIndexed).Variadic(f.Variadic)

	reported := make(map[string]bool)

	for _, alias := range slices.Sorted(maps.Keys(f.Aliases)) {
		target := f.Aliases[alias]

		cycle := aliasCycle(f.Aliases, alias)

		switch {
		case len(cycle) > 1:
			if !reported[cycle[0]] {
				reported[cycle[0]] = true
				errs = append(errs, fmt.Errorf("alias cycle %s", strings.Join(append(cycle, cycle[0]), " -> ")))
			}

			continue
		case cycle != nil && alias != target:
			// Leads into a self reference, which registerAlias reports.
			continue
		}

		if err := registerAlias(reg, resolver.TypeID(alias), resolver.TypeID(target)); err != nil {
			errs = append(errs, err)
		}
	}

	for _, a := range f.Indexed {
		b.IndexedAs(a.Name, resolver.TypeID(a.Type))
	}

	for _, a := range f.Named {
		b.NamedAs(a.Name, resolver.TypeID(a.Type))
	}

	for _, a := range f.Tagged {
		b.TaggedAs(a.Name, resolver.TypeID(a.Type))
	}

	for _, w := range f.Words {
		b.Word(w)
	}

	for _, c := range f.Chains {
		b.Chain(c.Name, c.Literals...)
	}

	for _, x := range f.Expressions {
		elements, err := x.matchers()
		if err != nil {
			errs = append(errs, err)
			continue
		}

		b.Expression(x.Name, elements...)
	}

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}

	return b, nil
}

// Engine builds the engine f describes.
func (f *File) Engine(reg *resolver.Registry) (*engine.Engine, error) {
	b, err := f.Builder(reg)
	if err != nil {
		return nil, err
	}

	return b.Build()
}

// registerAlias makes alias resolve exactly like target.
// aliasCycle follows start through aliases and returns the members of the
// cycle it runs into, starting from the lexically smallest, or nil when the
// chain ends at a non-alias type.
func aliasCycle(aliases map[string]string, start string) []string {
	var path []string

	seen := make(map[string]int)

	for cur := start; ; {
		if i, ok := seen[cur]; ok {
			cycle := path[i:]
			first := slices.Index(cycle, slices.Min(cycle))

			return append(slices.Clone(cycle[first:]), cycle[:first]...)
		}

		seen[cur] = len(path)
		path = append(path, cur)

		next, ok := aliases[cur]
		if !ok {
			return nil
		}

		cur = next
	}
}

func registerAlias(reg *resolver.Registry, alias, target resolver.TypeID) error {
	if alias == "" || target == "" {
		return fmt.Errorf("alias %q -> %q: empty type identifier", alias, target)
	}

	if alias == target {
		return fmt.Errorf("alias %q refers to itself", alias)
	}

	reg.Register(alias, func(raw string) (any, error) {
		v, err := reg.Resolve(target, raw)

		// Report the underlying cause once; Resolve wraps it again for alias.
		var ce *resolver.ConversionError
		if errors.As(err, &ce) {
			return nil, ce.Err
		}

		return v, err
	})

	return nil
}

func (x Expression) matchers() ([]spec.Matcher, error) {
	out := make([]spec.Matcher, 0, len(x.Elements))

	for i, el := range x.Elements {
		m, err := el.matcher()
		if err != nil {
			return nil, fmt.Errorf("expression %q element %d: %w", x.Name, i, err)
		}

		out = append(out, m)
	}

	return out, nil
}

func (e Element) matcher() (spec.Matcher, error) {
	if n := e.matchers(); n != 1 {
		return spec.Matcher{}, fmt.Errorf("want exactly one matcher, got %d", n)
	}

	switch {
	case e.Literal != nil:
		return spec.Lit(*e.Literal), nil
	case e.Pattern != "":
		re, err := regexp.Compile(e.Pattern)
		if err != nil {
			return spec.Matcher{}, fmt.Errorf("failed to compile pattern: %w", err)
		}

		return spec.RegexAs(re, resolver.TypeID(e.Type)), nil
	case e.Type != "":
		return spec.OfType(resolver.TypeID(e.Type)), nil
	case len(e.OneOf) > 0:
		return spec.OneOf(e.OneOf...), nil
	case e.Prefix != "":
		prefix := e.Prefix
		return spec.Where(func(s string) bool { return strings.HasPrefix(s, prefix) }), nil
	case e.Suffix != "":
		suffix := e.Suffix
		return spec.Where(func(s string) bool { return strings.HasSuffix(s, suffix) }), nil
	default:
		prefix := e.StripPrefix

		return spec.WhereMap(
			func(s string) bool { return strings.HasPrefix(s, prefix) },
			func(s string) any { return strings.TrimPrefix(s, prefix) },
		), nil
	}
}
