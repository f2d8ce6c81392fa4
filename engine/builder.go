package engine

import (
	"errors"
	"log/slog"
	"slices"

	"argseval/resolver"
	"argseval/spec"
)

// Builder assembles an Engine declaration by declaration. Declarations of one
// style are tried in the order they are added. Malformed declarations are
// collected and reported by Build.
type Builder struct {
	set       spec.Set
	registry  *resolver.Registry
	resolvers []registration
	logger    *slog.Logger
	errs      []error
}

type registration struct {
	id resolver.TypeID
	fn resolver.Func
}

// NewBuilder starts from the default configuration: order expression,
// chained, tagged, named; mixing on; separator "=".
func NewBuilder() *Builder {
	return &Builder{set: spec.DefaultSet()}
}

// Order replaces the pass order. It also turns mixing off; call Mixing
// afterwards to turn it back on.
func (b *Builder) Order(styles ...spec.Style) *Builder {
	b.set.Order = slices.Clone(styles)
	b.set.Mixing = false

	return b
}

// Mixing sets whether passes skip tokens they cannot match.
func (b *Builder) Mixing(allowed bool) *Builder {
	b.set.Mixing = allowed
	return b
}

// RequireAllIndexed sets whether every indexed argument must receive a token.
func (b *Builder) RequireAllIndexed(required bool) *Builder {
	b.set.RequireAllIndexed = required
	return b
}

// Variadic sets whether leftover tokens are collected.
func (b *Builder) Variadic(enabled bool) *Builder {
	b.set.Variadic = enabled
	return b
}

// Separator sets the string splitting named tokens.
func (b *Builder) Separator(sep string) *Builder {
	b.set.Separator = sep
	return b
}

// Indexed declares a string indexed argument.
func (b *Builder) Indexed(name string) *Builder {
	return b.IndexedAs(name, resolver.String)
}

// IndexedAs declares an indexed argument resolved as id.
func (b *Builder) IndexedAs(name string, id resolver.TypeID) *Builder {
	b.set.Indexed = append(b.set.Indexed, spec.Indexed{Name: name, Type: id})
	return b
}

// Named declares a string named argument.
func (b *Builder) Named(name string) *Builder {
	return b.NamedAs(name, resolver.String)
}

// NamedAs declares a named argument resolved as id.
func (b *Builder) NamedAs(name string, id resolver.TypeID) *Builder {
	b.set.Named = append(b.set.Named, spec.Named{Name: name, Type: id})
	return b
}

// Tagged declares a string tagged argument.
func (b *Builder) Tagged(name string) *Builder {
	return b.TaggedAs(name, resolver.String)
}

// TaggedAs declares a tagged argument resolved as id.
func (b *Builder) TaggedAs(name string, id resolver.TypeID) *Builder {
	b.set.Tagged = append(b.set.Tagged, spec.Tagged{Name: name, Type: id})
	return b
}

// Chain declares a chain of literals.
func (b *Builder) Chain(name string, literals ...string) *Builder {
	c, err := spec.NewChain(name, literals...)
	if err != nil {
		b.errs = append(b.errs, err)
		return b
	}

	b.set.Chains = append(b.set.Chains, c)

	return b
}

// Word declares a single literal, stored under its own text.
func (b *Builder) Word(word string) *Builder {
	return b.Chain(word, word)
}

// Expression declares an expression.
func (b *Builder) Expression(name string, elements ...spec.Matcher) *Builder {
	x, err := spec.NewExpression(name, elements...)
	if err != nil {
		b.errs = append(b.errs, err)
		return b
	}

	b.set.Expressions = append(b.set.Expressions, x)

	return b
}

// Resolver registers fn under id in the engine's registry at Build.
func (b *Builder) Resolver(id resolver.TypeID, fn resolver.Func) *Builder {
	if fn == nil {
		b.errs = append(b.errs, errors.New("resolver for "+string(id)+" is nil"))
		return b
	}

	b.resolvers = append(b.resolvers, registration{id: id, fn: fn})

	return b
}

// Registry makes the engine use r, shared and not copied, instead of a fresh
// default registry.
func (b *Builder) Registry(r *resolver.Registry) *Builder {
	b.registry = r
	return b
}

// Logger sets the engine's debug logger.
func (b *Builder) Logger(l *slog.Logger) *Builder {
	b.logger = l
	return b
}

// Set returns a copy of the declaration built so far.
func (b *Builder) Set() spec.Set {
	return b.set.Clone()
}

// Build returns the engine, or every declaration error found.
func (b *Builder) Build() (*Engine, error) {
	if err := errors.Join(b.errs...); err != nil {
		return nil, err
	}

	reg := b.registry
	if reg == nil {
		reg = resolver.NewDefaultRegistry()
	}

	for _, r := range b.resolvers {
		reg.Register(r.id, r.fn)
	}

	return New(b.set, WithRegistry(reg), WithLogger(b.logger))
}

// MustBuild is Build that panics on error.
func (b *Builder) MustBuild() *Engine {
	e, err := b.Build()
	if err != nil {
		panic(err)
	}

	return e
}
