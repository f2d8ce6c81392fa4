package spec

import (
	"fmt"

	"argseval/resolver"
)

// Indexed consumes one token at the position given by its declaration order.
type Indexed struct {
	Name string
	Type resolver.TypeID
}

// Named consumes one token of the form Name<separator>value.
type Named struct {
	Name string
	Type resolver.TypeID
}

// Tagged consumes a token equal to Name and the token after it as the value.
type Tagged struct {
	Name string
	Type resolver.TypeID
}

// Chain consumes a run of tokens equal to Literals, in order.
type Chain struct {
	Name     string
	Literals []string
}

// Expression consumes a run of tokens, one per element, each accepted by the
// element's matcher.
type Expression struct {
	Name     string
	Elements []Matcher
}

// NewChain declares a chain, rejecting an empty literal list.
func NewChain(name string, literals ...string) (Chain, error) {
	c := Chain{Name: name, Literals: append([]string(nil), literals...)}

	return c, c.validate()
}

// NewExpression declares an expression, rejecting an empty or invalid element list.
func NewExpression(name string, elements ...Matcher) (Expression, error) {
	e := Expression{Name: name, Elements: append([]Matcher(nil), elements...)}

	return e, e.validate()
}

func (c Chain) validate() error {
	if len(c.Literals) == 0 {
		return &MalformedSpecError{Style: StyleChained, Name: c.Name, Reason: "no literals"}
	}

	return nil
}

func (e Expression) validate() error {
	if len(e.Elements) == 0 {
		return &MalformedSpecError{Style: StyleExpression, Name: e.Name, Reason: "no elements"}
	}

	for i, m := range e.Elements {
		if err := m.validate(); err != nil {
			return &MalformedSpecError{
				Style:  StyleExpression,
				Name:   e.Name,
				Reason: fmt.Sprintf("element %d: %v", i, err),
			}
		}
	}

	return nil
}
