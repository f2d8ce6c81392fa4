package spec

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMalformedSpec matches any *MalformedSpecError.
var ErrMalformedSpec = errors.New("malformed argument spec")

// MalformedSpecError reports a declaration that can never match.
type MalformedSpecError struct {
	Style  Style
	Name   string
	Reason string
}

func (e *MalformedSpecError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("malformed %s configuration: %s", strings.ToLower(e.Style.String()), e.Reason)
	}

	return fmt.Sprintf("malformed %s argument %q: %s", strings.ToLower(e.Style.String()), e.Name, e.Reason)
}

func (e *MalformedSpecError) Is(target error) bool {
	return target == ErrMalformedSpec
}
