package resolver

import (
	"errors"
	"fmt"
)

var (
	// ErrUnresolvableType matches any *UnresolvableTypeError.
	ErrUnresolvableType = errors.New("unresolvable type")
	// ErrConversion matches any *ConversionError.
	ErrConversion = errors.New("conversion failed")
)

// UnresolvableTypeError reports a type identifier with no registered resolver.
type UnresolvableTypeError struct {
	Type TypeID
}

func (e *UnresolvableTypeError) Error() string {
	return fmt.Sprintf("no resolver registered for type %q", e.Type)
}

func (e *UnresolvableTypeError) Is(target error) bool {
	return target == ErrUnresolvableType
}

// ConversionError reports a resolver that rejected its raw input.
type ConversionError struct {
	Type TypeID
	Raw  string
	Err  error
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("cannot convert %q to %s: %v", e.Raw, e.Type, e.Err)
}

func (e *ConversionError) Unwrap() error {
	return e.Err
}

func (e *ConversionError) Is(target error) bool {
	return target == ErrConversion
}
