package engine

import (
	"errors"
	"fmt"
)

// ErrInsufficientArguments matches any *InsufficientArgumentsError.
var ErrInsufficientArguments = errors.New("insufficient arguments")

// InsufficientArgumentsError reports that fewer tokens than declared indexed
// arguments were left for the indexed pass while all of them were required.
type InsufficientArgumentsError struct {
	Want int
	Got  int
}

func (e *InsufficientArgumentsError) Error() string {
	return fmt.Sprintf("too few indexed arguments: want %d, got %d", e.Want, e.Got)
}

func (e *InsufficientArgumentsError) Is(target error) bool {
	return target == ErrInsufficientArguments
}
