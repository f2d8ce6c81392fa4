package result

import (
	"fmt"
	"reflect"
)

// TypeMismatchError reports a stored value of an unexpected type.
type TypeMismatchError struct {
	Name  string
	Value any
	Want  string
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("argument %q holds %T, not %s", e.Name, e.Value, e.Want)
}

func typeName[T any]() string {
	return reflect.TypeFor[T]().String()
}
