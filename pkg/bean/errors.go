package bean

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// Descriptor construction errors.
var (
	ErrInvalidName        = errors.New("invalid property name")
	ErrNullField          = errors.New("required field is missing")
	ErrMissingContentType = errors.New("contentType required for non-simple property")
)

// Bean access errors.
var (
	ErrPropertyNotExist = errors.New("property does not exist")
	ErrTypeMismatch     = errors.New("type mismatch")
	ErrReflection       = errors.New("reflection failure")
	ErrExpression       = errors.New("expression evaluation failed")
)

// PropertyNotExistError reports an access to a property that the owning
// class does not declare. It matches ErrPropertyNotExist under errors.Is.
type PropertyNotExistError struct {
	Property string
}

func (e *PropertyNotExistError) Error() string {
	return fmt.Sprintf("the property '%s' does not exist", e.Property)
}

// Is reports whether target is ErrPropertyNotExist.
func (e *PropertyNotExistError) Is(target error) bool {
	return target == ErrPropertyNotExist
}

func propertyNotExist(name string) error {
	return &PropertyNotExistError{Property: name}
}
