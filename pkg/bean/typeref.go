package bean

import (
	"fmt"
	"reflect"
)

// Shape is the coarse structure of a declared type, the only input property
// classification depends on.
type Shape int

// Recognized type shapes.
const (
	ShapeOther Shape = iota
	ShapeMap
	ShapeList
	ShapeArray
)

var shapeNames = [...]string{
	ShapeOther: "other",
	ShapeMap:   "map",
	ShapeList:  "list",
	ShapeArray: "array",
}

func (s Shape) String() string {
	if s < 0 || int(s) >= len(shapeNames) {
		return fmt.Sprintf("Shape(%d)", int(s))
	}
	return shapeNames[s]
}

// TypeRef names the declared type of a property or of its contents.
// The zero TypeRef is the absent type.
//
// A TypeRef built by TypeOf or TypeFor carries its Go type and checks values
// against it. One built by NewTypeRef is opaque: it classifies like any other
// ref but accepts every value.
type TypeRef struct {
	name   string
	shape  Shape
	goType reflect.Type
}

// NewTypeRef returns an opaque type reference with the given name and shape.
func NewTypeRef(name string, shape Shape) TypeRef {
	return TypeRef{name: name, shape: shape}
}

// TypeOf returns the type reference for a Go type. A nil type yields the
// zero TypeRef.
func TypeOf(t reflect.Type) TypeRef {
	if t == nil {
		return TypeRef{}
	}
	return TypeRef{name: t.String(), shape: shapeOf(t), goType: t}
}

// TypeFor returns the type reference for the Go type T.
func TypeFor[T any]() TypeRef {
	return TypeOf(reflect.TypeFor[T]())
}

func shapeOf(t reflect.Type) Shape {
	switch t.Kind() {
	case reflect.Map:
		return ShapeMap
	case reflect.Slice:
		return ShapeList
	case reflect.Array:
		return ShapeArray
	default:
		return ShapeOther
	}
}

// IsZero reports whether r is the absent type.
func (r TypeRef) IsZero() bool {
	return r == TypeRef{}
}

// Name returns the type name.
func (r TypeRef) Name() string { return r.name }

// Shape returns the type shape.
func (r TypeRef) Shape() Shape { return r.shape }

// GoType returns the backing Go type, or nil for opaque references.
func (r TypeRef) GoType() reflect.Type { return r.goType }

// Accepts reports whether v may be stored under this type. A nil value is
// always accepted.
func (r TypeRef) Accepts(v any) bool {
	if v == nil || r.goType == nil {
		return true
	}
	return reflect.TypeOf(v).AssignableTo(r.goType)
}

func (r TypeRef) String() string {
	if r.IsZero() {
		return "<none>"
	}
	return r.name
}
