package bean

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// Kind classifies a property by how many values it holds.
type Kind int

// Property kinds.
const (
	Simple  Kind = iota // a single value
	Indexed             // an ordered collection (list or array)
	Mapped              // a string-keyed collection
)

var kindNames = [...]string{
	Simple:  "SIMPLE",
	Indexed: "INDEXED",
	Mapped:  "MAPPED",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// MarshalText encodes the kind as its symbolic name.
func (k Kind) MarshalText() ([]byte, error) {
	if k < 0 || int(k) >= len(kindNames) {
		return nil, errors.Newf("unknown property kind %d", int(k))
	}
	return []byte(kindNames[k]), nil
}

// UnmarshalText decodes a symbolic kind name.
func (k *Kind) UnmarshalText(text []byte) error {
	for i, n := range kindNames {
		if n == string(text) {
			*k = Kind(i)
			return nil
		}
	}
	return errors.Newf("unknown property kind %q", text)
}

// Classify maps a type shape to a property kind. Maps are mapped, lists and
// arrays are indexed, everything else is simple.
func Classify(shape Shape) Kind {
	switch shape {
	case ShapeMap:
		return Mapped
	case ShapeList, ShapeArray:
		return Indexed
	default:
		return Simple
	}
}

// Property describes one named, typed attribute of a class. Properties are
// immutable; two properties are equal under == when all fields match.
type Property struct {
	name        string
	kind        Kind
	typ         TypeRef
	contentType TypeRef
}

// NewProperty creates a property descriptor. The kind is derived from the
// shape of typ. contentType is the element type for indexed properties and
// the value type for mapped ones; pass the zero TypeRef for simple
// properties.
//
// Returns ErrNullField if name or typ is missing, ErrInvalidName if name
// does not satisfy IsValidName, and ErrMissingContentType if the property is
// not simple and contentType is missing.
func NewProperty(name string, typ, contentType TypeRef) (Property, error) {
	if name == "" {
		return Property{}, errors.Wrap(ErrNullField, "name")
	}
	if typ.IsZero() {
		return Property{}, errors.Wrapf(ErrNullField, "type of property %q", name)
	}
	if !IsValidName(name) {
		return Property{}, errors.Wrapf(ErrInvalidName, "%q", name)
	}
	kind := Classify(typ.Shape())
	if kind != Simple && contentType.IsZero() {
		return Property{}, errors.Wrapf(ErrMissingContentType, "property %q of kind %s", name, kind)
	}
	return Property{name: name, kind: kind, typ: typ, contentType: contentType}, nil
}

// MustProperty is like NewProperty but panics on error. It is intended for
// package-level class declarations.
func MustProperty(name string, typ, contentType TypeRef) Property {
	p, err := NewProperty(name, typ, contentType)
	if err != nil {
		panic(err)
	}
	return p
}

// Name returns the property name.
func (p Property) Name() string { return p.name }

// Kind returns the property kind.
func (p Property) Kind() Kind { return p.kind }

// Type returns the declared type of the property value.
func (p Property) Type() TypeRef { return p.typ }

// ContentType returns the element or value type. The second result is false
// when no content type was supplied.
func (p Property) ContentType() (TypeRef, bool) {
	return p.contentType, !p.contentType.IsZero()
}

// IsSimple reports whether the property holds a single value.
func (p Property) IsSimple() bool { return p.kind == Simple }

// IsIndexed reports whether the property holds an ordered collection.
func (p Property) IsIndexed() bool { return p.kind == Indexed }

// IsMapped reports whether the property holds a string-keyed collection.
func (p Property) IsMapped() bool { return p.kind == Mapped }

// IsZero reports whether p is the zero Property, which no constructor
// returns on success.
func (p Property) IsZero() bool { return p == Property{} }

func (p Property) String() string {
	return fmt.Sprintf("Property{name=%s, kind=%s, type=%s, contentType=%s}",
		p.name, p.kind, p.typ, p.contentType)
}
