package bean

import (
	"reflect"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
)

// Property paths address values nested inside beans:
//
//	path    ::= segment ('.' segment)*
//	segment ::= name ('[' index ']' | '(' key ')')*
//
// A name reads a property of the current bean, [index] reads an element of
// a slice or array, and (key) reads a value from a string-keyed map.

type stepKind int

const (
	stepProperty stepKind = iota
	stepIndex
	stepKey
)

type step struct {
	kind  stepKind
	name  string
	index int
}

func (s step) String() string {
	switch s.kind {
	case stepIndex:
		return "[" + strconv.Itoa(s.index) + "]"
	case stepKey:
		return "(" + s.name + ")"
	default:
		return s.name
	}
}

// parsePath splits a property path into steps.
func parsePath(expr string) ([]step, error) {
	if expr == "" {
		return nil, errors.Wrap(ErrExpression, "empty path")
	}
	var steps []step
	for i, seg := range strings.Split(expr, ".") {
		end := strings.IndexAny(seg, "[(")
		if end < 0 {
			end = len(seg)
		}
		name := seg[:end]
		if !IsValidName(name) {
			return nil, errors.Wrapf(ErrExpression, "segment %d of %q: invalid property name %q", i, expr, name)
		}
		steps = append(steps, step{kind: stepProperty, name: name})

		rest := seg[end:]
		for rest != "" {
			var closer byte
			switch rest[0] {
			case '[':
				closer = ']'
			case '(':
				closer = ')'
			default:
				return nil, errors.Wrapf(ErrExpression, "segment %d of %q: unexpected %q", i, expr, rest)
			}
			j := strings.IndexByte(rest, closer)
			if j < 0 {
				return nil, errors.Wrapf(ErrExpression, "segment %d of %q: missing %q", i, expr, string(closer))
			}
			inner := rest[1:j]
			if closer == ']' {
				idx, err := strconv.Atoi(inner)
				if err != nil || idx < 0 {
					return nil, errors.Wrapf(ErrExpression, "segment %d of %q: bad index %q", i, expr, inner)
				}
				steps = append(steps, step{kind: stepIndex, index: idx})
			} else {
				steps = append(steps, step{kind: stepKey, name: inner})
			}
			rest = rest[j+1:]
		}
	}
	return steps, nil
}

// Eval evaluates a property path against b and returns the addressed value.
// Undeclared properties surface as *PropertyNotExistError; any other failure
// wraps ErrExpression. A missing map key yields nil.
func Eval(b Bean, expr string) (any, error) {
	steps, err := parsePath(expr)
	if err != nil {
		return nil, err
	}
	var cur any = b
	for _, s := range steps {
		cur, err = apply(cur, s, expr)
		if err != nil {
			return nil, err
		}
	}
	return cur, nil
}

// Assign stores v at the location addressed by a property path. The last
// step may name a bean property, a slice element, or a map entry.
func Assign(b Bean, expr string, v any) error {
	steps, err := parsePath(expr)
	if err != nil {
		return err
	}
	var cur any = b
	for _, s := range steps[:len(steps)-1] {
		cur, err = apply(cur, s, expr)
		if err != nil {
			return err
		}
	}

	last := steps[len(steps)-1]
	switch last.kind {
	case stepProperty:
		target, ok := cur.(Bean)
		if !ok {
			return errors.Wrapf(ErrExpression, "%q: %T is not a bean", expr, cur)
		}
		return target.Set(last.name, v)
	case stepIndex:
		rv := reflect.ValueOf(cur)
		if rv.Kind() != reflect.Slice {
			return errors.Wrapf(ErrExpression, "%q: cannot assign element of %T", expr, cur)
		}
		if last.index >= rv.Len() {
			return errors.Wrapf(ErrExpression, "%q: index %d out of range [0,%d)", expr, last.index, rv.Len())
		}
		return setValue(rv.Index(last.index), v, expr)
	default:
		rv := reflect.ValueOf(cur)
		if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String || rv.IsNil() {
			return errors.Wrapf(ErrExpression, "%q: cannot assign key of %T", expr, cur)
		}
		val, err := convertValue(v, rv.Type().Elem(), expr)
		if err != nil {
			return err
		}
		rv.SetMapIndex(reflect.ValueOf(last.name).Convert(rv.Type().Key()), val)
		return nil
	}
}

func apply(cur any, s step, expr string) (any, error) {
	if cur == nil {
		return nil, errors.Wrapf(ErrExpression, "%q: nil value before %s", expr, s)
	}
	switch s.kind {
	case stepProperty:
		b, ok := cur.(Bean)
		if !ok {
			return nil, errors.Wrapf(ErrExpression, "%q: %T is not a bean", expr, cur)
		}
		return b.Get(s.name)
	case stepIndex:
		rv := reflect.ValueOf(cur)
		if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
			return nil, errors.Wrapf(ErrExpression, "%q: %T is not indexed", expr, cur)
		}
		if s.index >= rv.Len() {
			return nil, errors.Wrapf(ErrExpression, "%q: index %d out of range [0,%d)", expr, s.index, rv.Len())
		}
		return rv.Index(s.index).Interface(), nil
	default:
		rv := reflect.ValueOf(cur)
		if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
			return nil, errors.Wrapf(ErrExpression, "%q: %T is not mapped", expr, cur)
		}
		val := rv.MapIndex(reflect.ValueOf(s.name).Convert(rv.Type().Key()))
		if !val.IsValid() {
			return nil, nil
		}
		return val.Interface(), nil
	}
}

func convertValue(v any, t reflect.Type, expr string) (reflect.Value, error) {
	if v == nil {
		return reflect.Zero(t), nil
	}
	rv := reflect.ValueOf(v)
	if !rv.Type().AssignableTo(t) {
		return reflect.Value{}, errors.Wrapf(ErrTypeMismatch, "%q expects %s, got %T", expr, t, v)
	}
	return rv, nil
}

func setValue(dst reflect.Value, v any, expr string) error {
	val, err := convertValue(v, dst.Type(), expr)
	if err != nil {
		return err
	}
	dst.Set(val)
	return nil
}
