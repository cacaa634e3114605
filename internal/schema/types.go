package schema

import (
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/mesh-intelligence/databeans/pkg/bean"
)

// builtinTypes maps the scalar names accepted in type expressions.
var builtinTypes = map[string]reflect.Type{
	"string":   reflect.TypeFor[string](),
	"bool":     reflect.TypeFor[bool](),
	"int":      reflect.TypeFor[int](),
	"int8":     reflect.TypeFor[int8](),
	"int16":    reflect.TypeFor[int16](),
	"int32":    reflect.TypeFor[int32](),
	"int64":    reflect.TypeFor[int64](),
	"uint":     reflect.TypeFor[uint](),
	"uint8":    reflect.TypeFor[uint8](),
	"uint16":   reflect.TypeFor[uint16](),
	"uint32":   reflect.TypeFor[uint32](),
	"uint64":   reflect.TypeFor[uint64](),
	"byte":     reflect.TypeFor[byte](),
	"rune":     reflect.TypeFor[rune](),
	"float32":  reflect.TypeFor[float32](),
	"float64":  reflect.TypeFor[float64](),
	"any":      reflect.TypeFor[any](),
	"time":     reflect.TypeFor[time.Time](),
	"duration": reflect.TypeFor[time.Duration](),
}

// ParseType resolves a type expression to a Go type. Accepted forms are the
// builtin scalar names, "[]T", "[N]T", and "map[K]V" with a scalar key.
// Returns ErrUnknownType for anything else.
func ParseType(expr string) (reflect.Type, error) {
	expr = strings.TrimSpace(expr)
	switch {
	case strings.HasPrefix(expr, "[]"):
		elem, err := ParseType(expr[2:])
		if err != nil {
			return nil, err
		}
		return reflect.SliceOf(elem), nil

	case strings.HasPrefix(expr, "["):
		end := strings.IndexByte(expr, ']')
		if end < 0 {
			return nil, errors.Wrapf(ErrUnknownType, "%q: missing ]", expr)
		}
		n, err := strconv.Atoi(expr[1:end])
		if err != nil || n < 0 {
			return nil, errors.Wrapf(ErrUnknownType, "%q: bad array length", expr)
		}
		elem, err := ParseType(expr[end+1:])
		if err != nil {
			return nil, err
		}
		return reflect.ArrayOf(n, elem), nil

	case strings.HasPrefix(expr, "map["):
		end := strings.IndexByte(expr, ']')
		if end < 0 {
			return nil, errors.Wrapf(ErrUnknownType, "%q: missing ]", expr)
		}
		key, ok := builtinTypes[expr[4:end]]
		if !ok || !key.Comparable() || key.Kind() == reflect.Interface {
			return nil, errors.Wrapf(ErrUnknownType, "%q: unsupported map key", expr)
		}
		val, err := ParseType(expr[end+1:])
		if err != nil {
			return nil, err
		}
		return reflect.MapOf(key, val), nil
	}

	t, ok := builtinTypes[expr]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownType, "%q", expr)
	}
	return t, nil
}

// contentOf returns the element type of a slice or array and the value type
// of a map.
func contentOf(t reflect.Type) bean.TypeRef {
	switch t.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map:
		return bean.TypeOf(t.Elem())
	default:
		return bean.TypeRef{}
	}
}

var shapeNames = map[string]bean.Shape{
	"":      bean.ShapeOther,
	"other": bean.ShapeOther,
	"map":   bean.ShapeMap,
	"list":  bean.ShapeList,
	"array": bean.ShapeArray,
}

func parseShape(s string) (bean.Shape, error) {
	shape, ok := shapeNames[strings.ToLower(s)]
	if !ok {
		return bean.ShapeOther, errors.Wrapf(ErrInvalidSchema, "unknown shape %q", s)
	}
	return shape, nil
}
