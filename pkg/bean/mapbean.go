package bean

import (
	"maps"

	"github.com/cockroachdb/errors"
)

var (
	_ Class = (*MapClass)(nil)
	_ Bean  = (*MapBean)(nil)
)

// MapClass is a Class whose beans keep their values in a map. The property
// set is fixed at construction.
type MapClass struct {
	name     string
	order    []string
	registry *Registry
}

// NewClass creates a class with the given properties in declaration order.
// A later property with the same name replaces the earlier one in place.
// Returns ErrNullField if name is empty or a property is the zero Property.
func NewClass(name string, props ...Property) (*MapClass, error) {
	if name == "" {
		return nil, errors.Wrap(ErrNullField, "class name")
	}
	c := &MapClass{name: name, registry: NewRegistry()}
	for i, p := range props {
		if p.IsZero() {
			return nil, errors.Wrapf(ErrNullField, "property %d of class %q", i, name)
		}
		if !c.registry.Contains(p.Name()) {
			c.order = append(c.order, p.Name())
		}
		c.registry.Add(p)
	}
	return c, nil
}

// Name returns the class name.
func (c *MapClass) Name() string { return c.name }

// Properties returns the declared properties in declaration order.
func (c *MapClass) Properties() []Property {
	props := make([]Property, 0, len(c.order))
	for _, n := range c.order {
		p, _ := c.registry.Get(n)
		props = append(props, p)
	}
	return props
}

// HasProperty reports whether the class declares the named property.
func (c *MapClass) HasProperty(name string) bool {
	return c.registry != nil && c.registry.Contains(name)
}

// Property returns the descriptor of the named property.
func (c *MapClass) Property(name string) (Property, bool) {
	if c.registry == nil {
		return Property{}, false
	}
	return c.registry.Get(name)
}

// NewInstance creates an empty MapBean of this class. Every property starts
// out nil. Fails with ErrReflection on a class not built by NewClass.
func (c *MapClass) NewInstance() (Bean, error) {
	if c == nil || c.registry == nil {
		return nil, errors.Wrap(ErrReflection, "class is not initialized")
	}
	return &MapBean{class: c, values: make(map[string]any, len(c.order))}, nil
}

// MapBean is a Bean backed by a map of values.
type MapBean struct {
	class  *MapClass
	values map[string]any
}

// Class returns the class the bean was created from.
func (b *MapBean) Class() *MapClass { return b.class }

// Has reports whether the bean's class declares the named property.
func (b *MapBean) Has(name string) bool {
	return b.class.HasProperty(name)
}

// Get returns the value of the named property, nil if never set.
func (b *MapBean) Get(name string) (any, error) {
	if !b.class.HasProperty(name) {
		return nil, propertyNotExist(name)
	}
	return b.values[name], nil
}

// Set stores value under the named property after checking it against the
// declared type.
func (b *MapBean) Set(name string, value any) error {
	p, ok := b.class.Property(name)
	if !ok {
		return propertyNotExist(name)
	}
	if !p.Type().Accepts(value) {
		return errors.Wrapf(ErrTypeMismatch, "property %q expects %s, got %T", name, p.Type(), value)
	}
	b.values[name] = value
	return nil
}

// Type returns the declared type of the named property.
func (b *MapBean) Type(name string) (TypeRef, error) {
	p, ok := b.class.Property(name)
	if !ok {
		return TypeRef{}, propertyNotExist(name)
	}
	return p.Type(), nil
}

// Values returns a copy of the values that have been set.
func (b *MapBean) Values() map[string]any {
	return maps.Clone(b.values)
}
