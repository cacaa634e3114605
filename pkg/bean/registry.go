package bean

import (
	"sort"
	"strings"
)

// Registry indexes property descriptors by name. Adding a descriptor under a
// name that is already present replaces the previous entry. The zero value
// is an empty registry ready for use.
//
// Registry is not safe for concurrent mutation.
type Registry struct {
	props map[string]Property
}

// NewRegistry returns a registry holding the given properties. Later
// duplicates replace earlier ones.
func NewRegistry(props ...Property) *Registry {
	r := &Registry{props: make(map[string]Property, len(props))}
	for _, p := range props {
		r.Add(p)
	}
	return r
}

// IsEmpty reports whether the registry holds no properties.
func (r *Registry) IsEmpty() bool { return len(r.props) == 0 }

// Size returns the number of properties.
func (r *Registry) Size() int { return len(r.props) }

// Contains reports whether a property with the given name is registered.
func (r *Registry) Contains(name string) bool {
	_, ok := r.props[name]
	return ok
}

// Get returns the property with the given name.
func (r *Registry) Get(name string) (Property, bool) {
	p, ok := r.props[name]
	return p, ok
}

// Add indexes p under its name, replacing any existing entry.
func (r *Registry) Add(p Property) {
	if r.props == nil {
		r.props = make(map[string]Property)
	}
	r.props[p.Name()] = p
}

// Define constructs a property with NewProperty and adds it. The registry is
// unchanged if construction fails.
func (r *Registry) Define(name string, typ, contentType TypeRef) error {
	p, err := NewProperty(name, typ, contentType)
	if err != nil {
		return err
	}
	r.Add(p)
	return nil
}

// Remove deletes and returns the property with the given name.
func (r *Registry) Remove(name string) (Property, bool) {
	p, ok := r.props[name]
	if ok {
		delete(r.props, name)
	}
	return p, ok
}

// Clear removes every property.
func (r *Registry) Clear() {
	clear(r.props)
}

// Names returns the registered names in lexical order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.props))
	for n := range r.props {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Equal reports whether both registries hold the same descriptors.
func (r *Registry) Equal(other *Registry) bool {
	if r == nil || other == nil {
		return r == other
	}
	if r.Size() != other.Size() {
		return false
	}
	for n, p := range r.props {
		q, ok := other.props[n]
		if !ok || p != q {
			return false
		}
	}
	return true
}

func (r *Registry) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, n := range r.Names() {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(n)
		b.WriteByte('=')
		b.WriteString(r.props[n].String())
	}
	b.WriteByte('}')
	return b.String()
}
