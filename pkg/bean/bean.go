package bean

// Bean is the per-instance capability for uniform access to named
// properties. Any type offering these methods is a Bean regardless of how it
// stores its values.
//
// A nil value is legal for every property; its meaning is up to the caller.
type Bean interface {
	// Has reports whether the bean has a property with the given name.
	Has(name string) bool

	// Get returns the value of the named property.
	// Returns a *PropertyNotExistError if the property is not declared.
	Get(name string) (any, error)

	// Set stores value under the named property.
	// Returns a *PropertyNotExistError if the property is not declared and
	// ErrTypeMismatch if value is incompatible with the declared type.
	Set(name string, value any) error

	// Type returns the declared type of the named property.
	// Returns a *PropertyNotExistError if the property is not declared.
	Type(name string) (TypeRef, error)
}

// Class is the per-schema capability: the descriptor catalogue shared by all
// beans of one logical shape, and the factory that creates them.
type Class interface {
	// Name returns the class name.
	Name() string

	// Properties returns every declared property. Never nil.
	Properties() []Property

	// HasProperty reports whether beans of this class have the named property.
	HasProperty(name string) bool

	// Property returns the descriptor of the named property.
	Property(name string) (Property, bool)

	// NewInstance creates a bean bound to this class.
	// Failures wrap ErrReflection.
	NewInstance() (Bean, error)
}
