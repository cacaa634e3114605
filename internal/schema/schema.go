// Package schema builds bean classes from YAML definitions.
//
// A definition names the class and lists its properties in order:
//
//	name: Article
//	properties:
//	  - name: title
//	    type: string
//	  - name: keywords
//	    type: "[]string"
//	  - name: author
//	    type: Person
//	    shape: other
//
// Types are Go-style expressions over the builtin scalars. A type that is
// not a builtin expression is accepted as an opaque reference only when the
// definition states its shape; such properties accept any value and need an
// explicit content type when the shape is list, array, or map.
package schema

import (
	"os"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/databeans/pkg/bean"
)

// Schema loading errors.
var (
	ErrUnknownType   = errors.New("unknown type")
	ErrInvalidSchema = errors.New("invalid schema")
)

// Definition is the YAML form of a class.
type Definition struct {
	Name       string               `yaml:"name"`
	Properties []PropertyDefinition `yaml:"properties"`
}

// PropertyDefinition is the YAML form of one property.
type PropertyDefinition struct {
	Name    string `yaml:"name"`
	Type    string `yaml:"type"`
	Shape   string `yaml:"shape,omitempty"`
	Content string `yaml:"content,omitempty"`
}

// Parse decodes a YAML definition and builds its class.
func Parse(data []byte) (*bean.MapClass, error) {
	var def Definition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, errors.Wrapf(ErrInvalidSchema, "decode: %v", err)
	}
	return Build(def)
}

// LoadFile reads and builds the class defined in the YAML file at path.
func LoadFile(path string) (*bean.MapClass, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading schema %s", path)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "schema %s", path)
	}
	return c, nil
}

// Build turns a definition into a class.
func Build(def Definition) (*bean.MapClass, error) {
	if def.Name == "" {
		return nil, errors.Wrap(ErrInvalidSchema, "class name is required")
	}
	props := make([]bean.Property, 0, len(def.Properties))
	for i, pd := range def.Properties {
		p, err := buildProperty(pd)
		if err != nil {
			return nil, errors.Wrapf(err, "class %s property %d", def.Name, i)
		}
		props = append(props, p)
	}
	return bean.NewClass(def.Name, props...)
}

func buildProperty(pd PropertyDefinition) (bean.Property, error) {
	if pd.Type == "" {
		return bean.Property{}, errors.Wrapf(ErrInvalidSchema, "property %q has no type", pd.Name)
	}

	var typ, content bean.TypeRef
	if pd.Shape != "" {
		shape, err := parseShape(pd.Shape)
		if err != nil {
			return bean.Property{}, err
		}
		typ = bean.NewTypeRef(pd.Type, shape)
	} else {
		t, err := ParseType(pd.Type)
		if err != nil {
			return bean.Property{}, err
		}
		typ = bean.TypeOf(t)
		content = contentOf(t)
	}

	if pd.Content != "" {
		t, err := ParseType(pd.Content)
		if err != nil {
			// Content may name another class.
			content = bean.NewTypeRef(pd.Content, bean.ShapeOther)
		} else {
			content = bean.TypeOf(t)
		}
	}
	return bean.NewProperty(pd.Name, typ, content)
}

// Describe returns the definition of a class, rendering types by name.
func Describe(c bean.Class) Definition {
	def := Definition{Name: c.Name()}
	for _, p := range c.Properties() {
		pd := PropertyDefinition{Name: p.Name(), Type: p.Type().Name()}
		if p.Type().GoType() == nil {
			pd.Shape = p.Type().Shape().String()
		}
		if ct, ok := p.ContentType(); ok {
			pd.Content = ct.Name()
		}
		def.Properties = append(def.Properties, pd)
	}
	return def
}
