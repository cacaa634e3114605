package tag

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// Scope and name given to tags created by Default.
const (
	DefaultScope = "UNKNOWN"
	DefaultName  = "Untitled"
)

// Tag is a named label in a scope. Tags form a forest through ParentID; the
// scoped operations in this package treat lists as flat and never follow
// parent links.
type Tag struct {
	// ID identifies the tag; nil until the tag is assigned an identity.
	ID *string `json:"id,omitempty"`

	// ParentID references the parent tag; nil for a root tag.
	ParentID *string `json:"parent_id,omitempty"`

	// Scope is the symbolic name of the tag's scope (required, non-empty).
	Scope string `json:"scope"`

	// Name is the tag name (required, non-empty).
	Name string `json:"name"`

	// Description is optional free text.
	Description *string `json:"description,omitempty"`
}

// New returns a tag with the given scope and name.
// Returns ErrEmptyScope or ErrEmptyName if either is empty.
func New(scope, name string) (Tag, error) {
	t := Tag{Scope: scope, Name: name}
	if err := t.Validate(); err != nil {
		return Tag{}, err
	}
	return t, nil
}

// Default returns an untitled tag in the UNKNOWN scope.
func Default() Tag {
	return Tag{Scope: DefaultScope, Name: DefaultName}
}

// Validate checks that the scope and name are set.
func (t Tag) Validate() error {
	if t.Scope == "" {
		return ErrEmptyScope
	}
	if t.Name == "" {
		return errors.Wrapf(ErrEmptyName, "scope %s", t.Scope)
	}
	return nil
}

// IsRoot reports whether the tag has no parent.
func (t Tag) IsRoot() bool { return t.ParentID == nil }

// InScope reports whether the tag belongs to the given scope.
func (t Tag) InScope(s Scope) bool { return t.Scope == s.String() }

// Equal compares identity, parent, scope and name. The description is not
// part of a tag's identity.
func (t Tag) Equal(other Tag) bool {
	return eqPtr(t.ID, other.ID) &&
		eqPtr(t.ParentID, other.ParentID) &&
		t.Scope == other.Scope &&
		t.Name == other.Name
}

func (t Tag) String() string {
	return fmt.Sprintf("Tag{id=%s, parentId=%s, scope=%s, name=%s}",
		strPtr(t.ID), strPtr(t.ParentID), t.Scope, t.Name)
}

func eqPtr(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func strPtr(p *string) string {
	if p == nil {
		return "<nil>"
	}
	return *p
}

// Taggable is an entity that owns an optional list of tags.
type Taggable interface {
	Tags() []Tag
	SetTags(tags []Tag)
}

// Apply runs op against the tags of t and stores the result. On error the
// taggable is left untouched.
func Apply(t Taggable, op func([]Tag) ([]Tag, error)) error {
	tags, err := op(t.Tags())
	if err != nil {
		return err
	}
	t.SetTags(tags)
	return nil
}
