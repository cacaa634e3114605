package tag

import "github.com/cockroachdb/errors"

// Queries never fail: a nil list yields a nil result, and an empty scope
// matches nothing because every valid tag has a scope.

// InScope returns the tags of the given scope in list order. Returns nil if
// tags is nil, and a non-nil empty slice if nothing matches.
func InScope(scope string, tags []Tag) []Tag {
	if tags == nil {
		return nil
	}
	out := make([]Tag, 0, len(tags))
	for _, t := range tags {
		if t.Scope == scope {
			out = append(out, t)
		}
	}
	return out
}

// FirstInScope returns the first tag of the given scope.
func FirstInScope(scope string, tags []Tag) (Tag, bool) {
	for _, t := range tags {
		if t.Scope == scope {
			return t, true
		}
	}
	return Tag{}, false
}

// NamesInScope returns the names of the tags of the given scope in list
// order. Returns nil if tags is nil.
func NamesInScope(scope string, tags []Tag) []string {
	if tags == nil {
		return nil
	}
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		if t.Scope == scope {
			out = append(out, t.Name)
		}
	}
	return out
}

// FirstNameInScope returns the name of the first tag of the given scope.
func FirstNameInScope(scope string, tags []Tag) (string, bool) {
	t, ok := FirstInScope(scope, tags)
	return t.Name, ok
}

// Append validates t and appends it, allocating the list if it is nil.
func Append(tags []Tag, t Tag) ([]Tag, error) {
	if err := t.Validate(); err != nil {
		return tags, err
	}
	if tags == nil {
		tags = make([]Tag, 0, 1)
	}
	return append(tags, t), nil
}

// AddInScope appends a new tag to the list, allocating the list if it is
// nil. Existing tags of the scope are kept.
func AddInScope(scope string, tags []Tag, name string) ([]Tag, error) {
	t, err := New(scope, name)
	if err != nil {
		return tags, err
	}
	return Append(tags, t)
}

// AddManyInScope appends one new tag per name, in order. With no names the
// list is returned unchanged, so a nil list stays nil.
func AddManyInScope(scope string, tags []Tag, names []string) ([]Tag, error) {
	added, err := newTags(scope, names)
	if err != nil {
		return tags, err
	}
	if len(added) == 0 {
		return tags, nil
	}
	if tags == nil {
		tags = make([]Tag, 0, len(added))
	}
	return append(tags, added...), nil
}

// UpdateInScope replaces every tag of the scope with a single new tag. The
// list is allocated if it is nil.
func UpdateInScope(scope string, tags []Tag, name string) ([]Tag, error) {
	t, err := New(scope, name)
	if err != nil {
		return tags, err
	}
	if tags == nil {
		tags = make([]Tag, 0, 1)
	} else {
		tags = dropScope(scope, tags)
	}
	return append(tags, t), nil
}

// UpdateManyInScope replaces every tag of the scope with one new tag per
// name, in order. A nil list with no names stays nil.
func UpdateManyInScope(scope string, tags []Tag, names []string) ([]Tag, error) {
	added, err := newTags(scope, names)
	if err != nil {
		return tags, err
	}
	if tags == nil {
		if len(added) == 0 {
			return nil, nil
		}
		tags = make([]Tag, 0, len(added))
	} else {
		tags = dropScope(scope, tags)
	}
	return append(tags, added...), nil
}

// RemoveInScope deletes every tag matching both scope and name.
func RemoveInScope(scope string, tags []Tag, name string) ([]Tag, error) {
	if scope == "" {
		return tags, ErrEmptyScope
	}
	if name == "" {
		return tags, errors.Wrapf(ErrEmptyName, "scope %s", scope)
	}
	if tags == nil {
		return nil, nil
	}
	return filter(tags, func(t Tag) bool {
		return t.Scope == scope && t.Name == name
	}), nil
}

// RemoveManyInScope deletes every tag of the scope whose name is in names.
// A nil list or an empty names slice leaves the list unchanged.
func RemoveManyInScope(scope string, tags []Tag, names []string) ([]Tag, error) {
	if scope == "" {
		return tags, ErrEmptyScope
	}
	if tags == nil || len(names) == 0 {
		return tags, nil
	}
	set := make(map[string]struct{}, len(names))
	for _, n := range names {
		set[n] = struct{}{}
	}
	return filter(tags, func(t Tag) bool {
		if t.Scope != scope {
			return false
		}
		_, ok := set[t.Name]
		return ok
	}), nil
}

// RemoveAllInScope deletes every tag of the scope.
func RemoveAllInScope(scope string, tags []Tag) ([]Tag, error) {
	if scope == "" {
		return tags, ErrEmptyScope
	}
	if tags == nil {
		return nil, nil
	}
	return dropScope(scope, tags), nil
}

// newTags validates scope and names before anything is mutated.
func newTags(scope string, names []string) ([]Tag, error) {
	if scope == "" {
		return nil, ErrEmptyScope
	}
	out := make([]Tag, 0, len(names))
	for i, n := range names {
		t, err := New(scope, n)
		if err != nil {
			return nil, errors.Wrapf(err, "name %d", i)
		}
		out = append(out, t)
	}
	return out, nil
}

func dropScope(scope string, tags []Tag) []Tag {
	return filter(tags, func(t Tag) bool { return t.Scope == scope })
}

// filter removes the tags for which drop returns true, reusing the backing
// array. A non-nil input always yields a non-nil result.
func filter(tags []Tag, drop func(Tag) bool) []Tag {
	kept := tags[:0]
	for _, t := range tags {
		if !drop(t) {
			kept = append(kept, t)
		}
	}
	clear(tags[len(kept):])
	return kept
}
