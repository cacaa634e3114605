// Package tag defines hierarchical, scoped tags and the operations that
// query and mutate a tag list one scope at a time.
//
// A tag list is a []Tag owned by a taggable entity. A nil list is absent and
// an empty non-nil list is present but empty; the two states are kept apart
// by every operation. Mutating operations return the resulting list, which
// may share or replace the backing array of the argument, so callers always
// use the returned value.
package tag
