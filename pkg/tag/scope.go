package tag

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// Scope is the closed set of categories partitioning the tag namespace. A
// scope is stored on a Tag by its symbolic name, see String.
type Scope int

// Tag scopes.
const (
	ScopeUnknown Scope = iota
	ScopeDomain
	ScopeType
	ScopeCategory
	ScopeKeyword
	ScopeStatus
	ScopeColorLabel
	ScopeAccessMode
)

var scopeNames = [...]string{
	ScopeUnknown:    "UNKNOWN",
	ScopeDomain:     "DOMAIN",
	ScopeType:       "TYPE",
	ScopeCategory:   "CATEGORY",
	ScopeKeyword:    "KEYWORD",
	ScopeStatus:     "STATUS",
	ScopeColorLabel: "COLOR_LABEL",
	ScopeAccessMode: "ACCESS_MODE",
}

// Scopes lists every scope in declaration order.
func Scopes() []Scope {
	all := make([]Scope, len(scopeNames))
	for i := range scopeNames {
		all[i] = Scope(i)
	}
	return all
}

// String returns the symbolic name, e.g. "COLOR_LABEL".
func (s Scope) String() string {
	if !s.valid() {
		return fmt.Sprintf("Scope(%d)", int(s))
	}
	return scopeNames[s]
}

func (s Scope) valid() bool {
	return s >= 0 && int(s) < len(scopeNames)
}

// ParseScope returns the scope with the given symbolic name.
// Returns ErrUnknownScope if no scope has that name.
func ParseScope(name string) (Scope, error) {
	for i, n := range scopeNames {
		if n == name {
			return Scope(i), nil
		}
	}
	return ScopeUnknown, errors.Wrapf(ErrUnknownScope, "%q", name)
}

// MarshalText encodes the scope as its symbolic name.
func (s Scope) MarshalText() ([]byte, error) {
	if !s.valid() {
		return nil, errors.Wrapf(ErrUnknownScope, "%d", int(s))
	}
	return []byte(scopeNames[s]), nil
}

// UnmarshalText decodes a symbolic scope name.
func (s *Scope) UnmarshalText(text []byte) error {
	v, err := ParseScope(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}
