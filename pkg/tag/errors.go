package tag

import "github.com/cockroachdb/errors"

// Argument errors returned by tag construction and scoped operations.
var (
	ErrEmptyScope   = errors.New("tag scope must not be empty")
	ErrEmptyName    = errors.New("tag name must not be empty")
	ErrNoKeywords   = errors.New("keywords must not be empty")
	ErrUnknownScope = errors.New("unknown tag scope")
	ErrUnknownLabel = errors.New("unknown color label")
)
