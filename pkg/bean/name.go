package bean

import "regexp"

// namePattern is the property name grammar: name ::= [A-Za-z_][A-Za-z_0-9-]*
var namePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z_0-9-]*$`)

// IsValidName reports whether name is a valid property name. A valid name
// starts with an ASCII letter or an underscore, followed by zero or more
// letters, digits, underscores, or hyphens.
func IsValidName(name string) bool {
	if name == "" {
		return false
	}
	return namePattern.MatchString(name)
}
