package tag

// Keywords are a multi-valued scope: a list may carry any number of
// KEYWORD tags.

var keywordScope = ScopeKeyword.String()

// NewKeywordTag returns a tag in the KEYWORD scope.
func NewKeywordTag(keyword string) (Tag, error) {
	return New(keywordScope, keyword)
}

// Keywords returns the names of the KEYWORD tags. Returns nil if tags is nil.
func Keywords(tags []Tag) []string {
	return NamesInScope(keywordScope, tags)
}

// SetKeywords replaces all KEYWORD tags with the given keywords.
// Returns ErrNoKeywords if keywords is empty.
func SetKeywords(tags []Tag, keywords []string) ([]Tag, error) {
	if len(keywords) == 0 {
		return tags, ErrNoKeywords
	}
	return UpdateManyInScope(keywordScope, tags, keywords)
}

// AddKeyword appends a KEYWORD tag.
func AddKeyword(tags []Tag, keyword string) ([]Tag, error) {
	return AddInScope(keywordScope, tags, keyword)
}

// AddKeywords appends one KEYWORD tag per keyword.
// Returns ErrNoKeywords if keywords is empty.
func AddKeywords(tags []Tag, keywords []string) ([]Tag, error) {
	if len(keywords) == 0 {
		return tags, ErrNoKeywords
	}
	return AddManyInScope(keywordScope, tags, keywords)
}

// RemoveKeyword deletes every KEYWORD tag named keyword.
func RemoveKeyword(tags []Tag, keyword string) ([]Tag, error) {
	return RemoveInScope(keywordScope, tags, keyword)
}

// RemoveKeywords deletes every KEYWORD tag whose name is in keywords.
// Returns ErrNoKeywords if keywords is empty.
func RemoveKeywords(tags []Tag, keywords []string) ([]Tag, error) {
	if len(keywords) == 0 {
		return tags, ErrNoKeywords
	}
	return RemoveManyInScope(keywordScope, tags, keywords)
}
