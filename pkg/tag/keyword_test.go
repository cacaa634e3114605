package tag

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddKeywordScenario(t *testing.T) {
	tags := []Tag{
		mustTag(t, "DOMAIN", "sports"),
		mustTag(t, "KEYWORD", "soccer"),
	}

	tags, err := AddKeyword(tags, "world-cup")
	require.NoError(t, err)

	assert.Equal(t, []Tag{
		mustTag(t, "DOMAIN", "sports"),
		mustTag(t, "KEYWORD", "soccer"),
		mustTag(t, "KEYWORD", "world-cup"),
	}, tags)
	assert.Equal(t, []string{"soccer", "world-cup"}, Keywords(tags))
}

func TestSetKeywords(t *testing.T) {
	tags := []Tag{mustTag(t, "KEYWORD", "old"), mustTag(t, "STATUS", "open")}

	tags, err := SetKeywords(tags, []string{"new", "newer"})
	require.NoError(t, err)
	assert.Equal(t, []string{"new", "newer"}, Keywords(tags))
	assert.Equal(t, []string{"open"}, NamesInScope("STATUS", tags))

	_, err = SetKeywords(tags, nil)
	assert.ErrorIs(t, err, ErrNoKeywords)
}

func TestAddAndRemoveKeywords(t *testing.T) {
	tags, err := AddKeywords(nil, []string{"a", "b", "c"})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, Keywords(tags))

	tags, err = RemoveKeyword(tags, "b")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "c"}, Keywords(tags))

	tags, err = RemoveKeywords(tags, []string{"a", "c"})
	require.NoError(t, err)
	assert.Empty(t, Keywords(tags))
	assert.NotNil(t, tags)

	_, err = AddKeywords(tags, nil)
	assert.ErrorIs(t, err, ErrNoKeywords)
	_, err = RemoveKeywords(tags, []string{})
	assert.ErrorIs(t, err, ErrNoKeywords)
	_, err = AddKeyword(tags, "")
	assert.ErrorIs(t, err, ErrEmptyName)
}

func TestKeywordsNil(t *testing.T) {
	assert.Nil(t, Keywords(nil))

	kt, err := NewKeywordTag("go")
	require.NoError(t, err)
	assert.True(t, kt.InScope(ScopeKeyword))
}
