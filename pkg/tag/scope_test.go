package tag

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScopeNames(t *testing.T) {
	want := []string{
		"UNKNOWN", "DOMAIN", "TYPE", "CATEGORY",
		"KEYWORD", "STATUS", "COLOR_LABEL", "ACCESS_MODE",
	}
	scopes := Scopes()
	require.Len(t, scopes, len(want))
	for i, s := range scopes {
		assert.Equal(t, want[i], s.String())

		parsed, err := ParseScope(want[i])
		require.NoError(t, err)
		assert.Equal(t, s, parsed)
	}
	assert.Equal(t, DefaultScope, ScopeUnknown.String())
}

func TestParseScopeUnknown(t *testing.T) {
	_, err := ParseScope("keyword")
	assert.ErrorIs(t, err, ErrUnknownScope)
	assert.Equal(t, "Scope(42)", Scope(42).String())
}

func TestScopeText(t *testing.T) {
	data, err := json.Marshal(map[string]Scope{"scope": ScopeColorLabel})
	require.NoError(t, err)
	assert.JSONEq(t, `{"scope":"COLOR_LABEL"}`, string(data))

	var decoded map[string]Scope
	require.NoError(t, json.Unmarshal([]byte(`{"scope":"ACCESS_MODE"}`), &decoded))
	assert.Equal(t, ScopeAccessMode, decoded["scope"])

	err = json.Unmarshal([]byte(`{"scope":"NOPE"}`), &decoded)
	assert.ErrorIs(t, err, ErrUnknownScope)

	_, err = Scope(-1).MarshalText()
	assert.ErrorIs(t, err, ErrUnknownScope)
}
