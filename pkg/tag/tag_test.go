package tag

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		scope   string
		tagName string
		wantErr error
	}{
		{"valid", "KEYWORD", "go", nil},
		{"empty scope", "", "go", ErrEmptyScope},
		{"empty name", "KEYWORD", "", ErrEmptyName},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tg, err := New(tt.scope, tt.tagName)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.scope, tg.Scope)
			assert.Equal(t, tt.tagName, tg.Name)
			assert.Nil(t, tg.ID)
			assert.True(t, tg.IsRoot())
		})
	}
}

func TestDefault(t *testing.T) {
	tg := Default()
	assert.Equal(t, ScopeUnknown.String(), tg.Scope)
	assert.Equal(t, "Untitled", tg.Name)
	assert.NoError(t, tg.Validate())
	assert.True(t, tg.InScope(ScopeUnknown))
}

func TestTagEqual(t *testing.T) {
	id, other, parent := "1", "2", "0"
	desc := "ignored"

	a := Tag{ID: &id, ParentID: &parent, Scope: "DOMAIN", Name: "sports"}
	b := Tag{ID: &id, ParentID: &parent, Scope: "DOMAIN", Name: "sports", Description: &desc}
	c := Tag{ID: &other, ParentID: &parent, Scope: "DOMAIN", Name: "sports"}
	d := Tag{ParentID: &parent, Scope: "DOMAIN", Name: "sports"}

	assert.True(t, a.Equal(b), "description is not part of identity")
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(d))
	assert.False(t, a.IsRoot())
	assert.Equal(t, "Tag{id=1, parentId=0, scope=DOMAIN, name=sports}", a.String())
	assert.Equal(t, "Tag{id=<nil>, parentId=0, scope=DOMAIN, name=sports}", d.String())
}

func TestTagJSON(t *testing.T) {
	id := "018f"
	tg := Tag{ID: &id, Scope: "KEYWORD", Name: "go"}

	data, err := json.Marshal(tg)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"018f","scope":"KEYWORD","name":"go"}`, string(data))
}

type entity struct {
	tags []Tag
}

func (e *entity) Tags() []Tag        { return e.tags }
func (e *entity) SetTags(tags []Tag) { e.tags = tags }

func TestApply(t *testing.T) {
	e := &entity{}

	err := Apply(e, func(tags []Tag) ([]Tag, error) {
		return AddKeyword(tags, "go")
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"go"}, Keywords(e.Tags()))

	err = Apply(e, func(tags []Tag) ([]Tag, error) {
		return AddKeyword(tags, "")
	})
	assert.ErrorIs(t, err, ErrEmptyName)
	assert.Equal(t, []string{"go"}, Keywords(e.Tags()))
}
