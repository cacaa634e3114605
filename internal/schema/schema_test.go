package schema

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/databeans/pkg/bean"
)

func TestParseType(t *testing.T) {
	tests := []struct {
		expr string
		want reflect.Type
	}{
		{"string", reflect.TypeFor[string]()},
		{" int64 ", reflect.TypeFor[int64]()},
		{"[]string", reflect.TypeFor[[]string]()},
		{"[3]int", reflect.TypeFor[[3]int]()},
		{"map[string]int", reflect.TypeFor[map[string]int]()},
		{"map[string][]float64", reflect.TypeFor[map[string][]float64]()},
		{"[][2]bool", reflect.TypeFor[[][2]bool]()},
		{"any", reflect.TypeFor[any]()},
	}
	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			got, err := ParseType(tt.expr)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseTypeErrors(t *testing.T) {
	for _, expr := range []string{"", "Person", "[x]int", "[-1]int", "[3int", "map[any]int", "map[Person]int", "map[string", "[]Person"} {
		t.Run(expr, func(t *testing.T) {
			_, err := ParseType(expr)
			assert.ErrorIs(t, err, ErrUnknownType)
		})
	}
}

const articleYAML = `
name: Article
properties:
  - name: title
    type: string
  - name: keywords
    type: "[]string"
  - name: rgb
    type: "[3]int"
  - name: attributes
    type: map[string]string
  - name: author
    type: Person
    shape: other
  - name: comments
    type: CommentList
    shape: list
    content: Comment
`

func TestParse(t *testing.T) {
	c, err := Parse([]byte(articleYAML))
	require.NoError(t, err)
	assert.Equal(t, "Article", c.Name())

	props := c.Properties()
	require.Len(t, props, 6)

	kinds := make([]bean.Kind, len(props))
	for i, p := range props {
		kinds[i] = p.Kind()
	}
	assert.Equal(t, []bean.Kind{
		bean.Simple, bean.Indexed, bean.Indexed,
		bean.Mapped, bean.Simple, bean.Indexed,
	}, kinds)

	kw, ok := c.Property("keywords")
	require.True(t, ok)
	ct, ok := kw.ContentType()
	require.True(t, ok)
	assert.Equal(t, "string", ct.Name())

	comments, _ := c.Property("comments")
	ct, ok = comments.ContentType()
	require.True(t, ok)
	assert.Equal(t, "Comment", ct.Name())
	assert.Nil(t, comments.Type().GoType())

	b, err := c.NewInstance()
	require.NoError(t, err)
	assert.NoError(t, b.Set("title", "hello"))
	assert.ErrorIs(t, b.Set("title", 42), bean.ErrTypeMismatch)
	assert.NoError(t, b.Set("comments", []string{"anything goes"}))
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr error
	}{
		{"not yaml", "name: [", ErrInvalidSchema},
		{"no class name", "properties: []", ErrInvalidSchema},
		{"no type", "name: A\nproperties:\n  - name: x\n", ErrInvalidSchema},
		{"unknown type", "name: A\nproperties:\n  - name: x\n    type: Widget\n", ErrUnknownType},
		{"bad shape", "name: A\nproperties:\n  - name: x\n    type: W\n    shape: tree\n", ErrInvalidSchema},
		{"bad name", "name: A\nproperties:\n  - name: 1x\n    type: int\n", bean.ErrInvalidName},
		{"opaque list without content", "name: A\nproperties:\n  - name: x\n    type: W\n    shape: list\n", bean.ErrMissingContentType},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "article.yaml")
	require.NoError(t, os.WriteFile(path, []byte(articleYAML), 0o644))

	c, err := LoadFile(path)
	require.NoError(t, err)
	assert.True(t, c.HasProperty("author"))

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestDescribe(t *testing.T) {
	c, err := Parse([]byte(articleYAML))
	require.NoError(t, err)

	def := Describe(c)
	assert.Equal(t, "Article", def.Name)
	require.Len(t, def.Properties, 6)
	assert.Equal(t, PropertyDefinition{Name: "keywords", Type: "[]string", Content: "string"}, def.Properties[1])
	assert.Equal(t, PropertyDefinition{Name: "author", Type: "Person", Shape: "other"}, def.Properties[4])

	again, err := Build(def)
	require.NoError(t, err)
	assert.Equal(t, c.Properties(), again.Properties())
}
