package bean

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func nestedBeans(t *testing.T) Bean {
	t.Helper()
	person, err := NewClass("Person",
		MustProperty("name", TypeFor[string](), TypeRef{}),
	)
	require.NoError(t, err)
	post, err := NewClass("Post",
		MustProperty("author", NewTypeRef("Person", ShapeOther), TypeRef{}),
		MustProperty("scores", TypeFor[[]int](), TypeFor[int]()),
		MustProperty("rgb", TypeFor[[3]int](), TypeFor[int]()),
		MustProperty("meta", TypeFor[map[string]string](), TypeFor[string]()),
		MustProperty("people", TypeFor[[]Bean](), TypeFor[Bean]()),
	)
	require.NoError(t, err)

	author, err := person.NewInstance()
	require.NoError(t, err)
	require.NoError(t, author.Set("name", "ada"))
	friend, err := person.NewInstance()
	require.NoError(t, err)
	require.NoError(t, friend.Set("name", "grace"))

	b, err := post.NewInstance()
	require.NoError(t, err)
	require.NoError(t, b.Set("author", author))
	require.NoError(t, b.Set("scores", []int{3, 5, 8}))
	require.NoError(t, b.Set("rgb", [3]int{1, 2, 3}))
	require.NoError(t, b.Set("meta", map[string]string{"lang": "go"}))
	require.NoError(t, b.Set("people", []Bean{author, friend}))
	return b
}

func TestEval(t *testing.T) {
	b := nestedBeans(t)
	tests := []struct {
		expr string
		want any
	}{
		{"author.name", "ada"},
		{"scores[1]", 5},
		{"rgb[2]", 3},
		{"meta(lang)", "go"},
		{"meta(missing)", nil},
		{"people[1].name", "grace"},
	}
	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			got, err := Eval(b, tt.expr)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEvalErrors(t *testing.T) {
	b := nestedBeans(t)
	tests := []struct {
		expr    string
		wantErr error
	}{
		{"", ErrExpression},
		{"author.", ErrExpression},
		{"1st", ErrExpression},
		{"scores[", ErrExpression},
		{"scores[x]", ErrExpression},
		{"scores[-1]", ErrExpression},
		{"scores[9]", ErrExpression},
		{"scores(key)", ErrExpression},
		{"meta[0]", ErrExpression},
		{"scores]", ErrExpression},
		{"author.name.first", ErrExpression},
		{"author.age", ErrPropertyNotExist},
		{"title", ErrPropertyNotExist},
	}
	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			_, err := Eval(b, tt.expr)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestEvalNilIntermediate(t *testing.T) {
	c, err := NewClass("Node",
		MustProperty("next", NewTypeRef("Node", ShapeOther), TypeRef{}),
		MustProperty("value", TypeFor[int](), TypeRef{}),
	)
	require.NoError(t, err)
	b, err := c.NewInstance()
	require.NoError(t, err)

	_, err = Eval(b, "next.value")
	assert.ErrorIs(t, err, ErrExpression)
}

func TestAssign(t *testing.T) {
	b := nestedBeans(t)

	require.NoError(t, Assign(b, "author.name", "lovelace"))
	require.NoError(t, Assign(b, "scores[0]", 13))
	require.NoError(t, Assign(b, "meta(license)", "MIT"))

	got, err := Eval(b, "author.name")
	require.NoError(t, err)
	assert.Equal(t, "lovelace", got)

	got, err = Eval(b, "scores[0]")
	require.NoError(t, err)
	assert.Equal(t, 13, got)

	got, err = Eval(b, "meta(license)")
	require.NoError(t, err)
	assert.Equal(t, "MIT", got)
}

func TestAssignErrors(t *testing.T) {
	b := nestedBeans(t)

	assert.ErrorIs(t, Assign(b, "scores[7]", 1), ErrExpression)
	assert.ErrorIs(t, Assign(b, "scores[0]", "one"), ErrTypeMismatch)
	assert.ErrorIs(t, Assign(b, "rgb[0]", 9), ErrExpression)
	assert.ErrorIs(t, Assign(b, "meta(k)", 9), ErrTypeMismatch)
	assert.ErrorIs(t, Assign(b, "author.name.first", "x"), ErrExpression)
	assert.ErrorIs(t, Assign(b, "author.email", "x"), ErrPropertyNotExist)
	assert.ErrorIs(t, Assign(b, "scores", "x"), ErrTypeMismatch)
}
