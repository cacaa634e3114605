package bean

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidName(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"a", true},
		{"_", true},
		{"title", true},
		{"Title", true},
		{"_private", true},
		{"color-label", true},
		{"x1", true},
		{"a_b-c_9", true},
		{"", false},
		{"1abc", false},
		{"-abc", false},
		{"a b", false},
		{"a.b", false},
		{"a$", false},
		{"naïve", false},
		{"a\n", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidName(tt.name), "IsValidName(%q)", tt.name)
		})
	}
}
