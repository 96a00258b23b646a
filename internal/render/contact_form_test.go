package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContactFormSubmit(t *testing.T) {
	f := NewContactForm("hello@example.com")
	require.NoError(t, f.Set("subject", "Hi"))
	require.NoError(t, f.Set("message", "Test"))

	assert.Equal(t, "mailto:hello@example.com?subject=Hi&body=Test", f.Submit())
}

func TestContactFormUnknownField(t *testing.T) {
	f := NewContactForm("hello@example.com")
	assert.Error(t, f.Set("name", "x"))
}

func TestEncodeURIComponent(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Hi there", "Hi%20there"},
		{"a&b=c", "a%26b%3Dc"},
		{"wow!(really)*'", "wow!(really)*'"},
		{"line\nbreak", "line%0Abreak"},
		{"50% off?", "50%25%20off%3F"},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, encodeURIComponent(tt.in))
		})
	}
}
