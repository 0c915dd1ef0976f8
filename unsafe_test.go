package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnsafeBytesToString(t *testing.T) {
	assert.Equal(t, "", unsafeBytesToString(nil))
	assert.Equal(t, "", unsafeBytesToString([]byte{}))
	assert.Equal(t, "stone", unsafeBytesToString([]byte("stone")))
}

func TestMemEqual(t *testing.T) {
	tests := []struct {
		a, b   string
		length int
		want   bool
	}{
		{"", "", 0, true},
		{"abc", "abc", 3, true},
		{"abc", "abd", 3, false},
		{"abcdef", "abcxxx", 3, true},
		{"longer than a machine word!", "longer than a machine word!", 27, true},
		{"longer than a machine word!", "longer than a machine word?", 27, false},
		{"longer than a machine word!", "longer than a machine wordX", 26, true},
	}
	for _, tc := range tests {
		got := memEqual([]byte(tc.a), []byte(tc.b), tc.length)
		assert.Equal(t, tc.want, got, "memEqual(%q, %q, %d)", tc.a, tc.b, tc.length)
	}
}

func TestMemEqualPrefixOnly(t *testing.T) {
	// only the first length bytes matter
	a := []byte("abcdefgh")
	b := []byte("abcdzzzz")
	assert.True(t, memEqual(a, b, 4))
	assert.False(t, memEqual(a, b, 5))
}
