//go:build unit

package hash

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestWordToInt(t *testing.T) {
	t.Run("folds words polynomially", func(t *testing.T) {
		// Prepare
		words := []string{"", "a", "on", "the", "cat"}
		expected := []uint32{0, 97, 3551, 114801, 98262}

		// Execute and Check
		for i, w := range words {
			assert.Equalf(t, expected[i], WordToInt(w), "hash of %q", w)
		}
	})

	t.Run("is order sensitive", func(t *testing.T) {
		// Execute and Check
		assert.NotEqual(t, WordToInt("on"), WordToInt("no"), "anagrams differ")
	})

	t.Run("wraps around on long words", func(t *testing.T) {
		// Prepare
		word := "pneumonoultramicroscopicsilicovolcanoconiosis"

		// Execute
		var expected uint64
		for i := 0; i < len(word); i++ {
			expected = (uint64(word[i]) + 31*expected) & 0xffffffff
		}

		// Check
		assert.Equal(t, uint32(expected), WordToInt(word), "wrapped hash value")
	})
}
