package hash

// WordToInt - Folds a word into an unsigned integer using acc = c + 31 * acc over its bytes.
// Overflow wraps around at 32 bits.
func WordToInt(word string) uint32 {
	var result uint32
	for i := 0; i < len(word); i++ {
		result = uint32(word[i]) + 31*result
	}

	return result
}
