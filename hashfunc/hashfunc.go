package hashfunc

// HashAlgorithm - Interface that permits a user of the hash dictionary to supply a custom slot
// selection algorithm suited for its particular distribution of words.
type HashAlgorithm interface {
	// SetTableSize - Sets the table size for the hash algorithm.
	// It is called when creating a new hash dictionary. Hence, if a custom hash algorithm is supplied that
	// implements this interface and the instance is already having a table size, it will be overwritten by the
	// requested size that was supplied when creating the hash dictionary.
	//   - tableSize is the requested number of slots
	SetTableSize(tableSize int64)

	// HashFunc1 - Given key it generates a home slot between 0 and table size - 1
	// Any number returned outside the table size (0 -> table size - 1) will result in an error down stream.
	HashFunc1(key string) int64

	// HashFunc2 - Given key it generates the step between consecutive probes that will be used together
	// with the value from HashFunc1 in a call to ProbeIteration.
	HashFunc2(key string) int64

	// GetTableSize - Returns the table size the implemented hash functions are supporting.
	// It is very important that this function return the actual table size and not just the table size given in
	// the call to SetTableSize. The built-in algorithms round up to the nearest prime, and if such operations are
	// built in the implementation of this interface it must be covered in the GetTableSize.
	GetTableSize() int64

	// ProbeIteration - Returns the slot to examine in the given iteration given values from HashFunc1 and HashFunc2.
	// Since this function will be called repeatedly in a collision resolution situation, and the actual hash values
	// from HashFunc1 and HashFunc2 are the same throughout iterations for one key, the function takes those values
	// rather than the actual key as input.
	ProbeIteration(hf1Value, hf2Value, iteration int64) int64
}
