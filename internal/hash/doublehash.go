package hash

import (
	"github.com/gostonefire/wordfreq/internal/utils"
)

// DoubleHashAlgorithm - The internally used slot selection algorithm is implemented using WordToInt to
// create a hash value over the key and then applying HashFunc1 and HashFunc2 as home slot respective step functions.
type DoubleHashAlgorithm struct {
	tableSize int64
}

// NewDoubleHashAlgorithm - Returns a pointer to a new DoubleHashAlgorithm instance
func NewDoubleHashAlgorithm(tableSize int64) *DoubleHashAlgorithm {
	ha := &DoubleHashAlgorithm{}
	ha.SetTableSize(tableSize)
	return ha
}

// SetTableSize - Sets the table size for the hash algorithm.
// In this implementation it updates the table size to its nearest higher prime number, which allows the algorithm to
// iterate over the entirety of the table slots once and only once.
//   - tableSize is the requested number of slots
func (D *DoubleHashAlgorithm) SetTableSize(tableSize int64) {
	D.tableSize = utils.NextPrime(tableSize)
}

// HashFunc1 - Given key it generates a home slot between 0 and table size - 1
func (D *DoubleHashAlgorithm) HashFunc1(key string) int64 {
	return int64(WordToInt(key)) % D.tableSize
}

// HashFunc2 - Given key it generates the step between probes, a value between 1 and table size - 1.
// A table of size 1 has nowhere to step to so the step is then always 1.
func (D *DoubleHashAlgorithm) HashFunc2(key string) int64 {
	if D.tableSize == 1 {
		return 1
	}

	return 1 + int64(WordToInt(key))%(D.tableSize-1)
}

// GetTableSize - Returns the table size the implemented hash functions are supporting
func (D *DoubleHashAlgorithm) GetTableSize() int64 {
	return D.tableSize
}

// ProbeIteration - Returns the slot to examine given values from HashFunc1 and HashFunc2 in iteration.
func (D *DoubleHashAlgorithm) ProbeIteration(hf1Value, hf2Value, iteration int64) int64 {
	return (hf1Value + iteration*hf2Value) % D.tableSize
}
