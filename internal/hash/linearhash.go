package hash

import (
	"github.com/gostonefire/wordfreq/internal/utils"
)

// LinearProbingHashAlgorithm - The internally used slot selection algorithm is implemented using WordToInt to
// create a hash value over the key and then applying slot = hash % tableSize to get the home slot,
// where tableSize is the nearest prime equal to or bigger than the requested table size.
type LinearProbingHashAlgorithm struct {
	tableSize int64
}

// NewLinearProbingHashAlgorithm - Returns a pointer to a new LinearProbingHashAlgorithm instance
func NewLinearProbingHashAlgorithm(tableSize int64) *LinearProbingHashAlgorithm {
	ha := &LinearProbingHashAlgorithm{}
	ha.SetTableSize(tableSize)
	return ha
}

// SetTableSize - Sets the table size for the hash algorithm.
// In this implementation it updates the table size to the nearest prime equal to or bigger than the requested size.
func (L *LinearProbingHashAlgorithm) SetTableSize(tableSize int64) {
	L.tableSize = utils.NextPrime(tableSize)
}

// HashFunc1 - Given key it generates a home slot between 0 and table size - 1
func (L *LinearProbingHashAlgorithm) HashFunc1(key string) int64 {
	return int64(WordToInt(key)) % L.tableSize
}

// HashFunc2 - Linear probing always steps one slot at a time
func (L *LinearProbingHashAlgorithm) HashFunc2(key string) int64 {
	return 1
}

// GetTableSize - Returns the table size the implemented hash functions are supporting
func (L *LinearProbingHashAlgorithm) GetTableSize() int64 {
	return L.tableSize
}

// ProbeIteration - Implements Linear Probing
func (L *LinearProbingHashAlgorithm) ProbeIteration(hf1Value, hf2Value, iteration int64) int64 {
	return (hf1Value + iteration) % L.tableSize
}
