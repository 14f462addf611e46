package wordfreq

import (
	"github.com/gostonefire/wordfreq/crt"
	"github.com/gostonefire/wordfreq/hashfunc"
	"github.com/gostonefire/wordfreq/internal/model"
	"github.com/gostonefire/wordfreq/internal/storage/openaddressing"
	"github.com/gostonefire/wordfreq/internal/storage/tree"
)

// LinearProbing - Hash dictionary probing one slot at a time
const LinearProbing = crt.LinearProbing

// DoubleHashing - Hash dictionary probing with a key dependent step
const DoubleHashing = crt.DoubleHashing

// BST - Ordered dictionary as a plain binary search tree
const BST = tree.BST

// RBT - Ordered dictionary as a red-black tree
const RBT = tree.RBT

// Color - Color of an ordered dictionary node
type Color = tree.Color

// Red and Black - Node colors, only a red-black tree has red nodes
const (
	Red   = tree.Red
	Black = tree.Black
)

// Dictionary - The contract shared by HashDictionary and OrderedDictionary
type Dictionary interface {
	// Insert - Counts one more occurrence of word and returns its frequency after the insertion
	Insert(word string) (frequency int, err error)
	// Search - Returns the frequency of word, or 0 (zero) if it was never inserted
	Search(word string) (frequency int)
	// Visit - Applies the visitor to every (word, frequency) pair in the natural order of the dictionary
	Visit(visitor Visitor)
	// Clear - Releases all words
	Clear()
}

// Visitor - Action applied to each (word, frequency) pair of a dictionary
type Visitor interface {
	Visit(word string, frequency int)
}

// VisitorFunc - Adapter allowing an ordinary function to be used as a Visitor
type VisitorFunc func(word string, frequency int)

// Visit - Calls f(word, frequency)
func (f VisitorFunc) Visit(word string, frequency int) {
	f(word, frequency)
}

// HashDictionaryInfo - Information structure containing some information about the hash dictionary created
//   - RequestedSize is the size asked for
//   - Capacity is the actual fixed number of slots, the nearest prime for the internal algorithms
//   - CollisionResolutionTechnique is LinearProbing or DoubleHashing
//   - InternalAlgorithm is false when a custom hash algorithm was supplied
type HashDictionaryInfo struct {
	RequestedSize                int64
	Capacity                     int64
	CollisionResolutionTechnique int
	InternalAlgorithm            bool
}

// HashDictionary - Fixed capacity open addressing word frequency table
type HashDictionary struct {
	table *openaddressing.OATable
}

// NewHashDictionary - Returns a new hash dictionary. The capacity is fixed from here on, so it should be sized
// generously compared to the number of distinct words expected.
//   - requestedSize is the minimum number of slots, the internal algorithms round it up to the nearest prime
//   - technique is LinearProbing or DoubleHashing
//   - hashAlgorithm is an optional entry to provide a custom hash algorithm following the hashfunc.HashAlgorithm interface.
//
// It returns:
//   - hashDictionary is a pointer to a HashDictionary struct
//   - info is a HashDictionaryInfo struct containing some data regarding the dictionary created.
//   - err is a normal go Error which should be nil if everything went ok
func NewHashDictionary(
	requestedSize int64,
	technique int,
	hashAlgorithm hashfunc.HashAlgorithm,
) (
	hashDictionary *HashDictionary,
	info HashDictionaryInfo,
	err error,
) {
	table, err := openaddressing.NewOATable(model.CRTConf{
		RequestedSize:                requestedSize,
		CollisionResolutionTechnique: technique,
		HashAlgorithm:                hashAlgorithm,
	})
	if err != nil {
		return
	}

	hashDictionary = &HashDictionary{table: table}

	sp := table.GetStorageParameters()

	info = HashDictionaryInfo{
		RequestedSize:                sp.RequestedSize,
		Capacity:                     sp.Capacity,
		CollisionResolutionTechnique: sp.CollisionResolutionTechnique,
		InternalAlgorithm:            sp.InternalAlgorithm,
	}

	return
}

// OrderedDictionary - Binary search tree of word frequencies, optionally kept balanced as a red-black tree
type OrderedDictionary struct {
	tree *tree.Tree
}

// NewOrderedDictionary - Returns a new empty ordered dictionary
//   - kind is BST or RBT
func NewOrderedDictionary(kind int) (orderedDictionary *OrderedDictionary, err error) {
	t, err := tree.NewTree(kind)
	if err != nil {
		return
	}

	orderedDictionary = &OrderedDictionary{tree: t}

	return
}
