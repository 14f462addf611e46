package wordfreq

import (
	"io"
)

// Slot - One slot of a hash dictionary as shown in the full table dump
type Slot struct {
	Position   int64
	InUse      bool
	Word       string
	Frequency  int
	ProbeDepth int
}

// StatsLine - One checkpoint of the fill snapshot, see HashDictionary.Stats
type StatsLine struct {
	PercentFull       int
	Entries           int64
	PercentAtHome     float64
	AverageCollisions float64
	MaxCollisions     int
}

// Insert - Counts one more occurrence of word.
//   - word is the word to insert
//
// It returns:
//   - frequency is the frequency of the word after the insertion
//   - err is of type TableFull if the word is new and every slot is taken, the dictionary is then left unchanged
func (H *HashDictionary) Insert(word string) (frequency int, err error) {
	return H.table.Insert(word)
}

// Search - Returns the frequency of word, or 0 (zero) if it was never inserted
func (H *HashDictionary) Search(word string) (frequency int) {
	return H.table.Search(word)
}

// Visit - Applies the visitor to every stored word in slot order
func (H *HashDictionary) Visit(visitor Visitor) {
	H.table.Walk(visitor.Visit)
}

// Clear - Releases all words, the capacity stays the same
func (H *HashDictionary) Clear() {
	H.table.Clear()
}

// NumKeys - Returns the number of distinct words stored
func (H *HashDictionary) NumKeys() int64 {
	return H.table.NumKeys()
}

// Capacity - Returns the fixed number of slots
func (H *HashDictionary) Capacity() int64 {
	return H.table.Capacity()
}

// Technique - Returns LinearProbing or DoubleHashing
func (H *HashDictionary) Technique() int {
	return H.table.CollisionResolutionTechnique
}

// Slots - Returns every slot in position order, occupied or not
func (H *HashDictionary) Slots() (slots []Slot) {
	for i, s := range H.table.Slots() {
		slots = append(slots, Slot{
			Position:   int64(i),
			InUse:      s.InUse,
			Word:       s.Key,
			Frequency:  s.Frequency,
			ProbeDepth: s.ProbeDepth,
		})
	}

	return
}

// Stats - Returns the fill snapshot divided into numStats checkpoints. Each checkpoint summarizes probe depths over
// the slot positions [0, Entries), it reflects the current layout of the table rather than insertion history.
func (H *HashDictionary) Stats(numStats int) (lines []StatsLine) {
	for _, l := range H.table.Stats(numStats) {
		lines = append(lines, StatsLine(l))
	}

	return
}

// PrintStats - Writes the fill snapshot as a table
func (H *HashDictionary) PrintStats(w io.Writer, numStats int) error {
	return H.table.PrintStats(w, numStats)
}

// PrintEntireTable - Writes position, frequency, probe depth and word for every slot
func (H *HashDictionary) PrintEntireTable(w io.Writer) error {
	return H.table.PrintEntireTable(w)
}

// Insert - Counts one more occurrence of word, it never fails
func (O *OrderedDictionary) Insert(word string) (frequency int, err error) {
	frequency = O.tree.Insert(word)
	return
}

// Search - Returns the frequency of word, or 0 (zero) if it was never inserted
func (O *OrderedDictionary) Search(word string) (frequency int) {
	return O.tree.Search(word)
}

// Contains - Returns 1 if word was inserted, otherwise 0 (zero)
func (O *OrderedDictionary) Contains(word string) int {
	return O.tree.Contains(word)
}

// Visit - Applies the visitor in ascending word order
func (O *OrderedDictionary) Visit(visitor Visitor) {
	O.tree.InOrder(visitor.Visit)
}

// InOrder - Applies the visitor in ascending word order
func (O *OrderedDictionary) InOrder(visitor Visitor) {
	O.tree.InOrder(visitor.Visit)
}

// PreOrder - Applies the visitor to every node before its subtrees
func (O *OrderedDictionary) PreOrder(visitor Visitor) {
	O.tree.PreOrder(visitor.Visit)
}

// Clear - Releases every node
func (O *OrderedDictionary) Clear() {
	O.tree.Clear()
}

// Len - Returns the number of distinct words stored
func (O *OrderedDictionary) Len() int64 {
	return O.tree.Len()
}

// Kind - Returns BST or RBT
func (O *OrderedDictionary) Kind() int {
	return O.tree.Kind()
}

// Root - Returns the word and color at the root, ok is false when empty
func (O *OrderedDictionary) Root() (word string, color Color, ok bool) {
	return O.tree.Root()
}

// WriteDot - Writes a DOT graph description of the tree
func (O *OrderedDictionary) WriteDot(w io.Writer) error {
	return O.tree.WriteDot(w)
}
