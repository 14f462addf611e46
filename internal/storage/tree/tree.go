// Package tree implements an insert-only binary search tree of word frequencies that can optionally keep itself
// balanced as a red-black tree.
package tree

import (
	"fmt"
)

// BST - Plain binary search tree, no rebalancing
const BST int = 1

// RBT - Red-black tree, rebalanced bottom-up after every insertion
const RBT int = 2

// Tree - Holds the root of the tree together with the kind chosen at creation.
// The kind decides once which color new nodes get and which fix is applied on the way up.
type Tree struct {
	root     *node
	kind     int
	count    int64
	newColor Color
	fix      fixFunc
}

// NewTree - Returns a pointer to a new empty tree of the given kind
//   - kind is one of BST or RBT
func NewTree(kind int) (tree *Tree, err error) {
	switch kind {
	case BST:
		tree = &Tree{kind: kind, newColor: Black, fix: noFix}
	case RBT:
		tree = &Tree{kind: kind, newColor: Red, fix: fixRedBlack}
	default:
		err = fmt.Errorf("unknown tree kind %d", kind)
	}

	return
}

// Kind - Returns BST or RBT
func (T *Tree) Kind() int {
	return T.kind
}

// Len - Returns the number of distinct keys in the tree
func (T *Tree) Len() int64 {
	return T.count
}

// Insert - Adds the key with frequency 1 or, if it is already present, increments its frequency.
// The root of a red-black tree is forced black after every insertion.
//
// It returns:
//   - frequency is the frequency of the key after the insertion
func (T *Tree) Insert(key string) (frequency int) {
	T.root, frequency = T.root.insert(key, T.newColor, T.fix)
	if T.kind == RBT {
		T.root.color = Black
	}
	if frequency == 1 {
		T.count++
	}

	return
}

// Search - Returns the frequency of the key or 0 (zero) if not found
func (T *Tree) Search(key string) (frequency int) {
	if n := T.root.search(key); n != nil {
		frequency = n.frequency
	}

	return
}

// Contains - Returns 1 if the key is in the tree, otherwise 0 (zero)
func (T *Tree) Contains(key string) int {
	if T.root.search(key) != nil {
		return 1
	}
	return 0
}

// Root - Returns the key and color at the root, ok is false for an empty tree
func (T *Tree) Root() (key string, color Color, ok bool) {
	if T.root == nil {
		return
	}

	return T.root.key, T.root.color, true
}

// InOrder - Calls fn with key and frequency for every node in ascending key order
func (T *Tree) InOrder(fn func(key string, frequency int)) {
	T.root.inOrder(fn)
}

// PreOrder - Calls fn with key and frequency for every node before its subtrees. Inserting the keys in this order
// into an empty BST rebuilds the same shape.
func (T *Tree) PreOrder(fn func(key string, frequency int)) {
	T.root.preOrder(fn)
}

// Clear - Releases every node, leaving an empty tree of the same kind
func (T *Tree) Clear() {
	T.root.free()
	T.root = nil
	T.count = 0
}
