package tree

import "strings"

// Color - Node color, only meaningful in a red-black tree
type Color int

const (
	// Black - Color of the root and of every node in a plain binary search tree
	Black Color = iota
	// Red - Color of a freshly inserted red-black node
	Red
)

// String - Returns the color name as used in DOT output
func (C Color) String() string {
	if C == Red {
		return "red"
	}
	return "black"
}

// node - Each node exclusively owns its two subtrees, there are no parent pointers.
type node struct {
	key       string
	frequency int
	color     Color
	left      *node
	right     *node
}

// fixFunc - Rebalancing applied to each node on the way back up from an insertion
type fixFunc func(n *node) *node

func noFix(n *node) *node {
	return n
}

func (n *node) isRed() bool {
	return n != nil && n.color == Red
}

// insert - Inserts key below n and returns the new root of the subtree together with the key's frequency.
// A duplicate only has its frequency incremented.
func (n *node) insert(key string, newColor Color, fix fixFunc) (*node, int) {
	if n == nil {
		return &node{key: key, frequency: 1, color: newColor}, 1
	}

	var frequency int
	switch cmp := strings.Compare(key, n.key); {
	case cmp < 0:
		n.left, frequency = n.left.insert(key, newColor, fix)
	case cmp > 0:
		n.right, frequency = n.right.insert(key, newColor, fix)
	default:
		n.frequency++
		return n, n.frequency
	}

	return fix(n), frequency
}

// search - Returns the node holding key or nil
func (n *node) search(key string) *node {
	for n != nil {
		switch cmp := strings.Compare(key, n.key); {
		case cmp < 0:
			n = n.left
		case cmp > 0:
			n = n.right
		default:
			return n
		}
	}
	return nil
}

// rotateRight - Promotes the left child to the position of n. Only links move, keys and counts stay put.
func (n *node) rotateRight() *node {
	x := n.left
	n.left = x.right
	x.right = n
	return x
}

// rotateLeft - Mirror of rotateRight
func (n *node) rotateLeft() *node {
	x := n.right
	n.right = x.left
	x.left = n
	return x
}

// pushColor - Makes n red and both its children black
func (n *node) pushColor() {
	n.color = Red
	n.left.color = Black
	n.right.color = Black
}

// fixRedBlack - Resolves a red child with a red child of its own below n. Only one case applies per call.
// A red sibling lets the color be pushed up to n, which may leave a red-red pair for the caller one level up.
func fixRedBlack(n *node) *node {
	switch {
	case n.left.isRed() && n.left.left.isRed():
		if n.right.isRed() {
			n.pushColor()
		} else {
			n = n.rotateRight()
			n.color = Black
			n.right.color = Red
		}

	case n.left.isRed() && n.left.right.isRed():
		if n.right.isRed() {
			n.pushColor()
		} else {
			n.left = n.left.rotateLeft()
			n = n.rotateRight()
			n.color = Black
			n.right.color = Red
		}

	case n.right.isRed() && n.right.left.isRed():
		if n.left.isRed() {
			n.pushColor()
		} else {
			n.right = n.right.rotateRight()
			n = n.rotateLeft()
			n.color = Black
			n.left.color = Red
		}

	case n.right.isRed() && n.right.right.isRed():
		if n.left.isRed() {
			n.pushColor()
		} else {
			n = n.rotateLeft()
			n.color = Black
			n.left.color = Red
		}
	}

	return n
}

func (n *node) inOrder(fn func(key string, frequency int)) {
	if n == nil {
		return
	}
	n.left.inOrder(fn)
	fn(n.key, n.frequency)
	n.right.inOrder(fn)
}

func (n *node) preOrder(fn func(key string, frequency int)) {
	if n == nil {
		return
	}
	fn(n.key, n.frequency)
	n.left.preOrder(fn)
	n.right.preOrder(fn)
}

// free - Post-order release of the subtree
func (n *node) free() {
	if n == nil {
		return
	}
	n.left.free()
	n.right.free()
	n.left = nil
	n.right = nil
	n.key = ""
}
