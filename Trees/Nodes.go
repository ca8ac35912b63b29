package Trees

import "golang.org/x/exp/constraints"

// A node in the OrderedTree.
// l, r, p are indexes into the arena of the tree; index 0 is the nil node.
// A freed node is its own parent, and its l links to the next free index.
// g stamps the allocation of the node; a reused index gets a new stamp.
type node[T any, S constraints.Unsigned] struct {
	v       T
	l, r, p S
	g       uint64
}

// Handle refers to a node of an OrderedTree. The zero Handle refers to no node.
// A Handle stays valid until the node it refers to is removed, and stays stale
// after that even if a later insert reuses the index. A removal may also move
// the element of another node, see [OrderedTree.Remove].
type Handle[S constraints.Unsigned] struct {
	i S
	g uint64
}

// Nil reports whether h refers to no node.
func (h Handle[S]) Nil() bool {
	return h.i == 0
}
