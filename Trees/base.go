package Trees

import (
	"golang.org/x/exp/constraints"
)

// base is the node arena shared by the tree operations. ns[0] is the nil node;
// its fields are never written.
type base[T any, S constraints.Unsigned] struct {
	root, free, sz S // free is the beginning of the linked list that contains all the free indexes; node::l represents next.
	gen            uint64 // stamp of the last allocation, kept across Clear.
	ns             []node[T, S]
}

func makeBase[T any, S constraints.Unsigned](hint S) base[T, S] {
	ns := make([]node[T, S], 1, uint(hint)+1)
	return base[T, S]{ns: ns}
}

// addFree index once.
func (u *base[T, S]) addFree(a S) {
	n := &u.ns[a]
	n.v, n.l, n.r, n.p = *new(T), u.free, 0, a
	u.free = a
}

// popFree index once. Returns 0 when there's no free index(when u.free==0).
func (u *base[T, S]) popFree() S {
	b := u.free
	u.free = u.ns[u.free].l
	return b
}

// alloc a node holding v under parent p. Free indexes are used before the arena grows.
// Returns 0 when S can't address another node.
func (u *base[T, S]) alloc(v T, p S) S {
	a := u.popFree()
	if a == 0 {
		if uint64(len(u.ns)) > uint64(^S(0)) {
			return 0
		}
		a = S(len(u.ns))
		u.ns = append(u.ns, node[T, S]{})
	}
	u.gen++
	u.ns[a] = node[T, S]{v: v, p: p, g: u.gen}
	return a
}

// live reports whether i addresses a node currently in the tree.
func (u *base[T, S]) live(i S) bool {
	return i != 0 && uint64(i) < uint64(len(u.ns)) && u.ns[i].p != i
}

// valid reports whether h refers to a node currently in the tree, and not to an
// earlier node that held the same index.
func (u *base[T, S]) valid(h Handle[S]) bool {
	return u.live(h.i) && u.ns[h.i].g == h.g
}

// handle of index i, the zero Handle for 0.
func (u *base[T, S]) handle(i S) Handle[S] {
	return Handle[S]{i, u.ns[i].g}
}

// rightmost node of the subtree rooting at i.
func (u *base[T, S]) rightmost(i S) S {
	for u.ns[i].r != 0 {
		i = u.ns[i].r
	}
	return i
}

// leftmost node of the subtree rooting at i.
func (u *base[T, S]) leftmost(i S) S {
	for u.ns[i].l != 0 {
		i = u.ns[i].l
	}
	return i
}

// predecessor of node i in in-order, 0 if i holds the minimum.
// Time: O(D); Space: O(1)
func (u *base[T, S]) predecessor(i S) S {
	if l := u.ns[i].l; l != 0 {
		return u.rightmost(l)
	}
	for p := u.ns[i].p; p != 0; i, p = p, u.ns[p].p {
		if u.ns[p].r == i {
			return p
		}
	}
	return 0
}

// successor of node i in in-order, 0 if i holds the maximum.
// Time: O(D); Space: O(1)
func (u *base[T, S]) successor(i S) S {
	if r := u.ns[i].r; r != 0 {
		return u.leftmost(r)
	}
	for p := u.ns[i].p; p != 0; i, p = p, u.ns[p].p {
		if u.ns[p].l == i {
			return p
		}
	}
	return 0
}

// unlink node i, which must have at most one child, and splice its child into its parent.
func (u *base[T, S]) unlink(i S) {
	n := u.ns[i]
	c := n.l
	if c == 0 {
		c = n.r
	}
	if n.p == 0 {
		u.root = c
	} else if pn := &u.ns[n.p]; pn.l == i {
		pn.l = c
	} else {
		pn.r = c
	}
	if c != 0 {
		u.ns[c].p = n.p
	}
	u.addFree(i)
	u.sz--
}

// Size of the tree.
// Time: O(1); Space: O(1)
func (u *base[T, S]) Size() S {
	return u.sz
}

// Clear the tree. The arena keeps its capacity.
func (u *base[T, S]) Clear() {
	clear(u.ns)
	u.ns = u.ns[:1]
	u.root, u.free, u.sz = 0, 0, 0
}
