package Trees

import (
	"fmt"

	"github.com/g-m-twostay/bstree/Queues"
)

// Root of the tree, false if the tree is empty.
func (u *OrderedTree[T, S]) Root() (Handle[S], bool) {
	return u.handle(u.root), u.root != 0
}

// Left child of h, false if there's none or h is nil or stale.
func (u *OrderedTree[T, S]) Left(h Handle[S]) (Handle[S], bool) {
	if !u.valid(h) {
		return Handle[S]{}, false
	}
	l := u.ns[h.i].l
	return u.handle(l), l != 0
}

// Right child of h, false if there's none or h is nil or stale.
func (u *OrderedTree[T, S]) Right(h Handle[S]) (Handle[S], bool) {
	if !u.valid(h) {
		return Handle[S]{}, false
	}
	r := u.ns[h.i].r
	return u.handle(r), r != 0
}

// Parent of h, false if h is the root or h is nil or stale.
func (u *OrderedTree[T, S]) Parent(h Handle[S]) (Handle[S], bool) {
	if !u.valid(h) {
		return Handle[S]{}, false
	}
	p := u.ns[h.i].p
	return u.handle(p), p != 0
}

// Label renders the element of h, the empty string if h is nil or stale.
func (u *OrderedTree[T, S]) Label(h Handle[S]) string {
	if !u.valid(h) {
		return ""
	}
	if u.label != nil {
		return u.label(u.ns[h.i].v)
	}
	return fmt.Sprint(u.ns[h.i].v)
}

// PreOrder [Tree.PreOrder]. Each call starts a new traversal from the root.
// Time: f(): O(1) at each call to the returned function. Space: O(D)
func (u *OrderedTree[T, S]) PreOrder() func() (T, bool) {
	st := Queues.MakeArrayStack[S](0)
	if u.root != 0 {
		st.Push(u.root)
	}
	return func() (r T, has bool) {
		curI, ok := st.Pop()
		if !ok {
			return
		}
		cur := u.ns[curI]
		if cur.r != 0 {
			st.Push(cur.r)
		}
		if cur.l != 0 {
			st.Push(cur.l)
		}
		return cur.v, true
	}
}

// InOrder [Tree.InOrder]
// Time: O(n); Space: O(D)
func (u *OrderedTree[T, S]) InOrder(f func(T) bool) {
	st := Queues.MakeArrayStack[S](0)
	for curI := u.root; curI != 0; curI = u.ns[curI].l {
		st.Push(curI)
	}
	for curI, ok := st.Pop(); ok; curI, ok = st.Pop() {
		if !f(u.ns[curI].v) {
			return
		}
		for curI = u.ns[curI].r; curI != 0; curI = u.ns[curI].l {
			st.Push(curI)
		}
	}
}

// levelItem is a pending node of LevelOrder.
type levelItem[S any] struct {
	i     S
	depth uint
}

// LevelOrder calls f on every node breadth first, left to right, with the depth of
// the node (the root is at 0), until f returns false.
// Time: O(n); Space: O(n)
func (u *OrderedTree[T, S]) LevelOrder(f func(h Handle[S], depth uint) bool) {
	if u.root == 0 {
		return
	}
	q := Queues.MakeArrayQueue[levelItem[S]](0)
	q.Push(levelItem[S]{u.root, 0})
	for it, ok := q.Pop(); ok; it, ok = q.Pop() {
		if !f(u.handle(it.i), it.depth) {
			return
		}
		if l := u.ns[it.i].l; l != 0 {
			q.Push(levelItem[S]{l, it.depth + 1})
		}
		if r := u.ns[it.i].r; r != 0 {
			q.Push(levelItem[S]{r, it.depth + 1})
		}
	}
}

// Height of the tree, the number of nodes on the longest path from the root.
// Time: O(n); Space: O(n)
func (u *OrderedTree[T, S]) Height() (h uint) {
	u.LevelOrder(func(_ Handle[S], d uint) bool {
		h = max(h, d+1)
		return true
	})
	return
}

// Corrupt [Tree.Corrupt]. Cycles in the links are reported as corruption.
// Time: O(n); Space: O(D)
func (u *OrderedTree[T, S]) Corrupt() bool {
	if u.root == 0 {
		return u.sz != 0
	}
	if u.ns[u.root].p != 0 {
		return true
	}
	var count uint64
	var prev T
	bad := false
	st := Queues.MakeArrayStack[S](0)
	push := func(curI S) {
		for ; curI != 0 && !bad; curI = u.ns[curI].l {
			if !u.live(curI) || count+uint64(st.Size()) > uint64(len(u.ns)) {
				bad = true
				return
			}
			if l := u.ns[curI].l; l != 0 && u.ns[l].p != curI {
				bad = true
			}
			if r := u.ns[curI].r; r != 0 && u.ns[r].p != curI {
				bad = true
			}
			st.Push(curI)
		}
	}
	push(u.root)
	for curI, ok := st.Pop(); ok && !bad; curI, ok = st.Pop() {
		if count > 0 && u.cmp(prev, u.ns[curI].v) >= 0 {
			return true
		}
		prev = u.ns[curI].v
		count++
		push(u.ns[curI].r)
	}
	return bad || count != uint64(u.sz)
}

var (
	_ Tree[int, uint]           = (*OrderedTree[int, uint])(nil)
	_ Inspector[Handle[uint16]] = (*OrderedTree[string, uint16])(nil)
)
