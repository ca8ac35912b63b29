package Trees

import (
	"cmp"
	"fmt"
	"reflect"

	"golang.org/x/exp/constraints"
)

// OrderedTree is an unbalanced binary search tree with no repeated values.
// T is the type of values it will hold, S is the type of the indexes of its
// node arena, which bounds the number of elements to the maximum value of S.
// Nodes keep a link to their parent, so predecessor lookups and removals walk
// upwards without a path buffer.
// The height D of the tree depends on the insertion order: D=log2(n) on
// average for random orders, D=n for sorted orders.
// OrderedTree isn't safe for concurrent use; callers sharing a tree must
// serialize all accesses, reads included.
type OrderedTree[T any, S constraints.Unsigned] struct {
	base[T, S]
	cmp   func(a, b T) int
	label func(T) string
}

// New returns an empty tree ordered by cmp, with room for hint elements before
// the arena grows. cmp must be a strict total order: negative when a<b, zero
// when a==b, positive when a>b.
func New[T any, S constraints.Unsigned](cmp func(a, b T) int, hint S) (*OrderedTree[T, S], error) {
	if cmp == nil {
		return nil, ErrNotComparable.FastGenByArgs(*new(T))
	}
	return &OrderedTree[T, S]{base: makeBase[T](hint), cmp: cmp}, nil
}

// NewOrdered returns an empty tree using the natural order of T.
func NewOrdered[T cmp.Ordered, S constraints.Unsigned](hint S) *OrderedTree[T, S] {
	return &OrderedTree[T, S]{base: makeBase[T](hint), cmp: cmp.Compare[T]}
}

// NewComparable returns an empty tree ordered by [Comparer.Compare].
func NewComparable[T Comparer[T], S constraints.Unsigned](hint S) *OrderedTree[T, S] {
	return &OrderedTree[T, S]{base: makeBase[T](hint), cmp: func(a, b T) int { return a.Compare(b) }}
}

// SetLabel replaces the function Label uses to render elements. nil restores fmt.Sprint.
func (u *OrderedTree[T, S]) SetLabel(f func(T) string) {
	u.label = f
}

// absent reports whether v is a nil pointer, interface, map, slice, func or chan.
func absent[T any](v T) bool {
	a := any(v)
	if a == nil {
		return true
	}
	switch rv := reflect.ValueOf(a); rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}

// find the index of the node equal to v, 0 if there's none.
func (u *OrderedTree[T, S]) find(v T) S {
	for curI := u.root; curI != 0; {
		if c := u.cmp(v, u.ns[curI].v); c < 0 {
			curI = u.ns[curI].l
		} else if c > 0 {
			curI = u.ns[curI].r
		} else {
			return curI
		}
	}
	return 0
}

// Insert [Tree.Insert]. An absent v fails with ErrInvalidArgument; a full arena
// fails with ErrCapacityExceeded. Neither modifies the tree.
// Time: O(D); Space: O(1)
func (u *OrderedTree[T, S]) Insert(v T) (bool, error) {
	if absent(v) {
		return false, ErrInvalidArgument.FastGenByArgs("nil element")
	}
	var p S
	right := false
	for curI := u.root; curI != 0; {
		p = curI
		if c := u.cmp(v, u.ns[curI].v); c < 0 {
			curI, right = u.ns[curI].l, false
		} else if c > 0 {
			curI, right = u.ns[curI].r, true
		} else {
			return false, nil
		}
	}
	a := u.alloc(v, p)
	if a == 0 {
		return false, ErrCapacityExceeded.FastGenByArgs(uint64(^S(0)))
	}
	if p == 0 {
		u.root = a
	} else if right {
		u.ns[p].r = a
	} else {
		u.ns[p].l = a
	}
	u.sz++
	return true, nil
}

// Contains [Tree.Contains]
// Time: O(D); Space: O(1)
func (u *OrderedTree[T, S]) Contains(v T) bool {
	_, ok := u.Search(v)
	return ok
}

// Search the node holding the element equal to v. Returns false if v is absent
// or isn't in the tree.
// Time: O(D); Space: O(1)
func (u *OrderedTree[T, S]) Search(v T) (Handle[S], bool) {
	if u.root == 0 || absent(v) {
		return Handle[S]{}, false
	}
	i := u.find(v)
	return u.handle(i), i != 0
}

// Value held by the node h refers to. The zero value if h is nil or stale.
func (u *OrderedTree[T, S]) Value(h Handle[S]) T {
	if !u.valid(h) {
		return *new(T)
	}
	return u.ns[h.i].v
}

// Remove [Tree.Remove]. A node with two children takes over the element of its
// in-order predecessor and the predecessor's node is removed instead, so handles
// to the predecessor become stale while handles to the located node now see the
// predecessor's element.
// Time: O(D); Space: O(1)
func (u *OrderedTree[T, S]) Remove(v T) error {
	h, ok := u.Search(v)
	if !ok {
		return ErrNotFound.FastGenByArgs(v)
	}
	u.removeNode(h.i)
	return nil
}

// RemoveHandle removes the node h refers to, as Remove does. Returns ErrNotFound
// if h is nil or stale.
func (u *OrderedTree[T, S]) RemoveHandle(h Handle[S]) error {
	if !u.valid(h) {
		return ErrNotFound.FastGenByArgs(h)
	}
	u.removeNode(h.i)
	return nil
}

// removeNode i, which must be live.
func (u *OrderedTree[T, S]) removeNode(i S) {
	if n := &u.ns[i]; n.l != 0 && n.r != 0 {
		p := u.predecessor(i)
		if p == 0 {
			panic(ErrStructuralInconsistency.GenWithStackByArgs(fmt.Sprintf("node %d has two children but no predecessor", i)))
		}
		n.v = u.ns[p].v
		i = p
	}
	u.unlink(i)
}

// Predecessor of the node h refers to: the node holding the greatest element
// less than h's. Returns false if h holds the minimum, or h is nil or stale.
// Time: O(D); Space: O(1)
func (u *OrderedTree[T, S]) Predecessor(h Handle[S]) (Handle[S], bool) {
	if !u.valid(h) {
		return Handle[S]{}, false
	}
	p := u.predecessor(h.i)
	return u.handle(p), p != 0
}

// Successor of the node h refers to: the node holding the smallest element
// greater than h's. Returns false if h holds the maximum, or h is nil or stale.
// Time: O(D); Space: O(1)
func (u *OrderedTree[T, S]) Successor(h Handle[S]) (Handle[S], bool) {
	if !u.valid(h) {
		return Handle[S]{}, false
	}
	s := u.successor(h.i)
	return u.handle(s), s != 0
}

// Minimum [Tree.Minimum]
// Time: O(D); Space: O(1)
func (u *OrderedTree[T, S]) Minimum() (T, bool) {
	if u.root == 0 {
		return *new(T), false
	}
	return u.ns[u.leftmost(u.root)].v, true
}

// Maximum [Tree.Maximum]
// Time: O(D); Space: O(1)
func (u *OrderedTree[T, S]) Maximum() (T, bool) {
	if u.root == 0 {
		return *new(T), false
	}
	return u.ns[u.rightmost(u.root)].v, true
}
