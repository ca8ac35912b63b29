package TreeSet

import (
	"cmp"

	"github.com/g-m-twostay/bstree/Sets"
	"github.com/g-m-twostay/bstree/Trees"
	"golang.org/x/exp/constraints"
)

// TreeSet is a Set backed by an OrderedTree. Range visits elements in ascending order.
// Nil elements are never stored: putting one doesn't change the set.
type TreeSet[E any, S constraints.Unsigned] struct {
	t *Trees.OrderedTree[E, S]
	c func(a, b E) int
}

// New TreeSet ordered by c. Fails with Trees.ErrNotComparable if c is nil.
func New[E any, S constraints.Unsigned](c func(a, b E) int, hint S) (*TreeSet[E, S], error) {
	t, err := Trees.New(c, hint)
	if err != nil {
		return nil, err
	}
	return &TreeSet[E, S]{t, c}, nil
}

// NewOrdered TreeSet using the natural order of E.
func NewOrdered[E cmp.Ordered, S constraints.Unsigned](hint S) *TreeSet[E, S] {
	return &TreeSet[E, S]{Trees.NewOrdered[E](hint), cmp.Compare[E]}
}

// Tree the set is backed by.
func (u *TreeSet[E, S]) Tree() *Trees.OrderedTree[E, S] {
	return u.t
}

func (u *TreeSet[E, S]) Put(e E) bool {
	added, err := u.t.Insert(e)
	return err == nil && added
}

func (u *TreeSet[E, S]) Has(e E) bool {
	return u.t.Contains(e)
}

func (u *TreeSet[E, S]) Remove(e E) bool {
	return u.t.Remove(e) == nil
}

func (u *TreeSet[E, S]) Size() uint {
	return uint(u.t.Size())
}

// Take the element at the root, which makes removal cheap.
func (u *TreeSet[E, S]) Take() (E, bool) {
	h, ok := u.t.Root()
	if !ok {
		return *new(E), false
	}
	e := u.t.Value(h)
	if err := u.t.RemoveHandle(h); err != nil {
		panic(err)
	}
	return e, true
}

func (u *TreeSet[E, S]) Range(f func(E) bool) {
	u.t.InOrder(f)
}

func (u *TreeSet[E, S]) PutAll(s Sets.Set[E]) (n uint) {
	s.Range(func(e E) bool {
		if u.Put(e) {
			n++
		}
		return true
	})
	return
}

func (u *TreeSet[E, S]) RemoveAll(s Sets.Set[E]) (n uint) {
	s.Range(func(e E) bool {
		if u.Remove(e) {
			n++
		}
		return true
	})
	return
}

func (u *TreeSet[E, S]) Eq(s Sets.Set[E]) bool {
	if s.Size() != u.Size() {
		return false
	}
	eq := true
	s.Range(func(e E) bool {
		eq = u.Has(e)
		return eq
	})
	return eq
}

func (u *TreeSet[E, S]) Union(s Sets.Set[E]) {
	u.PutAll(s)
}

func (u *TreeSet[E, S]) Intersect(s Sets.Set[E]) {
	var drop []E
	u.Range(func(e E) bool {
		if !s.Has(e) {
			drop = append(drop, e)
		}
		return true
	})
	for _, e := range drop {
		u.Remove(e)
	}
}

func (u *TreeSet[E, S]) Filter(f func(E) bool) Sets.ExtendedSet[E] {
	n, _ := New[E, S](u.c, 0)
	u.Range(func(e E) bool {
		if f(e) {
			n.Put(e)
		}
		return true
	})
	return n
}

var _ Sets.ExtendedSet[int] = (*TreeSet[int, uint])(nil)
