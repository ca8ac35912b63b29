package Trees

// Tree represents an ordered set of elements implemented using nodes.
// Receivers that has a bool as a second return value indicates whether
// the first return value is defined. For example, if calling Minimum on
// an empty tree, the return value will be (x T, false bool). In this
// case the value of x is the zero value of T and shouldn't be used.
// Methods implemented recursively should be noted, otherwise functions are
// implemented iteratively.
type Tree[T any, S any] interface {
	//Insert v to the Tree. Inserting an element that is already in the Tree
	//is a successful no-op reported by added==false.
	Insert(v T) (added bool, err error)
	//Remove v from the Tree. Returns an error equal to ErrNotFound if v isn't in the Tree.
	Remove(v T) error
	//Contains element v.
	Contains(v T) bool
	//Minimum element of the tree.
	Minimum() (T, bool)
	//Maximum element of the tree.
	Maximum() (T, bool)
	//Size of the tree.
	Size() S
	//InOrder calls f on the elements in ascending order until f returns false.
	InOrder(f func(T) bool)
	//PreOrder returns a closure function f acting like an iterator. f
	//gives elements in the pre-order traversal of the tree.
	//Calling f is like calling "Next()" of iterators: val, valid=f()
	//val is meaningful only if valid is true. When valid==false,
	//then f is exhausted. valid can't turn true after it first became false.
	//The tree must not be modified during the iteration of f.
	PreOrder() func() (T, bool)
	//Corrupt returns whether the tree has corrupt structures, when the value
	//at some node violates the ordering, a child doesn't link back to its
	//parent, or the size counter disagrees with the reachable nodes.
	Corrupt() bool
}

// Inspector is the read-only view used by renderers to walk a tree without
// modifying it. H is an opaque node handle.
type Inspector[H any] interface {
	Root() (H, bool)
	Left(H) (H, bool)
	Right(H) (H, bool)
	Label(H) string
}

// Comparer is implemented by element types that have a natural total order.
// a.Compare(b) is negative when a<b, zero when a==b, positive when a>b.
type Comparer[T any] interface {
	Compare(other T) int
}
