package Sets

// Set of distinct elements. Put and Remove report whether the set changed.
// Take removes and returns an arbitrary element; the second value is false
// when the set is empty. Range stops when f returns false.
type Set[E any] interface {
	Put(E) bool
	Has(E) bool
	Remove(E) bool
	Size() uint
	Take() (E, bool)
	Range(f func(E) bool)
}

type ExtendedSet[E any] interface {
	Set[E]
	//PutAll elements of s, returning the number of elements added.
	PutAll(s Set[E]) uint
	//RemoveAll elements of s, returning the number of elements removed.
	RemoveAll(s Set[E]) uint
	//Eq reports whether both sets hold the same elements.
	Eq(s Set[E]) bool
	//Union keeps the elements in either set.
	Union(s Set[E])
	//Intersect keeps the elements in both sets.
	Intersect(s Set[E])
	//Filter returns a new set holding the elements for which f is true.
	Filter(f func(E) bool) ExtendedSet[E]
}
