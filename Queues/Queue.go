package Queues

// workList is the method set shared by Queue and Stack. Pop and Peek return
// false as the second value when the list is empty, in which case the first
// value is the zero value.
type workList[T any] interface {
	Push(item T)
	Pop() (T, bool)
	Peek() (T, bool)
	Empty() bool
	Size() uint
	//Clear removes all items but keeps the allocated memory.
	Clear()
}

// Queue is a FIFO work list.
type Queue[T any] interface {
	workList[T]
	fifo()
}

// Stack is a LIFO work list.
type Stack[T any] interface {
	workList[T]
	lifo()
}

type ArrayQueue[T any] interface {
	Queue[T]
	//Shrink the underlying array to the current size.
	Shrink()
	resize(newLen uint)
}
