package Queues

type arrStack[T any] struct {
	content []T
}

func MakeArrayStack[T any](initCap uint) Stack[T] {
	return &arrStack[T]{make([]T, 0, initCap)}
}

func (u *arrStack[T]) Empty() bool {
	return len(u.content) == 0
}

func (u *arrStack[T]) Size() uint {
	return uint(len(u.content))
}

func (u *arrStack[T]) Clear() {
	clear(u.content)
	u.content = u.content[:0]
}

func (u *arrStack[T]) Push(item T) {
	u.content = append(u.content, item)
}

func (u *arrStack[T]) Pop() (item T, ok bool) {
	if last := len(u.content) - 1; last > -1 {
		item, ok = u.content[last], true
		u.content[last] = *new(T)
		u.content = u.content[:last]
	}
	return
}

func (u *arrStack[T]) Peek() (item T, ok bool) {
	if last := len(u.content) - 1; last > -1 {
		item, ok = u.content[last], true
	}
	return
}

func (u *arrStack[T]) lifo() {}
