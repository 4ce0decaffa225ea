package ds

// Stack is a LIFO over a slice. Pop and Peek panic on an empty stack.
type Stack[T any] struct {
	slice []T
}

func NewStack[T any]() *Stack[T] {
	return &Stack[T]{
		slice: make([]T, 0),
	}
}

func (r *Stack[T]) Len() int {
	return len(r.slice)
}

func (r *Stack[T]) Push(t T) T {
	r.slice = append(r.slice, t)
	return t
}

func (r *Stack[T]) Pop() T {
	last := r.slice[r.Len()-1]
	r.slice = r.slice[:r.Len()-1]
	return last
}

func (r *Stack[T]) Peek() T {
	return r.slice[r.Len()-1]
}

// Any tells whether some item satisfies predicate, searching from the top.
func (r *Stack[T]) Any(predicate func(t T) bool) bool {
	for i := r.Len() - 1; i >= 0; i-- {
		if predicate(r.slice[i]) {
			return true
		}
	}
	return false
}

// Items returns a copy of the stack content, bottom first.
func (r *Stack[T]) Items() []T {
	return ShallowCopy(r.slice)
}
