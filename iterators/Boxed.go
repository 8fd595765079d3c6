package iterators

import "go.llib.dev/primiter"

// Boxed wraps a primitive iterator into the generic Interface,
// so call sites built around boxed iteration can keep working.
// Exhaustion surfaces there as Next reporting false with a nil Err.
//
// Deprecated: Boxed allocates an interface value for every element it yields.
// New code should traverse through Iterator[T] directly and keep the hot path unboxed.
func Boxed[T primiter.Primitive](iter Iterator[T]) *BoxedIter[T] {
	return &BoxedIter[T]{Iter: iter}
}

// BoxedIter allow you to use a primitive iterator wherever the generic Interface is expected.
type BoxedIter[T primiter.Primitive] struct {
	Iter Iterator[T]

	closed bool
	value  T
	err    error
}

func (i *BoxedIter[T]) Close() error {
	i.closed = true
	return nil
}

func (i *BoxedIter[T]) Next() bool {
	if i.closed || i.err != nil {
		return false
	}
	if !i.Iter.HasNext() {
		return false
	}
	v, err := i.Iter.Next()
	if err != nil {
		i.err = err
		return false
	}
	i.value = v
	return true
}

func (i *BoxedIter[T]) Err() error {
	return i.err
}

func (i *BoxedIter[T]) Value() any {
	return i.value
}
