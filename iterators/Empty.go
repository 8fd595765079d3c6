package iterators

import "go.llib.dev/primiter"

// Empty iterator is used to represent nil result with Null object pattern.
// EmptyIter carries no state at all, so every Empty call of a given kind
// yields the runtime's shared zero-size value; there is no allocation
// and the returned iterator is safe to hand out between call sites.
func Empty[T primiter.Primitive]() *EmptyIter[T] {
	return &EmptyIter[T]{}
}

// EmptyIter iterator can help achieve Null Object Pattern when no value is logically expected and iterator should be returned.
// It is permanently exhausted and holds no slice reference.
type EmptyIter[T primiter.Primitive] struct{}

func (i *EmptyIter[T]) HasNext() bool {
	return false
}

func (i *EmptyIter[T]) Next() (T, error) {
	var v T
	return v, ErrExhausted
}
