package iterators

import "go.llib.dev/primiter"

// NewStub wraps an iterator into a test double
// whose individual methods can be overridden from a test,
// while the rest keep delegating to the wrapped iterator.
func NewStub[T primiter.Primitive](i Iterator[T]) *Stub[T] {
	return &Stub[T]{
		Iterator:    i,
		StubHasNext: i.HasNext,
		StubNext:    i.Next,
	}
}

type Stub[T primiter.Primitive] struct {
	Iterator    Iterator[T]
	StubHasNext func() bool
	StubNext    func() (T, error)
}

// wrapper

func (m *Stub[T]) HasNext() bool {
	return m.StubHasNext()
}

func (m *Stub[T]) Next() (T, error) {
	return m.StubNext()
}

// Reseting stubs

func (m *Stub[T]) ResetHasNext() {
	m.StubHasNext = m.Iterator.HasNext
}

func (m *Stub[T]) ResetNext() {
	m.StubNext = m.Iterator.Next
}
