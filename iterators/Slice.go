package iterators

import "go.llib.dev/primiter"

// Of returns an iterator over every element of slice.
// A nil or zero length slice collapses to Empty,
// otherwise it is equivalent to OfRange(slice, 0, len(slice)).
func Of[T primiter.Primitive](slice []T) Iterator[T] {
	if len(slice) == 0 {
		return Empty[T]()
	}
	return &SliceIter[T]{slice: slice, cursor: 0, end: len(slice)}
}

// OfRange returns an iterator over slice[fromIndex:toIndex].
//
// The bounds are validated before anything is constructed:
// unless `0 <= fromIndex <= toIndex <= len(slice)` holds, OfRange returns ErrOutOfRange
// and no iterator, a nil slice counts as length zero.
// Only when both bounds are valid and equal does it collapse to Empty,
// an out of range endpoint is never silently turned into an empty iterator.
//
// The returned iterator borrows the slice, it never takes a defensive copy.
// Mutating the slice while iterating is visible through the iterator.
func OfRange[T primiter.Primitive](slice []T, fromIndex, toIndex int) (Iterator[T], error) {
	if fromIndex < 0 || toIndex < fromIndex || len(slice) < toIndex {
		return nil, ErrOutOfRange
	}
	if fromIndex == toIndex {
		return Empty[T](), nil
	}
	return &SliceIter[T]{slice: slice, cursor: fromIndex, end: toIndex}, nil
}

// SliceIter is a live cursor over a caller owned primitive slice.
// Invariant: 0 <= cursor <= end <= len(slice), and cursor never decreases.
// Once cursor reaches end the iterator is permanently exhausted,
// there is no rewind or reuse.
//
// The cursor has no synchronization on purpose;
// a single SliceIter must not be shared between goroutines.
type SliceIter[T primiter.Primitive] struct {
	slice  []T
	cursor int
	end    int
}

func (i *SliceIter[T]) HasNext() bool {
	return i.cursor < i.end
}

func (i *SliceIter[T]) Next() (T, error) {
	if !i.HasNext() {
		var v T
		return v, ErrExhausted
	}
	v := i.slice[i.cursor]
	i.cursor++
	return v, nil
}
