package iterators

import (
	"io"

	"go.llib.dev/primiter"
)

// Iterator is a one-directional, forward-only cursor over a primitive sequence.
// It is the primary, boxing-free traversal contract of the package.
type Iterator[T primiter.Primitive] interface {
	// HasNext reports whether a further element is available.
	// It is side-effect free and repeatable, it never advances the cursor.
	HasNext() bool
	// Next returns the element under the cursor and advances the cursor by one.
	// Once no element remains, Next returns the zero value of T together with ErrExhausted.
	// The exhaustion check happens before any slice access.
	Next() (T, error)
}

// Interface is the generic, boxing iteration contract.
// Interface design inspirited by https://golang.org/pkg/encoding/json/#Decoder
//
// It only exists so that primitive iterators can interoperate with call sites
// that still traverse through boxed values, by wrapping them with Boxed.
type Interface interface {
	// Closer is required to make it able to cancel iterators where resources are being used behind the scene
	// for all other cases where the underling io is handled on a higher level, it should simply return nil
	io.Closer
	// Next will ensure that Value returns the next item when executed.
	// If the next value is not retrievable, Next should return false and ensure Err() will return the error cause.
	Next() bool
	// Err return the error cause.
	Err() error
	// Value returns the current value in the iterator.
	// The action should be repeatable without side effects.
	Value() any
}
