package iterators

import (
	"go.llib.dev/primiter"
)

const (
	// ErrOutOfRange is the value that will be returned by the ranged factory
	// when the received bounds violate `0 <= fromIndex <= toIndex <= len(slice)`.
	ErrOutOfRange primiter.Error = "OutOfRange"
	// ErrExhausted is the value that will be returned by the primitive accessor
	// when it is called while no element remains.
	ErrExhausted primiter.Error = "Exhausted"
	// ErrNilConsumer is the value that will be returned by ForEachRemaining
	// when it receives no consumer to drain into.
	ErrNilConsumer primiter.Error = "NilConsumer"
)

// Break is a sentinel the consumer can return from ForEachRemaining
// to stop the drain early without reporting an error.
const Break primiter.Error = `iterators:break`
