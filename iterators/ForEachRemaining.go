package iterators

import (
	"go.llib.dev/primiter"
	"go.llib.dev/primiter/functions"
)

// ForEachRemaining drains the iterator,
// handing every remaining element to the consumer once, in cursor order,
// and leaves the iterator exhausted.
// Running it on an already exhausted iterator visits nothing.
//
// A nil consumer fails with ErrNilConsumer before any element is consumed.
// When the consumer fails, the drain stops at once and the consumer's error is returned;
// elements consumed up to that point stay consumed (partial drain, not transactional).
// A consumer returning Break stops the drain the same way, but without an error.
func ForEachRemaining[T primiter.Primitive](i Iterator[T], c functions.Consumer[T]) error {
	if c == nil {
		return ErrNilConsumer
	}

	for i.HasNext() {
		v, err := i.Next()
		if err != nil {
			return err
		}

		if err := c.Accept(v); err != nil {
			if err == Break {
				break
			}
			return err
		}
	}

	return nil
}
