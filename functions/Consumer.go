// Package functions holds the primitive typed functional contracts of the module:
// single method interfaces over one primitive value,
// each paired with a func adapter and its pure composition helpers.
package functions

import "go.llib.dev/primiter"

// Consumer is a scope isolation boundary for receiving primitive values one by one.
// It is the callback shape the bulk traversal operations of this module drain into.
//
// Scope:
//	receive primitive values, that will be used by the creator of the Consumer
//
// A non-nil error returned from Accept aborts whatever traversal feeds the consumer.
type Consumer[T primiter.Primitive] interface {
	Accept(value T) error
}

// ConsumerFunc is a wrapper to convert standalone functions into a consumer.
type ConsumerFunc[T primiter.Primitive] func(value T) error

// Accept implements the Consumer interface.
func (fn ConsumerFunc[T]) Accept(value T) error {
	return fn(value)
}

// AndThen returns a consumer that hands the value to fn first and then to next.
// The first failure wins, next is not called after it.
func (fn ConsumerFunc[T]) AndThen(next Consumer[T]) ConsumerFunc[T] {
	return func(value T) error {
		if err := fn(value); err != nil {
			return err
		}
		return next.Accept(value)
	}
}
