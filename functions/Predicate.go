package functions

import "go.llib.dev/primiter"

// Predicate answers a boolean question about a single primitive value.
type Predicate[T primiter.Primitive] interface {
	Test(value T) bool
}

// PredicateFunc is a wrapper to convert standalone functions into a predicate.
type PredicateFunc[T primiter.Primitive] func(value T) bool

// Test implements the Predicate interface.
func (fn PredicateFunc[T]) Test(value T) bool {
	return fn(value)
}

// And returns a short-circuiting conjunction of fn and oth;
// oth is not evaluated when fn already failed the value.
func (fn PredicateFunc[T]) And(oth Predicate[T]) PredicateFunc[T] {
	return func(value T) bool { return fn(value) && oth.Test(value) }
}

// Or returns a short-circuiting disjunction of fn and oth;
// oth is not evaluated when fn already accepted the value.
func (fn PredicateFunc[T]) Or(oth Predicate[T]) PredicateFunc[T] {
	return func(value T) bool { return fn(value) || oth.Test(value) }
}

// Negate returns the logical negation of fn.
func (fn PredicateFunc[T]) Negate() PredicateFunc[T] {
	return func(value T) bool { return !fn(value) }
}
