package functions

import "go.llib.dev/primiter"

// Func maps one primitive value to a result.
type Func[T primiter.Primitive, R any] interface {
	Apply(value T) R
}

// FuncOf is a wrapper to convert standalone functions into a Func.
type FuncOf[T primiter.Primitive, R any] func(value T) R

// Apply implements the Func interface.
func (fn FuncOf[T, R]) Apply(value T) R {
	return fn(value)
}

// AndThen composes fn with next, applying next to fn's result.
// It is a package function because the extra result type parameter
// cannot be introduced on a method.
func AndThen[T primiter.Primitive, R, V any](fn Func[T, R], next func(R) V) FuncOf[T, V] {
	return func(value T) V { return next(fn.Apply(value)) }
}
