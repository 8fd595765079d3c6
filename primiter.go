// Package primiter provides iterators over primitive slices that avoid boxing,
// together with the primitive typed functional contracts the iterators consume.
//
// The traversal contract is implemented once as a generic type over the Primitive
// type set and monomorphized per scalar kind at build time,
// so every primitive kind shares the exact same behaviour and edge-case policy,
// instead of maintaining a hand written copy per kind that could drift apart.
package primiter

// Primitive is the scalar kind set of the library.
// Everything in this module that is generic over an element type
// constrains that type to Primitive,
// which keeps the traversal free of interface boxing by construction.
type Primitive interface {
	~bool |
		~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}
