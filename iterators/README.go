/*	Package iterators provide forward-only iterators over primitive slices.



	Summary

	An iterator goal is to decouple the facts about the origin of the data,
	to the consumer who use the data.
	Here the origin is always a contiguous, caller owned primitive slice,
	and the point of the package is that traversing it never boxes an element.
	The iterator borrows the slice for its whole lifetime,
	it never copies it and never mutates it,
	so mutating the slice from outside during iteration is visible through the iterator.

	Iterator define a separate object that encapsulates accessing and traversing an aggregate object.
	Clients use an iterator to access and traverse an aggregate without knowing its representation (data structures).
	https://en.wikipedia.org/wiki/Iterator_pattern



	Why HasNext + Next(T, error) instead of the Next() bool + Value() T convention

	The primitive accessor is the hot path of this package,
	and it must be able to report exhaustion without either boxing the element
	or handing back a zero value that is indistinguishable from data.
	Returning the element together with the error keeps a drained iterator
	loud at the exact call that over-read it,
	while HasNext stays a pure, repeatable read that callers can use to avoid the error entirely.
	Call sites that still want the generic convention can wrap the iterator with Boxed,
	and pay the boxing cost there explicitly.



	Concurrency

	A slice may be read by any number of independent iterators at the same time.
	A single iterator instance however owns a mutable cursor without any synchronization,
	sharing one instance between goroutines is a data race and not supported.
*/
package iterators
