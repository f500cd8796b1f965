// Package scope provides generic scope functions: helpers that run a closure
// against a value or an object inline and hand back something useful.
//
// Two families exist. Value variants give the closure a private copy of the
// subject, so the caller's binding never changes. Reference variants give the
// closure the live *T, so its mutations are seen by every holder of the pointer.
//
// Key operations:
// - With/WithCopied: run a closure on a copy, return its result
// - WithObject: run a closure on a live object, return its result
// - Of/OfSlice/OfMap/OfCloner/OfDeep: wrap a value with a Copier
// - Let, Value.Also, Value.TakeIf: method-style calls on a copy
// - RefOf, LetRef, Ref.Also, Ref.TakeIf: method-style calls on a live object
// - Try*: the same operations for closures that return an error
//
// Errors and panics raised by a closure reach the caller unchanged.
// Nothing here is synchronized; guard shared objects yourself.
package scope
