// Package descriptor implements helpers that inspect and restrict the
// property descriptors of a record.
//
// None of the helpers modify their input. WithLockedKey and FrozenCopy
// return new records built from a shallow copy of the input.
package descriptor
