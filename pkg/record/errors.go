package record

import "errors"

// Common record package errors
var (
	// ErrNotWritable is returned when assigning to a key whose writable flag is false.
	ErrNotWritable = errors.New("property is not writable")

	// ErrNotExtensible is returned when adding a key to a record that no
	// longer accepts new keys.
	ErrNotExtensible = errors.New("record is not extensible")

	// ErrNotConfigurable is returned when removing or redefining a key whose
	// configurable flag is false.
	ErrNotConfigurable = errors.New("property is not configurable")

	// ErrUnknownFlag is returned by ParseFlag for names other than
	// writable, enumerable and configurable.
	ErrUnknownFlag = errors.New("unknown descriptor flag")

	// ErrNotObject is returned when decoding a document that is not a
	// JSON object or YAML mapping.
	ErrNotObject = errors.New("document is not an object")

	// ErrDuplicateKey is returned when a snapshot lists the same key twice.
	ErrDuplicateKey = errors.New("duplicate key")
)
