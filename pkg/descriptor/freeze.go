package descriptor

import "github.com/amirasaad/propdesc/pkg/record"

// FreezeLevel is the strongest immutability level a record satisfies.
type FreezeLevel string

const (
	LevelOpen          FreezeLevel = "open"
	LevelNonExtensible FreezeLevel = "non-extensible"
	LevelSealed        FreezeLevel = "sealed"
	LevelFrozen        FreezeLevel = "frozen"
)

// IsAnyFrozen reports whether r is non-extensible, sealed or frozen.
// Sealed and frozen both imply non-extensible; all three are checked to
// mirror the levels a caller may have applied.
func IsAnyFrozen(r *record.Record) bool {
	return !r.IsExtensible() || r.IsSealed() || r.IsFrozen()
}

// Level returns the strongest immutability level r satisfies.
func Level(r *record.Record) FreezeLevel {
	switch {
	case r.IsFrozen():
		return LevelFrozen
	case r.IsSealed():
		return LevelSealed
	case !r.IsExtensible():
		return LevelNonExtensible
	default:
		return LevelOpen
	}
}

// FrozenCopy returns a frozen shallow copy of r's own enumerable keys.
// Values that are themselves records keep their own mutability.
func FrozenCopy(r *record.Record) *record.Record {
	c := r.Assign()
	c.Freeze()
	return c
}
