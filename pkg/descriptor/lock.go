package descriptor

import "github.com/amirasaad/propdesc/pkg/record"

// WithLockedKey returns a shallow copy of r in which key is read-only.
//
// If key is copied from r it keeps its value and stays enumerable and
// configurable. Otherwise it is added with a nil value, enumerable and
// configurable, and read-only by default.
func WithLockedKey(r *record.Record, key string) *record.Record {
	c := r.Assign()
	var p record.Patch
	if c.Has(key) {
		p = record.Patch{Writable: record.Bool(false)}
	} else {
		p = record.Patch{
			Enumerable:   record.Bool(true),
			Configurable: record.Bool(true),
		}.WithValue(nil)
	}
	// c is a fresh extensible copy whose keys are all configurable, so
	// neither patch can be rejected.
	_ = c.DefineProperty(key, p)
	return c
}
