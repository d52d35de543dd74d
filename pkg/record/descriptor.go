package record

import "fmt"

// Flag names one of the three boolean descriptor attributes.
type Flag string

const (
	Writable     Flag = "writable"
	Enumerable   Flag = "enumerable"
	Configurable Flag = "configurable"
)

// Flags lists the recognized descriptor flags in canonical order.
var Flags = []Flag{Writable, Enumerable, Configurable}

// Valid reports whether f is one of the recognized flags.
func (f Flag) Valid() bool {
	switch f {
	case Writable, Enumerable, Configurable:
		return true
	default:
		return false
	}
}

// String returns the flag name.
func (f Flag) String() string {
	return string(f)
}

// ParseFlag converts a name into a Flag. Names are matched exactly:
// "Writable" is not a flag.
func ParseFlag(s string) (Flag, error) {
	f := Flag(s)
	if !f.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownFlag, s)
	}
	return f, nil
}

// Descriptor is the value of a key together with its metadata flags.
type Descriptor struct {
	Value        any  `json:"value" yaml:"value"`
	Writable     bool `json:"writable" yaml:"writable"`
	Enumerable   bool `json:"enumerable" yaml:"enumerable"`
	Configurable bool `json:"configurable" yaml:"configurable"`
}

// Flag returns the attribute named by f. Unrecognized flags read as false.
func (d Descriptor) Flag(f Flag) bool {
	switch f {
	case Writable:
		return d.Writable
	case Enumerable:
		return d.Enumerable
	case Configurable:
		return d.Configurable
	default:
		return false
	}
}

// open is the descriptor given to keys created by plain assignment.
func open(v any) Descriptor {
	return Descriptor{Value: v, Writable: true, Enumerable: true, Configurable: true}
}

// Patch is a partial descriptor applied by DefineProperty.
// Nil flags and HasValue == false leave the current attribute untouched
// on existing keys, and default to false / nil on new keys.
type Patch struct {
	Value        any
	HasValue     bool
	Writable     *bool
	Enumerable   *bool
	Configurable *bool
}

// Bool returns a pointer to b, for building a Patch inline.
func Bool(b bool) *bool {
	return &b
}

// WithValue returns a copy of p that sets the value to v.
func (p Patch) WithValue(v any) Patch {
	p.Value = v
	p.HasValue = true
	return p
}
