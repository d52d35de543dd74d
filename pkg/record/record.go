// Package record provides an ordered key/value record whose keys carry
// property descriptors.
//
// Every own key has a value and three flags:
//   - writable: the value may be reassigned.
//   - enumerable: the key is listed by default iteration and encoding.
//   - configurable: the flags may change and the key may be removed.
//
// A record is also extensible or not. Seal and Freeze build on
// PreventExtensions; the predicates IsExtensible, IsSealed and IsFrozen
// observe the three levels independently.
package record

import (
	"fmt"
	"math"
	"reflect"
	"slices"
	"strings"
	"sync"
)

// Entry is a key/value pair used to build an open record.
type Entry struct {
	Key   string
	Value any
}

// Property is a key together with its descriptor.
type Property struct {
	Key string `json:"key" yaml:"key"`
	Descriptor `yaml:",inline"`
}

// Record is an ordered mapping from string keys to descriptors.
// Own-key order is insertion order. Redefining a key keeps its position.
// The zero value is an empty, extensible record ready to use.
//
// All exported methods are safe for concurrent access.
type Record struct {
	keys          []string
	props         map[string]Descriptor
	nonExtensible bool
	mu            sync.RWMutex
}

// New returns an extensible record holding entries in order. Every key is
// writable, enumerable and configurable. A repeated key overwrites the
// earlier value in place.
func New(entries ...Entry) *Record {
	r := &Record{
		keys:  make([]string, 0, len(entries)),
		props: make(map[string]Descriptor, len(entries)),
	}
	for _, e := range entries {
		r.put(e.Key, open(e.Value))
	}
	return r
}

// put stores d under key, appending key to the order if it is new.
// Callers must hold the write lock (or own r exclusively).
func (r *Record) put(key string, d Descriptor) {
	if r.props == nil {
		r.props = make(map[string]Descriptor)
	}
	if _, ok := r.props[key]; !ok {
		r.keys = append(r.keys, key)
	}
	r.props[key] = d
}

// Len returns the number of own keys.
func (r *Record) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.keys)
}

// Keys returns every own key, enumerable or not, in insertion order.
func (r *Record) Keys() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.keys)
}

// EnumerableKeys returns the own keys whose enumerable flag is set.
func (r *Record) EnumerableKeys() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.keys))
	for _, k := range r.keys {
		if r.props[k].Enumerable {
			out = append(out, k)
		}
	}
	return out
}

// Has reports whether key is an own key of the record.
func (r *Record) Has(key string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.props[key]
	return ok
}

// Get returns the value stored under key.
func (r *Record) Get(key string) (any, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.props[key]
	return d.Value, ok
}

// Descriptor returns a copy of the descriptor of key.
func (r *Record) Descriptor(key string) (Descriptor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.props[key]
	return d, ok
}

// Properties returns every own key with its descriptor, in order.
func (r *Record) Properties() []Property {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Property, 0, len(r.keys))
	for _, k := range r.keys {
		out = append(out, Property{Key: k, Descriptor: r.props[k]})
	}
	return out
}

// Set assigns v to key. It fails with ErrNotWritable if key exists and is
// read-only, and with ErrNotExtensible if key is new and the record does
// not accept new keys. New keys are writable, enumerable and configurable.
func (r *Record) Set(key string, v any) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if d, ok := r.props[key]; ok {
		if !d.Writable {
			return fmt.Errorf("%w: %q", ErrNotWritable, key)
		}
		d.Value = v
		r.props[key] = d
		return nil
	}
	if r.nonExtensible {
		return fmt.Errorf("%w: cannot add %q", ErrNotExtensible, key)
	}
	r.put(key, open(v))
	return nil
}

// TrySet is the non-strict form of Set: a rejected assignment is silently
// ignored and reported as false.
func (r *Record) TrySet(key string, v any) bool {
	return r.Set(key, v) == nil
}

// DefineProperty creates key or updates its descriptor from p.
//
// For a new key, fields missing from p default to false (flags) and nil
// (value). For an existing key they keep their current state. A
// non-configurable key only accepts patches that keep configurable and
// enumerable as they are and, when it is read-only, keep it read-only
// with the same value. Clearing writable is always allowed.
func (r *Record) DefineProperty(key string, p Patch) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cur, ok := r.props[key]
	if !ok {
		if r.nonExtensible {
			return fmt.Errorf("%w: cannot define %q", ErrNotExtensible, key)
		}
		d := Descriptor{}
		apply(&d, p)
		r.put(key, d)
		return nil
	}

	if !cur.Configurable {
		if err := checkFrozenPatch(key, cur, p); err != nil {
			return err
		}
	}
	apply(&cur, p)
	r.props[key] = cur
	return nil
}

func apply(d *Descriptor, p Patch) {
	if p.HasValue {
		d.Value = p.Value
	}
	if p.Writable != nil {
		d.Writable = *p.Writable
	}
	if p.Enumerable != nil {
		d.Enumerable = *p.Enumerable
	}
	if p.Configurable != nil {
		d.Configurable = *p.Configurable
	}
}

// checkFrozenPatch validates p against a non-configurable descriptor.
func checkFrozenPatch(key string, cur Descriptor, p Patch) error {
	if p.Configurable != nil && *p.Configurable {
		return fmt.Errorf("%w: %q cannot become configurable", ErrNotConfigurable, key)
	}
	if p.Enumerable != nil && *p.Enumerable != cur.Enumerable {
		return fmt.Errorf("%w: %q cannot change enumerable", ErrNotConfigurable, key)
	}
	if cur.Writable {
		return nil
	}
	if p.Writable != nil && *p.Writable {
		return fmt.Errorf("%w: %q cannot become writable", ErrNotConfigurable, key)
	}
	if p.HasValue && !sameValue(cur.Value, p.Value) {
		return fmt.Errorf("%w: %q cannot change value", ErrNotConfigurable, key)
	}
	return nil
}

// sameValue treats NaN as equal to itself and otherwise compares deeply.
func sameValue(a, b any) bool {
	fa, aok := a.(float64)
	fb, bok := b.(float64)
	if aok && bok && math.IsNaN(fa) && math.IsNaN(fb) {
		return true
	}
	return reflect.DeepEqual(a, b)
}

// Delete removes key. Deleting a missing key succeeds.
func (r *Record) Delete(key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	d, ok := r.props[key]
	if !ok {
		return nil
	}
	if !d.Configurable {
		return fmt.Errorf("%w: cannot delete %q", ErrNotConfigurable, key)
	}
	delete(r.props, key)
	r.keys = slices.DeleteFunc(r.keys, func(k string) bool { return k == key })
	return nil
}

// TryDelete is the non-strict form of Delete.
func (r *Record) TryDelete(key string) bool {
	return r.Delete(key) == nil
}

// PreventExtensions stops the record from accepting new keys.
func (r *Record) PreventExtensions() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nonExtensible = true
}

// Seal prevents extensions and marks every own key non-configurable.
// Writable values may still change.
func (r *Record) Seal() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nonExtensible = true
	for k, d := range r.props {
		d.Configurable = false
		r.props[k] = d
	}
}

// Freeze seals the record and marks every own key read-only.
func (r *Record) Freeze() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nonExtensible = true
	for k, d := range r.props {
		d.Configurable = false
		d.Writable = false
		r.props[k] = d
	}
}

// IsExtensible reports whether new keys may be added.
func (r *Record) IsExtensible() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return !r.nonExtensible
}

// IsSealed reports whether the record is non-extensible and every own key
// is non-configurable. An empty non-extensible record is sealed.
func (r *Record) IsSealed() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if !r.nonExtensible {
		return false
	}
	for _, d := range r.props {
		if d.Configurable {
			return false
		}
	}
	return true
}

// IsFrozen reports whether the record is sealed and every own key is
// read-only.
func (r *Record) IsFrozen() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if !r.nonExtensible {
		return false
	}
	for _, d := range r.props {
		if d.Configurable || d.Writable {
			return false
		}
	}
	return true
}

// Assign returns a shallow copy holding the receiver's own enumerable keys
// and their current values. The copy is extensible and every copied key is
// writable, enumerable and configurable, whatever its flags were on the
// receiver.
func (r *Record) Assign() *Record {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c := New()
	for _, k := range r.keys {
		d := r.props[k]
		if !d.Enumerable {
			continue
		}
		c.put(k, open(d.Value))
	}
	return c
}

// String renders the enumerable keys as {a: 1, b: 2}.
func (r *Record) String() string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var b strings.Builder
	b.WriteByte('{')
	first := true
	for _, k := range r.keys {
		d := r.props[k]
		if !d.Enumerable {
			continue
		}
		if !first {
			b.WriteString(", ")
		}
		first = false
		fmt.Fprintf(&b, "%s: %v", k, formatValue(d.Value))
	}
	b.WriteByte('}')
	return b.String()
}

func formatValue(v any) any {
	switch t := v.(type) {
	case nil:
		return "null"
	case string:
		return fmt.Sprintf("%q", t)
	default:
		return v
	}
}
