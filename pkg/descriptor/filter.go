package descriptor

import "github.com/amirasaad/propdesc/pkg/record"

// KeysByDescriptor returns the own keys of r whose flag named by name is
// set, in r's key order. A name other than writable, enumerable or
// configurable matches no key.
func KeysByDescriptor(r *record.Record, name record.Flag) []string {
	props := r.Properties()
	keys := make([]string, 0, len(props))
	for _, p := range props {
		if p.Flag(name) {
			keys = append(keys, p.Key)
		}
	}
	return keys
}

// Describe lists every own key of r with its descriptor.
func Describe(r *record.Record) []record.Property {
	return r.Properties()
}
