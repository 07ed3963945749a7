package thermocouple

import (
	"sort"
	"strings"
)

// Registry resolves type codes to their immutable Thermocouple models.
//
// The models themselves are package-level constants in all but name:
// built once from static NIST tables, never mutated.  A Registry is
// therefore cheap to construct, idempotent (two registries hand out the
// same model values) and safe for concurrent use without locking.
// Construct one explicitly and pass it where needed; there is no hidden
// process-wide instance.
type Registry struct {
	types map[TypeCode]*Thermocouple
}

// NewRegistry builds a registry over the eight letter-designated types.
func NewRegistry() *Registry {
	return &Registry{types: map[TypeCode]*Thermocouple{
		TypeB: typeB,
		TypeE: typeE,
		TypeJ: typeJ,
		TypeK: typeK,
		TypeN: typeN,
		TypeR: typeR,
		TypeS: typeS,
		TypeT: typeT,
	}}
}

// Get returns the model for a type code, case-insensitively.
//
// Errors:
//   - *UnknownTypeError (wraps ErrUnknownType) — code is not one of the
//     eight supported letters.
func (r *Registry) Get(code string) (*Thermocouple, error) {
	tc, ok := r.types[TypeCode(strings.ToUpper(code))]
	if !ok {
		return nil, &UnknownTypeError{Code: code}
	}

	return tc, nil
}

// Types returns the supported type codes in alphabetical order.
func (r *Registry) Types() []TypeCode {
	codes := make([]TypeCode, 0, len(r.types))
	for c := range r.types {
		codes = append(codes, c)
	}
	sort.Slice(codes, func(i, j int) bool { return codes[i] < codes[j] })

	return codes
}
