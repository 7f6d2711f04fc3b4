package dispatch

import "reflect"

// TypeSet is an immutable set of types an owner type has declared it can
// interoperate with. It is copied at registration and never mutated after.
type TypeSet map[reflect.Type]struct{}

// NewTypeSet builds a TypeSet from the given types.
func NewTypeSet(types ...reflect.Type) TypeSet {
	s := make(TypeSet, len(types))
	for _, t := range types {
		s[t] = struct{}{}
	}
	return s
}

// Has reports membership.
func (s TypeSet) Has(t reflect.Type) bool {
	_, ok := s[t]
	return ok
}

// TypesOf returns the ordered set of distinct dynamic types appearing in
// values, preserving first-appearance order. It is built fresh per call and
// never stored.
func TypesOf(values ...any) []reflect.Type {
	seen := make(map[reflect.Type]struct{}, len(values))
	types := make([]reflect.Type, 0, len(values))
	for _, v := range values {
		t := reflect.TypeOf(v)
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		types = append(types, t)
	}
	return types
}

// Compatible decides whether every operand type is either the owner type
// itself or a declared known type. A single stranger anywhere in the set
// makes the whole call incompatible for this owner; evaluation stops at the
// first stranger, but the verdict does not depend on operand order. The
// decision is a pure function of its inputs.
func Compatible(owner reflect.Type, known TypeSet, operands []reflect.Type) bool {
	for _, t := range operands {
		if t == owner {
			continue
		}
		if known.Has(t) {
			continue
		}
		return false
	}
	return true
}
