package dispatch

import (
	"reflect"
	"testing"
)

func TestCompatible(t *testing.T) {
	known := NewTypeSet(knownType)

	tests := []struct {
		name     string
		operands []reflect.Type
		want     bool
	}{
		{"owner only", []reflect.Type{stubType}, true},
		{"owner and known", []reflect.Type{stubType, knownType}, true},
		{"known and owner reversed", []reflect.Type{knownType, stubType}, true},
		{"known only", []reflect.Type{knownType}, true},
		{"empty operand set", nil, true},
		{"stranger alone", []reflect.Type{strangerType}, false},
		{"stranger first", []reflect.Type{strangerType, stubType, knownType}, false},
		{"stranger middle", []reflect.Type{stubType, strangerType, knownType}, false},
		{"stranger last", []reflect.Type{stubType, knownType, strangerType}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Compatible(stubType, known, tt.operands)
			if got != tt.want {
				t.Errorf("Compatible() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCompatibleIsPure(t *testing.T) {
	known := NewTypeSet(knownType)
	operands := []reflect.Type{stubType, knownType, strangerType}

	first := Compatible(stubType, known, operands)
	for i := 0; i < 10; i++ {
		if got := Compatible(stubType, known, operands); got != first {
			t.Fatalf("verdict changed on repeat call %d: %v != %v", i, got, first)
		}
	}
}

func TestCompatibleEmptyKnownSet(t *testing.T) {
	if !Compatible(stubType, nil, []reflect.Type{stubType}) {
		t.Error("owner type alone should be compatible with empty known set")
	}
	if Compatible(stubType, nil, []reflect.Type{stubType, knownType}) {
		t.Error("any second type should be incompatible with empty known set")
	}
}

func TestTypesOf(t *testing.T) {
	a := newStub(1)
	b := newStub(2)
	k := knownArray{}

	types := TypesOf(a, k, b, k)
	want := []reflect.Type{stubType, knownType}
	if !reflect.DeepEqual(types, want) {
		t.Errorf("TypesOf() = %v, want %v", types, want)
	}
}

func TestTypesOfPreservesOrder(t *testing.T) {
	types := TypesOf(knownArray{}, newStub(1), strangerArray{})
	want := []reflect.Type{knownType, stubType, strangerType}
	if !reflect.DeepEqual(types, want) {
		t.Errorf("TypesOf() = %v, want %v", types, want)
	}
}

func TestTypeSetHas(t *testing.T) {
	s := NewTypeSet(stubType, knownType)
	if !s.Has(stubType) || !s.Has(knownType) {
		t.Error("expected declared types to be members")
	}
	if s.Has(strangerType) {
		t.Error("stranger type should not be a member")
	}
}
