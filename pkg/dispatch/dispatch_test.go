package dispatch

import (
	"fmt"
	"reflect"

	"arraymod/pkg/arrayapi"
)

// recordedCall captures one hook invocation for assertions.
type recordedCall struct {
	op     string
	kind   CallKind
	types  []reflect.Type
	args   []any
	kwargs arrayapi.Kwargs
}

// stubArray implements the full owner-type capability contract and records
// every hook invocation.
type stubArray struct {
	native  *arrayapi.NDArray
	calls   []recordedCall
	fnCalls []recordedCall
}

func newStub(data ...float64) *stubArray {
	return &stubArray{native: arrayapi.FromSlice(data)}
}

func (s *stubArray) Native() *arrayapi.NDArray { return s.native }

func (s *stubArray) WrapNative(a *arrayapi.NDArray) any {
	return &stubArray{native: a}
}

func (s *stubArray) DispatchUfunc(op *arrayapi.Ufunc, kind CallKind, types []reflect.Type, args []any, kwargs arrayapi.Kwargs) (any, error) {
	s.calls = append(s.calls, recordedCall{op: op.Name, kind: kind, types: types, args: args, kwargs: kwargs})
	return s, nil
}

func (s *stubArray) DispatchFunction(fn *arrayapi.Function, types []reflect.Type, args []any, kwargs arrayapi.Kwargs) (any, error) {
	s.fnCalls = append(s.fnCalls, recordedCall{op: fn.Name, types: types, args: args, kwargs: kwargs})
	return s, nil
}

// knownArray is a declared-compatible companion type with no hooks of its own.
type knownArray struct{}

// strangerArray is never registered or declared known.
type strangerArray struct{}

// bareArray has no hooks, for CONFIGURATION failure tests.
type bareArray struct{}

// staticModule is an explicit concrete module for identity tests.
type staticModule struct {
	name string
}

func (m *staticModule) Name() string { return m.name }

func (m *staticModule) Op(name string) (Operation, error) {
	return nil, fmt.Errorf("%w: %q", ErrUnknownOperation, name)
}

func (m *staticModule) Array(data []float64, shape ...int) (any, error) {
	return arrayapi.New(data, shape...)
}

func (m *staticModule) AsArray(v any) (any, error) {
	return arrayapi.AsArray(v)
}

var (
	stubType     = reflect.TypeOf((*stubArray)(nil))
	knownType    = reflect.TypeOf(knownArray{})
	strangerType = reflect.TypeOf(strangerArray{})
	bareType     = reflect.TypeOf(bareArray{})
)
