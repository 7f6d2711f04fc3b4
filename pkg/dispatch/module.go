// Package dispatch decides which implementation module executes an array
// operation invoked with operands of mixed concrete types, and synthesizes
// fallback modules that route through an owner type's own dispatch hooks when
// no concrete module is registered.
//
// Resolution is cooperative: an owner that does not recognize every operand
// type answers NotApplicable rather than failing, so the next candidate can
// try. Incompatibility is a value, never an error.
package dispatch

import (
	"reflect"

	"arraymod/pkg/arrayapi"
)

// CallKind tags which form of an elementwise operation is being dispatched.
type CallKind string

const (
	KindCall       CallKind = "call"
	KindReduce     CallKind = "reduce"
	KindAccumulate CallKind = "accumulate"
	KindOuter      CallKind = "outer"
)

// State is the outcome tag of a resolution.
type State int

const (
	// NotApplicable means this owner type does not recognize every operand
	// type; another candidate should attempt resolution.
	NotApplicable State = iota

	// Resolved means a module (concrete or synthesized) is available.
	Resolved
)

func (s State) String() string {
	if s == Resolved {
		return "resolved"
	}
	return "not applicable"
}

// Resolution is the tagged outcome of one resolution attempt. Module is
// non-nil exactly when State is Resolved.
type Resolution struct {
	State  State
	Module Module
}

// deferral is the type of the NotImplemented sentinel.
type deferral struct{}

func (deferral) String() string { return "NotImplemented" }

// NotImplemented is returned by owner-type hooks to defer a call they cannot
// handle, mirroring the cooperative convention of the resolution layer.
var NotImplemented deferral

// Module is what resolution hands back: either the exact module object
// supplied at registration or a synthesized fallback bound to one owner
// instance.
type Module interface {
	// Name identifies the module for diagnostics.
	Name() string

	// Op looks up a named operation. For fallbacks the returned adapter is
	// constructed fresh on every lookup.
	Op(name string) (Operation, error)

	// Array builds a new value of the module's array type.
	Array(data []float64, shape ...int) (any, error)

	// AsArray converts an existing value into the module's array type.
	AsArray(v any) (any, error)
}

// Operation is a looked-up operation: either a *BoundUfunc or a
// *BoundFunction. Callers type-assert to reach the form they need.
type Operation interface {
	OpName() string
}

// UfuncDispatcher is the elementwise-dispatch hook an owner type must expose
// when registered without a concrete module. The hook may return the
// NotImplemented sentinel to defer.
type UfuncDispatcher interface {
	DispatchUfunc(op *arrayapi.Ufunc, kind CallKind, types []reflect.Type, args []any, kwargs arrayapi.Kwargs) (any, error)
}

// FunctionDispatcher is the function-dispatch hook for higher-level
// operations.
type FunctionDispatcher interface {
	DispatchFunction(fn *arrayapi.Function, types []reflect.Type, args []any, kwargs arrayapi.Kwargs) (any, error)
}

// NativeWrapper re-wraps a native array as the owner type. Argument coercion
// and the module-level constructors depend on it.
type NativeWrapper interface {
	WrapNative(a *arrayapi.NDArray) any
}
