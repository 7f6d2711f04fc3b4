package dispatch

import (
	"reflect"

	"arraymod/pkg/arrayapi"
)

// BoundFunction adapts one higher-level function to one owner instance.
// Delegation is unconditional: arguments pass through unchanged and no arity
// checking happens here.
type BoundFunction struct {
	fn    *arrayapi.Function
	types []reflect.Type
	hook  FunctionDispatcher
}

func newBoundFunction(fn *arrayapi.Function, ownerType reflect.Type, hook FunctionDispatcher) *BoundFunction {
	return &BoundFunction{
		fn:    fn,
		types: []reflect.Type{ownerType},
		hook:  hook,
	}
}

// OpName returns the function name.
func (b *BoundFunction) OpName() string { return b.fn.Name }

// Call forwards the function reference, the owner's one-element type tuple,
// and the original arguments to the captured function-dispatch hook.
func (b *BoundFunction) Call(args []any, kwargs arrayapi.Kwargs) (any, error) {
	return b.hook.DispatchFunction(b.fn, b.types, args, kwargs)
}
