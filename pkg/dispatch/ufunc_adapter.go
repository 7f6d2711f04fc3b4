package dispatch

import (
	"fmt"
	"reflect"

	"arraymod/pkg/arrayapi"
)

// BoundUfunc adapts one elementwise operation to one owner instance. The
// owner's elementwise-dispatch hook is captured once at construction and
// serves all four call forms. The adapter performs no post-processing: each
// form returns exactly what the hook returns.
type BoundUfunc struct {
	ufunc *arrayapi.Ufunc
	types []reflect.Type
	hook  UfuncDispatcher
	wrap  NativeWrapper
}

func newBoundUfunc(u *arrayapi.Ufunc, ownerType reflect.Type, hook UfuncDispatcher, wrap NativeWrapper) *BoundUfunc {
	return &BoundUfunc{
		ufunc: u,
		types: []reflect.Type{ownerType},
		hook:  hook,
		wrap:  wrap,
	}
}

// OpName returns the operation name.
func (b *BoundUfunc) OpName() string { return b.ufunc.Name }

// prepareArgs validates the input count and coerces each argument: first to
// the default library's native form, then re-wrapped as the owner type. Only
// array inputs are accepted as positional arguments to elementwise forms.
func (b *BoundUfunc) prepareArgs(args []any, nin int) ([]any, error) {
	if len(args) != nin {
		return nil, fmt.Errorf("%w: %s expects %d array input(s), got %d",
			ErrArity, b.ufunc.Name, nin, len(args))
	}
	coerced := make([]any, 0, len(args))
	for i, arg := range args {
		native, err := arrayapi.AsArray(arg)
		if err != nil {
			return nil, fmt.Errorf("%s: argument %d: %w", b.ufunc.Name, i, err)
		}
		coerced = append(coerced, b.wrap.WrapNative(native))
	}
	return coerced, nil
}

// Call dispatches the default form; the input count must match the
// operation's declared arity.
func (b *BoundUfunc) Call(args []any, kwargs arrayapi.Kwargs) (any, error) {
	coerced, err := b.prepareArgs(args, b.ufunc.NIn)
	if err != nil {
		return nil, err
	}
	return b.hook.DispatchUfunc(b.ufunc, KindCall, b.types, coerced, kwargs)
}

// Reduce dispatches the reduce form over a single array input.
func (b *BoundUfunc) Reduce(args []any, kwargs arrayapi.Kwargs) (any, error) {
	coerced, err := b.prepareArgs(args, 1)
	if err != nil {
		return nil, err
	}
	return b.hook.DispatchUfunc(b.ufunc, KindReduce, b.types, coerced, kwargs)
}

// Accumulate dispatches the accumulate form over a single array input.
func (b *BoundUfunc) Accumulate(args []any, kwargs arrayapi.Kwargs) (any, error) {
	coerced, err := b.prepareArgs(args, 1)
	if err != nil {
		return nil, err
	}
	return b.hook.DispatchUfunc(b.ufunc, KindAccumulate, b.types, coerced, kwargs)
}

// Outer dispatches the outer form over a single array input.
func (b *BoundUfunc) Outer(args []any, kwargs arrayapi.Kwargs) (any, error) {
	coerced, err := b.prepareArgs(args, 1)
	if err != nil {
		return nil, err
	}
	return b.hook.DispatchUfunc(b.ufunc, KindOuter, b.types, coerced, kwargs)
}
