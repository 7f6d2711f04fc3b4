// Package gridarray provides Grid, an example owner type wired to the
// dispatch protocol through its hook implementations. It exists for the CLI
// demo and tests and is not part of the reusable core.
package gridarray

import (
	"fmt"
	"reflect"

	"arraymod/pkg/arrayapi"
	"arraymod/pkg/dispatch"
)

// Grid wraps a native NDArray and implements the full owner-type capability
// contract: elementwise dispatch, function dispatch, and native re-wrapping.
type Grid struct {
	native *arrayapi.NDArray
}

var (
	gridType   = reflect.TypeOf((*Grid)(nil))
	nativeType = reflect.TypeOf((*arrayapi.NDArray)(nil))
)

// Type returns the reflect identity used to register Grid.
func Type() reflect.Type { return gridType }

// New builds a Grid from data and shape.
func New(data []float64, shape ...int) (*Grid, error) {
	a, err := arrayapi.New(append([]float64(nil), data...), shape...)
	if err != nil {
		return nil, err
	}
	return &Grid{native: a}, nil
}

// FromNative wraps an existing native array.
func FromNative(a *arrayapi.NDArray) *Grid {
	return &Grid{native: a}
}

// Native exposes the underlying array, satisfying arrayapi coercion.
func (g *Grid) Native() *arrayapi.NDArray { return g.native }

// Data returns the backing slice.
func (g *Grid) Data() []float64 { return g.native.Data() }

// Shape returns the dimensions.
func (g *Grid) Shape() []int { return g.native.Shape() }

func (g *Grid) String() string {
	return fmt.Sprintf("Grid%v%v", g.native.Shape(), g.native.Data())
}

// WrapNative re-wraps a native array as a Grid.
func (g *Grid) WrapNative(a *arrayapi.NDArray) any {
	return FromNative(a)
}

// DispatchUfunc executes an elementwise operation on behalf of Grid
// operands. Unrecognized participating types defer with NotImplemented so
// another candidate can handle the call. The single-input outer form pairs
// the operand with itself.
func (g *Grid) DispatchUfunc(op *arrayapi.Ufunc, kind dispatch.CallKind, types []reflect.Type, args []any, kwargs arrayapi.Kwargs) (any, error) {
	for _, t := range types {
		if t != gridType && t != nativeType {
			return dispatch.NotImplemented, nil
		}
	}

	if len(args) == 0 {
		return nil, fmt.Errorf("grid dispatch %s: no array inputs", op.Name)
	}
	natives := make([]*arrayapi.NDArray, 0, len(args))
	for i, arg := range args {
		a, err := arrayapi.AsArray(arg)
		if err != nil {
			return nil, fmt.Errorf("grid dispatch %s: argument %d: %w", op.Name, i, err)
		}
		natives = append(natives, a)
	}

	var (
		out *arrayapi.NDArray
		err error
	)
	switch kind {
	case dispatch.KindCall:
		out, err = op.Call(natives, kwargs)
	case dispatch.KindReduce:
		out, err = op.Reduce(natives[0], kwargs)
	case dispatch.KindAccumulate:
		out, err = op.Accumulate(natives[0], kwargs)
	case dispatch.KindOuter:
		out, err = op.Outer(natives[0], natives[0], kwargs)
	default:
		return nil, fmt.Errorf("grid dispatch %s: unknown call kind %q", op.Name, kind)
	}
	if err != nil {
		return nil, err
	}
	return FromNative(out), nil
}

// DispatchFunction executes a higher-level function on behalf of Grid
// operands, re-wrapping native results as Grid.
func (g *Grid) DispatchFunction(fn *arrayapi.Function, types []reflect.Type, args []any, kwargs arrayapi.Kwargs) (any, error) {
	for _, t := range types {
		if t != gridType && t != nativeType {
			return dispatch.NotImplemented, nil
		}
	}

	out, err := fn.Call(args, kwargs)
	if err != nil {
		return nil, err
	}
	if a, ok := out.(*arrayapi.NDArray); ok {
		return FromNative(a), nil
	}
	return out, nil
}
