package main

import (
	"fmt"
	"reflect"

	"github.com/spf13/cobra"

	"arraymod/pkg/arrayapi"
	"arraymod/pkg/dispatch"
	"arraymod/pkg/gridarray"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run a mixed-type dispatch scenario end to end",
	RunE:  runDemo,
}

func runDemo(cmd *cobra.Command, args []string) error {
	ns := arrayapi.Default()
	reg := dispatch.NewRegistry(ns, dispatch.WithLogger(logger))

	// Grid interoperates with the library's native arrays.
	known := []reflect.Type{reflect.TypeOf((*arrayapi.NDArray)(nil))}
	if err := reg.Register(gridarray.Type(), known, nil); err != nil {
		return err
	}

	size := cfg.Demo.Size
	xs := make([]float64, size)
	ys := make([]float64, size)
	for i := 0; i < size; i++ {
		xs[i] = float64(i + 1)
		ys[i] = float64((i + 1) * 10)
	}

	x, err := gridarray.New(xs)
	if err != nil {
		return err
	}
	y, err := gridarray.New(ys)
	if err != nil {
		return err
	}

	res, err := reg.ResolveFirst(x, y)
	if err != nil {
		return err
	}
	if res.State != dispatch.Resolved {
		return fmt.Errorf("no candidate could resolve the operand types")
	}
	fmt.Printf("resolved module: %s\n", res.Module.Name())

	add, err := res.Module.Op("add")
	if err != nil {
		return err
	}
	ufunc, ok := add.(*dispatch.BoundUfunc)
	if !ok {
		return fmt.Errorf("add resolved to %T, expected an elementwise adapter", add)
	}

	sum, err := ufunc.Call([]any{x, y}, nil)
	if err != nil {
		return err
	}
	fmt.Printf("add(%v, %v) = %v\n", x, y, sum)

	total, err := ufunc.Reduce([]any{x}, nil)
	if err != nil {
		return err
	}
	fmt.Printf("add.reduce(%v) = %v\n", x, total)

	running, err := ufunc.Accumulate([]any{x}, nil)
	if err != nil {
		return err
	}
	fmt.Printf("add.accumulate(%v) = %v\n", x, running)

	meanOp, err := res.Module.Op("mean")
	if err != nil {
		return err
	}
	fn, ok := meanOp.(*dispatch.BoundFunction)
	if !ok {
		return fmt.Errorf("mean resolved to %T, expected a function adapter", meanOp)
	}
	avg, err := fn.Call([]any{x}, nil)
	if err != nil {
		return err
	}
	fmt.Printf("mean(%v) = %v\n", x, avg)

	fromModule, err := res.Module.Array([]float64{3, 1, 4, 1, 5})
	if err != nil {
		return err
	}
	fmt.Printf("module.Array(...) = %v (%T)\n", fromModule, fromModule)

	return nil
}
