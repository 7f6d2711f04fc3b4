package arrayapi

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// Default builds the reference namespace backed by gonum. The dispatch core
// never executes these operations itself; they exist so fallback modules have
// a library to proxy and so owner-type hooks have executors to call.
func Default() *Namespace {
	ns := NewNamespace("arrayapi")

	mustUfunc := func(u *Ufunc) {
		if err := ns.RegisterUfunc(u); err != nil {
			panic(fmt.Sprintf("default namespace: %v", err))
		}
	}
	mustFunc := func(f *Function) {
		if err := ns.RegisterFunc(f); err != nil {
			panic(fmt.Sprintf("default namespace: %v", err))
		}
	}

	mustUfunc(&Ufunc{
		Name:   "add",
		NIn:    2,
		CallFn: binaryCall("add", func(dst, x, y []float64) { floats.AddTo(dst, x, y) }),
		ReduceFn: func(a *NDArray, _ Kwargs) (*NDArray, error) {
			return Scalar(floats.Sum(a.data)), nil
		},
		AccumulateFn: func(a *NDArray, _ Kwargs) (*NDArray, error) {
			dst := make([]float64, len(a.data))
			floats.CumSum(dst, a.data)
			return FromSlice(dst), nil
		},
		OuterFn: outerWith(func(x, y float64) float64 { return x + y }),
	})

	mustUfunc(&Ufunc{
		Name:    "subtract",
		NIn:     2,
		CallFn:  binaryCall("subtract", func(dst, x, y []float64) { floats.SubTo(dst, x, y) }),
		OuterFn: outerWith(func(x, y float64) float64 { return x - y }),
	})

	mustUfunc(&Ufunc{
		Name:   "multiply",
		NIn:    2,
		CallFn: binaryCall("multiply", func(dst, x, y []float64) { floats.MulTo(dst, x, y) }),
		ReduceFn: func(a *NDArray, _ Kwargs) (*NDArray, error) {
			return Scalar(floats.Prod(a.data)), nil
		},
		AccumulateFn: func(a *NDArray, _ Kwargs) (*NDArray, error) {
			dst := make([]float64, len(a.data))
			floats.CumProd(dst, a.data)
			return FromSlice(dst), nil
		},
		OuterFn: multiplyOuter,
	})

	mustUfunc(&Ufunc{
		Name: "maximum",
		NIn:  2,
		CallFn: binaryCall("maximum", func(dst, x, y []float64) {
			for i := range dst {
				dst[i] = math.Max(x[i], y[i])
			}
		}),
		ReduceFn: func(a *NDArray, _ Kwargs) (*NDArray, error) {
			if a.Len() == 0 {
				return nil, fmt.Errorf("maximum: reduce of empty array")
			}
			return Scalar(floats.Max(a.data)), nil
		},
		AccumulateFn: func(a *NDArray, _ Kwargs) (*NDArray, error) {
			dst := make([]float64, len(a.data))
			running := math.Inf(-1)
			for i, v := range a.data {
				running = math.Max(running, v)
				dst[i] = running
			}
			return FromSlice(dst), nil
		},
		OuterFn: outerWith(math.Max),
	})

	mustUfunc(&Ufunc{
		Name: "negative",
		NIn:  1,
		CallFn: func(args []*NDArray, _ Kwargs) (*NDArray, error) {
			dst := append([]float64(nil), args[0].data...)
			floats.Scale(-1, dst)
			return New(dst, args[0].shape...)
		},
	})

	mustFunc(NewFunction("concatenate", concatenate))
	mustFunc(NewFunction("dot", dot))
	mustFunc(NewFunction("mean", mean))
	mustFunc(NewFunction("sum", sum))

	// Present-but-unclassifiable names: constants and markers that belong to
	// the library surface but to neither dispatch protocol.
	if err := ns.RegisterOpaque("pi"); err != nil {
		panic(fmt.Sprintf("default namespace: %v", err))
	}
	if err := ns.RegisterOpaque("newaxis"); err != nil {
		panic(fmt.Sprintf("default namespace: %v", err))
	}

	return ns
}

// binaryCall lifts a same-shape slice kernel into a ufunc call executor.
func binaryCall(name string, kernel func(dst, x, y []float64)) func([]*NDArray, Kwargs) (*NDArray, error) {
	return func(args []*NDArray, _ Kwargs) (*NDArray, error) {
		x, y := args[0], args[1]
		if !sameShape(x, y) {
			return nil, fmt.Errorf("%s: shape mismatch %v vs %v", name, x.shape, y.shape)
		}
		dst := make([]float64, len(x.data))
		kernel(dst, x.data, y.data)
		return New(dst, x.shape...)
	}
}

// outerWith builds a generic pairwise outer executor for a scalar operation.
func outerWith(op func(x, y float64) float64) func(x, y *NDArray, kwargs Kwargs) (*NDArray, error) {
	return func(x, y *NDArray, _ Kwargs) (*NDArray, error) {
		r, c := x.Len(), y.Len()
		dst := make([]float64, r*c)
		for i, xv := range x.data {
			for j, yv := range y.data {
				dst[i*c+j] = op(xv, yv)
			}
		}
		return New(dst, r, c)
	}
}

// multiplyOuter uses gonum's rank-one update for the multiplicative outer
// product.
func multiplyOuter(x, y *NDArray, _ Kwargs) (*NDArray, error) {
	r, c := x.Len(), y.Len()
	m := mat.NewDense(r, c, nil)
	m.Outer(1, mat.NewVecDense(r, x.data), mat.NewVecDense(c, y.data))
	return New(append([]float64(nil), m.RawMatrix().Data...), r, c)
}

func concatenate(args []any, _ Kwargs) (any, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("concatenate: need at least one array")
	}
	var out []float64
	for _, arg := range args {
		a, err := AsArray(arg)
		if err != nil {
			return nil, fmt.Errorf("concatenate: %w", err)
		}
		out = append(out, a.data...)
	}
	return FromSlice(out), nil
}

func dot(args []any, _ Kwargs) (any, error) {
	if len(args) != 2 {
		return nil, fmt.Errorf("dot: expected 2 arrays, got %d", len(args))
	}
	x, err := AsArray(args[0])
	if err != nil {
		return nil, fmt.Errorf("dot: %w", err)
	}
	y, err := AsArray(args[1])
	if err != nil {
		return nil, fmt.Errorf("dot: %w", err)
	}
	if x.Len() != y.Len() {
		return nil, fmt.Errorf("dot: length mismatch %d vs %d", x.Len(), y.Len())
	}
	return Scalar(floats.Dot(x.data, y.data)), nil
}

func mean(args []any, _ Kwargs) (any, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("mean: expected 1 array, got %d", len(args))
	}
	a, err := AsArray(args[0])
	if err != nil {
		return nil, fmt.Errorf("mean: %w", err)
	}
	if a.Len() == 0 {
		return nil, fmt.Errorf("mean: empty array")
	}
	return Scalar(stat.Mean(a.data, nil)), nil
}

func sum(args []any, _ Kwargs) (any, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("sum: expected 1 array, got %d", len(args))
	}
	a, err := AsArray(args[0])
	if err != nil {
		return nil, fmt.Errorf("sum: %w", err)
	}
	return Scalar(floats.Sum(a.data)), nil
}
