package arrayapi

import (
	"fmt"
	"strings"
)

// NDArray is the native dense value of the default array library. It is the
// representation fallback adapters coerce arguments through before re-wrapping
// them as the owner type.
type NDArray struct {
	data  []float64
	shape []int
}

// Native is implemented by array-like wrapper types that can expose their
// underlying NDArray. AsArray uses it to unwrap foreign values.
type Native interface {
	Native() *NDArray
}

// New builds an NDArray from data and an explicit shape. The shape must
// account for every element.
func New(data []float64, shape ...int) (*NDArray, error) {
	if len(shape) == 0 {
		shape = []int{len(data)}
	}
	n := 1
	for _, dim := range shape {
		if dim < 0 {
			return nil, fmt.Errorf("negative dimension %d", dim)
		}
		n *= dim
	}
	if n != len(data) {
		return nil, fmt.Errorf("shape %v does not fit %d elements", shape, len(data))
	}
	return &NDArray{data: data, shape: append([]int(nil), shape...)}, nil
}

// FromSlice wraps a 1-D slice without copying.
func FromSlice(data []float64) *NDArray {
	return &NDArray{data: data, shape: []int{len(data)}}
}

// Scalar wraps a single value as a one-element array.
func Scalar(v float64) *NDArray {
	return &NDArray{data: []float64{v}, shape: []int{1}}
}

// AsArray coerces v into an NDArray. Accepted forms: *NDArray (returned
// as-is), []float64, float64, int, and any value implementing Native.
func AsArray(v any) (*NDArray, error) {
	switch x := v.(type) {
	case *NDArray:
		return x, nil
	case []float64:
		return FromSlice(x), nil
	case float64:
		return Scalar(x), nil
	case int:
		return Scalar(float64(x)), nil
	case Native:
		return x.Native(), nil
	default:
		return nil, fmt.Errorf("cannot interpret %T as an array", v)
	}
}

// Data returns the backing slice. Callers must not assume a copy.
func (a *NDArray) Data() []float64 { return a.data }

// Shape returns the dimensions of the array.
func (a *NDArray) Shape() []int { return a.shape }

// Len returns the total element count.
func (a *NDArray) Len() int { return len(a.data) }

// Clone returns a deep copy.
func (a *NDArray) Clone() *NDArray {
	return &NDArray{
		data:  append([]float64(nil), a.data...),
		shape: append([]int(nil), a.shape...),
	}
}

func (a *NDArray) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "NDArray%v%v", a.shape, a.data)
	return b.String()
}

// sameShape reports whether two arrays have identical dimensions.
func sameShape(a, b *NDArray) bool {
	if len(a.shape) != len(b.shape) {
		return false
	}
	for i := range a.shape {
		if a.shape[i] != b.shape[i] {
			return false
		}
	}
	return true
}
