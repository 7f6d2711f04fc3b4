package arrayapi

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNewShapeValidation(t *testing.T) {
	tests := []struct {
		name    string
		data    []float64
		shape   []int
		wantErr bool
	}{
		{"implicit 1-D", []float64{1, 2, 3}, nil, false},
		{"explicit 1-D", []float64{1, 2, 3}, []int{3}, false},
		{"2-D", []float64{1, 2, 3, 4, 5, 6}, []int{2, 3}, false},
		{"shape too small", []float64{1, 2, 3}, []int{2}, true},
		{"shape too big", []float64{1, 2}, []int{2, 2}, true},
		{"negative dimension", []float64{1, 2}, []int{-1, 2}, true},
		{"empty", nil, []int{0}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := New(tt.data, tt.shape...)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected an error")
				}
				return
			}
			if err != nil {
				t.Fatalf("New failed: %v", err)
			}
			if a.Len() != len(tt.data) {
				t.Errorf("Len() = %d, want %d", a.Len(), len(tt.data))
			}
		})
	}
}

type nativeWrapper struct {
	a *NDArray
}

func (w nativeWrapper) Native() *NDArray { return w.a }

func TestAsArray(t *testing.T) {
	direct := FromSlice([]float64{1, 2})

	tests := []struct {
		name  string
		value any
		want  []float64
	}{
		{"ndarray passthrough", direct, []float64{1, 2}},
		{"float64 slice", []float64{3, 4}, []float64{3, 4}},
		{"scalar float", 2.5, []float64{2.5}},
		{"scalar int", 7, []float64{7}},
		{"native wrapper", nativeWrapper{a: FromSlice([]float64{9})}, []float64{9}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := AsArray(tt.value)
			if err != nil {
				t.Fatalf("AsArray failed: %v", err)
			}
			if diff := cmp.Diff(tt.want, a.Data()); diff != "" {
				t.Errorf("data mismatch (-want +got):\n%s", diff)
			}
		})
	}

	t.Run("passthrough preserves identity", func(t *testing.T) {
		a, err := AsArray(direct)
		if err != nil {
			t.Fatalf("AsArray failed: %v", err)
		}
		if a != direct {
			t.Error("AsArray must not copy an NDArray")
		}
	})

	t.Run("unsupported value", func(t *testing.T) {
		if _, err := AsArray(struct{}{}); err == nil {
			t.Error("expected an error for a non-array value")
		}
	})
}

func TestClone(t *testing.T) {
	a := FromSlice([]float64{1, 2, 3})
	b := a.Clone()
	b.Data()[0] = 99
	if a.Data()[0] != 1 {
		t.Error("Clone must not share backing storage")
	}
}
