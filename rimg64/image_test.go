package rimg64

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestImage_SetAt(t *testing.T) {
	f := New(3, 2)
	f.Set(2, 1, 7)
	f.Set(0, 0, -1)
	if got := f.At(2, 1); got != 7 {
		t.Errorf("at (2, 1): want 7, got %g", got)
	}
	if got := f.At(0, 0); got != -1 {
		t.Errorf("at (0, 0): want -1, got %g", got)
	}
	if got := f.At(1, 1); got != 0 {
		t.Errorf("at (1, 1): want 0, got %g", got)
	}
}

func TestImage_Clone(t *testing.T) {
	f := New(2, 2)
	f.Set(1, 0, 3)
	g := f.Clone()
	if !cmp.Equal(f, g) {
		t.Fatalf("clone differs: %v, %v", f.Elems, g.Elems)
	}
	g.Set(1, 0, 4)
	if f.At(1, 0) != 3 {
		t.Error("clone shares storage with original")
	}
}

func TestImage_PlusMinusScale(t *testing.T) {
	a := New(2, 2)
	b := New(2, 2)
	for i := range a.Elems {
		a.Elems[i] = float64(i)
		b.Elems[i] = 2 * float64(i)
	}
	if got := Plus(a, b); !cmp.Equal(got.Elems, []float64{0, 3, 6, 9}) {
		t.Errorf("plus: got %v", got.Elems)
	}
	if got := Minus(b, a); !cmp.Equal(got.Elems, a.Elems) {
		t.Errorf("minus: got %v", got.Elems)
	}
	if got := Scale(3, a); !cmp.Equal(got.Elems, []float64{0, 3, 6, 9}) {
		t.Errorf("scale: got %v", got.Elems)
	}
}
