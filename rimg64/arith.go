package rimg64

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

func errIfSizeNotEq(a, b *Image) error {
	if a.Width != b.Width || a.Height != b.Height {
		return fmt.Errorf("sizes not equal: %v, %v", a, b)
	}
	return nil
}

// Plus returns the element-wise sum of two images.
// Panics if the sizes differ.
func Plus(a, b *Image) *Image {
	if err := errIfSizeNotEq(a, b); err != nil {
		panic(err)
	}
	c := New(a.Width, a.Height)
	floats.AddTo(c.Elems, a.Elems, b.Elems)
	return c
}

// Minus returns the element-wise difference of two images.
// Panics if the sizes differ.
func Minus(a, b *Image) *Image {
	if err := errIfSizeNotEq(a, b); err != nil {
		panic(err)
	}
	c := New(a.Width, a.Height)
	floats.SubTo(c.Elems, a.Elems, b.Elems)
	return c
}

// Scale returns a copy of x multiplied by k.
func Scale(k float64, x *Image) *Image {
	y := x.Clone()
	floats.Scale(k, y.Elems)
	return y
}
