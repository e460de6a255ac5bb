package recfilt

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"
)

// ErrInvalidWeights indicates a weight tuple with no feedback taps or a
// zero feedforward coefficient.
var ErrInvalidWeights = errors.New("recfilt: invalid weights")

// Weights holds the coefficients of a causal recursive filter
//
//	y[j] = b0 x[j] - a1 y[j-1] - ... - ar y[j-r].
//
// The anticausal pass uses the same coefficients in the opposite direction.
type Weights struct {
	B0 float64
	A  []float64
}

// NewWeights creates a weight tuple (b0, a1, ..., ar) after validation.
func NewWeights(b0 float64, a ...float64) (Weights, error) {
	if b0 == 0 {
		return Weights{}, fmt.Errorf("%w: b0 is zero", ErrInvalidWeights)
	}
	if len(a) == 0 {
		return Weights{}, fmt.Errorf("%w: no feedback coefficients", ErrInvalidWeights)
	}
	w := Weights{B0: b0, A: make([]float64, len(a))}
	copy(w.A, a)
	return w, nil
}

// Order returns the number of feedback taps.
func (w Weights) Order() int {
	return len(w.A)
}

// Validate reports whether the weights satisfy the NewWeights conditions.
func (w Weights) Validate() error {
	if w.B0 == 0 {
		return fmt.Errorf("%w: b0 is zero", ErrInvalidWeights)
	}
	if len(w.A) == 0 {
		return fmt.Errorf("%w: no feedback coefficients", ErrInvalidWeights)
	}
	return nil
}

func qs(sigma float64) float64 {
	return 0.00399341 + 0.4715161*sigma
}

// FirstOrder derives the weights of a first-order recursive Gaussian
// approximation at scale sigma.
// Panics if sigma is not positive.
func FirstOrder(sigma float64) Weights {
	if sigma <= 0 {
		panic("recfilt: non-positive sigma")
	}
	const d3 = 1.86543
	d := math.Pow(d3, 1/qs(sigma))
	return Weights{
		B0: -(1 - d) / d,
		A:  []float64{-1 / d},
	}
}

// SecondOrder derives the weights of a second-order recursive Gaussian
// approximation at scale sigma.
// Panics if sigma is not positive.
func SecondOrder(sigma float64) Weights {
	if sigma <= 0 {
		panic("recfilt: non-positive sigma")
	}
	d1 := complex(1.41650, 1.00829)
	d := cmplx.Pow(d1, complex(1/qs(sigma), 0))
	n2 := real(d)*real(d) + imag(d)*imag(d)
	re := real(d)
	return Weights{
		B0: (1 - 2*re + n2) / n2,
		A:  []float64{-2 * re / n2, 1 / n2},
	}
}

// OrderK derives second-order weights from a pole radius rho chosen so
// that rho^(k*n) = eps*sin(theta), with poles at angle theta.
// Typical arguments are eps = 1e-4 and theta = 1.2.
//
// This constructor uses base-1 semantics that differ from the van Vliet
// derivations behind FirstOrder and SecondOrder; it is provided as an
// additional, explicitly opt-in parameterization.
func OrderK(n, k int, eps, theta float64) Weights {
	rho := math.Pow(eps*math.Sin(theta), 1/float64(k*n))
	return Weights{
		B0: 1,
		A:  []float64{-2 * rho * math.Cos(theta), rho * rho},
	}
}

// spectralRadius returns the largest pole magnitude of the feedback
// recursion, used to size decay pads. Orders above two fall back to a
// conservative bound.
func (w Weights) spectralRadius() float64 {
	switch len(w.A) {
	case 1:
		return math.Abs(w.A[0])
	case 2:
		a1, a2 := w.A[0], w.A[1]
		disc := a1*a1 - 4*a2
		if disc < 0 {
			return math.Sqrt(a2)
		}
		s := math.Sqrt(disc)
		return math.Max(math.Abs(-a1+s), math.Abs(-a1-s)) / 2
	}
	return 0.999
}
