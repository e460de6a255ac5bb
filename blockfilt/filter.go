package blockfilt

import (
	"errors"
	"fmt"

	"github.com/YuanhaoGong/gpufilter/recfilt"
	"github.com/YuanhaoGong/gpufilter/rimg64"
)

// DefaultBlockSide is the block side used by ApplyGauss.
const DefaultBlockSide = 32

var (
	// ErrInvalidDimensions indicates an empty image or a size mismatch
	// with an initialized Filter.
	ErrInvalidDimensions = errors.New("blockfilt: invalid image dimensions")
	// ErrInvalidBlockSide indicates a block side not exceeding the
	// filter order.
	ErrInvalidBlockSide = errors.New("blockfilt: invalid block side")
	// ErrIllConditionedWeights indicates that a matrix required by the
	// chosen extension could not be inverted.
	ErrIllConditionedWeights = errors.New("blockfilt: ill-conditioned weights for extension")
)

// Filter applies the block-parallel causal+anticausal recursive filter.
// Init precomputes every matrix that depends on the weights, block side,
// extension and image dimensions; Apply may then be called repeatedly on
// images of the same size.
type Filter struct {
	w   recfilt.Weights
	b   int
	ext recfilt.Extension

	width, height int
	wp, hp        int

	em  *elemMats
	cpe *cpeMats
	pe  *peMats
}

// Init validates the parameters and builds the elementary and extension
// matrices for images of the given dimensions.
func (f *Filter) Init(w recfilt.Weights, blockSide int, ext recfilt.Extension, width, height int) error {
	if err := w.Validate(); err != nil {
		return err
	}
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	if blockSide <= w.Order() {
		return fmt.Errorf("%w: side %d with order %d", ErrInvalidBlockSide, blockSide, w.Order())
	}

	f.w, f.b, f.ext = w, blockSide, ext
	f.width, f.height = width, height
	f.wp = paddedSpan(width, blockSide, ext)
	f.hp = paddedSpan(height, blockSide, ext)
	f.em = newElemMats(w, blockSide)
	f.cpe, f.pe = nil, nil

	switch ext {
	case recfilt.Zero, recfilt.Constant:
		// The zero extension shares the constant-padding tail algebra:
		// the causal sweep rings past the edge and the anticausal
		// epilogue picks the ringing up through SRF ArF.
		cpe, err := newCPEMats(f.em)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrIllConditionedWeights, err)
		}
		f.cpe = cpe
	case recfilt.Periodic, recfilt.EvenPeriodic:
		pe, err := newPEMats(w, f.hp, f.wp)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrIllConditionedWeights, err)
		}
		f.pe = pe
	default:
		panic("blockfilt: unknown extension")
	}
	return nil
}

// Apply runs stages 1 through 6 and returns the filtered image trimmed to
// the original dimensions. The input is not modified.
func (f *Filter) Apply(im *rimg64.Image) (*rimg64.Image, error) {
	if im.Width != f.width || im.Height != f.height {
		return nil, fmt.Errorf("%w: got %v, initialized for %dx%d",
			ErrInvalidDimensions, im, f.width, f.height)
	}
	g := newGrid(im, f.b, f.ext, f.hp, f.wp)
	c := newCarries(f.em.r, f.b, g.m, g.n)
	f.stage1(g, c)
	f.stage23(c)
	f.stage45(c)
	f.stage6(g, c)
	return g.trim(f.width, f.height), nil
}

// Apply filters a single image with the given weights, block side and
// extension.
func Apply(im *rimg64.Image, w recfilt.Weights, blockSide int, ext recfilt.Extension) (*rimg64.Image, error) {
	var f Filter
	if err := f.Init(w, blockSide, ext, im.Width, im.Height); err != nil {
		return nil, err
	}
	return f.Apply(im)
}

// ApplyGauss filters with a recursive Gaussian approximation of the given
// order (1 or 2) at scale sigma, using DefaultBlockSide.
func ApplyGauss(im *rimg64.Image, sigma float64, order int, ext recfilt.Extension) (*rimg64.Image, error) {
	var w recfilt.Weights
	switch order {
	case 1:
		w = recfilt.FirstOrder(sigma)
	case 2:
		w = recfilt.SecondOrder(sigma)
	default:
		return nil, fmt.Errorf("%w: unsupported order %d", recfilt.ErrInvalidWeights, order)
	}
	return Apply(im, w, DefaultBlockSide, ext)
}

// paddedSpan returns the padded length of a dimension: the next multiple
// of the block side, except for the wrap-around extensions where it is
// also a whole number of periods so that the periodic fixed point over
// the padded grid is exact.
func paddedSpan(n, b int, ext recfilt.Extension) int {
	switch ext {
	case recfilt.Periodic:
		return lcm(n, b)
	case recfilt.EvenPeriodic:
		return lcm(2*n, b)
	}
	return (n + b - 1) / b * b
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func lcm(a, b int) int {
	return a / gcd(a, b) * b
}
