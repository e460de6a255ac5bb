package recfilt

import (
	"math"

	"github.com/YuanhaoGong/gpufilter/rimg64"
)

// Naive applies the forward and reverse recursive sweeps along every
// column and then along every row, reading samples outside the image
// through the extension. It is the sequential reference that the block
// engine is validated against.
func Naive(f *rimg64.Image, w Weights, ext Extension) *rimg64.Image {
	g := f.Clone()
	pad := decayPad(w, ext)
	zero := make([]float64, w.Order())

	line := make([]float64, g.Height+2*pad)
	for x := 0; x < g.Width; x++ {
		for t := range line {
			line[t] = sampleCol(g, ext, x, t-pad)
		}
		Fwd(zero, line, w)
		Rev(line, zero, w)
		for y := 0; y < g.Height; y++ {
			g.Set(x, y, line[pad+y])
		}
	}

	line = make([]float64, g.Width+2*pad)
	for y := 0; y < g.Height; y++ {
		for t := range line {
			line[t] = sampleRow(g, ext, t-pad, y)
		}
		Fwd(zero, line, w)
		Rev(line, zero, w)
		for x := 0; x < g.Width; x++ {
			g.Set(x, y, line[pad+x])
		}
	}
	return g
}

func sampleCol(f *rimg64.Image, ext Extension, x, y int) float64 {
	iy := ext.Index(y, f.Height)
	if iy < 0 {
		return 0
	}
	return f.At(x, iy)
}

func sampleRow(f *rimg64.Image, ext Extension, x, y int) float64 {
	ix := ext.Index(x, f.Width)
	if ix < 0 {
		return 0
	}
	return f.At(ix, y)
}

// decayPad returns the number of extension samples after which an unknown
// initial filter state has decayed below double-precision noise. Even the
// zero extension needs a pad: the causal output keeps ringing past the
// edge, and the anticausal pass reads it back in.
func decayPad(w Weights, ext Extension) int {
	rho := w.spectralRadius()
	if rho <= 0 {
		return w.Order()
	}
	if rho >= 1 {
		return 1 << 13
	}
	n := int(math.Ceil(math.Log(1e-17) / math.Log(rho)))
	if n < 16 {
		n = 16
	}
	if n > 1<<13 {
		n = 1 << 13
	}
	return n
}
