package blockfilt

import (
	"math"
	"math/rand"
	"testing"

	"github.com/YuanhaoGong/gpufilter/rimg64"
)

func epsEq(want, got, eps float64) bool {
	return math.Abs(want-got) <= eps
}

func randImage(width, height int, rng *rand.Rand) *rimg64.Image {
	f := rimg64.New(width, height)
	for i := range f.Elems {
		f.Elems[i] = rng.NormFloat64()
	}
	return f
}

func testImageEq(t *testing.T, want, got *rimg64.Image, eps float64) {
	t.Helper()
	if want.Width != got.Width || want.Height != got.Height {
		t.Fatalf("image sizes differ: want %v, got %v", want, got)
	}
	worst := 0.0
	for x := 0; x < want.Width; x++ {
		for y := 0; y < want.Height; y++ {
			u, v := want.At(x, y), got.At(x, y)
			if d := math.Abs(u - v); d > worst {
				worst = d
			}
			if !epsEq(u, v, eps) {
				t.Errorf("at (%d, %d): want %.6g, got %.6g", x, y, u, v)
			}
		}
	}
	t.Logf("max abs difference %.3g", worst)
}
