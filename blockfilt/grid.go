package blockfilt

import (
	"gonum.org/v1/gonum/mat"

	"github.com/YuanhaoGong/gpufilter/recfilt"
	"github.com/YuanhaoGong/gpufilter/rimg64"
)

// grid is the padded image decomposed into an m x n array of b x b blocks.
// Element (y, x) of the dense matrix is pixel (x, y) of the image; pad
// cells hold values sampled through the extension.
type grid struct {
	im   *mat.Dense // hp x wp
	b    int
	m, n int
}

func newGrid(f *rimg64.Image, b int, ext recfilt.Extension, hp, wp int) *grid {
	im := mat.NewDense(hp, wp, nil)
	for y := 0; y < hp; y++ {
		iy := ext.Index(y, f.Height)
		for x := 0; x < wp; x++ {
			ix := ext.Index(x, f.Width)
			if ix >= 0 && iy >= 0 {
				im.Set(y, x, f.At(ix, iy))
			}
		}
	}
	return &grid{im: im, b: b, m: hp / b, n: wp / b}
}

// block returns a mutable view of block (i, j).
func (g *grid) block(i, j int) *mat.Dense {
	return g.im.Slice(i*g.b, (i+1)*g.b, j*g.b, (j+1)*g.b).(*mat.Dense)
}

// trim copies the first width x height pixels back into an image.
func (g *grid) trim(width, height int) *rimg64.Image {
	out := rimg64.New(width, height)
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			out.Set(x, y, g.im.At(y, x))
		}
	}
	return out
}

// carries stores the four carry grids as flat buffers with one extra
// boundary slot per propagation direction. The accessors hide the offset:
// slot P(-1, j) holds the outside-image causal carry of column j, and so
// on for the other three.
type carries struct {
	r, b, m, n int

	p, e, pt, et []float64
}

func newCarries(r, b, m, n int) *carries {
	rb := r * b
	return &carries{
		r: r, b: b, m: m, n: n,
		p:  make([]float64, (m+1)*n*rb),
		e:  make([]float64, (m+1)*n*rb),
		pt: make([]float64, m*(n+1)*rb),
		et: make([]float64, m*(n+1)*rb),
	}
}

// P is the r x b causal carry from block (i, j) to (i+1, j); i in [-1, m).
func (c *carries) P(i, j int) *mat.Dense {
	k := ((i+1)*c.n + j) * c.r * c.b
	return mat.NewDense(c.r, c.b, c.p[k:k+c.r*c.b])
}

// E is the r x b anticausal carry from block (i, j) to (i-1, j); i in [0, m].
func (c *carries) E(i, j int) *mat.Dense {
	k := (i*c.n + j) * c.r * c.b
	return mat.NewDense(c.r, c.b, c.e[k:k+c.r*c.b])
}

// Pt is the b x r causal carry from block (i, j) to (i, j+1); j in [-1, n).
func (c *carries) Pt(i, j int) *mat.Dense {
	k := (i*(c.n+1) + j + 1) * c.r * c.b
	return mat.NewDense(c.b, c.r, c.pt[k:k+c.r*c.b])
}

// Et is the b x r anticausal carry from block (i, j) to (i, j-1); j in [0, n].
func (c *carries) Et(i, j int) *mat.Dense {
	k := (i*(c.n+1) + j) * c.r * c.b
	return mat.NewDense(c.b, c.r, c.et[k:k+c.r*c.b])
}
