package blockfilt

import (
	"math/rand"
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/YuanhaoGong/gpufilter/recfilt"
)

// Stage 1 reads only its own block, so recomputing it must reproduce the
// carries bit for bit regardless of scheduling.
func TestStage1_independent(t *testing.T) {
	rng := rand.New(rand.NewSource(20))
	im := randImage(20, 20, rng)
	var f Filter
	if err := f.Init(recfilt.SecondOrder(2), 8, recfilt.Zero, im.Width, im.Height); err != nil {
		t.Fatal(err)
	}
	g := newGrid(im, f.b, f.ext, f.hp, f.wp)

	c1 := newCarries(f.em.r, f.b, g.m, g.n)
	f.stage1(g, c1)
	c2 := newCarries(f.em.r, f.b, g.m, g.n)
	f.stage1(g, c2)

	for i, v := range c1.p {
		if c2.p[i] != v {
			t.Fatalf("p[%d]: %g != %g", i, v, c2.p[i])
		}
	}
	for i, v := range c1.et {
		if c2.et[i] != v {
			t.Fatalf("et[%d]: %g != %g", i, v, c2.et[i])
		}
	}
}

// After stage 2 with zero extension, the resolved causal carry of block m
// is the stage-1 carries of the column accumulated through powers of AbF.
func TestStage2_boundarySlotAlgebra(t *testing.T) {
	rng := rand.New(rand.NewSource(21))
	im := randImage(24, 32, rng)
	var f Filter
	if err := f.Init(recfilt.SecondOrder(1.5), 8, recfilt.Zero, im.Width, im.Height); err != nil {
		t.Fatal(err)
	}
	g := newGrid(im, f.b, f.ext, f.hp, f.wp)
	c := newCarries(f.em.r, f.b, g.m, g.n)
	f.stage1(g, c)

	p1 := make([]float64, len(c.p))
	copy(p1, c.p)
	snap := &carries{r: c.r, b: c.b, m: c.m, n: c.n, p: p1}

	f.stage23(c)

	tmp := mat.NewDense(c.r, c.b, nil)
	for j := 0; j < c.n; j++ {
		for i := 0; i < c.m; i++ {
			want := mat.DenseCopyOf(snap.P(0, j))
			for k := 1; k <= i; k++ {
				tmp.Mul(f.em.AbF, want)
				want.Copy(tmp)
				want.Add(want, snap.P(k, j))
			}
			testMatEq(t, "P", want, c.P(i, j), 1e-10)
		}
	}
}

// The carries a block emits in stage 1 are the tails and heads of its own
// zero-boundary sweeps.
func TestStage1_matchesBlockSweeps(t *testing.T) {
	rng := rand.New(rand.NewSource(22))
	im := randImage(16, 16, rng)
	w := recfilt.SecondOrder(1)
	var f Filter
	if err := f.Init(w, 8, recfilt.Zero, im.Width, im.Height); err != nil {
		t.Fatal(err)
	}
	g := newGrid(im, f.b, f.ext, f.hp, f.wp)
	c := newCarries(f.em.r, f.b, g.m, g.n)
	f.stage1(g, c)

	r, b := f.em.r, f.b
	blk := mat.DenseCopyOf(g.block(1, 0))
	zrb := mat.NewDense(r, b, nil)
	recfilt.F(zrb, blk, w)
	testMatEq(t, "P(1,0)", recfilt.Tail(blk, r), c.P(1, 0), 0)
	recfilt.R(blk, zrb, w)
	testMatEq(t, "E(1,0)", recfilt.Head(blk, r), c.E(1, 0), 0)
	zbr := mat.NewDense(b, r, nil)
	recfilt.FT(zbr, blk, w)
	testMatEq(t, "Pt(1,0)", recfilt.TailCols(blk, r), c.Pt(1, 0), 0)
	recfilt.RT(blk, zbr, w)
	testMatEq(t, "Et(1,0)", recfilt.HeadCols(blk, r), c.Et(1, 0), 0)
}
