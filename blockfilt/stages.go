package blockfilt

import (
	"gonum.org/v1/gonum/mat"

	"github.com/YuanhaoGong/gpufilter/recfilt"
)

// stage1 computes the four zero-boundary carries of every block
// independently. Under constant padding it also seeds the boundary slots:
// the vertical tiles from the original block rows, the horizontal tiles
// from the block after its two vertical sweeps, so that the stage-45
// corner fixes promote them to tiles of the fully resolved block.
func (f *Filter) stage1(g *grid, c *carries) {
	parallelFor(g.m*g.n, func(k int) {
		i, j := k/g.n, k%g.n
		r, b := f.em.r, f.b
		blk := mat.DenseCopyOf(g.block(i, j))

		if f.ext == recfilt.Constant {
			if i == 0 {
				tileRows(c.P(-1, j), blk, 0)
			}
			if i == g.m-1 {
				tileRows(c.E(g.m, j), blk, b-1)
			}
		}

		zrb := mat.NewDense(r, b, nil)
		recfilt.F(zrb, blk, f.w)
		c.P(i, j).Copy(blk.Slice(b-r, b, 0, b))
		recfilt.R(blk, zrb, f.w)
		c.E(i, j).Copy(blk.Slice(0, r, 0, b))

		if f.ext == recfilt.Constant {
			if j == 0 {
				tileCols(c.Pt(i, -1), blk, 0)
			}
			if j == g.n-1 {
				tileCols(c.Et(i, g.n), blk, b-1)
			}
		}

		zbr := mat.NewDense(b, r, nil)
		recfilt.FT(zbr, blk, f.w)
		c.Pt(i, j).Copy(blk.Slice(0, b, b-r, b))
		recfilt.RT(blk, zbr, f.w)
		c.Et(i, j).Copy(blk.Slice(0, b, 0, r))
	})
}

// stage23 resolves the vertical carries: boundary fix, causal sweep down
// every column of blocks, boundary fix, anticausal sweep up.
// Columns are independent; the sweeps within a column are sequential.
func (f *Filter) stage23(c *carries) {
	parallelFor(c.n, func(j int) {
		r, b := c.r, c.b
		tmp := mat.NewDense(r, b, nil)
		tmp2 := mat.NewDense(r, b, nil)

		switch f.ext {
		case recfilt.Constant:
			pm1 := c.P(-1, j)
			tmp.Mul(f.cpe.SFAbarF, pm1)
			pm1.Copy(tmp)
		case recfilt.Periodic, recfilt.EvenPeriodic:
			acc := mat.NewDense(r, b, nil)
			for i := 0; i < c.m; i++ {
				tmp.Mul(f.em.AbF, acc)
				acc.Copy(tmp)
				acc.Add(acc, c.P(i, j))
			}
			c.P(-1, j).Mul(f.pe.IAhF, acc)
		}

		f.sweepDown(c, j, tmp)

		switch f.ext {
		case recfilt.Zero:
			c.E(c.m, j).Mul(f.cpe.SRFxArF, c.P(c.m-1, j))
		case recfilt.Constant:
			em := c.E(c.m, j)
			tmp.Mul(f.cpe.SRFxArF, c.P(c.m-1, j))
			tmp2.Mul(f.cpe.ER, em)
			em.Copy(tmp)
			em.Add(em, tmp2)
		case recfilt.Periodic, recfilt.EvenPeriodic:
			acc := mat.NewDense(r, b, nil)
			for i := c.m - 1; i >= 0; i-- {
				tmp.Mul(f.em.AbR, acc)
				acc.Copy(tmp)
				acc.Add(acc, c.E(i, j))
				tmp.Mul(f.em.HARBxAFP, c.P(i-1, j))
				acc.Add(acc, tmp)
			}
			c.E(c.m, j).Mul(f.pe.IAhR, acc)
		}

		f.sweepUp(c, j, tmp)
	})
}

func (f *Filter) sweepDown(c *carries, j int, tmp *mat.Dense) {
	for i := 0; i < c.m; i++ {
		tmp.Mul(f.em.AbF, c.P(i-1, j))
		pij := c.P(i, j)
		pij.Add(pij, tmp)
	}
}

func (f *Filter) sweepUp(c *carries, j int, tmp *mat.Dense) {
	for i := c.m - 1; i >= 0; i-- {
		eij := c.E(i, j)
		tmp.Mul(f.em.HARBxAFP, c.P(i-1, j))
		eij.Add(eij, tmp)
		tmp.Mul(f.em.AbR, c.E(i+1, j))
		eij.Add(eij, tmp)
	}
}

// stage45 resolves the horizontal carries. The first loop promotes every
// block's zero-boundary row carries to carries of the vertically resolved
// block; the boundary fixes and the two sequential sweeps then mirror
// stage23 with transposed matrices. Rows of blocks are independent.
func (f *Filter) stage45(c *carries) {
	parallelFor(c.m, func(i int) {
		r, b := c.r, c.b
		fix := mat.NewDense(b, b, nil)
		t2 := mat.NewDense(b, b, nil)
		tmp := mat.NewDense(b, r, nil)

		for j := 0; j < c.n; j++ {
			fix.Mul(f.em.ARBxAFP, c.P(i-1, j))
			t2.Mul(f.em.ARE, c.E(i+1, j))
			fix.Add(fix, t2)
			tmp.Mul(fix, f.em.TAFB.T())
			pt := c.Pt(i, j)
			pt.Add(pt, tmp)
			tmp.Mul(fix, f.em.HARBxAFB.T())
			et := c.Et(i, j)
			et.Add(et, tmp)
		}

		switch f.ext {
		case recfilt.Constant:
			tile := mat.NewDense(r, r, nil)
			pt := c.Pt(i, -1)
			tileCorner(tile, c.P(i-1, 0), 0)
			tmp.Mul(f.em.ARBxAFP, tile)
			pt.Add(pt, tmp)
			tileCorner(tile, c.E(i+1, 0), 0)
			tmp.Mul(f.em.ARE, tile)
			pt.Add(pt, tmp)
			tmp.Mul(pt, f.cpe.SFAbarF.T())
			pt.Copy(tmp)
		case recfilt.Periodic, recfilt.EvenPeriodic:
			acc := mat.NewDense(b, r, nil)
			for j := 0; j < c.n; j++ {
				tmp.Mul(acc, f.em.AbF.T())
				acc.Copy(tmp)
				acc.Add(acc, c.Pt(i, j))
			}
			c.Pt(i, -1).Mul(acc, f.pe.IAwF.T())
		}

		f.sweepRight(c, i, tmp)

		switch f.ext {
		case recfilt.Zero:
			c.Et(i, c.n).Mul(c.Pt(i, c.n-1), f.cpe.SRFxArF.T())
		case recfilt.Constant:
			tile := mat.NewDense(r, r, nil)
			t3 := mat.NewDense(b, r, nil)
			et := c.Et(i, c.n)
			tileCorner(tile, c.P(i-1, c.n-1), b-1)
			tmp.Mul(f.em.ARBxAFP, tile)
			et.Add(et, tmp)
			tileCorner(tile, c.E(i+1, c.n-1), b-1)
			tmp.Mul(f.em.ARE, tile)
			et.Add(et, tmp)
			t3.Mul(c.Pt(i, c.n-1), f.cpe.SRFxArF.T())
			tmp.Mul(et, f.cpe.ER.T())
			et.Copy(t3)
			et.Add(et, tmp)
		case recfilt.Periodic, recfilt.EvenPeriodic:
			acc := mat.NewDense(b, r, nil)
			for j := c.n - 1; j >= 0; j-- {
				tmp.Mul(acc, f.em.AbR.T())
				acc.Copy(tmp)
				acc.Add(acc, c.Et(i, j))
				tmp.Mul(c.Pt(i, j-1), f.em.HARBxAFP.T())
				acc.Add(acc, tmp)
			}
			c.Et(i, c.n).Mul(acc, f.pe.IAwR.T())
		}

		f.sweepLeft(c, i, tmp)
	})
}

func (f *Filter) sweepRight(c *carries, i int, tmp *mat.Dense) {
	for j := 0; j < c.n; j++ {
		tmp.Mul(c.Pt(i, j-1), f.em.AbF.T())
		pt := c.Pt(i, j)
		pt.Add(pt, tmp)
	}
}

func (f *Filter) sweepLeft(c *carries, i int, tmp *mat.Dense) {
	for j := c.n - 1; j >= 0; j-- {
		et := c.Et(i, j)
		tmp.Mul(c.Pt(i, j-1), f.em.HARBxAFP.T())
		et.Add(et, tmp)
		tmp.Mul(c.Et(i, j+1), f.em.AbR.T())
		et.Add(et, tmp)
	}
}

// stage6 replays the four sweeps inside every block with the resolved
// neighbouring carries, writing the filtered values into the grid.
func (f *Filter) stage6(g *grid, c *carries) {
	parallelFor(g.m*g.n, func(k int) {
		i, j := k/g.n, k%g.n
		blk := g.block(i, j)
		recfilt.F(c.P(i-1, j), blk, f.w)
		recfilt.R(blk, c.E(i+1, j), f.w)
		recfilt.FT(c.Pt(i, j-1), blk, f.w)
		recfilt.RT(blk, c.Et(i, j+1), f.w)
	})
}

// tileRows fills dst (r x b) with copies of the given row of blk.
func tileRows(dst, blk *mat.Dense, row int) {
	r, b := dst.Dims()
	for i := 0; i < r; i++ {
		for x := 0; x < b; x++ {
			dst.Set(i, x, blk.At(row, x))
		}
	}
}

// tileCols fills dst (b x r) with copies of the given column of blk.
func tileCols(dst, blk *mat.Dense, col int) {
	b, r := dst.Dims()
	for y := 0; y < b; y++ {
		for j := 0; j < r; j++ {
			dst.Set(y, j, blk.At(y, col))
		}
	}
}

// tileCorner fills dst (r x r) with copies of the given column of an
// r x b carry.
func tileCorner(dst, carry *mat.Dense, col int) {
	r, _ := dst.Dims()
	for i := 0; i < r; i++ {
		for j := 0; j < r; j++ {
			dst.Set(i, j, carry.At(i, col))
		}
	}
}
