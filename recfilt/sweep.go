package recfilt

import "gonum.org/v1/gonum/mat"

// Fwd applies the causal sweep to row in place.
// prol holds the r outputs preceding the row, y[-r..-1] in natural order.
func Fwd(prol, row []float64, w Weights) {
	r := w.Order()
	for j := 0; j < len(row); j++ {
		v := w.B0 * row[j]
		for k := 1; k <= r; k++ {
			var y float64
			if j-k < 0 {
				y = prol[r+j-k]
			} else {
				y = row[j-k]
			}
			v -= w.A[k-1] * y
		}
		row[j] = v
	}
}

// Rev applies the anticausal sweep to row in place.
// epil holds the r outputs following the row, z[n..n+r-1] in natural order.
func Rev(row, epil []float64, w Weights) {
	r := w.Order()
	n := len(row)
	for j := n - 1; j >= 0; j-- {
		v := w.B0 * row[j]
		for k := 1; k <= r; k++ {
			var z float64
			if j+k >= n {
				z = epil[j+k-n]
			} else {
				z = row[j+k]
			}
			v -= w.A[k-1] * z
		}
		row[j] = v
	}
}

// F applies the causal sweep down every column of block in place.
// prol is r x c with column x holding the outputs preceding column x.
func F(prol mat.Matrix, block *mat.Dense, w Weights) {
	n, c := block.Dims()
	r := w.Order()
	for x := 0; x < c; x++ {
		for j := 0; j < n; j++ {
			v := w.B0 * block.At(j, x)
			for k := 1; k <= r; k++ {
				var y float64
				if j-k < 0 {
					y = prol.At(r+j-k, x)
				} else {
					y = block.At(j-k, x)
				}
				v -= w.A[k-1] * y
			}
			block.Set(j, x, v)
		}
	}
}

// R applies the anticausal sweep up every column of block in place.
// epil is r x c with column x holding the outputs following column x.
func R(block *mat.Dense, epil mat.Matrix, w Weights) {
	n, c := block.Dims()
	r := w.Order()
	for x := 0; x < c; x++ {
		for j := n - 1; j >= 0; j-- {
			v := w.B0 * block.At(j, x)
			for k := 1; k <= r; k++ {
				var z float64
				if j+k >= n {
					z = epil.At(j+k-n, x)
				} else {
					z = block.At(j+k, x)
				}
				v -= w.A[k-1] * z
			}
			block.Set(j, x, v)
		}
	}
}

// FT applies the causal sweep along every row of block in place.
// prol is m x r with row y holding the outputs preceding row y.
func FT(prol mat.Matrix, block *mat.Dense, w Weights) {
	m, n := block.Dims()
	r := w.Order()
	for y := 0; y < m; y++ {
		for j := 0; j < n; j++ {
			v := w.B0 * block.At(y, j)
			for k := 1; k <= r; k++ {
				var u float64
				if j-k < 0 {
					u = prol.At(y, r+j-k)
				} else {
					u = block.At(y, j-k)
				}
				v -= w.A[k-1] * u
			}
			block.Set(y, j, v)
		}
	}
}

// RT applies the anticausal sweep along every row of block in place.
// epil is m x r with row y holding the outputs following row y.
func RT(block *mat.Dense, epil mat.Matrix, w Weights) {
	m, n := block.Dims()
	r := w.Order()
	for y := 0; y < m; y++ {
		for j := n - 1; j >= 0; j-- {
			v := w.B0 * block.At(y, j)
			for k := 1; k <= r; k++ {
				var u float64
				if j+k >= n {
					u = epil.At(y, j+k-n)
				} else {
					u = block.At(y, j+k)
				}
				v -= w.A[k-1] * u
			}
			block.Set(y, j, v)
		}
	}
}

// Head returns a copy of the first r rows of x.
func Head(x mat.Matrix, r int) *mat.Dense {
	_, c := x.Dims()
	out := mat.NewDense(r, c, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			out.Set(i, j, x.At(i, j))
		}
	}
	return out
}

// Tail returns a copy of the last r rows of x.
func Tail(x mat.Matrix, r int) *mat.Dense {
	n, c := x.Dims()
	out := mat.NewDense(r, c, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			out.Set(i, j, x.At(n-r+i, j))
		}
	}
	return out
}

// HeadCols returns a copy of the first r columns of x.
func HeadCols(x mat.Matrix, r int) *mat.Dense {
	n, _ := x.Dims()
	out := mat.NewDense(n, r, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < r; j++ {
			out.Set(i, j, x.At(i, j))
		}
	}
	return out
}

// TailCols returns a copy of the last r columns of x.
func TailCols(x mat.Matrix, r int) *mat.Dense {
	n, c := x.Dims()
	out := mat.NewDense(n, r, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < r; j++ {
			out.Set(i, j, x.At(i, c-r+j))
		}
	}
	return out
}

// Flip returns a copy of x with both axes reversed.
func Flip(x mat.Matrix) *mat.Dense {
	n, c := x.Dims()
	out := mat.NewDense(n, c, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < c; j++ {
			out.Set(i, j, x.At(n-1-i, c-1-j))
		}
	}
	return out
}
