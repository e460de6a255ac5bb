package blockfilt

import (
	"gonum.org/v1/gonum/mat"

	"github.com/YuanhaoGong/gpufilter/recfilt"
)

// elemMats caches the small matrices derived from the weights and block
// side that drive carry propagation. All of them depend only on (w, b, r)
// and are shared read-only by every stage.
type elemMats struct {
	r, b int

	AFP *mat.Dense // b x r, causal column response to a unit prologue
	ARE *mat.Dense // b x r, anticausal column response to a unit epilogue
	AbF *mat.Dense // r x r, tail of AFP
	AbR *mat.Dense // r x r, head of ARE

	TAFB     *mat.Dense // r x b, tail of the causal block response
	HARBxAFB *mat.Dense // r x b, head of the anticausal-of-causal response
	HARBxAFP *mat.Dense // r x r
	ARBxAFP  *mat.Dense // b x r

	ArF, ArR     *mat.Dense // r x r, prologue/epilogue response over r samples
	AbarF, AbarR *mat.Dense // r x r, response to r constant samples
}

func newElemMats(w recfilt.Weights, b int) *elemMats {
	r := w.Order()
	e := &elemMats{r: r, b: b}

	afp := mat.NewDense(b, r, nil)
	recfilt.F(eye(r), afp, w)
	e.AFP = afp

	afb := eye(b)
	recfilt.F(mat.NewDense(r, b, nil), afb, w)

	are := mat.NewDense(b, r, nil)
	recfilt.R(are, eye(r), w)
	e.ARE = are

	arb := eye(b)
	recfilt.R(arb, mat.NewDense(r, b, nil), w)

	e.AbF = recfilt.Tail(afp, r)
	e.AbR = recfilt.Head(are, r)
	e.TAFB = recfilt.Tail(afb, r)

	harb := recfilt.Head(arb, r)
	e.HARBxAFB = mul(harb, afb)
	e.HARBxAFP = mul(harb, afp)
	e.ARBxAFP = mul(arb, afp)

	e.ArF = recfilt.Head(afp, r)
	e.ArR = recfilt.Flip(e.ArF)
	e.AbarF = abarF(e.ArF, w)
	e.AbarR = recfilt.Flip(e.AbarF)
	return e
}

// abarF builds the causal response of r constant unit samples as a
// lower-triangular matrix: diagonal B0, subdiagonal i-j filled with
// B0 times the scaled impulse response, read off the last column of ArF.
func abarF(arF *mat.Dense, w recfilt.Weights) *mat.Dense {
	r, _ := arF.Dims()
	out := mat.NewDense(r, r, nil)
	for i := 0; i < r; i++ {
		out.Set(i, i, w.B0)
		for j := 0; j < i; j++ {
			out.Set(i, j, w.B0*arF.At(i-j-1, r-1))
		}
	}
	return out
}

// spanF returns the r x r propagation of a causal prologue across span
// samples of zero input.
func spanF(w recfilt.Weights, span int) *mat.Dense {
	r := w.Order()
	blk := mat.NewDense(span, r, nil)
	recfilt.F(eye(r), blk, w)
	return recfilt.Tail(blk, r)
}

// spanR returns the r x r propagation of an anticausal epilogue across
// span samples of zero input.
func spanR(w recfilt.Weights, span int) *mat.Dense {
	r := w.Order()
	blk := mat.NewDense(span, r, nil)
	recfilt.R(blk, eye(r), w)
	return recfilt.Head(blk, r)
}

func eye(n int) *mat.Dense {
	out := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		out.Set(i, i, 1)
	}
	return out
}

func mul(a, b mat.Matrix) *mat.Dense {
	ra, _ := a.Dims()
	_, cb := b.Dims()
	out := mat.NewDense(ra, cb, nil)
	out.Mul(a, b)
	return out
}
