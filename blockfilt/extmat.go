package blockfilt

import (
	"gonum.org/v1/gonum/mat"

	"github.com/YuanhaoGong/gpufilter/recfilt"
)

// cpeMats holds the combinations used by the constant-padding boundary
// fixes. Only three products are ever consumed by the stages:
//
//	SFAbarF: (I - ArF)^-1 AbarF, the steady state of the causal sweep
//	         over a constant extension;
//	SRFxArF: SRF ArF, the coupling of the last in-image outputs into the
//	         anticausal extension epilogue, with SRF the solution of the
//	         r^2 x r^2 system SRF - ArR SRF ArF = AbarR;
//	ER:      (SR AbarR - SRF ArF) SF AbarF, the constant-tile part of the
//	         same epilogue.
type cpeMats struct {
	SFAbarF *mat.Dense // r x r
	SRFxArF *mat.Dense // r x r
	ER      *mat.Dense // r x r
}

func newCPEMats(e *elemMats) (*cpeMats, error) {
	sf, err := invIMinus(e.ArF)
	if err != nil {
		return nil, err
	}
	sr, err := invIMinus(e.ArR)
	if err != nil {
		return nil, err
	}
	srf, err := solveSRF(e)
	if err != nil {
		return nil, err
	}
	m := &cpeMats{}
	m.SFAbarF = mul(sf, e.AbarF)
	m.SRFxArF = mul(srf, e.ArF)
	t := mul(sr, e.AbarR)
	t.Sub(t, m.SRFxArF)
	m.ER = mul(t, m.SFAbarF)
	return m, nil
}

// solveSRF solves sysA vec(SRF) = vec(AbarR) where
// sysA[r i+j, r p+q] = d(i,p) d(j,q) - ArR[i,p] ArF[q,j],
// the vectorization of SRF - ArR SRF ArF = AbarR.
func solveSRF(e *elemMats) (*mat.Dense, error) {
	r := e.r
	n := r * r
	sysA := mat.NewDense(n, n, nil)
	rhs := mat.NewDense(n, 1, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < r; j++ {
			row := r*i + j
			rhs.Set(row, 0, e.AbarR.At(i, j))
			for p := 0; p < r; p++ {
				for q := 0; q < r; q++ {
					v := -e.ArR.At(i, p) * e.ArF.At(q, j)
					if i == p && j == q {
						v++
					}
					sysA.Set(row, r*p+q, v)
				}
			}
		}
	}
	var sol mat.Dense
	if err := sol.Solve(sysA, rhs); err != nil {
		return nil, err
	}
	out := mat.NewDense(r, r, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < r; j++ {
			out.Set(i, j, sol.At(r*i+j, 0))
		}
	}
	return out, nil
}

// peMats holds the periodic fixed-point matrices. The padded spans are
// whole numbers of periods, so the fixed point over the padded grid equals
// the one-period fixed point exactly.
type peMats struct {
	IAhF *mat.Dense // r x r, (I - AhF)^-1 over the padded height
	IAhR *mat.Dense // r x r, (I - AhR)^-1 over the padded height
	IAwF *mat.Dense // r x r, (I - AwF)^-1 over the padded width
	IAwR *mat.Dense // r x r, (I - AwR)^-1 over the padded width
}

func newPEMats(w recfilt.Weights, hp, wp int) (*peMats, error) {
	m := &peMats{}
	var err error
	if m.IAhF, err = invIMinus(spanF(w, hp)); err != nil {
		return nil, err
	}
	if m.IAhR, err = invIMinus(spanR(w, hp)); err != nil {
		return nil, err
	}
	if m.IAwF, err = invIMinus(spanF(w, wp)); err != nil {
		return nil, err
	}
	if m.IAwR, err = invIMinus(spanR(w, wp)); err != nil {
		return nil, err
	}
	return m, nil
}

func invIMinus(a *mat.Dense) (*mat.Dense, error) {
	r, _ := a.Dims()
	t := eye(r)
	t.Sub(t, a)
	var inv mat.Dense
	if err := inv.Inverse(t); err != nil {
		return nil, err
	}
	return &inv, nil
}
