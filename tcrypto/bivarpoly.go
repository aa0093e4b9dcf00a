package tcrypto

import (
	"io"
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"

	"github.com/anupsv/threshold-crypto/internal/common"
	"github.com/anupsv/threshold-crypto/internal/pool"
)

// BivarPoly is a symmetric bivariate polynomial of degree d in each
// variable, p(x, y) = sum_{0<=i<=j<=d} c_ij (x^i y^j + x^j y^i) for i != j
// (and c_ii x^i y^i on the diagonal). Symmetry means p(x, y) == p(y, x),
// so only the upper-triangular half of the coefficient table, (d+1)(d+2)/2
// entries, needs to be stored.
//
// This is the standard dealer-side primitive for a joint Feldman/Pedersen
// verifiable secret sharing setup between n parties that does not require
// a single trusted dealer: each party i privately evaluates row i,
// p(i, y), and distributes p(i, j) to party j. Any pair of parties can
// then cross-check each other's share against the shared BivarCommitment.
type BivarPoly struct {
	Degree int
	Coeffs []fr.Element
}

// rowLen returns how many entries row i of a degree-d upper triangular
// table holds.
func rowLen(degree, i int) int {
	return degree - i + 1
}

// RandomBivarPoly returns a symmetric bivariate polynomial of the given
// degree with coefficients drawn uniformly from the scalar field.
func RandomBivarPoly(degree int, rng io.Reader) (*BivarPoly, error) {
	if degree < 0 || degree > maxPolyDegree {
		return nil, common.ErrDegreeTooHigh
	}
	n := (degree + 1) * (degree + 2) / 2
	coeffs := make([]fr.Element, n)
	for i := range coeffs {
		s, err := sampleFr(rng)
		if err != nil {
			return nil, err
		}
		coeffs[i] = s
	}
	return &BivarPoly{Degree: degree, Coeffs: coeffs}, nil
}

// coeff returns the stored coefficient c_ij, 0 <= i <= j <= Degree.
func (bp *BivarPoly) coeff(i, j int) fr.Element {
	return bp.Coeffs[coeffIndex(bp.Degree, i, j)]
}

// Evaluate computes p(x, y).
func (bp *BivarPoly) Evaluate(x, y fr.Element) fr.Element {
	// Collapse y out of each row of the full symmetric coefficient table
	// first, then evaluate the resulting univariate polynomial in x,
	// mirroring BivarCommitment.Evaluate.
	rowValues := make([]fr.Element, bp.Degree+1)
	for i := 0; i <= bp.Degree; i++ {
		coeffs := make([]fr.Element, bp.Degree+1)
		for j := 0; j <= bp.Degree; j++ {
			coeffs[j] = bp.coeff(i, j)
		}
		rowValues[i] = (&Poly{Coeffs: coeffs}).Evaluate(y)
	}
	return (&Poly{Coeffs: rowValues}).Evaluate(x)
}

// EvaluateUint64 is a convenience wrapper for small integer party
// indices.
func (bp *BivarPoly) EvaluateUint64(x, y uint64) fr.Element {
	return bp.Evaluate(intoFr(x), intoFr(y))
}

// Row returns the univariate polynomial p(i, y), the share that party i
// keeps privately and uses to derive the sub-shares it sends to every
// other party.
func (bp *BivarPoly) Row(i int) *Poly {
	x := intoFr(uint64(i))
	coeffs := make([]fr.Element, bp.Degree+1)
	for j := 0; j <= bp.Degree; j++ {
		// The y^j coefficient of p(i, y) is column j evaluated at x = i.
		var acc fr.Element
		for k := bp.Degree; k >= 0; k-- {
			c := bp.coeff(k, j)
			acc.Mul(&acc, &x)
			acc.Add(&acc, &c)
		}
		coeffs[j] = acc
	}
	return &Poly{Coeffs: coeffs}
}

// Commitment returns the public BivarCommitment to bp.
func (bp *BivarPoly) Commitment() *BivarCommitment {
	_, _, g1Gen, _ := bls12381.Generators()
	j := pool.GetG1Jac()
	defer pool.PutG1Jac(j)

	var bi big.Int
	out := make([]bls12381.G1Affine, len(bp.Coeffs))
	for i := range bp.Coeffs {
		j.FromAffine(&g1Gen)
		bp.Coeffs[i].BigInt(&bi)
		j.ScalarMultiplication(j, &bi)
		out[i] = g1FromJac(j)
	}
	return &BivarCommitment{Degree: bp.Degree, Coeffs: out}
}

// Zeroize overwrites every stored coefficient with zero.
func (bp *BivarPoly) Zeroize() {
	for i := range bp.Coeffs {
		clearFr(&bp.Coeffs[i])
	}
	disarmFinalizer(bp)
}
