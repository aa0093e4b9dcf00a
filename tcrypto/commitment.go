package tcrypto

import (
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"

	"github.com/anupsv/threshold-crypto/internal/pool"
)

// Commitment is the public commitment to a Poly: the G1 image of each of
// its coefficients. It lets a party verify a claimed share f(i) against
// the dealer's published polynomial without learning f itself.
type Commitment struct {
	Coeffs []bls12381.G1Affine
}

// Evaluate computes the commitment to p(x) by evaluating the committed
// polynomial in the exponent, using Horner's method over G1 scalar
// multiplications.
func (c *Commitment) Evaluate(x fr.Element) bls12381.G1Affine {
	acc := pool.GetG1Jac()
	defer pool.PutG1Jac(acc)
	term := pool.GetG1Jac()
	defer pool.PutG1Jac(term)

	var bi big.Int
	for i := len(c.Coeffs) - 1; i >= 0; i-- {
		x.BigInt(&bi)
		acc.ScalarMultiplication(acc, &bi)
		term.FromAffine(&c.Coeffs[i])
		acc.AddAssign(term)
	}
	return g1FromJac(acc)
}

// EvaluateUint64 is a convenience wrapper for evaluating at a small
// integer party index.
func (c *Commitment) EvaluateUint64(x uint64) bls12381.G1Affine {
	return c.Evaluate(intoFr(x))
}

// Degree returns the polynomial degree this commitment was built from.
func (c *Commitment) Degree() int {
	return len(c.Coeffs) - 1
}

// Add returns the commitment to the sum of the two underlying
// polynomials, without knowing either polynomial.
func (c *Commitment) Add(other *Commitment) *Commitment {
	n := len(c.Coeffs)
	if len(other.Coeffs) > n {
		n = len(other.Coeffs)
	}
	out := make([]bls12381.G1Affine, n)
	for i := 0; i < n; i++ {
		var a, b bls12381.G1Jac
		if i < len(c.Coeffs) {
			a.FromAffine(&c.Coeffs[i])
		}
		if i < len(other.Coeffs) {
			var bAff bls12381.G1Jac
			bAff.FromAffine(&other.Coeffs[i])
			b = bAff
		}
		a.AddAssign(&b)
		out[i] = g1FromJac(&a)
	}
	return &Commitment{Coeffs: out}
}

// Equal reports whether c and other commit to syntactically the same
// coefficient list.
func (c *Commitment) Equal(other *Commitment) bool {
	if len(c.Coeffs) != len(other.Coeffs) {
		return false
	}
	for i := range c.Coeffs {
		if cmpG1(&c.Coeffs[i], &other.Coeffs[i]) != 0 {
			return false
		}
	}
	return true
}

// BivarCommitment is the public commitment to a BivarPoly: the G1 image
// of each coefficient of its upper-triangular coefficient table, stored
// in the same row-major, i<=j order as BivarPoly.
type BivarCommitment struct {
	Degree int
	Coeffs []bls12381.G1Affine
}

// coeffIndex maps a coefficient's (i, j) exponent pair, 0 <= i <= j <=
// degree, to its position in the flattened, upper-triangular Coeffs
// slice.
func coeffIndex(degree, i, j int) int {
	if i > j {
		i, j = j, i
	}
	// Row i starts after rows 0..i-1, each of which holds (degree-k+1)
	// entries for k = 0..i-1.
	start := 0
	for k := 0; k < i; k++ {
		start += degree - k + 1
	}
	return start + (j - i)
}

// Evaluate computes the commitment to p(x, y) for the bivariate
// polynomial this commitment was built from, by evaluating twice: first
// collapsing y out of each row, then evaluating the resulting univariate
// commitment at x.
func (bc *BivarCommitment) Evaluate(x, y fr.Element) bls12381.G1Affine {
	rowCoeffs := pool.GetG1AffineSlice(bc.Degree + 1)
	defer pool.PutG1AffineSlice(rowCoeffs)
	rowCoeffs = rowCoeffs[:bc.Degree+1]

	scratch := pool.GetG1AffineSlice(bc.Degree + 1)
	defer pool.PutG1AffineSlice(scratch)

	for i := 0; i <= bc.Degree; i++ {
		coeffs := scratch[:bc.Degree+1]
		for j := 0; j <= bc.Degree; j++ {
			coeffs[j] = bc.Coeffs[coeffIndex(bc.Degree, i, j)]
		}
		row := &Commitment{Coeffs: coeffs}
		rowCoeffs[i] = row.Evaluate(y)
	}
	outer := &Commitment{Coeffs: rowCoeffs}
	return outer.Evaluate(x)
}

// Row returns the univariate commitment to p(i, y) obtained by fixing the
// first argument of the committed bivariate polynomial.
func (bc *BivarCommitment) Row(i int) *Commitment {
	coeffs := make([]bls12381.G1Affine, bc.Degree+1)
	column := make([]bls12381.G1Affine, bc.Degree+1)
	for j := 0; j <= bc.Degree; j++ {
		for k := 0; k <= bc.Degree; k++ {
			column[k] = bc.Coeffs[coeffIndex(bc.Degree, k, j)]
		}
		coeffs[j] = (&Commitment{Coeffs: column}).EvaluateUint64(uint64(i))
	}
	return &Commitment{Coeffs: coeffs}
}
