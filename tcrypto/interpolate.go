package tcrypto

import (
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"

	"github.com/anupsv/threshold-crypto/internal/common"
	"github.com/anupsv/threshold-crypto/internal/pool"
)

// lagrangeCoeffsAtZero computes, for the given 0-based party indices, the
// Lagrange basis coefficients L_i(0) such that sum_i L_i(0) * f(index_i+1)
// reconstructs f(0) for any polynomial f of degree < len(indices).
//
// Party index i holds the share f(i+1) rather than f(i); the +1 shift
// keeps x=0, where the secret lives, distinct from every party's
// evaluation point.
//
// The numerators are computed with a prefix/suffix product sweep in
// O(t) field multiplications; the denominators need the full O(t^2)
// pairwise differences, since there is no shortcut that avoids comparing
// every pair of sample points.
func lagrangeCoeffsAtZero(indices []uint64) ([]fr.Element, error) {
	n := len(indices)
	if n == 0 {
		return nil, common.ErrNotEnoughShares
	}
	if n == 1 {
		one := fr.NewElement(1)
		return []fr.Element{one}, nil
	}

	xs := make([]fr.Element, n)
	for i, idx := range indices {
		xs[i] = intoFr(idx + 1)
	}

	// negXs[k] = -xs[k]
	negXs := make([]fr.Element, n)
	for k := range xs {
		negXs[k].Neg(&xs[k])
	}

	prefix := make([]fr.Element, n+1)
	prefix[0].SetOne()
	for k := 0; k < n; k++ {
		prefix[k+1].Mul(&prefix[k], &negXs[k])
	}
	suffix := make([]fr.Element, n+1)
	suffix[n].SetOne()
	for k := n - 1; k >= 0; k-- {
		suffix[k].Mul(&suffix[k+1], &negXs[k])
	}

	coeffs := make([]fr.Element, n)
	for i := 0; i < n; i++ {
		var numerator fr.Element
		numerator.Mul(&prefix[i], &suffix[i+1])

		var denom fr.Element
		denom.SetOne()
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			var diff fr.Element
			diff.Sub(&xs[i], &xs[j])
			if diff.IsZero() {
				return nil, common.ErrDuplicateEntry
			}
			denom.Mul(&denom, &diff)
		}

		var invDenom fr.Element
		invDenom.Inverse(&denom)
		coeffs[i].Mul(&numerator, &invDenom)
	}
	return coeffs, nil
}

// checkThreshold validates that enough shares were supplied for the
// claimed threshold, independent of which group the shares live in.
func checkThreshold(t, n int) error {
	if n < t+1 {
		return common.ErrNotEnoughShares
	}
	return nil
}

// InterpolateG1 reconstructs f(0) in G1 from t+1 (index, f(index+1))
// samples, where f is implicitly defined by the scalar multiples its
// commitment describes. This combines G1-valued shares, such as
// decryption shares, into their threshold result.
func InterpolateG1(t int, indices []uint64, points []bls12381.G1Affine) (bls12381.G1Affine, error) {
	var zero bls12381.G1Affine
	if err := checkThreshold(t, len(points)); err != nil {
		return zero, err
	}
	indices = indices[:t+1]
	points = points[:t+1]
	if t == 0 {
		return points[0], nil
	}
	coeffs, err := lagrangeCoeffsAtZero(indices)
	if err != nil {
		return zero, err
	}
	acc := pool.GetG1Jac()
	defer pool.PutG1Jac(acc)
	term := pool.GetG1Jac()
	defer pool.PutG1Jac(term)

	var bi big.Int
	for i := range points {
		term.FromAffine(&points[i])
		coeffs[i].BigInt(&bi)
		term.ScalarMultiplication(term, &bi)
		acc.AddAssign(term)
	}
	return g1FromJac(acc), nil
}

// InterpolateG2 is InterpolateG1's counterpart for G2-valued shares, such
// as BLS signature shares.
func InterpolateG2(t int, indices []uint64, points []bls12381.G2Affine) (bls12381.G2Affine, error) {
	var zero bls12381.G2Affine
	if err := checkThreshold(t, len(points)); err != nil {
		return zero, err
	}
	indices = indices[:t+1]
	points = points[:t+1]
	if t == 0 {
		return points[0], nil
	}
	coeffs, err := lagrangeCoeffsAtZero(indices)
	if err != nil {
		return zero, err
	}
	acc := pool.GetG2Jac()
	defer pool.PutG2Jac(acc)
	term := pool.GetG2Jac()
	defer pool.PutG2Jac(term)

	var bi big.Int
	for i := range points {
		term.FromAffine(&points[i])
		coeffs[i].BigInt(&bi)
		term.ScalarMultiplication(term, &bi)
		acc.AddAssign(term)
	}
	return g2FromJac(acc), nil
}

// InterpolateFr is the scalar-field analogue, used by tests that
// reconstruct a secret polynomial's constant term directly from scalar
// shares rather than from their public commitments.
func InterpolateFr(t int, indices []uint64, values []fr.Element) (fr.Element, error) {
	var zero fr.Element
	if err := checkThreshold(t, len(values)); err != nil {
		return zero, err
	}
	indices = indices[:t+1]
	values = values[:t+1]
	if t == 0 {
		return values[0], nil
	}
	coeffs, err := lagrangeCoeffsAtZero(indices)
	if err != nil {
		return zero, err
	}
	var acc, term fr.Element
	for i := range values {
		term.Mul(&coeffs[i], &values[i])
		acc.Add(&acc, &term)
	}
	return acc, nil
}
