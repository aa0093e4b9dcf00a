package tcrypto

import (
	"fmt"
	"io"
	"math/big"
	"runtime"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"

	"github.com/anupsv/threshold-crypto/internal/common"
	"github.com/anupsv/threshold-crypto/internal/pool"
)

// maxPolyDegree bounds the degree TryRandom will accept. A polynomial of
// this degree already needs more coefficient storage than any real
// deployment would use; it exists so that TryRandom has a concrete,
// reachable failure mode to return rather than attempting an allocation
// that will never succeed.
const maxPolyDegree = 1 << 20

// Poly is a polynomial over the BLS12-381 scalar field, represented by its
// coefficients in ascending order of degree. Coeffs[0] is the constant
// term; Coeffs[len-1] is the leading term, which callers should keep
// non-zero to avoid a padded, higher-than-actual degree.
//
// A Poly of degree t is the secret-sharing polynomial for a (t+1)-of-n
// threshold scheme: the constant term is the shared secret, and
// evaluating the polynomial at x = 1, 2, ... n gives out party shares.
type Poly struct {
	Coeffs []fr.Element
}

// ZeroPoly returns the polynomial whose every coefficient up to the given
// degree is zero.
func ZeroPoly(degree int) *Poly {
	return &Poly{Coeffs: make([]fr.Element, degree+1)}
}

// ConstantPoly returns the degree-0 polynomial equal to x everywhere.
func ConstantPoly(x fr.Element) *Poly {
	return &Poly{Coeffs: []fr.Element{x}}
}

// MonomialPoly returns x^degree, i.e. the polynomial with a single
// non-zero coefficient of 1 at the given degree.
func MonomialPoly(degree int) *Poly {
	p := ZeroPoly(degree)
	p.Coeffs[degree].SetOne()
	return p
}

// RandomPoly returns a polynomial of the given degree with coefficients
// drawn uniformly from the scalar field using rng. It panics if degree
// exceeds maxPolyDegree; use TryRandomPoly to observe that failure as an
// error instead.
func RandomPoly(degree int, rng io.Reader) *Poly {
	p, err := TryRandomPoly(degree, rng)
	if err != nil {
		panic(err)
	}
	return p
}

// TryRandomPoly is the fallible counterpart to RandomPoly.
func TryRandomPoly(degree int, rng io.Reader) (*Poly, error) {
	if degree < 0 || degree > maxPolyDegree {
		return nil, common.ErrDegreeTooHigh
	}
	coeffs := make([]fr.Element, degree+1)
	for i := range coeffs {
		s, err := sampleFr(rng)
		if err != nil {
			return nil, fmt.Errorf("threshold-crypto: sampling coefficient %d: %w", i, err)
		}
		coeffs[i] = s
	}
	p := &Poly{Coeffs: coeffs}
	p.armZeroizeFinalizer()
	return p, nil
}

// Degree returns the highest power with a coefficient, ignoring trailing
// zero coefficients.
func (p *Poly) Degree() int {
	d := len(p.Coeffs) - 1
	for d > 0 && p.Coeffs[d].IsZero() {
		d--
	}
	return d
}

// IsZero reports whether every coefficient of p is zero.
func (p *Poly) IsZero() bool {
	for i := range p.Coeffs {
		if !p.Coeffs[i].IsZero() {
			return false
		}
	}
	return true
}

// Evaluate computes p(x) using Horner's method.
func (p *Poly) Evaluate(x fr.Element) fr.Element {
	var result fr.Element
	for i := len(p.Coeffs) - 1; i >= 0; i-- {
		result.Mul(&result, &x)
		result.Add(&result, &p.Coeffs[i])
	}
	return result
}

// EvaluateUint64 is a convenience wrapper for the common case of
// evaluating at a small integer party index.
func (p *Poly) EvaluateUint64(x uint64) fr.Element {
	return p.Evaluate(intoFr(x))
}

// Commitment returns the public commitment to p: the image of every
// coefficient under scalar multiplication by the G1 generator. Anyone
// holding the commitment can verify a claimed share of p without learning
// p itself.
func (p *Poly) Commitment() *Commitment {
	_, _, g1Gen, _ := bls12381.Generators()
	j := pool.GetG1Jac()
	defer pool.PutG1Jac(j)

	var bi big.Int
	coeffs := make([]bls12381.G1Affine, len(p.Coeffs))
	for i := range p.Coeffs {
		j.FromAffine(&g1Gen)
		p.Coeffs[i].BigInt(&bi)
		j.ScalarMultiplication(j, &bi)
		coeffs[i] = g1FromJac(j)
	}
	return &Commitment{Coeffs: coeffs}
}

// Reveal formats every coefficient of p as a hex string, for use in tests
// and diagnostics where the secret values need to be inspected directly.
// Production code should never call this on a polynomial holding live key
// material.
func (p *Poly) Reveal() []string {
	out := make([]string, len(p.Coeffs))
	for i := range p.Coeffs {
		b := p.Coeffs[i].Bytes()
		out[i] = fmt.Sprintf("%x", b)
	}
	return out
}

// Add returns p + q as a new polynomial.
func (p *Poly) Add(q *Poly) *Poly {
	n := len(p.Coeffs)
	if len(q.Coeffs) > n {
		n = len(q.Coeffs)
	}
	out := make([]fr.Element, n)
	for i := 0; i < n; i++ {
		var a, b fr.Element
		if i < len(p.Coeffs) {
			a = p.Coeffs[i]
		}
		if i < len(q.Coeffs) {
			b = q.Coeffs[i]
		}
		out[i].Add(&a, &b)
	}
	return &Poly{Coeffs: out}
}

// Sub returns p - q as a new polynomial.
func (p *Poly) Sub(q *Poly) *Poly {
	n := len(p.Coeffs)
	if len(q.Coeffs) > n {
		n = len(q.Coeffs)
	}
	out := make([]fr.Element, n)
	for i := 0; i < n; i++ {
		var a, b fr.Element
		if i < len(p.Coeffs) {
			a = p.Coeffs[i]
		}
		if i < len(q.Coeffs) {
			b = q.Coeffs[i]
		}
		out[i].Sub(&a, &b)
	}
	return &Poly{Coeffs: out}
}

// Mul returns p * q as a new polynomial, computed by the schoolbook
// convolution of coefficients. Degrees in this scheme stay small (bounded
// by the threshold t), so there is no need for an FFT-based multiply.
func (p *Poly) Mul(q *Poly) *Poly {
	out := make([]fr.Element, len(p.Coeffs)+len(q.Coeffs)-1)
	var tmp fr.Element
	for i := range p.Coeffs {
		if p.Coeffs[i].IsZero() {
			continue
		}
		for j := range q.Coeffs {
			tmp.Mul(&p.Coeffs[i], &q.Coeffs[j])
			out[i+j].Add(&out[i+j], &tmp)
		}
	}
	return &Poly{Coeffs: out}
}

// MulScalar returns p scaled by a field element.
func (p *Poly) MulScalar(s fr.Element) *Poly {
	out := make([]fr.Element, len(p.Coeffs))
	for i := range p.Coeffs {
		out[i].Mul(&p.Coeffs[i], &s)
	}
	return &Poly{Coeffs: out}
}

// InterpolatePoly reconstructs the unique polynomial of degree
// len(samples)-1 passing through the given (x, y) pairs, using Lagrange
// basis polynomials in Newton-free form. It returns ErrDuplicateEntry if
// two samples share the same x coordinate, since the corresponding
// Lagrange denominator would be zero.
func InterpolatePoly(xs, ys []fr.Element) (*Poly, error) {
	n := len(xs)
	if n != len(ys) {
		panic("threshold-crypto: mismatched sample lengths")
	}
	result := ZeroPoly(0)
	result.Coeffs[0].SetZero()
	for i := 0; i < n; i++ {
		basis := ConstantPoly(fr.NewElement(1))
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

			// (x - xs[j]) as a degree-1 poly: [-xs[j], 1]
			var negXj fr.Element
			negXj.Neg(&xs[j])
			term := &Poly{Coeffs: []fr.Element{negXj, fr.NewElement(1)}}
			basis = basis.Mul(term)
		}
		var invDenom fr.Element
		invDenom.Inverse(&denom)
		scaled := basis.MulScalar(invDenom).MulScalar(ys[i])
		result = result.Add(scaled)
	}
	return result, nil
}

// Zeroize overwrites every coefficient of p with zero. Call this as soon
// as a polynomial holding secret share material is no longer needed.
func (p *Poly) Zeroize() {
	for i := range p.Coeffs {
		clearFr(&p.Coeffs[i])
	}
	disarmFinalizer(p)
}

// armZeroizeFinalizer registers a best-effort finalizer that zeroizes p's
// coefficients if the caller never calls Zeroize explicitly.
func (p *Poly) armZeroizeFinalizer() {
	runtime.SetFinalizer(p, func(p *Poly) { p.Zeroize() })
}
