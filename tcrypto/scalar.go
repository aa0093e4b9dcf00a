package tcrypto

import (
	"io"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// intoFr converts a small integer into a scalar field element. It mirrors
// the handful of integer widths that callers actually pass when building
// polynomials by hand (share indices, test fixtures), rather than exposing
// a generic numeric conversion.
func intoFr(v uint64) fr.Element {
	var e fr.Element
	e.SetUint64(v)
	return e
}

// cmpG1 gives G1 affine points a total order based on their compressed
// encoding. Used by the equality checks on commitments and public keys.
func cmpG1(a, b *bls12381.G1Affine) int {
	ab := a.Bytes()
	bb := b.Bytes()
	for i := range ab {
		if ab[i] != bb[i] {
			if ab[i] < bb[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// cmpG2 gives G2 affine points a total order based on their compressed
// encoding, for the same reason as cmpG1.
func cmpG2(a, b *bls12381.G2Affine) int {
	ab := a.Bytes()
	bb := b.Bytes()
	for i := range ab {
		if ab[i] != bb[i] {
			if ab[i] < bb[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// g1FromJac reduces a Jacobian G1 point to affine form.
func g1FromJac(j *bls12381.G1Jac) bls12381.G1Affine {
	var a bls12381.G1Affine
	a.FromJacobian(j)
	return a
}

// g2FromJac reduces a Jacobian G2 point to affine form.
func g2FromJac(j *bls12381.G2Jac) bls12381.G2Affine {
	var a bls12381.G2Affine
	a.FromJacobian(j)
	return a
}

// sampleFr draws a scalar field element by reading fr.Bytes worth of
// entropy from rng and reducing it modulo the field order, the same
// reduction hashG1G2 applies to its own keystream-derived scalars. This
// is what lets callers supply a deterministic rng and get a
// deterministic scalar back, which a bare SetRandom (always seeded from
// crypto/rand internally) cannot offer.
func sampleFr(rng io.Reader) (fr.Element, error) {
	var buf [fr.Bytes]byte
	if _, err := io.ReadFull(rng, buf[:]); err != nil {
		return fr.Element{}, err
	}
	var e fr.Element
	e.SetBytes(buf[:])
	return e, nil
}
