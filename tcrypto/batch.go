package tcrypto

import (
	"fmt"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc"
	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"

	"github.com/anupsv/threshold-crypto/internal/pool"
)

// BatchVerify checks a batch of (public key, message, signature) triples
// with a single pairing computation instead of one pairing check per
// entry, using the standard random-linear-combination technique: sample
// an independent random scalar r_i per entry, fold every signature into
// one G2 multi-scalar multiplication, and fold every (r_i * pk_i,
// H(msg_i)) pair into one multi-pairing product.
//
// This only saves work when all n signatures are checked together and
// are expected to usually all be valid; if even one is forged, the
// batch as a whole is rejected and the caller gets no information about
// which entry failed. Callers that need per-signature fault isolation
// should fall back to individual PublicKey.Verify calls.
func BatchVerify(pks []*PublicKey, msgs [][]byte, sigs []*Signature) (bool, error) {
	n := len(pks)
	if n != len(msgs) || n != len(sigs) {
		return false, fmt.Errorf("threshold-crypto: batch verify: mismatched input lengths")
	}
	if n == 0 {
		return true, nil
	}

	scalars := pool.GetScalarSlice(n)
	defer pool.PutScalarSlice(scalars)
	scalars = scalars[:n]
	for i := range scalars {
		if _, err := scalars[i].SetRandom(); err != nil {
			return false, fmt.Errorf("threshold-crypto: batch verify: sampling scalar %d: %w", i, err)
		}
	}

	sigPoints := pool.GetG2AffineSlice(n)
	defer pool.PutG2AffineSlice(sigPoints)
	sigPoints = sigPoints[:n]
	for i, sig := range sigs {
		sigPoints[i] = sig.point
	}
	var combinedSig bls12381.G2Jac
	if _, err := combinedSig.MultiExp(sigPoints, scalars, ecc.MultiExpConfig{}); err != nil {
		return false, fmt.Errorf("threshold-crypto: batch verify: combining signatures: %w", err)
	}

	scaledKeys := make([]bls12381.G1Affine, n)
	hashes := make([]bls12381.G2Affine, n)
	var bi big.Int
	for i := range pks {
		var j bls12381.G1Jac
		j.FromAffine(&pks[i].point)
		j.ScalarMultiplication(&j, scalars[i].BigInt(&bi))
		scaledKeys[i] = g1FromJac(&j)
		hashes[i] = hashG2(msgs[i])
	}

	_, _, g1Gen, _ := bls12381.Generators()
	lhs, err := bls12381.Pair([]bls12381.G1Affine{g1Gen}, []bls12381.G2Affine{g2FromJac(&combinedSig)})
	if err != nil {
		return false, err
	}
	rhs, err := bls12381.Pair(scaledKeys, hashes)
	if err != nil {
		return false, err
	}
	return lhs.Equal(&rhs), nil
}
