package tcrypto

import (
	"fmt"
	"io"
	"math/big"
	"runtime"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// SecretKey is a single BLS secret key: a scalar in the field underlying
// BLS12-381. The zero value is a valid (if useless) key, matching the
// all-zero default a SecretKeyShare has before a dealer assigns it a real
// share.
type SecretKey struct {
	scalar fr.Element
}

// NewSecretKey draws a secret key uniformly at random using rng.
func NewSecretKey(rng io.Reader) (*SecretKey, error) {
	s, err := sampleFr(rng)
	if err != nil {
		return nil, fmt.Errorf("threshold-crypto: generating secret key: %w", err)
	}
	sk := &SecretKey{scalar: s}
	sk.armZeroizeFinalizer()
	return sk, nil
}

func (sk *SecretKey) armZeroizeFinalizer() {
	// The finalizer reaches the scalar through its argument: a closure
	// holding a pointer into sk would keep sk reachable forever.
	runtime.SetFinalizer(sk, func(sk *SecretKey) { clearFr(&sk.scalar) })
}

// PublicKey derives the public key matching sk: the G1 image of the
// secret scalar.
func (sk *SecretKey) PublicKey() *PublicKey {
	_, _, g1Gen, _ := bls12381.Generators()
	var j bls12381.G1Jac
	j.FromAffine(&g1Gen)
	var bi big.Int
	j.ScalarMultiplication(&j, sk.scalar.BigInt(&bi))
	return &PublicKey{point: g1FromJac(&j)}
}

// Sign produces a BLS signature over msg: sk times H(msg) in G2.
func (sk *SecretKey) Sign(msg []byte) *Signature {
	h := hashG2(msg)
	var j bls12381.G2Jac
	j.FromAffine(&h)
	var bi big.Int
	j.ScalarMultiplication(&j, sk.scalar.BigInt(&bi))
	return &Signature{point: g2FromJac(&j)}
}

// Decrypt recovers the plaintext from a ciphertext encrypted under sk's
// matching public key. It first checks the ciphertext's internal
// consistency (see Ciphertext.Verify) and returns ErrInvalidBytes if that
// check fails, since a tampered ciphertext is indistinguishable from a
// malformed one at this layer.
func (sk *SecretKey) Decrypt(ct *Ciphertext) ([]byte, error) {
	if !ct.Verify() {
		return nil, ErrInvalidBytes
	}
	var j bls12381.G1Jac
	j.FromAffine(&ct.U)
	var bi big.Int
	j.ScalarMultiplication(&j, sk.scalar.BigInt(&bi))
	shared := g1FromJac(&j)
	return xorWithHash(shared, ct.V), nil
}

// Reveal returns the secret scalar as a hex string. It exists for tests
// and diagnostics; production code should never log or print a secret
// key.
func (sk *SecretKey) Reveal() string {
	b := sk.scalar.Bytes()
	return fmt.Sprintf("%x", b)
}

// String deliberately does not print the key material, so that an
// accidental fmt.Println(sk) or inclusion in a log line cannot leak it.
func (sk *SecretKey) String() string {
	return "SecretKey(...)"
}

// Zeroize overwrites the secret scalar with zero. Call this as soon as a
// key is no longer needed, rather than relying on the backstop
// finalizer.
func (sk *SecretKey) Zeroize() {
	clearFr(&sk.scalar)
	disarmFinalizer(sk)
}

// PublicKey is a single BLS public key: a point in G1.
type PublicKey struct {
	point bls12381.G1Affine
}

// Verify reports whether sig is a valid BLS signature by pk over msg,
// checking e(G1gen, sig) == e(pk, H(msg)).
func (pk *PublicKey) Verify(sig *Signature, msg []byte) bool {
	_, _, g1Gen, _ := bls12381.Generators()
	h := hashG2(msg)
	lhs, err := bls12381.Pair([]bls12381.G1Affine{g1Gen}, []bls12381.G2Affine{sig.point})
	if err != nil {
		return false
	}
	rhs, err := bls12381.Pair([]bls12381.G1Affine{pk.point}, []bls12381.G2Affine{h})
	if err != nil {
		return false
	}
	return lhs.Equal(&rhs)
}

// Encrypt produces a BF01 ciphertext of msg under pk, using rng to draw
// the ephemeral scalar r.
func (pk *PublicKey) Encrypt(msg []byte, rng io.Reader) (*Ciphertext, error) {
	r, err := sampleFr(rng)
	if err != nil {
		return nil, fmt.Errorf("threshold-crypto: generating ephemeral scalar: %w", err)
	}
	defer clearFr(&r)

	_, _, g1Gen, _ := bls12381.Generators()
	var bi big.Int
	rBig := r.BigInt(&bi)

	var uJac bls12381.G1Jac
	uJac.FromAffine(&g1Gen)
	uJac.ScalarMultiplication(&uJac, rBig)
	u := g1FromJac(&uJac)

	var sharedJac bls12381.G1Jac
	sharedJac.FromAffine(&pk.point)
	sharedJac.ScalarMultiplication(&sharedJac, rBig)
	shared := g1FromJac(&sharedJac)

	v := xorWithHash(shared, msg)

	h1 := hashG1G2(u, v)
	var wJac bls12381.G2Jac
	wJac.FromAffine(&h1)
	wJac.ScalarMultiplication(&wJac, rBig)
	w := g2FromJac(&wJac)

	return &Ciphertext{U: u, V: v, W: w}, nil
}

// Equal reports whether pk and other encode the same G1 point.
func (pk *PublicKey) Equal(other *PublicKey) bool {
	return cmpG1(&pk.point, &other.point) == 0
}

// String prints the public key's compressed encoding. Unlike SecretKey,
// printing a public key is always safe.
func (pk *PublicKey) String() string {
	b := pk.point.Bytes()
	return fmt.Sprintf("PublicKey(%x)", b)
}
