package tcrypto

import (
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// SecretKeyShare is one party's share of a threshold secret key: the
// value f(i+1) of the dealer's sharing polynomial. It has the same shape
// as SecretKey, but is kept as a distinct type so the two are never
// confused at the API boundary.
type SecretKeyShare struct {
	sk SecretKey
}

// newSecretKeyShare wraps a scalar as a SecretKeyShare.
func newSecretKeyShare(scalar fr.Element) *SecretKeyShare {
	s := &SecretKeyShare{sk: SecretKey{scalar: scalar}}
	s.sk.armZeroizeFinalizer()
	return s
}

// PublicKeyShare derives the public key share matching this secret share.
func (s *SecretKeyShare) PublicKeyShare() *PublicKeyShare {
	return &PublicKeyShare{pk: *s.sk.PublicKey()}
}

// Sign produces this party's signature share over msg.
func (s *SecretKeyShare) Sign(msg []byte) *SignatureShare {
	return &SignatureShare{sig: *s.sk.Sign(msg)}
}

// DecryptShare produces this party's decryption share of ct, first
// checking ct.Verify() the same way SecretKey.Decrypt does.
func (s *SecretKeyShare) DecryptShare(ct *Ciphertext) (*DecryptionShare, error) {
	if !ct.Verify() {
		return nil, ErrInvalidBytes
	}
	return s.DecryptShareNoVerify(ct), nil
}

// DecryptShareNoVerify produces a decryption share without checking the
// ciphertext's validity first. Useful when the caller has already
// verified ct once and wants to avoid repeating the pairing check across
// many shares of the same ciphertext.
func (s *SecretKeyShare) DecryptShareNoVerify(ct *Ciphertext) *DecryptionShare {
	var j bls12381.G1Jac
	j.FromAffine(&ct.U)
	var bi big.Int
	j.ScalarMultiplication(&j, s.sk.scalar.BigInt(&bi))
	return &DecryptionShare{point: g1FromJac(&j)}
}

// Reveal returns the secret share as a hex string, for tests and
// diagnostics only.
func (s *SecretKeyShare) Reveal() string {
	return s.sk.Reveal()
}

func (s *SecretKeyShare) String() string {
	return "SecretKeyShare(...)"
}

// Zeroize overwrites the secret share with zero.
func (s *SecretKeyShare) Zeroize() {
	s.sk.Zeroize()
}

// PublicKeyShare is the public counterpart to a SecretKeyShare.
type PublicKeyShare struct {
	pk PublicKey
}

// VerifyG2 reports whether sig matches hash under this share's key,
// without hashing a message first. Used internally by Verify, and
// directly by callers who already have a G2 hash (e.g. the result of a
// custom hash-to-curve step) rather than a raw message.
func (s *PublicKeyShare) VerifyG2(sig *SignatureShare, hash bls12381.G2Affine) bool {
	_, _, g1Gen, _ := bls12381.Generators()
	lhs, err := bls12381.Pair([]bls12381.G1Affine{g1Gen}, []bls12381.G2Affine{sig.sig.point})
	if err != nil {
		return false
	}
	rhs, err := bls12381.Pair([]bls12381.G1Affine{s.pk.point}, []bls12381.G2Affine{hash})
	if err != nil {
		return false
	}
	return lhs.Equal(&rhs)
}

// Verify reports whether sig is a valid signature share over msg.
func (s *PublicKeyShare) Verify(sig *SignatureShare, msg []byte) bool {
	return s.VerifyG2(sig, hashG2(msg))
}

// VerifyDecryptionShare reports whether share is a valid decryption share
// of ct under this public key share: e(share, H1(U,V)) == e(pk_share, W).
func (s *PublicKeyShare) VerifyDecryptionShare(share *DecryptionShare, ct *Ciphertext) bool {
	h1 := hashG1G2(ct.U, ct.V)
	lhs, err := bls12381.Pair([]bls12381.G1Affine{share.point}, []bls12381.G2Affine{h1})
	if err != nil {
		return false
	}
	rhs, err := bls12381.Pair([]bls12381.G1Affine{s.pk.point}, []bls12381.G2Affine{ct.W})
	if err != nil {
		return false
	}
	return lhs.Equal(&rhs)
}

// Combine adds two public key shares, the same operation a dealer would
// use to merge independently-generated commitments during a joint
// threshold key setup.
func (s *PublicKeyShare) Combine(other *PublicKeyShare) *PublicKeyShare {
	var a, b bls12381.G1Jac
	a.FromAffine(&s.pk.point)
	b.FromAffine(&other.pk.point)
	a.AddAssign(&b)
	return &PublicKeyShare{pk: PublicKey{point: g1FromJac(&a)}}
}

// Bytes returns the compressed encoding of the share's public key.
func (s *PublicKeyShare) Bytes() []byte {
	b := s.pk.point.Bytes()
	return b[:]
}

func (s *PublicKeyShare) String() string {
	return s.pk.String()
}

// SignatureShare is one party's signature share over a message.
type SignatureShare struct {
	sig Signature
}

// Bytes returns the compressed encoding of the share.
func (s *SignatureShare) Bytes() []byte {
	return s.sig.Bytes()
}

func (s *SignatureShare) String() string {
	return s.sig.String()
}

// DecryptionShare is one party's decryption share of a ciphertext.
type DecryptionShare struct {
	point bls12381.G1Affine
}

// Bytes returns the compressed encoding of the share.
func (d *DecryptionShare) Bytes() []byte {
	b := d.point.Bytes()
	return b[:]
}

func (d *DecryptionShare) String() string {
	return "DecryptionShare(...)"
}
