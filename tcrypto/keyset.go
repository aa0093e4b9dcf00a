package tcrypto

import (
	"io"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
)

// SecretKeySet is a dealer's secret sharing polynomial together with the
// (n, t+1)-threshold scheme it defines: the constant term is the master
// secret key, and SecretKeyShare(i) gives out party i's share of it.
type SecretKeySet struct {
	poly *Poly
}

// RandomSecretKeySet draws a degree-t SecretKeySet using rng. It panics
// if degree exceeds the library's maximum representable polynomial
// degree; callers that need to handle that case as an error should call
// TryRandomSecretKeySet instead.
func RandomSecretKeySet(degree int, rng io.Reader) *SecretKeySet {
	return &SecretKeySet{poly: RandomPoly(degree, rng)}
}

// TryRandomSecretKeySet is the fallible counterpart to RandomSecretKeySet.
func TryRandomSecretKeySet(degree int, rng io.Reader) (*SecretKeySet, error) {
	p, err := TryRandomPoly(degree, rng)
	if err != nil {
		return nil, err
	}
	return &SecretKeySet{poly: p}, nil
}

// Threshold returns t: t+1 shares are required to reconstruct anything
// signed or encrypted under this key set.
func (s *SecretKeySet) Threshold() int {
	return s.poly.Degree()
}

// SecretKeyShare returns the share held by party i (0-based).
func (s *SecretKeySet) SecretKeyShare(i uint64) *SecretKeyShare {
	return newSecretKeyShare(s.poly.EvaluateUint64(i + 1))
}

// PublicKeys returns the public commitment to this key set, which anyone
// can use to derive public key shares and verify signature and
// decryption shares.
func (s *SecretKeySet) PublicKeys() *PublicKeySet {
	return &PublicKeySet{commit: s.poly.Commitment()}
}

// secretKey reconstructs the master secret key directly from the
// polynomial's constant term. Exported only within the package: outside
// of tests, nothing should ever need the unsplit master key, since
// holding it defeats the purpose of secret sharing it in the first
// place.
func (s *SecretKeySet) secretKey() *SecretKey {
	sk := &SecretKey{scalar: s.poly.Coeffs[0]}
	sk.armZeroizeFinalizer()
	return sk
}

// Zeroize overwrites the sharing polynomial's coefficients with zero.
func (s *SecretKeySet) Zeroize() {
	s.poly.Zeroize()
}

// PublicKeySet is the public commitment to a SecretKeySet.
type PublicKeySet struct {
	commit *Commitment
}

// Threshold returns t: t+1 shares are required to combine anything
// signed or encrypted under this key set.
func (p *PublicKeySet) Threshold() int {
	return p.commit.Degree()
}

// PublicKey returns the master public key, matching the secret key at
// the sharing polynomial's constant term.
func (p *PublicKeySet) PublicKey() *PublicKey {
	return &PublicKey{point: p.commit.EvaluateUint64(0)}
}

// PublicKeyShare returns the public key share matching party i's secret
// share, derivable from the commitment alone.
func (p *PublicKeySet) PublicKeyShare(i uint64) *PublicKeyShare {
	return &PublicKeyShare{pk: PublicKey{point: p.commit.EvaluateUint64(i + 1)}}
}

// CombineSignatures combines t+1 (or more) signature shares, keyed by
// party index, into the one signature that verifies under PublicKey. It
// returns ErrNotEnoughShares if fewer than Threshold()+1 shares are
// given, and ErrDuplicateEntry if two shares carry the same index.
func (p *PublicKeySet) CombineSignatures(shares map[uint64]*SignatureShare) (*Signature, error) {
	indices := make([]uint64, 0, len(shares))
	points := make([]bls12381.G2Affine, 0, len(shares))
	for i, sh := range shares {
		indices = append(indices, i)
		points = append(points, sh.sig.point)
	}
	point, err := InterpolateG2(p.Threshold(), indices, points)
	if err != nil {
		return nil, err
	}
	return &Signature{point: point}, nil
}

// Decrypt combines t+1 (or more) decryption shares, keyed by party
// index, to recover the plaintext of ct.
func (p *PublicKeySet) Decrypt(shares map[uint64]*DecryptionShare, ct *Ciphertext) ([]byte, error) {
	indices := make([]uint64, 0, len(shares))
	points := make([]bls12381.G1Affine, 0, len(shares))
	for i, sh := range shares {
		indices = append(indices, i)
		points = append(points, sh.point)
	}
	shared, err := InterpolateG1(p.Threshold(), indices, points)
	if err != nil {
		return nil, err
	}
	return xorWithHash(shared, ct.V), nil
}

// Combine adds two public key sets together, the step a set of
// independent dealers takes to turn their individually-shared secrets
// into one jointly-shared one.
func (p *PublicKeySet) Combine(other *PublicKeySet) *PublicKeySet {
	return &PublicKeySet{commit: p.commit.Add(other.commit)}
}

// Bytes returns the concatenated compressed encoding of every
// commitment coefficient.
func (p *PublicKeySet) Bytes() []byte {
	out := make([]byte, 0, len(p.commit.Coeffs)*48)
	for i := range p.commit.Coeffs {
		b := p.commit.Coeffs[i].Bytes()
		out = append(out, b[:]...)
	}
	return out
}
