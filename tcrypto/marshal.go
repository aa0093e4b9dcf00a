package tcrypto

import (
	"encoding/binary"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// This file implements encoding.BinaryMarshaler / BinaryUnmarshaler for
// every type whose byte representation is safe to persist or send over
// the wire. SecretKey and SecretKeyShare deliberately do NOT implement
// these interfaces on the base type: a struct embedding a SecretKey must
// opt in explicitly via SerdeSecretKey / SerdeSecretKeyShare below, so
// that passing a key to an encoder by accident (e.g. inside a larger
// struct that derives MarshalBinary through embedding) cannot silently
// serialize secret material.
//
// Every Unmarshal here validates its input strictly and returns
// ErrInvalidBytes on anything malformed, rather than guessing at a
// best-effort decoding.

// MarshalBinary implements encoding.BinaryMarshaler.
func (pk *PublicKey) MarshalBinary() ([]byte, error) {
	b := pk.point.Bytes()
	return b[:], nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (pk *PublicKey) UnmarshalBinary(data []byte) error {
	if len(data) != 48 {
		return ErrInvalidBytes
	}
	if _, err := pk.point.SetBytes(data); err != nil {
		return ErrInvalidBytes
	}
	return nil
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (sig *Signature) MarshalBinary() ([]byte, error) {
	return sig.Bytes(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (sig *Signature) UnmarshalBinary(data []byte) error {
	decoded, err := SignatureFromBytes(data)
	if err != nil {
		return err
	}
	sig.point = decoded.point
	return nil
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (s *PublicKeyShare) MarshalBinary() ([]byte, error) {
	return s.pk.MarshalBinary()
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (s *PublicKeyShare) UnmarshalBinary(data []byte) error {
	return s.pk.UnmarshalBinary(data)
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (s *SignatureShare) MarshalBinary() ([]byte, error) {
	return s.sig.MarshalBinary()
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (s *SignatureShare) UnmarshalBinary(data []byte) error {
	return s.sig.UnmarshalBinary(data)
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (d *DecryptionShare) MarshalBinary() ([]byte, error) {
	b := d.point.Bytes()
	return b[:], nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (d *DecryptionShare) UnmarshalBinary(data []byte) error {
	if len(data) != 48 {
		return ErrInvalidBytes
	}
	if _, err := d.point.SetBytes(data); err != nil {
		return ErrInvalidBytes
	}
	return nil
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (ct *Ciphertext) MarshalBinary() ([]byte, error) {
	return ct.Bytes(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (ct *Ciphertext) UnmarshalBinary(data []byte) error {
	decoded, err := CiphertextFromBytes(data)
	if err != nil {
		return err
	}
	*ct = *decoded
	return nil
}

// MarshalBinary implements encoding.BinaryMarshaler. The encoding is the
// coefficient count (4-byte big-endian) followed by each compressed G1
// coefficient in order.
func (c *Commitment) MarshalBinary() ([]byte, error) {
	out := make([]byte, 4, 4+len(c.Coeffs)*48)
	binary.BigEndian.PutUint32(out, uint32(len(c.Coeffs)))
	for i := range c.Coeffs {
		b := c.Coeffs[i].Bytes()
		out = append(out, b[:]...)
	}
	return out, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (c *Commitment) UnmarshalBinary(data []byte) error {
	if len(data) < 4 {
		return ErrInvalidBytes
	}
	n := binary.BigEndian.Uint32(data[:4])
	rest := data[4:]
	if uint64(len(rest)) != uint64(n)*48 {
		return ErrInvalidBytes
	}
	coeffs := make([]bls12381.G1Affine, n)
	for i := range coeffs {
		if _, err := coeffs[i].SetBytes(rest[i*48 : (i+1)*48]); err != nil {
			return ErrInvalidBytes
		}
	}
	c.Coeffs = coeffs
	return nil
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (p *PublicKeySet) MarshalBinary() ([]byte, error) {
	return p.commit.MarshalBinary()
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (p *PublicKeySet) UnmarshalBinary(data []byte) error {
	c := &Commitment{}
	if err := c.UnmarshalBinary(data); err != nil {
		return err
	}
	p.commit = c
	return nil
}

// SerdeSecretKey is an explicit, opt-in wrapper that makes a SecretKey
// serializable. Its existence as a separate type, rather than
// MarshalBinary on SecretKey itself, is the whole point: a caller has to
// name SerdeSecretKey to get a secret key into a byte stream, so it can
// never happen as a side effect of encoding some larger structure that
// merely contains a SecretKey field.
type SerdeSecretKey struct {
	SecretKey *SecretKey
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (s SerdeSecretKey) MarshalBinary() ([]byte, error) {
	b := s.SecretKey.scalar.Bytes()
	return b[:], nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (s *SerdeSecretKey) UnmarshalBinary(data []byte) error {
	if len(data) != 32 {
		return ErrInvalidBytes
	}
	var e fr.Element
	if err := e.SetBytesCanonical(data); err != nil {
		return ErrInvalidBytes
	}
	sk := &SecretKey{scalar: e}
	sk.armZeroizeFinalizer()
	s.SecretKey = sk
	return nil
}

// SerdeSecretKeyShare is the SecretKeyShare analogue of SerdeSecretKey.
type SerdeSecretKeyShare struct {
	SecretKeyShare *SecretKeyShare
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (s SerdeSecretKeyShare) MarshalBinary() ([]byte, error) {
	return SerdeSecretKey{SecretKey: &s.SecretKeyShare.sk}.MarshalBinary()
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (s *SerdeSecretKeyShare) UnmarshalBinary(data []byte) error {
	var inner SerdeSecretKey
	if err := inner.UnmarshalBinary(data); err != nil {
		return err
	}
	s.SecretKeyShare = &SecretKeyShare{sk: *inner.SecretKey}
	return nil
}
