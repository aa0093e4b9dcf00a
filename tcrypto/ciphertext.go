package tcrypto

import (
	"encoding/binary"
	"fmt"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"

	"github.com/anupsv/threshold-crypto/internal/common"
)

// Ciphertext is a BF01 ciphertext: U in G1 is the ephemeral key encoded in
// the exponent, V is the masked message, and W in G2 binds U and V
// together so that any tampering is detectable without the recipient's
// secret key (the pairing check in Verify).
type Ciphertext struct {
	U bls12381.G1Affine
	V []byte
	W bls12381.G2Affine
}

// Verify checks the ciphertext's internal consistency: e(G1gen, W) ==
// e(U, H1(U, V)). A ciphertext that fails this check was either
// corrupted in transit or deliberately tampered with, and decrypting it
// further would defeat the scheme's chosen-ciphertext security; callers
// must treat a failed Verify as equivalent to a decryption failure, never
// proceed to decrypt anyway and then discard the result.
func (ct *Ciphertext) Verify() bool {
	_, _, g1Gen, _ := bls12381.Generators()
	h1 := hashG1G2(ct.U, ct.V)
	lhs, err := bls12381.Pair([]bls12381.G1Affine{g1Gen}, []bls12381.G2Affine{ct.W})
	if err != nil {
		return false
	}
	rhs, err := bls12381.Pair([]bls12381.G1Affine{ct.U}, []bls12381.G2Affine{h1})
	if err != nil {
		return false
	}
	return lhs.Equal(&rhs)
}

// Bytes encodes ct as U (PKSize bytes) || len(V) (4-byte big-endian) || V
// || W (SigSize bytes).
func (ct *Ciphertext) Bytes() []byte {
	ub := ct.U.Bytes()
	wb := ct.W.Bytes()
	out := make([]byte, 0, len(ub)+4+len(ct.V)+len(wb))
	out = append(out, ub[:]...)
	var lenBuf [4]byte
	binary.BigEndian.PutUint32(lenBuf[:], uint32(len(ct.V)))
	out = append(out, lenBuf[:]...)
	out = append(out, ct.V...)
	out = append(out, wb[:]...)
	return out
}

// CiphertextFromBytes decodes a ciphertext produced by Ciphertext.Bytes.
func CiphertextFromBytes(b []byte) (*Ciphertext, error) {
	if len(b) < common.PKSize+4+common.SigSize {
		return nil, ErrInvalidBytes
	}
	var u bls12381.G1Affine
	if _, err := u.SetBytes(b[:common.PKSize]); err != nil {
		return nil, ErrInvalidBytes
	}
	rest := b[common.PKSize:]
	vLen := binary.BigEndian.Uint32(rest[:4])
	rest = rest[4:]
	if uint64(len(rest)) != uint64(vLen)+common.SigSize {
		return nil, ErrInvalidBytes
	}
	v := make([]byte, vLen)
	copy(v, rest[:vLen])
	rest = rest[vLen:]
	var w bls12381.G2Affine
	if _, err := w.SetBytes(rest[:common.SigSize]); err != nil {
		return nil, ErrInvalidBytes
	}
	return &Ciphertext{U: u, V: v, W: w}, nil
}

func (ct *Ciphertext) String() string {
	return fmt.Sprintf("Ciphertext(U=%x, V=%d bytes, W=%x)", ct.U.Bytes(), len(ct.V), ct.W.Bytes())
}
