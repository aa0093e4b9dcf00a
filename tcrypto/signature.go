package tcrypto

import (
	"fmt"
	"math/bits"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"

	"github.com/anupsv/threshold-crypto/internal/common"
)

// Signature is a BLS signature: a point in G2.
type Signature struct {
	point bls12381.G2Affine
}

// Bytes returns the compressed, SigSize-byte encoding of sig.
func (sig *Signature) Bytes() []byte {
	b := sig.point.Bytes()
	return b[:]
}

// SignatureFromBytes decodes a compressed G2 point produced by
// Signature.Bytes.
func SignatureFromBytes(b []byte) (*Signature, error) {
	if len(b) != common.SigSize {
		return nil, ErrInvalidBytes
	}
	var a bls12381.G2Affine
	var arr [common.SigSize]byte
	copy(arr[:], b)
	if _, err := a.SetBytes(arr[:]); err != nil {
		return nil, ErrInvalidBytes
	}
	return &Signature{point: a}, nil
}

// Parity returns a single bit derived from sig's uncompressed encoding:
// the XOR-reduction of every byte, reduced further to one bit via
// popcount parity. It has no cryptographic meaning on its own; it exists
// as a cheap, deterministic coin flip derived from a signature, the kind
// of thing a lottery or leader-election scheme built on top of this
// library might use threshold signatures for.
func (sig *Signature) Parity() bool {
	b := sig.point.RawBytes()
	var acc byte
	for _, x := range b {
		acc ^= x
	}
	return bits.OnesCount8(acc)%2 == 1
}

// Equal reports whether sig and other encode the same G2 point.
func (sig *Signature) Equal(other *Signature) bool {
	return cmpG2(&sig.point, &other.point) == 0
}

// Cmp gives Signature a total order based on its compressed encoding, so
// that signatures can be sorted or used as map keys via a comparable
// wrapper.
func (sig *Signature) Cmp(other *Signature) int {
	return cmpG2(&sig.point, &other.point)
}

func (sig *Signature) String() string {
	return fmt.Sprintf("Signature(%x)", sig.Bytes())
}
