package tcrypto

import (
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"golang.org/x/crypto/chacha20"
	"golang.org/x/crypto/sha3"

	"github.com/anupsv/threshold-crypto/internal/common"
)

// The three hash constructions below (hashG2, hashG1G2, xorWithHash) are
// not a standardized hash-to-curve scheme: they seed a ChaCha20 stream
// from a SHA3-256 digest and use the stream to derive a scalar or XOR
// mask. Two independent implementations of this package must produce byte
// identical output for identical input, so this construction, odd as it
// looks, must never be "cleaned up" into a standard hash-to-curve call
// without also changing every ciphertext and signature this library has
// ever produced.

// chachaStream expands a 32-byte seed into an n-byte keystream.
func chachaStream(seed [32]byte, n int) []byte {
	var nonce [chacha20.NonceSize]byte
	cipher, err := chacha20.NewUnauthenticatedCipher(seed[:], nonce[:])
	if err != nil {
		// Only possible if the key or nonce length is wrong, and both are
		// fixed-size arrays above, so this can't happen.
		panic(err)
	}
	out := make([]byte, n)
	cipher.XORKeyStream(out, out)
	return out
}

// hashToScalar derives a scalar field element from a 32-byte seed. The
// result is not drawn uniformly since SetBytes reduces the raw keystream
// bytes modulo the field order, but it is deterministic, which is all
// hashG2 and hashG1G2 need.
func hashToScalar(seed [32]byte) fr.Element {
	var e fr.Element
	e.SetBytes(chachaStream(seed, fr.Bytes))
	return e
}

// scalarMulG2Gen returns s times the G2 generator.
func scalarMulG2Gen(s *fr.Element) bls12381.G2Affine {
	_, _, _, g2Gen := bls12381.Generators()
	var j bls12381.G2Jac
	j.FromAffine(&g2Gen)
	var bi big.Int
	j.ScalarMultiplication(&j, s.BigInt(&bi))
	return g2FromJac(&j)
}

// hashG2 maps an arbitrary message to a point in G2. It backs both BLS
// message hashing (H(m) in the signature scheme) and, through
// hashG1G2, the ciphertext integrity check in the encryption scheme.
func hashG2(msg []byte) bls12381.G2Affine {
	seed := sha3.Sum256(msg)
	s := hashToScalar(seed)
	return scalarMulG2Gen(&s)
}

// hashG1G2 is H1 from the encryption scheme: it folds a ciphertext's U
// component (a G1 point) and V component (the masked message) into a
// single G2 point. When V is longer than common.H1Threshold bytes it is
// first compressed with SHA3-256; this boundary is load-bearing for wire
// compatibility and must not be changed.
func hashG1G2(u bls12381.G1Affine, v []byte) bls12381.G2Affine {
	vPrime := v
	if len(v) > common.H1Threshold {
		sum := sha3.Sum256(v)
		vPrime = sum[:]
	}
	ub := u.Bytes()
	preimage := make([]byte, 0, len(vPrime)+len(ub))
	preimage = append(preimage, vPrime...)
	preimage = append(preimage, ub[:]...)
	seed := sha3.Sum256(preimage)
	s := hashToScalar(seed)
	return scalarMulG2Gen(&s)
}

// xorWithHash is H2 from the encryption scheme: it derives a keystream
// from a G1 point (r*pk on encrypt, sk*U on decrypt: the same shared
// point, computed independently by encryptor and decryptor) and XORs it
// with the message. Being an XOR mask it is its own inverse, so the same function
// serves both encryption and decryption.
func xorWithHash(p bls12381.G1Affine, data []byte) []byte {
	pb := p.Bytes()
	seed := sha3.Sum256(pb[:])
	stream := chachaStream(seed, len(data))
	out := make([]byte, len(data))
	for i := range data {
		out[i] = data[i] ^ stream[i]
	}
	return out
}
