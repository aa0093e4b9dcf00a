package tcrypto

import (
	"bytes"
	"testing"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"golang.org/x/crypto/sha3"
)

func TestHashG2Deterministic(t *testing.T) {
	msg := []byte("same message every time")
	a := hashG2(msg)
	b := hashG2(msg)
	if cmpG2(&a, &b) != 0 {
		t.Fatal("hashG2 produced different points for the same message")
	}

	c := hashG2([]byte("a different message"))
	if cmpG2(&a, &c) == 0 {
		t.Fatal("hashG2 produced the same point for two different messages")
	}
}

func TestHashG1G2Deterministic(t *testing.T) {
	var u bls12381.G1Affine
	_, _, g1Gen, _ := bls12381.Generators()
	u = g1Gen

	v := []byte("ciphertext V component")
	a := hashG1G2(u, v)
	b := hashG1G2(u, v)
	if cmpG2(&a, &b) != 0 {
		t.Fatal("hashG1G2 produced different points for identical input")
	}
}

// TestHashG1G2ThresholdBoundary checks that V is folded into the preimage
// directly at exactly common.H1Threshold bytes, and compressed with
// SHA3-256 first as soon as it exceeds that boundary. A decoder that got
// this boundary off by one byte would compute a different H1 point and
// silently fail every ciphertext integrity check for messages of that
// length.
func TestHashG1G2ThresholdBoundary(t *testing.T) {
	_, _, g1Gen, _ := bls12381.Generators()

	atBoundary := bytes.Repeat([]byte{0x42}, 64)
	overBoundary := bytes.Repeat([]byte{0x42}, 65)

	// Two different-length inputs should (overwhelmingly likely) hash to
	// different points regardless of which branch each takes.
	h1 := hashG1G2(g1Gen, atBoundary)
	h2 := hashG1G2(g1Gen, overBoundary)
	if cmpG2(&h1, &h2) == 0 {
		t.Fatal("hashG1G2 collided across the H1Threshold boundary")
	}

	// Recompute both branches by hand: V || U for the at-boundary input,
	// SHA3-256(V) || U for the over-boundary one.
	ub := g1Gen.Bytes()
	directSeed := sha3.Sum256(append(append([]byte{}, atBoundary...), ub[:]...))
	directScalar := hashToScalar(directSeed)
	wantDirect := scalarMulG2Gen(&directScalar)
	if cmpG2(&h1, &wantDirect) != 0 {
		t.Fatal("hashG1G2 did not fold a V of exactly H1Threshold bytes into the preimage directly")
	}
	vDigest := sha3.Sum256(overBoundary)
	compressedSeed := sha3.Sum256(append(append([]byte{}, vDigest[:]...), ub[:]...))
	compressedScalar := hashToScalar(compressedSeed)
	wantCompressed := scalarMulG2Gen(&compressedScalar)
	if cmpG2(&h2, &wantCompressed) != 0 {
		t.Fatal("hashG1G2 did not compress a V longer than H1Threshold bytes with SHA3-256")
	}

	// Changing a byte beyond the compressed digest's influence should still
	// change the result for input over the boundary, confirming the
	// over-threshold branch actually folds in all of v rather than
	// truncating it.
	mutated := bytes.Repeat([]byte{0x42}, 65)
	mutated[64] = 0x43
	h3 := hashG1G2(g1Gen, mutated)
	if cmpG2(&h2, &h3) == 0 {
		t.Fatal("hashG1G2 ignored a change in the tail byte of an over-threshold V")
	}
}

func TestXorWithHashIsSelfInverse(t *testing.T) {
	_, _, g1Gen, _ := bls12381.Generators()
	msg := []byte("round trip through the same mask twice")

	masked := xorWithHash(g1Gen, msg)
	if bytes.Equal(masked, msg) {
		t.Fatal("masked output equals plaintext, keystream is all zero")
	}
	recovered := xorWithHash(g1Gen, masked)
	if !bytes.Equal(recovered, msg) {
		t.Fatalf("xorWithHash did not invert itself: got %q, want %q", recovered, msg)
	}
}
