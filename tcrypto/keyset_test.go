package tcrypto

import (
	"bytes"
	"crypto/cipher"
	"crypto/rand"
	"io"
	"math"
	"testing"

	"golang.org/x/crypto/chacha20"
)

// zeroReader feeds an unbounded stream of zero bytes, turning a ChaCha20
// cipher.Stream into a deterministic io.Reader via cipher.StreamReader.
type zeroReader struct{}

func (zeroReader) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = 0
	}
	return len(p), nil
}

// seededReader returns a deterministic io.Reader: the same seed always
// produces the same byte stream, and different seeds diverge.
func seededReader(seed byte) io.Reader {
	var key [32]byte
	key[0] = seed
	var nonce [chacha20.NonceSize]byte
	c, err := chacha20.NewUnauthenticatedCipher(key[:], nonce[:])
	if err != nil {
		panic(err)
	}
	return &cipher.StreamReader{S: c, R: zeroReader{}}
}

// TestSimpleSig covers a plain, non-threshold BLS sign/verify round trip.
func TestSimpleSig(t *testing.T) {
	sk, err := NewSecretKey(rand.Reader)
	if err != nil {
		t.Fatalf("generating secret key: %v", err)
	}
	pk := sk.PublicKey()
	msg := []byte("Totally real news")

	sig := sk.Sign(msg)
	if !pk.Verify(sig, msg) {
		t.Fatal("signature does not verify under its own public key")
	}
	if pk.Verify(sig, []byte("Very real news")) {
		t.Fatal("signature verified against the wrong message")
	}
}

// TestThresholdSig exercises combining signature shares from two
// different quorums of a 3-of-n threshold scheme over the same message,
// checking that both combinations land on the same, independently
// verifiable signature.
func TestThresholdSig(t *testing.T) {
	const threshold = 2
	set, err := TryRandomSecretKeySet(threshold, rand.Reader)
	if err != nil {
		t.Fatalf("generating threshold key set: %v", err)
	}
	pubSet := set.PublicKeys()
	msg := []byte("Totally real news")

	combine := func(indices []uint64) *Signature {
		shares := make(map[uint64]*SignatureShare, len(indices))
		for _, i := range indices {
			shares[i] = set.SecretKeyShare(i).Sign(msg)
		}
		sig, err := pubSet.CombineSignatures(shares)
		if err != nil {
			t.Fatalf("combining signature shares %v: %v", indices, err)
		}
		return sig
	}

	sig1 := combine([]uint64{5, 8, 7, 10})
	sig2 := combine([]uint64{42, 43, 44, 45})

	if !sig1.Equal(sig2) {
		t.Fatal("combining different quorums produced different signatures")
	}
	if !pubSet.PublicKey().Verify(sig1, msg) {
		t.Fatal("combined signature does not verify under the master public key")
	}
}

// TestSimpleEnc covers a plain, non-threshold BF01 encrypt/decrypt round
// trip, plus rejection of a tampered ciphertext.
func TestSimpleEnc(t *testing.T) {
	sk, err := NewSecretKey(rand.Reader)
	if err != nil {
		t.Fatalf("generating secret key: %v", err)
	}
	pk := sk.PublicKey()
	msg := []byte("You know what I'm saying.")

	ct, err := pk.Encrypt(msg, rand.Reader)
	if err != nil {
		t.Fatalf("encrypting: %v", err)
	}
	got, err := sk.Decrypt(ct)
	if err != nil {
		t.Fatalf("decrypting: %v", err)
	}
	if !bytes.Equal(got, msg) {
		t.Fatalf("decrypted %q, want %q", got, msg)
	}

	// A chosen-ciphertext attacker who zeroes out V must be rejected by
	// the integrity check rather than handed a decryption of garbage.
	tampered := &Ciphertext{U: ct.U, V: make([]byte, len(ct.V)), W: ct.W}
	if tampered.Verify() {
		t.Fatal("tampered ciphertext with zeroed V unexpectedly verified")
	}
	if _, err := sk.Decrypt(tampered); err != ErrInvalidBytes {
		t.Fatalf("got error %v decrypting tampered ciphertext, want ErrInvalidBytes", err)
	}
}

// TestThresholdEnc exercises combining decryption shares from a quorum
// of a 3-of-n threshold scheme.
func TestThresholdEnc(t *testing.T) {
	const threshold = 2
	set, err := TryRandomSecretKeySet(threshold, rand.Reader)
	if err != nil {
		t.Fatalf("generating threshold key set: %v", err)
	}
	pubSet := set.PublicKeys()
	msg := []byte("You know what I'm saying.")

	ct, err := pubSet.PublicKey().Encrypt(msg, rand.Reader)
	if err != nil {
		t.Fatalf("encrypting: %v", err)
	}

	shares := make(map[uint64]*DecryptionShare)
	for _, i := range []uint64{1, 2, 4, 7} {
		share := set.SecretKeyShare(i)
		ds, err := share.DecryptShare(ct)
		if err != nil {
			t.Fatalf("party %d: producing decryption share: %v", i, err)
		}
		if !pubSet.PublicKeyShare(i).VerifyDecryptionShare(ds, ct) {
			t.Fatalf("party %d: decryption share failed verification", i)
		}
		shares[i] = ds
	}

	got, err := pubSet.Decrypt(shares, ct)
	if err != nil {
		t.Fatalf("combining decryption shares: %v", err)
	}
	if !bytes.Equal(got, msg) {
		t.Fatalf("decrypted %q, want %q", got, msg)
	}
}

// TestRandomExtremeThresholds checks that an unreasonably large
// requested threshold is rejected as ErrDegreeTooHigh rather than
// attempting an allocation that could never succeed.
func TestRandomExtremeThresholds(t *testing.T) {
	_, err := TryRandomSecretKeySet(math.MaxInt32, rand.Reader)
	if err != ErrDegreeTooHigh {
		t.Fatalf("got error %v, want ErrDegreeTooHigh", err)
	}

	_, err = TryRandomSecretKeySet(0, rand.Reader)
	if err != nil {
		t.Fatalf("threshold 0 should succeed, got %v", err)
	}
}

// TestRandomSecretKeySetPanics checks that the panicking constructor
// does in fact panic on a degree that TryRandom would reject.
func TestRandomSecretKeySetPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected RandomSecretKeySet to panic on an oversized degree")
		}
	}()
	RandomSecretKeySet(math.MaxInt32, rand.Reader)
}

// TestNewSecretKeyDeterministicForSeededReader checks that NewSecretKey
// actually honors the rng it is given: two calls seeded with the same
// deterministic reader produce the same key, and a differently seeded
// reader produces a different one.
func TestNewSecretKeyDeterministicForSeededReader(t *testing.T) {
	a, err := NewSecretKey(seededReader(1))
	if err != nil {
		t.Fatalf("generating secret key a: %v", err)
	}
	b, err := NewSecretKey(seededReader(1))
	if err != nil {
		t.Fatalf("generating secret key b: %v", err)
	}
	if a.Reveal() != b.Reveal() {
		t.Fatal("two secret keys drawn from identically seeded readers differ")
	}

	c, err := NewSecretKey(seededReader(2))
	if err != nil {
		t.Fatalf("generating secret key c: %v", err)
	}
	if a.Reveal() == c.Reveal() {
		t.Fatal("secret keys drawn from differently seeded readers matched")
	}
}

// TestCombinePublicKeySets checks that combining two independently
// generated key sets' public commitments is consistent with adding
// their underlying secret polynomials.
func TestCombinePublicKeySets(t *testing.T) {
	const threshold = 1
	a, err := TryRandomSecretKeySet(threshold, rand.Reader)
	if err != nil {
		t.Fatalf("generating key set a: %v", err)
	}
	b, err := TryRandomSecretKeySet(threshold, rand.Reader)
	if err != nil {
		t.Fatalf("generating key set b: %v", err)
	}

	combined := a.PublicKeys().Combine(b.PublicKeys())

	wantPoly := a.poly.Add(b.poly)
	want := wantPoly.Commitment().EvaluateUint64(0)
	got := combined.PublicKey()

	if !got.Equal(&PublicKey{point: want}) {
		t.Fatal("combined public key set does not match the sum of the underlying polynomials")
	}
}
