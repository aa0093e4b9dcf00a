package tcrypto

import (
	"crypto/rand"
	"testing"
)

func TestBatchVerifyValidBatch(t *testing.T) {
	const n = 6
	pks := make([]*PublicKey, n)
	msgs := make([][]byte, n)
	sigs := make([]*Signature, n)

	for i := 0; i < n; i++ {
		sk, err := NewSecretKey(rand.Reader)
		if err != nil {
			t.Fatalf("generating secret key %d: %v", i, err)
		}
		pks[i] = sk.PublicKey()
		msgs[i] = []byte{byte(i), byte(i + 1), byte(i + 2)}
		sigs[i] = sk.Sign(msgs[i])
	}

	ok, err := BatchVerify(pks, msgs, sigs)
	if err != nil {
		t.Fatalf("batch verify: %v", err)
	}
	if !ok {
		t.Fatal("batch verify rejected a genuinely valid batch")
	}
}

func TestBatchVerifyRejectsForgedEntry(t *testing.T) {
	const n = 4
	pks := make([]*PublicKey, n)
	msgs := make([][]byte, n)
	sigs := make([]*Signature, n)

	for i := 0; i < n; i++ {
		sk, err := NewSecretKey(rand.Reader)
		if err != nil {
			t.Fatalf("generating secret key %d: %v", i, err)
		}
		pks[i] = sk.PublicKey()
		msgs[i] = []byte{byte(i), byte(i + 1)}
		sigs[i] = sk.Sign(msgs[i])
	}

	// Swap in a signature by the wrong key for one entry.
	impostor, err := NewSecretKey(rand.Reader)
	if err != nil {
		t.Fatalf("generating impostor key: %v", err)
	}
	sigs[2] = impostor.Sign(msgs[2])

	ok, err := BatchVerify(pks, msgs, sigs)
	if err != nil {
		t.Fatalf("batch verify: %v", err)
	}
	if ok {
		t.Fatal("batch verify accepted a batch containing a forged signature")
	}
}

func TestBatchVerifyEmptyBatch(t *testing.T) {
	ok, err := BatchVerify(nil, nil, nil)
	if err != nil {
		t.Fatalf("batch verify: %v", err)
	}
	if !ok {
		t.Fatal("an empty batch should trivially verify")
	}
}

func TestBatchVerifyMismatchedLengths(t *testing.T) {
	sk, err := NewSecretKey(rand.Reader)
	if err != nil {
		t.Fatalf("generating secret key: %v", err)
	}
	pks := []*PublicKey{sk.PublicKey()}
	msgs := [][]byte{[]byte("a"), []byte("b")}
	sigs := []*Signature{sk.Sign([]byte("a"))}

	if _, err := BatchVerify(pks, msgs, sigs); err == nil {
		t.Fatal("expected an error for mismatched input lengths")
	}
}
