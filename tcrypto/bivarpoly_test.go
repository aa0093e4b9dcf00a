package tcrypto

import (
	"crypto/rand"
	"testing"
)

func TestBivarPolySymmetric(t *testing.T) {
	bp, err := RandomBivarPoly(3, rand.Reader)
	if err != nil {
		t.Fatalf("generating bivariate polynomial: %v", err)
	}

	for x := uint64(0); x < 5; x++ {
		for y := uint64(0); y < 5; y++ {
			a := bp.EvaluateUint64(x, y)
			b := bp.EvaluateUint64(y, x)
			if !a.Equal(&b) {
				t.Fatalf("p(%d,%d) != p(%d,%d)", x, y, y, x)
			}
		}
	}
}

func TestBivarPolyRowMatchesEvaluate(t *testing.T) {
	bp, err := RandomBivarPoly(4, rand.Reader)
	if err != nil {
		t.Fatalf("generating bivariate polynomial: %v", err)
	}

	for i := 0; i <= bp.Degree; i++ {
		row := bp.Row(i)
		for y := uint64(0); y < 6; y++ {
			want := bp.EvaluateUint64(uint64(i), y)
			got := row.EvaluateUint64(y)
			if !got.Equal(&want) {
				t.Fatalf("row(%d)(%d): got %v, want %v", i, y, got, want)
			}
		}
	}
}

func TestBivarCommitmentMatchesPoly(t *testing.T) {
	bp, err := RandomBivarPoly(3, rand.Reader)
	if err != nil {
		t.Fatalf("generating bivariate polynomial: %v", err)
	}
	commit := bp.Commitment()

	for x := uint64(0); x < 4; x++ {
		for y := uint64(0); y < 4; y++ {
			fieldVal := bp.EvaluateUint64(x, y)
			groupVal := commit.Evaluate(intoFr(x), intoFr(y))

			sk := &SecretKey{scalar: fieldVal}
			want := sk.PublicKey()
			if !want.Equal(&PublicKey{point: groupVal}) {
				t.Fatalf("commitment at (%d,%d) does not match the field evaluation lifted to G1", x, y)
			}
		}
	}
}

func TestBivarCommitmentRowMatchesCommitment(t *testing.T) {
	bp, err := RandomBivarPoly(3, rand.Reader)
	if err != nil {
		t.Fatalf("generating bivariate polynomial: %v", err)
	}
	commit := bp.Commitment()

	for i := 0; i <= bp.Degree; i++ {
		row := commit.Row(i)
		polyRow := bp.Row(i)
		wantCommit := polyRow.Commitment()
		if !row.Equal(wantCommit) {
			t.Fatalf("BivarCommitment.Row(%d) does not match the commitment of BivarPoly.Row(%d)", i, i)
		}
	}
}

func TestRandomBivarPolyDegreeTooHigh(t *testing.T) {
	if _, err := RandomBivarPoly(maxPolyDegree+1, rand.Reader); err != ErrDegreeTooHigh {
		t.Fatalf("got error %v, want ErrDegreeTooHigh", err)
	}
}
