package tcrypto

import (
	"crypto/rand"
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// TestInterpolateFrRandomDegrees exercises InterpolateFr across a range
// of degrees, reconstructing a random polynomial's constant term from the
// shares of parties 0 through degree.
func TestInterpolateFrRandomDegrees(t *testing.T) {
	for degree := 0; degree <= 4; degree++ {
		poly, err := TryRandomPoly(degree, rand.Reader)
		if err != nil {
			t.Fatalf("degree %d: generating polynomial: %v", degree, err)
		}
		want := poly.Coeffs[0]

		indices := make([]uint64, degree+1)
		values := make([]fr.Element, degree+1)
		for i := 0; i <= degree; i++ {
			indices[i] = uint64(i)
			values[i] = poly.EvaluateUint64(uint64(i + 1))
		}

		got, err := InterpolateFr(degree, indices, values)
		if err != nil {
			t.Fatalf("degree %d: interpolating: %v", degree, err)
		}
		if !got.Equal(&want) {
			t.Errorf("degree %d: interpolated value does not match f(0)", degree)
		}
	}
}

// TestInterpolateNotEnoughShares checks that fewer than t+1 shares is
// rejected rather than silently reconstructing a wrong value.
func TestInterpolateNotEnoughShares(t *testing.T) {
	_, err := InterpolateFr(2, []uint64{0, 1}, []fr.Element{{}, {}})
	if err != ErrNotEnoughShares {
		t.Fatalf("got error %v, want ErrNotEnoughShares", err)
	}
}

// TestInterpolateDuplicateEntry checks that two samples at the same
// index are rejected, since the corresponding Lagrange denominator would
// be zero.
func TestInterpolateDuplicateEntry(t *testing.T) {
	_, err := InterpolateFr(1, []uint64{3, 3}, []fr.Element{{}, {}})
	if err != ErrDuplicateEntry {
		t.Fatalf("got error %v, want ErrDuplicateEntry", err)
	}
}

// TestInterpolateZeroDegree checks the degree-0 special case: a single
// sample is returned unchanged, without running the Lagrange sweep.
func TestInterpolateZeroDegree(t *testing.T) {
	var v fr.Element
	v.SetUint64(42)
	got, err := InterpolateFr(0, []uint64{7}, []fr.Element{v})
	if err != nil {
		t.Fatalf("interpolating: %v", err)
	}
	if !got.Equal(&v) {
		t.Fatalf("got %v, want %v", got, v)
	}
}
