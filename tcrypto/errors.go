package tcrypto

import "github.com/anupsv/threshold-crypto/internal/common"

// The error taxonomy is deliberately flat: apart from wrapped rng read
// errors and BatchVerify's mismatched-length error, every failure surface in
// this package reduces to one of these four sentinel values, re-exported
// from internal/common so callers never need to import that package
// directly.
var (
	// ErrNotEnoughShares is returned when fewer than t+1 shares were
	// presented to InterpolateG1/G2/Fr, CombineSignatures, or
	// PublicKeySet.Decrypt.
	ErrNotEnoughShares = common.ErrNotEnoughShares

	// ErrDuplicateEntry is returned when two share indices collide during
	// interpolation (equivalently: a Lagrange denominator was zero).
	ErrDuplicateEntry = common.ErrDuplicateEntry

	// ErrInvalidBytes is returned when a byte encoding does not decode to a
	// valid curve point or well-formed composite value.
	ErrInvalidBytes = common.ErrInvalidBytes

	// ErrDegreeTooHigh is returned by TryRandomPoly, TryRandomSecretKeySet
	// and RandomBivarPoly when the requested degree cannot be represented in
	// an addressable coefficient slice.
	ErrDegreeTooHigh = common.ErrDegreeTooHigh
)
