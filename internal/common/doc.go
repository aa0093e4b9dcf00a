// Package common provides shared functionality and constants used throughout
// the threshold-crypto library.
//
// This package includes:
// - The single error enumeration shared by every public operation
// - Curve-wide constants (point sizes, the H1 hashing threshold)
//
// This is an internal package not intended for direct use by applications.
// It supports the implementation of the public tcrypto package.
package common

import (
	"errors"
)

// Errors returned by tcrypto. There is deliberately one flat set rather than
// a taxonomy per subsystem. Errors from a caller-supplied rng are passed
// through wrapped, and BatchVerify reports mismatched input lengths with an
// error of its own; every other failure reduces to one of these four cases.
var (
	// ErrNotEnoughShares is returned when fewer than t+1 shares were
	// presented to a combination operation.
	ErrNotEnoughShares = errors.New("threshold-crypto: not enough shares")

	// ErrDuplicateEntry is returned when two share indices collide, or more
	// generally whenever a Lagrange denominator is zero and cannot be
	// inverted.
	ErrDuplicateEntry = errors.New("threshold-crypto: duplicate entry")

	// ErrInvalidBytes is returned when a byte encoding does not decode to a
	// valid curve point or well-formed composite value.
	ErrInvalidBytes = errors.New("threshold-crypto: invalid bytes")

	// ErrDegreeTooHigh is returned by TryRandom when the requested
	// polynomial degree cannot be represented in an addressable coefficient
	// slice.
	ErrDegreeTooHigh = errors.New("threshold-crypto: degree too high")
)
