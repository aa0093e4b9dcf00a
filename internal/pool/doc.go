// Package pool provides memory optimization through object pooling.
//
// It implements pooling for the BLS12-381 group and field elements that
// tcrypto allocates on every polynomial evaluation, commitment, and
// interpolation: G1/G2 points in both Jacobian and affine form, and
// fr.Element scalar slices. This helps reduce allocation and GC overhead
// in threshold operations, where a single signature or decryption share
// combination touches O(t) points.
//
// This is an internal package not intended for direct use by applications.
// It is used by the core tcrypto implementation to optimize memory usage.
package pool
