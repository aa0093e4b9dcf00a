package common

// PKSize is the size in bytes of a compressed G1 point (public keys,
// public-key shares, decryption shares, commitment coefficients).
const PKSize = 48

// SigSize is the size in bytes of a compressed G2 point (signatures,
// signature shares, the W component of a ciphertext).
const SigSize = 96

// H1Threshold is the boundary, in bytes, at which hash_g1_g2 hashes the
// ciphertext's V component instead of folding it into the preimage
// directly. Carried over exactly from the reference implementation this
// scheme is ported from: anything reimplementing H1 must keep this exact
// boundary to remain wire-compatible.
const H1Threshold = 64
