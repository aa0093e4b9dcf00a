// Package tcrypto implements a pairing-based threshold cryptosystem on the
// BLS12-381 curve: BLS signatures, Boneh-Franklin (BF01) public-key
// encryption with chosen-ciphertext security in the random-oracle model,
// and an (n, t+1)-threshold variant of both built on Shamir secret sharing
// over the scalar field.
//
// A SecretKeySet is a random degree-t polynomial f over the scalar field.
// Its image under scalar multiplication by the G1 generator, the
// Commitment, is published as the PublicKeySet. Party i (0-based) holds
// the share f(i+1); any observer can compute the matching public key
// share from the commitment alone. Any t+1 parties can combine their
// signature or decryption shares, via Lagrange interpolation at x=0, into
// a signature or decryption that verifies under the single master public
// key f(0).
//
// The curve arithmetic itself (field and group operations, pairing,
// point (de)compression) is supplied by github.com/consensys/gnark-crypto;
// this package only ever composes that library's G1/G2/pairing primitives,
// it does not reimplement them.
package tcrypto
