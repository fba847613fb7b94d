// Package signing wraps the secp256k1 primitives used by sabre.
//
// Contents
//
//   - A fixed signing context carrying the curve parameters (NewContext),
//     constructed once and passed explicitly to whoever needs to create or
//     verify signatures
//   - Private-key parsing with curve validation (ParsePrivateKey)
//   - A Signer binding one private key to the context, producing 64-byte
//     r||s signatures over the SHA-256 digest of the message
//
// # Notes
//
// Public keys are exchanged in 33-byte compressed SEC1 form. Signatures are
// the raw r||s concatenation, not DER.
package signing
