package signing

import (
	"crypto/sha256"
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/ecdsa"

	"github.com/blockchaintp/sawtooth-sabre/internal/domain"
)

const (
	// PrivateKeyBytes is the size of a raw secp256k1 private key.
	PrivateKeyBytes = 32
	// PublicKeyBytes is the size of a compressed SEC1 public key.
	PublicKeyBytes = 33
	// SignatureBytes is the size of an r||s signature.
	SignatureBytes = 64
)

// ErrInvalidKey is returned when key material is not a usable secp256k1 scalar.
var ErrInvalidKey = errors.New("invalid secp256k1 private key")

// ParsePrivateKey validates raw key material and returns the private key.
func ParsePrivateKey(raw []byte) (*btcec.PrivateKey, error) {
	if len(raw) != PrivateKeyBytes {
		return nil, fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidKey, len(raw), PrivateKeyBytes)
	}
	priv, _ := btcec.PrivKeyFromBytes(raw)
	if priv.Key.IsZero() {
		return nil, fmt.Errorf("%w: zero scalar", ErrInvalidKey)
	}
	return priv, nil
}

// Context carries the fixed secp256k1 parameters. One context serves any
// number of signers.
type Context struct{}

// NewContext returns a secp256k1 signing context.
func NewContext() *Context { return &Context{} }

// NewSigner binds priv to the context.
func (c *Context) NewSigner(priv *btcec.PrivateKey) *Signer {
	return &Signer{priv: priv}
}

// Verify reports whether sig is a valid r||s signature over message under
// the compressed public key pub.
func (c *Context) Verify(message, sig, pub []byte) bool {
	if len(sig) != SignatureBytes {
		return false
	}
	pk, err := btcec.ParsePubKey(pub)
	if err != nil {
		return false
	}
	var r, s btcec.ModNScalar
	if r.SetByteSlice(sig[:32]) || s.SetByteSlice(sig[32:]) {
		return false
	}
	digest := sha256.Sum256(message)
	return ecdsa.NewSignature(&r, &s).Verify(digest[:], pk)
}

// Signer signs messages with a single secp256k1 private key.
type Signer struct {
	priv *btcec.PrivateKey
}

// Sign returns the 64-byte r||s signature over the SHA-256 digest of message.
func (s *Signer) Sign(message []byte) ([]byte, error) {
	digest := sha256.Sum256(message)
	compact := ecdsa.SignCompact(s.priv, digest[:], true)
	// SignCompact prepends a recovery byte; the wire format carries r||s only.
	return compact[1:], nil
}

// PublicKey returns the compressed SEC1 encoding of the public key.
func (s *Signer) PublicKey() []byte {
	return s.priv.PubKey().SerializeCompressed()
}

// Compile-time assertions against the domain contracts.
var (
	_ domain.Signer  = (*Signer)(nil)
	_ domain.Context = (*Context)(nil)
)
