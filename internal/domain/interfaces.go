package domain

// Signer produces signatures over messages with a private key bound at
// construction time.
type Signer interface {
	// Sign returns the signature over message.
	Sign(message []byte) ([]byte, error)

	// PublicKey returns the encoded public key matching the bound private key.
	PublicKey() []byte
}

// Context holds fixed signing-algorithm parameters shared by every signer
// created through it.
type Context interface {
	// Verify reports whether sig is a valid signature over message under pub,
	// where pub is encoded the way Signer.PublicKey encodes it.
	Verify(message, sig, pub []byte) bool
}

// IdentityProvider answers who the current user is and where their home
// directory lives. Lookups are split per source so callers control the
// fallback order; ok is false when a source has no answer.
type IdentityProvider interface {
	// Username returns the identity from the process environment (USER).
	Username() (name string, ok bool)

	// CurrentUser returns the identity from an operating-system lookup.
	CurrentUser() (name string, ok bool)

	// HomeDir returns the current user's home directory.
	HomeDir() (dir string, ok bool)
}
