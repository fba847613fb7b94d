package keys

import "errors"

var (
	// ErrIdentityUnresolved is returned when no explicit name was given and
	// neither the environment nor the OS can name the current user.
	ErrIdentityUnresolved = errors.New("unable to determine username")

	// ErrHomeDirUnresolved is returned when the home directory cannot be
	// determined.
	ErrHomeDirUnresolved = errors.New("unable to determine home directory")

	// ErrKeyFileNotFound is returned when the key file does not exist.
	ErrKeyFileNotFound = errors.New("no such key file")

	// ErrEmptyKeyFile is returned when the key file has no non-empty first line.
	ErrEmptyKeyFile = errors.New("empty key file")

	// ErrKeyParse is returned when the first line of the key file is not a
	// valid hex-encoded secp256k1 private key. The underlying decode error is
	// attached to the chain.
	ErrKeyParse = errors.New("unable to parse private key file")
)
