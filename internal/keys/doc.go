// Package keys locates and loads the user's signing key.
//
// The key for identity <name> lives at $HOME/.sawtooth/keys/<name>.priv, a
// text file whose first line is the hex-encoded private key. The identity is
// taken from an explicit name, the USER environment variable, or an
// operating-system lookup, in that order. Service composes the lookup, the
// file read and the parse into a ready-to-use signer.
package keys
