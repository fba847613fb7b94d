// Package commands defines the sabre CLI and wires dependencies for subcommands.
//
// Commands
//
//   - pubkey    Print the public key for the signing identity
//   - sign      Sign a file (or stdin) with the signing identity's key
//
// # Implementation
//
// The root command builds the signing context and key-loading service before
// any subcommand runs, so handlers share one context and one identity source.
// The signing key is read from $HOME/.sawtooth/keys/<name>.priv, where <name>
// comes from --key, the USER environment variable, or the OS account name.
package commands
