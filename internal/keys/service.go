package keys

import (
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/btcsuite/btcd/btcec/v2"

	"github.com/blockchaintp/sawtooth-sabre/internal/domain"
	"github.com/blockchaintp/sawtooth-sabre/internal/signing"
)

// keyDir is the key directory relative to the user's home.
var keyDir = filepath.Join(".sawtooth", "keys")

// Service loads signing keys from the user's key directory and turns them
// into signers bound to a shared signing context.
type Service struct {
	ids domain.IdentityProvider
	ctx *signing.Context
}

// New returns a key-loading service using the given identity source and
// signing context.
func New(ids domain.IdentityProvider, ctx *signing.Context) *Service {
	return &Service{ids: ids, ctx: ctx}
}

// ResolveIdentity returns the identity whose key should be loaded. An
// explicit name wins; otherwise the USER environment variable, then an
// operating-system lookup of the current user.
func (s *Service) ResolveIdentity(explicit string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	if name, ok := s.ids.Username(); ok {
		return name, nil
	}
	if name, ok := s.ids.CurrentUser(); ok {
		return name, nil
	}
	return "", ErrIdentityUnresolved
}

// KeyPath returns the key file path for identity, rooted at the user's home
// directory.
func (s *Service) KeyPath(identity string) (string, error) {
	home, ok := s.ids.HomeDir()
	if !ok {
		return "", ErrHomeDirUnresolved
	}
	return filepath.Join(home, keyDir, identity+".priv"), nil
}

// LoadPrivateKey reads and parses the key file at path. Only the first line
// is meaningful; anything after it is ignored.
func (s *Service) LoadPrivateKey(path string) (*btcec.PrivateKey, error) {
	raw, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrKeyFileNotFound, path)
	}
	if err != nil {
		return nil, err
	}

	line, _, _ := strings.Cut(string(raw), "\n")
	line = strings.TrimSpace(line)
	if line == "" {
		return nil, fmt.Errorf("%w: %s", ErrEmptyKeyFile, path)
	}

	keyBytes, err := hex.DecodeString(line)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrKeyParse, path, err)
	}
	priv, err := signing.ParsePrivateKey(keyBytes)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrKeyParse, path, err)
	}
	return priv, nil
}

// NewSigner resolves the identity, loads its private key and binds it to the
// signing context. An empty explicit name means "use the current user".
func (s *Service) NewSigner(explicit string) (domain.Signer, error) {
	identity, err := s.ResolveIdentity(explicit)
	if err != nil {
		return nil, err
	}
	path, err := s.KeyPath(identity)
	if err != nil {
		return nil, err
	}
	priv, err := s.LoadPrivateKey(path)
	if err != nil {
		return nil, err
	}
	return s.ctx.NewSigner(priv), nil
}
