package keys

import (
	"os"
	"os/user"

	"github.com/blockchaintp/sawtooth-sabre/internal/domain"
)

// OSIdentityProvider answers identity and home-directory lookups from the
// real process environment and operating system.
type OSIdentityProvider struct{}

// Username returns the USER environment variable.
func (OSIdentityProvider) Username() (string, bool) {
	name := os.Getenv("USER")
	return name, name != ""
}

// CurrentUser looks up the current user via the operating system.
func (OSIdentityProvider) CurrentUser() (string, bool) {
	u, err := user.Current()
	if err != nil || u.Username == "" {
		return "", false
	}
	return u.Username, true
}

// HomeDir returns the current user's home directory.
func (OSIdentityProvider) HomeDir() (string, bool) {
	dir, err := os.UserHomeDir()
	if err != nil || dir == "" {
		return "", false
	}
	return dir, true
}

// Compile-time assertion that OSIdentityProvider implements domain.IdentityProvider.
var _ domain.IdentityProvider = OSIdentityProvider{}
