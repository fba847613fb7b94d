package keys_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/blockchaintp/sawtooth-sabre/internal/keys"
)

func TestOSIdentityProvider_Username(t *testing.T) {
	t.Setenv("USER", "alice")

	name, ok := keys.OSIdentityProvider{}.Username()
	require.True(t, ok)
	require.Equal(t, "alice", name)
}

func TestOSIdentityProvider_UsernameUnset(t *testing.T) {
	t.Setenv("USER", "")

	_, ok := keys.OSIdentityProvider{}.Username()
	require.False(t, ok)
}

func TestOSIdentityProvider_HomeDir(t *testing.T) {
	t.Setenv("HOME", "/home/alice")

	dir, ok := keys.OSIdentityProvider{}.HomeDir()
	require.True(t, ok)
	require.Equal(t, "/home/alice", dir)
}
