package signing_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/blockchaintp/sawtooth-sabre/internal/signing"
)

func testKey(t *testing.T) []byte {
	t.Helper()
	raw := bytes.Repeat([]byte{0x01}, signing.PrivateKeyBytes)
	return raw
}

func TestParsePrivateKey_RejectsWrongLength(t *testing.T) {
	_, err := signing.ParsePrivateKey([]byte{0xab, 0xcd})
	require.ErrorIs(t, err, signing.ErrInvalidKey)
}

func TestParsePrivateKey_RejectsZeroScalar(t *testing.T) {
	_, err := signing.ParsePrivateKey(make([]byte, signing.PrivateKeyBytes))
	require.ErrorIs(t, err, signing.ErrInvalidKey)
}

func TestSigner_SignAndVerify(t *testing.T) {
	priv, err := signing.ParsePrivateKey(testKey(t))
	require.NoError(t, err)

	ctx := signing.NewContext()
	signer := ctx.NewSigner(priv)

	message := []byte("create contract intkey 1.0")
	sig, err := signer.Sign(message)
	require.NoError(t, err)
	require.Len(t, sig, signing.SignatureBytes)

	require.True(t, ctx.Verify(message, sig, signer.PublicKey()))
}

func TestSigner_VerifyRejectsTamperedMessage(t *testing.T) {
	priv, err := signing.ParsePrivateKey(testKey(t))
	require.NoError(t, err)

	ctx := signing.NewContext()
	signer := ctx.NewSigner(priv)

	sig, err := signer.Sign([]byte("original"))
	require.NoError(t, err)

	require.False(t, ctx.Verify([]byte("tampered"), sig, signer.PublicKey()))
}

func TestSigner_PublicKeyIsStable(t *testing.T) {
	ctx := signing.NewContext()

	a, err := signing.ParsePrivateKey(testKey(t))
	require.NoError(t, err)
	b, err := signing.ParsePrivateKey(testKey(t))
	require.NoError(t, err)

	require.Equal(t, ctx.NewSigner(a).PublicKey(), ctx.NewSigner(b).PublicKey())
	require.Len(t, ctx.NewSigner(a).PublicKey(), signing.PublicKeyBytes)
}

func TestContext_VerifyRejectsMalformedInputs(t *testing.T) {
	priv, err := signing.ParsePrivateKey(testKey(t))
	require.NoError(t, err)

	ctx := signing.NewContext()
	signer := ctx.NewSigner(priv)
	pub := signer.PublicKey()

	sig, err := signer.Sign([]byte("msg"))
	require.NoError(t, err)

	require.False(t, ctx.Verify([]byte("msg"), sig[:10], pub))
	require.False(t, ctx.Verify([]byte("msg"), sig, []byte{0x02, 0x03}))
}
