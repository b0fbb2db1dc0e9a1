package sig_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/med0vyj/massa/sig"
)

func TestErrorPredicatesAreMutuallyExclusive(t *testing.T) {
	_, invalidVersionErr := sig.PublicKeyFromBytes(append([]byte{9}, make([]byte, 32)...))
	require.True(t, sig.IsInvalidVersion(invalidVersionErr))
	require.False(t, sig.IsParsing(invalidVersionErr))
	require.False(t, sig.IsSignatureError(invalidVersionErr))

	_, parsingErr := sig.PublicKeyFromBytes([]byte{0x00, 0x01})
	require.True(t, sig.IsParsing(parsingErr))
	require.False(t, sig.IsInvalidVersion(parsingErr))
	require.False(t, sig.IsSignatureError(parsingErr))

	kp, err := sig.GenerateKeyPair(sig.Version0)
	require.NoError(t, err)
	other, err := sig.GenerateKeyPair(sig.Version0)
	require.NoError(t, err)
	h := sig.HashFromBytes([32]byte{1})
	signatureErr := kp.GetPublicKey().Verify(h, other.Sign(h))
	require.True(t, sig.IsSignatureError(signatureErr))
	require.False(t, sig.IsInvalidVersion(signatureErr))
	require.False(t, sig.IsParsing(signatureErr))
}

func TestErrorPredicatesRejectNilAndForeignErrors(t *testing.T) {
	require.False(t, sig.IsInvalidVersion(nil))
	require.False(t, sig.IsParsing(nil))
	require.False(t, sig.IsSignatureError(nil))

	foreign := errors.New("some unrelated failure")
	require.False(t, sig.IsInvalidVersion(foreign))
	require.False(t, sig.IsParsing(foreign))
	require.False(t, sig.IsSignatureError(foreign))
}
