package sig_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/med0vyj/massa/sig"
)

func TestGenerateKeyPairRejectsUnknownVersion(t *testing.T) {
	_, err := sig.GenerateKeyPair(sig.Version(7))
	require.Error(t, err)
	require.True(t, sig.IsInvalidVersion(err))
}

func TestKeyPairBytesRoundTrip(t *testing.T) {
	for _, v := range []sig.Version{sig.Version0, sig.Version1} {
		kp, err := sig.GenerateKeyPair(v)
		require.NoError(t, err)

		b := kp.Bytes()
		require.Len(t, b, kp.SerializedLen())

		decoded, err := sig.KeyPairFromBytes(b)
		require.NoError(t, err)
		require.Equal(t, kp.GetVersion(), decoded.GetVersion())
		require.True(t, kp.GetPublicKey().Equal(decoded.GetPublicKey()))
	}
}

func TestKeyPairBytesTrailingBytesIgnored(t *testing.T) {
	kp, err := sig.GenerateKeyPair(sig.Version0)
	require.NoError(t, err)

	b := append(kp.Bytes(), 0xde, 0xad, 0xbe, 0xef)
	decoded, err := sig.KeyPairFromBytes(b)
	require.NoError(t, err)
	require.True(t, kp.GetPublicKey().Equal(decoded.GetPublicKey()))
}

func TestKeyPairStringRoundTrip(t *testing.T) {
	kp, err := sig.GenerateKeyPair(sig.Version0)
	require.NoError(t, err)

	s := kp.String()
	require.Equal(t, byte('S'), s[0])

	decoded, err := sig.KeyPairFromString(s)
	require.NoError(t, err)
	require.True(t, kp.GetPublicKey().Equal(decoded.GetPublicKey()))
}

func TestKeyPairFromStringRejectsBadPrefix(t *testing.T) {
	kp, err := sig.GenerateKeyPair(sig.Version0)
	require.NoError(t, err)

	wrong := "P" + kp.String()[1:]
	_, err = sig.KeyPairFromString(wrong)
	require.Error(t, err)
	require.True(t, sig.IsParsing(err))
}

func TestKeyPairFromBytesRejectsShortPayload(t *testing.T) {
	_, err := sig.KeyPairFromBytes([]byte{0x00, 0x01, 0x02})
	require.Error(t, err)
	require.True(t, sig.IsParsing(err))
}

func TestKeyPairSignAndVerify(t *testing.T) {
	kp, err := sig.GenerateKeyPair(sig.Version1)
	require.NoError(t, err)

	h := sig.HashFromBytes([32]byte{1, 2, 3})
	s := kp.Sign(h)
	require.Equal(t, sig.Version1, s.GetVersion())

	require.NoError(t, kp.GetPublicKey().Verify(h, s))
}

func TestKeyPairClone(t *testing.T) {
	kp, err := sig.GenerateKeyPair(sig.Version0)
	require.NoError(t, err)

	clone := kp.Clone()
	require.Equal(t, kp.Bytes(), clone.Bytes())
}
