package bs58check_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/med0vyj/massa/internal/bs58check"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	for _, payload := range [][]byte{
		{},
		{0x00},
		{0x01, 0x02, 0x03},
		make([]byte, 64),
	} {
		s := bs58check.Encode(payload)
		decoded, err := bs58check.Decode(s)
		require.NoError(t, err)
		require.Equal(t, payload, decoded)
	}
}

func TestDecodeRejectsBadChecksum(t *testing.T) {
	s := bs58check.Encode([]byte{0x01, 0x02, 0x03})
	// flip the last character, which lives in the checksum/alphabet tail
	mangled := []byte(s)
	if mangled[len(mangled)-1] == 'a' {
		mangled[len(mangled)-1] = 'b'
	} else {
		mangled[len(mangled)-1] = 'a'
	}
	_, err := bs58check.Decode(string(mangled))
	require.Error(t, err)
}

func TestDecodeRejectsBadAlphabet(t *testing.T) {
	_, err := bs58check.Decode("not-base58-0OIl")
	require.Error(t, err)
}

func TestDecodeRejectsTooShort(t *testing.T) {
	_, err := bs58check.Decode("")
	require.Error(t, err)
}
