package sig_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/med0vyj/massa/sig"
)

func TestHashBytesRoundTrip(t *testing.T) {
	var b [32]byte
	for i := range b {
		b[i] = byte(i)
	}
	h := sig.HashFromBytes(b)
	require.Equal(t, b, h.Bytes())
}
