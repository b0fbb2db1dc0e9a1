package sig_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/med0vyj/massa/sig"
)

func newBatchItem(t *testing.T, version sig.Version, seed byte) sig.BatchItem {
	t.Helper()
	kp, err := sig.GenerateKeyPair(version)
	require.NoError(t, err)
	h := sig.HashFromBytes([32]byte{seed})
	return sig.BatchItem{PublicKey: kp.GetPublicKey(), Hash: h, Signature: kp.Sign(h)}
}

func TestVerifyBatchEmpty(t *testing.T) {
	require.NoError(t, sig.VerifyBatch(nil))
}

func TestVerifyBatchSingleItem(t *testing.T) {
	item := newBatchItem(t, sig.Version0, 1)
	require.NoError(t, sig.VerifyBatch([]sig.BatchItem{item}))
}

func TestVerifyBatchAllValid(t *testing.T) {
	items := make([]sig.BatchItem, 5)
	for i := range items {
		items[i] = newBatchItem(t, sig.Version0, byte(i))
	}
	require.NoError(t, sig.VerifyBatch(items))
}

func TestVerifyBatchMatchesScalarEquivalence(t *testing.T) {
	items := make([]sig.BatchItem, 5)
	for i := range items {
		items[i] = newBatchItem(t, sig.Version0, byte(i))
	}
	// corrupt the last signature's final byte
	last := items[len(items)-1]
	corrupted := last.Signature.Bytes()
	corrupted[len(corrupted)-1] ^= 0xff
	badSig, err := sig.SignatureFromBytes(corrupted)
	require.NoError(t, err)
	items[len(items)-1].Signature = badSig

	batchErr := sig.VerifyBatch(items)

	allScalarOK := true
	for _, it := range items {
		if it.PublicKey.Verify(it.Hash, it.Signature) != nil {
			allScalarOK = false
		}
	}

	require.False(t, allScalarOK)
	require.Error(t, batchErr)
	require.True(t, sig.IsSignatureError(batchErr))
}

func TestVerifyBatchRejectsMixedVersions(t *testing.T) {
	items := []sig.BatchItem{
		newBatchItem(t, sig.Version0, 1),
		newBatchItem(t, sig.Version1, 2),
	}
	err := sig.VerifyBatch(items)
	require.Error(t, err)
	require.True(t, sig.IsInvalidVersion(err))
}
