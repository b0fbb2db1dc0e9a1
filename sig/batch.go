package sig

import (
	voied25519 "github.com/oasisprotocol/curve25519-voi/primitives/ed25519"
)

// BatchItem pairs one (PublicKey, Hash, Signature) triple for VerifyBatch.
type BatchItem struct {
	PublicKey PublicKey
	Hash      Hash
	Signature Signature
}

// VerifyBatch verifies every item in items with a single batch Ed25519
// check rather than len(items) scalar verifications. For a batch whose
// items all share one version, it returns nil iff every
// item.PublicKey.Verify(item.Hash, item.Signature) would return nil —
// curve25519-voi backs both paths (see ed25519Verify,
// ed25519VerifyBatch), so the two can never disagree. On a verification
// failure it returns SignatureError without identifying which element
// failed.
//
// All items must share one version; a mixed-version batch is rejected
// with InvalidVersion on the first mismatch rather than partitioned by
// version and batch-verified per group.
//
// An empty batch trivially succeeds. A single-item batch is dispatched
// to the scalar path directly.
func VerifyBatch(items []BatchItem) error {
	const op = "VerifyBatch"
	if len(items) == 0 {
		return nil
	}
	if len(items) == 1 {
		return items[0].PublicKey.Verify(items[0].Hash, items[0].Signature)
	}

	version := items[0].PublicKey.GetVersion()
	pks := make([]voied25519.PublicKey, len(items))
	hashes := make([][]byte, len(items))
	sigs := make([][]byte, len(items))
	for i, it := range items {
		if it.PublicKey.GetVersion() != version || it.Signature.GetVersion() != version {
			return errInvalidVersion(op, "index", i, "want_version", uint64(version))
		}
		pks[i] = it.PublicKey.voiKey()
		h := it.Hash.Bytes()
		hashes[i] = h[:]
		s := it.Signature.sig
		sigs[i] = s[:]
	}
	if !ed25519VerifyBatch(hashes, sigs, pks) {
		return errSignature(op, "cause", "batch signature verification failed")
	}
	return nil
}
