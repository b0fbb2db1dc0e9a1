package sig

import (
	"bytes"

	voied25519 "github.com/oasisprotocol/curve25519-voi/primitives/ed25519"

	"github.com/med0vyj/massa/internal/bs58check"
)

const publicPrefix = 'P'

// PublicKey is the verification half of a KeyPair. Equality, ordering and
// hashing for PublicKey are defined over the 32 payload bytes alone — the
// version tag is deliberately excluded, so two PublicKeys built from the
// same bytes under different versions compare equal. Go gives this
// package no hook into struct == or map hashing to express that, so
// Equal, Compare and MapKey exist precisely to carry it: do not compare
// PublicKeys with == or use PublicKey as a map key directly, since both
// would incorporate the version tag this type is defined to ignore.
type PublicKey struct {
	version Version
	pk      [publicKeyBytes]byte
}

// GetVersion returns the PublicKey's version tag.
func (p PublicKey) GetVersion() Version { return p.version }

// Equal reports whether p and o carry the same 32 payload bytes,
// regardless of version.
func (p PublicKey) Equal(o PublicKey) bool { return p.pk == o.pk }

// Compare orders p and o by their 32 payload bytes, regardless of
// version. It returns -1, 0 or 1 like bytes.Compare.
func (p PublicKey) Compare(o PublicKey) int { return bytes.Compare(p.pk[:], o.pk[:]) }

// Less reports whether p sorts before o under Compare. It exists to let
// PublicKey slices be sorted with sort.Slice or the PublicKeys helper
// type below without repeating the Compare call at every site.
func (p PublicKey) Less(o PublicKey) bool { return p.Compare(o) < 0 }

// MapKey returns the value's payload bytes as a comparable array, for use
// as a map key where PublicKeys must collide independently of version.
func (p PublicKey) MapKey() [publicKeyBytes]byte { return p.pk }

// Verify reports whether sig is a valid signature of hash under p. It
// returns nil on success, InvalidVersion if p and sig carry different
// versions, or SignatureError if the Ed25519 check itself rejects sig.
func (p PublicKey) Verify(hash Hash, sig Signature) error {
	const op = "PublicKey.Verify"
	if p.version != sig.version {
		return errInvalidVersion(op, "pk_version", uint64(p.version), "sig_version", uint64(sig.version))
	}
	if !ed25519Verify(p.pk, hash.Bytes(), sig.sig) {
		return errSignature(op, "cause", "ed25519 verification failed")
	}
	return nil
}

// SerializedLen returns the length in bytes of Bytes().
func (p PublicKey) SerializedLen() int {
	return versionVarintSizeBytes + publicKeyBytes
}

// Bytes returns the canonical binary encoding: varint(version) || pk.
func (p PublicKey) Bytes() []byte {
	out := make([]byte, 0, p.SerializedLen())
	out = append(out, p.version.encode()...)
	out = append(out, p.pk[:]...)
	return out
}

// PublicKeyFromBytes decodes a PublicKey from its canonical binary form.
// Trailing bytes beyond the 32-byte payload are ignored.
func PublicKeyFromBytes(data []byte) (PublicKey, error) {
	const op = "PublicKeyFromBytes"
	version, rest, err := decodeVersion(op, data)
	if err != nil {
		return PublicKey{}, err
	}
	if !version.Valid() {
		return PublicKey{}, errInvalidVersion(op, "version", uint64(version))
	}
	if len(rest) < publicKeyBytes {
		return PublicKey{}, errParsing(op, "cause", "public key byte slice too short", "have", len(rest), "want", publicKeyBytes)
	}
	var pk [publicKeyBytes]byte
	copy(pk[:], rest[:publicKeyBytes])
	return PublicKey{version: version, pk: pk}, nil
}

// String renders the text encoding: 'P' || base58check(Bytes()).
func (p PublicKey) String() string {
	return string(publicPrefix) + bs58check.Encode(p.Bytes())
}

// PublicKeyFromString parses the text encoding produced by String().
func PublicKeyFromString(s string) (PublicKey, error) {
	const op = "PublicKeyFromString"
	if len(s) == 0 || s[0] != publicPrefix {
		return PublicKey{}, errParsing(op, "cause", "bad public key prefix", "string", s)
	}
	decoded, err := bs58check.Decode(s[1:])
	if err != nil {
		return PublicKey{}, errParsing(op, err, "cause", "bad public key bs58", "string", s)
	}
	return PublicKeyFromBytes(decoded)
}

func (p PublicKey) voiKey() voied25519.PublicKey {
	return voied25519.PublicKey(p.pk[:])
}

// PublicKeys implements sort.Interface over the version-independent
// Compare order, for callers that want a canonical ordering of a set of
// public keys (e.g. building a deterministic batch or committee list).
type PublicKeys []PublicKey

func (s PublicKeys) Len() int           { return len(s) }
func (s PublicKeys) Less(i, j int) bool { return s[i].Less(s[j]) }
func (s PublicKeys) Swap(i, j int)      { s[i], s[j] = s[j], s[i] }
