package sig

import (
	"github.com/med0vyj/massa/internal/bs58check"
)

const secretPrefix = 'S'

// KeyPair owns a secret Ed25519 key and its derived public key. It is an
// immutable value: every constructor recomputes the public key from the
// secret key, so pk == derive(sk) holds for the lifetime of the value.
// Copying a KeyPair is an ordinary Go value copy; there is no interior
// mutation and no background resource to release.
//
// KeyPair does not zero its secret key material on destruction. The
// garbage collector gives no hook to do so reliably, and a naive
// zero-then-return can be optimized away as dead code.
type KeyPair struct {
	version Version
	sk      [secretKeyBytes]byte
	pk      [publicKeyBytes]byte
}

// GenerateKeyPair creates a new KeyPair of the given version, sourcing
// secret material from the OS CSPRNG. It fails with InvalidVersion if
// version is not a member of V.
func GenerateKeyPair(version Version) (KeyPair, error) {
	const op = "GenerateKeyPair"
	if !version.Valid() {
		return KeyPair{}, errInvalidVersion(op, "version", uint64(version))
	}
	sk, pk, err := ed25519Generate()
	if err != nil {
		return KeyPair{}, errSignature(op, err, "cause", "key generation failed")
	}
	return KeyPair{version: version, sk: sk, pk: pk}, nil
}

// GetVersion returns the KeyPair's algorithm/encoding version.
func (k KeyPair) GetVersion() Version { return k.version }

// GetPublicKey returns the public key derived from this KeyPair. The
// returned PublicKey carries the same version.
func (k KeyPair) GetPublicKey() PublicKey {
	return PublicKey{version: k.version, pk: k.pk}
}

// Sign signs the 32 bytes of hash exactly, with no additional domain
// separation. The returned Signature carries the KeyPair's version.
func (k KeyPair) Sign(hash Hash) Signature {
	return Signature{version: k.version, sig: ed25519Sign(k.sk, hash.Bytes())}
}

// SerializedLen returns the length in bytes of Bytes().
func (k KeyPair) SerializedLen() int {
	return versionVarintSizeBytes + secretKeyBytes
}

// Bytes returns the canonical binary encoding: varint(version) || sk.
// The derived public key is never appended; decoding rederives it.
func (k KeyPair) Bytes() []byte {
	out := make([]byte, 0, k.SerializedLen())
	out = append(out, k.version.encode()...)
	out = append(out, k.sk[:]...)
	return out
}

// KeyPairFromBytes decodes a KeyPair from its canonical binary form. Any
// bytes beyond the declared secret-key payload are ignored; callers that
// need to know how many bytes were consumed should use SerializedLen on
// the result.
func KeyPairFromBytes(data []byte) (KeyPair, error) {
	const op = "KeyPairFromBytes"
	version, rest, err := decodeVersion(op, data)
	if err != nil {
		return KeyPair{}, err
	}
	if !version.Valid() {
		return KeyPair{}, errInvalidVersion(op, "version", uint64(version))
	}
	if len(rest) < secretKeyBytes {
		return KeyPair{}, errParsing(op, "cause", "keypair byte slice too short", "have", len(rest), "want", secretKeyBytes)
	}
	var sk [secretKeyBytes]byte
	copy(sk[:], rest[:secretKeyBytes])
	return KeyPair{version: version, sk: sk, pk: ed25519DerivePublic(sk)}, nil
}

// String renders the text encoding: 'S' || base58check(Bytes()).
func (k KeyPair) String() string {
	return string(secretPrefix) + bs58check.Encode(k.Bytes())
}

// KeyPairFromString parses the text encoding produced by String().
func KeyPairFromString(s string) (KeyPair, error) {
	const op = "KeyPairFromString"
	if len(s) == 0 || s[0] != secretPrefix {
		return KeyPair{}, errParsing(op, "cause", "bad secret prefix", "string", s)
	}
	decoded, err := bs58check.Decode(s[1:])
	if err != nil {
		return KeyPair{}, errParsing(op, err, "cause", "bad secret key bs58", "string", s)
	}
	return KeyPairFromBytes(decoded)
}

// Clone returns an independent copy of k. KeyPair has no interior
// mutability, so this is just a value copy; Clone exists to make the
// intent explicit at call sites that hand a KeyPair across goroutines.
func (k KeyPair) Clone() KeyPair { return k }
