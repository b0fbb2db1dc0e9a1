package sig

import (
	"github.com/eluv-io/log-go"

	"github.com/med0vyj/massa/internal/versiontag"
)

// Version identifies both the algorithm family and the on-wire encoding
// of a KeyPair, PublicKey or Signature. V is the closed set {0, 1}:
// extending it means adding a constant and a knownVersions entry below,
// never changing the meaning of an existing one.
type Version uint64

const (
	// Version0 is the original Ed25519 wrapper.
	Version0 Version = 0
	// Version1 is byte-for-byte identical to Version0 internally but is
	// not interchangeable with it: a Version0 PublicKey cannot verify a
	// Version1 Signature (see PublicKey.Verify).
	Version1 Version = 1
)

// knownVersions is the closed set V. Every validity check in this package
// (GenerateKeyPair, the FromBytes decoders, encode) consults it instead of
// hand-checking bounds, so registering a version is a one-line change here
// plus its constant above. The Ed25519 adapter in ed25519.go is shared by
// all versions and has no per-version case; PublicKey.Verify compares the
// two operands' versions with each other rather than consulting this set.
var knownVersions = map[Version]struct{}{
	Version0: {},
	Version1: {},
}

// Valid reports whether v is a member of V.
func (v Version) Valid() bool {
	_, ok := knownVersions[v]
	return ok
}

func (v Version) encode() []byte {
	if !v.Valid() {
		// every caller validates v before reaching here; a version escaping
		// that check is a programming error in this package, not bad input.
		log.Fatal("encoding unregistered version", "version", uint64(v))
	}
	return versiontag.Encode(uint64(v))
}

// decodeVersion reads the version varint off the front of data.
func decodeVersion(op string, data []byte) (Version, []byte, error) {
	val, rest, err := versiontag.Decode(data)
	if err != nil {
		return 0, nil, errParsing(op, err, "cause", "malformed version varint")
	}
	return Version(val), rest, nil
}
