package sig

import (
	"github.com/med0vyj/massa/internal/bs58check"
)

// Signature is a detached Ed25519 signature tagged with the version of
// the key pair that produced it. Unlike PublicKey, equality here is
// structural: the version tag participates, since a Signature is never
// meant to be compared independently of the operation that produced it.
type Signature struct {
	version Version
	sig     [signatureBytes]byte
}

// GetVersion returns the Signature's version tag.
func (s Signature) GetVersion() Version { return s.version }

// Equal reports whether s and o carry the same version and signature
// bytes.
func (s Signature) Equal(o Signature) bool {
	return s.version == o.version && s.sig == o.sig
}

// SerializedLen returns the length in bytes of Bytes().
func (s Signature) SerializedLen() int {
	return versionVarintSizeBytes + signatureBytes
}

// Bytes returns the canonical binary encoding: varint(version) || sig.
func (s Signature) Bytes() []byte {
	out := make([]byte, 0, s.SerializedLen())
	out = append(out, s.version.encode()...)
	out = append(out, s.sig[:]...)
	return out
}

// SignatureFromBytes decodes a Signature from its canonical binary form.
// Trailing bytes beyond the 64-byte payload are ignored.
func SignatureFromBytes(data []byte) (Signature, error) {
	const op = "SignatureFromBytes"
	version, rest, err := decodeVersion(op, data)
	if err != nil {
		return Signature{}, err
	}
	if !version.Valid() {
		return Signature{}, errInvalidVersion(op, "version", uint64(version))
	}
	if len(rest) < signatureBytes {
		return Signature{}, errParsing(op, "cause", "signature byte slice too short", "have", len(rest), "want", signatureBytes)
	}
	var sig [signatureBytes]byte
	copy(sig[:], rest[:signatureBytes])
	return Signature{version: version, sig: sig}, nil
}

// String renders the text encoding: base58check(Bytes()). Unlike KeyPair
// ('S') and PublicKey ('P'), the text form has no leading type-prefix
// character. Bs58Check is an alias kept for callers that find the
// prefix-free name ambiguous next to the other two String methods.
func (s Signature) String() string {
	return bs58check.Encode(s.Bytes())
}

// Bs58Check is an alias for String, spelled out for call sites where
// "String" reads as if it might include a type prefix like KeyPair's and
// PublicKey's do.
func (s Signature) Bs58Check() string { return s.String() }

// SignatureFromString parses the text encoding produced by String().
func SignatureFromString(s string) (Signature, error) {
	const op = "SignatureFromString"
	decoded, err := bs58check.Decode(s)
	if err != nil {
		return Signature{}, errParsing(op, err, "cause", "bad signature bs58", "string", s)
	}
	return SignatureFromBytes(decoded)
}

// SignatureFromBs58Check is an alias for SignatureFromString.
func SignatureFromBs58Check(s string) (Signature, error) { return SignatureFromString(s) }
