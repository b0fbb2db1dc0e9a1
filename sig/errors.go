package sig

import (
	"strings"

	"github.com/eluv-io/errors-go"
)

// Error taxonomy. All three kinds surface as errors.K.Invalid and are
// told apart by the "reason" field attached to the error. Use
// IsInvalidVersion, IsParsing or IsSignatureError to classify a returned
// error; querying errors.K.Invalid alone only tells you it came from
// this package.
const (
	reasonInvalidVersion = "invalid_version"
	reasonParsing        = "parsing"
	reasonSignature      = "signature_verification_failed"
	reasonDecodeFailed   = "decode_failed"
)

func errInvalidVersion(op string, kv ...interface{}) error {
	args := append([]interface{}{op, errors.K.Invalid, "reason", reasonInvalidVersion}, kv...)
	return errors.E(args...)
}

func errParsing(op string, kv ...interface{}) error {
	args := append([]interface{}{op, errors.K.Invalid, "reason", reasonParsing}, kv...)
	return errors.E(args...)
}

func errSignature(op string, kv ...interface{}) error {
	args := append([]interface{}{op, errors.K.Invalid, "reason", reasonSignature}, kv...)
	return errors.E(args...)
}

// errDecodeFailed builds a generic decode error with no detail beyond op,
// discarding whatever InvalidVersion/Parsing cause produced it. Used by
// the deserializer adapters, whose callers only need to know that a
// value's prefix didn't decode, not why — callers wanting the detailed
// cause must call FromBytes directly instead of going through an
// adapter.
func errDecodeFailed(op string) error {
	return errors.E(op, errors.K.Invalid, "reason", reasonDecodeFailed)
}

// hasReason reports whether err was built by this package with the given
// "reason" tag. errors-go renders E()'s key/value pairs into Error(), so a
// plain substring check is sufficient here and doesn't depend on errors-go
// exposing a structured field accessor.
func hasReason(err error, reason string) bool {
	if err == nil {
		return false
	}
	if !errors.IsKind(errors.K.Invalid, err) {
		return false
	}
	return strings.Contains(err.Error(), "reason="+reason) ||
		strings.Contains(err.Error(), `reason: "`+reason+`"`) ||
		strings.Contains(err.Error(), `reason="`+reason+`"`)
}

// IsInvalidVersion reports whether err is an InvalidVersion error: an
// unknown version byte, or an operation mixing operands from two
// different versions.
func IsInvalidVersion(err error) bool { return hasReason(err, reasonInvalidVersion) }

// IsParsing reports whether err is a Parsing error: a malformed varint,
// a bad base58check checksum/alphabet, a missing text prefix, or a byte
// slice shorter than the declared payload.
func IsParsing(err error) bool { return hasReason(err, reasonParsing) }

// IsSignatureError reports whether err is a SignatureError: an Ed25519
// verification (scalar or batch) that rejected the signature.
func IsSignatureError(err error) bool { return hasReason(err, reasonSignature) }

// IsDecodeFailed reports whether err is the generic decode error returned
// by PublicKeyDeserializer/SignatureDeserializer in place of the
// detailed InvalidVersion/Parsing cause.
func IsDecodeFailed(err error) bool { return hasReason(err, reasonDecodeFailed) }
