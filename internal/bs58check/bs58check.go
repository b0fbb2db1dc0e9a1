// Package bs58check wraps mr-tron/base58's plain base58 codec with a
// 4-byte double-SHA-256 checksum framing, used by every text encoding in
// this module. Callers never see raw base58 without this framing, so the
// checksum step lives here rather than being duplicated at each call site.
package bs58check

import (
	"bytes"
	"crypto/sha256"

	"github.com/mr-tron/base58/base58"

	"github.com/eluv-io/errors-go"
)

const checksumLen = 4

// Encode appends a 4-byte double-SHA-256 checksum of payload and base58
// encodes the result.
func Encode(payload []byte) string {
	sum := checksum(payload)
	buf := make([]byte, 0, len(payload)+checksumLen)
	buf = append(buf, payload...)
	buf = append(buf, sum...)
	return base58.Encode(buf)
}

// Decode base58-decodes s and verifies the trailing 4-byte checksum,
// returning the payload with the checksum stripped. Any base58 alphabet
// error or checksum mismatch collapses to a single descriptive error.
func Decode(s string) ([]byte, error) {
	e := errors.Template("bs58check.Decode", errors.K.Invalid, "reason", "parsing")

	raw, err := base58.Decode(s)
	if err != nil {
		return nil, e(err, "string", s)
	}
	if len(raw) < checksumLen {
		return nil, e("string", s, "cause", "too short for a checksum")
	}

	payload, sum := raw[:len(raw)-checksumLen], raw[len(raw)-checksumLen:]
	if !bytes.Equal(sum, checksum(payload)) {
		return nil, e("string", s, "cause", "bad checksum")
	}
	return payload, nil
}

func checksum(payload []byte) []byte {
	first := sha256.Sum256(payload)
	second := sha256.Sum256(first[:])
	return second[:checksumLen]
}
