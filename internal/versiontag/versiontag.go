// Package versiontag implements the single varint that every primitive in
// this module is prefixed with: an unsigned LEB128 version tag selecting
// the algorithm/encoding family of the bytes that follow.
package versiontag

import (
	"github.com/multiformats/go-varint"

	"github.com/eluv-io/errors-go"
)

// Encode returns the LEB128 encoding of v.
func Encode(v uint64) []byte {
	return varint.ToUvarint(v)
}

// Decode reads a LEB128 varint off the front of data and returns the
// decoded value together with the unread suffix. It fails if data ends
// before the varint terminates.
func Decode(data []byte) (value uint64, rest []byte, err error) {
	value, n, verr := varint.FromUvarint(data)
	if verr != nil {
		return 0, nil, errors.E("versiontag.Decode", errors.K.Invalid, verr,
			"reason", "parsing", "data_len", len(data))
	}
	return value, data[n:], nil
}

// Len returns the number of bytes Encode(v) would produce.
func Len(v uint64) int {
	return len(varint.ToUvarint(v))
}
