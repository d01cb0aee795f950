package tuid

import (
	"bytes"

	"github.com/google/uuid"
)

// ID is a typed wrapper around uuid.UUID. T names the subject the identifier
// belongs to and S the scheme that generated it; both are phantom parameters
// with no runtime representation, so an ID is exactly 16 bytes and trivially
// copyable. IDs with the same T and S compare with == and can be used as map
// keys; IDs with different parameters are distinct types and cannot be mixed.
//
// The embedded uuid.UUID exposes the underlying read-only surface (Version,
// Variant, Time, NodeID, URN, String) together with the text, binary and
// database/sql codecs. Note that the unmarshal side of those codecs restores
// raw bytes and trusts the declared scheme without re-checking the version
// nibble; FromUUID and Parse are the validated entry points.
type ID[T any, S Scheme] struct {
	uuid.UUID
}

// Compare returns an integer comparing two identifiers lexicographically by
// their underlying bytes; the result is 0 when they are equal.
func (i ID[T, S]) Compare(o ID[T, S]) int {
	return bytes.Compare(i.UUID[:], o.UUID[:])
}

// IsZero reports whether the identifier holds the nil UUID.
func (i ID[T, S]) IsZero() bool {
	return i.UUID == uuid.Nil
}
