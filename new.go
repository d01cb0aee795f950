package tuid

import "github.com/google/uuid"

// Constructors delegate bit generation to github.com/google/uuid and never
// return an error: schemes that draw on the OS entropy source or clock panic
// if that source fails, which is an unrecoverable process-level condition.

// NewV1 returns a time-based identifier for subject T. The node id and clock
// sequence come from the process-wide uuid configuration; see SetNodeID and
// SetClockSequence.
func NewV1[T any]() ID[T, V1] {
	return ID[T, V1]{UUID: uuid.Must(uuid.NewUUID())}
}

// NewV3 returns an identifier for subject T derived from the MD5 hash of the
// namespace and name. The same inputs always produce the same identifier.
func NewV3[T any](namespace UUID, name []byte) ID[T, V3] {
	return ID[T, V3]{UUID: uuid.NewMD5(namespace, name)}
}

// NewV4 returns a random identifier for subject T.
func NewV4[T any]() ID[T, V4] {
	return ID[T, V4]{UUID: uuid.New()}
}

// NewV5 returns an identifier for subject T derived from the SHA-1 hash of
// the namespace and name. The same inputs always produce the same identifier.
func NewV5[T any](namespace UUID, name []byte) ID[T, V5] {
	return ID[T, V5]{UUID: uuid.NewSHA1(namespace, name)}
}

// NewV6 returns a field-reordered time-based identifier for subject T; the
// timestamp occupies the most significant bits so values sort by creation
// time. Node id and clock sequence follow the process-wide configuration.
func NewV6[T any]() ID[T, V6] {
	return ID[T, V6]{UUID: uuid.Must(uuid.NewV6())}
}

// NewV7 returns a unix-epoch time-ordered identifier for subject T.
func NewV7[T any]() ID[T, V7] {
	return ID[T, V7]{UUID: uuid.Must(uuid.NewV7())}
}

// NewV8 returns an identifier for subject T carrying the supplied payload.
// The bits are caller-defined except for the version nibble and the variant
// bits, which are stamped in place.
func NewV8[T any](data [16]byte) ID[T, V8] {
	u := uuid.UUID(data)
	u[6] = (u[6] & 0x0f) | 0x80 // version 8
	u[8] = (u[8] & 0x3f) | 0x80 // RFC 4122 variant
	return ID[T, V8]{UUID: u}
}
