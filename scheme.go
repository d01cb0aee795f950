package tuid

import "github.com/google/uuid"

// Scheme is the constraint for the generation-scheme parameter of ID. It is
// satisfied only by the zero-size markers below, so the set of schemes is
// closed and each one maps to a fixed RFC 4122 version number.
type Scheme interface {
	schemeVersion() uuid.Version
}

type (
	// V1 marks time-based identifiers (gregorian timestamp + node id).
	V1 struct{}
	// V3 marks identifiers derived from a namespace and name via MD5.
	V3 struct{}
	// V4 marks randomly generated identifiers.
	V4 struct{}
	// V5 marks identifiers derived from a namespace and name via SHA-1.
	V5 struct{}
	// V6 marks field-reordered time-based identifiers (index friendly).
	V6 struct{}
	// V7 marks unix-epoch time-ordered identifiers.
	V7 struct{}
	// V8 marks identifiers built from a caller-supplied 16-byte payload.
	V8 struct{}
)

func (V1) schemeVersion() uuid.Version { return 1 }
func (V3) schemeVersion() uuid.Version { return 3 }
func (V4) schemeVersion() uuid.Version { return 4 }
func (V5) schemeVersion() uuid.Version { return 5 }
func (V6) schemeVersion() uuid.Version { return 6 }
func (V7) schemeVersion() uuid.Version { return 7 }
func (V8) schemeVersion() uuid.Version { return 8 }
