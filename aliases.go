package tuid

import "github.com/google/uuid"

// Aliases re-export the pieces of the underlying uuid library that typed
// callers need, so most code can depend on this package alone.

// UUID is the untyped 128-bit identifier the ID wrapper is built on.
type UUID = uuid.UUID

// Well-known values and RFC 4122 name spaces for the hashed schemes.
var (
	Nil           = uuid.Nil
	NameSpaceDNS  = uuid.NameSpaceDNS
	NameSpaceURL  = uuid.NameSpaceURL
	NameSpaceOID  = uuid.NameSpaceOID
	NameSpaceX500 = uuid.NameSpaceX500
)

// Process-wide generation knobs used by the time-based schemes.
var (
	// SetNodeID sets the 6-byte node id embedded by NewV1 and NewV6.
	SetNodeID = uuid.SetNodeID
	// SetClockSequence sets the clock sequence used by NewV1 and NewV6;
	// pass -1 to select a random sequence.
	SetClockSequence = uuid.SetClockSequence
)
