package tuid

import (
	"fmt"

	"github.com/google/uuid"
)

// WrongVersionError reports a version nibble that does not match the scheme
// requested from FromUUID or Parse. Callers detect it with errors.As and can
// inspect both version numbers.
type WrongVersionError struct {
	// Expected is the version number the scheme declares.
	Expected uuid.Version
	// Actual is the version nibble found in the supplied value.
	Actual uuid.Version
}

func (e *WrongVersionError) Error() string {
	return fmt.Sprintf("tuid: wrong uuid version: expected %d, actual %d", int(e.Expected), int(e.Actual))
}
