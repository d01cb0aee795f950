package tuid

import "github.com/google/uuid"

// FromUUID coerces an untyped uuid into an ID of subject T and scheme S. It
// verifies that the version nibble embedded in u matches the version S
// declares and returns a *WrongVersionError on mismatch. The subject cannot
// be verified at runtime; choosing T correctly is the caller's
// responsibility.
func FromUUID[T any, S Scheme](u uuid.UUID) (ID[T, S], error) {
	var s S
	if expected, actual := s.schemeVersion(), u.Version(); actual != expected {
		return ID[T, S]{}, &WrongVersionError{Expected: expected, Actual: actual}
	}
	return ID[T, S]{UUID: u}, nil
}

// Parse decodes the textual uuid form accepted by uuid.Parse and applies the
// same version validation as FromUUID.
func Parse[T any, S Scheme](text string) (ID[T, S], error) {
	u, err := uuid.Parse(text)
	if err != nil {
		return ID[T, S]{}, err
	}
	return FromUUID[T, S](u)
}

// MustParse is like Parse but panics on error.
func MustParse[T any, S Scheme](text string) ID[T, S] {
	return Must(Parse[T, S](text))
}

// Must returns id if err is nil and panics otherwise. It wraps calls that
// return (ID, error):
//
//	id := tuid.Must(tuid.FromUUID[User, V4](value))
func Must[T any, S Scheme](id ID[T, S], err error) ID[T, S] {
	if err != nil {
		panic(err)
	}
	return id
}
