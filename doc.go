// Package tuid provides compile-time typed UUIDs.
//
// An ID carries two phantom type parameters on top of a plain uuid.UUID: a
// subject (what kind of entity the identifier names) and a scheme (which
// UUID version produced it).  Neither parameter occupies space at runtime;
// they exist so the compiler rejects mixing identifiers of different
// subjects or generation schemes:
//
//	type User struct{}
//	type Role struct{}
//
//	userID := tuid.NewV4[User]()
//	roleID := tuid.NewV4[Role]()
//	_ = userID == roleID // compile error: mismatched types
//
// Generation of the underlying bits is delegated to github.com/google/uuid.
// Untyped values enter the typed world through FromUUID or Parse, which
// verify that the version nibble embedded in the value matches the declared
// scheme and fail with a WrongVersionError otherwise.
package tuid
