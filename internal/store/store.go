package store

import (
	"context"
	"errors"
)

// Collection names. Each holds one JSON document: an array of records for
// the entity collections, a single object for the session, and scalar
// flags for the remaining keys. An absent key is an empty collection.
const (
	CollectionTeachers   = "teachers"
	CollectionStudents   = "students"
	CollectionTests      = "tests"
	CollectionAttendance = "attendance"
	CollectionNotices    = "notices"
	CollectionPayments   = "payments"
	CollectionOTPRecords = "otpRecords"
	CollectionSession    = "session"

	KeyOTPDemoMode        = "otpDemoMode"
	KeyDemoCleanupVersion = "demoCleanupVersion"
)

// SeededCollections are the collections populated by the seed initializer.
var SeededCollections = []string{
	CollectionTeachers,
	CollectionStudents,
	CollectionTests,
	CollectionAttendance,
	CollectionNotices,
	CollectionPayments,
}

var (
	// ErrCorruptRecord indicates the persisted payload for a collection is
	// not valid JSON for the requested shape. Callers decide whether to
	// fail or to fall back to an empty collection.
	ErrCorruptRecord = errors.New("store: corrupt record payload")
)

// Store is a key-value record store holding named collections of JSON
// documents. Save overwrites the whole collection; there is no cross-key
// or cross-client coordination, so concurrent writers race and the last
// write wins.
type Store interface {
	// Load unmarshals the collection into dest. It returns false with dest
	// untouched when the key is absent, and an error wrapping
	// ErrCorruptRecord when the stored payload cannot be parsed.
	Load(ctx context.Context, collection string, dest any) (bool, error)

	// Save marshals value and overwrites the collection.
	Save(ctx context.Context, collection string, value any) error

	// Delete removes the collection. Deleting an absent key is not an error.
	Delete(ctx context.Context, collection string) error

	// Exists reports whether the collection key is present.
	Exists(ctx context.Context, collection string) (bool, error)

	Ping(ctx context.Context) error
	Close() error
}
