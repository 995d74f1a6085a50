package repository

import "errors"

// ErrNotFound is returned when a record does not exist. Both the Postgres
// and in-memory implementations translate their own absence signals to it.
var ErrNotFound = errors.New("record not found")

// Duplicate errors are returned by Create when a unique field is already
// taken. The service pre-checks uniqueness, but the store re-checks at
// insert so concurrent registrations cannot slip through the gap.
var (
	ErrDuplicateEmail = errors.New("email already taken")
	ErrDuplicateNIC   = errors.New("nic already taken")
)
