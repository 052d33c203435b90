package repository

import "errors"

// DefaultLimit caps list queries when the caller does not ask for a limit.
const DefaultLimit = 10

var (
	ErrNotFound       = errors.New("not found")
	ErrDuplicateEmail = errors.New("email already registered")
	ErrUnknownOwner   = errors.New("owner does not exist")
)
