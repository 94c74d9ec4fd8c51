package store

import "errors"

var (
	// ErrNotFound is returned when no row exists for the given id.
	ErrNotFound = errors.New("record not found")
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
)
