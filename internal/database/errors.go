package database

import "errors"

var (
	// ErrPendingNotFound is returned when a pending booking id is absent.
	ErrPendingNotFound = errors.New("pending booking not found")
	// ErrDuplicateID is returned when inserting a record whose id already
	// exists in the targeted partition.
	ErrDuplicateID = errors.New("booking id already exists")
)
