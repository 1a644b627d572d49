package service

import "errors"

// Sentinel errors returned by the services. Handlers map these to HTTP
// status codes; anything else is an infrastructure failure.
var (
	// ErrNotFound signals a lookup by id with no matching row
	ErrNotFound = errors.New("record not found")

	// ErrDuplicateName signals a name conflict (tag names are unique
	// regardless of case)
	ErrDuplicateName = errors.New("name already exists")

	// ErrDuplicateEmail signals a user email conflict
	ErrDuplicateEmail = errors.New("email already exists")

	// ErrSystemEntry signals an attempt to delete a built-in form field
	// or section
	ErrSystemEntry = errors.New("system entries cannot be deleted")

	// ErrInUse signals a delete blocked by referencing rows
	ErrInUse = errors.New("record is referenced and cannot be deleted")
)
