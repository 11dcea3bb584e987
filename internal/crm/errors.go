package crm

import "errors"

var (
	// ErrNotFound is returned when an operation targets a record that does
	// not exist.
	ErrNotFound = errors.New("record not found")

	// ErrEmptyText is returned when a task or notice is created without a
	// description.
	ErrEmptyText = errors.New("description must not be empty")

	// ErrInvalidStatus is returned when a status outside the allowed set is
	// supplied.
	ErrInvalidStatus = errors.New("invalid status")

	// ErrEmailAlreadyInUse is returned by staff creation when a profile with
	// the same email already exists.
	ErrEmailAlreadyInUse = errors.New("email already in use")

	// ErrStorage covers document store failures; the cause is logged, not
	// surfaced.
	ErrStorage = errors.New("storage operation failed")

	// ErrProvider covers account provider failures during staff creation.
	ErrProvider = errors.New("account provider operation failed")
)
