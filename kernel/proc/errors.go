package proc

import "errors"

var (
	// ErrTableFull indicates that every process slot has been handed out.
	ErrTableFull = errors.New("proc: process table full")

	// ErrNotFound indicates an id outside the range of created processes.
	ErrNotFound = errors.New("proc: process not found")

	// ErrInvalidBurst indicates a negative burst on creation.
	ErrInvalidBurst = errors.New("proc: burst must not be negative")
)
