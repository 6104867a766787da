package vfs

import "errors"

var (
	// ErrExists indicates a create for a name that is already in use.
	ErrExists = errors.New("vfs: file exists")

	// ErrFull indicates that every slot is in use.
	ErrFull = errors.New("vfs: no free slot")

	// ErrNotFound indicates that no file has the given name.
	ErrNotFound = errors.New("vfs: file not found")

	// ErrInvalidName indicates an empty name.
	ErrInvalidName = errors.New("vfs: invalid file name")

	// ErrCorrupt indicates a dump that cannot be decoded.
	ErrCorrupt = errors.New("vfs: corrupt dump")
)
