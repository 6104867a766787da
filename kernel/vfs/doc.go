// Package vfs implements the virtual file store: a fixed table of named text
// slots with a compact binary dump format.
//
// # Dump Format
//
// All integers are little-endian int32:
//
//	count
//	repeat count times:
//	    name_len, name bytes
//	    content_len, content bytes
//
// Files appear in slot order. Restore rejects negative or oversized lengths
// and never leaves a half-loaded store behind.
//
// The store is independent of the process table and the memory arena.
package vfs
