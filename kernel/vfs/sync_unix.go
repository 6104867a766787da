//go:build linux || freebsd

package vfs

import (
	"os"

	"golang.org/x/sys/unix"
)

// syncFile flushes file data to disk.
//
// On Linux/FreeBSD, fdatasync() provides sufficient guarantees.
func syncFile(f *os.File) error {
	return unix.Fdatasync(int(f.Fd()))
}
