//go:build darwin

package vfs

import (
	"os"

	"golang.org/x/sys/unix"
)

// syncFile flushes file data to disk.
//
// On macOS, fsync() only reaches the drive cache; F_FULLFSYNC asks the drive
// to write through.
func syncFile(f *os.File) error {
	_, err := unix.FcntlInt(f.Fd(), unix.F_FULLFSYNC, 0)
	return err
}
