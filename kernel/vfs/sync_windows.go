//go:build windows

package vfs

import (
	"os"

	"golang.org/x/sys/windows"
)

// syncFile flushes file data to disk using FlushFileBuffers.
func syncFile(f *os.File) error {
	return windows.FlushFileBuffers(windows.Handle(f.Fd()))
}
