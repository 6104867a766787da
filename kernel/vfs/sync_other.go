//go:build !linux && !freebsd && !darwin && !windows

package vfs

import "os"

func syncFile(f *os.File) error {
	return f.Sync()
}
