//go:build darwin

package walfile

import (
	"os"

	"golang.org/x/sys/unix"
)

// fdatasync uses F_FULLFSYNC on macOS for power-loss durability, the same
// choice hive/dirty/flush_darwin.go makes over a bare fsync.
func fdatasync(f *os.File) error {
	_, err := unix.FcntlInt(f.Fd(), unix.F_FULLFSYNC, 0)
	if err != nil {
		return unix.Fsync(int(f.Fd()))
	}
	return nil
}
