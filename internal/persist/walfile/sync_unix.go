//go:build linux || freebsd

package walfile

import (
	"os"

	"golang.org/x/sys/unix"
)

// fdatasync flushes f's data (and the minimum metadata needed to read it
// back) to stable storage, the same durability primitive the teacher
// reaches for in hive/dirty/flush_unix.go.
func fdatasync(f *os.File) error {
	return unix.Fdatasync(int(f.Fd()))
}
