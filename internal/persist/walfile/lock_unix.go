//go:build linux || freebsd || darwin

package walfile

import (
	"os"

	"golang.org/x/sys/unix"
)

// lockFile takes a non-blocking exclusive advisory lock on f, failing
// fast if another process already holds the data directory open — the
// same single-writer guarantee hive/dirty's file-backed stores get for
// free from exclusive-open semantics, applied here since the WAL file is
// opened O_RDWR rather than with an exclusive-create flag.
func lockFile(f *os.File) error {
	return unix.Flock(int(f.Fd()), unix.LOCK_EX|unix.LOCK_NB)
}

func unlockFile(f *os.File) error {
	return unix.Flock(int(f.Fd()), unix.LOCK_UN)
}
