//go:build !linux && !freebsd && !darwin

package walfile

import "os"

// fdatasync falls back to a plain fsync on platforms without a cheaper
// data-only sync primitive, the same fallback role
// hive/dirty/flush_windows.go plays relative to the Unix fast path.
func fdatasync(f *os.File) error {
	return f.Sync()
}
