// Package persist defines the abstract Persistence Layer the Tree Store
// composes recursive operations out of (spec section 4.5). It is
// intentionally a narrow interface: the Tree Store owns the tree
// invariants, Store only owns durable storage of the facts that
// reconstruct it.
package persist

import "github.com/joshuapare/ggconfig/pkg/value"

// Exist reports what, if anything, lives at a path.
type Exist int

const (
	Absent Exist = iota
	Internal
	Leaf
)

// LeafRecord is everything the Tree Store needs to restore a leaf on
// recovery (spec section 3, invariant 3: a leaf without a recorded
// timestamp is treated as -infinity).
type LeafRecord struct {
	Blob      []byte
	Tag       value.Kind
	Timestamp int64
}

// Store is the durable backing interface required by the Tree Store. An
// implementation is expected to offer crash-safe writes at the
// granularity of these calls; atomicity across a recursive map merge
// spanning multiple calls is explicitly not guaranteed (spec section 9).
type Store interface {
	// PutLeaf atomically replaces (or creates) the leaf at path.
	PutLeaf(path value.Path, rec LeafRecord) error
	// PutEmptyInternal idempotently records an empty-map marker at path.
	PutEmptyInternal(path value.Path) error
	// DeleteSubtree atomically removes every record at path or beneath it.
	DeleteSubtree(path value.Path) error
	// GetLeaf returns the leaf record at path, or ErrNotFound if path is
	// not a leaf.
	GetLeaf(path value.Path) (LeafRecord, error)
	// ListChildren returns the immediate child segments of path.
	ListChildren(path value.Path) ([][]byte, error)
	// Exists reports whether path is Absent, Internal or Leaf.
	Exists(path value.Path) (Exist, error)
	// Close flushes and releases any resources held by the store.
	Close() error
}

// key renders a Path into a stable map/index key. Segments are
// length-prefixed so that no sequence of real segments can collide with a
// different sequence, the same defense the teacher's hive/index package
// gets for free from fixed-width NK offsets but which a byte-string path
// must provide explicitly.
func key(path value.Path) string {
	b := make([]byte, 0, 64)
	for _, seg := range path.Segments() {
		b = appendUvarint(b, uint64(len(seg)))
		b = append(b, seg...)
	}
	return string(b)
}

func appendUvarint(b []byte, v uint64) []byte {
	for v >= 0x80 {
		b = append(b, byte(v)|0x80)
		v >>= 7
	}
	return append(b, byte(v))
}
