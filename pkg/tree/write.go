package tree

import (
	"github.com/joshuapare/ggconfig/internal/persist"
	"github.com/joshuapare/ggconfig/pkg/ggerr"
	"github.com/joshuapare/ggconfig/pkg/value"
)

// Write implements spec section 4.2's write(path, value, timestamp). A Map
// value drives the recursive merge algorithm; any other value (scalar,
// null, or list — a list is opaque leaf content and is never expanded
// into the tree) drives the scalar leaf-write path.
func (t *Tree) Write(path value.Path, v value.Value, timestamp int64) (Outcome, error) {
	if v.IsMap() {
		if len(v.Map) == 0 {
			return t.writeEmptyMapNode(path)
		}
		return t.writeMapMerge(path, v.Map, timestamp)
	}
	return t.writeScalar(path, v, timestamp)
}

// WriteEmptyMap is the dedicated empty-map write (spec section 4.2):
// equivalent to Write(path, Map{}, *) but documented separately because
// an empty-map marker is idempotent and has no timestamp to compare.
func (t *Tree) WriteEmptyMap(path value.Path) (Outcome, error) {
	return t.writeEmptyMapNode(path)
}

func (t *Tree) writeScalar(path value.Path, v value.Value, timestamp int64) (Outcome, error) {
	if err := t.ensureAncestorsInternal(path); err != nil {
		return 0, err
	}
	kind, err := t.store.Exists(path)
	if err != nil {
		return 0, ggerr.New(ggerr.KindInternalFailure, "exists check failed", err)
	}
	switch kind {
	case persist.Internal:
		return 0, ggerr.New(ggerr.KindTypeMismatch, "path "+path.Display()+" is an internal node", nil)
	case persist.Absent:
		return t.putLeaf(path, v, timestamp)
	default: // persist.Leaf
		rec, err := t.store.GetLeaf(path)
		if err != nil {
			return 0, ggerr.New(ggerr.KindInternalFailure, "leaf fetch failed", err)
		}
		if timestamp < rec.Timestamp {
			// Stale write rule (spec section 4.2): accepted but ignored.
			return OkStale, nil
		}
		return t.putLeaf(path, v, timestamp)
	}
}

func (t *Tree) putLeaf(path value.Path, v value.Value, timestamp int64) (Outcome, error) {
	blob, tag, err := value.EncodeLeaf(v)
	if err != nil {
		return 0, err
	}
	if err := t.store.PutLeaf(path, persist.LeafRecord{Blob: blob, Tag: tag, Timestamp: timestamp}); err != nil {
		return 0, ggerr.New(ggerr.KindInternalFailure, "leaf persist failed", err)
	}
	t.notifier.NotifyMutation(path)
	return Ok, nil
}

func (t *Tree) writeEmptyMapNode(path value.Path) (Outcome, error) {
	if err := t.ensureAncestorsInternal(path); err != nil {
		return 0, err
	}
	kind, err := t.store.Exists(path)
	if err != nil {
		return 0, ggerr.New(ggerr.KindInternalFailure, "exists check failed", err)
	}
	switch kind {
	case persist.Leaf:
		return 0, ggerr.New(ggerr.KindTypeMismatch, "path "+path.Display()+" is a leaf", nil)
	case persist.Internal:
		return Ok, nil // idempotent
	default: // Absent
		if err := t.store.PutEmptyInternal(path); err != nil {
			return 0, ggerr.New(ggerr.KindInternalFailure, "internal marker persist failed", err)
		}
		// Internal-node creation alone does not notify (spec section 4.2).
		return Ok, nil
	}
}

// writeMapMerge performs the in-order depth-first descent of spec section
// 4.2's merge algorithm: one recursive Write per (key, value) pair.
// Iteration order is Go's randomized map order, matching the spec's "the
// map's iteration order" — callers relying on a specific order across
// sibling keys are already outside the documented contract. A sub-write
// failure aborts the loop without undoing already-applied siblings (spec
// sections 4.2 and 9) — the original gg_config's own process_map carried
// a TODO acknowledging this as a gap rather than a deliberate design, so
// this keeps the original's actual behavior rather than "fixing" it.
func (t *Tree) writeMapMerge(path value.Path, m map[string]value.Value, timestamp int64) (Outcome, error) {
	for k, v := range m {
		childPath := path.Push([]byte(k))
		if _, err := t.Write(childPath, v, timestamp); err != nil {
			return 0, err
		}
	}
	return Ok, nil
}

// ensureAncestorsInternal walks path's strict ancestors from root to
// parent, creating missing ones as empty internal nodes, and fails
// TypeMismatch the moment it finds an ancestor that is already a leaf —
// the recursive-merge mechanism by which a scalar write under an existing
// scalar path is rejected (spec section 8, property 6).
func (t *Tree) ensureAncestorsInternal(path value.Path) error {
	segs := path.Segments()
	if len(segs) == 0 {
		return nil
	}
	for i := 0; i < len(segs)-1; i++ {
		ancestor := value.NewPath(segs[:i+1]...)
		kind, err := t.store.Exists(ancestor)
		if err != nil {
			return ggerr.New(ggerr.KindInternalFailure, "exists check failed", err)
		}
		switch kind {
		case persist.Leaf:
			return ggerr.New(ggerr.KindTypeMismatch, "ancestor "+ancestor.Display()+" is a leaf", nil)
		case persist.Absent:
			if err := t.store.PutEmptyInternal(ancestor); err != nil {
				return ggerr.New(ggerr.KindInternalFailure, "internal marker persist failed", err)
			}
		}
	}
	return nil
}
