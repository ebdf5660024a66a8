package tree

import (
	"github.com/joshuapare/ggconfig/internal/persist"
	"github.com/joshuapare/ggconfig/pkg/ggerr"
	"github.com/joshuapare/ggconfig/pkg/value"
)

// Get implements spec section 4.2's get(path): a leaf returns its decoded
// Value, an internal node returns a Map built by recursing into each
// child (an internal node with no children returns Map{}), and an absent
// path returns ErrNotFound.
func (t *Tree) Get(path value.Path) (value.Value, error) {
	kind, err := t.store.Exists(path)
	if err != nil {
		return value.Value{}, ggerr.New(ggerr.KindInternalFailure, "exists check failed", err)
	}
	switch kind {
	case persist.Absent:
		return value.Value{}, ggerr.ErrNotFound
	case persist.Leaf:
		rec, err := t.store.GetLeaf(path)
		if err != nil {
			return value.Value{}, ggerr.New(ggerr.KindInternalFailure, "leaf fetch failed", err)
		}
		v, err := value.DecodeLeaf(rec.Blob, rec.Tag)
		if err != nil {
			return value.Value{}, err
		}
		return v, nil
	default: // persist.Internal
		return t.getInternal(path)
	}
}

// getInternal builds the Map for an internal node by calling Get on each
// child in turn, so descent is plain recursion one level per path segment.
// Go's goroutine stacks grow automatically, and recursion depth is bounded
// by how deep the stored tree is.
func (t *Tree) getInternal(path value.Path) (value.Value, error) {
	children, err := t.store.ListChildren(path)
	if err != nil {
		return value.Value{}, ggerr.New(ggerr.KindInternalFailure, "list children failed", err)
	}
	m := make(map[string]value.Value, len(children))
	for _, seg := range children {
		childPath := path.Push(seg)
		childVal, err := t.Get(childPath)
		if err != nil {
			if k, ok := ggerr.KindOf(err); ok && k == ggerr.KindNotFound {
				// Raced with a concurrent delete of this child; skip it
				// rather than fail the whole listing.
				continue
			}
			return value.Value{}, err
		}
		m[string(seg)] = childVal
	}
	return value.Map(m), nil
}
