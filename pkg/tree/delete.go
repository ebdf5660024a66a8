package tree

import (
	"github.com/joshuapare/ggconfig/internal/persist"
	"github.com/joshuapare/ggconfig/pkg/ggerr"
	"github.com/joshuapare/ggconfig/pkg/value"
)

// Delete implements spec section 4.2's delete(path): removes the subtree
// rooted at path atomically from the client's perspective. The immediate
// ancestor (and all of path's siblings) are left untouched (spec section
// 3, invariant 4). One notification fires per leaf removed; order across
// the removed leaves is unspecified (spec section 4.2).
func (t *Tree) Delete(path value.Path) error {
	kind, err := t.store.Exists(path)
	if err != nil {
		return ggerr.New(ggerr.KindInternalFailure, "exists check failed", err)
	}
	if kind == persist.Absent {
		return ggerr.ErrNotFound
	}
	leaves, err := t.collectLeaves(path, kind)
	if err != nil {
		return err
	}
	if err := t.store.DeleteSubtree(path); err != nil {
		return ggerr.New(ggerr.KindInternalFailure, "subtree delete failed", err)
	}
	for _, leafPath := range leaves {
		t.notifier.NotifyMutation(leafPath)
	}
	return nil
}

// collectLeaves walks the subtree rooted at path and returns every leaf
// path within it (path itself if it is a leaf), gathered before the
// actual deletion so the notification fan-out still has paths to hand
// once the store has forgotten them.
func (t *Tree) collectLeaves(path value.Path, kind persist.Exist) ([]value.Path, error) {
	if kind == persist.Leaf {
		return []value.Path{path}, nil
	}
	children, err := t.store.ListChildren(path)
	if err != nil {
		return nil, ggerr.New(ggerr.KindInternalFailure, "list children failed", err)
	}
	var out []value.Path
	for _, seg := range children {
		childPath := path.Push(seg)
		childKind, err := t.store.Exists(childPath)
		if err != nil {
			return nil, ggerr.New(ggerr.KindInternalFailure, "exists check failed", err)
		}
		if childKind == persist.Absent {
			continue
		}
		childLeaves, err := t.collectLeaves(childPath, childKind)
		if err != nil {
			return nil, err
		}
		out = append(out, childLeaves...)
	}
	return out, nil
}
