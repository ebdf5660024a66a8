package persist

import (
	"sort"
	"sync"

	"github.com/joshuapare/ggconfig/pkg/ggerr"
	"github.com/joshuapare/ggconfig/pkg/value"
)

// node is the in-memory record for one path. Internal nodes track their
// immediate children by segment key so ListChildren never has to scan the
// whole index, mirroring the teacher's index.Index: "lookups use
// (parentOffset, name) tuples instead of full paths" (hive/index/index.go).
type node struct {
	kind     Exist
	leaf     LeafRecord
	children map[string][]byte // child segment key -> raw child segment
}

// MemStore is an in-memory Store, used directly by tests and as the
// in-memory index behind walfile.Store, which appends each change to its
// log before applying it here (spec section 9: "an in-memory mirror that
// writes through to persistence").
type MemStore struct {
	mu    sync.Mutex
	nodes map[string]*node
}

// NewMemStore returns an empty store with an existing (empty) root.
func NewMemStore() *MemStore {
	return &MemStore{nodes: map[string]*node{
		"": {kind: Internal, children: map[string][]byte{}},
	}}
}

func (s *MemStore) PutLeaf(path value.Path, rec LeafRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureAncestors(path)
	s.nodes[key(path)] = &node{kind: Leaf, leaf: rec}
	return nil
}

func (s *MemStore) PutEmptyInternal(path value.Path) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureAncestors(path)
	k := key(path)
	if n, ok := s.nodes[k]; ok && n.kind == Internal {
		return nil
	}
	s.nodes[k] = &node{kind: Internal, children: map[string][]byte{}}
	return nil
}

// ensureAncestors registers path's last segment under its parent's
// children set, creating empty Internal records for every missing
// ancestor. It does not validate that the parent isn't a Leaf; the Tree
// Store is the invariant owner and is expected to have already rejected
// that.
func (s *MemStore) ensureAncestors(path value.Path) {
	if path.Depth() == 0 {
		return
	}
	parent, last := path.Pop()
	pk := key(parent)
	pn, ok := s.nodes[pk]
	if !ok {
		pn = &node{kind: Internal, children: map[string][]byte{}}
		s.nodes[pk] = pn
		s.ensureAncestors(parent)
	}
	if pn.children == nil {
		pn.children = map[string][]byte{}
	}
	pn.children[segKey(last)] = last
}

func (s *MemStore) DeleteSubtree(path value.Path) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	k := key(path)
	if _, ok := s.nodes[k]; !ok {
		return ggerr.ErrNotFound
	}
	prefix := k
	for ik := range s.nodes {
		if ik == prefix || (len(ik) > len(prefix) && ik[:len(prefix)] == prefix) {
			delete(s.nodes, ik)
		}
	}
	if path.Depth() > 0 {
		parent, last := path.Pop()
		if pn, ok := s.nodes[key(parent)]; ok && pn.children != nil {
			delete(pn.children, segKey(last))
		}
	}
	return nil
}

func (s *MemStore) GetLeaf(path value.Path) (LeafRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n, ok := s.nodes[key(path)]
	if !ok || n.kind != Leaf {
		return LeafRecord{}, ggerr.ErrNotFound
	}
	return n.leaf, nil
}

func (s *MemStore) ListChildren(path value.Path) ([][]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n, ok := s.nodes[key(path)]
	if !ok || n.kind != Internal {
		return nil, nil
	}
	out := make([][]byte, 0, len(n.children))
	for _, seg := range n.children {
		out = append(out, seg)
	}
	sort.Slice(out, func(i, j int) bool { return string(out[i]) < string(out[j]) })
	return out, nil
}

func (s *MemStore) Exists(path value.Path) (Exist, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n, ok := s.nodes[key(path)]
	if !ok {
		return Absent, nil
	}
	return n.kind, nil
}

func (s *MemStore) Close() error { return nil }

func segKey(seg []byte) string { return string(seg) }
