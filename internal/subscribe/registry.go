// Package subscribe implements the Subscription Registry (spec section
// 4.3): the mapping from subscribed path prefixes to subscriber handles,
// and the ancestor walk that answers "which handles must be notified for
// this changed path?"
//
// The map-of-sets shape here mirrors the teacher's hive/index.Index —
// "lookups use (parentOffset, name) tuples instead of full paths" — but
// keyed on whole subscribed paths rather than single parent/name pairs,
// since a subscriber's scope is a path prefix, not one sibling lookup.
package subscribe

import (
	"encoding/binary"
	"sync"

	"github.com/joshuapare/ggconfig/pkg/ggerr"
	"github.com/joshuapare/ggconfig/pkg/value"
)

// Handle is the opaque 32-bit subscriber identifier allocated by the
// transport (spec section 5); the engine treats it only as an
// equality-comparable token.
type Handle uint32

// ExistenceChecker lets the Registry enforce subscribe's precondition
// (spec section 4.3: "Requires that path currently resolves to some
// node") without owning tree state itself.
type ExistenceChecker interface {
	Exists(path value.Path) bool
}

// Registry is the Subscription Registry. It holds no references into the
// tree (spec section 3, "Ownership"); it only holds paths and handles.
type Registry struct {
	mu       sync.Mutex
	checker  ExistenceChecker
	byPath   map[string]map[Handle]struct{}
	byHandle map[Handle]map[string]struct{}
}

// New builds a Registry that consults checker to enforce the
// subscribe-requires-existence precondition.
func New(checker ExistenceChecker) *Registry {
	return &Registry{
		checker:  checker,
		byPath:   map[string]map[Handle]struct{}{},
		byHandle: map[Handle]map[string]struct{}{},
	}
}

// Subscribe records (path, handle). Fails NotFound if path currently
// resolves to nothing (spec section 4.3).
func (r *Registry) Subscribe(path value.Path, handle Handle) error {
	if !r.checker.Exists(path) {
		return ggerr.ErrNotFound
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	k := pathKey(path)
	if r.byPath[k] == nil {
		r.byPath[k] = map[Handle]struct{}{}
	}
	r.byPath[k][handle] = struct{}{}
	if r.byHandle[handle] == nil {
		r.byHandle[handle] = map[string]struct{}{}
	}
	r.byHandle[handle][k] = struct{}{}
	return nil
}

// Unsubscribe removes every (path, handle) record for handle. Invoked
// when the transport reports the subscriber's connection closed.
func (r *Registry) Unsubscribe(handle Handle) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for k := range r.byHandle[handle] {
		if set := r.byPath[k]; set != nil {
			delete(set, handle)
			if len(set) == 0 {
				delete(r.byPath, k)
			}
		}
	}
	delete(r.byHandle, handle)
}

// DropSubtree removes every subscription registered at path or at any
// descendant of path, without touching subscriptions on path's ancestors.
// Invoked when path is deleted so that a later write recreating the exact
// same path does not resurrect the old subscription — only an ancestor
// subscriber observes both the delete and the later write (spec section
// 9, the documented subscription-after-delete limitation).
func (r *Registry) DropSubtree(path value.Path) {
	r.mu.Lock()
	defer r.mu.Unlock()
	prefix := pathKey(path)
	for k, handles := range r.byPath {
		if k != prefix && (len(k) <= len(prefix) || k[:len(prefix)] != prefix) {
			continue
		}
		for h := range handles {
			if set := r.byHandle[h]; set != nil {
				delete(set, k)
				if len(set) == 0 {
					delete(r.byHandle, h)
				}
			}
		}
		delete(r.byPath, k)
	}
}

// HandlesFor returns every handle whose subscribed path is a prefix of
// mutated (including mutated itself), by walking from the root down to
// mutated's own depth and unioning handles found at each ancestor (spec
// section 4.3).
func (r *Registry) HandlesFor(mutated value.Path) []Handle {
	r.mu.Lock()
	defer r.mu.Unlock()
	segs := mutated.Segments()
	seen := map[Handle]struct{}{}
	for depth := 0; depth <= len(segs); depth++ {
		prefix := value.NewPath(segs[:depth]...)
		for h := range r.byPath[pathKey(prefix)] {
			seen[h] = struct{}{}
		}
	}
	out := make([]Handle, 0, len(seen))
	for h := range seen {
		out = append(out, h)
	}
	return out
}

// pathKey renders a Path into a collision-free map key, length-prefixing
// each segment the same way internal/persist.key does, independently,
// since the two packages deliberately share no tree-shaped state.
func pathKey(path value.Path) string {
	b := make([]byte, 0, 64)
	var lb [binary.MaxVarintLen64]byte
	for _, seg := range path.Segments() {
		n := binary.PutUvarint(lb[:], uint64(len(seg)))
		b = append(b, lb[:n]...)
		b = append(b, seg...)
	}
	return string(b)
}
