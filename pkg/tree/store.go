package tree

import (
	"github.com/joshuapare/ggconfig/internal/persist"
	"github.com/joshuapare/ggconfig/pkg/value"
)

// Tree is the Tree Store. It is safe for use by one request at a time
// only (spec section 5: the engine is single-threaded cooperative at the
// request level); the Store it wraps is assumed internally thread-safe
// for the auxiliary-worker-thread I/O the scheduling model allows.
type Tree struct {
	store    persist.Store
	notifier Notifier
}

// New wraps store as a Tree Store. If notifier is nil, mutations are
// silently not fanned out (useful for tests that only assert tree
// semantics).
func New(store persist.Store, notifier Notifier) *Tree {
	if notifier == nil {
		notifier = noopNotifier{}
	}
	return &Tree{store: store, notifier: notifier}
}

// Exists reports whether path currently resolves to any node (leaf or
// internal). It implements subscribe.ExistenceChecker so the Subscription
// Registry can enforce "subscribe requires existence" (spec section 4.3)
// without importing the tree invariants themselves.
func (t *Tree) Exists(path value.Path) bool {
	kind, err := t.store.Exists(path)
	if err != nil {
		return false
	}
	return kind != persist.Absent
}
