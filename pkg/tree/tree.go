// Package tree implements the Tree Store (spec section 4.2): the
// persistent hierarchical key-value structure that enforces the "a node
// is either a value or a parent, never both" invariant and mediates every
// mutation against a Persistence Layer.
//
// The in-memory shape here plays the same role as the teacher's
// pkg/ast.Tree (a Node-per-path structure with Parent/Children links) but
// delegates node storage to a persist.Store instead of holding its own
// parallel tree: the Store already is the authoritative index, and
// keeping a second copy in sync would just be two sources of truth for
// one invariant.
package tree

import "github.com/joshuapare/ggconfig/pkg/value"

// Notifier is called once per effective leaf mutation, carrying the
// absolute path that changed (spec section 4.2, "Notification hook").
// Internal-node creation alone never triggers a call.
type Notifier interface {
	NotifyMutation(path value.Path)
}

// noopNotifier is used when a Tree is constructed without a notifier,
// e.g. in unit tests that only exercise read/write/delete semantics.
type noopNotifier struct{}

func (noopNotifier) NotifyMutation(value.Path) {}

// Outcome distinguishes the two successful write results: Ok for an
// applied write and OkStale for a stale write that was accepted but
// ignored. Failures (such as TypeMismatch) are returned as errors instead,
// so "Ok" (including the silently-ignored stale-write Ok) never has to be
// threaded through error-handling code that would otherwise treat every
// non-nil *ggerr.Error as failure.
type Outcome int

const (
	Ok Outcome = iota
	OkStale
)
