// Package engine implements the Request Handlers (spec section 4.4): the
// four RPC entry points that are the only way a client reaches the
// configuration store engine. Handlers validate arguments, drive the Tree
// Store, and trigger notification fan-out after a successful mutation.
package engine

import (
	"sync"
	"time"

	"github.com/joshuapare/ggconfig/internal/persist"
	"github.com/joshuapare/ggconfig/internal/subscribe"
	"github.com/joshuapare/ggconfig/pkg/tree"
	"github.com/joshuapare/ggconfig/pkg/value"
)

// notifyQueueDepth bounds each subscriber's outbound notification queue
// (spec section 5: "fan-out writes to a bounded outbound queue per
// handle"). A full queue drops the oldest pending notification rather
// than blocking the mutation that produced it.
const notifyQueueDepth = 64

// Engine ties the Tree Store, Subscription Registry and Persistence Layer
// together behind the RPC surface of spec section 6. One process holds a
// single Engine; requests share it via the serial request loop described
// in spec section 5.
type Engine struct {
	reqMu sync.Mutex // serializes request processing end-to-end

	store    persist.Store
	tree     *tree.Tree
	registry *subscribe.Registry

	subMu sync.Mutex
	subs  map[subscribe.Handle]chan value.Path

	now func() int64
}

// New wires an Engine over the given durable store. Close must be called
// to flush and release the store on shutdown (spec section 9: "teardown
// flushes and closes it").
func New(store persist.Store) *Engine {
	e := &Engine{
		store: store,
		subs:  map[subscribe.Handle]chan value.Path{},
		now:   func() int64 { return time.Now().UnixMilli() },
	}
	e.tree = tree.New(store, e)
	e.registry = subscribe.New(e.tree)
	return e
}

// Close flushes and closes the underlying Persistence Layer.
func (e *Engine) Close() error {
	return e.store.Close()
}

// NotifyMutation implements tree.Notifier. It is called once per
// effective leaf mutation and fans the path out to every handle
// subscribed to it or one of its ancestors (spec sections 4.2 and 4.3).
// Delivery is off the mutation's critical path: this only enqueues.
func (e *Engine) NotifyMutation(path value.Path) {
	handles := e.registry.HandlesFor(path)
	if len(handles) == 0 {
		return
	}
	e.subMu.Lock()
	defer e.subMu.Unlock()
	for _, h := range handles {
		ch, ok := e.subs[h]
		if !ok {
			continue
		}
		select {
		case ch <- path:
		default:
			// Queue full: drop the oldest pending notification to make
			// room rather than block the mutating request (spec section
			// 5: "A blocked subscriber must not block other requests").
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- path:
			default:
			}
		}
	}
}
