package engine

import (
	"github.com/joshuapare/ggconfig/internal/subscribe"
	"github.com/joshuapare/ggconfig/pkg/ggerr"
	"github.com/joshuapare/ggconfig/pkg/value"
)

// Read implements the read RPC method (spec section 6): required
// key_path, response is the resolved Value or a NotFound error.
func (e *Engine) Read(params map[string]value.Value) (value.Value, error) {
	path, err := keyPathParam(params)
	if err != nil {
		return value.Value{}, err
	}
	e.reqMu.Lock()
	defer e.reqMu.Unlock()
	return e.tree.Get(path)
}

// Write implements the write RPC method (spec section 6): required
// key_path and value, optional timestamp. Responds Null on success;
// TypeMismatch surfaces as a remote failure (spec section 4.4).
func (e *Engine) Write(params map[string]value.Value) error {
	path, err := keyPathParam(params)
	if err != nil {
		return err
	}
	if path.Depth() == 0 {
		return ggerr.New(ggerr.KindInvalidArgument, "write requires a non-root key_path", nil)
	}
	v, err := writeValueParam(params)
	if err != nil {
		return err
	}
	ts, err := timestampParam(params, e.now)
	if err != nil {
		return err
	}
	e.reqMu.Lock()
	defer e.reqMu.Unlock()
	_, err = e.tree.Write(path, v, ts)
	return err
}

// Delete implements the delete RPC method (spec section 6): required
// key_path. Responds Null on success; surfaces NotFound if path is
// absent.
func (e *Engine) Delete(params map[string]value.Value) error {
	path, err := keyPathParam(params)
	if err != nil {
		return err
	}
	e.reqMu.Lock()
	defer e.reqMu.Unlock()
	if err := e.tree.Delete(path); err != nil {
		return err
	}
	e.registry.DropSubtree(path)
	return nil
}

// Subscribe implements the subscribe RPC method (spec section 6):
// required key_path. On success, handle is registered against path and
// its notification stream becomes available via Notifications(handle).
func (e *Engine) Subscribe(handle subscribe.Handle, params map[string]value.Value) error {
	path, err := keyPathParam(params)
	if err != nil {
		return err
	}
	e.reqMu.Lock()
	defer e.reqMu.Unlock()
	if err := e.registry.Subscribe(path, handle); err != nil {
		return err
	}
	e.subMu.Lock()
	defer e.subMu.Unlock()
	if _, ok := e.subs[handle]; !ok {
		e.subs[handle] = make(chan value.Path, notifyQueueDepth)
	}
	return nil
}

// Unsubscribe is invoked when the transport reports a subscriber's
// connection closed (spec section 4.3, 5): it drops the handle's
// registrations and discards any pending outbound notifications.
func (e *Engine) Unsubscribe(handle subscribe.Handle) {
	e.registry.Unsubscribe(handle)
	e.subMu.Lock()
	defer e.subMu.Unlock()
	if ch, ok := e.subs[handle]; ok {
		close(ch)
		delete(e.subs, handle)
	}
}

// Notifications returns the stream of mutated paths for handle, as
// registered by a prior successful Subscribe call. The channel is closed
// when Unsubscribe is called for this handle.
func (e *Engine) Notifications(handle subscribe.Handle) <-chan value.Path {
	e.subMu.Lock()
	defer e.subMu.Unlock()
	return e.subs[handle]
}
