package engine

import (
	"github.com/joshuapare/ggconfig/pkg/ggerr"
	"github.com/joshuapare/ggconfig/pkg/value"
)

// keyPathParam extracts and validates the required key_path: List<Bytes>
// parameter every RPC method takes (spec section 4.4). Violations are
// shape errors (InvalidArgument) or range errors (OutOfRange), the same
// taxonomy split spec section 7 draws.
func keyPathParam(params map[string]value.Value) (value.Path, error) {
	raw, ok := params["key_path"]
	if !ok {
		return value.Path{}, ggerr.New(ggerr.KindInvalidArgument, "key_path is required", nil)
	}
	if raw.Kind != value.KindList {
		return value.Path{}, ggerr.New(ggerr.KindInvalidArgument, "key_path must be a list", nil)
	}
	if len(raw.List) > value.MaxDepth {
		return value.Path{}, ggerr.New(ggerr.KindOutOfRange, "key_path exceeds maximum depth", nil)
	}
	segs := make([][]byte, len(raw.List))
	for i, el := range raw.List {
		if el.Kind != value.KindBytes {
			return value.Path{}, ggerr.New(ggerr.KindInvalidArgument, "key_path elements must be byte strings", nil)
		}
		if err := value.ValidateSegment(el.Bytes); err != nil {
			return value.Path{}, err
		}
		segs[i] = el.Bytes
	}
	return value.NewPath(segs...), nil
}

// writeValueParam extracts the required value parameter of a write
// request. Any Value is accepted at this layer; the Tree Store is what
// decides map-vs-scalar handling.
func writeValueParam(params map[string]value.Value) (value.Value, error) {
	v, ok := params["value"]
	if !ok {
		return value.Value{}, ggerr.New(ggerr.KindInvalidArgument, "value is required", nil)
	}
	return v, nil
}

// timestampParam extracts the optional timestamp: Int parameter, falling
// back to nowMillis() (the handler's wall clock) when the client omits it
// (spec section 4.4).
func timestampParam(params map[string]value.Value, nowMillis func() int64) (int64, error) {
	raw, ok := params["timestamp"]
	if !ok {
		return nowMillis(), nil
	}
	if raw.Kind != value.KindInt {
		return 0, ggerr.New(ggerr.KindInvalidArgument, "timestamp must be an integer", nil)
	}
	return raw.Int, nil
}
