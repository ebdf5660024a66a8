package value

import (
	"encoding/json"
	"fmt"

	"github.com/joshuapare/ggconfig/pkg/ggerr"
)

// EncodeLeaf renders a scalar, null, bytes, or list Value to the codec's
// canonical textual form — spec section 4.5 treats this codec as an
// external collaborator the engine merely invokes; here that collaborator
// is Go's encoding/json, used the same way the teacher treats its cell
// codec (internal/format) as a pure transform the tree layer calls into
// without owning its implementation details. The original gg_config
// daemon this system is modeled on makes the same choice for the same
// reason: json-encode a scalar before handing it to storage.
//
// EncodeLeaf must not be called with a Map value; Maps are never stored
// as a single opaque leaf (spec section 3).
func EncodeLeaf(v Value) ([]byte, Kind, error) {
	if v.Kind == KindMap {
		return nil, 0, ggerr.New(ggerr.KindInvalidArgument, "cannot encode a Map as a leaf", nil)
	}
	jv, err := toJSON(v)
	if err != nil {
		return nil, 0, err
	}
	blob, err := json.Marshal(jv)
	if err != nil {
		return nil, 0, ggerr.New(ggerr.KindInternalFailure, "leaf encode failed", err)
	}
	return blob, v.Kind, nil
}

// DecodeLeaf reverses EncodeLeaf. The tag uniquely determines the decoding
// applied; decoding never silently widens or narrows the type (spec
// section 3, invariant 5).
func DecodeLeaf(blob []byte, tag Kind) (Value, error) {
	var jv jsonNode
	if err := json.Unmarshal(blob, &jv); err != nil {
		return Value{}, ggerr.New(ggerr.KindInternalFailure, "leaf decode failed", err)
	}
	return fromJSON(jv, tag)
}

// jsonNode is the on-disk shape for a single leaf value. List elements
// recurse through the same shape so a List of mixed scalar kinds
// round-trips without ambiguity.
type jsonNode struct {
	T string     `json:"t"`
	B bool       `json:"b,omitempty"`
	I int64      `json:"i,omitempty"`
	F float64    `json:"f,omitempty"`
	S []byte     `json:"s,omitempty"`
	L []jsonNode `json:"l,omitempty"`
}

func tagName(k Kind) string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindBytes:
		return "bytes"
	case KindList:
		return "list"
	default:
		return "unknown"
	}
}

func toJSON(v Value) (jsonNode, error) {
	n := jsonNode{T: tagName(v.Kind)}
	switch v.Kind {
	case KindNull:
	case KindBool:
		n.B = v.Bool
	case KindInt:
		n.I = v.Int
	case KindFloat:
		n.F = v.Float
	case KindBytes:
		n.S = v.Bytes
	case KindList:
		n.L = make([]jsonNode, len(v.List))
		for i, item := range v.List {
			jn, err := toJSON(item)
			if err != nil {
				return jsonNode{}, err
			}
			n.L[i] = jn
		}
	default:
		return jsonNode{}, ggerr.New(ggerr.KindInvalidArgument, fmt.Sprintf("unencodable kind %v", v.Kind), nil)
	}
	return n, nil
}

func fromJSON(n jsonNode, tag Kind) (Value, error) {
	switch tag {
	case KindNull:
		return Null(), nil
	case KindBool:
		return Bool(n.B), nil
	case KindInt:
		return Int(n.I), nil
	case KindFloat:
		return Float(n.F), nil
	case KindBytes:
		return Bytes(n.S), nil
	case KindList:
		items := make([]Value, len(n.L))
		for i, jn := range n.L {
			var childTag Kind
			switch jn.T {
			case "null":
				childTag = KindNull
			case "bool":
				childTag = KindBool
			case "int":
				childTag = KindInt
			case "float":
				childTag = KindFloat
			case "bytes":
				childTag = KindBytes
			case "list":
				childTag = KindList
			default:
				return Value{}, ggerr.New(ggerr.KindInternalFailure, "corrupt leaf: unknown list element tag "+jn.T, nil)
			}
			v, err := fromJSON(jn, childTag)
			if err != nil {
				return Value{}, err
			}
			items[i] = v
		}
		return List(items), nil
	default:
		return Value{}, ggerr.New(ggerr.KindInternalFailure, fmt.Sprintf("corrupt leaf: undecodable tag %v", tag), nil)
	}
}
