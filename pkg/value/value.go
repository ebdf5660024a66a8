// Package value defines the tagged Value union and the Path type used
// throughout the configuration store: what can be stored at a leaf, and
// how clients address a node (spec section 4.1).
package value

import "github.com/joshuapare/ggconfig/pkg/ggerr"

// Kind tags a Value's active variant. Kind is a closed set deliberately
// modeled as an enum rather than an open interface hierarchy, the same
// choice the teacher makes for RegType (pkg/types/api.go) — a fixed,
// small set of wire-level type tags that round-trip without ambiguity.
type Kind uint8

const (
	KindNull Kind = iota
	KindBool
	KindInt
	KindFloat
	KindBytes
	KindList
	KindMap
)

// String renders the kind for logs and error messages.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "Null"
	case KindBool:
		return "Bool"
	case KindInt:
		return "Int"
	case KindFloat:
		return "Float"
	case KindBytes:
		return "Bytes"
	case KindList:
		return "List"
	case KindMap:
		return "Map"
	default:
		return "Unknown"
	}
}

// Value is the tagged union stored at a leaf or carried in an RPC
// request/response. Only the field matching Kind is meaningful.
type Value struct {
	Kind  Kind
	Bool  bool
	Int   int64
	Float float64
	Bytes []byte
	List  []Value
	Map   map[string]Value
}

func Null() Value                 { return Value{Kind: KindNull} }
func Bool(b bool) Value           { return Value{Kind: KindBool, Bool: b} }
func Int(i int64) Value           { return Value{Kind: KindInt, Int: i} }
func Float(f float64) Value       { return Value{Kind: KindFloat, Float: f} }
func Bytes(b []byte) Value        { return Value{Kind: KindBytes, Bytes: b} }
func List(items []Value) Value    { return Value{Kind: KindList, List: items} }
func Map(m map[string]Value) Value {
	if m == nil {
		m = map[string]Value{}
	}
	return Value{Kind: KindMap, Map: m}
}

// IsMap reports whether v must be handled by the recursive map-merge path
// of Tree.Write rather than the scalar leaf-write path (spec section 4.2).
func (v Value) IsMap() bool { return v.Kind == KindMap }

// Equal reports deep equality, used by tests asserting round-trip
// properties (spec section 8).
func (v Value) Equal(o Value) bool {
	if v.Kind != o.Kind {
		return false
	}
	switch v.Kind {
	case KindNull:
		return true
	case KindBool:
		return v.Bool == o.Bool
	case KindInt:
		return v.Int == o.Int
	case KindFloat:
		return v.Float == o.Float
	case KindBytes:
		return string(v.Bytes) == string(o.Bytes)
	case KindList:
		if len(v.List) != len(o.List) {
			return false
		}
		for i := range v.List {
			if !v.List[i].Equal(o.List[i]) {
				return false
			}
		}
		return true
	case KindMap:
		if len(v.Map) != len(o.Map) {
			return false
		}
		for k, vv := range v.Map {
			ov, ok := o.Map[k]
			if !ok || !vv.Equal(ov) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

var (
	errEmptySegment   = ggerr.New(ggerr.KindInvalidArgument, "path segment must not be empty", nil)
	errSegmentTooLong = ggerr.New(ggerr.KindOutOfRange, "path segment exceeds maximum length", nil)
)
