package main

import (
	"strconv"
	"strings"

	"github.com/joshuapare/ggconfig/internal/persist/walfile"
	"github.com/joshuapare/ggconfig/pkg/engine"
	"github.com/joshuapare/ggconfig/pkg/value"
)

// openEngine opens the data directory as a durable WAL-backed store and
// wires an Engine over it, the library-call equivalent of hivectl's
// hive.GetValue/SetValue opening a hive file per invocation.
func openEngine() (*engine.Engine, error) {
	store, err := walfile.Open(dataDir, walfile.FlushAuto)
	if err != nil {
		return nil, err
	}
	return engine.New(store), nil
}

// parsePathArg splits a "/"-joined CLI path argument into a Path,
// ignoring a leading separator so both "a/b" and "/a/b" mean the same
// path.
func parsePathArg(s string) value.Path {
	s = strings.TrimPrefix(s, value.PathSeparator)
	if s == "" {
		return value.NewPathFromStrings()
	}
	return value.NewPathFromStrings(strings.Split(s, value.PathSeparator)...)
}

// pathToValue renders a Path as the List<Bytes> shape the engine's
// handlers expect in their decoded params map.
func pathToValue(p value.Path) value.Value {
	items := make([]value.Value, len(p.Segments()))
	for i, seg := range p.Segments() {
		items[i] = value.Bytes(seg)
	}
	return value.List(items)
}

// parseValueArg parses a CLI scalar string into a typed Value, mirroring
// hive.ParseValueString's --type-driven parsing (cmd/hivectl/set.go) but
// against this engine's Kind set instead of RegType.
func parseValueArg(s, typ string) (value.Value, error) {
	switch typ {
	case "string":
		return value.Bytes([]byte(s)), nil
	case "int":
		i, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return value.Value{}, err
		}
		return value.Int(i), nil
	case "float":
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return value.Value{}, err
		}
		return value.Float(f), nil
	case "bool":
		b, err := strconv.ParseBool(s)
		if err != nil {
			return value.Value{}, err
		}
		return value.Bool(b), nil
	case "null":
		return value.Null(), nil
	default:
		return value.Bytes([]byte(s)), nil
	}
}

// renderValue converts a Value into a JSON-friendly interface{} for
// --json output and for the tree/diff commands' recursive rendering.
func renderValue(v value.Value) interface{} {
	switch v.Kind {
	case value.KindNull:
		return nil
	case value.KindBool:
		return v.Bool
	case value.KindInt:
		return v.Int
	case value.KindFloat:
		return v.Float
	case value.KindBytes:
		return string(v.Bytes)
	case value.KindList:
		out := make([]interface{}, len(v.List))
		for i, item := range v.List {
			out[i] = renderValue(item)
		}
		return out
	case value.KindMap:
		out := make(map[string]interface{}, len(v.Map))
		for k, item := range v.Map {
			out[k] = renderValue(item)
		}
		return out
	default:
		return nil
	}
}
