package value

import (
	"errors"
	"testing"

	"github.com/joshuapare/ggconfig/pkg/ggerr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeLeaf_RoundTrip(t *testing.T) {
	tests := []struct {
		name string
		v    Value
	}{
		{"null", Null()},
		{"bool true", Bool(true)},
		{"bool false", Bool(false)},
		{"int", Int(-42)},
		{"float", Float(3.5)},
		{"bytes", Bytes([]byte("hello"))},
		{"empty list", List(nil)},
		{"mixed list", List([]Value{Int(1), Bool(true), Bytes([]byte("x")), Null()})},
		{"nested list", List([]Value{List([]Value{Int(1), Int(2)}), Float(1.5)})},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			blob, tag, err := EncodeLeaf(tt.v)
			require.NoError(t, err)
			assert.Equal(t, tt.v.Kind, tag)

			out, err := DecodeLeaf(blob, tag)
			require.NoError(t, err)
			assert.True(t, tt.v.Equal(out), "round trip mismatch: got %+v want %+v", out, tt.v)
		})
	}
}

func TestEncodeLeaf_RejectsMap(t *testing.T) {
	_, _, err := EncodeLeaf(Map(map[string]Value{"a": Int(1)}))
	require.Error(t, err)
	var kerr *ggerr.Error
	require.True(t, errors.As(err, &kerr))
	assert.Equal(t, ggerr.KindInvalidArgument, kerr.Kind)
}

func TestDecodeLeaf_CorruptTag(t *testing.T) {
	blob, _, err := EncodeLeaf(Int(7))
	require.NoError(t, err)

	_, err = DecodeLeaf(blob, Kind(99))
	require.Error(t, err)
}
