package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValue_IsMap(t *testing.T) {
	assert.True(t, Map(nil).IsMap())
	assert.False(t, Int(1).IsMap())
	assert.False(t, Null().IsMap())
}

func TestValue_Equal(t *testing.T) {
	tests := []struct {
		name string
		a, b Value
		want bool
	}{
		{"equal ints", Int(1), Int(1), true},
		{"different ints", Int(1), Int(2), false},
		{"different kinds", Int(1), Bool(true), false},
		{"equal bytes", Bytes([]byte("x")), Bytes([]byte("x")), true},
		{"equal lists", List([]Value{Int(1), Int(2)}), List([]Value{Int(1), Int(2)}), true},
		{"different length lists", List([]Value{Int(1)}), List([]Value{Int(1), Int(2)}), false},
		{"equal maps", Map(map[string]Value{"a": Int(1)}), Map(map[string]Value{"a": Int(1)}), true},
		{"different maps", Map(map[string]Value{"a": Int(1)}), Map(map[string]Value{"a": Int(2)}), false},
		{"missing key", Map(map[string]Value{"a": Int(1)}), Map(map[string]Value{"b": Int(1)}), false},
		{"null equals null", Null(), Null(), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Equal(tt.b))
		})
	}
}

func TestMap_NilBecomesEmpty(t *testing.T) {
	v := Map(nil)
	assert.NotNil(t, v.Map)
	assert.Len(t, v.Map, 0)
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "Map", KindMap.String())
	assert.Equal(t, "Bytes", KindBytes.String())
	assert.Equal(t, "Unknown", Kind(99).String())
}
