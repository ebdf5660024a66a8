package ggerr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestError_Is(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		target error
		want   bool
	}{
		{"same kind different message", New(KindNotFound, "no such path", nil), ErrNotFound, true},
		{"different kind", New(KindInvalidArgument, "bad path", nil), ErrNotFound, false},
		{"not a ggerr", errors.New("boom"), ErrNotFound, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, errors.Is(tt.err, tt.target))
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("disk full")
	err := New(KindInternalFailure, "persist failed", cause)
	require.ErrorIs(t, err, cause)
}

func TestError_Message(t *testing.T) {
	err := New(KindOutOfRange, "path too deep", nil)
	assert.Equal(t, "path too deep", err.Error())

	wrapped := New(KindInternalFailure, "wal write failed", errors.New("eof"))
	assert.Equal(t, "wal write failed: eof", wrapped.Error())
}

func TestKindOf(t *testing.T) {
	k, ok := KindOf(ErrTypeMismatch)
	require.True(t, ok)
	assert.Equal(t, KindTypeMismatch, k)

	wrapped := fmt.Errorf("context: %w", ErrNotFound)
	k, ok = KindOf(wrapped)
	require.True(t, ok)
	assert.Equal(t, KindNotFound, k)

	_, ok = KindOf(errors.New("plain"))
	assert.False(t, ok)
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "NotFound", KindNotFound.String())
	assert.Equal(t, "TypeMismatch", KindTypeMismatch.String())
}
