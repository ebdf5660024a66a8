package persist

import (
	"testing"

	"github.com/joshuapare/ggconfig/pkg/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemStore_PutLeafAndGet(t *testing.T) {
	s := NewMemStore()
	p := value.NewPathFromStrings("a", "b")

	err := s.PutLeaf(p, LeafRecord{Blob: []byte("1"), Tag: value.KindInt, Timestamp: 100})
	require.NoError(t, err)

	rec, err := s.GetLeaf(p)
	require.NoError(t, err)
	assert.Equal(t, []byte("1"), rec.Blob)
	assert.Equal(t, int64(100), rec.Timestamp)

	kind, err := s.Exists(p)
	require.NoError(t, err)
	assert.Equal(t, Leaf, kind)
}

func TestMemStore_PutLeaf_CreatesAncestors(t *testing.T) {
	s := NewMemStore()
	p := value.NewPathFromStrings("a", "b", "c")
	require.NoError(t, s.PutLeaf(p, LeafRecord{Blob: []byte("x"), Tag: value.KindBytes}))

	kind, err := s.Exists(value.NewPathFromStrings("a"))
	require.NoError(t, err)
	assert.Equal(t, Internal, kind)

	kind, err = s.Exists(value.NewPathFromStrings("a", "b"))
	require.NoError(t, err)
	assert.Equal(t, Internal, kind)

	children, err := s.ListChildren(value.NewPathFromStrings("a", "b"))
	require.NoError(t, err)
	require.Len(t, children, 1)
	assert.Equal(t, "c", string(children[0]))
}

func TestMemStore_PutEmptyInternal_Idempotent(t *testing.T) {
	s := NewMemStore()
	p := value.NewPathFromStrings("empty")
	require.NoError(t, s.PutEmptyInternal(p))
	require.NoError(t, s.PutEmptyInternal(p))

	kind, err := s.Exists(p)
	require.NoError(t, err)
	assert.Equal(t, Internal, kind)

	children, err := s.ListChildren(p)
	require.NoError(t, err)
	assert.Len(t, children, 0)
}

func TestMemStore_DeleteSubtree(t *testing.T) {
	s := NewMemStore()
	require.NoError(t, s.PutLeaf(value.NewPathFromStrings("a", "b"), LeafRecord{Blob: []byte("1"), Tag: value.KindInt}))
	require.NoError(t, s.PutLeaf(value.NewPathFromStrings("a", "c"), LeafRecord{Blob: []byte("2"), Tag: value.KindInt}))

	require.NoError(t, s.DeleteSubtree(value.NewPathFromStrings("a")))

	for _, p := range []value.Path{
		value.NewPathFromStrings("a"),
		value.NewPathFromStrings("a", "b"),
		value.NewPathFromStrings("a", "c"),
	} {
		kind, err := s.Exists(p)
		require.NoError(t, err)
		assert.Equal(t, Absent, kind)
	}
}

func TestMemStore_DeleteSubtree_NotFound(t *testing.T) {
	s := NewMemStore()
	err := s.DeleteSubtree(value.NewPathFromStrings("missing"))
	assert.Error(t, err)
}

func TestMemStore_DeleteSubtree_RemovesFromParentChildren(t *testing.T) {
	s := NewMemStore()
	require.NoError(t, s.PutLeaf(value.NewPathFromStrings("a", "b"), LeafRecord{Blob: []byte("1"), Tag: value.KindInt}))
	require.NoError(t, s.DeleteSubtree(value.NewPathFromStrings("a", "b")))

	children, err := s.ListChildren(value.NewPathFromStrings("a"))
	require.NoError(t, err)
	assert.Len(t, children, 0)
}

func TestMemStore_GetLeaf_WrongKind(t *testing.T) {
	s := NewMemStore()
	require.NoError(t, s.PutEmptyInternal(value.NewPathFromStrings("dir")))
	_, err := s.GetLeaf(value.NewPathFromStrings("dir"))
	assert.Error(t, err)
}

func TestMemStore_ListChildren_Sorted(t *testing.T) {
	s := NewMemStore()
	require.NoError(t, s.PutLeaf(value.NewPathFromStrings("z"), LeafRecord{Blob: []byte("1"), Tag: value.KindInt}))
	require.NoError(t, s.PutLeaf(value.NewPathFromStrings("a"), LeafRecord{Blob: []byte("2"), Tag: value.KindInt}))
	require.NoError(t, s.PutLeaf(value.NewPathFromStrings("m"), LeafRecord{Blob: []byte("3"), Tag: value.KindInt}))

	children, err := s.ListChildren(value.NewPathFromStrings())
	require.NoError(t, err)
	require.Len(t, children, 3)
	assert.Equal(t, []string{"a", "m", "z"}, []string{string(children[0]), string(children[1]), string(children[2])})
}
