package subscribe

import (
	"sort"
	"testing"

	"github.com/joshuapare/ggconfig/pkg/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeChecker struct {
	present map[string]bool
}

func (f *fakeChecker) Exists(path value.Path) bool {
	return f.present[path.Display()]
}

func TestRegistry_Subscribe_RequiresExistence(t *testing.T) {
	checker := &fakeChecker{present: map[string]bool{}}
	r := New(checker)

	err := r.Subscribe(value.NewPathFromStrings("a"), Handle(1))
	assert.Error(t, err)
}

func TestRegistry_Subscribe_Success(t *testing.T) {
	checker := &fakeChecker{present: map[string]bool{"/a": true}}
	r := New(checker)

	err := r.Subscribe(value.NewPathFromStrings("a"), Handle(1))
	require.NoError(t, err)
}

func TestRegistry_HandlesFor_AncestorFanOut(t *testing.T) {
	checker := &fakeChecker{present: map[string]bool{
		"/":        true,
		"/svc":     true,
		"/svc/cfg": true,
	}}
	r := New(checker)

	require.NoError(t, r.Subscribe(value.NewPathFromStrings(), Handle(1)))
	require.NoError(t, r.Subscribe(value.NewPathFromStrings("svc"), Handle(2)))
	require.NoError(t, r.Subscribe(value.NewPathFromStrings("svc", "cfg"), Handle(3)))

	handles := r.HandlesFor(value.NewPathFromStrings("svc", "cfg"))
	assert.ElementsMatch(t, []Handle{1, 2, 3}, handles)

	handles = r.HandlesFor(value.NewPathFromStrings("svc"))
	assert.ElementsMatch(t, []Handle{1, 2}, handles)

	handles = r.HandlesFor(value.NewPathFromStrings("other"))
	assert.ElementsMatch(t, []Handle{1}, handles)
}

func TestRegistry_Unsubscribe(t *testing.T) {
	checker := &fakeChecker{present: map[string]bool{"/svc": true}}
	r := New(checker)

	require.NoError(t, r.Subscribe(value.NewPathFromStrings("svc"), Handle(1)))
	r.Unsubscribe(Handle(1))

	handles := r.HandlesFor(value.NewPathFromStrings("svc"))
	assert.Empty(t, handles)
}

func TestRegistry_Unsubscribe_UnknownHandleIsNoop(t *testing.T) {
	checker := &fakeChecker{present: map[string]bool{}}
	r := New(checker)
	r.Unsubscribe(Handle(999))
}

func TestRegistry_MultipleHandlesSamePath(t *testing.T) {
	checker := &fakeChecker{present: map[string]bool{"/svc": true}}
	r := New(checker)

	require.NoError(t, r.Subscribe(value.NewPathFromStrings("svc"), Handle(1)))
	require.NoError(t, r.Subscribe(value.NewPathFromStrings("svc"), Handle(2)))

	handles := r.HandlesFor(value.NewPathFromStrings("svc"))
	sort.Slice(handles, func(i, j int) bool { return handles[i] < handles[j] })
	assert.Equal(t, []Handle{1, 2}, handles)
}

func TestRegistry_DropSubtree_LeavesAncestorsIntact(t *testing.T) {
	checker := &fakeChecker{present: map[string]bool{
		"/c20/foo":     true,
		"/c20/foo/key": true,
	}}
	r := New(checker)

	require.NoError(t, r.Subscribe(value.NewPathFromStrings("c20", "foo"), Handle(1)))
	require.NoError(t, r.Subscribe(value.NewPathFromStrings("c20", "foo", "key"), Handle(2)))

	r.DropSubtree(value.NewPathFromStrings("c20", "foo", "key"))

	handles := r.HandlesFor(value.NewPathFromStrings("c20", "foo", "key"))
	assert.ElementsMatch(t, []Handle{1}, handles, "the ancestor subscription must survive, the exact-path one must not")
}

func TestRegistry_DropSubtree_RemovesDescendants(t *testing.T) {
	checker := &fakeChecker{present: map[string]bool{
		"/a":     true,
		"/a/b":   true,
		"/a/b/c": true,
	}}
	r := New(checker)

	require.NoError(t, r.Subscribe(value.NewPathFromStrings("a", "b"), Handle(1)))
	require.NoError(t, r.Subscribe(value.NewPathFromStrings("a", "b", "c"), Handle(2)))

	r.DropSubtree(value.NewPathFromStrings("a", "b"))

	assert.Empty(t, r.HandlesFor(value.NewPathFromStrings("a", "b", "c")))
}
