package tree

import (
	"testing"

	fuzz "github.com/google/gofuzz"
	"github.com/joshuapare/ggconfig/internal/persist"
	"github.com/joshuapare/ggconfig/pkg/value"
	"github.com/stretchr/testify/assert"
)

// TestFuzz_WriteNeverPanics hammers Write/Get with random path segments
// and scalar values, checking only for panics, not for any specific
// resulting tree shape.
func TestFuzz_WriteNeverPanics(t *testing.T) {
	tr := New(persist.NewMemStore(), nil)
	f := fuzz.New().NilChance(0).NumElements(1, 4).Funcs(
		func(s *string, c fuzz.Continue) {
			*s = string(rune('a' + c.Intn(6)))
		},
	)

	for i := 0; i < 2000; i++ {
		var segs []string
		f.Fuzz(&segs)
		var n int64
		f.Fuzz(&n)
		var ts int64
		f.Fuzz(&ts)

		path := value.NewPathFromStrings(segs...)

		assert.NotPanics(t, func() {
			_, _ = tr.Write(path, value.Int(n), ts)
		})
		assert.NotPanics(t, func() {
			_, _ = tr.Get(path)
		})
	}
}

// TestFuzz_RandomPathsNeverLeaveDoubleKind writes random scalars at random
// paths and asserts every written path resolves to exactly one Exist
// state: Absent where the write was rejected, otherwise Leaf or Internal.
func TestFuzz_RandomPathsNeverLeaveDoubleKind(t *testing.T) {
	store := persist.NewMemStore()
	tr := New(store, nil)
	f := fuzz.New().NilChance(0).NumElements(1, 3).Funcs(
		func(s *string, c fuzz.Continue) {
			*s = string(rune('a' + c.Intn(4)))
		},
	)

	paths := make([]value.Path, 0, 500)
	for i := 0; i < 500; i++ {
		var segs []string
		f.Fuzz(&segs)
		p := value.NewPathFromStrings(segs...)
		paths = append(paths, p)
		_, _ = tr.Write(p, value.Int(int64(i)), int64(i))
	}

	for _, p := range paths {
		kind, err := store.Exists(p)
		if err != nil {
			continue
		}
		assert.Contains(t, []persist.Exist{persist.Absent, persist.Leaf, persist.Internal}, kind)
	}
}
