package diff_test

import (
	"testing"

	"github.com/arthur-debert/minifiles/pkg/diff"
	"github.com/arthur-debert/minifiles/pkg/listing"
	"github.com/arthur-debert/minifiles/pkg/registry"
	"github.com/arthur-debert/minifiles/pkg/types"
	"github.com/stretchr/testify/assert"
)

type fixture struct {
	reg   *registry.Registry
	codec *listing.Codec
	comp  *diff.Computer
	a, c  types.Entry
}

func newFixture() fixture {
	reg := registry.New()
	a := types.Entry{Path: "/tmp/x/a.txt", Name: "a.txt", PathID: reg.Register("/tmp/x/a.txt")}
	c := types.Entry{Path: "/tmp/x/c.txt", Name: "c.txt", PathID: reg.Register("/tmp/x/c.txt")}
	codec := listing.NewCodec(reg, nil)
	return fixture{reg: reg, codec: codec, comp: diff.NewComputer(reg, codec, nil), a: a, c: c}
}

func (f fixture) listing(lines ...string) diff.Listing {
	return diff.Listing{Dir: "/tmp/x", Lines: lines, Reference: []int{f.a.PathID, f.c.PathID}}
}

func TestCompute_Unchanged(t *testing.T) {
	f := newFixture()
	lines := f.codec.Render([]types.Entry{f.a, f.c})

	assert.Empty(t, f.comp.Compute(f.listing(lines...)))
	assert.Empty(t, f.comp.Compute(f.listing(lines...)), "second run stays empty")
}

func TestCompute_Rename(t *testing.T) {
	f := newFixture()

	got := f.comp.Compute(f.listing("/1/b.txt", "/2/c.txt"))

	assert.Equal(t, []types.RawDiff{
		{From: "/tmp/x/a.txt", To: "/tmp/x/b.txt", Dir: "/tmp/x"},
		{From: "/tmp/x/a.txt", Dir: "/tmp/x"},
	}, got)
}

func TestCompute_Delete(t *testing.T) {
	f := newFixture()

	got := f.comp.Compute(f.listing("/1/a.txt"))

	assert.Equal(t, []types.RawDiff{{From: "/tmp/x/c.txt", Dir: "/tmp/x"}}, got)
}

func TestCompute_CreateKeepsTrailingSeparator(t *testing.T) {
	f := newFixture()

	got := f.comp.Compute(f.listing("/1/a.txt", "/2/c.txt", "newdir/", "deep/nested/file.go"))

	assert.Equal(t, []types.RawDiff{
		{To: "/tmp/x/newdir/", Dir: "/tmp/x"},
		{To: "/tmp/x/deep/nested/file.go", Dir: "/tmp/x"},
	}, got)
}

func TestCompute_DuplicateLineIsCopyCandidate(t *testing.T) {
	f := newFixture()

	got := f.comp.Compute(f.listing("/1/a.txt", "/1/a-copy.txt", "/2/c.txt"))

	assert.Equal(t, []types.RawDiff{{From: "/tmp/x/a.txt", To: "/tmp/x/a-copy.txt", Dir: "/tmp/x"}}, got)
}

func TestCompute_BlankLinesIgnored(t *testing.T) {
	f := newFixture()
	assert.Empty(t, f.comp.Compute(f.listing("", "/1/a.txt", "   ", "/2/c.txt", "\t")))
}

func TestCompute_EmptyNameKeepsEntry(t *testing.T) {
	f := newFixture()
	assert.Empty(t, f.comp.Compute(f.listing("/1/", "/2/c.txt")))
}

func TestCompute_UnknownIDBecomesCreate(t *testing.T) {
	f := newFixture()

	got := f.comp.Compute(f.listing("/1/a.txt", "/2/c.txt", "/999/ghost.txt"))

	assert.Equal(t, []types.RawDiff{{To: "/tmp/x/ghost.txt", Dir: "/tmp/x"}}, got)
}

func TestCompute_DirectoryLine(t *testing.T) {
	reg := registry.New()
	id := reg.Register("/tmp/x/sub")
	comp := diff.NewComputer(reg, nil, nil)

	assert.Empty(t, comp.Compute(diff.Listing{Dir: "/tmp/x", Lines: []string{"/1/sub/"}, Reference: []int{id}}))
}

func TestComputeAll_CrossDirectory(t *testing.T) {
	f := newFixture()
	other := diff.Listing{Dir: "/tmp/y", Lines: []string{"/1/a.txt"}}

	got := f.comp.ComputeAll([]diff.Listing{f.listing("/2/c.txt"), other})

	assert.Equal(t, []types.RawDiff{
		{From: "/tmp/x/a.txt", Dir: "/tmp/x"},
		{From: "/tmp/x/a.txt", To: "/tmp/y/a.txt", Dir: "/tmp/y"},
	}, got)
}

func TestCompute_RegistryFollowsMove(t *testing.T) {
	f := newFixture()
	f.reg.Replace("/tmp/x/a.txt", "/tmp/x/b.txt")

	// A stale line still carrying the old id resolves to the new location
	got := f.comp.Compute(diff.Listing{Dir: "/tmp/x", Lines: []string{"/1/b.txt", "/2/c.txt"}, Reference: []int{f.a.PathID, f.c.PathID}})
	assert.Empty(t, got)
}
