package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/lddgraph/internal/core/domain"
	"go.trai.ch/zerr"
)

func edgesOf(g *domain.Graph) []domain.Edge {
	var out []domain.Edge
	for e := range g.Edges() {
		out = append(out, e)
	}
	return out
}

func TestNormalizePath(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"./libc.so", "libc.so"},
		{"libc.so", "libc.so"},
		{"/usr/lib/libc.so", "/usr/lib/libc.so"},
		{".//x", "/x"},
		{"./", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.NormalizePath(tt.in))
		})
	}
}

func TestGraph_Lookup(t *testing.T) {
	g := domain.NewGraph("./prog")

	id, err := g.Lookup("prog")
	require.NoError(t, err)
	assert.Equal(t, domain.RootID, id)

	id, err = g.Lookup("./prog")
	require.NoError(t, err)
	assert.Equal(t, domain.RootID, id)

	_, err = g.Lookup("/lib/missing.so")
	require.Error(t, err)

	zErr, ok := err.(*zerr.Error)
	require.True(t, ok, "expected *zerr.Error, got %T", err)
	assert.Equal(t, "/lib/missing.so", zErr.Metadata()["path"])
}

func TestGraph_LookupReturnsFirstRegistration(t *testing.T) {
	g := domain.NewGraph("prog")
	first := g.AddNode("/lib/libc.so.6")
	second := g.AddNode("/lib/libc.so.6")

	assert.NotEqual(t, first, second)
	assert.Equal(t, 3, g.NodeCount())

	id, err := g.Lookup("/lib/libc.so.6")
	require.NoError(t, err)
	assert.Equal(t, first, id)
}

func TestGraph_FinalizeRootPath(t *testing.T) {
	g := domain.NewGraph(domain.StdinPath)

	require.NoError(t, g.FinalizeRootPath("./bin/realprogram"))
	assert.True(t, g.Finalized())
	assert.Equal(t, "bin/realprogram", g.Root().Path)

	id, err := g.Lookup("bin/realprogram")
	require.NoError(t, err)
	assert.Equal(t, domain.RootID, id)

	_, err = g.Lookup(domain.StdinPath)
	require.Error(t, err, "provisional path should no longer resolve")

	err = g.FinalizeRootPath("/bin/other")
	require.ErrorContains(t, err, domain.ErrPathAlreadyFinal.Error())
	assert.Equal(t, "bin/realprogram", g.Root().Path)
}

func TestGraph_FinalizeKeepsSharedProvisionalKey(t *testing.T) {
	g := domain.NewGraph("report.txt")
	dup := g.AddNode("report.txt")

	require.NoError(t, g.FinalizeRootPath("/bin/ls"))

	// The provisional key belonged to the root, so it is gone even though a
	// later node reused the same name.
	_, err := g.Lookup("report.txt")
	require.Error(t, err)
	assert.Equal(t, "report.txt", g.Node(dup).Path)
}

func TestGraph_Sink(t *testing.T) {
	g := domain.NewGraph("prog")

	a := g.Sink("not found")
	b := g.Sink("not found")

	assert.Equal(t, a, b)
	assert.Equal(t, 2, g.NodeCount())
	assert.Equal(t, "not found", g.Node(a).Path)
}

func TestGraph_AddLabel(t *testing.T) {
	g := domain.NewGraph("prog")
	libc := g.AddNode("/lib/libc.so.6")

	assert.True(t, g.AddLabel(domain.RootID, libc, "GLIBC_2.2.5"))
	assert.False(t, g.AddLabel(domain.RootID, libc, "GLIBC_2.3"))
	assert.False(t, g.AddLabel(domain.RootID, libc, "GLIBC_2.14"))

	edges := edgesOf(g)
	require.Len(t, edges, 1)
	assert.Equal(t, []string{"GLIBC_2.2.5", "GLIBC_2.3", "GLIBC_2.14"}, edges[0].Labels)
}

func TestGraph_AddLabelIgnoresUnlabeledEdge(t *testing.T) {
	g := domain.NewGraph("prog")
	libc := g.AddNode("/lib/libc.so.6")

	g.AddEdge(domain.RootID, libc)
	g.AddEdge(domain.RootID, libc)
	g.AddLabel(domain.RootID, libc, "GLIBC_2.2.5")

	edges := edgesOf(g)
	require.Len(t, edges, 3)
	assert.False(t, edges[0].Labeled())
	assert.False(t, edges[1].Labeled())
	assert.Equal(t, []string{"GLIBC_2.2.5"}, edges[2].Labels)
}

func TestGraph_Reconcile(t *testing.T) {
	g := domain.NewGraph("prog")
	libc := g.AddNode("/lib/libc.so.6")
	libm := g.AddNode("/lib/libm.so.6")
	vdso := g.AddNode("linux-vdso.so.1")

	g.AddEdge(domain.RootID, libc)
	g.AddEdge(domain.RootID, libm)
	g.AddEdge(domain.RootID, vdso)
	g.AddLabel(domain.RootID, libc, "GLIBC_2.2.5")
	g.AddLabel(libm, libc, "GLIBC_2.4")
	g.AddLabel(domain.RootID, libc, "GLIBC_2.3")

	g.Reconcile()

	edges := edgesOf(g)
	require.Len(t, edges, 4)

	// Order is creation order minus the dropped edge.
	assert.Equal(t, domain.Edge{From: domain.RootID, To: libm}, edges[0])
	assert.Equal(t, domain.Edge{From: domain.RootID, To: vdso}, edges[1])
	assert.Equal(t, []string{"GLIBC_2.2.5", "GLIBC_2.3"}, edges[2].Labels)
	assert.Equal(t, libm, edges[3].From)

	// Labels still merge into the surviving edge after removal shifted indexes.
	assert.False(t, g.AddLabel(domain.RootID, libc, "GLIBC_2.14"))
	edges = edgesOf(g)
	assert.Equal(t, []string{"GLIBC_2.2.5", "GLIBC_2.3", "GLIBC_2.14"}, edges[2].Labels)
}

func TestGraph_ReconcileIdempotent(t *testing.T) {
	g := domain.NewGraph("prog")
	a := g.AddNode("a.so")
	b := g.AddNode("b.so")
	g.AddEdge(domain.RootID, a)
	g.AddEdge(domain.RootID, b)
	g.AddLabel(domain.RootID, a, "V1")

	g.Reconcile()
	once := edgesOf(g)

	g.Reconcile()
	twice := edgesOf(g)

	assert.Equal(t, once, twice)
	assert.Equal(t, 2, g.EdgeCount())
}

func TestGraph_NodesInCreationOrder(t *testing.T) {
	g := domain.NewGraph("prog")
	g.AddNode("b.so")
	g.AddNode("a.so")

	var paths []string
	for id, n := range g.Nodes() {
		assert.Equal(t, n, g.Node(id))
		paths = append(paths, n.Path)
	}
	assert.Equal(t, []string{"prog", "b.so", "a.so"}, paths)
}

func TestSummarize(t *testing.T) {
	g := domain.NewGraph(domain.StdinPath)
	libc := g.AddNode("/lib/libc.so.6")
	g.AddEdge(domain.RootID, libc)
	require.NoError(t, g.FinalizeRootPath("/bin/true"))

	s := domain.Summarize(g, "00000000deadbeef")

	assert.Equal(t, domain.Summary{
		Path:     "/bin/true",
		Nodes:    2,
		Edges:    1,
		Checksum: "00000000deadbeef",
	}, s)
}
