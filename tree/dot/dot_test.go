package dot

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/awalterschulze/gographviz"
	"github.com/pbanos/sapling/tree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func node(t *testing.T, feature string, branches ...tree.Branch) *tree.Node {
	t.Helper()
	n, err := tree.NewNode(feature, branches)
	require.NoError(t, err)
	return n
}

func golfTree(t *testing.T) tree.Tree {
	return node(t, "Outlook",
		tree.Branch{Value: "Overcast", Subtree: tree.NewLeaf("Yes")},
		tree.Branch{Value: "Rain", Subtree: node(t, "Wind",
			tree.Branch{Value: "Strong", Subtree: tree.NewLeaf("No")},
			tree.Branch{Value: "Weak", Subtree: tree.NewLeaf("Yes")},
		)},
		tree.Branch{Value: "Sunny", Subtree: node(t, "Humidity",
			tree.Branch{Value: "High", Subtree: tree.NewLeaf("No")},
			tree.Branch{Value: "Normal", Subtree: tree.NewLeaf("Yes")},
		)},
	)
}

func labels(g *gographviz.Graph, names ...string) []string {
	var result []string
	for _, n := range names {
		result = append(result, g.Nodes.Lookup[n].Attrs[gographviz.Label])
	}
	return result
}

func children(g *gographviz.Graph, name string) []string {
	var result []string
	for _, e := range g.Edges.Edges {
		if e.Src == name {
			result = append(result, e.Dst)
		}
	}
	return result
}

func TestGraph(t *testing.T) {
	g, err := Graph(golfTree(t))
	require.NoError(t, err)
	assert.Len(t, g.Nodes.Nodes, 15)
	assert.Len(t, g.Edges.Edges, 14)

	assert.Equal(t, []string{`"Outlook"`}, labels(g, "n0"))
	assert.Equal(t, "box", g.Nodes.Lookup["n0"].Attrs[gographviz.Shape])
	values := children(g, "n0")
	assert.Equal(t, []string{`"Overcast"`, `"Rain"`, `"Sunny"`}, labels(g, values...))

	overcast := children(g, values[0])
	require.Len(t, overcast, 1)
	assert.Equal(t, []string{`"Yes"`}, labels(g, overcast...))
	assert.Equal(t, "filled", g.Nodes.Lookup[overcast[0]].Attrs[gographviz.Style])

	wind := children(g, values[1])
	assert.Equal(t, []string{`"Wind"`}, labels(g, wind...))
}

func TestGraphLeavesAreDistinct(t *testing.T) {
	g, err := Graph(golfTree(t))
	require.NoError(t, err)
	var yes []string
	for _, n := range g.Nodes.Nodes {
		if n.Attrs[gographviz.Label] == `"Yes"` {
			yes = append(yes, n.Name)
		}
	}
	assert.Len(t, yes, 3)
	for _, n := range yes {
		assert.Empty(t, children(g, n))
	}
}

func TestGraphOfLeaf(t *testing.T) {
	g, err := Graph(tree.NewLeaf("Yes"))
	require.NoError(t, err)
	assert.Len(t, g.Nodes.Nodes, 1)
	assert.Empty(t, g.Edges.Edges)
}

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, golfTree(t)))
	out := buf.String()
	assert.Contains(t, out, "digraph G")
	assert.Contains(t, out, "n0->n1")
	assert.Contains(t, out, `"Humidity"`)

	path := filepath.Join(t.TempDir(), "golf.dot")
	require.NoError(t, WriteFile(path, golfTree(t)))
	written, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, out, string(written))
}
