/*
Package dot renders trees as Graphviz graphs in the DOT language.

Every node of a tree becomes a box labeled with its feature, linked to an
oval per branch labeled with the branch value, which is in turn linked to
the subtree for it. Leaves become filled ovals labeled with their label.
Graph nodes are named after their position in the tree, so leaves sharing
a label under different branches remain distinct.
*/
package dot

import (
	"fmt"
	"io"
	"os"

	"github.com/awalterschulze/gographviz"
	"github.com/pbanos/sapling/tree"
)

const graphName = "G"

/*
Graph takes a tree and returns a graph depicting it or an error if the
graph cannot be built.
*/
func Graph(t tree.Tree) (*gographviz.Graph, error) {
	graphAst, err := gographviz.Parse([]byte(`digraph G{}`))
	if err != nil {
		return nil, fmt.Errorf("parsing empty graph: %v", err)
	}
	graph := gographviz.NewGraph()
	err = gographviz.Analyse(graphAst, graph)
	if err != nil {
		return nil, fmt.Errorf("analysing empty graph: %v", err)
	}
	b := &builder{graph: graph}
	_, err = b.add(t)
	if err != nil {
		return nil, err
	}
	return graph, nil
}

/*
Write takes an io.Writer and a tree and writes the DOT description of the
graph depicting the tree on the writer. It returns an error if the graph
cannot be built or written.
*/
func Write(w io.Writer, t tree.Tree) error {
	graph, err := Graph(t)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, graph.String())
	if err != nil {
		return fmt.Errorf("writing graph: %v", err)
	}
	return nil
}

/*
WriteFile takes a filepath and a tree and writes the DOT description of
the graph depicting the tree on the file, creating or truncating it.
*/
func WriteFile(filepath string, t tree.Tree) error {
	f, err := os.Create(filepath)
	if err != nil {
		return fmt.Errorf("creating DOT file %s: %v", filepath, err)
	}
	err = Write(f, t)
	if cerr := f.Close(); err == nil && cerr != nil {
		err = fmt.Errorf("closing DOT file %s: %v", filepath, cerr)
	}
	return err
}

type builder struct {
	graph *gographviz.Graph
	count int
}

// add adds the given subtree to the graph and returns the name of its root
func (b *builder) add(t tree.Tree) (string, error) {
	switch t := t.(type) {
	case *tree.Leaf:
		return b.node(t.Label, map[string]string{"shape": "ellipse", "style": "filled"})
	case *tree.Node:
		name, err := b.node(t.Feature, map[string]string{"shape": "box"})
		if err != nil {
			return "", err
		}
		for _, br := range t.Branches {
			valueName, err := b.node(br.Value, map[string]string{"shape": "ellipse"})
			if err != nil {
				return "", err
			}
			err = b.graph.AddEdge(name, valueName, true, nil)
			if err != nil {
				return "", fmt.Errorf("adding edge for value %s of %s: %v", br.Value, t.Feature, err)
			}
			stName, err := b.add(br.Subtree)
			if err != nil {
				return "", err
			}
			err = b.graph.AddEdge(valueName, stName, true, nil)
			if err != nil {
				return "", fmt.Errorf("adding edge below value %s of %s: %v", br.Value, t.Feature, err)
			}
		}
		return name, nil
	}
	return "", fmt.Errorf("unknown tree type %T", t)
}

func (b *builder) node(label string, attrs map[string]string) (string, error) {
	name := fmt.Sprintf("n%d", b.count)
	b.count++
	attrs["label"] = fmt.Sprintf("%q", label)
	err := b.graph.AddNode(graphName, name, attrs)
	if err != nil {
		return "", fmt.Errorf("adding node for %s: %v", label, err)
	}
	return name, nil
}
