/*
Package tree provides the decision tree induced from a dataset: a
recursive structure of leaves, which assign a label, and nodes, which
test a feature and hold one subtree per value observed for it.

Trees are built once and not modified afterwards; all functions in this
package only read them.
*/
package tree

import (
	"fmt"
	"sort"
	"strings"
)

/*
Tree is either a *Leaf or a *Node. Use a type switch to tell them apart:

	switch t := t.(type) {
	case *tree.Leaf:
		...
	case *tree.Node:
		...
	}
*/
type Tree interface {
	fmt.Stringer
	isTree()
}

/*
Leaf is a terminal tree holding the label predicted for any record that
reaches it.
*/
type Leaf struct {
	Label string
}

/*
Node is a tree that tests the value of a feature and continues on the
branch for that value.
*/
type Node struct {
	// The name of the feature this node tests
	Feature string
	// One branch per value observed for the feature, sorted by value
	Branches []Branch
}

/*
Branch joins a value of a node's feature with the subtree for records
taking that value.
*/
type Branch struct {
	Value   string
	Subtree Tree
}

/*
Step is an element of the path from the root of a tree to one of its
subtrees: the feature tested at a node and the value of the branch taken.
*/
type Step struct {
	Feature string
	Value   string
}

/*
NewLeaf takes a label and returns a leaf assigning it.
*/
func NewLeaf(label string) *Leaf {
	return &Leaf{label}
}

/*
NewNode takes a feature name and a slice of branches and returns a node
testing the feature with a copy of the branches sorted by value.
It returns an error if no branches are given, if two branches share
a value or if a branch has no subtree.
*/
func NewNode(feature string, branches []Branch) (*Node, error) {
	if len(branches) == 0 {
		return nil, fmt.Errorf("node on feature %s has no branches", feature)
	}
	sorted := make([]Branch, len(branches))
	copy(sorted, branches)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Value < sorted[j].Value
	})
	for i, b := range sorted {
		if b.Subtree == nil {
			return nil, fmt.Errorf("node on feature %s has no subtree for value %s", feature, b.Value)
		}
		if i > 0 && sorted[i-1].Value == b.Value {
			return nil, fmt.Errorf("node on feature %s has more than one branch for value %s", feature, b.Value)
		}
	}
	return &Node{feature, sorted}, nil
}

func (*Leaf) isTree() {}

func (*Node) isTree() {}

/*
Subtree takes a value for the node's feature and returns the subtree on
its branch and true, or nil and false if the node has no branch for it.
*/
func (n *Node) Subtree(value string) (Tree, bool) {
	i := sort.Search(len(n.Branches), func(i int) bool {
		return n.Branches[i].Value >= value
	})
	if i < len(n.Branches) && n.Branches[i].Value == value {
		return n.Branches[i].Subtree, true
	}
	return nil, false
}

// Depth returns the number of nodes on the longest path from the root to a leaf.
func Depth(t Tree) int {
	n, ok := t.(*Node)
	if !ok {
		return 0
	}
	var depth int
	for _, b := range n.Branches {
		if d := Depth(b.Subtree); d > depth {
			depth = d
		}
	}
	return depth + 1
}

// Leaves returns the leaves of the tree from left to right.
func Leaves(t Tree) []*Leaf {
	var result []*Leaf
	Walk(t, func(_ []Step, st Tree) error {
		if l, ok := st.(*Leaf); ok {
			result = append(result, l)
		}
		return nil
	})
	return result
}

/*
Walk takes a tree and a function and calls the function with every
subtree in the tree, parents before children and branches in order,
along with the path of steps from the root to that subtree. The path
is only valid during the call and must be copied to be retained.
If the function returns an error, the walk is aborted and the error
is returned.
*/
func Walk(t Tree, f func([]Step, Tree) error) error {
	return walk(t, nil, f)
}

func walk(t Tree, path []Step, f func([]Step, Tree) error) error {
	err := f(path, t)
	if err != nil {
		return err
	}
	n, ok := t.(*Node)
	if !ok {
		return nil
	}
	for _, b := range n.Branches {
		err = walk(b.Subtree, append(path, Step{n.Feature, b.Value}), f)
		if err != nil {
			return err
		}
	}
	return nil
}

/*
Equal returns whether two trees have the same structure: the same
features on their nodes, the same values on their branches and the
same labels on their leaves.
*/
func Equal(a, b Tree) bool {
	switch a := a.(type) {
	case *Leaf:
		b, ok := b.(*Leaf)
		return ok && a.Label == b.Label
	case *Node:
		b, ok := b.(*Node)
		if !ok || a.Feature != b.Feature || len(a.Branches) != len(b.Branches) {
			return false
		}
		for i := range a.Branches {
			if a.Branches[i].Value != b.Branches[i].Value || !Equal(a.Branches[i].Subtree, b.Branches[i].Subtree) {
				return false
			}
		}
		return true
	}
	return false
}

func (l *Leaf) String() string {
	return fmt.Sprintf("{ %s }\n", l.Label)
}

func (n *Node) String() string {
	var result strings.Builder
	fmt.Fprintf(&result, "[%s]\n", n.Feature)
	for i, b := range n.Branches {
		lines := strings.Split(fmt.Sprintf("%s\n%v", b.Value, b.Subtree), "\n")
		for j, line := range lines {
			if j > 0 && len(line) == 0 {
				continue
			}
			switch {
			case j == 0:
				fmt.Fprintf(&result, "|__%s\n", line)
			case i == len(n.Branches)-1:
				fmt.Fprintf(&result, "   %s\n", line)
			default:
				fmt.Fprintf(&result, "|  %s\n", line)
			}
		}
	}
	return result.String()
}
