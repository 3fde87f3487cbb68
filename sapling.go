/*
Package sapling grows classification trees from datasets of categorical
features using the Gini impurity to pick, at each node, the feature whose
multiway split reduces impurity the most.

Growing goes as follows for a dataset and the names of its feature columns:
  - if Decide settles on a label, the result is a leaf with it
  - otherwise ChooseBestFeature picks the feature to split on, the dataset
    is partitioned once per value observed for it (in sorted order), the
    feature is dropped from the names and a subtree is grown for every
    partition.

A feature is never used twice on the same path, so trees are at most as
deep as the number of features.
*/
package sapling

import (
	"fmt"

	"github.com/pbanos/sapling/dataset"
	"github.com/pbanos/sapling/tree"
)

/*
Logger is an interface wrapping the Logf method, used by a Grower to
report the decisions it takes while growing a tree.
*/
type Logger interface {
	Logf(format string, a ...interface{})
}

/*
Grower grows trees from datasets. Its zero value is ready to use.
*/
type Grower struct {
	// Logger receives a line per split and per leaf when not nil
	Logger Logger
}

/*
Build takes a dataset and the names of its feature columns and returns
the tree grown from them by a Grower with no logger.
*/
func Build(d dataset.Dataset, featureNames []string) (tree.Tree, error) {
	return (&Grower{}).Grow(d, featureNames)
}

/*
Grow takes a dataset and the names of its feature columns, positionally
aligned with the fields of the records, and returns the tree grown from
them. The last field of every record is its label.

It returns dataset.ErrEmptyDataset if the dataset has no records and a
*dataset.FormatError if any record does not have len(featureNames) + 1
fields. No tree is returned along with an error.
*/
func (g *Grower) Grow(d dataset.Dataset, featureNames []string) (tree.Tree, error) {
	err := dataset.Validate(d, featureNames)
	if err != nil {
		return nil, err
	}
	return g.grow(d, featureNames, 0)
}

func (g *Grower) grow(d dataset.Dataset, featureNames []string, depth int) (tree.Tree, error) {
	if len(featureNames) != d.FeatureCount() {
		panic(fmt.Sprintf("sapling: %d feature names for a dataset with %d feature columns", len(featureNames), d.FeatureCount()))
	}
	if label, ok := Decide(d); ok {
		g.logf("%*sleaf %s for %d records", 2*depth, "", label, d.Count())
		return tree.NewLeaf(label), nil
	}
	bestIndex, gain, err := chooseBestFeature(d)
	if err != nil {
		return nil, err
	}
	bestName := featureNames[bestIndex]
	values := d.FeatureValues(bestIndex)
	g.logf("%*ssplitting %d records on %s into %d branches (information gain %f)", 2*depth, "", d.Count(), bestName, len(values), gain)
	stFeatureNames := make([]string, 0, len(featureNames)-1)
	stFeatureNames = append(stFeatureNames, featureNames[:bestIndex]...)
	stFeatureNames = append(stFeatureNames, featureNames[bestIndex+1:]...)
	branches := make([]tree.Branch, 0, len(values))
	for _, value := range values {
		st, err := g.grow(d.Partition(bestIndex, value), stFeatureNames, depth+1)
		if err != nil {
			return nil, fmt.Errorf("growing subtree for %s is %s: %v", bestName, value, err)
		}
		branches = append(branches, tree.Branch{Value: value, Subtree: st})
	}
	n, err := tree.NewNode(bestName, branches)
	if err != nil {
		return nil, err
	}
	return n, nil
}

func (g *Grower) logf(format string, a ...interface{}) {
	if g.Logger == nil {
		return
	}
	g.Logger.Logf(format, a...)
}
