package sapling

import (
	"github.com/pbanos/sapling/dataset"
)

/*
Decide takes a dataset and returns a label and true if growing a tree on
it should stop there with a leaf, or an empty string and false if it
should be split further. Specifically it stops:
  - with the shared label, when all records have the same label
  - with the majority label (see Majority), when the records have no
    feature columns left to split on

An empty dataset is never decided on.
*/
func Decide(d dataset.Dataset) (string, bool) {
	if d.Count() == 0 {
		return "", false
	}
	labelCounts := d.CountLabels()
	if len(labelCounts) == 1 {
		for label := range labelCounts {
			return label, true
		}
	}
	if d.FeatureCount() == 0 {
		return Majority(labelCounts), true
	}
	return "", false
}

/*
Majority takes a map of label counts and returns the label with the
highest count. Among labels tied for the highest count, the
lexicographically smallest one is returned. It returns an empty string
for an empty map.
*/
func Majority(labelCounts map[string]int) string {
	var result string
	var highest int
	for label, count := range labelCounts {
		if count > highest || (count == highest && label < result) {
			result = label
			highest = count
		}
	}
	return result
}
