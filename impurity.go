package sapling

import (
	"fmt"
	"sort"

	"github.com/pbanos/sapling/dataset"
	"gonum.org/v1/gonum/floats"
)

/*
Gini takes a map of label counts and the total count of records and
returns the Gini impurity of the distribution, 1 - Σ (count/total)².
The result is 0 when all records share a label and approaches 1 as
labels become more evenly spread among more values.

It returns dataset.ErrEmptyDataset if total is 0 and an error if total
does not equal the sum of the counts.
*/
func Gini(labelCounts map[string]int, total int) (float64, error) {
	if total == 0 {
		return 0.0, dataset.ErrEmptyDataset
	}
	counts := make([]int, 0, len(labelCounts))
	var sum int
	for _, c := range labelCounts {
		counts = append(counts, c)
		sum += c
	}
	if sum != total {
		return 0.0, fmt.Errorf("label counts add up to %d instead of %d", sum, total)
	}
	// fixed summation order keeps results reproducible across runs
	sort.Ints(counts)
	proportions := make([]float64, len(counts))
	for i, c := range counts {
		proportions[i] = float64(c) / float64(total)
	}
	return 1.0 - floats.Dot(proportions, proportions), nil
}

/*
InformationGain takes a dataset and the index of one of its feature
columns and returns the reduction of Gini impurity obtained by splitting
the dataset on that feature: the impurity of the dataset minus the
impurity of each partition weighted by its share of records.
It returns dataset.ErrEmptyDataset if the dataset has no records.
*/
func InformationGain(d dataset.Dataset, featureIndex int) (float64, error) {
	count := d.Count()
	if count == 0 {
		return 0.0, dataset.ErrEmptyDataset
	}
	if featureIndex < 0 || featureIndex >= d.FeatureCount() {
		panic(fmt.Sprintf("sapling: feature index %d out of range for dataset with %d features", featureIndex, d.FeatureCount()))
	}
	informationGain, err := Gini(d.CountLabels(), count)
	if err != nil {
		return 0.0, err
	}
	totalCount := float64(count)
	for _, value := range d.FeatureValues(featureIndex) {
		p := d.Partition(featureIndex, value)
		pImpurity, err := Gini(p.CountLabels(), p.Count())
		if err != nil {
			return 0.0, fmt.Errorf("computing impurity for value %s: %v", value, err)
		}
		informationGain -= pImpurity * float64(p.Count()) / totalCount
	}
	// Weighted child impurity never exceeds the parent's, anything below 0 is rounding
	if informationGain < 0 {
		informationGain = 0
	}
	return informationGain, nil
}

/*
ChooseBestFeature takes a dataset and returns the index of the feature
column whose split yields the highest information gain. Ties go to the
lowest index. It returns dataset.ErrEmptyDataset if the dataset has no
records.

The dataset must have at least one feature column left: calling it on a
dataset with only labels is a programming error and panics. Use Decide
first to stop growing on such datasets.
*/
func ChooseBestFeature(d dataset.Dataset) (int, error) {
	index, _, err := chooseBestFeature(d)
	return index, err
}

func chooseBestFeature(d dataset.Dataset) (int, float64, error) {
	if d.Count() == 0 {
		return -1, 0.0, dataset.ErrEmptyDataset
	}
	featureCount := d.FeatureCount()
	if featureCount == 0 {
		panic("sapling: cannot choose a feature to split a dataset with no feature columns")
	}
	bestIndex, bestGain := -1, 0.0
	for i := 0; i < featureCount; i++ {
		gain, err := InformationGain(d, i)
		if err != nil {
			return -1, 0.0, err
		}
		if bestIndex < 0 || gain > bestGain {
			bestIndex = i
			bestGain = gain
		}
	}
	return bestIndex, bestGain, nil
}
