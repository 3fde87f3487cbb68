package dataset

import (
	"fmt"

	"github.com/emirpasic/gods/sets/treeset"
)

const (
	recordCountThresholdForDatasetImplementation = 1000
)

/*
Dataset represents an ordered collection of records that share the same
length.

Its Count method returns the number of records.

Its FeatureCount method returns the number of feature columns, that is, the
record length minus the label.

Its Records method returns the records in their original relative order.

Its CountLabels method returns how many records carry each label, in a
map owned by the caller.

Its FeatureValues method returns the distinct values observed on the
feature column at the given index, sorted.

Its Partition method takes a feature column index and a value and returns
a new dataset with the records whose field at that index equals the value,
with that column removed from each of them. The receiver is never modified.
*/
type Dataset interface {
	Count() int
	FeatureCount() int
	Records() []Record
	CountLabels() map[string]int
	FeatureValues(int) []string
	Partition(int, string) Dataset
}

/*
Generator is a function that takes a slice of records and
generates a dataset with them.
*/
type Generator func([]Record) Dataset

type memoryIntensiveDataset struct {
	records     []Record
	labelCounts map[string]int
}

type indexedDataset struct {
	records     []Record
	width       int
	rows        []int
	columns     []int
	labelCounts map[string]int
}

/*
New takes a slice of records and returns a dataset built with them.
The dataset will be an indexed one when the number of records is
over recordCountThresholdForDatasetImplementation
*/
func New(records []Record) Dataset {
	if len(records) > recordCountThresholdForDatasetImplementation {
		return NewIndexed(records)
	}
	return NewMemoryIntensive(records)
}

/*
NewMemoryIntensive takes a slice of records and returns a Dataset
built with them. A memory-intensive dataset copies the matching records
(minus the partitioned column) on every partition, so each partition owns
its rows and computations on it only go over them.
*/
func NewMemoryIntensive(records []Record) Dataset {
	return &memoryIntensiveDataset{records: records}
}

/*
NewIndexed takes a slice of records and returns a Dataset built with them.
An indexed dataset never copies records when partitioning: partitions share
the original slice of records and keep the indexes of the rows and columns
that belong to them. This reduces memory use drastically on big datasets at
the cost of an indirection on every field access.

The given records must not be modified while the dataset or any of its
partitions are in use.
*/
func NewIndexed(records []Record) Dataset {
	var width int
	// a malformed first row leaves no columns; Validate reports it
	if len(records) > 0 && len(records[0]) > 0 {
		width = records[0].FeatureCount()
	}
	rows := make([]int, len(records))
	for i := range rows {
		rows[i] = i
	}
	columns := make([]int, width)
	for i := range columns {
		columns[i] = i
	}
	return &indexedDataset{records: records, width: width, rows: rows, columns: columns}
}

func (d *memoryIntensiveDataset) Count() int {
	return len(d.records)
}

func (d *memoryIntensiveDataset) FeatureCount() int {
	if len(d.records) == 0 || len(d.records[0]) == 0 {
		return 0
	}
	return d.records[0].FeatureCount()
}

func (d *memoryIntensiveDataset) Records() []Record {
	return d.records
}

func (d *memoryIntensiveDataset) CountLabels() map[string]int {
	if d.labelCounts == nil {
		d.labelCounts = make(map[string]int)
		for _, r := range d.records {
			d.labelCounts[r.Label()]++
		}
	}
	return copyCounts(d.labelCounts)
}

func (d *memoryIntensiveDataset) FeatureValues(i int) []string {
	return sortedValues(len(d.records), func(k int) string {
		return d.records[k][i]
	})
}

func (d *memoryIntensiveDataset) Partition(i int, value string) Dataset {
	var records []Record
	for _, r := range d.records {
		if r[i] == value {
			records = append(records, r.without(i))
		}
	}
	return &memoryIntensiveDataset{records: records}
}

func (d *memoryIntensiveDataset) String() string {
	return fmt.Sprintf("[ %v ]", d.Count())
}

func (d *indexedDataset) Count() int {
	return len(d.rows)
}

func (d *indexedDataset) FeatureCount() int {
	return len(d.columns)
}

func (d *indexedDataset) Records() []Record {
	result := make([]Record, 0, len(d.rows))
	for k := range d.rows {
		result = append(result, d.record(k))
	}
	return result
}

func (d *indexedDataset) CountLabels() map[string]int {
	if d.labelCounts == nil {
		d.labelCounts = make(map[string]int)
		for _, row := range d.rows {
			d.labelCounts[d.records[row].Label()]++
		}
	}
	return copyCounts(d.labelCounts)
}

func (d *indexedDataset) FeatureValues(i int) []string {
	column := d.columns[i]
	return sortedValues(len(d.rows), func(k int) string {
		return d.records[d.rows[k]][column]
	})
}

func (d *indexedDataset) Partition(i int, value string) Dataset {
	column := d.columns[i]
	var rows []int
	for _, row := range d.rows {
		if d.records[row][column] == value {
			rows = append(rows, row)
		}
	}
	columns := make([]int, 0, len(d.columns)-1)
	columns = append(columns, d.columns[:i]...)
	columns = append(columns, d.columns[i+1:]...)
	return &indexedDataset{records: d.records, width: d.width, rows: rows, columns: columns}
}

func (d *indexedDataset) String() string {
	return fmt.Sprintf("[ %v ]", d.Count())
}

// record returns a new record with the current columns of the k-th row
// followed by its label. Malformed rows are returned as they are so that
// Validate can report them.
func (d *indexedDataset) record(k int) Record {
	r := d.records[d.rows[k]]
	if len(r) != d.width+1 {
		return append(Record(nil), r...)
	}
	result := make(Record, 0, len(d.columns)+1)
	for _, c := range d.columns {
		result = append(result, r[c])
	}
	return append(result, r.Label())
}

func copyCounts(counts map[string]int) map[string]int {
	result := make(map[string]int, len(counts))
	for k, v := range counts {
		result[k] = v
	}
	return result
}

// sortedValues returns the distinct values among the n given by value, sorted
func sortedValues(n int, value func(int) string) []string {
	set := treeset.NewWithStringComparator()
	for k := 0; k < n; k++ {
		set.Add(value(k))
	}
	result := make([]string, 0, set.Size())
	for _, v := range set.Values() {
		result = append(result, v.(string))
	}
	return result
}
