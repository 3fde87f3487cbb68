/*
Package loader assembles dataset records from the rows read by the
loaders in its subpackages, whatever their source.

Every source gives rows as fields under a header of column names. Without
metadata the header is taken as it is: the last column is the label and
the rest are the features, in order. With metadata the fields are
rearranged into the order the metadata declares, columns it does not
declare are ignored and every value is checked against the values
declared for its feature.
*/
package loader

import (
	"fmt"

	"github.com/pbanos/sapling/dataset"
	"github.com/pbanos/sapling/feature"
)

/*
Schema maps the fields of source rows to the fields of records.
*/
type Schema struct {
	md           *feature.Metadata
	featureNames []string
	// positions[i] is the index on a row of the i-th field of a record
	positions []int
	width     int
}

/*
NewSchema takes the header of a source and optional metadata and returns
a Schema to assemble records from rows under that header. It returns an
error if the header is empty or repeats a column, or if the metadata
declares a column the header lacks.
*/
func NewSchema(header []string, md *feature.Metadata) (*Schema, error) {
	if len(header) == 0 {
		return nil, fmt.Errorf("header has no columns")
	}
	columnIndexes := make(map[string]int)
	for i, name := range header {
		if _, ok := columnIndexes[name]; ok {
			return nil, fmt.Errorf("header has column %s twice", name)
		}
		columnIndexes[name] = i
	}
	s := &Schema{md: md, width: len(header)}
	if md == nil {
		s.featureNames = append([]string(nil), header[:len(header)-1]...)
		return s, nil
	}
	s.featureNames = md.FeatureNames()
	for _, name := range md.Columns() {
		i, ok := columnIndexes[name]
		if !ok {
			return nil, fmt.Errorf("header has no column for %s", name)
		}
		s.positions = append(s.positions, i)
	}
	return s, nil
}

/*
FeatureNames returns the names of the feature columns of the records the
schema assembles.
*/
func (s *Schema) FeatureNames() []string {
	return s.featureNames
}

/*
Record takes the index of a row among those of its source and its fields
and returns the record assembled from them. It returns a
*dataset.FormatError if the row does not have as many fields as the
header, and an error if the metadata does not accept one of its values.
*/
func (s *Schema) Record(index int, row []string) (dataset.Record, error) {
	if len(row) != s.width {
		return nil, &dataset.FormatError{Record: index, Got: len(row), Want: s.width}
	}
	if s.md == nil {
		return dataset.Record(append([]string(nil), row...)), nil
	}
	r := make(dataset.Record, len(s.positions))
	for i, p := range s.positions {
		r[i] = row[p]
	}
	if err := s.md.Check(r); err != nil {
		return nil, err
	}
	return r, nil
}
