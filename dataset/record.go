package dataset

import (
	"fmt"
	"strings"
)

/*
Record represents a training instance: an ordered sequence of string
fields whose last field is the class label and whose preceding fields are
feature values, positionally aligned with the feature names supplied
alongside the dataset.
*/
type Record []string

/*
Label returns the class label of the record, that is, its last field.
*/
func (r Record) Label() string {
	return r[len(r)-1]
}

/*
FeatureCount returns the number of feature values in the record.
*/
func (r Record) FeatureCount() int {
	return len(r) - 1
}

// without returns a new record with the field at index i removed
func (r Record) without(i int) Record {
	nr := make(Record, 0, len(r)-1)
	nr = append(nr, r[:i]...)
	return append(nr, r[i+1:]...)
}

func (r Record) String() string {
	return fmt.Sprintf("[%s]", strings.Join(r, ","))
}
