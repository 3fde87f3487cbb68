package dataset

import "fmt"

// Error represents an error related with datasets
type Error string

/*
ErrEmptyDataset is the error returned when a dataset without records is
given to an operation that needs at least one, such as computing its
impurity or growing a tree from it.
*/
const ErrEmptyDataset = Error("dataset has no records")

func (e Error) Error() string {
	return string(e)
}

/*
FormatError is the error returned when a record does not have the
expected number of fields: one per feature name plus the label.
*/
type FormatError struct {
	// Record is the 0-based position of the offending record
	Record int
	// Got is the number of fields the record has
	Got int
	// Want is the number of fields the record should have
	Want int
}

func (fe *FormatError) Error() string {
	return fmt.Sprintf("record %d has %d fields, expected %d", fe.Record, fe.Got, fe.Want)
}

/*
Validate takes a dataset and the feature names that go with it and
returns ErrEmptyDataset if the dataset has no records or a *FormatError for
the first record whose length differs from len(featureNames) + 1. It
returns nil if the dataset can be used to grow a tree.
*/
func Validate(d Dataset, featureNames []string) error {
	if d == nil || d.Count() == 0 {
		return ErrEmptyDataset
	}
	want := len(featureNames) + 1
	for i, r := range d.Records() {
		if len(r) != want {
			return &FormatError{Record: i, Got: len(r), Want: want}
		}
	}
	return nil
}
