/*
Package feature describes the columns of a dataset: the categorical
features records are split on and the label they are classified with.
*/
package feature

import "fmt"

/*
Feature represents a categorical property that can be observed on a
record. A feature may declare the values it can take; a feature without
declared values accepts any value.
*/
type Feature struct {
	name            string
	availableValues []string
}

/*
Metadata describes the columns of a dataset: its features, in the order
their fields appear on records, and its label, which comes last.
*/
type Metadata struct {
	Features []*Feature
	Label    *Feature
}

/*
New takes a name string and a slice of available value strings and
returns a feature with the given name and available values. A nil or
empty slice of values makes a feature that accepts any value.
*/
func New(name string, availableValues []string) *Feature {
	return &Feature{name, availableValues}
}

/*
Name returns a string with the name of the feature
*/
func (f *Feature) Name() string {
	return f.name
}

/*
AvailableValues returns a string slice with the values declared for the
feature, or nil if it accepts any value.
*/
func (f *Feature) AvailableValues() []string {
	return f.availableValues
}

/*
Valid receives a value and returns true and nil when the feature accepts
it. Otherwise it returns false and an error describing the reason.
*/
func (f *Feature) Valid(value string) (bool, error) {
	if len(f.availableValues) == 0 {
		return true, nil
	}
	for _, av := range f.availableValues {
		if av == value {
			return true, nil
		}
	}
	return false, fmt.Errorf("feature %s got unknown value %s", f.name, value)
}

func (f *Feature) String() string {
	return f.name
}

/*
FeatureNames returns the names of the features in order.
*/
func (md *Metadata) FeatureNames() []string {
	result := make([]string, 0, len(md.Features))
	for _, f := range md.Features {
		result = append(result, f.Name())
	}
	return result
}

/*
Columns returns the names of all the columns a record must have, that
is, the feature names followed by the label name.
*/
func (md *Metadata) Columns() []string {
	return append(md.FeatureNames(), md.Label.Name())
}

/*
Check takes the fields of a record, laid out as Columns describes, and
returns an error for the first field its feature or the label does not
accept. Record lengths must be checked beforehand: it panics when given
a number of fields other than the number of columns.
*/
func (md *Metadata) Check(fields []string) error {
	if len(fields) != len(md.Features)+1 {
		panic(fmt.Sprintf("feature: checking %d fields against %d columns", len(fields), len(md.Features)+1))
	}
	for i, f := range md.Features {
		if ok, err := f.Valid(fields[i]); !ok {
			return err
		}
	}
	if ok, err := md.Label.Valid(fields[len(fields)-1]); !ok {
		return fmt.Errorf("label: %v", err)
	}
	return nil
}
