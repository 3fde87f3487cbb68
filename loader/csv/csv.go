/*
Package csv loads datasets from CSV streams whose first line holds the
column names and whose following lines hold one record each.
*/
package csv

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pbanos/sapling/dataset"
	"github.com/pbanos/sapling/feature"
	"github.com/pbanos/sapling/loader"
)

/*
ReadDataset takes an io.Reader for a CSV stream, optional metadata and a
dataset.Generator and returns the dataset built with the generator from
the records parsed from the reader, along with the names of its features.

The header or first row of the CSV content is expected to consist of the
column names. Without metadata, the last column is the label and the rest
are the features in order. With metadata, columns are taken in the order
it declares and every value is checked against it.

Surrounding whitespace is stripped from every field. A line with a number
of fields different from the header's makes it fail with an error wrapping
a *dataset.FormatError, and a stream without records with an error
wrapping dataset.ErrEmptyDataset.
*/
func ReadDataset(reader io.Reader, md *feature.Metadata, g dataset.Generator) (dataset.Dataset, []string, error) {
	r := csv.NewReader(reader)
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true
	header, err := r.Read()
	if err == io.EOF {
		return nil, nil, fmt.Errorf("reading header: %w", dataset.ErrEmptyDataset)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("reading header: %v", err)
	}
	s, err := loader.NewSchema(trimFields(header), md)
	if err != nil {
		return nil, nil, fmt.Errorf("parsing header: %v", err)
	}
	records := []dataset.Record{}
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("reading body: %v", err)
		}
		line, _ := r.FieldPos(0)
		record, err := s.Record(len(records), trimFields(row))
		if err != nil {
			return nil, nil, fmt.Errorf("parsing line %d: %w", line, err)
		}
		records = append(records, record)
	}
	if len(records) == 0 {
		return nil, nil, dataset.ErrEmptyDataset
	}
	return g(records), s.FeatureNames(), nil
}

/*
ReadDatasetFromFilePath takes a filepath string, optional metadata and a
dataset.Generator, opens the file to which the filepath points to and uses
ReadDataset to return the dataset and feature names read from it or an error.
If the filepath is "" os.Stdin is read instead. It will return an error if
the given filepath cannot be opened for reading.
*/
func ReadDatasetFromFilePath(filepath string, md *feature.Metadata, g dataset.Generator) (dataset.Dataset, []string, error) {
	var f *os.File
	var err error
	if filepath == "" {
		f = os.Stdin
	} else {
		f, err = os.Open(filepath)
		if err != nil {
			return nil, nil, fmt.Errorf("reading training set: %v", err)
		}
		defer f.Close()
	}
	d, featureNames, err := ReadDataset(f, md, g)
	if err != nil {
		return nil, nil, fmt.Errorf("parsing CSV file %s: %w", filepath, err)
	}
	return d, featureNames, nil
}

func trimFields(fields []string) []string {
	for i, f := range fields {
		fields[i] = strings.TrimSpace(f)
	}
	return fields
}
