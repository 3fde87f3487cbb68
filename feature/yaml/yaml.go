/*
Package yaml provides methods to parse dataset metadata, the features and
label of a dataset, from YAML documents.
*/
package yaml

import (
	"fmt"
	"os"

	"github.com/pbanos/sapling/feature"
	yaml "gopkg.in/yaml.v2"
)

/*
ReadMetadata takes a slice of bytes with a metadata description in YML and
returns the metadata parsed from it or an error.

The YML is expected to be an object with a label property and a features
property. The label is either its name or an object with a single property
named after it whose value is the list of valid labels. The features are a
list in the order their fields appear on records, each either the name of a
feature that accepts any value or an object with a single property named
after the feature whose value is the list of its valid values.

Values such as Yes, No, On or Off are read by YAML as booleans and must be
quoted to keep them as they are written.
*/
func ReadMetadata(md []byte) (*feature.Metadata, error) {
	metadata := struct {
		Label    interface{}
		Features []interface{}
	}{}
	err := yaml.Unmarshal(md, &metadata)
	if err != nil {
		return nil, fmt.Errorf("parsing yml metadata: %v", err)
	}
	if metadata.Label == nil {
		return nil, fmt.Errorf("metadata has no label information")
	}
	if len(metadata.Features) == 0 {
		return nil, fmt.Errorf("metadata has no feature information")
	}
	label, err := parseFeature(metadata.Label)
	if err != nil {
		return nil, fmt.Errorf("parsing label: %v", err)
	}
	result := &feature.Metadata{Label: label}
	names := map[string]bool{label.Name(): true}
	for i, declaration := range metadata.Features {
		f, err := parseFeature(declaration)
		if err != nil {
			return nil, fmt.Errorf("parsing feature %d: %v", i+1, err)
		}
		if names[f.Name()] {
			return nil, fmt.Errorf("parsing feature %d: column %s declared twice", i+1, f.Name())
		}
		names[f.Name()] = true
		result.Features = append(result.Features, f)
	}
	return result, nil
}

/*
ReadMetadataFromFile takes a filepath string, reads its contents and uses
ReadMetadata to parse it and return the parsed metadata or an error.
If the file indicated by the filepath cannot be opened for reading an error
will be returned.
*/
func ReadMetadataFromFile(filepath string) (*feature.Metadata, error) {
	md, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("reading metadata yml file %s: %v", filepath, err)
	}
	metadata, err := ReadMetadata(md)
	if err != nil {
		return nil, fmt.Errorf("parsing metadata yml file %s: %v", filepath, err)
	}
	return metadata, nil
}

func parseFeature(declaration interface{}) (*feature.Feature, error) {
	switch d := declaration.(type) {
	case string:
		if d == "" {
			return nil, fmt.Errorf("empty name")
		}
		return feature.New(d, nil), nil
	case map[interface{}]interface{}:
		if len(d) != 1 {
			return nil, fmt.Errorf("expected a single name with its values, got %d entries", len(d))
		}
		for k, vs := range d {
			name := fmt.Sprintf("%v", k)
			if name == "" {
				return nil, fmt.Errorf("empty name")
			}
			values, err := parseValues(name, vs)
			if err != nil {
				return nil, err
			}
			return feature.New(name, values), nil
		}
	}
	return nil, fmt.Errorf("invalid declaration of type %T", declaration)
}

func parseValues(name string, vs interface{}) ([]string, error) {
	switch values := vs.(type) {
	case nil:
		return nil, nil
	case []interface{}:
		result := make([]string, 0, len(values))
		for _, v := range values {
			result = append(result, fmt.Sprintf("%v", v))
		}
		return result, nil
	case string:
		return nil, fmt.Errorf("%s has values %q, only lists of categorical values are supported", name, values)
	}
	return nil, fmt.Errorf("invalid values for %s of type %T", name, vs)
}
