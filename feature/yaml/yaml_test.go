package yaml

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadMetadata(t *testing.T) {
	md, err := ReadMetadata([]byte(`
label:
  Play: ["Yes", "No"]
features:
  - Outlook: [Sunny, Overcast, Rain]
  - Temperature
  - Humidity:
  - Size: [1, 2, 3]
`))
	require.NoError(t, err)
	assert.Equal(t, []string{"Outlook", "Temperature", "Humidity", "Size"}, md.FeatureNames())
	assert.Equal(t, "Play", md.Label.Name())
	assert.Equal(t, []string{"Yes", "No"}, md.Label.AvailableValues())
	assert.Equal(t, []string{"Sunny", "Overcast", "Rain"}, md.Features[0].AvailableValues())
	assert.Nil(t, md.Features[1].AvailableValues())
	assert.Nil(t, md.Features[2].AvailableValues())
	assert.Equal(t, []string{"1", "2", "3"}, md.Features[3].AvailableValues())
}

func TestReadMetadataWithLabelName(t *testing.T) {
	md, err := ReadMetadata([]byte("label: Play\nfeatures: [Outlook, Wind]\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"Outlook", "Wind", "Play"}, md.Columns())
	assert.Nil(t, md.Label.AvailableValues())
}

func TestReadMetadataErrors(t *testing.T) {
	tests := []struct {
		name string
		yml  string
	}{
		{"invalid yml", "label: [Play"},
		{"no label", "features: [Outlook]"},
		{"no features", "label: Play"},
		{"empty features", "label: Play\nfeatures: []"},
		{"continuous feature", "label: Play\nfeatures:\n  - Temperature: continuous"},
		{"several names in an entry", "label: Play\nfeatures:\n  - {Outlook: [Sunny], Wind: [Weak]}"},
		{"duplicate feature", "label: Play\nfeatures: [Outlook, Outlook]"},
		{"feature named like the label", "label: Play\nfeatures: [Outlook, Play]"},
		{"nested list", "label: Play\nfeatures:\n  - [Outlook]"},
		{"empty name", "label: Play\nfeatures: [\"\"]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadMetadata([]byte(tt.yml))
			assert.Error(t, err)
		})
	}
}

func TestReadMetadataFromFile(t *testing.T) {
	md, err := ReadMetadataFromFile("../../testdata/golf.yml")
	require.NoError(t, err)
	assert.Equal(t, []string{"Outlook", "Temperature", "Humidity", "Wind", "Play"}, md.Columns())
	assert.Equal(t, []string{"Yes", "No"}, md.Label.AvailableValues())

	_, err = ReadMetadataFromFile("../../testdata/missing.yml")
	assert.Error(t, err)
}
