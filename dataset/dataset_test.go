package dataset

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func weatherRecords() []Record {
	return []Record{
		{"Sunny", "Hot", "No"},
		{"Rain", "Mild", "Yes"},
		{"Sunny", "Mild", "Yes"},
		{"Overcast", "Hot", "Yes"},
		{"Rain", "Cool", "No"},
	}
}

var generators = map[string]Generator{
	"memory-intensive": NewMemoryIntensive,
	"indexed":          NewIndexed,
}

func TestCounts(t *testing.T) {
	for name, g := range generators {
		t.Run(name, func(t *testing.T) {
			d := g(weatherRecords())
			assert.Equal(t, 5, d.Count())
			assert.Equal(t, 2, d.FeatureCount())
			assert.Equal(t, map[string]int{"Yes": 3, "No": 2}, d.CountLabels())
		})
	}
}

func TestCountLabelsBelongToTheCaller(t *testing.T) {
	for name, g := range generators {
		t.Run(name, func(t *testing.T) {
			d := g(weatherRecords())
			counts := d.CountLabels()
			counts["Yes"] = 0
			delete(counts, "No")
			counts["Maybe"] = 7
			assert.Equal(t, map[string]int{"Yes": 3, "No": 2}, d.CountLabels())
		})
	}
}

func TestFeatureValuesAreSortedAndDistinct(t *testing.T) {
	for name, g := range generators {
		t.Run(name, func(t *testing.T) {
			d := g(weatherRecords())
			assert.Equal(t, []string{"Overcast", "Rain", "Sunny"}, d.FeatureValues(0))
			assert.Equal(t, []string{"Cool", "Hot", "Mild"}, d.FeatureValues(1))
		})
	}
}

func TestPartition(t *testing.T) {
	for name, g := range generators {
		t.Run(name, func(t *testing.T) {
			original := weatherRecords()
			d := g(original)

			p := d.Partition(0, "Sunny")
			assert.Equal(t, 2, p.Count())
			assert.Equal(t, 1, p.FeatureCount())
			assert.Equal(t, []Record{{"Hot", "No"}, {"Mild", "Yes"}}, p.Records())

			p = d.Partition(1, "Hot")
			assert.Equal(t, []Record{{"Sunny", "No"}, {"Overcast", "Yes"}}, p.Records())
			assert.Equal(t, []string{"Overcast", "Sunny"}, p.FeatureValues(0))

			pp := p.Partition(0, "Overcast")
			assert.Equal(t, []Record{{"Yes"}}, pp.Records())
			assert.Equal(t, 0, pp.FeatureCount())

			assert.Equal(t, weatherRecords(), original, "partitioning must not modify the records")
			assert.Equal(t, 5, d.Count())
		})
	}
}

func TestPartitionsCoverDataset(t *testing.T) {
	for name, g := range generators {
		t.Run(name, func(t *testing.T) {
			d := g(weatherRecords())
			for i := 0; i < d.FeatureCount(); i++ {
				var total int
				for _, v := range d.FeatureValues(i) {
					p := d.Partition(i, v)
					require.NotZero(t, p.Count(), "partition on observed value %q is empty", v)
					total += p.Count()
				}
				assert.Equal(t, d.Count(), total, "partitions on feature %d", i)
			}
		})
	}
}

func TestNewPicksImplementationBySize(t *testing.T) {
	small := New(weatherRecords())
	_, ok := small.(*memoryIntensiveDataset)
	assert.True(t, ok, "expected a memory-intensive dataset, got %T", small)

	records := make([]Record, recordCountThresholdForDatasetImplementation+1)
	for i := range records {
		records[i] = Record{"a", "yes"}
	}
	big := New(records)
	_, ok = big.(*indexedDataset)
	assert.True(t, ok, "expected an indexed dataset, got %T", big)
}

func TestValidate(t *testing.T) {
	for name, g := range generators {
		t.Run(name, func(t *testing.T) {
			assert.NoError(t, Validate(g(weatherRecords()), []string{"Outlook", "Temperature"}))

			err := Validate(g(nil), []string{"Outlook"})
			assert.ErrorIs(t, err, ErrEmptyDataset)

			records := weatherRecords()
			records[3] = Record{"Overcast", "Yes"}
			err = Validate(g(records), []string{"Outlook", "Temperature"})
			var fe *FormatError
			require.True(t, errors.As(err, &fe), "expected a *FormatError, got %v", err)
			assert.Equal(t, &FormatError{Record: 3, Got: 2, Want: 3}, fe)

			err = Validate(g(weatherRecords()), []string{"Outlook"})
			require.True(t, errors.As(err, &fe), "expected a *FormatError, got %v", err)
			assert.Equal(t, 0, fe.Record)

			var empty Dataset
			require.NotPanics(t, func() { empty = g([]Record{{}, {"x", "yes"}}) })
			assert.Equal(t, 0, empty.FeatureCount())
			err = Validate(empty, []string{"A"})
			require.True(t, errors.As(err, &fe), "expected a *FormatError, got %v", err)
			assert.Equal(t, &FormatError{Record: 0, Got: 0, Want: 2}, fe)
		})
	}
	assert.ErrorIs(t, Validate(nil, nil), ErrEmptyDataset)
}

func TestRecord(t *testing.T) {
	r := Record{"Sunny", "Hot", "No"}
	assert.Equal(t, "No", r.Label())
	assert.Equal(t, 2, r.FeatureCount())
	assert.Equal(t, Record{"Sunny", "No"}, r.without(1))
	assert.Equal(t, Record{"Sunny", "Hot", "No"}, r)
	assert.Equal(t, "[Sunny,Hot,No]", r.String())
}
