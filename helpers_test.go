package sapling

import (
	"os"
	"strings"
	"testing"

	"github.com/pbanos/sapling/dataset"
	"github.com/stretchr/testify/require"
)

var generators = map[string]dataset.Generator{
	"memory-intensive": dataset.NewMemoryIntensive,
	"indexed":          dataset.NewIndexed,
}

// golf reads testdata/golf.csv into a dataset built with g and its feature names
func golf(t *testing.T, g dataset.Generator) (dataset.Dataset, []string) {
	t.Helper()
	content, err := os.ReadFile("testdata/golf.csv")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(content)), "\n")
	header := strings.Split(strings.TrimSpace(lines[0]), ",")
	var records []dataset.Record
	for _, line := range lines[1:] {
		records = append(records, dataset.Record(strings.Split(strings.TrimSpace(line), ",")))
	}
	return g(records), header[:len(header)-1]
}

func records(rows ...string) []dataset.Record {
	result := make([]dataset.Record, 0, len(rows))
	for _, row := range rows {
		result = append(result, dataset.Record(strings.Split(row, ",")))
	}
	return result
}
