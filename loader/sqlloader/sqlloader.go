/*
Package sqlloader loads datasets from tables in SQL databases.

Every row of the table is a record. Columns are taken in the order the
metadata declares when it is given, otherwise in the order of the table,
with its last column as the label. Values are read as text, so columns
of any type can hold feature values, but NULL values are rejected.
*/
package sqlloader

import (
	"bytes"
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/pbanos/sapling/dataset"
	"github.com/pbanos/sapling/feature"
	"github.com/pbanos/sapling/loader"
)

/*
Read takes a context, a database, a table name, optional metadata and a
dataset.Generator and returns the dataset built with the generator from
the rows of the table, along with the names of its features. It returns an
error if the table or a column cannot be read, a row has a NULL value, the
metadata does not accept a value, or the table has no rows (wrapping
dataset.ErrEmptyDataset).
*/
func Read(ctx context.Context, db *sql.DB, table string, md *feature.Metadata, g dataset.Generator) (dataset.Dataset, []string, error) {
	query, err := selectQuery(table, md)
	if err != nil {
		return nil, nil, err
	}
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, nil, fmt.Errorf("querying table %s: %v", table, err)
	}
	defer rows.Close()
	header, err := rows.Columns()
	if err != nil {
		return nil, nil, fmt.Errorf("listing columns of table %s: %v", table, err)
	}
	s, err := loader.NewSchema(header, md)
	if err != nil {
		return nil, nil, fmt.Errorf("reading columns of table %s: %v", table, err)
	}
	records := []dataset.Record{}
	values := make([]sql.NullString, len(header))
	dest := make([]interface{}, len(header))
	for i := range values {
		dest[i] = &values[i]
	}
	for rows.Next() {
		err = rows.Scan(dest...)
		if err != nil {
			return nil, nil, fmt.Errorf("scanning row %d of table %s: %v", len(records)+1, table, err)
		}
		row := make([]string, len(values))
		for i, v := range values {
			if !v.Valid {
				return nil, nil, fmt.Errorf("row %d of table %s has no value for %s", len(records)+1, table, header[i])
			}
			row[i] = v.String
		}
		record, err := s.Record(len(records), row)
		if err != nil {
			return nil, nil, fmt.Errorf("parsing row %d of table %s: %w", len(records)+1, table, err)
		}
		records = append(records, record)
	}
	err = rows.Err()
	if err != nil {
		return nil, nil, fmt.Errorf("reading table %s: %v", table, err)
	}
	if len(records) == 0 {
		return nil, nil, fmt.Errorf("reading table %s: %w", table, dataset.ErrEmptyDataset)
	}
	return g(records), s.FeatureNames(), nil
}

/*
QuoteIdentifier takes the name of a table or column and returns it quoted
to be used in a statement, or an error if the name cannot be quoted.
*/
func QuoteIdentifier(name string) (string, error) {
	if name == "" {
		return "", fmt.Errorf("empty identifier")
	}
	if strings.ContainsAny(name, `"`) {
		return "", fmt.Errorf(`identifier '%s' contains invalid character '"'`, name)
	}
	return fmt.Sprintf(`"%s"`, name), nil
}

func selectQuery(table string, md *feature.Metadata) (string, error) {
	var queryBuffer bytes.Buffer
	queryBuffer.WriteString("SELECT ")
	if md == nil {
		queryBuffer.WriteString("*")
	} else {
		for i, c := range md.Columns() {
			qc, err := QuoteIdentifier(c)
			if err != nil {
				return "", fmt.Errorf("invalid column name: %v", err)
			}
			if i > 0 {
				queryBuffer.WriteString(", ")
			}
			queryBuffer.WriteString(qc)
		}
	}
	qt, err := QuoteIdentifier(table)
	if err != nil {
		return "", fmt.Errorf("invalid table name: %v", err)
	}
	queryBuffer.WriteString(" FROM ")
	queryBuffer.WriteString(qt)
	return queryBuffer.String(), nil
}
