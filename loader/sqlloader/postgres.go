package sqlloader

import (
	"database/sql"
	"fmt"

	// Import of PostgreSQL driver
	_ "github.com/lib/pq"
)

/*
OpenPostgreSQL takes a PostgreSQL database connection URL and returns a
database that works on it or an error if the URL cannot be used.
Connecting is deferred to the first query.
*/
func OpenPostgreSQL(url string) (*sql.DB, error) {
	db, err := sql.Open("postgres", url)
	if err != nil {
		return nil, fmt.Errorf("opening PostgreSQL database: %v", err)
	}
	return db, nil
}
