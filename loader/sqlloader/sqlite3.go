package sqlloader

import (
	"database/sql"
	"fmt"

	// Import of sqlite3 driver
	_ "github.com/mattn/go-sqlite3"
)

/*
OpenSQLite3 takes a path to an SQLite3 database file and returns a database
that works on it or an error if it fails to open as an sqlite3 database.
*/
func OpenSQLite3(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite3 database %s: %v", path, err)
	}
	return db, nil
}
