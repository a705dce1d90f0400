// internal/words/sqlite.go
//
// SQLite-backed word source. Expects a database file with a table:
//
//   CREATE TABLE words (word TEXT PRIMARY KEY);
//
// The database is opened read-only with a busy timeout, and rows are run
// through the same normalize-and-skip policy as the line loaders.

package words

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// LoadSQLite reads the words table from the database at dsn.
// The driver only honors mode= on file: URIs, hence the prefix.
func LoadSQLite(dsn string, length int) (*Set, error) {
	db, err := sql.Open("sqlite3", "file:"+dsn+"?mode=ro&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", dsn, err)
	}
	defer db.Close()

	rows, err := db.Query(`SELECT word FROM words`)
	if err != nil {
		return nil, fmt.Errorf("query words: %w", err)
	}
	defer rows.Close()

	var lines []string
	for rows.Next() {
		var w string
		if err := rows.Scan(&w); err != nil {
			return nil, err
		}
		lines = append(lines, w)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return FromLines(lines, length)
}
