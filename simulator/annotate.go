package simulator

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3" // registers the "sqlite3" database/sql driver
)

// LoadASNames reads an optional ASN → organization-name lookup table from
// a sqlite database at path, expecting a table shaped like
// "asn INTEGER, name TEXT". It is a read-only input-side enrichment used
// only to annotate CLI output; no RIB is ever persisted to disk, and this
// never writes anything.
//
// Grounded on orig-go:readers.go's ReadSqlite, which opens a bdrmapit
// annotation database through database/sql with the sqlite3 driver
// registered via blank import, and scans rows into a lookup map; the same
// shape here, narrowed from a three-column address/router/AS join to a
// two-column ASN/name lookup.
func LoadASNames(path string) (map[int]string, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("rovsim: opening %s: %w", path, err)
	}
	defer db.Close()

	rows, err := db.Query(`SELECT asn, name FROM as_names`)
	if err != nil {
		return nil, fmt.Errorf("rovsim: querying %s: %w", path, err)
	}
	defer rows.Close()

	names := make(map[int]string)
	for rows.Next() {
		var asn int
		var name string
		if err := rows.Scan(&asn, &name); err != nil {
			return nil, fmt.Errorf("rovsim: scanning %s: %w", path, err)
		}
		names[asn] = name
	}
	return names, rows.Err()
}
