package testutil

import (
	"database/sql"
	"strings"
	"testing"

	"genshinstats/lib/telemetry"

	_ "modernc.org/sqlite"
)

// SetupDB opens an in-memory sqlite database with the given schema
// applied, closed when the test finishes.
func SetupDB(t testing.TB, schema string) *sql.DB {
	t.Cleanup(telemetry.SetupForTesting(t, "testutil"))

	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { db.Close() })

	_, err = db.Exec(schema)
	if err != nil && !strings.Contains(err.Error(), "already exists") {
		t.Fatal(err)
	}
	return db
}
