package testutil

import (
	"database/sql"
	"testing"

	_ "modernc.org/sqlite"
)

const createRoadmapKVSQL = `
	CREATE TABLE IF NOT EXISTS roadmapKV (
		key TEXT PRIMARY KEY,
		value TEXT
	)`

// CreateInMemoryDB creates an in-memory SQLite database with an empty roadmapKV table
func CreateInMemoryDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to create in-memory database: %v", err)
	}
	// each pooled connection to :memory: is a separate database
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(createRoadmapKVSQL); err != nil {
		db.Close()
		t.Fatalf("Failed to create roadmapKV table: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	return db
}

// CreateTestDB creates an in-memory database holding the sample stage rows
func CreateTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db := CreateInMemoryDB(t)
	for _, row := range SampleStageRows() {
		InsertRow(t, db, row.Key, row.Value)
	}
	return db
}

// InsertRow inserts a raw key/value row
func InsertRow(t *testing.T, db *sql.DB, key, value string) {
	t.Helper()
	if _, err := db.Exec("INSERT INTO roadmapKV (key, value) VALUES (?, ?)", key, value); err != nil {
		t.Fatalf("Failed to insert row %s: %v", key, err)
	}
}
