package roadmap

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/gdgqassim/robo-roadmap/internal"
	_ "modernc.org/sqlite"
)

// StageKeyPrefix prefixes stage rows in roadmapKV: stage:<id>
const StageKeyPrefix = "stage:"

// CreateTableSQL is the schema of a SQLite catalog
const CreateTableSQL = `CREATE TABLE IF NOT EXISTS roadmapKV (
	key TEXT PRIMARY KEY,
	value TEXT
)`

// KeyValuePair represents a row of roadmapKV
type KeyValuePair struct {
	Key   string
	Value string
}

// OpenDatabase opens a SQLite database in read-only mode
func OpenDatabase(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path+"?mode=ro")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("database ping failed: %w", err)
	}

	return db, nil
}

// QueryRoadmapKV queries the roadmapKV table with a LIKE pattern
func QueryRoadmapKV(db *sql.DB, pattern string) ([]KeyValuePair, error) {
	query := "SELECT key, value FROM roadmapKV WHERE key LIKE ? AND value IS NOT NULL ORDER BY key"
	rows, err := db.Query(query, pattern)
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}
	defer rows.Close()

	var pairs []KeyValuePair
	for rows.Next() {
		var pair KeyValuePair
		var value sql.NullString
		if err := rows.Scan(&pair.Key, &value); err != nil {
			return nil, fmt.Errorf("scan failed: %w", err)
		}
		if value.Valid {
			pair.Value = value.String
			pairs = append(pairs, pair)
		}
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return pairs, nil
}

// ParseStageRow parses a roadmapKV row into a Stage. The key's ID wins over any id in the JSON.
func ParseStageRow(key, value string) (Stage, error) {
	if !strings.HasPrefix(key, StageKeyPrefix) {
		return Stage{}, fmt.Errorf("invalid stage key format: %s", key)
	}
	id, err := strconv.Atoi(strings.TrimPrefix(key, StageKeyPrefix))
	if err != nil || id <= 0 {
		return Stage{}, fmt.Errorf("invalid stage key format: %s", key)
	}

	var stage Stage
	if err := json.Unmarshal([]byte(value), &stage); err != nil {
		return Stage{}, fmt.Errorf("failed to parse stage JSON: %w", err)
	}
	stage.ID = id
	return stage, nil
}

// LoadStages reads every stage row, skipping malformed ones
func LoadStages(db *sql.DB) ([]Stage, error) {
	pairs, err := QueryRoadmapKV(db, StageKeyPrefix+"%")
	if err != nil {
		return nil, fmt.Errorf("failed to query stages: %w", err)
	}

	stages := make([]Stage, 0, len(pairs))
	for _, pair := range pairs {
		stage, err := ParseStageRow(pair.Key, pair.Value)
		if err != nil {
			internal.LogWarn("Skipping catalog row %s: %v", pair.Key, err)
			continue
		}
		stages = append(stages, stage)
	}
	return stages, nil
}

func loadSQLiteFile(path string) (*Catalog, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, &internal.CatalogError{Source: "sqlite", Key: path, Err: err}
	}
	db, err := OpenDatabase(path)
	if err != nil {
		return nil, &internal.CatalogError{Source: "sqlite", Key: path, Err: err}
	}
	defer db.Close()

	stages, err := LoadStages(db)
	if err != nil {
		return nil, &internal.CatalogError{Source: "sqlite", Key: path, Err: err}
	}
	cat, err := NewCatalog(path, stages)
	if err != nil {
		return nil, &internal.CatalogError{Source: "sqlite", Key: path, Err: err}
	}
	internal.LogDebug("Loaded %d stage(s) from %s", cat.Len(), path)
	return cat, nil
}
