package testutil

import (
	"database/sql"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	_ "modernc.org/sqlite"
)

// Row is a roadmapKV row
type Row struct {
	Key   string
	Value string
}

// SampleStageRows returns three valid stage rows, out of key order on purpose
func SampleStageRows() []Row {
	stage := func(title, difficulty, project string) string {
		data, _ := json.Marshal(map[string]interface{}{
			"title":       title,
			"difficulty":  difficulty,
			"description": "About " + title,
			"project":     project,
			"resources": []map[string]string{
				{"type": "video", "title": title + " intro", "url": "https://example.com/" + difficulty},
			},
		})
		return string(data)
	}
	return []Row{
		{Key: "stage:3", Value: stage("Soldering", "intermediate", "Solder a blinking badge")},
		{Key: "stage:1", Value: stage("Ohm's Law", "beginner", "Measure a resistor")},
		{Key: "stage:2", Value: stage("Servos", "beginner", "Sweep a servo")},
	}
}

// CreateSQLiteFixture creates a SQLite catalog file with the sample rows plus any extra rows
func CreateSQLiteFixture(t *testing.T, dbPath string, extra ...Row) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		t.Fatalf("Failed to create fixture directory: %v", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	defer func() { _ = db.Close() }()

	if _, err := db.Exec(createRoadmapKVSQL); err != nil {
		t.Fatalf("Failed to create table: %v", err)
	}

	rows := append(SampleStageRows(), extra...)
	for _, row := range rows {
		if _, err := db.Exec("INSERT INTO roadmapKV (key, value) VALUES (?, ?)", row.Key, row.Value); err != nil {
			t.Fatalf("Failed to insert %s: %v", row.Key, err)
		}
	}
}
