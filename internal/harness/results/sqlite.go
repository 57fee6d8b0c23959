// Copyright 2025 Esteban Alvarez. All Rights Reserved.
//
// Created: October 2025
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package results

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS results (
	id              INTEGER PRIMARY KEY AUTOINCREMENT,
	workload        TEXT    NOT NULL,
	key_count       INTEGER NOT NULL,
	impl            TEXT    NOT NULL,
	memory_bytes    INTEGER NOT NULL,
	runtime_seconds REAL    NOT NULL,
	aux             TEXT
);`

// SQLiteSink appends records to an SQLite database, one row per sweep cell.
// It exists for runs whose results get queried and joined afterwards rather
// than just plotted; the JSONL sink stays the default.
type SQLiteSink struct {
	db     *sql.DB
	insert *sql.Stmt
}

// NewSQLiteSink opens (or creates) the database at path and ensures the
// results table exists.
func NewSQLiteSink(path string) (*SQLiteSink, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open result database: %w", err)
	}
	if _, err := db.Exec(sqliteSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create results table: %w", err)
	}
	insert, err := db.Prepare(
		`INSERT INTO results (workload, key_count, impl, memory_bytes, runtime_seconds, aux)
		 VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("prepare insert: %w", err)
	}
	return &SQLiteSink{db: db, insert: insert}, nil
}

// Append inserts one record. SQLite commits per statement, so the row is
// durable when Append returns.
func (s *SQLiteSink) Append(ctx context.Context, rec Record) error {
	var aux any
	if len(rec.Aux) > 0 {
		aux = string(rec.Aux)
	}
	_, err := s.insert.ExecContext(ctx,
		rec.Workload, rec.KeyCount, rec.Impl,
		int64(rec.MemoryBytes), rec.RuntimeSeconds, aux)
	if err != nil {
		return fmt.Errorf("insert result record: %w", err)
	}
	return nil
}

// Close releases the prepared statement and the database handle.
func (s *SQLiteSink) Close() error {
	_ = s.insert.Close()
	return s.db.Close()
}
