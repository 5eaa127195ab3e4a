// Package store persists served computations so the UI can restore its last
// inputs across sessions. The core model never touches it.
package store

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // pure go sqlite driver

	"sousvide/model"
)

const schema = `CREATE TABLE IF NOT EXISTS cooks (
	id            INTEGER PRIMARY KEY AUTOINCREMENT,
	food          TEXT NOT NULL,
	kind          TEXT NOT NULL DEFAULT '',
	shape         TEXT NOT NULL DEFAULT '',
	thickness_mm  REAL NOT NULL DEFAULT 0,
	temp_bath     REAL NOT NULL DEFAULT 0,
	temp_start    REAL NOT NULL DEFAULT 0,
	temp_core     REAL NOT NULL DEFAULT 0,
	log_reduction REAL NOT NULL DEFAULT 0,
	total_min     REAL,
	created_at    TEXT NOT NULL
)`

// Store is a sqlite-backed log of cook computations.
type Store struct {
	db *sql.DB
}

// Open opens (and if needed creates) the database at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create cooks table: %w", err)
	}
	return &Store{db: db}, nil
}

// SaveCook appends one computation. An unreachable result is stored with a
// NULL total.
func (s *Store) SaveCook(rec model.CookRecord) error {
	total := sql.NullFloat64{}
	if rec.Result.TotalMin != nil {
		total = sql.NullFloat64{Float64: *rec.Result.TotalMin, Valid: true}
	}
	_, err := s.db.Exec(
		`INSERT INTO cooks (food, kind, shape, thickness_mm, temp_bath, temp_start, temp_core, log_reduction, total_min, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.Request.Food, rec.Request.Kind, rec.Request.Shape, rec.Request.ThicknessMm,
		rec.Request.TempBath, rec.Request.TempStart, rec.Request.TempCore,
		rec.Request.LogReduction, total, rec.CreatedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("insert cook: %w", err)
	}
	return nil
}

// RecentCooks returns up to limit computations, newest first.
func (s *Store) RecentCooks(limit int) ([]model.CookRecord, error) {
	rows, err := s.db.Query(
		`SELECT food, kind, shape, thickness_mm, temp_bath, temp_start, temp_core, log_reduction, total_min, created_at
		 FROM cooks ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("select cooks: %w", err)
	}
	defer func() { _ = rows.Close() }()
	var out []model.CookRecord
	for rows.Next() {
		var rec model.CookRecord
		var total sql.NullFloat64
		var created string
		if err := rows.Scan(
			&rec.Request.Food, &rec.Request.Kind, &rec.Request.Shape, &rec.Request.ThicknessMm,
			&rec.Request.TempBath, &rec.Request.TempStart, &rec.Request.TempCore,
			&rec.Request.LogReduction, &total, &created,
		); err != nil {
			return nil, fmt.Errorf("scan cook: %w", err)
		}
		if total.Valid {
			v := total.Float64
			rec.Result.TotalMin = &v
		}
		if rec.CreatedAt, err = time.Parse(time.RFC3339Nano, created); err != nil {
			return nil, fmt.Errorf("parse created_at: %w", err)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate cooks: %w", err)
	}
	return out, nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}
