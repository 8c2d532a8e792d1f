package sqlite

import (
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/shelter/pkg/types"
)

// Store keeps records in a single SQLite table. Save replaces every row
// inside one transaction.
type Store struct {
	db     *sql.DB
	path   string
	logger *slog.Logger
}

// Open creates the parent directory and the schema if needed.
// A nil logger discards output.
func Open(path string, logger *slog.Logger) (*Store, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	for _, stmt := range schemaStatements {
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return nil, fmt.Errorf("applying schema: %w", err)
		}
	}
	return &Store{db: db, path: path, logger: logger}, nil
}

// Path returns the database file.
func (s *Store) Path() string {
	return s.path
}

// Load returns every row in ordinal order. Rows with an unknown kind or a
// negative age are skipped.
func (s *Store) Load() ([]*types.Record, error) {
	if s.db == nil {
		return nil, types.ErrStoreClosed
	}

	rows, err := s.db.Query(`SELECT pet_id, kind, name, age, breed, adopted FROM pets ORDER BY ordinal`)
	if err != nil {
		return nil, fmt.Errorf("querying pets: %w", err)
	}
	defer rows.Close()

	records := []*types.Record{}
	for rows.Next() {
		var (
			id, kindTag, name, breed string
			age                      int
			adopted                  bool
		)
		if err := rows.Scan(&id, &kindTag, &name, &age, &breed, &adopted); err != nil {
			return nil, fmt.Errorf("scanning pet: %w", err)
		}
		kind, err := types.ParseKind(kindTag)
		if err != nil {
			s.logger.Warn("skipping malformed record", "pet_id", id, "error", err)
			continue
		}
		if age < 0 {
			s.logger.Warn("skipping malformed record", "pet_id", id, "age", age)
			continue
		}
		records = append(records, &types.Record{
			Kind:    kind,
			Name:    name,
			Age:     age,
			Breed:   breed,
			Adopted: adopted,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating pets: %w", err)
	}
	return records, nil
}

// Save replaces the stored rows with records. Each row gets a fresh UUID v7.
func (s *Store) Save(records []*types.Record) error {
	if s.db == nil {
		return types.ErrStoreClosed
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning save transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM pets`); err != nil {
		return fmt.Errorf("clearing pets: %w", err)
	}

	stmt, err := tx.Prepare(`INSERT INTO pets (pet_id, ordinal, kind, name, age, breed, adopted) VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for i, r := range records {
		id, err := uuid.NewV7()
		if err != nil {
			return fmt.Errorf("generating pet id: %w", err)
		}
		if _, err := stmt.Exec(id.String(), i, string(r.Kind), r.Name, r.Age, r.Breed, r.Adopted); err != nil {
			return fmt.Errorf("inserting %s: %w", r.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing save transaction: %w", err)
	}
	return nil
}

// Close releases the database handle. Idempotent.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}
