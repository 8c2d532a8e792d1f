// Package textfile implements the flat text file Store.
// Reads skip malformed lines. Writes are atomic: temp file, fsync, rename.
package textfile

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/mesh-intelligence/shelter/internal/textcodec"
	"github.com/mesh-intelligence/shelter/pkg/types"
)

// Store reads and writes records at a single file path.
type Store struct {
	path   string
	logger *slog.Logger
	closed bool
}

// New returns a Store for path. The file need not exist. A nil logger
// discards output.
func New(path string, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Store{path: path, logger: logger}
}

// Path returns the file the store reads and writes.
func (s *Store) Path() string {
	return s.path
}

// Open returns the file for reading. A missing file reads as empty.
func (s *Store) Open() (io.ReadCloser, error) {
	if s.closed {
		return nil, types.ErrStoreClosed
	}

	f, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			s.logger.Debug("data file missing, starting empty", "path", s.path)
			return io.NopCloser(strings.NewReader("")), nil
		}
		return nil, fmt.Errorf("opening %s: %w", s.path, err)
	}
	return f, nil
}

// Load reads every well-formed record. A missing file yields no records
// and no error.
func (s *Store) Load() ([]*types.Record, error) {
	f, err := s.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	records, err := textcodec.ReadAll(f, func(lineNo int, err error) {
		s.logger.Warn("skipping malformed record", "path", s.path, "line", lineNo, "error", err)
	})
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", s.path, err)
	}
	if records == nil {
		records = []*types.Record{}
	}
	return records, nil
}

// Save overwrites the file with records.
func (s *Store) Save(records []*types.Record) error {
	return s.Replace(func(w io.Writer) error {
		return textcodec.WriteAll(w, records)
	})
}

// Replace overwrites the file with the output of write using the temp-file,
// fsync, rename pattern so readers never observe a partial write.
func (s *Store) Replace(write func(io.Writer) error) error {
	if s.closed {
		return types.ErrStoreClosed
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating data dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".pets-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	if err := write(tmp); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("syncing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}

// Close marks the store unusable. Idempotent.
func (s *Store) Close() error {
	s.closed = true
	return nil
}
