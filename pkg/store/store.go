// Package store provides the public factory for record stores. It picks the
// backend named in a Config while keeping the implementations internal.
package store

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/mesh-intelligence/shelter/internal/sqlite"
	"github.com/mesh-intelligence/shelter/internal/textfile"
	"github.com/mesh-intelligence/shelter/pkg/types"
)

// Open returns the Store selected by cfg.Backend, rooted at Path(cfg).
// The config is validated first. The caller must Close the store.
//
// Example:
//
//	s, err := store.Open(types.Config{
//	    Backend: types.BackendText,
//	    DataDir: ".",
//	}, nil)
//	defer s.Close()
func Open(cfg types.Config, logger *slog.Logger) (types.Store, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	path := Path(cfg)
	switch cfg.Backend {
	case types.BackendText:
		return textfile.New(path, logger), nil
	case types.BackendSQLite:
		s, err := sqlite.Open(path, logger)
		if err != nil {
			return nil, fmt.Errorf("open sqlite store: %w", err)
		}
		return s, nil
	default:
		return nil, types.ErrBackendUnknown
	}
}

// Path returns the data file a Config points at.
func Path(cfg types.Config) string {
	return filepath.Join(cfg.DataDir, cfg.ResolvedDataFile())
}
