package cli

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/shelter/internal/catalog"
	"github.com/mesh-intelligence/shelter/pkg/store"
	"github.com/mesh-intelligence/shelter/pkg/types"
)

// app bundles what every data command needs: the effective config, a
// logger, the opened store, and a catalog loaded from it.
type app struct {
	cfg     types.Config
	logger  *slog.Logger
	store   types.Store
	catalog *catalog.Catalog
}

// openApp resolves configuration, opens the configured store, and loads the
// catalog. When seed is true an empty catalog receives the starter records
// (in memory only). The caller must Close the returned app.
func openApp(cmd *cobra.Command, seed bool) (*app, error) {
	cfg, err := resolveConfig()
	if err != nil {
		return nil, newSystemError(err)
	}

	logger, err := newLogger(cmd.ErrOrStderr(), cfg.LogLevel)
	if err != nil {
		return nil, newUserError("%w", err)
	}

	st, err := store.Open(cfg, logger)
	if err != nil {
		return nil, newSystemError(err)
	}

	cat := catalog.New(logger)
	if err := cat.Load(st); err != nil {
		st.Close()
		return nil, newSystemError(err)
	}
	if seed {
		cat.SeedDefaults()
	}

	return &app{cfg: cfg, logger: logger, store: st, catalog: cat}, nil
}

// Close releases the store.
func (a *app) Close() error {
	return a.store.Close()
}

// newLogger builds a text slog logger writing to w at the named level.
func newLogger(w io.Writer, level string) (*slog.Logger, error) {
	level = strings.TrimSpace(level)
	if level == "" {
		level = types.DefaultLogLevel
	}
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q", level)
	}
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})
	return slog.New(handler), nil
}
