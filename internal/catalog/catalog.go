// Package catalog holds the ordered collection of records and answers the
// listing and lookup queries the session needs.
//
// Display indices are 1-based positions among available records only. They
// are recomputed on every call and never cached, because adoptions and
// returns change the available set between calls.
package catalog

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/mesh-intelligence/shelter/internal/textcodec"
	"github.com/mesh-intelligence/shelter/pkg/types"
)

// Listing pairs an available record with its current display index.
type Listing struct {
	Index  int
	Record *types.Record
}

// Catalog owns every Record of a session. Other components hold pointers
// into it but never create or free records.
type Catalog struct {
	records []*types.Record
	logger  *slog.Logger
}

// New returns an empty catalog. A nil logger discards output.
func New(logger *slog.Logger) *Catalog {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Catalog{logger: logger}
}

// Add appends r to the end of the catalog. Duplicates are allowed.
func (c *Catalog) Add(r *types.Record) {
	c.records = append(c.records, r)
}

// Len returns the number of records, adopted or not.
func (c *Catalog) Len() int {
	return len(c.records)
}

// All returns the records in catalog order. The slice is a copy; the
// records are shared.
func (c *Catalog) All() []*types.Record {
	out := make([]*types.Record, len(c.records))
	copy(out, c.records)
	return out
}

// ListAvailable returns the available records with 1-based indices in
// catalog order.
func (c *Catalog) ListAvailable() []Listing {
	out := []Listing{}
	for _, r := range c.records {
		if r.Available() {
			out = append(out, Listing{Index: len(out) + 1, Record: r})
		}
	}
	return out
}

// ByDisplayIndex returns the i-th available record, counting from 1.
// Returns ErrNotFound when i is outside the current available range.
func (c *Catalog) ByDisplayIndex(i int) (*types.Record, error) {
	if i < 1 {
		return nil, types.ErrNotFound
	}
	n := 0
	for _, r := range c.records {
		if !r.Available() {
			continue
		}
		n++
		if n == i {
			return r, nil
		}
	}
	return nil, types.ErrNotFound
}

// ByName returns every record whose name matches exactly.
func (c *Catalog) ByName(name string) []*types.Record {
	return c.filter(func(r *types.Record) bool { return r.Name == name })
}

// ByKind returns every record of the given kind.
func (c *Catalog) ByKind(kind types.Kind) []*types.Record {
	return c.filter(func(r *types.Record) bool { return r.Kind == kind })
}

func (c *Catalog) filter(match func(*types.Record) bool) []*types.Record {
	out := []*types.Record{}
	for _, r := range c.records {
		if match(r) {
			out = append(out, r)
		}
	}
	return out
}

// LoadFrom discards the current collection and replaces it with the records
// decoded from src. Malformed lines are skipped and logged. It returns the
// number of skipped lines.
func (c *Catalog) LoadFrom(src io.Reader) (int, error) {
	skipped := 0
	records, err := textcodec.ReadAll(src, func(lineNo int, err error) {
		skipped++
		c.logger.Warn("skipping malformed record", "line", lineNo, "error", err)
	})
	if err != nil {
		return skipped, fmt.Errorf("load catalog: %w", err)
	}
	c.replace(records)
	return skipped, nil
}

// SaveTo writes every record, adopted and available, to dst in catalog
// order.
func (c *Catalog) SaveTo(dst io.Writer) error {
	if err := textcodec.WriteAll(dst, c.records); err != nil {
		return fmt.Errorf("save catalog: %w", err)
	}
	return nil
}

// Load replaces the collection with the contents of s. A text-backed store
// is decoded through LoadFrom.
func (c *Catalog) Load(s types.Store) error {
	if ss, ok := s.(types.StreamStore); ok {
		src, err := ss.Open()
		if err != nil {
			return fmt.Errorf("load catalog: %w", err)
		}
		defer src.Close()
		_, err = c.LoadFrom(src)
		return err
	}

	records, err := s.Load()
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}
	c.replace(records)
	return nil
}

// Save overwrites s with the current collection. A text-backed store is
// written through SaveTo.
func (c *Catalog) Save(s types.Store) error {
	var err error
	if ss, ok := s.(types.StreamStore); ok {
		err = ss.Replace(c.SaveTo)
	} else {
		err = s.Save(c.records)
	}
	if err != nil {
		return fmt.Errorf("save catalog: %w", err)
	}
	c.logger.Debug("catalog saved", "records", len(c.records))
	return nil
}

func (c *Catalog) replace(records []*types.Record) {
	c.records = records
	c.logger.Debug("catalog loaded", "records", len(records))
}
