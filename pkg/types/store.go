package types

import "io"

// Store persists the full ordered set of records.
// Load returns every record in stored order; a store that has never been
// written returns an empty slice and no error. Save overwrites the stored
// set with records, preserving their order.
type Store interface {
	Load() ([]*Record, error)
	Save(records []*Record) error
	Close() error
}

// StreamStore is a Store backed by a single stream in the text line format.
// Callers that decode the stream themselves use Open and Replace instead of
// Load and Save.
type StreamStore interface {
	Store
	// Open returns the stored stream. A stream that has never been written
	// reads as empty.
	Open() (io.ReadCloser, error)
	// Replace overwrites the stream with whatever write produces. The old
	// contents stay intact if write fails.
	Replace(write func(io.Writer) error) error
}
