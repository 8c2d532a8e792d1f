package types

import "fmt"

// Record is one animal's stored attributes and adoption state.
// Adopted is the single source of truth for availability.
type Record struct {
	Kind    Kind   `json:"kind"`
	Name    string `json:"name"`
	Age     int    `json:"age"`
	Breed   string `json:"breed"`
	Adopted bool   `json:"adopted"`
}

// NewRecord returns an available record.
func NewRecord(kind Kind, name string, age int, breed string) *Record {
	return &Record{Kind: kind, Name: name, Age: age, Breed: breed}
}

// Available reports whether the record can be adopted.
func (r *Record) Available() bool {
	return !r.Adopted
}

// String renders the record as a single display line.
func (r *Record) String() string {
	s := fmt.Sprintf("%s Name: %s, Age: %d, Breed: %s", r.Kind.Prefix(), r.Name, r.Age, r.Breed)
	if r.Adopted {
		s += " (Adopted)"
	}
	return s
}
