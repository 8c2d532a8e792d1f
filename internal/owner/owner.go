// Package owner tracks the records held by one adopter during a session.
//
// An Owner keeps non-owning pointers into the catalog. Membership in the held
// list, not the record's global Adopted flag, decides whether a record can be
// given back. With a single Owner per session the two always agree.
package owner

import "github.com/mesh-intelligence/shelter/pkg/types"

// Owner is a session-scoped adopter. It is never persisted.
type Owner struct {
	name string
	held []*types.Record
}

// New returns an Owner holding nothing.
func New(name string) *Owner {
	return &Owner{name: name}
}

// Name returns the adopter's display name.
func (o *Owner) Name() string {
	return o.name
}

// Adopt marks r adopted and appends it to the held list.
// Returns ErrAlreadyAdopted, with no state change, if r is not available.
func (o *Owner) Adopt(r *types.Record) error {
	if !r.Available() {
		return types.ErrAlreadyAdopted
	}
	r.Adopted = true
	o.held = append(o.held, r)
	return nil
}

// GiveBack marks r available and removes it from the held list.
// Returns ErrNotHeld if this exact record is not held.
func (o *Owner) GiveBack(r *types.Record) error {
	for i, h := range o.held {
		if h != r {
			continue
		}
		r.Adopted = false
		o.held = append(o.held[:i], o.held[i+1:]...)
		return nil
	}
	return types.ErrNotHeld
}

// ListHeld returns the held records in adoption order.
func (o *Owner) ListHeld() []*types.Record {
	out := make([]*types.Record, len(o.held))
	copy(out, o.held)
	return out
}

// HasName reports whether a held record has exactly this name.
func (o *Owner) HasName(name string) bool {
	_, ok := o.FindHeld(name)
	return ok
}

// FindHeld returns the first held record with exactly this name.
func (o *Owner) FindHeld(name string) (*types.Record, bool) {
	for _, h := range o.held {
		if h.Name == name {
			return h, true
		}
	}
	return nil, false
}
