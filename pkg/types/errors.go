package types

import "errors"

// Lookup errors.
var (
	ErrNotFound = errors.New("record not found")
)

// Adoption errors. Both are non-fatal outcomes reported to the user.
var (
	ErrAlreadyAdopted = errors.New("record is already adopted")
	ErrNotHeld        = errors.New("record is not held by this owner")
)

// Store errors.
var (
	ErrStoreClosed = errors.New("store is closed")
)
