package types

import "errors"

// Kind is the closed set of animal categories a Record can carry.
type Kind string

// Known kinds. The string value is also the on-disk tag.
const (
	KindDog  Kind = "Dog"
	KindCat  Kind = "Cat"
	KindBird Kind = "Bird"
)

// ErrUnknownKind is returned when a kind tag does not match a known variant.
var ErrUnknownKind = errors.New("unknown kind")

// kindPrefixes maps each kind to the label shown in front of a record.
var kindPrefixes = map[Kind]string{
	KindDog:  "[Dog]",
	KindCat:  "[Cat]",
	KindBird: "[Bird]",
}

// Kinds lists the known kinds in display order.
var Kinds = []Kind{KindDog, KindCat, KindBird}

// ParseKind returns the Kind matching s exactly.
// Returns ErrUnknownKind for anything else, including different casing.
func ParseKind(s string) (Kind, error) {
	k := Kind(s)
	if _, ok := kindPrefixes[k]; !ok {
		return "", ErrUnknownKind
	}
	return k, nil
}

// Valid reports whether k is one of the known kinds.
func (k Kind) Valid() bool {
	_, ok := kindPrefixes[k]
	return ok
}

// Prefix returns the display label for the kind, e.g. "[Dog]".
func (k Kind) Prefix() string {
	if p, ok := kindPrefixes[k]; ok {
		return p
	}
	return "[" + string(k) + "]"
}

func (k Kind) String() string { return string(k) }
