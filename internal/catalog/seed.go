package catalog

import "github.com/mesh-intelligence/shelter/pkg/types"

// starterRecord describes a record added when the catalog starts empty.
type starterRecord struct {
	kind  types.Kind
	name  string
	age   int
	breed string
}

var starterRecords = []starterRecord{
	{types.KindDog, "Brownie", 2, "Labrador"},
	{types.KindCat, "Tofu", 1, "Indian Street"},
	{types.KindBird, "Cheeku", 3, "Parrot"},
	{types.KindDog, "Maxy", 4, "German Shepherd"},
	{types.KindCat, "Tama", 2, "Persian"},
	{types.KindCat, "Troy", 3, "Siamese"},
	{types.KindBird, "Tweety", 1, "Canary"},
	{types.KindBird, "Sky", 2, "Budgerigar"},
	{types.KindBird, "Blue", 4, "Macaw"},
}

// SeedDefaults adds the starter records if the catalog is empty.
// It reports whether anything was added.
func (c *Catalog) SeedDefaults() bool {
	if len(c.records) > 0 {
		return false
	}
	for _, s := range starterRecords {
		c.Add(types.NewRecord(s.kind, s.name, s.age, s.breed))
	}
	c.logger.Info("seeded default records", "records", len(starterRecords))
	return true
}
