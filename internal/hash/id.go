package hash

import (
	"github.com/cespare/xxhash/v2"

	"github.com/arloliu/mensura/internal/fold"
)

// ID computes the xxHash64 of the given string.
func ID(data string) uint64 {
	return xxhash.Sum64String(data)
}

// UnitID computes the stable identifier of a unit.
//
// The category name is case-folded because categories are looked up
// case-insensitively, while unit names are compared exactly.
func UnitID(category, unit string) uint64 {
	d := xxhash.New()
	_, _ = d.WriteString(fold.Key(category))
	_, _ = d.WriteString("/")
	_, _ = d.WriteString(unit)

	return d.Sum64()
}
