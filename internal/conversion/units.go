// Package conversion holds the unit table, volume/mass conversion and the
// fractional display formatting used by shopping lists and catalog seeding.
package conversion

import "strings"

// cupsPerUnit maps every recognised volume unit to its size in cups.
var cupsPerUnit = map[string]float64{
	"cup":         1,
	"cups":        1,
	"tbsp":        1.0 / 16,
	"tablespoon":  1.0 / 16,
	"tablespoons": 1.0 / 16,
	"tsp":         1.0 / 48,
	"teaspoon":    1.0 / 48,
	"teaspoons":   1.0 / 48,
}

// CupsPerUnit returns the multiplier that converts one of unit into cups.
// Lookup ignores case and surrounding whitespace. Unknown units report false.
func CupsPerUnit(unit string) (float64, bool) {
	factor, ok := cupsPerUnit[normalizeUnit(unit)]
	return factor, ok
}

// IsVolumeUnit reports whether unit is present in the unit table.
func IsVolumeUnit(unit string) bool {
	_, ok := CupsPerUnit(unit)
	return ok
}

// SameUnit compares two unit labels the way the unit table does.
func SameUnit(a, b string) bool {
	return normalizeUnit(a) == normalizeUnit(b)
}

func normalizeUnit(unit string) string {
	return strings.ToLower(strings.TrimSpace(unit))
}
