// Package grocery contains the core domain logic for grocery-list
// generation: unit normalization, unit conversion, and quantity
// aggregation across a week of planned recipes.
package grocery

import "strings"

// Unit is a canonical measurement unit. Unrecognized input passes
// through as its lowercased, trimmed text, so every Unit value is a
// valid map key even when it is not one of the known base units.
type Unit string

const (
	UnitGram       Unit = "gram"
	UnitKilogram   Unit = "kilogram"
	UnitMilliliter Unit = "milliliter"
	UnitLiter      Unit = "liter"
	UnitTablespoon Unit = "tablespoon"
	UnitTeaspoon   Unit = "teaspoon"
	UnitCup        Unit = "cup"
	UnitPiece      Unit = "piece"
)

// unitAliases maps every accepted spelling to its canonical unit.
var unitAliases = map[string]Unit{
	"g":           UnitGram,
	"gram":        UnitGram,
	"grams":       UnitGram,
	"kg":          UnitKilogram,
	"kilogram":    UnitKilogram,
	"kilograms":   UnitKilogram,
	"ml":          UnitMilliliter,
	"milliliter":  UnitMilliliter,
	"milliliters": UnitMilliliter,
	"l":           UnitLiter,
	"liter":       UnitLiter,
	"liters":      UnitLiter,
	"tbsp":        UnitTablespoon,
	"tablespoon":  UnitTablespoon,
	"tablespoons": UnitTablespoon,
	"tsp":         UnitTeaspoon,
	"teaspoon":    UnitTeaspoon,
	"teaspoons":   UnitTeaspoon,
	"cup":         UnitCup,
	"cups":        UnitCup,
	"pc":          UnitPiece,
	"piece":       UnitPiece,
	"pieces":      UnitPiece,
}

// summableUnits holds the units whose quantities may be summed across
// ingredient occurrences. Anything outside this set is listed as-is.
var summableUnits = map[Unit]bool{
	UnitGram:       true,
	UnitKilogram:   true,
	UnitMilliliter: true,
	UnitLiter:      true,
	UnitTablespoon: true,
	UnitTeaspoon:   true,
	UnitCup:        true,
	UnitPiece:      true,
}

// NormalizeUnit maps free-text unit input to its canonical unit. Input
// that matches no alias comes back lowercased and trimmed, unchanged
// otherwise; empty input normalizes to the empty string.
func NormalizeUnit(raw string) Unit {
	cleaned := strings.ToLower(strings.TrimSpace(raw))
	if canonical, ok := unitAliases[cleaned]; ok {
		return canonical
	}
	return Unit(cleaned)
}

// IsSummable reports whether quantities of the given unit may be summed
// during aggregation. Unknown units, including the empty string, are
// never summable.
func (u Unit) IsSummable() bool {
	return summableUnits[u]
}
