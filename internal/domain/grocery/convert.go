package grocery

// spoonScale expresses the spoon/cup volume family in teaspoons:
// 3 teaspoons per tablespoon, 16 tablespoons per cup.
var spoonScale = map[Unit]float64{
	UnitTeaspoon:   1,
	UnitTablespoon: 3,
	UnitCup:        48,
}

// Convert converts a quantity between two units when a defined
// relationship exists. The boolean is false when no rule covers the
// pair; the engine never guesses a cross-family conversion (for
// example gram to cup).
//
// Both unit arguments are normalized first, so Convert is safe to call
// with raw user text.
func Convert(qty float64, from, to Unit) (float64, bool) {
	fromUnit := NormalizeUnit(string(from))
	toUnit := NormalizeUnit(string(to))

	if fromUnit == toUnit {
		return qty, true
	}

	switch {
	case fromUnit == UnitGram && toUnit == UnitKilogram:
		return qty / 1000, true
	case fromUnit == UnitKilogram && toUnit == UnitGram:
		return qty * 1000, true
	case fromUnit == UnitMilliliter && toUnit == UnitLiter:
		return qty / 1000, true
	case fromUnit == UnitLiter && toUnit == UnitMilliliter:
		return qty * 1000, true
	}

	fromScale, fromOK := spoonScale[fromUnit]
	toScale, toOK := spoonScale[toUnit]
	if fromOK && toOK {
		return qty * fromScale / toScale, true
	}

	return 0, false
}
