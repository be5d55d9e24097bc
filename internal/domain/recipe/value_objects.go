package recipe

// IngredientLine is one ingredient entry of a recipe. Quantity and
// unit stay loosely typed here: unit text is only interpreted by the
// grocery aggregation engine, and malformed stored quantities coerce
// to zero at the persistence boundary rather than failing.
type IngredientLine struct {
	Name     string
	Quantity float64
	Unit     string
	Note     string
	Optional bool
}

// Validate validates the ingredient line
func (l IngredientLine) Validate() error {
	if l.Name == "" {
		return ErrIngredientNameRequired
	}
	if l.Quantity < 0 {
		return ErrNegativeQuantity
	}
	return nil
}
