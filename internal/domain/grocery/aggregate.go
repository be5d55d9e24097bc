package grocery

import (
	"math"
	"sort"
	"strings"

	"github.com/google/uuid"
)

// IngredientLine is the read-only view of one recipe ingredient as the
// aggregation engine consumes it. Quantity and unit tolerate whatever
// the recipe store hands over; coercion of malformed data happens at
// that boundary, not here.
type IngredientLine struct {
	Name     string
	Quantity float64
	Unit     string
	Note     string
}

// PlanEntry is one scheduled recipe occurrence inside a meal plan.
type PlanEntry struct {
	RecipeID   uuid.UUID
	Multiplier int
}

// Plan maps a day label to the ordered recipe entries planned for that
// day.
type Plan map[string][]PlanEntry

// RecipeLookup resolves a recipe id to its ingredient lines. The
// second return value reports whether the recipe exists; entries whose
// recipe cannot be found are skipped silently, so a plan referencing a
// deleted recipe still produces a list.
type RecipeLookup func(id uuid.UUID) ([]IngredientLine, bool)

// FlatItem is one ingredient occurrence after applying its plan
// entry's serving multiplier, prior to grouping.
type FlatItem struct {
	Name     string
	Quantity float64
	Unit     string
	Note     string
}

// AggregatedItem is one row of the final shopping list, ready for JSON
// serialization.
type AggregatedItem struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"qty"`
	Unit     Unit    `json:"unit"`
	Note     string  `json:"note"`
}

// Expand flattens a plan into one FlatItem per ingredient occurrence,
// scaled by the entry's multiplier. A non-positive multiplier counts
// as 1. Day labels are visited in sorted order so the result is
// deterministic, though Aggregate re-sorts anyway.
func Expand(plan Plan, lookup RecipeLookup) []FlatItem {
	days := make([]string, 0, len(plan))
	for day := range plan {
		days = append(days, day)
	}
	sort.Strings(days)

	var items []FlatItem
	for _, day := range days {
		for _, entry := range plan[day] {
			ingredients, ok := lookup(entry.RecipeID)
			if !ok {
				continue
			}
			multiplier := entry.Multiplier
			if multiplier <= 0 {
				multiplier = 1
			}
			for _, line := range ingredients {
				items = append(items, FlatItem{
					Name:     line.Name,
					Quantity: line.Quantity * float64(multiplier),
					Unit:     line.Unit,
					Note:     line.Note,
				})
			}
		}
	}
	return items
}

type groupKey struct {
	name string
	unit Unit
}

type group struct {
	total float64
	items []FlatItem
	notes []string
}

// Aggregate merges flat items into the final shopping list. Items
// sharing a (normalized name, normalized unit) key are summed when the
// unit is summable; totals of at least 1000 gram or 1000 milliliter
// are promoted to kilogram or liter. Unknown units are never summed:
// every occurrence keeps its own row. Notes are merged per group and
// attached to each row of that group. Totals round to two decimals,
// half away from zero.
func Aggregate(items []FlatItem) []AggregatedItem {
	groups := make(map[groupKey]*group)
	var order []groupKey

	for _, item := range items {
		key := groupKey{
			name: strings.ToLower(strings.TrimSpace(item.Name)),
			unit: NormalizeUnit(item.Unit),
		}
		g, ok := groups[key]
		if !ok {
			g = &group{}
			groups[key] = g
			order = append(order, key)
		}
		g.total += item.Quantity
		g.items = append(g.items, item)
		if note := strings.TrimSpace(item.Note); note != "" {
			g.notes = append(g.notes, note)
		}
	}

	result := make([]AggregatedItem, 0, len(order))
	for _, key := range order {
		g := groups[key]
		note := mergeNotes(g.notes)

		if key.unit.IsSummable() {
			total, unit := promote(g.total, key.unit)
			result = append(result, AggregatedItem{
				Name:     key.name,
				Quantity: round2(total),
				Unit:     unit,
				Note:     note,
			})
			continue
		}

		// Unknown unit: one row per original occurrence, the
		// group key only scopes note merging.
		for _, item := range g.items {
			result = append(result, AggregatedItem{
				Name:     key.name,
				Quantity: item.Quantity,
				Unit:     key.unit,
				Note:     note,
			})
		}
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})
	return result
}

// promote lifts a summed total into the next larger unit once it
// crosses 1000. Only gram and milliliter promote; spoon-family totals
// never do, regardless of size.
func promote(total float64, unit Unit) (float64, Unit) {
	var target Unit
	switch unit {
	case UnitGram:
		target = UnitKilogram
	case UnitMilliliter:
		target = UnitLiter
	default:
		return total, unit
	}
	if total < 1000 {
		return total, unit
	}
	converted, ok := Convert(total, unit, target)
	if !ok {
		return total, unit
	}
	return converted, target
}

// mergeNotes deduplicates, sorts, and comma-joins the non-empty notes
// of one group.
func mergeNotes(notes []string) string {
	if len(notes) == 0 {
		return ""
	}
	seen := make(map[string]bool, len(notes))
	unique := make([]string, 0, len(notes))
	for _, n := range notes {
		if !seen[n] {
			seen[n] = true
			unique = append(unique, n)
		}
	}
	sort.Strings(unique)
	return strings.Join(unique, ", ")
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
