// Package gorm provides GORM model definitions and repositories for
// the application
package gorm

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RecipeModel represents the GORM model for recipes. Ingredients live
// in a JSON column, as in the original schema.
type RecipeModel struct {
	ID          uuid.UUID `gorm:"type:char(36);primaryKey"`
	Title       string    `gorm:"type:varchar(255);not null;index"`
	Description string    `gorm:"type:text"`
	AuthorID    uuid.UUID `gorm:"type:char(36);not null;index"`
	Servings    int       `gorm:"default:1"`
	IsPublic    bool      `gorm:"default:false;index"`

	Ingredients IngredientRecords `gorm:"column:ingredients_json;type:json"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

// TableName overrides the table name
func (RecipeModel) TableName() string {
	return "recipes"
}

// MealPlanModel represents the GORM model for weekly meal plans. The
// week schedule is a JSON column keyed by day label.
type MealPlanModel struct {
	ID      uuid.UUID `gorm:"type:char(36);primaryKey"`
	OwnerID uuid.UUID `gorm:"type:char(36);not null;index"`
	Name    string    `gorm:"type:varchar(255);not null"`

	Week WeekRecord `gorm:"column:week_json;type:json"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

// TableName overrides the table name
func (MealPlanModel) TableName() string {
	return "meal_plans"
}

// IngredientRecord is the stored JSON shape of one ingredient line.
// Qty is kept raw so malformed stored values coerce to zero instead of
// failing the whole row.
type IngredientRecord struct {
	Name     string          `json:"name"`
	Qty      json.RawMessage `json:"qty,omitempty"`
	Unit     string          `json:"unit,omitempty"`
	Note     string          `json:"note,omitempty"`
	Optional bool            `json:"optional,omitempty"`
}

// Quantity coerces the stored qty to a float64. Missing, null, or
// unparseable values become 0 per the tolerant-input policy.
func (r IngredientRecord) Quantity() float64 {
	return coerceFloat(r.Qty)
}

// IngredientRecords implements JSON (de)serialization for the
// ingredients column
type IngredientRecords []IngredientRecord

// Value implements driver.Valuer
func (j IngredientRecords) Value() (driver.Value, error) {
	if j == nil {
		return "[]", nil
	}
	data, err := json.Marshal(j)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

// Scan implements sql.Scanner. Malformed stored JSON degrades to an
// empty list rather than an error.
func (j *IngredientRecords) Scan(value interface{}) error {
	data, err := jsonBytes(value)
	if err != nil {
		return err
	}
	if len(data) == 0 {
		*j = IngredientRecords{}
		return nil
	}
	var records []IngredientRecord
	if err := json.Unmarshal(data, &records); err != nil {
		*j = IngredientRecords{}
		return nil
	}
	*j = records
	return nil
}

// PlanEntryRecord is the stored JSON shape of one scheduled recipe.
// Multiplier is raw for the same tolerance reason as ingredient qty.
type PlanEntryRecord struct {
	RecipeID   uuid.UUID       `json:"recipe_id"`
	Multiplier json.RawMessage `json:"multiplier,omitempty"`
}

// MultiplierValue coerces the stored multiplier to an int, defaulting
// to 1 when missing or unparseable.
func (r PlanEntryRecord) MultiplierValue() int {
	m := int(coerceFloat(r.Multiplier))
	if m <= 0 {
		return 1
	}
	return m
}

// WeekRecord implements JSON (de)serialization for the week column
type WeekRecord map[string][]PlanEntryRecord

// Value implements driver.Valuer
func (w WeekRecord) Value() (driver.Value, error) {
	if w == nil {
		return "{}", nil
	}
	data, err := json.Marshal(w)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

// Scan implements sql.Scanner
func (w *WeekRecord) Scan(value interface{}) error {
	data, err := jsonBytes(value)
	if err != nil {
		return err
	}
	if len(data) == 0 {
		*w = WeekRecord{}
		return nil
	}
	var week map[string][]PlanEntryRecord
	if err := json.Unmarshal(data, &week); err != nil {
		*w = WeekRecord{}
		return nil
	}
	*w = week
	return nil
}

func jsonBytes(value interface{}) ([]byte, error) {
	switch v := value.(type) {
	case nil:
		return nil, nil
	case []byte:
		return v, nil
	case string:
		return []byte(v), nil
	default:
		return nil, fmt.Errorf("unsupported column type %T", value)
	}
}

// coerceFloat interprets a raw JSON value as a number: JSON numbers
// directly, numeric strings via parsing, anything else as 0.
func coerceFloat(raw json.RawMessage) float64 {
	if len(raw) == 0 {
		return 0
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		return f
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if f, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
			return f
		}
	}
	return 0
}
