package model

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// JSONBStringArray is a custom type for handling string arrays in JSONB
type JSONBStringArray []string

// Value implements the driver.Valuer interface
func (a JSONBStringArray) Value() (driver.Value, error) {
	if len(a) == 0 {
		return "[]", nil
	}
	b, err := json.Marshal(a)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements the sql.Scanner interface
func (a *JSONBStringArray) Scan(value interface{}) error {
	if value == nil {
		*a = JSONBStringArray{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return nil
	}

	return json.Unmarshal(bytes, a)
}

type Recipe struct {
	ID          uuid.UUID          `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
	DeletedAt   gorm.DeletedAt     `gorm:"index" json:"-"`
	Title       string             `gorm:"size:255;not null" json:"title"`
	ImagePath   string             `gorm:"size:512" json:"image_path"`
	Servings    int                `gorm:"not null;default:4" json:"servings"`
	Tags        JSONBStringArray   `gorm:"type:jsonb;not null;default:'[]'" json:"tags"`
	SourceURL   *string            `gorm:"size:512" json:"source_url,omitempty"`
	Steps       []RecipeStep       `gorm:"constraint:OnDelete:CASCADE" json:"steps,omitempty"`
	Ingredients []RecipeIngredient `gorm:"constraint:OnDelete:CASCADE" json:"ingredients,omitempty"`
}

func (r *Recipe) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// RecipeStep is one numbered instruction. Steps are narrative only and never
// feed the shopping list.
type RecipeStep struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"-"`
	RecipeID    uuid.UUID `gorm:"type:uuid;not null;index" json:"-"`
	StepNumber  int       `gorm:"not null" json:"step_number"`
	Instruction string    `gorm:"type:text;not null" json:"instruction"`
}

func (s *RecipeStep) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// RecipeIngredient is an authored ingredient line. Amount is the quantity
// for one batch of the recipe. IngredientID is set when the line names a
// catalog ingredient.
type RecipeIngredient struct {
	ID           uuid.UUID   `gorm:"type:uuid;primaryKey" json:"id"`
	RecipeID     uuid.UUID   `gorm:"type:uuid;not null;index" json:"recipe_id"`
	IngredientID *uuid.UUID  `gorm:"type:uuid;index" json:"ingredient_id,omitempty"`
	Ingredient   *Ingredient `gorm:"constraint:OnDelete:SET NULL" json:"-"`
	Name         string      `gorm:"size:255;not null" json:"name"`
	Amount       float64     `gorm:"not null;default:0" json:"amount"`
	Unit         string      `gorm:"size:64" json:"unit"`
	SortOrder    int         `gorm:"not null;default:0" json:"sort_order"`
}

func (ri *RecipeIngredient) BeforeCreate(tx *gorm.DB) error {
	if ri.ID == uuid.Nil {
		ri.ID = uuid.New()
	}
	return nil
}
