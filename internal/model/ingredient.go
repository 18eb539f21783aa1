package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/cases"
	"gorm.io/gorm"
)

// UnitType says how an ingredient is usually measured.
type UnitType string

const (
	UnitTypeVolume UnitType = "volume"
	UnitTypeCount  UnitType = "count"
	UnitTypeBoth   UnitType = "both"
)

// Valid reports whether t is one of the known unit types.
func (t UnitType) Valid() bool {
	switch t {
	case UnitTypeVolume, UnitTypeCount, UnitTypeBoth:
		return true
	}
	return false
}

// Ingredient is a catalog entry carrying the density and per-item weight
// data needed to turn recipe quantities into grams.
type Ingredient struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
	Name           string    `gorm:"size:255;not null" json:"name"`
	NameKey        string    `gorm:"size:255;not null;uniqueIndex" json:"-"`
	VolumeAmount   *float64  `json:"volume_amount,omitempty"`
	VolumeUnit     string    `gorm:"size:64" json:"volume_unit,omitempty"`
	Ounces         *float64  `json:"ounces,omitempty"`
	Grams          *float64  `json:"grams,omitempty"`
	GramsPerCup    *float64  `json:"grams_per_cup,omitempty"`
	UnitType       UnitType  `gorm:"size:16;not null;default:'volume'" json:"unit_type"`
	AvgWeightGrams *float64  `json:"avg_weight_grams,omitempty"`
}

func (i *Ingredient) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// BeforeSave keeps the case-folded uniqueness key in step with Name.
func (i *Ingredient) BeforeSave(tx *gorm.DB) error {
	i.NameKey = FoldName(i.Name)
	if i.UnitType == "" {
		i.UnitType = UnitTypeVolume
	}
	return nil
}

// FoldName returns the case-insensitive identity of an ingredient name.
func FoldName(name string) string {
	return cases.Fold().String(strings.TrimSpace(name))
}
