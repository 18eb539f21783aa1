package seed

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/pageza/ourkitchen/backend/internal/conversion"
	"github.com/pageza/ourkitchen/backend/internal/model"
	"github.com/pageza/ourkitchen/backend/internal/service"
	"github.com/pageza/ourkitchen/backend/internal/types"
)

// ErrChartTableNotFound is returned when the page has no weight chart table.
var ErrChartTableNotFound = errors.New("ingredient weight table not found")

const chartTableSelector = "table.cols-4"

// ChartIngredient is one row of an ingredient weight chart.
type ChartIngredient struct {
	Name         string
	VolumeAmount *float64
	VolumeUnit   string
	Ounces       *float64
	Grams        *float64
}

// Request turns the row into a catalog create request. Chart rows are
// always volume-measured.
func (ci ChartIngredient) Request() *types.IngredientRequest {
	return &types.IngredientRequest{
		Name:         ci.Name,
		VolumeAmount: ci.VolumeAmount,
		VolumeUnit:   ci.VolumeUnit,
		Ounces:       ci.Ounces,
		Grams:        ci.Grams,
		UnitType:     string(model.UnitTypeVolume),
	}
}

// ParseWeightChart reads the King Arthur ingredient weight chart page. Rows
// need exactly four cells: name, volume, ounces and grams. Ranges such as
// "140 to 170" are averaged.
func ParseWeightChart(r io.Reader) ([]ChartIngredient, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse weight chart: %w", err)
	}

	table := doc.Find(chartTableSelector).First()
	if table.Length() == 0 {
		return nil, ErrChartTableNotFound
	}

	var out []ChartIngredient
	table.Find("tbody tr").Each(func(_ int, row *goquery.Selection) {
		cells := row.Find("td")
		if cells.Length() != 4 {
			return
		}
		name := cellText(cells.Eq(0))
		if name == "" {
			return
		}

		ci := ChartIngredient{Name: name}
		if amount, unit, ok := conversion.ParseVolumeText(cellText(cells.Eq(1))); ok {
			ci.VolumeAmount = &amount
			ci.VolumeUnit = unit
		}
		if oz, ok := conversion.ParseRange(cellText(cells.Eq(2))); ok {
			ci.Ounces = &oz
		}
		if g, ok := conversion.ParseRange(cellText(cells.Eq(3))); ok {
			ci.Grams = &g
		}
		out = append(out, ci)
	})
	return out, nil
}

func cellText(sel *goquery.Selection) string {
	text := strings.ReplaceAll(sel.Text(), "\u00ad", "")
	return strings.Join(strings.Fields(text), " ")
}

// SeedIngredients adds chart rows to the catalog. Rows whose name already
// exists, or that the catalog rejects, are counted as skipped.
func SeedIngredients(ctx context.Context, ingredients service.IIngredientService, rows []ChartIngredient) (inserted, skipped int, err error) {
	for _, row := range rows {
		_, err := ingredients.CreateIngredient(ctx, row.Request())
		switch {
		case err == nil:
			inserted++
		case errors.Is(err, service.ErrIngredientExists),
			errors.Is(err, service.ErrNameRequired),
			errors.Is(err, service.ErrInvalidUnitType):
			log.Printf("[Seed] Skipped %q: %v", row.Name, err)
			skipped++
		default:
			return inserted, skipped, err
		}
	}
	log.Printf("[Seed] Seeded %d ingredients (%d skipped)", inserted, skipped)
	return inserted, skipped, nil
}
