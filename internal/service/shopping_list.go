package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"
	"github.com/pageza/ourkitchen/backend/internal/conversion"
	"github.com/pageza/ourkitchen/backend/internal/model"
	"github.com/pageza/ourkitchen/backend/internal/types"
)

// UnitMode selects how shopping list quantities are expressed.
type UnitMode string

const (
	UnitModeVolume UnitMode = "volume"
	UnitModeWeight UnitMode = "weight"
)

// ParseUnitMode maps a request token to a unit mode. Empty and "volume" pick
// volume mode; any other token asks for weights.
func ParseUnitMode(s string) UnitMode {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, string(UnitModeVolume)) {
		return UnitModeVolume
	}
	return UnitModeWeight
}

// ShoppingListLine is one (ingredient, unit) entry of a shopping list.
type ShoppingListLine struct {
	Name           string
	Amount         float64
	Unit           string
	Grams          int
	Weighed        bool
	NonConvertible bool
	Display        string
}

// ShoppingList is the merged result of a meal plan.
type ShoppingList struct {
	Items     []ShoppingListLine
	MealCount int
	Skipped   int
	Mode      UnitMode
}

// ItemCount returns the number of lines on the list.
func (l *ShoppingList) ItemCount() int {
	return len(l.Items)
}

// Summary renders the totals as a sentence, e.g. "5 items for 3 meals".
func (l *ShoppingList) Summary() string {
	return fmt.Sprintf("%s for %s", plural(l.ItemCount(), "item"), plural(l.MealCount, "meal"))
}

func plural(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}

// ShoppingListService merges the ingredient lines of planned recipes.
type ShoppingListService struct {
	catalog Catalog
}

// NewShoppingListService creates a new ShoppingListService instance
func NewShoppingListService(catalog Catalog) *ShoppingListService {
	return &ShoppingListService{catalog: catalog}
}

// Build aggregates every planned recipe into one shopping list. Entries whose
// recipe no longer exists are skipped. Lines that cannot be converted to
// weight keep their authored units and are flagged. Only catalog failures
// are returned as errors.
func (s *ShoppingListService) Build(ctx context.Context, plan types.MealPlan, mode UnitMode) (*ShoppingList, error) {
	list := &ShoppingList{
		Items:   []ShoppingListLine{},
		Skipped: plan.Invalid,
		Mode:    mode,
	}
	agg := newAggregator(mode)
	resolver := newIngredientResolver(s.catalog)

	for _, entry := range plan.Entries {
		if entry.Meals <= 0 {
			list.Skipped++
			continue
		}

		lines, err := s.catalog.GetRecipeIngredients(ctx, entry.RecipeID)
		if errors.Is(err, ErrRecipeNotFound) {
			log.Printf("[ShoppingList] Recipe %s not found, skipping", entry.RecipeID)
			list.Skipped++
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to load ingredients for recipe %s: %w", entry.RecipeID, err)
		}

		list.MealCount += entry.Meals
		for _, line := range lines {
			ref, err := resolver.resolve(ctx, line)
			if err != nil {
				return nil, err
			}
			agg.add(ref, line.Amount*float64(entry.Meals), line.Unit)
		}
	}

	list.Items = agg.lines()
	return list, nil
}

// RecipeIngredients renders a single recipe's lines, one per authored line,
// in the requested unit mode.
func (s *ShoppingListService) RecipeIngredients(ctx context.Context, recipeID uuid.UUID, mode UnitMode) ([]types.RecipeIngredientView, error) {
	lines, err := s.catalog.GetRecipeIngredients(ctx, recipeID)
	if err != nil {
		return nil, err
	}

	resolver := newIngredientResolver(s.catalog)
	views := make([]types.RecipeIngredientView, 0, len(lines))
	for _, line := range lines {
		view := types.RecipeIngredientView{
			Name:    line.Name,
			Amount:  line.Amount,
			Unit:    line.Unit,
			Display: conversion.FormatQuantity(line.Amount, line.Unit),
		}
		if mode == UnitModeWeight {
			ref, err := resolver.resolve(ctx, line)
			if err != nil {
				return nil, err
			}
			if grams, ok := toGrams(ref, line.Amount, line.Unit); ok {
				view.Display = formatGrams(grams)
			}
		}
		views = append(views, view)
	}
	return views, nil
}

// ingredientRef is the identity a line is grouped under: either a catalog
// ingredient or the line's own free-text name.
type ingredientRef interface {
	groupKey() string
	displayName() string
}

type linkedIngredient struct {
	details *IngredientDetails
}

func (r linkedIngredient) groupKey() string    { return model.FoldName(r.details.Name) }
func (r linkedIngredient) displayName() string { return r.details.Name }

type freeTextIngredient struct {
	name string
}

func (r freeTextIngredient) groupKey() string    { return model.FoldName(r.name) }
func (r freeTextIngredient) displayName() string { return strings.TrimSpace(r.name) }

// ingredientResolver caches catalog lookups for the lifetime of one request.
type ingredientResolver struct {
	catalog Catalog
	cache   map[uuid.UUID]*IngredientDetails
}

func newIngredientResolver(catalog Catalog) *ingredientResolver {
	return &ingredientResolver{
		catalog: catalog,
		cache:   make(map[uuid.UUID]*IngredientDetails),
	}
}

// resolve falls back to the free-text name when the line has no catalog
// reference or the reference no longer resolves.
func (r *ingredientResolver) resolve(ctx context.Context, line model.RecipeIngredient) (ingredientRef, error) {
	if line.IngredientID == nil {
		return freeTextIngredient{name: line.Name}, nil
	}

	id := *line.IngredientID
	details, cached := r.cache[id]
	if !cached {
		var err error
		details, err = r.catalog.GetIngredientDetails(ctx, id)
		if errors.Is(err, ErrIngredientNotFound) {
			log.Printf("[ShoppingList] Ingredient %s referenced by %q not found, using line name", id, line.Name)
			details, err = nil, nil
		}
		if err != nil {
			return nil, fmt.Errorf("failed to load ingredient %s: %w", id, err)
		}
		r.cache[id] = details
	}

	if details == nil {
		return freeTextIngredient{name: line.Name}, nil
	}
	return linkedIngredient{details: details}, nil
}

// weightShare is the part of a line that converts to grams: cups go through
// the density, items through the average item weight. Shares are summed
// before conversion so rounding happens once per shopping list line.
type weightShare struct {
	cups  float64
	items float64
}

func (w weightShare) plus(o weightShare) weightShare {
	return weightShare{cups: w.cups + o.cups, items: w.items + o.items}
}

func (w weightShare) grams(d *IngredientDetails) int {
	grams := 0
	if w.cups != 0 {
		if g, ok := conversion.ToWeightGrams(w.cups, "cup", deref(d.GramsPerCup)); ok {
			grams += g
		}
	}
	if w.items != 0 {
		grams += conversion.ToWeightFromCount(w.items, deref(d.AvgWeightGrams))
	}
	return grams
}

// weighable reports how a line converts to weight. Count ingredients use
// their average item weight, falling back to density. Volume ingredients use
// density. Ingredients measured both ways use density for volume units and
// average weight otherwise.
func weighable(ref ingredientRef, amount float64, unit string) (weightShare, bool) {
	linked, ok := ref.(linkedIngredient)
	if !ok || amount == 0 {
		return weightShare{}, false
	}
	d := linked.details
	avgWeight := deref(d.AvgWeightGrams)

	byDensity := func() (weightShare, bool) {
		factor, ok := conversion.CupsPerUnit(unit)
		if !ok || deref(d.GramsPerCup) == 0 {
			return weightShare{}, false
		}
		return weightShare{cups: amount * factor}, true
	}

	switch d.UnitType {
	case model.UnitTypeCount:
		if avgWeight > 0 {
			return weightShare{items: amount}, true
		}
		return byDensity()
	case model.UnitTypeBoth:
		if share, ok := byDensity(); ok {
			return share, true
		}
		if avgWeight > 0 && !conversion.IsVolumeUnit(unit) {
			return weightShare{items: amount}, true
		}
		return weightShare{}, false
	default:
		return byDensity()
	}
}

// toGrams converts a single line to grams.
func toGrams(ref ingredientRef, amount float64, unit string) (int, bool) {
	share, ok := weighable(ref, amount, unit)
	if !ok {
		return 0, false
	}
	return share.grams(ref.(linkedIngredient).details), true
}

func deref(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

func formatGrams(grams int) string {
	return fmt.Sprintf("%d g", grams)
}

// quantity is one (ingredient, unit-or-weight) entry of the list.
type quantity struct {
	group          *ingredientGroup
	amount         float64
	unit           string
	weight         weightShare
	details        *IngredientDetails
	weighed        bool
	nonConvertible bool
}

type ingredientGroup struct {
	name       string
	quantities []*quantity
}

// aggregator accumulates lines into groups. Entries are emitted in the order
// each (ingredient, unit-or-weight) combination was first seen.
type aggregator struct {
	mode    UnitMode
	groups  map[string]*ingredientGroup
	entries []*quantity
}

func newAggregator(mode UnitMode) *aggregator {
	return &aggregator{
		mode:   mode,
		groups: make(map[string]*ingredientGroup),
	}
}

func (a *aggregator) add(ref ingredientRef, amount float64, unit string) {
	key := ref.groupKey()
	g, ok := a.groups[key]
	if !ok {
		g = &ingredientGroup{name: ref.displayName()}
		a.groups[key] = g
	}

	var q *quantity
	if a.mode == UnitModeWeight {
		if share, ok := weighable(ref, amount, unit); ok {
			q = g.addWeight(share, ref.(linkedIngredient).details)
		} else {
			q = g.addNative(amount, unit, true)
		}
	} else {
		q = g.addNative(amount, unit, false)
	}
	if q != nil {
		a.entries = append(a.entries, q)
	}
}

// addWeight sums into the group's weighed entry. It returns the entry only
// when it was created by this call.
func (g *ingredientGroup) addWeight(share weightShare, details *IngredientDetails) *quantity {
	for _, q := range g.quantities {
		if q.weighed {
			q.weight = q.weight.plus(share)
			return nil
		}
	}
	q := &quantity{group: g, unit: "g", weight: share, details: details, weighed: true}
	g.quantities = append(g.quantities, q)
	return q
}

// addNative sums into an entry with the same unit, or converts between cup,
// tbsp and tsp into the group's existing volume entry. Anything else starts a
// new entry, which is returned.
func (g *ingredientGroup) addNative(amount float64, unit string, nonConvertible bool) *quantity {
	unit = strings.TrimSpace(unit)
	for _, q := range g.quantities {
		if !q.weighed && conversion.SameUnit(q.unit, unit) {
			q.amount += amount
			return nil
		}
	}
	if conversion.IsVolumeUnit(unit) {
		for _, q := range g.quantities {
			if q.weighed || !conversion.IsVolumeUnit(q.unit) {
				continue
			}
			if converted, ok := conversion.ConvertVolume(amount, unit, q.unit); ok {
				q.amount += converted
				return nil
			}
		}
	}
	q := &quantity{
		group:          g,
		amount:         amount,
		unit:           unit,
		nonConvertible: nonConvertible,
	}
	g.quantities = append(g.quantities, q)
	return q
}

func (a *aggregator) lines() []ShoppingListLine {
	lines := make([]ShoppingListLine, 0, len(a.entries))
	for _, q := range a.entries {
		line := ShoppingListLine{
			Name:           q.group.name,
			Unit:           q.unit,
			NonConvertible: q.nonConvertible,
		}
		if q.weighed {
			grams := q.weight.grams(q.details)
			line.Amount = float64(grams)
			line.Grams = grams
			line.Weighed = true
			line.Display = formatGrams(grams)
		} else {
			line.Amount = q.amount
			line.Display = conversion.FormatQuantity(q.amount, q.unit)
		}
		lines = append(lines, line)
	}
	return lines
}
