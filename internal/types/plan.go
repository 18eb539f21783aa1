package types

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	"github.com/google/uuid"
)

// PlanEntry asks for Meals batches of one recipe.
type PlanEntry struct {
	RecipeID uuid.UUID
	Meals    int
}

// MealPlan is an ordered set of plan entries. On the wire it is a JSON object
// mapping recipe ids to meal counts; key order is kept. Keys that are not
// recipe ids and counts that are not positive integers are dropped while
// decoding and tallied in Invalid.
type MealPlan struct {
	Entries []PlanEntry
	Invalid int
}

// UnmarshalJSON decodes the object form of a plan. A repeated key keeps its
// first position and its last value. null decodes to an empty plan.
func (p *MealPlan) UnmarshalJSON(data []byte) error {
	*p = MealPlan{}
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("failed to read meal plan: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("meal plan must be a JSON object")
	}

	var keys []string
	values := make(map[string]json.RawMessage)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("failed to read meal plan key: %w", err)
		}
		key, _ := tok.(string)

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return fmt.Errorf("failed to read meal count for %q: %w", key, err)
		}
		if _, seen := values[key]; !seen {
			keys = append(keys, key)
		}
		values[key] = raw
	}
	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("failed to read meal plan: %w", err)
	}

	for _, key := range keys {
		id, err := uuid.Parse(key)
		if err != nil {
			p.Invalid++
			continue
		}
		meals, ok := parseMealCount(values[key])
		if !ok {
			p.Invalid++
			continue
		}
		p.Entries = append(p.Entries, PlanEntry{RecipeID: id, Meals: meals})
	}
	return nil
}

// MarshalJSON writes the plan back in its object form, preserving order.
func (p MealPlan) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range p.Entries {
		if i > 0 {
			buf.WriteByte(',')
		}
		fmt.Fprintf(&buf, "%q:%d", e.RecipeID.String(), e.Meals)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// TotalMeals sums the meal counts of all entries.
func (p MealPlan) TotalMeals() int {
	total := 0
	for _, e := range p.Entries {
		total += e.Meals
	}
	return total
}

// parseMealCount accepts JSON numbers with an integral value above zero.
// Quoted numbers are rejected.
func parseMealCount(raw json.RawMessage) (int, bool) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || (raw[0] != '-' && (raw[0] < '0' || raw[0] > '9')) {
		return 0, false
	}
	v, err := strconv.ParseFloat(string(raw), 64)
	if err != nil || v != math.Trunc(v) || v < 1 || v > math.MaxInt32 {
		return 0, false
	}
	return int(v), true
}
