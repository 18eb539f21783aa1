package types

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMealPlanUnmarshalKeepsOrder(t *testing.T) {
	a, b, c := uuid.New(), uuid.New(), uuid.New()
	body := `{"` + b.String() + `": 2, "` + a.String() + `": 1, "` + c.String() + `": 3.0}`

	var plan MealPlan
	require.NoError(t, json.Unmarshal([]byte(body), &plan))

	assert.Equal(t, []PlanEntry{
		{RecipeID: b, Meals: 2},
		{RecipeID: a, Meals: 1},
		{RecipeID: c, Meals: 3},
	}, plan.Entries)
	assert.Equal(t, 0, plan.Invalid)
	assert.Equal(t, 6, plan.TotalMeals())
}

func TestMealPlanUnmarshalDropsInvalidEntries(t *testing.T) {
	good := uuid.New()
	body := `{
		"12": 1,
		"` + uuid.NewString() + `": 0,
		"` + uuid.NewString() + `": -2,
		"` + uuid.NewString() + `": 1.5,
		"` + uuid.NewString() + `": "2",
		"` + uuid.NewString() + `": null,
		"` + uuid.NewString() + `": {"meals": 1},
		"` + good.String() + `": 4
	}`

	var plan MealPlan
	require.NoError(t, json.Unmarshal([]byte(body), &plan))
	assert.Equal(t, []PlanEntry{{RecipeID: good, Meals: 4}}, plan.Entries)
	assert.Equal(t, 7, plan.Invalid)
}

func TestMealPlanUnmarshalDuplicateKeys(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	body := `{"` + a.String() + `": 1, "` + b.String() + `": 1, "` + a.String() + `": 5}`

	var plan MealPlan
	require.NoError(t, json.Unmarshal([]byte(body), &plan))
	assert.Equal(t, []PlanEntry{{RecipeID: a, Meals: 5}, {RecipeID: b, Meals: 1}}, plan.Entries)
}

func TestMealPlanUnmarshalShapes(t *testing.T) {
	var plan MealPlan
	require.NoError(t, json.Unmarshal([]byte(`null`), &plan))
	assert.Empty(t, plan.Entries)

	require.NoError(t, json.Unmarshal([]byte(`{}`), &plan))
	assert.Empty(t, plan.Entries)

	assert.Error(t, json.Unmarshal([]byte(`[1, 2]`), &plan))
	assert.Error(t, json.Unmarshal([]byte(`"plan"`), &plan))
}

func TestShoppingListRequestRoundTrip(t *testing.T) {
	id := uuid.New()
	req := ShoppingListRequest{Plan: MealPlan{Entries: []PlanEntry{{RecipeID: id, Meals: 2}}}, Unit: "weight"}

	data, err := json.Marshal(req)
	require.NoError(t, err)
	assert.JSONEq(t, `{"plan": {"`+id.String()+`": 2}, "unit": "weight"}`, string(data))

	var decoded ShoppingListRequest
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, req.Plan.Entries, decoded.Plan.Entries)
	assert.Equal(t, "weight", decoded.Unit)
}
