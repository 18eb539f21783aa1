package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/pageza/ourkitchen/backend/config"
	"github.com/pageza/ourkitchen/backend/internal/database"
	"github.com/pageza/ourkitchen/backend/internal/types"
	"gorm.io/gorm"
)

func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}
	if dbPath != "" {
		cfg.DBDriver = config.DriverSQLite
		cfg.DBPath = dbPath
	}
	return cfg, nil
}

// withDB opens the configured database, migrates it and hands it to run.
func withDB(run func(*gorm.DB) error) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	db, err := database.Open(cfg)
	if err != nil {
		return err
	}
	defer database.Close(db)

	if err := database.RunMigrations(db); err != nil {
		return err
	}
	return run(db)
}

// parsePlan reads "<recipe id>=<meals>" pairs separated by commas. Pairs
// that do not parse are counted as invalid rather than rejected.
func parsePlan(value string) (types.MealPlan, error) {
	plan := types.MealPlan{Entries: []types.PlanEntry{}}
	if strings.TrimSpace(value) == "" {
		return plan, fmt.Errorf("--plan is required")
	}

	index := map[uuid.UUID]int{}
	for _, pair := range strings.Split(value, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		idText, mealsText, found := strings.Cut(pair, "=")
		if !found {
			mealsText = "1"
		}
		id, err := uuid.Parse(strings.TrimSpace(idText))
		if err != nil {
			plan.Invalid++
			continue
		}
		meals, err := strconv.Atoi(strings.TrimSpace(mealsText))
		if err != nil || meals < 1 {
			plan.Invalid++
			continue
		}
		if i, ok := index[id]; ok {
			plan.Entries[i].Meals = meals
			continue
		}
		index[id] = len(plan.Entries)
		plan.Entries = append(plan.Entries, types.PlanEntry{RecipeID: id, Meals: meals})
	}
	return plan, nil
}
