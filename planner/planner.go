package planner

import (
	"errors"

	"mealprep-server/entities"
)

// ErrInvalidMealCount is returned when the requested meal count is not a
// positive integer.
var ErrInvalidMealCount = errors.New("number of meals must be a positive integer")

// slotOrder is the fixed round-robin of slot types. For counts above four
// the cycle repeats with identical meal content; determinism, not variety,
// is the contract.
var slotOrder = [...]entities.SlotType{
	entities.SlotBreakfast,
	entities.SlotLunch,
	entities.SlotDinner,
	entities.SlotSnack,
}

// Request carries the caller's stated preferences. Everything except
// NumberOfMeals is recorded on the resulting plan but does not influence
// meal selection; see Catalog.
type Request struct {
	DietaryPreference string
	Allergies         []string
	NutritionalGoal   string
	NumberOfMeals     int
	PreferredCuisine  string
}

// Result is the generated plan body: the ordered meals and their
// consolidated grocery list.
type Result struct {
	Meals       entities.MealList
	GroceryList entities.GroceryList
}

// Generator expands a meal count into an ordered meal sequence drawn from
// the catalog. It is pure and deterministic.
type Generator struct {
	catalog *Catalog
}

func NewGenerator(catalog *Catalog) *Generator {
	return &Generator{catalog: catalog}
}

// Generate builds the meal sequence slot by slot, then categorizes every
// ingredient in meal order then ingredient order into one grocery list.
func (g *Generator) Generate(req Request) (*Result, error) {
	if req.NumberOfMeals <= 0 {
		return nil, ErrInvalidMealCount
	}

	meals := make(entities.MealList, 0, req.NumberOfMeals)
	for i := 0; i < req.NumberOfMeals; i++ {
		slot := slotOrder[i%len(slotOrder)]
		meals = append(meals, g.catalog.MealFor(slot))
	}

	groceries := entities.NewGroceryList()
	for _, meal := range meals {
		AddToGroceryList(&groceries, meal.Ingredients)
	}

	return &Result{Meals: meals, GroceryList: groceries}, nil
}
