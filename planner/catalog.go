package planner

import "mealprep-server/entities"

// Catalog is the fixed table of meal definitions, one per slot type.
// Selection is keyed by slot only: dietary preference, allergies, goal and
// cuisine are recorded on the plan but do not change which entry is picked.
// Swapping the Catalog for a real recommender is the intended extension
// point; the rest of the pipeline does not care where meals come from.
type Catalog struct {
	meals map[entities.SlotType]entities.Meal
}

func NewCatalog() *Catalog {
	return &Catalog{meals: map[entities.SlotType]entities.Meal{
		entities.SlotBreakfast: {
			Name:        "Mediterranean Breakfast Bowl",
			Description: "Greek yogurt with honey, mixed berries, and almonds",
			Ingredients: []string{"Greek yogurt", "Honey", "Mixed berries", "Almonds"},
			PrepTime:    "10 minutes",
			Calories:    320,
			Protein:     18,
			Carbs:       28,
			Fat:         16,
		},
		entities.SlotLunch: {
			Name:        "Quinoa Mediterranean Salad",
			Description: "Quinoa with chickpeas, cucumber, tomatoes, olives, and feta",
			Ingredients: []string{"Quinoa", "Chickpeas", "Cucumber", "Tomatoes", "Olives", "Feta cheese"},
			PrepTime:    "20 minutes",
			Calories:    450,
			Protein:     16,
			Carbs:       58,
			Fat:         18,
		},
		entities.SlotDinner: {
			Name:        "Herb-Crusted Salmon with Roasted Vegetables",
			Description: "Salmon with herbs and roasted Mediterranean vegetables",
			Ingredients: []string{"Salmon", "Herbs", "Zucchini", "Eggplant", "Bell peppers", "Olive oil"},
			PrepTime:    "30 minutes",
			Calories:    520,
			Protein:     32,
			Carbs:       18,
			Fat:         32,
		},
		entities.SlotSnack: {
			Name:        "Mediterranean Hummus with Veggies",
			Description: "Homemade hummus with fresh vegetables",
			Ingredients: []string{"Chickpeas", "Tahini", "Lemon", "Garlic", "Carrots", "Cucumber"},
			PrepTime:    "15 minutes",
			Calories:    180,
			Protein:     6,
			Carbs:       20,
			Fat:         9,
		},
	}}
}

// MealFor returns an independent copy of the catalog entry for the slot,
// stamped with the slot it was generated for. Lookups cannot miss: slots are
// a closed set and the table covers all of them.
func (c *Catalog) MealFor(slot entities.SlotType) entities.Meal {
	meal := c.meals[slot]
	meal.Ingredients = append([]string(nil), meal.Ingredients...)
	meal.MealType = slot
	return meal
}
