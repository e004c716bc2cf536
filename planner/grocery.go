package planner

import "mealprep-server/entities"

// categoryMembers lists the known ingredient names per category, in match
// priority order. First match wins; anything unmatched lands in pantry.
// Matching is exact and case-sensitive.
var categoryMembers = []struct {
	category entities.Category
	members  []string
}{
	{entities.CategoryDairy, []string{"Greek yogurt", "Feta cheese"}},
	{entities.CategoryGrains, []string{"Quinoa", "Rice", "Pasta"}},
	{entities.CategoryProteins, []string{"Chickpeas", "Salmon", "Almonds"}},
	{entities.CategoryProduce, []string{"Tomatoes", "Cucumber", "Carrots", "Bell peppers", "Zucchini", "Eggplant"}},
}

// Categorize maps an ingredient name to its grocery category. Total: every
// input maps to exactly one category, pantry being the catch-all.
func Categorize(ingredient string) entities.Category {
	for _, group := range categoryMembers {
		for _, member := range group.members {
			if member == ingredient {
				return group.category
			}
		}
	}
	return entities.CategoryPantry
}

// AddToGroceryList appends each ingredient, in order, to its category in the
// list. No deduplication: repeated ingredients appear once per occurrence.
func AddToGroceryList(list *entities.GroceryList, ingredients []string) {
	for _, ingredient := range ingredients {
		list.Add(Categorize(ingredient), ingredient)
	}
}
