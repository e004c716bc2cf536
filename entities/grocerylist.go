package entities

import (
	"database/sql/driver"
	"encoding/json"
)

// Category is the closed set of grocery buckets ingredients are sorted into.
type Category string

const (
	CategoryProduce  Category = "produce"
	CategoryGrains   Category = "grains"
	CategoryProteins Category = "proteins"
	CategoryDairy    Category = "dairy"
	CategoryPantry   Category = "pantry"
)

// GroceryList holds the consolidated ingredients of a plan, one ordered
// sequence per category. Duplicates are kept: an ingredient used by three
// meals appears three times.
type GroceryList struct {
	Produce  []string `json:"produce"`
	Grains   []string `json:"grains"`
	Proteins []string `json:"proteins"`
	Dairy    []string `json:"dairy"`
	Pantry   []string `json:"pantry"`
}

// NewGroceryList returns a list with every category present but empty, so
// the serialized form always carries all five keys.
func NewGroceryList() GroceryList {
	return GroceryList{
		Produce:  []string{},
		Grains:   []string{},
		Proteins: []string{},
		Dairy:    []string{},
		Pantry:   []string{},
	}
}

// Add appends an ingredient to the given category, preserving encounter order.
func (g *GroceryList) Add(category Category, ingredient string) {
	switch category {
	case CategoryProduce:
		g.Produce = append(g.Produce, ingredient)
	case CategoryGrains:
		g.Grains = append(g.Grains, ingredient)
	case CategoryProteins:
		g.Proteins = append(g.Proteins, ingredient)
	case CategoryDairy:
		g.Dairy = append(g.Dairy, ingredient)
	case CategoryPantry:
		g.Pantry = append(g.Pantry, ingredient)
	}
}

func (g GroceryList) Value() (driver.Value, error) {
	return json.Marshal(g)
}

func (g *GroceryList) Scan(value interface{}) error {
	return scanJSON(g, value)
}
