package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MealPlan is a generated plan owned by exactly one user. Plans are created
// atomically by the generation flow and never mutated afterwards.
type MealPlan struct {
	ID                string      `gorm:"type:text;primaryKey" json:"_id"`
	UserID            string      `gorm:"index;not null" json:"-"`
	DietaryPreference string      `json:"dietary_preference"`
	Allergies         StringList  `gorm:"type:jsonb" json:"allergies"`
	NutritionalGoal   string      `json:"nutritional_goal"`
	NumberOfMeals     int         `json:"number_of_meals"`
	PreferredCuisine  string      `json:"preferred_cuisine"`
	Meals             MealList    `gorm:"type:jsonb" json:"meals"`
	GroceryList       GroceryList `gorm:"type:jsonb" json:"grocery_list"`
	CreatedAt         string      `json:"date"`
}

func (p *MealPlan) BeforeCreate(tx *gorm.DB) (err error) {
	p.ID = uuid.New().String()
	p.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	if p.Allergies == nil {
		p.Allergies = StringList{}
	}
	return
}
