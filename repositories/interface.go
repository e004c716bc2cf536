package repositories

import "mealprep-server/entities"

// Lookup methods return (nil, nil) when no row matches, so callers can tell
// "not found" apart from store failures without depending on driver errors.

type UserRepository interface {
	Create(user *entities.User) error
	GetByID(id string) (*entities.User, error)
	GetByEmail(email string) (*entities.User, error)
}

type MealPlanRepository interface {
	Create(plan *entities.MealPlan) error
	GetByID(id string) (*entities.MealPlan, error)
	GetByUserID(userID string) ([]entities.MealPlan, error)
}
