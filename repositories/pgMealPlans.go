package repositories

import (
	"errors"

	"mealprep-server/db"
	"mealprep-server/entities"

	"gorm.io/gorm"
)

type mealPlanPgRepository struct {
	db db.Database
}

func NewMealPlanPgRepository(database db.Database) MealPlanRepository {
	return &mealPlanPgRepository{db: database}
}

func (r *mealPlanPgRepository) Create(plan *entities.MealPlan) error {
	return r.db.GetDB().Create(plan).Error
}

func (r *mealPlanPgRepository) GetByID(id string) (*entities.MealPlan, error) {
	var plan entities.MealPlan
	err := r.db.GetDB().Where("id = ?", id).First(&plan).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

// GetByUserID returns the user's plans newest first.
func (r *mealPlanPgRepository) GetByUserID(userID string) ([]entities.MealPlan, error) {
	var plans []entities.MealPlan
	err := r.db.GetDB().Where("user_id = ?", userID).Order("created_at DESC").Find(&plans).Error
	return plans, err
}
